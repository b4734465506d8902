//go:generate go tool mockgen -source=callback_controller.go -destination=callback_controller_mock_test.go -package=callback
package callback

import (
	"context"
	"fmt"

	"github.com/DIMO-Network/line-bot-api/internal/linebot/event"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
)

// EventHandler handles a single webhook event.
type EventHandler interface {
	HandleEvent(ctx context.Context, ev event.Event) error
}

// EventArchiver stores the parsed callback before it is handled.
type EventArchiver interface {
	Archive(ctx context.Context, callback *event.Callback) error
}

// Controller serves the webhook callback endpoint.
type Controller struct {
	handler  EventHandler
	archiver EventArchiver
}

// NewController creates a new Controller. archiver may be nil.
func NewController(handler EventHandler, archiver EventArchiver) *Controller {
	return &Controller{
		handler:  handler,
		archiver: archiver,
	}
}

// Callback godoc
// @Summary      Receive webhook events
// @Description  Receives a batch of events from the LINE platform. The body must be signed with the channel secret. Each event is handled in order before the response is written.
// @Tags         Callback
// @Accept       json
// @Param        X-Line-Signature  header  string  true  "Base64 HMAC-SHA256 of the body"
// @Success      200  "Events handled"
// @Failure      400  "Missing or invalid signature, or invalid content"
// @Failure      500  "Internal server error"
// @Router       /callback [post]
func (ctl *Controller) Callback(c *fiber.Ctx) error {
	callback, err := event.ParseCallback(c.Body())
	if err != nil {
		return richerrors.Error{
			ExternalMsg: "Invalid content",
			Err:         err,
			Code:        fiber.StatusBadRequest,
		}
	}

	ctx := c.UserContext()
	zerolog.Ctx(ctx).Info().
		Str("destination", callback.Destination).
		Int("events", len(callback.Events)).
		Msg("Got callback request")

	if ctl.archiver != nil {
		if err := ctl.archiver.Archive(ctx, callback); err != nil {
			return fmt.Errorf("failed to archive events: %w", err)
		}
	}

	for i, ev := range callback.Events {
		if err := ctl.handler.HandleEvent(ctx, ev); err != nil {
			return fmt.Errorf("failed to handle event %d: %w", i, err)
		}
	}
	c.Status(fiber.StatusOK)
	return nil
}
