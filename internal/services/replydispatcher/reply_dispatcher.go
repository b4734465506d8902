//go:generate go tool mockgen -source=reply_dispatcher.go -destination=reply_dispatcher_mock_test.go -package=replydispatcher
package replydispatcher

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/DIMO-Network/line-bot-api/internal/clients/messaging"
	"github.com/DIMO-Network/line-bot-api/internal/linebot/event"
	"github.com/DIMO-Network/line-bot-api/internal/linebot/message"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// Replier sends reply messages to the Messaging API.
type Replier interface {
	Reply(ctx context.Context, reply *message.ReplyMessage) error
}

// Dispatcher picks the reply for each inbound event and sends it.
type Dispatcher struct {
	replier        Replier
	followGreeting string
	// answered holds webhook event ids that were already replied to.
	answered *cache.Cache
}

// DefaultDedupTTL is used when New is given a non-positive TTL.
const DefaultDedupTTL = 10 * time.Minute

// New creates a Dispatcher. Answered event ids are remembered for dedupTTL.
func New(replier Replier, followGreeting string, dedupTTL time.Duration) *Dispatcher {
	if dedupTTL <= 0 {
		dedupTTL = DefaultDedupTTL
	}
	return &Dispatcher{
		replier:        replier,
		followGreeting: followGreeting,
		answered:       cache.New(dedupTTL, 2*dedupTTL),
	}
}

// HandleEvent replies to a single event.
// Text messages are echoed back, follows get the greeting, everything else is ignored.
func (d *Dispatcher) HandleEvent(ctx context.Context, ev event.Event) error {
	common := ev.Common()
	logger := zerolog.Ctx(ctx).With().
		Str("event_type", string(common.Type)).
		Str("webhook_event_id", common.WebhookEventID).
		Logger()

	if common.WebhookEventID != "" {
		if _, found := d.answered.Get(common.WebhookEventID); found {
			logger.Info().Bool("redelivery", common.DeliveryContext.IsRedelivery).Msg("event already answered, skipping")
			return nil
		}
	}

	replyable, ok := ev.(event.Replyable)
	if !ok || replyable.GetReplyToken() == "" {
		logger.Debug().Str("mode", string(common.Mode)).Msg("event has no reply token")
		return nil
	}

	reply := d.selectReply(ev)
	if reply == nil {
		logger.Debug().Msg("no reply for event")
		return nil
	}

	if err := d.replier.Reply(ctx, reply); err != nil {
		// A rejected reply will be rejected again on redelivery.
		var apiErr *messaging.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode >= http.StatusInternalServerError {
			return fmt.Errorf("failed to reply to %s event: %w", common.Type, err)
		}
		logger.Warn().Err(err).Int("status", apiErr.StatusCode).Msg("reply rejected by messaging API")
	} else {
		logger.Debug().Int("messages", len(reply.Messages)).Msg("reply sent")
	}
	d.markAnswered(common.WebhookEventID)
	return nil
}

func (d *Dispatcher) markAnswered(webhookEventID string) {
	if webhookEventID != "" {
		d.answered.SetDefault(webhookEventID, struct{}{})
	}
}

func (d *Dispatcher) selectReply(ev event.Event) *message.ReplyMessage {
	switch e := ev.(type) {
	case *event.MessageEvent:
		if text, ok := e.Message.(*event.TextMessageContent); ok {
			return message.NewReply(e.ReplyToken, message.NewText(text.Text))
		}
	case *event.FollowEvent:
		return message.NewReply(e.ReplyToken, message.NewText(d.followGreeting))
	}
	return nil
}
