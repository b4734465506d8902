package callback

import (
	"errors"

	"github.com/DIMO-Network/line-bot-api/internal/linebot/signature"
	"github.com/DIMO-Network/server-garage/pkg/richerrors"
	"github.com/gofiber/fiber/v2"
)

var errSignatureMismatch = errors.New("signature does not match request body")

// SignatureValidator checks a callback signature against the raw request body.
type SignatureValidator interface {
	Validate(body []byte, signature string) bool
}

// SignatureMiddleware rejects requests whose X-Line-Signature header is missing
// or does not match the raw body.
func SignatureMiddleware(validator SignatureValidator) fiber.Handler {
	return func(c *fiber.Ctx) error {
		sig := c.Get(signature.HeaderName)
		if sig == "" {
			return richerrors.Error{
				ExternalMsg: "Missing '" + signature.HeaderName + "' header",
				Code:        fiber.StatusBadRequest,
			}
		}
		if !validator.Validate(c.Body(), sig) {
			return richerrors.Error{
				ExternalMsg: "Invalid API signature",
				Err:         errSignatureMismatch,
				Code:        fiber.StatusBadRequest,
			}
		}
		return c.Next()
	}
}
