// Package signature validates the X-Line-Signature header sent with webhook callbacks.
// The header is the base64 encoded HMAC-SHA256 of the raw request body keyed with the channel secret.
package signature

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
)

// HeaderName is the request header carrying the callback signature.
const HeaderName = "X-Line-Signature"

// Validator computes and checks callback signatures for a single channel.
type Validator struct {
	channelSecret []byte
}

// NewValidator creates a Validator for the given channel secret.
func NewValidator(channelSecret string) *Validator {
	return &Validator{channelSecret: []byte(channelSecret)}
}

// Generate returns the raw HMAC-SHA256 of body.
func (v *Validator) Generate(body []byte) []byte {
	mac := hmac.New(sha256.New, v.channelSecret)
	_, _ = mac.Write(body)
	return mac.Sum(nil)
}

// Sign returns the header value expected for body.
func (v *Validator) Sign(body []byte) string {
	return base64.StdEncoding.EncodeToString(v.Generate(body))
}

// Validate reports whether signature matches body.
func (v *Validator) Validate(body []byte, signature string) bool {
	decoded, err := base64.StdEncoding.DecodeString(signature)
	if err != nil {
		return false
	}
	return hmac.Equal(decoded, v.Generate(body))
}
