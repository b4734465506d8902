package messaging

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorDetail is a single problem reported by the Messaging API.
type ErrorDetail struct {
	Message  string `json:"message"`
	Property string `json:"property"`
}

// APIError is returned when the Messaging API answers with an error status.
type APIError struct {
	StatusCode int           `json:"-"`
	Message    string        `json:"message"`
	Details    []ErrorDetail `json:"details,omitempty"`
}

func newAPIError(statusCode int, body []byte) *APIError {
	apiErr := &APIError{StatusCode: statusCode}
	if err := json.Unmarshal(body, apiErr); err != nil || apiErr.Message == "" {
		apiErr.Message = strings.TrimSpace(string(body))
	}
	return apiErr
}

func (e *APIError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "messaging API returned status code %d", e.StatusCode)
	if e.Message != "" {
		fmt.Fprintf(&b, ": %s", e.Message)
	}
	for _, d := range e.Details {
		fmt.Fprintf(&b, " [%s: %s]", d.Property, d.Message)
	}
	return b.String()
}
