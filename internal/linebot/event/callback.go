package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrInvalidContent is returned when a callback body is not a valid event envelope.
var ErrInvalidContent = errors.New("invalid callback content")

// Callback is the body of a webhook request.
type Callback struct {
	// Destination is the user id of the bot that should receive the events.
	Destination string
	// Events are kept in the order they were sent.
	Events []Event
}

// ParseCallback decodes a webhook request body.
// Bodies that are not JSON objects or lack an "events" array wrap ErrInvalidContent.
func ParseCallback(body []byte) (*Callback, error) {
	var envelope struct {
		Destination string            `json:"destination"`
		Events      []json.RawMessage `json:"events"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	if envelope.Events == nil {
		return nil, fmt.Errorf("%w: missing events", ErrInvalidContent)
	}

	callback := &Callback{
		Destination: envelope.Destination,
		Events:      make([]Event, 0, len(envelope.Events)),
	}
	for i, raw := range envelope.Events {
		ev, err := Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: event %d: %w", ErrInvalidContent, i, err)
		}
		callback.Events = append(callback.Events, ev)
	}
	return callback, nil
}
