// Package event holds the inbound webhook model: the callback envelope, the events it carries
// and the content of message events.
package event

import (
	"encoding/json"
	"fmt"
	"time"
)

// Type is the value of an event's "type" field.
type Type string

const (
	TypeMessage  Type = "message"
	TypeFollow   Type = "follow"
	TypeUnfollow Type = "unfollow"
	TypeJoin     Type = "join"
	TypeLeave    Type = "leave"
	TypePostback Type = "postback"
	TypeBeacon   Type = "beacon"
)

// Mode is the channel state the event was sent in.
type Mode string

const (
	ModeActive  Mode = "active"
	ModeStandby Mode = "standby"
)

// Event is any webhook event. Use a type switch on the concrete pointer types to branch.
type Event interface {
	// Common returns the fields shared by every event type.
	Common() *Base
}

// Replyable is implemented by events that carry a reply token.
type Replyable interface {
	Event
	GetReplyToken() string
}

// DeliveryContext describes how the event was delivered.
type DeliveryContext struct {
	IsRedelivery bool `json:"isRedelivery"`
}

// Base holds the fields shared by every event.
type Base struct {
	Type            Type            `json:"type"`
	Mode            Mode            `json:"mode,omitempty"`
	Timestamp       int64           `json:"timestamp"`
	Source          Source          `json:"source"`
	WebhookEventID  string          `json:"webhookEventId,omitempty"`
	DeliveryContext DeliveryContext `json:"deliveryContext"`

	raw json.RawMessage
}

// Common implements Event.
func (b *Base) Common() *Base { return b }

// Time converts the millisecond timestamp.
func (b *Base) Time() time.Time {
	return time.UnixMilli(b.Timestamp).UTC()
}

// Raw returns the event exactly as it was received.
func (b *Base) Raw() json.RawMessage {
	return b.raw
}

// MessageEvent is sent when a user sends a message.
type MessageEvent struct {
	Base
	ReplyToken string         `json:"replyToken"`
	Message    MessageContent `json:"-"`
}

// GetReplyToken implements Replyable.
func (e *MessageEvent) GetReplyToken() string { return e.ReplyToken }

// FollowEvent is sent when a user adds the bot as a friend or unblocks it.
type FollowEvent struct {
	Base
	ReplyToken string `json:"replyToken"`
}

// GetReplyToken implements Replyable.
func (e *FollowEvent) GetReplyToken() string { return e.ReplyToken }

// UnfollowEvent is sent when a user blocks the bot. It cannot be replied to.
type UnfollowEvent struct {
	Base
}

// JoinEvent is sent when the bot joins a group or room.
type JoinEvent struct {
	Base
	ReplyToken string `json:"replyToken"`
}

// GetReplyToken implements Replyable.
func (e *JoinEvent) GetReplyToken() string { return e.ReplyToken }

// LeaveEvent is sent when the bot is removed from a group. It cannot be replied to.
type LeaveEvent struct {
	Base
}

// Postback is the data attached to a postback action.
type Postback struct {
	Data   string            `json:"data"`
	Params map[string]string `json:"params,omitempty"`
}

// PostbackEvent is sent when a user triggers a postback action.
type PostbackEvent struct {
	Base
	ReplyToken string   `json:"replyToken"`
	Postback   Postback `json:"postback"`
}

// GetReplyToken implements Replyable.
func (e *PostbackEvent) GetReplyToken() string { return e.ReplyToken }

// Beacon describes a LINE Beacon interaction.
type Beacon struct {
	HWID string `json:"hwid"`
	Type string `json:"type"`
	DM   string `json:"dm,omitempty"`
}

// BeaconEvent is sent when a user enters the range of a beacon.
type BeaconEvent struct {
	Base
	ReplyToken string `json:"replyToken"`
	Beacon     Beacon `json:"beacon"`
}

// GetReplyToken implements Replyable.
func (e *BeaconEvent) GetReplyToken() string { return e.ReplyToken }

// UnknownEvent keeps events of a type this service does not model yet.
type UnknownEvent struct {
	Base
}

// Parse decodes a single raw event into its concrete type.
func Parse(raw json.RawMessage) (Event, error) {
	var base Base
	if err := json.Unmarshal(raw, &base); err != nil {
		return nil, fmt.Errorf("failed to unmarshal event: %w", err)
	}

	var ev Event
	switch base.Type {
	case TypeMessage:
		ev = &MessageEvent{}
	case TypeFollow:
		ev = &FollowEvent{}
	case TypeUnfollow:
		ev = &UnfollowEvent{}
	case TypeJoin:
		ev = &JoinEvent{}
	case TypeLeave:
		ev = &LeaveEvent{}
	case TypePostback:
		ev = &PostbackEvent{}
	case TypeBeacon:
		ev = &BeaconEvent{}
	default:
		unknown := &UnknownEvent{Base: base}
		unknown.raw = raw
		return unknown, nil
	}

	if err := json.Unmarshal(raw, ev); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s event: %w", base.Type, err)
	}
	if msgEvent, ok := ev.(*MessageEvent); ok {
		var body struct {
			Message json.RawMessage `json:"message"`
		}
		if err := json.Unmarshal(raw, &body); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message event: %w", err)
		}
		content, err := ParseMessageContent(body.Message)
		if err != nil {
			return nil, err
		}
		msgEvent.Message = content
	}
	ev.Common().raw = raw
	return ev, nil
}
