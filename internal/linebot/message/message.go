// Package message holds the outbound model sent to the Messaging API.
package message

import (
	"encoding/json"
	"errors"
	"fmt"
)

// MaxReplyMessages is the most messages a single reply may carry.
const MaxReplyMessages = 5

// Type is the value of an outbound message's "type" field.
type Type string

const (
	TypeText     Type = "text"
	TypeImage    Type = "image"
	TypeVideo    Type = "video"
	TypeAudio    Type = "audio"
	TypeLocation Type = "location"
	TypeSticker  Type = "sticker"
)

var (
	// ErrMissingReplyToken is returned when a reply has no reply token.
	ErrMissingReplyToken = errors.New("reply token is required")
	// ErrMessageCount is returned when a reply has no messages or too many.
	ErrMessageCount = fmt.Errorf("a reply must carry between 1 and %d messages", MaxReplyMessages)
)

// Message is any message that can be sent to a user.
type Message interface {
	json.Marshaler
	MessageType() Type
}

// TextMessage is a plain text message.
type TextMessage struct {
	Text string
}

// NewText creates a TextMessage.
func NewText(text string) *TextMessage {
	return &TextMessage{Text: text}
}

func (m *TextMessage) MessageType() Type { return TypeText }

func (m *TextMessage) MarshalJSON() ([]byte, error) {
	return Marshal(struct {
		Type Type   `json:"type"`
		Text string `json:"text"`
	}{Type: TypeText, Text: m.Text})
}

// ImageMessage sends an image hosted at OriginalContentURL.
type ImageMessage struct {
	OriginalContentURL string
	PreviewImageURL    string
}

func (m *ImageMessage) MessageType() Type { return TypeImage }

func (m *ImageMessage) MarshalJSON() ([]byte, error) {
	return Marshal(struct {
		Type               Type   `json:"type"`
		OriginalContentURL string `json:"originalContentUrl"`
		PreviewImageURL    string `json:"previewImageUrl"`
	}{Type: TypeImage, OriginalContentURL: m.OriginalContentURL, PreviewImageURL: m.PreviewImageURL})
}

// VideoMessage sends a video hosted at OriginalContentURL.
type VideoMessage struct {
	OriginalContentURL string
	PreviewImageURL    string
}

func (m *VideoMessage) MessageType() Type { return TypeVideo }

func (m *VideoMessage) MarshalJSON() ([]byte, error) {
	return Marshal(struct {
		Type               Type   `json:"type"`
		OriginalContentURL string `json:"originalContentUrl"`
		PreviewImageURL    string `json:"previewImageUrl"`
	}{Type: TypeVideo, OriginalContentURL: m.OriginalContentURL, PreviewImageURL: m.PreviewImageURL})
}

// AudioMessage sends an audio file. Duration is in milliseconds.
type AudioMessage struct {
	OriginalContentURL string
	Duration           int64
}

func (m *AudioMessage) MessageType() Type { return TypeAudio }

func (m *AudioMessage) MarshalJSON() ([]byte, error) {
	return Marshal(struct {
		Type               Type   `json:"type"`
		OriginalContentURL string `json:"originalContentUrl"`
		Duration           int64  `json:"duration"`
	}{Type: TypeAudio, OriginalContentURL: m.OriginalContentURL, Duration: m.Duration})
}

// LocationMessage sends a map pin.
type LocationMessage struct {
	Title     string
	Address   string
	Latitude  float64
	Longitude float64
}

func (m *LocationMessage) MessageType() Type { return TypeLocation }

func (m *LocationMessage) MarshalJSON() ([]byte, error) {
	return Marshal(struct {
		Type      Type    `json:"type"`
		Title     string  `json:"title"`
		Address   string  `json:"address"`
		Latitude  float64 `json:"latitude"`
		Longitude float64 `json:"longitude"`
	}{Type: TypeLocation, Title: m.Title, Address: m.Address, Latitude: m.Latitude, Longitude: m.Longitude})
}

// StickerMessage sends a sticker from a sticker package.
type StickerMessage struct {
	PackageID string
	StickerID string
}

func (m *StickerMessage) MessageType() Type { return TypeSticker }

func (m *StickerMessage) MarshalJSON() ([]byte, error) {
	return Marshal(struct {
		Type      Type   `json:"type"`
		PackageID string `json:"packageId"`
		StickerID string `json:"stickerId"`
	}{Type: TypeSticker, PackageID: m.PackageID, StickerID: m.StickerID})
}
