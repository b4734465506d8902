package event

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ContentType is the value of a message content's "type" field.
type ContentType string

const (
	ContentText     ContentType = "text"
	ContentImage    ContentType = "image"
	ContentVideo    ContentType = "video"
	ContentAudio    ContentType = "audio"
	ContentFile     ContentType = "file"
	ContentLocation ContentType = "location"
	ContentSticker  ContentType = "sticker"
)

var errMissingMessage = errors.New("message event has no message")

// MessageContent is the body of a MessageEvent.
type MessageContent interface {
	GetID() string
	GetType() ContentType
}

// ContentHeader holds the fields every message content has.
type ContentHeader struct {
	ID   string      `json:"id"`
	Type ContentType `json:"type"`
}

// GetID implements MessageContent.
func (h *ContentHeader) GetID() string { return h.ID }

// GetType implements MessageContent.
func (h *ContentHeader) GetType() ContentType { return h.Type }

// ContentProvider tells where binary content of image, video and audio messages lives.
type ContentProvider struct {
	Type               string `json:"type"`
	OriginalContentURL string `json:"originalContentUrl,omitempty"`
	PreviewImageURL    string `json:"previewImageUrl,omitempty"`
}

type TextMessageContent struct {
	ContentHeader
	Text string `json:"text"`
}

type ImageMessageContent struct {
	ContentHeader
	ContentProvider ContentProvider `json:"contentProvider"`
}

type VideoMessageContent struct {
	ContentHeader
	Duration        int64           `json:"duration"`
	ContentProvider ContentProvider `json:"contentProvider"`
}

type AudioMessageContent struct {
	ContentHeader
	Duration        int64           `json:"duration"`
	ContentProvider ContentProvider `json:"contentProvider"`
}

type FileMessageContent struct {
	ContentHeader
	FileName string `json:"fileName"`
	FileSize int64  `json:"fileSize"`
}

type LocationMessageContent struct {
	ContentHeader
	Title     string  `json:"title"`
	Address   string  `json:"address"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type StickerMessageContent struct {
	ContentHeader
	PackageID string `json:"packageId"`
	StickerID string `json:"stickerId"`
}

// UnknownMessageContent keeps content types this service does not model yet.
type UnknownMessageContent struct {
	ContentHeader
	Raw json.RawMessage `json:"-"`
}

// ParseMessageContent decodes the "message" object of a message event.
func ParseMessageContent(raw json.RawMessage) (MessageContent, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, errMissingMessage
	}
	var header ContentHeader
	if err := json.Unmarshal(raw, &header); err != nil {
		return nil, fmt.Errorf("failed to unmarshal message content: %w", err)
	}

	var content MessageContent
	switch header.Type {
	case ContentText:
		content = &TextMessageContent{}
	case ContentImage:
		content = &ImageMessageContent{}
	case ContentVideo:
		content = &VideoMessageContent{}
	case ContentAudio:
		content = &AudioMessageContent{}
	case ContentFile:
		content = &FileMessageContent{}
	case ContentLocation:
		content = &LocationMessageContent{}
	case ContentSticker:
		content = &StickerMessageContent{}
	default:
		return &UnknownMessageContent{ContentHeader: header, Raw: raw}, nil
	}
	if err := json.Unmarshal(raw, content); err != nil {
		return nil, fmt.Errorf("failed to unmarshal %s message content: %w", header.Type, err)
	}
	return content, nil
}
