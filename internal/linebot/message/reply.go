package message

// ReplyMessage answers an event using its reply token.
type ReplyMessage struct {
	ReplyToken string    `json:"replyToken"`
	Messages   []Message `json:"messages"`
}

// NewReply creates a ReplyMessage with the messages in the given order.
func NewReply(replyToken string, messages ...Message) *ReplyMessage {
	return &ReplyMessage{ReplyToken: replyToken, Messages: messages}
}

// Validate checks the constraints the Messaging API puts on replies.
func (r *ReplyMessage) Validate() error {
	if r.ReplyToken == "" {
		return ErrMissingReplyToken
	}
	if len(r.Messages) == 0 || len(r.Messages) > MaxReplyMessages {
		return ErrMessageCount
	}
	return nil
}
