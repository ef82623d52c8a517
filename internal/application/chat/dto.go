package chat

import (
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/chat"
)

// SendMessageRequest carries one user chat message
type SendMessageRequest struct {
	Text string `json:"text" binding:"required,min=1,max=1000"`
}

// MessageResponse represents one message of a conversation
type MessageResponse struct {
	ID     int       `json:"id"`
	Sender string    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// SessionResponse represents a chat session and its message log
type SessionResponse struct {
	ID       uuid.UUID         `json:"id"`
	Messages []MessageResponse `json:"messages"`
}

// SendResponse acknowledges a user message. The assistant reply is
// appended to the log after the typing delay; ReplyAfter tells the
// client how long to show the typing indicator before refetching.
type SendResponse struct {
	Message     MessageResponse `json:"message"`
	ShowCatalog bool            `json:"show_catalog"`
	ReplyAfter  int64           `json:"reply_after_ms"`
}

func toMessageResponse(m chat.Message) MessageResponse {
	return MessageResponse{
		ID:     m.ID,
		Sender: string(m.Sender),
		Text:   m.Text,
		SentAt: m.SentAt,
	}
}

func toMessageResponses(messages []chat.Message) []MessageResponse {
	responses := make([]MessageResponse, 0, len(messages))
	for _, m := range messages {
		responses = append(responses, toMessageResponse(m))
	}
	return responses
}
