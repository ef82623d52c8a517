package chat

import (
	"strings"
	"time"

	"github.com/storefront/backend/internal/domain/shared"
)

// Sender identifies who produced a chat message
type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one entry in a conversation log
type Message struct {
	ID     int       `json:"id"`
	Sender Sender    `json:"sender"`
	Text   string    `json:"text"`
	SentAt time.Time `json:"sent_at"`
}

// Greeting opens every new conversation
const Greeting = "Hi! 👋 Welcome to the store chat. I'm your personal shopping assistant! How can I help you today?"

// Canned assistant replies. The assistant is a deterministic keyword
// matcher, not a language model: the same input always produces the
// same reply.
const (
	replyBrowse  = "Perfect! Here are all our available grocery items. You can browse through our fresh selection! 🛍️"
	replyHelp    = "I can help you browse our grocery items! Try saying 'show groceries' or 'browse items' to see what we have available. 🛒"
	replyPrice   = "I can show you prices for all our items! Type 'show groceries' to see our full catalog with prices. 💰"
	replyDefault = "I'd be happy to help! You can ask me to 'show groceries' to browse our available items, or ask about specific products. 😊"
)

// Reply is the assistant's scripted response to a user message.
// ShowCatalog tells the client to open the product panel.
type Reply struct {
	Text        string
	ShowCatalog bool
}

// Respond maps a user message to its scripted reply. Matching is
// case-insensitive substring lookup, first match wins.
func Respond(input string) Reply {
	text := strings.ToLower(input)
	switch {
	case strings.Contains(text, "grocery"),
		strings.Contains(text, "show"),
		strings.Contains(text, "browse"):
		return Reply{Text: replyBrowse, ShowCatalog: true}
	case strings.Contains(text, "help"):
		return Reply{Text: replyHelp}
	case strings.Contains(text, "price"):
		return Reply{Text: replyPrice}
	}
	return Reply{Text: replyDefault}
}

// Conversation is a session-scoped message log. It starts with the
// greeting and grows by appends only; messages are never edited or
// removed.
type Conversation struct {
	shared.BaseEntity
	messages []Message
	nextID   int
}

// NewConversation creates a conversation seeded with the greeting
func NewConversation() *Conversation {
	c := &Conversation{
		BaseEntity: shared.NewBaseEntity(),
		messages:   make([]Message, 0, 1),
		nextID:     1,
	}
	c.Append(SenderBot, Greeting)
	return c
}

// Append adds a message to the log and returns it
func (c *Conversation) Append(sender Sender, text string) Message {
	msg := Message{
		ID:     c.nextID,
		Sender: sender,
		Text:   text,
		SentAt: time.Now(),
	}
	c.nextID++
	c.messages = append(c.messages, msg)
	c.Touch()
	return msg
}

// Messages returns a copy of the log in append order
func (c *Conversation) Messages() []Message {
	result := make([]Message, len(c.messages))
	copy(result, c.messages)
	return result
}
