package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/chat"
)

// ConversationStore abstracts chat session storage
type ConversationStore interface {
	Save(ctx context.Context, conv *chat.Conversation) error
	FindByID(ctx context.Context, id uuid.UUID) (*chat.Conversation, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ChatService handles scripted assistant conversations. Assistant
// replies are appended asynchronously after a typing delay so clients
// can show a typing indicator, the way a human support agent would
// appear to a shopper.
type ChatService struct {
	store       ConversationStore
	typingDelay time.Duration

	mu   sync.Mutex // serializes appends across the reply goroutines
	wg   sync.WaitGroup
	done chan struct{}
}

// NewChatService creates a new ChatService with the given typing delay
func NewChatService(store ConversationStore, typingDelay time.Duration) *ChatService {
	return &ChatService{
		store:       store,
		typingDelay: typingDelay,
		done:        make(chan struct{}),
	}
}

// StartSession creates a new conversation seeded with the greeting
func (s *ChatService) StartSession(ctx context.Context) (*SessionResponse, error) {
	conv := chat.NewConversation()
	if err := s.store.Save(ctx, conv); err != nil {
		return nil, err
	}
	return &SessionResponse{
		ID:       conv.GetID(),
		Messages: toMessageResponses(conv.Messages()),
	}, nil
}

// Messages returns the full message log of a session
func (s *ChatService) Messages(ctx context.Context, sessionID uuid.UUID) (*SessionResponse, error) {
	conv, err := s.store.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	messages := conv.Messages()
	s.mu.Unlock()

	return &SessionResponse{
		ID:       conv.GetID(),
		Messages: toMessageResponses(messages),
	}, nil
}

// Send appends a user message and schedules the scripted assistant
// reply after the typing delay. The reply is dropped if the service
// shuts down before the delay elapses.
func (s *ChatService) Send(ctx context.Context, sessionID uuid.UUID, req SendMessageRequest) (*SendResponse, error) {
	conv, err := s.store.FindByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	msg := conv.Append(chat.SenderUser, req.Text)
	s.mu.Unlock()

	reply := chat.Respond(req.Text)

	s.wg.Add(1)
	go s.deliverReply(conv, reply)

	return &SendResponse{
		Message:     toMessageResponse(msg),
		ShowCatalog: reply.ShowCatalog,
		ReplyAfter:  s.typingDelay.Milliseconds(),
	}, nil
}

// Close cancels pending assistant replies and waits for the reply
// goroutines to finish
func (s *ChatService) Close() {
	close(s.done)
	s.wg.Wait()
}

func (s *ChatService) deliverReply(conv *chat.Conversation, reply chat.Reply) {
	defer s.wg.Done()

	timer := time.NewTimer(s.typingDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-s.done:
		return
	}

	s.mu.Lock()
	conv.Append(chat.SenderBot, reply.Text)
	s.mu.Unlock()
}
