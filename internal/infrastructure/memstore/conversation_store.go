package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/chat"
	"github.com/storefront/backend/internal/domain/shared"
)

// ConversationStore keeps live chat conversations keyed by session ID
type ConversationStore struct {
	mu            sync.RWMutex
	conversations map[uuid.UUID]*chat.Conversation
}

// NewConversationStore creates an empty conversation store
func NewConversationStore() *ConversationStore {
	return &ConversationStore{
		conversations: make(map[uuid.UUID]*chat.Conversation),
	}
}

// Save stores or replaces a conversation
func (s *ConversationStore) Save(_ context.Context, conv *chat.Conversation) error {
	if conv == nil {
		return shared.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.conversations[conv.GetID()] = conv
	return nil
}

// FindByID returns the conversation with the given ID, or shared.ErrNotFound
func (s *ConversationStore) FindByID(_ context.Context, id uuid.UUID) (*chat.Conversation, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	conv, ok := s.conversations[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return conv, nil
}

// Delete removes a conversation. Deleting an unknown ID is a no-op.
func (s *ConversationStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.conversations, id)
	return nil
}

// Len returns the number of live conversations
func (s *ConversationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.conversations)
}
