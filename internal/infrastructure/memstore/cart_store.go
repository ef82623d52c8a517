// Package memstore provides in-memory session storage for carts and
// chat conversations. Sessions are not durable; a restart clears them.
package memstore

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared"
)

// CartStore keeps live carts keyed by cart ID
type CartStore struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*cart.Cart
}

// NewCartStore creates an empty cart store
func NewCartStore() *CartStore {
	return &CartStore{
		carts: make(map[uuid.UUID]*cart.Cart),
	}
}

// Save stores or replaces a cart
func (s *CartStore) Save(_ context.Context, c *cart.Cart) error {
	if c == nil {
		return shared.ErrInvalidInput
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.carts[c.GetID()] = c
	return nil
}

// FindByID returns the cart with the given ID, or shared.ErrNotFound
func (s *CartStore) FindByID(_ context.Context, id uuid.UUID) (*cart.Cart, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.carts[id]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return c, nil
}

// Delete removes a cart. Deleting an unknown ID is a no-op.
func (s *CartStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, id)
	return nil
}

// Len returns the number of live carts
func (s *CartStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.carts)
}
