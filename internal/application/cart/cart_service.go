package cart

import (
	"context"
	"sync"

	"github.com/google/uuid"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// CartStore abstracts cart session storage
type CartStore interface {
	Save(ctx context.Context, c *cart.Cart) error
	FindByID(ctx context.Context, id uuid.UUID) (*cart.Cart, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// CartService handles cart session operations. The store hands out
// shared aggregates, so every read-mutate-save cycle runs under mu;
// concurrent requests to the same cart are serialized here.
type CartService struct {
	store       CartStore
	productRepo catalog.ProductRepository
	deliveryFee valueobject.Money

	mu sync.Mutex
}

// NewCartService creates a new CartService
func NewCartService(store CartStore, productRepo catalog.ProductRepository, deliveryFee valueobject.Money) *CartService {
	return &CartService{
		store:       store,
		productRepo: productRepo,
		deliveryFee: deliveryFee,
	}
}

// CreateCart starts a new empty cart session
func (s *CartService) CreateCart(ctx context.Context) (*CartResponse, error) {
	c := cart.NewCart()
	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return toCartResponse(c, s.deliveryFee)
}

// GetCart returns the cart with the given ID
func (s *CartService) GetCart(ctx context.Context, cartID uuid.UUID) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}
	return toCartResponse(c, s.deliveryFee)
}

// AddItem adds one unit of a catalog product to the cart. Adding a
// product already in the cart increments its line quantity instead
// of creating a second line.
func (s *CartService) AddItem(ctx context.Context, cartID uuid.UUID, req AddItemRequest) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByCode(ctx, req.ProductCode)
	if err != nil {
		return nil, err
	}

	if _, err := c.AddItem(cart.ItemSnapshot{
		ProductCode: product.Code,
		Name:        product.Name,
		Price:       product.PriceMoney(),
		Emoji:       product.Emoji,
	}); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return toCartResponse(c, s.deliveryFee)
}

// UpdateQuantity sets the quantity of an existing cart line.
// Quantities below one are clamped to one rather than rejected.
func (s *CartService) UpdateQuantity(ctx context.Context, cartID uuid.UUID, productCode string, req UpdateQuantityRequest) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	if _, err := c.SetQuantity(productCode, req.Quantity); err != nil {
		return nil, err
	}

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return toCartResponse(c, s.deliveryFee)
}

// RemoveItem removes a line from the cart. Removing a product that is
// not in the cart is a no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, cartID uuid.UUID, productCode string) (*CartResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	c, err := s.store.FindByID(ctx, cartID)
	if err != nil {
		return nil, err
	}

	c.RemoveItem(productCode)

	if err := s.store.Save(ctx, c); err != nil {
		return nil, err
	}
	return toCartResponse(c, s.deliveryFee)
}
