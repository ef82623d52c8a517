package catalog

import "context"

// ProductRepository defines persistence operations for catalog products
type ProductRepository interface {
	// FindAll returns the full catalog in seed insertion order
	FindAll(ctx context.Context) ([]Product, error)

	// FindByCode returns the product with the given code, or shared.ErrNotFound
	FindByCode(ctx context.Context, code string) (*Product, error)

	// SaveBatch persists a batch of products (used by the seed loader)
	SaveBatch(ctx context.Context, products []*Product) error

	// Count returns the number of products in the catalog
	Count(ctx context.Context) (int64, error)
}
