package catalog

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
)

// BrowseService handles catalog browsing operations
type BrowseService struct {
	productRepo catalog.ProductRepository
}

// NewBrowseService creates a new BrowseService
func NewBrowseService(productRepo catalog.ProductRepository) *BrowseService {
	return &BrowseService{productRepo: productRepo}
}

// ListProducts returns the catalog filtered by search text and category,
// optionally sorted. Without a sort key, products keep their seed order.
func (s *BrowseService) ListProducts(ctx context.Context, query ListProductsQuery) (*ProductListResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := catalog.Filter(products, query.Search, query.Category)

	switch query.Sort {
	case "":
		// keep seed order
	case SortByName:
		filtered = catalog.SortByName(filtered)
	case SortByPriceLow:
		filtered = catalog.SortByPrice(filtered, true)
	case SortByPriceHigh:
		filtered = catalog.SortByPrice(filtered, false)
	default:
		return nil, shared.NewDomainError("INVALID_INPUT",
			fmt.Sprintf("unknown sort key %q", query.Sort))
	}

	return &ProductListResponse{
		Products: toProductResponses(filtered),
		Total:    len(filtered),
	}, nil
}

// GroupedProducts returns the filtered catalog partitioned by category,
// categories appearing in the order they are first seen.
func (s *BrowseService) GroupedProducts(ctx context.Context, search, category string) ([]CategoryGroupResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered := catalog.Filter(products, search, category)
	groups := catalog.GroupByCategory(filtered)

	responses := make([]CategoryGroupResponse, 0, len(groups))
	for _, g := range groups {
		responses = append(responses, CategoryGroupResponse{
			Category: g.Category,
			Products: toProductResponses(g.Products),
		})
	}
	return responses, nil
}

// Categories returns the selectable category filters, with the
// wildcard entry first followed by distinct categories in catalog order.
func (s *BrowseService) Categories(ctx context.Context) (*CategoryListResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	categories := append([]string{catalog.CategoryAll}, catalog.Categories(products)...)
	return &CategoryListResponse{Categories: categories}, nil
}

// Statistics computes price statistics over one category, or the whole
// catalog when the wildcard category is given. An empty subset is an error.
func (s *BrowseService) Statistics(ctx context.Context, category string) (*StatisticsResponse, error) {
	products, err := s.productRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	if category == "" {
		category = catalog.CategoryAll
	}
	subset := catalog.Filter(products, "", category)

	stats, err := catalog.ComputePriceStatistics(subset)
	if err != nil {
		return nil, err
	}

	return &StatisticsResponse{
		Category: category,
		Count:    stats.Count,
		Average:  stats.Average,
		Min:      stats.Min,
		Max:      stats.Max,
	}, nil
}
