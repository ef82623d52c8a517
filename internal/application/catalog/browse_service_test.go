package catalog

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockProductRepository is a mock implementation of catalog.ProductRepository
type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) FindAll(ctx context.Context) ([]catalog.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]catalog.Product), args.Error(1)
}

func (m *MockProductRepository) FindByCode(ctx context.Context, code string) (*catalog.Product, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductRepository) SaveBatch(ctx context.Context, products []*catalog.Product) error {
	args := m.Called(ctx, products)
	return args.Error(0)
}

func (m *MockProductRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func testProducts() []catalog.Product {
	mk := func(code, category, name, price string, sortOrder int) catalog.Product {
		return catalog.Product{
			Code:      code,
			Category:  category,
			Name:      name,
			Price:     decimal.RequireFromString(price),
			Stock:     10,
			SortOrder: sortOrder,
		}
	}
	return []catalog.Product{
		mk("item1", catalog.CategoryFruitsVegetables, "Granny Smith Apples (6-pack)", "29.99", 0),
		mk("item2", catalog.CategoryFruitsVegetables, "Baby Carrots (500g)", "19.99", 1),
		mk("item7", catalog.CategoryBakeryEggsDairy, "Whole Milk (2L)", "32.99", 2),
		mk("item8", catalog.CategoryBakeryEggsDairy, "Brown Bread (Sliced)", "17.99", 3),
		mk("item12", catalog.CategoryPackagedFood, "Basmati Rice (1kg)", "42.99", 4),
	}
}

func TestBrowseService_ListProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("returns full catalog in seed order by default", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
		service := NewBrowseService(mockRepo)

		resp, err := service.ListProducts(ctx, ListProductsQuery{})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.Total)
		assert.Equal(t, "item1", resp.Products[0].Code)
		assert.Equal(t, "R29.99", resp.Products[0].PriceDisplay)
		mockRepo.AssertExpectations(t)
	})

	t.Run("filters by search text case-insensitively", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
		service := NewBrowseService(mockRepo)

		resp, err := service.ListProducts(ctx, ListProductsQuery{Search: "MILK"})
		require.NoError(t, err)
		require.Equal(t, 1, resp.Total)
		assert.Equal(t, "item7", resp.Products[0].Code)
	})

	t.Run("filters by category", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
		service := NewBrowseService(mockRepo)

		resp, err := service.ListProducts(ctx, ListProductsQuery{Category: catalog.CategoryBakeryEggsDairy})
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
	})

	t.Run("sorts by ascending price", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
		service := NewBrowseService(mockRepo)

		resp, err := service.ListProducts(ctx, ListProductsQuery{Sort: SortByPriceLow})
		require.NoError(t, err)
		assert.Equal(t, "item8", resp.Products[0].Code)
		assert.Equal(t, "item12", resp.Products[len(resp.Products)-1].Code)
	})

	t.Run("sorts by descending price", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
		service := NewBrowseService(mockRepo)

		resp, err := service.ListProducts(ctx, ListProductsQuery{Sort: SortByPriceHigh})
		require.NoError(t, err)
		assert.Equal(t, "item12", resp.Products[0].Code)
	})

	t.Run("sorts by name", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
		service := NewBrowseService(mockRepo)

		resp, err := service.ListProducts(ctx, ListProductsQuery{Sort: SortByName})
		require.NoError(t, err)
		assert.Equal(t, "Baby Carrots (500g)", resp.Products[0].Name)
	})

	t.Run("rejects unknown sort key", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
		service := NewBrowseService(mockRepo)

		_, err := service.ListProducts(ctx, ListProductsQuery{Sort: "cheapest"})
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})

	t.Run("propagates repository errors", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(nil, assert.AnError)
		service := NewBrowseService(mockRepo)

		_, err := service.ListProducts(ctx, ListProductsQuery{})
		assert.ErrorIs(t, err, assert.AnError)
	})
}

func TestBrowseService_GroupedProducts(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
	service := NewBrowseService(mockRepo)

	t.Run("partitions the catalog in first-seen order", func(t *testing.T) {
		groups, err := service.GroupedProducts(ctx, "", "")
		require.NoError(t, err)
		require.Len(t, groups, 3)
		assert.Equal(t, catalog.CategoryFruitsVegetables, groups[0].Category)
		assert.Equal(t, catalog.CategoryBakeryEggsDairy, groups[1].Category)
		assert.Equal(t, catalog.CategoryPackagedFood, groups[2].Category)
		assert.Len(t, groups[0].Products, 2)
	})

	t.Run("category filter narrows to one group", func(t *testing.T) {
		groups, err := service.GroupedProducts(ctx, "", catalog.CategoryBakeryEggsDairy)
		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Len(t, groups[0].Products, 2)
	})

	t.Run("unmatched search yields no groups", func(t *testing.T) {
		groups, err := service.GroupedProducts(ctx, "quinoa", "")
		require.NoError(t, err)
		assert.Empty(t, groups)
	})
}

func TestBrowseService_Categories(t *testing.T) {
	ctx := context.Background()
	mockRepo := new(MockProductRepository)
	mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
	service := NewBrowseService(mockRepo)

	resp, err := service.Categories(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{
		catalog.CategoryAll,
		catalog.CategoryFruitsVegetables,
		catalog.CategoryBakeryEggsDairy,
		catalog.CategoryPackagedFood,
	}, resp.Categories)
}

func TestBrowseService_Statistics(t *testing.T) {
	ctx := context.Background()

	t.Run("computes statistics for one category", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
		service := NewBrowseService(mockRepo)

		resp, err := service.Statistics(ctx, catalog.CategoryBakeryEggsDairy)
		require.NoError(t, err)
		assert.Equal(t, 2, resp.Count)
		assert.Equal(t, "25.49", resp.Average.StringFixed(2))
		assert.Equal(t, "17.99", resp.Min.StringFixed(2))
		assert.Equal(t, "32.99", resp.Max.StringFixed(2))
	})

	t.Run("empty category defaults to the whole catalog", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
		service := NewBrowseService(mockRepo)

		resp, err := service.Statistics(ctx, "")
		require.NoError(t, err)
		assert.Equal(t, catalog.CategoryAll, resp.Category)
		assert.Equal(t, 5, resp.Count)
	})

	t.Run("unknown category yields EMPTY_INPUT", func(t *testing.T) {
		mockRepo := new(MockProductRepository)
		mockRepo.On("FindAll", ctx).Return(testProducts(), nil)
		service := NewBrowseService(mockRepo)

		_, err := service.Statistics(ctx, "Electronics")
		assert.ErrorIs(t, err, shared.ErrEmptyInput)
	})
}
