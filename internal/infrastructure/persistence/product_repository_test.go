package persistence

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
	"github.com/storefront/backend/internal/infrastructure/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(&config.DatabaseConfig{Path: ":memory:"})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate())

	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}

func mustProduct(t *testing.T, code, category, name, price string, stock int, sortOrder int) *catalog.Product {
	t.Helper()

	money, err := valueobject.NewMoneyZARFromString(price)
	require.NoError(t, err)
	product, err := catalog.NewProduct(code, category, name, money, stock, "🧺")
	require.NoError(t, err)
	product.SortOrder = sortOrder
	return product
}

func TestGormProductRepository_SaveBatchAndFindAll(t *testing.T) {
	db := setupTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	products := []*catalog.Product{
		mustProduct(t, "p1", catalog.CategoryFruitsVegetables, "Apples", "29.99", 20, 0),
		mustProduct(t, "p2", catalog.CategoryBakeryEggsDairy, "Milk", "32.99", 60, 1),
		mustProduct(t, "p3", catalog.CategoryPackagedFood, "Rice", "42.99", 34, 2),
	}
	require.NoError(t, repo.SaveBatch(ctx, products))

	t.Run("returns products in seed order", func(t *testing.T) {
		found, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, found, 3)
		assert.Equal(t, "p1", found[0].Code)
		assert.Equal(t, "p2", found[1].Code)
		assert.Equal(t, "p3", found[2].Code)
	})

	t.Run("preserves exact prices", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, "p1")
		require.NoError(t, err)
		assert.True(t, found.Price.Equal(decimal.RequireFromString("29.99")))
	})

	t.Run("counts all products", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		require.NoError(t, repo.SaveBatch(ctx, nil))
	})
}

func TestGormProductRepository_FindByCode(t *testing.T) {
	db := setupTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, repo.SaveBatch(ctx, []*catalog.Product{
		mustProduct(t, "p1", catalog.CategoryFruitsVegetables, "Apples", "29.99", 20, 0),
	}))

	t.Run("finds existing product", func(t *testing.T) {
		found, err := repo.FindByCode(ctx, "p1")
		require.NoError(t, err)
		assert.Equal(t, "Apples", found.Name)
	})

	t.Run("returns ErrNotFound for unknown code", func(t *testing.T) {
		_, err := repo.FindByCode(ctx, "missing")
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestSeedCatalog(t *testing.T) {
	db := setupTestDatabase(t)
	repo := NewGormProductRepository(db.DB)
	ctx := context.Background()

	require.NoError(t, SeedCatalog(ctx, repo))

	t.Run("loads the full catalog", func(t *testing.T) {
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(SeedSize()), count)
	})

	t.Run("keeps seed order", func(t *testing.T) {
		products, err := repo.FindAll(ctx)
		require.NoError(t, err)
		require.Len(t, products, SeedSize())
		assert.Equal(t, "item1", products[0].Code)
		assert.Equal(t, "item20", products[len(products)-1].Code)
	})

	t.Run("parses tagged prices into exact decimals", func(t *testing.T) {
		bread, err := repo.FindByCode(ctx, "item8")
		require.NoError(t, err)
		assert.Equal(t, "17.99", bread.Price.StringFixed(2))
		assert.Equal(t, "R17.99", bread.PriceMoney().Display())
	})

	t.Run("is idempotent", func(t *testing.T) {
		require.NoError(t, SeedCatalog(ctx, repo))
		count, err := repo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, int64(SeedSize()), count)
	})
}
