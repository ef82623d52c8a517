package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

func TestNewProduct(t *testing.T) {
	price, _ := valueobject.NewMoneyZARFromString("29.99")

	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("item1", CategoryFruitsVegetables, "Granny Smith Apples (6-pack)", price, 20, "🍎")
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "item1", product.Code)
		assert.Equal(t, CategoryFruitsVegetables, product.Category)
		assert.Equal(t, "Granny Smith Apples (6-pack)", product.Name)
		assert.Equal(t, "29.99", product.Price.StringFixed(2))
		assert.Equal(t, 20, product.Stock)
		assert.Equal(t, "🍎", product.Emoji)
	})

	t.Run("price round-trips through Money", func(t *testing.T) {
		product, err := NewProduct("item2", CategoryPackagedFood, "Basmati Rice (1kg)", price, 34, "🍚")
		require.NoError(t, err)
		assert.True(t, product.PriceMoney().Equals(price))
		assert.Equal(t, "R29.99", product.PriceMoney().Display())
	})

	t.Run("fails with empty code", func(t *testing.T) {
		_, err := NewProduct("", CategoryPackagedFood, "Rice", price, 1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "code cannot be empty")
	})

	t.Run("fails with empty category", func(t *testing.T) {
		_, err := NewProduct("item1", "", "Rice", price, 1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Category cannot be empty")
	})

	t.Run("rejects reserved All category", func(t *testing.T) {
		_, err := NewProduct("item1", CategoryAll, "Rice", price, 1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reserved")
	})

	t.Run("fails with empty name", func(t *testing.T) {
		_, err := NewProduct("item1", CategoryPackagedFood, "", price, 1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name cannot be empty")
	})

	t.Run("fails with name too long", func(t *testing.T) {
		_, err := NewProduct("item1", CategoryPackagedFood, strings.Repeat("x", 201), price, 1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 200 characters")
	})

	t.Run("fails with negative stock", func(t *testing.T) {
		_, err := NewProduct("item1", CategoryPackagedFood, "Rice", price, -1, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Stock cannot be negative")
	})
}
