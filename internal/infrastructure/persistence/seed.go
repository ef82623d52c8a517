package persistence

import (
	"context"
	"fmt"

	"github.com/storefront/backend/internal/domain/catalog"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// seedRow is one entry of the static catalog. Prices carry the currency
// symbol exactly as merchandising supplies them and are parsed once at boot.
type seedRow struct {
	Code     string
	Category string
	Name     string
	Price    string
	Stock    int
	Emoji    string
}

var catalogSeed = []seedRow{
	{"item1", catalog.CategoryFruitsVegetables, "Granny Smith Apples (6-pack)", "R29.99", 20, "🍎"},
	{"item2", catalog.CategoryFruitsVegetables, "Baby Carrots (500g)", "R19.99", 35, "🥕"},
	{"item3", catalog.CategoryFruitsVegetables, "Baby Spinach (200g)", "R24.99", 40, "🥬"},
	{"item4", catalog.CategoryFruitsVegetables, "Strawberries (250g)", "R34.99", 25, "🍓"},
	{"item5", catalog.CategoryFruitsVegetables, "Avocados (2-pack)", "R22.99", 15, "🥑"},
	{"item6", catalog.CategoryBakeryEggsDairy, "Large Free Range Eggs (18-pack)", "R54.99", 44, "🥚"},
	{"item7", catalog.CategoryBakeryEggsDairy, "Whole Milk (2L)", "R32.99", 60, "🥛"},
	{"item8", catalog.CategoryBakeryEggsDairy, "Brown Bread (Sliced)", "R17.99", 90, "🍞"},
	{"item9", catalog.CategoryBakeryEggsDairy, "Cheddar Cheese (250g)", "R45.99", 38, "🧀"},
	{"item10", catalog.CategoryBakeryEggsDairy, "Plain Yoghurt (1kg)", "R36.99", 26, "🥛"},
	{"item11", catalog.CategoryPackagedFood, "Wholewheat Pasta (500g)", "R25.99", 42, "🍝"},
	{"item12", catalog.CategoryPackagedFood, "Basmati Rice (1kg)", "R42.99", 34, "🍚"},
	{"item13", catalog.CategoryPackagedFood, "Tomato Pasta Sauce (400g)", "R22.99", 29, "🍅"},
	{"item14", catalog.CategoryPackagedFood, "Granola Bars (Box of 6)", "R37.99", 19, "🥜"},
	{"item15", catalog.CategoryPackagedFood, "Peanut Butter (400g)", "R32.99", 36, "🥜"},
	{"item16", catalog.CategoryPackagedFood, "Cereal Flakes (750g)", "R49.99", 39, "🥣"},
	{"item17", catalog.CategoryPackagedFood, "Instant Coffee (200g)", "R59.99", 23, "☕"},
	{"item18", catalog.CategoryPackagedFood, "Coconut Cream (400ml)", "R26.99", 27, "🥥"},
	{"item19", catalog.CategoryPackagedFood, "Long Life Milk (6-pack)", "R72.99", 45, "🥛"},
	{"item20", catalog.CategoryPackagedFood, "Canned Chickpeas (410g)", "R17.99", 21, "🫘"},
}

// SeedCatalog loads the static product catalog into the repository.
// It is idempotent: an already populated catalog is left untouched.
// A malformed price in the seed aborts startup rather than surfacing
// a broken catalog to clients.
func SeedCatalog(ctx context.Context, repo catalog.ProductRepository) error {
	count, err := repo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to check catalog state: %w", err)
	}
	if count > 0 {
		return nil
	}

	products := make([]*catalog.Product, 0, len(catalogSeed))
	for i, row := range catalogSeed {
		price, err := valueobject.ParseTagged(row.Price, valueobject.DefaultCurrency)
		if err != nil {
			return shared.NewDomainError("DATA_INTEGRITY",
				fmt.Sprintf("malformed seed price %q for product %s: %v", row.Price, row.Code, err))
		}

		product, err := catalog.NewProduct(row.Code, row.Category, row.Name, price, row.Stock, row.Emoji)
		if err != nil {
			return shared.NewDomainError("DATA_INTEGRITY",
				fmt.Sprintf("invalid seed product %s: %v", row.Code, err))
		}
		product.SortOrder = i
		products = append(products, product)
	}

	if err := repo.SaveBatch(ctx, products); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}
	return nil
}

// SeedSize returns the number of products in the static catalog
func SeedSize() int {
	return len(catalogSeed)
}
