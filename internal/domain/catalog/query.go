package catalog

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Query operations over the catalog. All functions are pure: inputs are
// never mutated and sorts return fresh slices.

// Filter returns the products matching the search text and category.
// The search text matches case-insensitively against name or category;
// an empty search matches everything. CategoryAll matches every category.
// Result order is the input order.
func Filter(products []Product, search, category string) []Product {
	needle := strings.ToLower(search)
	result := make([]Product, 0, len(products))
	for _, p := range products {
		if category != CategoryAll && category != "" && p.Category != category {
			continue
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Name), needle) &&
			!strings.Contains(strings.ToLower(p.Category), needle) {
			continue
		}
		result = append(result, p)
	}
	return result
}

// CategoryGroup is one category's slice of a grouped product sequence
type CategoryGroup struct {
	Category string
	Products []Product
}

// GroupByCategory partitions products by category, preserving the
// first-seen category order. Absent categories produce no group.
func GroupByCategory(products []Product) []CategoryGroup {
	index := make(map[string]int, len(products))
	groups := make([]CategoryGroup, 0)
	for _, p := range products {
		i, ok := index[p.Category]
		if !ok {
			i = len(groups)
			index[p.Category] = i
			groups = append(groups, CategoryGroup{Category: p.Category})
		}
		groups[i].Products = append(groups[i].Products, p)
	}
	return groups
}

// Categories returns the distinct categories in first-seen order
func Categories(products []Product) []string {
	seen := make(map[string]struct{}, len(products))
	result := make([]string, 0)
	for _, p := range products {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		result = append(result, p.Category)
	}
	return result
}

// SortByPrice returns the products ordered by numeric price value.
// The sort is stable: equal prices keep their original relative order.
func SortByPrice(products []Product, ascending bool) []Product {
	result := make([]Product, len(products))
	copy(result, products)
	sort.SliceStable(result, func(i, j int) bool {
		if ascending {
			return result[i].Price.LessThan(result[j].Price)
		}
		return result[i].Price.GreaterThan(result[j].Price)
	})
	return result
}

// SortByName returns the products in locale-aware lexicographic name order
func SortByName(products []Product) []Product {
	result := make([]Product, len(products))
	copy(result, products)
	c := collate.New(language.English)
	sort.SliceStable(result, func(i, j int) bool {
		return c.CompareString(result[i].Name, result[j].Name) < 0
	})
	return result
}

// PriceStatistics summarizes the price distribution of a product subset
type PriceStatistics struct {
	Average decimal.Decimal
	Min     decimal.Decimal
	Max     decimal.Decimal
	Count   int
}

// ComputePriceStatistics returns average/min/max/count over the given
// products' prices. An empty subset is an EMPTY_INPUT error, never NaN.
func ComputePriceStatistics(products []Product) (PriceStatistics, error) {
	if len(products) == 0 {
		return PriceStatistics{}, shared.ErrEmptyInput
	}

	sum := decimal.Zero
	min := products[0].Price
	max := products[0].Price
	for _, p := range products {
		sum = sum.Add(p.Price)
		if p.Price.LessThan(min) {
			min = p.Price
		}
		if p.Price.GreaterThan(max) {
			max = p.Price
		}
	}

	count := int64(len(products))
	return PriceStatistics{
		Average: sum.Div(decimal.NewFromInt(count)).Round(2),
		Min:     min,
		Max:     max,
		Count:   len(products),
	}, nil
}
