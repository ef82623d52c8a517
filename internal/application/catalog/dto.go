package catalog

import (
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/catalog"
)

// Sort keys accepted by ListProducts
const (
	SortByName      = "name"
	SortByPriceLow  = "price-low"
	SortByPriceHigh = "price-high"
)

// ListProductsQuery carries the browse filters from the API layer
type ListProductsQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Sort     string `form:"sort"`
}

// ProductResponse represents a product in API responses
type ProductResponse struct {
	Code         string          `json:"code"`
	Category     string          `json:"category"`
	Name         string          `json:"name"`
	Price        decimal.Decimal `json:"price"`
	PriceDisplay string          `json:"price_display"`
	Stock        int             `json:"stock"`
	Emoji        string          `json:"emoji,omitempty"`
}

// ProductListResponse wraps a filtered product list
type ProductListResponse struct {
	Products []ProductResponse `json:"products"`
	Total    int               `json:"total"`
}

// CategoryGroupResponse is one category section of the grouped view
type CategoryGroupResponse struct {
	Category string            `json:"category"`
	Products []ProductResponse `json:"products"`
}

// CategoryListResponse lists the selectable category filters
type CategoryListResponse struct {
	Categories []string `json:"categories"`
}

// StatisticsResponse summarizes prices over a product subset
type StatisticsResponse struct {
	Category string          `json:"category"`
	Count    int             `json:"count"`
	Average  decimal.Decimal `json:"average"`
	Min      decimal.Decimal `json:"min"`
	Max      decimal.Decimal `json:"max"`
}

func toProductResponse(p catalog.Product) ProductResponse {
	return ProductResponse{
		Code:         p.Code,
		Category:     p.Category,
		Name:         p.Name,
		Price:        p.Price,
		PriceDisplay: p.PriceMoney().Display(),
		Stock:        p.Stock,
		Emoji:        p.Emoji,
	}
}

func toProductResponses(products []catalog.Product) []ProductResponse {
	responses := make([]ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, toProductResponse(p))
	}
	return responses
}
