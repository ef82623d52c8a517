package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/cart"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// AddItemRequest asks for a product to be added to a cart
type AddItemRequest struct {
	ProductCode string `json:"product_code" binding:"required,min=1,max=50"`
}

// UpdateQuantityRequest sets the quantity of an existing cart line
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// CartLineResponse represents one cart line in API responses
type CartLineResponse struct {
	ProductCode   string          `json:"product_code"`
	Name          string          `json:"name"`
	Emoji         string          `json:"emoji,omitempty"`
	UnitPrice     decimal.Decimal `json:"unit_price"`
	Quantity      int             `json:"quantity"`
	Amount        decimal.Decimal `json:"amount"`
	AmountDisplay string          `json:"amount_display"`
}

// CartResponse represents a cart with its totals
type CartResponse struct {
	ID              uuid.UUID          `json:"id"`
	Lines           []CartLineResponse `json:"lines"`
	LineCount       int                `json:"line_count"`
	Subtotal        decimal.Decimal    `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotal_display"`
	DeliveryFee     decimal.Decimal    `json:"delivery_fee"`
	Total           decimal.Decimal    `json:"total"`
	TotalDisplay    string             `json:"total_display"`
	CreatedAt       time.Time          `json:"created_at"`
	UpdatedAt       time.Time          `json:"updated_at"`
}

func toCartResponse(c *cart.Cart, deliveryFee valueobject.Money) (*CartResponse, error) {
	lines := c.Lines()
	lineResponses := make([]CartLineResponse, 0, len(lines))
	for _, l := range lines {
		amount := l.Amount()
		lineResponses = append(lineResponses, CartLineResponse{
			ProductCode:   l.ProductCode,
			Name:          l.Name,
			Emoji:         l.Emoji,
			UnitPrice:     l.UnitPrice.Amount(),
			Quantity:      l.Quantity,
			Amount:        amount.Amount(),
			AmountDisplay: amount.Display(),
		})
	}

	subtotal := c.Subtotal()
	total, err := c.Total(deliveryFee)
	if err != nil {
		return nil, err
	}

	return &CartResponse{
		ID:              c.GetID(),
		Lines:           lineResponses,
		LineCount:       c.LineCount(),
		Subtotal:        subtotal.Amount(),
		SubtotalDisplay: subtotal.Display(),
		DeliveryFee:     deliveryFee.Amount(),
		Total:           total.Amount(),
		TotalDisplay:    total.Display(),
		CreatedAt:       c.GetCreatedAt(),
		UpdatedAt:       c.GetUpdatedAt(),
	}, nil
}
