package cart

import (
	"time"

	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// ItemSnapshot is the plain descriptor a caller hands to the cart when
// adding a product. The cart copies these fields into the line; it never
// holds a reference back into the catalog.
type ItemSnapshot struct {
	ProductCode string
	Name        string
	Price       valueobject.Money
	Emoji       string
}

// CartLine is one entry in the cart: a distinct product and its quantity.
// Name, price and emoji are snapshots taken at first add.
type CartLine struct {
	ProductCode string
	Name        string
	UnitPrice   valueobject.Money
	Emoji       string
	Quantity    int
	AddedAt     time.Time
	UpdatedAt   time.Time
}

// Amount returns UnitPrice * Quantity
func (l *CartLine) Amount() valueobject.Money {
	return l.UnitPrice.MultiplyByInt(int64(l.Quantity))
}

// Cart is the session's ledger of selected items. It holds at most one
// line per product code; repeat adds merge into the existing line.
// Lines keep the order of their first add for display.
type Cart struct {
	shared.BaseEntity
	lines []*CartLine
	index map[string]*CartLine
}

// NewCart creates an empty cart
func NewCart() *Cart {
	return &Cart{
		BaseEntity: shared.NewBaseEntity(),
		lines:      make([]*CartLine, 0),
		index:      make(map[string]*CartLine),
	}
}

// AddItem merges the snapshot into the cart: an existing line for the
// product gains one unit, otherwise a new line with quantity 1 is
// appended. Returns the affected line.
func (c *Cart) AddItem(item ItemSnapshot) (*CartLine, error) {
	if item.ProductCode == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT", "Product code cannot be empty")
	}
	if item.Name == "" {
		return nil, shared.NewDomainError("INVALID_PRODUCT_NAME", "Product name cannot be empty")
	}
	if item.Price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Unit price cannot be negative")
	}

	now := time.Now()
	if line, ok := c.index[item.ProductCode]; ok {
		line.Quantity++
		line.UpdatedAt = now
		c.Touch()
		return line, nil
	}

	line := &CartLine{
		ProductCode: item.ProductCode,
		Name:        item.Name,
		UnitPrice:   item.Price,
		Emoji:       item.Emoji,
		Quantity:    1,
		AddedAt:     now,
		UpdatedAt:   now,
	}
	c.lines = append(c.lines, line)
	c.index[item.ProductCode] = line
	c.Touch()
	return line, nil
}

// SetQuantity sets the quantity of an existing line. Quantities below 1
// are clamped to 1: a line never reaches zero through updates, removal
// is its own operation. Returns shared.ErrNotFound when no line exists
// for the product.
func (c *Cart) SetQuantity(productCode string, quantity int) (*CartLine, error) {
	line, ok := c.index[productCode]
	if !ok {
		return nil, shared.ErrNotFound
	}
	if quantity < 1 {
		quantity = 1
	}
	line.Quantity = quantity
	line.UpdatedAt = time.Now()
	c.Touch()
	return line, nil
}

// RemoveItem deletes the line for the product if present. Removal is
// idempotent: a missing line is not an error. Returns whether a line
// was removed.
func (c *Cart) RemoveItem(productCode string) bool {
	if _, ok := c.index[productCode]; !ok {
		return false
	}
	delete(c.index, productCode)
	for i, line := range c.lines {
		if line.ProductCode == productCode {
			c.lines = append(c.lines[:i], c.lines[i+1:]...)
			break
		}
	}
	c.Touch()
	return true
}

// Line returns the line for the product, or shared.ErrNotFound
func (c *Cart) Line(productCode string) (*CartLine, error) {
	line, ok := c.index[productCode]
	if !ok {
		return nil, shared.ErrNotFound
	}
	return line, nil
}

// Lines returns the cart lines in first-add order
func (c *Cart) Lines() []CartLine {
	result := make([]CartLine, len(c.lines))
	for i, line := range c.lines {
		result[i] = *line
	}
	return result
}

// LineCount returns the number of distinct lines (the badge count),
// not the summed quantity
func (c *Cart) LineCount() int {
	return len(c.lines)
}

// IsEmpty returns true if the cart has no lines
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// Subtotal returns the sum of UnitPrice * Quantity over all lines
func (c *Cart) Subtotal() valueobject.Money {
	total := valueobject.ZeroZAR()
	for _, line := range c.lines {
		total = total.MustAdd(line.Amount())
	}
	return total
}

// Total returns Subtotal plus the caller-supplied delivery fee
func (c *Cart) Total(deliveryFee valueobject.Money) (valueobject.Money, error) {
	return c.Subtotal().Add(deliveryFee)
}
