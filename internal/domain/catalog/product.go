package catalog

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/storefront/backend/internal/domain/shared/valueobject"
)

// CategoryAll is the query wildcard matching every category.
// It is reserved and never a stored product category.
const CategoryAll = "All"

// Categories present in the reference catalog
const (
	CategoryFruitsVegetables = "Fruits & Vegetables"
	CategoryBakeryEggsDairy  = "Bakery, Eggs & Dairy"
	CategoryPackagedFood     = "Packaged Food"
)

// Product represents a purchasable item in the catalog.
// The catalog is seeded once at startup and read-only afterwards.
type Product struct {
	Code      string          `gorm:"type:varchar(50);primaryKey"`
	Category  string          `gorm:"type:varchar(100);not null;index"`
	Name      string          `gorm:"type:varchar(200);not null"`
	Price     decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Stock     int             `gorm:"not null;default:0"`
	Emoji     string          `gorm:"type:varchar(16)"`
	SortOrder int             `gorm:"not null;default:0"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// NewProduct creates a new catalog product
func NewProduct(code, category, name string, price valueobject.Money, stock int, emoji string) (*Product, error) {
	if err := validateCode(code); err != nil {
		return nil, err
	}
	if err := validateCategory(category); err != nil {
		return nil, err
	}
	if err := validateName(name); err != nil {
		return nil, err
	}
	if price.IsNegative() {
		return nil, shared.NewDomainError("INVALID_PRICE", "Price cannot be negative")
	}
	if stock < 0 {
		return nil, shared.NewDomainError("INVALID_STOCK", "Stock cannot be negative")
	}

	now := time.Now()
	return &Product{
		Code:      code,
		Category:  category,
		Name:      name,
		Price:     price.Amount(),
		Stock:     stock,
		Emoji:     emoji,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// PriceMoney returns the price as Money value object
func (p *Product) PriceMoney() valueobject.Money {
	return valueobject.NewMoneyZAR(p.Price)
}

func validateCode(code string) error {
	if code == "" {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot be empty")
	}
	if len(code) > 50 {
		return shared.NewDomainError("INVALID_CODE", "Product code cannot exceed 50 characters")
	}
	return nil
}

func validateCategory(category string) error {
	if category == "" {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot be empty")
	}
	if category == CategoryAll {
		return shared.NewDomainError("INVALID_CATEGORY", "Category name 'All' is reserved")
	}
	if len(category) > 100 {
		return shared.NewDomainError("INVALID_CATEGORY", "Category cannot exceed 100 characters")
	}
	return nil
}

func validateName(name string) error {
	if name == "" {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot be empty")
	}
	if len(name) > 200 {
		return shared.NewDomainError("INVALID_NAME", "Product name cannot exceed 200 characters")
	}
	return nil
}
