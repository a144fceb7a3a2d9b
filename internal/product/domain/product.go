package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Supply is one bill-of-materials line of a variant. Materials are
// referenced by name; there is no referential integrity against the
// material inventory.
type Supply struct {
	Material string  `json:"material"`
	Quantity float64 `json:"quantity"`
}

// Variant is a sellable variation of a product with its own price, safety
// stock buffer and supply list.
type Variant struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Buffer   int             `json:"buffer"`
	Supplies []Supply        `json:"supplies"`
}

// Product represents a finished product.
type Product struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Variants    []Variant `json:"variants"`
	Images      []string  `json:"images,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ErrNotFound is returned when a product id has no match.
var ErrNotFound = errors.New("product not found")

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id string) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	FindByCategory(category string, limit, offset int) ([]Product, error)
	All() ([]Product, error)
	Update(product *Product) error
	Delete(id string) error
	Count() (int64, error)
}
