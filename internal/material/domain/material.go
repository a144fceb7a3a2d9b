package domain

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Status reflects quantity against the reorder threshold. It is derived at
// create time and, unless status recomputation is enabled, left untouched by
// later quantity changes so it can act as a manual override.
type Status string

const (
	StatusInStock    Status = "In-stock"
	StatusLowStock   Status = "Low stock"
	StatusOutOfStock Status = "Out-of-stock"
)

// Material represents a raw material tracked in the inventory.
type Material struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Category    string          `json:"category"`
	Quantity    int             `json:"quantity"`
	Unit        string          `json:"unit"`
	BuyingPrice decimal.Decimal `json:"buying_price"`
	Threshold   int             `json:"threshold"`
	Supplier    string          `json:"supplier"`
	BuyLink     string          `json:"buy_link"`
	Image       string          `json:"image,omitempty"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// DeriveStatus classifies a quantity against the reorder threshold.
func DeriveStatus(quantity, threshold int) Status {
	switch {
	case quantity <= 0:
		return StatusOutOfStock
	case quantity <= threshold:
		return StatusLowStock
	default:
		return StatusInStock
	}
}

// Value returns the inventory value of the material (price times quantity).
func (m *Material) Value() decimal.Decimal {
	return m.BuyingPrice.Mul(decimal.NewFromInt(int64(m.Quantity)))
}

// ErrNotFound is returned when a material id has no match.
var ErrNotFound = errors.New("material not found")

// MaterialRepository defines the contract for material data access.
// Material names are not unique; only ids are.
type MaterialRepository interface {
	Create(material *Material) error
	FindByID(id string) (*Material, error)
	FindAll(limit, offset int) ([]Material, error)
	Search(name, category string, limit, offset int) ([]Material, error)
	All() ([]Material, error)
	Update(material *Material) error
	Delete(id string) error
	Count() (int64, error)
	Categories() ([]string, error)
	Units() ([]string, error)
	Suppliers() ([]string, error)
}
