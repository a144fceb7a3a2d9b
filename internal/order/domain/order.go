package domain

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// Date is a calendar date with no time-of-day or timezone semantics. It
// marshals as yyyy-mm-dd, the same form the orders CSV uses.
type Date struct {
	time.Time
}

// ParseDate parses a yyyy-mm-dd string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: expected yyyy-mm-dd", s)
	}
	return Date{t}, nil
}

func (d Date) String() string {
	return d.Format(dateLayout)
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	parsed, err := ParseDate(strings.Trim(string(data), `"`))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Order represents one incoming order line for a design in a specific
// variant. Variant is free text matched by exact string elsewhere.
type Order struct {
	ID      string          `json:"id"`
	Name    string          `json:"name"`
	Variant string          `json:"variant"`
	Qty     int             `json:"qty"`
	Price   decimal.Decimal `json:"price"`
	Date    Date            `json:"date"`
}

// ErrNotFound is returned when an order id has no match.
var ErrNotFound = errors.New("order not found")

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	Create(order *Order) error
	CreateBatch(orders []Order) error
	FindByID(id string) (*Order, error)
	All() ([]Order, error)
	Delete(id string) error
	Count() (int64, error)
}
