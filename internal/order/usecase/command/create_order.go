package command

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelierlabs/workroom/internal/order/domain"
	"github.com/atelierlabs/workroom/internal/validation"
)

// CreateOrderCommand represents the command to create an order
type CreateOrderCommand struct {
	Name    string
	Variant string
	Qty     int
	Price   decimal.Decimal
	Date    domain.Date
}

// CreateOrderHandler handles create order command
type CreateOrderHandler struct {
	repo domain.OrderRepository
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(repo domain.OrderRepository) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(cmd CreateOrderCommand) (*domain.Order, error) {
	var verr validation.Error
	if cmd.Name == "" {
		verr.Add("name", "is required")
	}
	if cmd.Variant == "" {
		verr.Add("variant", "is required")
	}
	if cmd.Qty <= 0 {
		verr.Add("qty", "must be greater than 0")
	}
	if cmd.Price.IsNegative() {
		verr.Add("price", "must not be negative")
	}
	if cmd.Date.IsZero() {
		verr.Add("date", "is required")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	order := &domain.Order{
		ID:      fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		Name:    cmd.Name,
		Variant: cmd.Variant,
		Qty:     cmd.Qty,
		Price:   cmd.Price,
		Date:    cmd.Date,
	}

	if err := h.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}
