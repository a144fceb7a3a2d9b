package query

import (
	"fmt"

	orderdomain "github.com/atelierlabs/workroom/internal/order/domain"
	"github.com/atelierlabs/workroom/internal/planning"
)

// TodoHandler derives the outstanding-work views from the order book.
type TodoHandler struct {
	orders orderdomain.OrderRepository
}

// NewTodoHandler creates a new to-do handler
func NewTodoHandler(orders orderdomain.OrderRepository) *TodoHandler {
	return &TodoHandler{orders: orders}
}

// MaterialsNeeded returns total quantity needed per material variant.
func (h *TodoHandler) MaterialsNeeded() (map[string]int, error) {
	orders, err := h.orders.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return planning.MaterialDemand(orders), nil
}

// ProductsNeeded returns quantity needed per design per variant.
func (h *TodoHandler) ProductsNeeded() (map[string]map[string]int, error) {
	orders, err := h.orders.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return planning.ProductDemand(orders), nil
}
