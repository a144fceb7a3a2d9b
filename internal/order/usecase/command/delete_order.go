package command

import (
	"errors"
	"fmt"

	"github.com/atelierlabs/workroom/internal/order/domain"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	ID string
}

// DeleteOrderHandler handles delete order command
type DeleteOrderHandler struct {
	repo domain.OrderRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(repo domain.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo}
}

// Handle executes the delete order command. Order deletion is immediate,
// needs no confirmation, and cannot be undone within the session.
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	if err := h.repo.Delete(cmd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}
