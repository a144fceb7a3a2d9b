package command

import (
	"fmt"
	"time"

	"github.com/atelierlabs/workroom/internal/material/domain"
	"github.com/atelierlabs/workroom/internal/validation"
)

// AdjustQuantityCommand changes a material's quantity either relatively
// (Delta, clamped at zero) or absolutely (Set, negatives rejected).
type AdjustQuantityCommand struct {
	ID    string
	Delta *int
	Set   *int
}

// AdjustQuantityHandler handles quantity adjustments
type AdjustQuantityHandler struct {
	repo            domain.MaterialRepository
	recomputeStatus bool
}

// NewAdjustQuantityHandler creates a new adjust quantity handler
func NewAdjustQuantityHandler(repo domain.MaterialRepository, recomputeStatus bool) *AdjustQuantityHandler {
	return &AdjustQuantityHandler{repo: repo, recomputeStatus: recomputeStatus}
}

// Handle executes the adjust quantity command
func (h *AdjustQuantityHandler) Handle(cmd AdjustQuantityCommand) (*domain.Material, error) {
	var verr validation.Error
	switch {
	case cmd.Delta == nil && cmd.Set == nil:
		verr.Add("delta", "either delta or set is required")
	case cmd.Delta != nil && cmd.Set != nil:
		verr.Add("delta", "delta and set are mutually exclusive")
	case cmd.Set != nil && *cmd.Set < 0:
		verr.Add("set", "must not be negative")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	material, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	if cmd.Delta != nil {
		material.Quantity += *cmd.Delta
		if material.Quantity < 0 {
			material.Quantity = 0
		}
	} else {
		material.Quantity = *cmd.Set
	}

	if h.recomputeStatus {
		material.Status = domain.DeriveStatus(material.Quantity, material.Threshold)
	}
	material.UpdatedAt = time.Now()

	if err := h.repo.Update(material); err != nil {
		return nil, fmt.Errorf("failed to adjust quantity: %w", err)
	}

	return material, nil
}
