package command

import (
	materialdomain "github.com/atelierlabs/workroom/internal/material/domain"
	"github.com/atelierlabs/workroom/internal/planning"
)

// DismissEntryCommand removes one entry from the restock queue view.
type DismissEntryCommand struct {
	MaterialID string
}

// DismissEntryHandler handles queue dismissals
type DismissEntryHandler struct {
	materials materialdomain.MaterialRepository
	dismissed *planning.DismissSet
}

// NewDismissEntryHandler creates a new dismiss entry handler
func NewDismissEntryHandler(materials materialdomain.MaterialRepository, dismissed *planning.DismissSet) *DismissEntryHandler {
	return &DismissEntryHandler{materials: materials, dismissed: dismissed}
}

// Handle executes the dismissal. No confirmation is required and there is
// no undo; the material itself is left untouched.
func (h *DismissEntryHandler) Handle(cmd DismissEntryCommand) error {
	if _, err := h.materials.FindByID(cmd.MaterialID); err != nil {
		return err
	}
	h.dismissed.Dismiss(cmd.MaterialID)
	return nil
}
