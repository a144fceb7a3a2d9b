package command

import (
	"errors"
	"fmt"

	"github.com/atelierlabs/workroom/internal/material/domain"
)

// ErrConfirmationRequired is returned when a delete is attempted without the
// explicit confirmation the inventory view demands for materials.
var ErrConfirmationRequired = errors.New("material deletion requires confirmation")

// DeleteMaterialCommand represents the command to delete a material
type DeleteMaterialCommand struct {
	ID        string
	Confirmed bool
}

// DeleteMaterialHandler handles delete material command
type DeleteMaterialHandler struct {
	repo domain.MaterialRepository
}

// NewDeleteMaterialHandler creates a new delete material handler
func NewDeleteMaterialHandler(repo domain.MaterialRepository) *DeleteMaterialHandler {
	return &DeleteMaterialHandler{repo: repo}
}

// Handle executes the delete material command. Deletion is permanent within
// the session; there is no undo.
func (h *DeleteMaterialHandler) Handle(cmd DeleteMaterialCommand) error {
	if !cmd.Confirmed {
		return ErrConfirmationRequired
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return err
		}
		return fmt.Errorf("failed to delete material: %w", err)
	}

	return nil
}
