package command

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelierlabs/workroom/internal/material/domain"
	"github.com/atelierlabs/workroom/internal/validation"
)

// UpdateMaterialCommand represents the command to update a material
type UpdateMaterialCommand struct {
	ID          string
	Name        string
	Category    string
	Quantity    int
	Unit        string
	BuyingPrice decimal.Decimal
	Threshold   int
	Supplier    string
	BuyLink     string
	Image       string
}

// UpdateMaterialHandler handles update material command
type UpdateMaterialHandler struct {
	repo            domain.MaterialRepository
	recomputeStatus bool
}

// NewUpdateMaterialHandler creates a new update material handler. When
// recomputeStatus is false the stored status survives the edit untouched,
// acting as a manual override.
func NewUpdateMaterialHandler(repo domain.MaterialRepository, recomputeStatus bool) *UpdateMaterialHandler {
	return &UpdateMaterialHandler{repo: repo, recomputeStatus: recomputeStatus}
}

// Handle executes the update material command
func (h *UpdateMaterialHandler) Handle(cmd UpdateMaterialCommand) (*domain.Material, error) {
	var verr validation.Error
	if cmd.Name == "" {
		verr.Add("name", "is required")
	}
	if cmd.Quantity < 0 {
		verr.Add("quantity", "must not be negative")
	}
	if cmd.Threshold < 0 {
		verr.Add("threshold", "must not be negative")
	}
	if cmd.BuyingPrice.IsNegative() {
		verr.Add("buying_price", "must not be negative")
	}
	if err := verr.Err(); err != nil {
		return nil, err
	}

	material, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	material.Name = cmd.Name
	material.Category = cmd.Category
	material.Quantity = cmd.Quantity
	material.Unit = cmd.Unit
	material.BuyingPrice = cmd.BuyingPrice
	material.Threshold = cmd.Threshold
	material.Supplier = cmd.Supplier
	material.BuyLink = cmd.BuyLink
	if cmd.Image != "" {
		material.Image = cmd.Image
	}
	if h.recomputeStatus {
		material.Status = domain.DeriveStatus(material.Quantity, material.Threshold)
	}
	material.UpdatedAt = time.Now()

	if err := h.repo.Update(material); err != nil {
		return nil, fmt.Errorf("failed to update material: %w", err)
	}

	return material, nil
}
