package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/atelierlabs/workroom/internal/material/domain"
	"github.com/atelierlabs/workroom/internal/validation"
)

// CreateMaterialCommand represents the command to create a material
type CreateMaterialCommand struct {
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

// CreateMaterialHandler handles create material command
type CreateMaterialHandler struct {
	repo domain.MaterialRepository
}

// NewCreateMaterialHandler creates a new create material handler
func NewCreateMaterialHandler(repo domain.MaterialRepository) *CreateMaterialHandler {
	return &CreateMaterialHandler{repo: repo}
}

// Handle executes the create material command. The payload is validated as a
// whole so the caller gets every rejected field at once.
func (h *CreateMaterialHandler) Handle(cmd CreateMaterialCommand) (*domain.Material, error) {
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

	now := time.Now()
	material := &domain.Material{
		ID:          fmt.Sprintf("MAT-%s", uuid.New().String()[:8]),
		Name:        cmd.Name,
		Category:    cmd.Category,
		Quantity:    cmd.Quantity,
		Unit:        cmd.Unit,
		BuyingPrice: cmd.BuyingPrice,
		Threshold:   cmd.Threshold,
		Supplier:    cmd.Supplier,
		BuyLink:     cmd.BuyLink,
		Image:       cmd.Image,
		Status:      domain.DeriveStatus(cmd.Quantity, cmd.Threshold),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.Create(material); err != nil {
		return nil, fmt.Errorf("failed to create material: %w", err)
	}

	return material, nil
}
