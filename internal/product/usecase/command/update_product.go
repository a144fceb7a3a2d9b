package command

import (
	"fmt"
	"time"

	"github.com/atelierlabs/workroom/internal/product/domain"
)

// UpdateProductCommand represents the command to update a product
type UpdateProductCommand struct {
	ID          string
	Title       string
	Description string
	Category    string
	Variants    []domain.Variant
	Images      []string
}

// UpdateProductHandler handles update product command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if err := validateProduct(cmd.Title, cmd.Variants); err != nil {
		return nil, err
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	product.Title = cmd.Title
	product.Description = cmd.Description
	product.Category = cmd.Category
	product.Variants = cmd.Variants
	if cmd.Images != nil {
		product.Images = cmd.Images
	}
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
