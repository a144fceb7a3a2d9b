package command

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/atelierlabs/workroom/internal/product/domain"
	"github.com/atelierlabs/workroom/internal/validation"
)

// CreateProductCommand represents the command to create a product
type CreateProductCommand struct {
	Title       string
	Description string
	Category    string
	Variants    []domain.Variant
	Images      []string
}

// CreateProductHandler handles create product command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	if err := validateProduct(cmd.Title, cmd.Variants); err != nil {
		return nil, err
	}

	now := time.Now()
	product := &domain.Product{
		ID:          fmt.Sprintf("PRD-%s", uuid.New().String()[:8]),
		Title:       cmd.Title,
		Description: cmd.Description,
		Category:    cmd.Category,
		Variants:    cmd.Variants,
		Images:      cmd.Images,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}

// validateProduct checks a product payload. Variant names may repeat; the
// source imposes no uniqueness on them.
func validateProduct(title string, variants []domain.Variant) error {
	var verr validation.Error
	if title == "" {
		verr.Add("title", "is required")
	}
	for i, v := range variants {
		if v.Name == "" {
			verr.Add(fmt.Sprintf("variants[%d].name", i), "is required")
		}
		if v.Price.IsNegative() {
			verr.Add(fmt.Sprintf("variants[%d].price", i), "must not be negative")
		}
		if v.Buffer < 0 {
			verr.Add(fmt.Sprintf("variants[%d].buffer", i), "must not be negative")
		}
		for j, s := range v.Supplies {
			if s.Material == "" {
				verr.Add(fmt.Sprintf("variants[%d].supplies[%d].material", i, j), "is required")
			}
			if s.Quantity <= 0 {
				verr.Add(fmt.Sprintf("variants[%d].supplies[%d].quantity", i, j), "must be greater than 0")
			}
		}
	}
	return verr.Err()
}
