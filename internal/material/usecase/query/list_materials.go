package query

import (
	"fmt"

	"github.com/atelierlabs/workroom/internal/material/domain"
)

// ListMaterialsQuery represents the query to list materials
type ListMaterialsQuery struct {
	Name     string
	Category string
	Limit    int
	Offset   int
}

// ListMaterialsHandler handles list materials query
type ListMaterialsHandler struct {
	repo domain.MaterialRepository
}

// NewListMaterialsHandler creates a new list materials handler
func NewListMaterialsHandler(repo domain.MaterialRepository) *ListMaterialsHandler {
	return &ListMaterialsHandler{repo: repo}
}

// Handle executes the list materials query
func (h *ListMaterialsHandler) Handle(query ListMaterialsQuery) ([]domain.Material, error) {
	if query.Limit == 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	materials, err := h.repo.Search(query.Name, query.Category, query.Limit, query.Offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list materials: %w", err)
	}

	return materials, nil
}
