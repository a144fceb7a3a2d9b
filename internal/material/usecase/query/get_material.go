package query

import (
	"github.com/atelierlabs/workroom/internal/material/domain"
)

// GetMaterialQuery represents the query to get a single material
type GetMaterialQuery struct {
	ID string
}

// GetMaterialHandler handles get material query
type GetMaterialHandler struct {
	repo domain.MaterialRepository
}

// NewGetMaterialHandler creates a new get material handler
func NewGetMaterialHandler(repo domain.MaterialRepository) *GetMaterialHandler {
	return &GetMaterialHandler{repo: repo}
}

// Handle executes the get material query
func (h *GetMaterialHandler) Handle(query GetMaterialQuery) (*domain.Material, error) {
	return h.repo.FindByID(query.ID)
}
