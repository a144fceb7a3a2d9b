package query

import (
	"fmt"

	"github.com/atelierlabs/workroom/internal/product/domain"
)

// ListProductsQuery represents the query to list products
type ListProductsQuery struct {
	Category string
	Limit    int
	Offset   int
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(query ListProductsQuery) ([]domain.Product, error) {
	if query.Limit == 0 {
		query.Limit = 10
	}
	if query.Limit > 100 {
		query.Limit = 100
	}

	var (
		products []domain.Product
		err      error
	)
	if query.Category != "" {
		products, err = h.repo.FindByCategory(query.Category, query.Limit, query.Offset)
	} else {
		products, err = h.repo.FindAll(query.Limit, query.Offset)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	return products, nil
}
