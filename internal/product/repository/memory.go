package repository

import (
	"sync"

	"github.com/atelierlabs/workroom/internal/product/domain"
)

// MemoryProductRepository provides in-memory product storage.
type MemoryProductRepository struct {
	mu       sync.RWMutex
	products []domain.Product
}

// NewMemoryProductRepository creates an empty product repository
func NewMemoryProductRepository() *MemoryProductRepository {
	return &MemoryProductRepository{products: []domain.Product{}}
}

// Verify interface compliance
var _ domain.ProductRepository = (*MemoryProductRepository)(nil)

func (r *MemoryProductRepository) Create(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products = append(r.products, *product)
	return nil
}

func (r *MemoryProductRepository) FindByID(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.products {
		if r.products[i].ID == id {
			p := r.products[i]
			return &p, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return page(r.products, limit, offset), nil
}

func (r *MemoryProductRepository) FindByCategory(category string, limit, offset int) ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []domain.Product
	for _, p := range r.products {
		if p.Category == category {
			matched = append(matched, p)
		}
	}
	return page(matched, limit, offset), nil
}

func (r *MemoryProductRepository) All() ([]domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

func (r *MemoryProductRepository) Update(product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.products {
		if r.products[i].ID == product.ID {
			r.products[i] = *product
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryProductRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.products[:0]
	found := false
	for _, p := range r.products {
		if p.ID == id {
			found = true
			continue
		}
		kept = append(kept, p)
	}
	r.products = kept
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MemoryProductRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.products)), nil
}

func page(items []domain.Product, limit, offset int) []domain.Product {
	if offset >= len(items) {
		return []domain.Product{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]domain.Product, end-offset)
	copy(out, items[offset:end])
	return out
}
