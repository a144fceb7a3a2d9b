package repository

import (
	"strings"
	"sync"

	"github.com/atelierlabs/workroom/internal/material/domain"
)

// MemoryMaterialRepository provides in-memory material storage. All state is
// process-local and lost on restart.
type MemoryMaterialRepository struct {
	mu         sync.RWMutex
	materials  []domain.Material
	categories []string
	units      []string
	suppliers  []string
}

// NewMemoryMaterialRepository creates an empty repository with the given
// seed registries for categories and units. Registries grow as materials
// referencing new values are created.
func NewMemoryMaterialRepository(categories, units []string) *MemoryMaterialRepository {
	return &MemoryMaterialRepository{
		materials:  []domain.Material{},
		categories: append([]string{}, categories...),
		units:      append([]string{}, units...),
	}
}

// Verify interface compliance
var _ domain.MaterialRepository = (*MemoryMaterialRepository)(nil)

func (r *MemoryMaterialRepository) Create(material *domain.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.materials = append(r.materials, *material)
	r.register(material)
	return nil
}

func (r *MemoryMaterialRepository) FindByID(id string) (*domain.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.materials {
		if r.materials[i].ID == id {
			m := r.materials[i]
			return &m, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryMaterialRepository) FindAll(limit, offset int) ([]domain.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return page(r.materials, limit, offset), nil
}

func (r *MemoryMaterialRepository) Search(name, category string, limit, offset int) ([]domain.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(name)
	var matched []domain.Material
	for _, m := range r.materials {
		if needle != "" && !strings.Contains(strings.ToLower(m.Name), needle) {
			continue
		}
		if category != "" && m.Category != category {
			continue
		}
		matched = append(matched, m)
	}
	return page(matched, limit, offset), nil
}

func (r *MemoryMaterialRepository) All() ([]domain.Material, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Material, len(r.materials))
	copy(out, r.materials)
	return out, nil
}

func (r *MemoryMaterialRepository) Update(material *domain.Material) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.materials {
		if r.materials[i].ID == material.ID {
			r.materials[i] = *material
			r.register(material)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (r *MemoryMaterialRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.materials[:0]
	found := false
	for _, m := range r.materials {
		if m.ID == id {
			found = true
			continue
		}
		kept = append(kept, m)
	}
	r.materials = kept
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MemoryMaterialRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.materials)), nil
}

func (r *MemoryMaterialRepository) Categories() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.categories...), nil
}

func (r *MemoryMaterialRepository) Units() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.units...), nil
}

func (r *MemoryMaterialRepository) Suppliers() ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return append([]string{}, r.suppliers...), nil
}

// register extends the distinct-value registries with any new category,
// unit or supplier carried by the material. Caller must hold the lock.
func (r *MemoryMaterialRepository) register(m *domain.Material) {
	r.categories = addDistinct(r.categories, m.Category)
	r.units = addDistinct(r.units, m.Unit)
	r.suppliers = addDistinct(r.suppliers, m.Supplier)
}

func addDistinct(values []string, v string) []string {
	if v == "" {
		return values
	}
	for _, existing := range values {
		if existing == v {
			return values
		}
	}
	return append(values, v)
}

func page(items []domain.Material, limit, offset int) []domain.Material {
	if offset >= len(items) {
		return []domain.Material{}
	}
	end := len(items)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	out := make([]domain.Material, end-offset)
	copy(out, items[offset:end])
	return out
}
