package repository

import (
	"sync"

	"github.com/atelierlabs/workroom/internal/order/domain"
)

// MemoryOrderRepository provides in-memory order storage. Orders keep
// insertion order; filtering and sorting are view concerns.
type MemoryOrderRepository struct {
	mu     sync.RWMutex
	orders []domain.Order
}

// NewMemoryOrderRepository creates an empty order repository
func NewMemoryOrderRepository() *MemoryOrderRepository {
	return &MemoryOrderRepository{orders: []domain.Order{}}
}

// Verify interface compliance
var _ domain.OrderRepository = (*MemoryOrderRepository)(nil)

func (r *MemoryOrderRepository) Create(order *domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, *order)
	return nil
}

func (r *MemoryOrderRepository) CreateBatch(orders []domain.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append(r.orders, orders...)
	return nil
}

func (r *MemoryOrderRepository) FindByID(id string) (*domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for i := range r.orders {
		if r.orders[i].ID == id {
			o := r.orders[i]
			return &o, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *MemoryOrderRepository) All() ([]domain.Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]domain.Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *MemoryOrderRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	kept := r.orders[:0]
	found := false
	for _, o := range r.orders {
		if o.ID == id {
			found = true
			continue
		}
		kept = append(kept, o)
	}
	r.orders = kept
	if !found {
		return domain.ErrNotFound
	}
	return nil
}

func (r *MemoryOrderRepository) Count() (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return int64(len(r.orders)), nil
}
