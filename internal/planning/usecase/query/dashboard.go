package query

import (
	"fmt"

	materialdomain "github.com/atelierlabs/workroom/internal/material/domain"
	materialquery "github.com/atelierlabs/workroom/internal/material/usecase/query"
	orderdomain "github.com/atelierlabs/workroom/internal/order/domain"
	productdomain "github.com/atelierlabs/workroom/internal/product/domain"
)

// DashboardSummary is the combined headline view of the workshop.
type DashboardSummary struct {
	Inventory     *materialquery.Stats `json:"inventory"`
	TotalProducts int64                `json:"total_products"`
	TotalOrders   int64                `json:"total_orders"`
	QueueSize     int                  `json:"queue_size"`
}

// DashboardHandler assembles the dashboard summary from all three
// repositories.
type DashboardHandler struct {
	stats    *materialquery.GetStatsHandler
	queue    *QueueHandler
	products productdomain.ProductRepository
	orders   orderdomain.OrderRepository
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(
	materials materialdomain.MaterialRepository,
	products productdomain.ProductRepository,
	orders orderdomain.OrderRepository,
	queue *QueueHandler,
) *DashboardHandler {
	return &DashboardHandler{
		stats:    materialquery.NewGetStatsHandler(materials),
		queue:    queue,
		products: products,
		orders:   orders,
	}
}

// Handle executes the dashboard query. Queue size uses the configured
// default restock percentage.
func (h *DashboardHandler) Handle() (*DashboardSummary, error) {
	stats, err := h.stats.Handle()
	if err != nil {
		return nil, err
	}
	productCount, err := h.products.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count products: %w", err)
	}
	orderCount, err := h.orders.Count()
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}
	entries, err := h.queue.Handle(QueueQuery{})
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		Inventory:     stats,
		TotalProducts: productCount,
		TotalOrders:   orderCount,
		QueueSize:     len(entries),
	}, nil
}
