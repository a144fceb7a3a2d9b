package query

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/atelierlabs/workroom/internal/material/domain"
)

// Stats summarizes the inventory for the dashboard cards.
type Stats struct {
	TotalMaterials int64           `json:"total_materials"`
	LowStock       int             `json:"low_stock"`
	OutOfStock     int             `json:"out_of_stock"`
	TotalValue     decimal.Decimal `json:"total_value"`
	Categories     int             `json:"categories"`
}

// GetStatsHandler handles inventory stats query
type GetStatsHandler struct {
	repo domain.MaterialRepository
}

// NewGetStatsHandler creates a new get stats handler
func NewGetStatsHandler(repo domain.MaterialRepository) *GetStatsHandler {
	return &GetStatsHandler{repo: repo}
}

// Handle computes the summary. Low/out-of-stock counts go by the stored
// status field, not a fresh quantity comparison, so a stale status shows up
// as-is on the dashboard.
func (h *GetStatsHandler) Handle() (*Stats, error) {
	materials, err := h.repo.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}
	categories, err := h.repo.Categories()
	if err != nil {
		return nil, fmt.Errorf("failed to load categories: %w", err)
	}

	stats := &Stats{
		TotalMaterials: int64(len(materials)),
		TotalValue:     decimal.Zero,
		Categories:     len(categories),
	}
	for i := range materials {
		switch materials[i].Status {
		case domain.StatusLowStock:
			stats.LowStock++
		case domain.StatusOutOfStock:
			stats.OutOfStock++
		}
		stats.TotalValue = stats.TotalValue.Add(materials[i].Value())
	}

	return stats, nil
}
