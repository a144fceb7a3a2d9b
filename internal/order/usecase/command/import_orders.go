package command

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/atelierlabs/workroom/internal/order/csvio"
	"github.com/atelierlabs/workroom/internal/order/domain"
)

// ImportOrdersCommand represents a CSV import request
type ImportOrdersCommand struct {
	Reader io.Reader
}

// ImportReport summarizes an import: what was appended and which rows were
// rejected.
type ImportReport struct {
	Imported int              `json:"imported"`
	Orders   []domain.Order   `json:"orders"`
	Errors   []csvio.RowError `json:"errors,omitempty"`
}

// ImportOrdersHandler handles CSV order imports
type ImportOrdersHandler struct {
	repo domain.OrderRepository
}

// NewImportOrdersHandler creates a new import orders handler
func NewImportOrdersHandler(repo domain.OrderRepository) *ImportOrdersHandler {
	return &ImportOrdersHandler{repo: repo}
}

// Handle parses the CSV and appends every valid row as a new order. Rows
// that fail to parse are reported, not imported; they never yield partial
// records.
func (h *ImportOrdersHandler) Handle(cmd ImportOrdersCommand) (*ImportReport, error) {
	records, rowErrs, err := csvio.Read(cmd.Reader)
	if err != nil {
		return nil, err
	}

	orders := make([]domain.Order, 0, len(records))
	for _, rec := range records {
		orders = append(orders, domain.Order{
			ID:      fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
			Name:    rec.Name,
			Variant: rec.Variant,
			Qty:     rec.Qty,
			Price:   rec.Price,
			Date:    rec.Date,
		})
	}

	if err := h.repo.CreateBatch(orders); err != nil {
		return nil, fmt.Errorf("failed to store imported orders: %w", err)
	}

	return &ImportReport{
		Imported: len(orders),
		Orders:   orders,
		Errors:   rowErrs,
	}, nil
}
