package query

import (
	"fmt"

	materialdomain "github.com/atelierlabs/workroom/internal/material/domain"
	"github.com/atelierlabs/workroom/internal/planning"
)

// QueueQuery represents the restock queue query. A nil Percent falls back
// to the configured default.
type QueueQuery struct {
	Percent *int
	Name    string
}

// QueueHandler projects the restock queue from the material inventory.
type QueueHandler struct {
	materials      materialdomain.MaterialRepository
	dismissed      *planning.DismissSet
	defaultPercent int
}

// NewQueueHandler creates a new queue handler
func NewQueueHandler(materials materialdomain.MaterialRepository, dismissed *planning.DismissSet, defaultPercent int) *QueueHandler {
	return &QueueHandler{
		materials:      materials,
		dismissed:      dismissed,
		defaultPercent: defaultPercent,
	}
}

// Handle executes the queue query. Dismissed entries stay hidden for the
// life of the process even if the material dips further below threshold.
func (h *QueueHandler) Handle(query QueueQuery) ([]planning.QueueEntry, error) {
	percent := h.defaultPercent
	if query.Percent != nil {
		percent = *query.Percent
	}
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}

	materials, err := h.materials.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load materials: %w", err)
	}

	visible := materials[:0]
	for _, m := range materials {
		if h.dismissed.Dismissed(m.ID) {
			continue
		}
		visible = append(visible, m)
	}

	return planning.Restock(visible, percent, query.Name), nil
}
