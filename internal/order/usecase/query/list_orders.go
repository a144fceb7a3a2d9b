package query

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/atelierlabs/workroom/internal/order/domain"
	"github.com/atelierlabs/workroom/internal/planning"
)

// ListOrdersQuery represents the query to list orders with the view's
// filter and sort parameters. Zero thresholds fall back to the configured
// defaults.
type ListOrdersQuery struct {
	Search  string
	Age     string // "", "new", "medium" or "old"
	Urgent  int
	Warning int
	From    *domain.Date
	To      *domain.Date
	SortKey string // name, variant, qty, price or date
	SortDir string // asc or desc
}

// OrderView is an order annotated with its live age tier.
type OrderView struct {
	domain.Order
	AgeTier planning.AgeTier `json:"age_tier"`
}

// ListOrdersHandler handles list orders query
type ListOrdersHandler struct {
	repo           domain.OrderRepository
	defaultUrgent  int
	defaultWarning int
	now            func() time.Time
}

// NewListOrdersHandler creates a new list orders handler with the
// configured default age thresholds.
func NewListOrdersHandler(repo domain.OrderRepository, defaultUrgent, defaultWarning int) *ListOrdersHandler {
	return &ListOrdersHandler{
		repo:           repo,
		defaultUrgent:  defaultUrgent,
		defaultWarning: defaultWarning,
		now:            time.Now,
	}
}

// WithClock overrides the wall clock, for tests.
func (h *ListOrdersHandler) WithClock(now func() time.Time) *ListOrdersHandler {
	h.now = now
	return h
}

// Handle executes the list orders query. Age tiers are computed against the
// current instant, so the same order can change tier between calls purely
// because time passed.
func (h *ListOrdersHandler) Handle(query ListOrdersQuery) ([]OrderView, error) {
	orders, err := h.repo.All()
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	urgent := query.Urgent
	if urgent <= 0 {
		urgent = h.defaultUrgent
	}
	warning := query.Warning
	if warning <= 0 {
		warning = h.defaultWarning
	}

	now := h.now()
	needle := strings.ToLower(query.Search)

	views := []OrderView{}
	for _, o := range orders {
		if needle != "" &&
			!strings.Contains(strings.ToLower(o.Name), needle) &&
			!strings.Contains(strings.ToLower(o.Variant), needle) {
			continue
		}

		// Date range applies only when both ends are given, as in the
		// source view.
		if query.From != nil && query.To != nil {
			if o.Date.Before(query.From.Time) || o.Date.After(query.To.Time) {
				continue
			}
		}

		tier := planning.Tier(o.Date.Time, now, urgent, warning)
		if query.Age != "" && string(tier) != query.Age {
			continue
		}

		views = append(views, OrderView{Order: o, AgeTier: tier})
	}

	sortViews(views, query.SortKey, query.SortDir)
	return views, nil
}

func sortViews(views []OrderView, key, dir string) {
	if key == "" {
		key = "date"
		if dir == "" {
			dir = "desc"
		}
	}
	asc := dir != "desc"

	less := func(a, b OrderView) bool {
		switch key {
		case "name":
			return a.Name < b.Name
		case "variant":
			return a.Variant < b.Variant
		case "qty":
			return a.Qty < b.Qty
		case "price":
			return a.Price.Cmp(b.Price) < 0
		default:
			return a.Date.Before(b.Date.Time)
		}
	}

	sort.SliceStable(views, func(i, j int) bool {
		if asc {
			return less(views[i], views[j])
		}
		return less(views[j], views[i])
	})
}
