package query

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/atelierlabs/workroom/internal/order/domain"
	"github.com/atelierlabs/workroom/internal/order/repository"
	"github.com/atelierlabs/workroom/internal/planning"
)

var testNow = time.Date(2024, 10, 30, 12, 0, 0, 0, time.UTC)

func mustDate(t *testing.T, s string) domain.Date {
	t.Helper()
	d, err := domain.ParseDate(s)
	if err != nil {
		t.Fatalf("Failed to parse date %q: %v", s, err)
	}
	return d
}

func seedOrders(t *testing.T) *ListOrdersHandler {
	t.Helper()
	repo := repository.NewMemoryOrderRepository()

	orders := []domain.Order{
		{ID: "ORD-1", Name: "Hoodie", Variant: "Black M", Qty: 5, Price: decimal.NewFromInt(45), Date: mustDate(t, "2024-10-30")},
		{ID: "ORD-2", Name: "Hoodie", Variant: "White L", Qty: 2, Price: decimal.NewFromInt(40), Date: mustDate(t, "2024-10-28")},
		{ID: "ORD-3", Name: "Tee", Variant: "Black S", Qty: 10, Price: decimal.NewFromInt(25), Date: mustDate(t, "2024-10-20")},
	}
	if err := repo.CreateBatch(orders); err != nil {
		t.Fatalf("Failed to seed orders: %v", err)
	}

	return NewListOrdersHandler(repo, 24, 48).WithClock(func() time.Time { return testNow })
}

func ids(views []OrderView) []string {
	out := make([]string, len(views))
	for i, v := range views {
		out[i] = v.ID
	}
	return out
}

func TestListOrdersHandler_DefaultSort(t *testing.T) {
	handler := seedOrders(t)

	views, err := handler.Handle(ListOrdersQuery{})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	got := ids(views)
	want := []string{"ORD-1", "ORD-2", "ORD-3"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Expected newest-first order %v, got %v", want, got)
		}
	}
}

func TestListOrdersHandler_AgeTiers(t *testing.T) {
	handler := seedOrders(t)

	views, err := handler.Handle(ListOrdersQuery{SortKey: "date", SortDir: "asc"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}

	// Dates parse at midnight UTC: ORD-3 is 252h old, ORD-2 60h, ORD-1 12h.
	wantTiers := map[string]planning.AgeTier{
		"ORD-1": planning.TierNew,
		"ORD-2": planning.TierOld,
		"ORD-3": planning.TierOld,
	}
	for _, v := range views {
		if v.AgeTier != wantTiers[v.ID] {
			t.Errorf("%s: expected tier %v, got %v", v.ID, wantTiers[v.ID], v.AgeTier)
		}
	}
}

func TestListOrdersHandler_Filters(t *testing.T) {
	handler := seedOrders(t)

	tests := []struct {
		name  string
		query ListOrdersQuery
		want  []string
	}{
		{
			name:  "search_matches_name",
			query: ListOrdersQuery{Search: "hoodie"},
			want:  []string{"ORD-1", "ORD-2"},
		},
		{
			name:  "search_matches_variant",
			query: ListOrdersQuery{Search: "black"},
			want:  []string{"ORD-1", "ORD-3"},
		},
		{
			name:  "age_filter",
			query: ListOrdersQuery{Age: "new"},
			want:  []string{"ORD-1"},
		},
		{
			name:  "wider_thresholds_change_tiers",
			query: ListOrdersQuery{Age: "medium", Urgent: 48, Warning: 96},
			want:  []string{"ORD-2"},
		},
		{
			name: "date_range_needs_both_ends",
			query: ListOrdersQuery{
				From: datePtr(t, "2024-10-27"),
			},
			want: []string{"ORD-1", "ORD-2", "ORD-3"},
		},
		{
			name: "date_range_applied",
			query: ListOrdersQuery{
				From: datePtr(t, "2024-10-27"),
				To:   datePtr(t, "2024-10-29"),
			},
			want: []string{"ORD-2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := handler.Handle(tt.query)
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			got := ids(views)
			if len(got) != len(tt.want) {
				t.Fatalf("Expected %v, got %v", tt.want, got)
			}
			seen := make(map[string]bool, len(got))
			for _, id := range got {
				seen[id] = true
			}
			for _, id := range tt.want {
				if !seen[id] {
					t.Errorf("Expected %s in results, got %v", id, got)
				}
			}
		})
	}
}

func TestListOrdersHandler_SortKeys(t *testing.T) {
	handler := seedOrders(t)

	tests := []struct {
		name    string
		key     string
		dir     string
		wantIDs []string
	}{
		{name: "qty_asc", key: "qty", dir: "asc", wantIDs: []string{"ORD-2", "ORD-1", "ORD-3"}},
		{name: "qty_desc", key: "qty", dir: "desc", wantIDs: []string{"ORD-3", "ORD-1", "ORD-2"}},
		{name: "price_asc", key: "price", dir: "asc", wantIDs: []string{"ORD-3", "ORD-2", "ORD-1"}},
		{name: "name_asc", key: "name", dir: "asc", wantIDs: []string{"ORD-1", "ORD-2", "ORD-3"}},
		{name: "variant_asc", key: "variant", dir: "asc", wantIDs: []string{"ORD-1", "ORD-3", "ORD-2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			views, err := handler.Handle(ListOrdersQuery{SortKey: tt.key, SortDir: tt.dir})
			if err != nil {
				t.Fatalf("List failed: %v", err)
			}
			got := ids(views)
			for i := range tt.wantIDs {
				if got[i] != tt.wantIDs[i] {
					t.Fatalf("Expected %v, got %v", tt.wantIDs, got)
				}
			}
		})
	}
}

func datePtr(t *testing.T, s string) *domain.Date {
	t.Helper()
	d := mustDate(t, s)
	return &d
}
