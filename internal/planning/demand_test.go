package planning

import (
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	orderdomain "github.com/atelierlabs/workroom/internal/order/domain"
)

func order(name, variant string, qty int) orderdomain.Order {
	return orderdomain.Order{
		ID:      "ORD-" + name + "-" + variant,
		Name:    name,
		Variant: variant,
		Qty:     qty,
		Price:   decimal.NewFromInt(10),
	}
}

func TestMaterialDemand(t *testing.T) {
	tests := []struct {
		name   string
		orders []orderdomain.Order
		want   map[string]int
	}{
		{
			name:   "empty_order_book",
			orders: nil,
			want:   map[string]int{},
		},
		{
			name: "sums_duplicate_variants",
			orders: []orderdomain.Order{
				order("Design One", "A", 10),
				order("Design Two", "A", 5),
				order("Design One", "B", 3),
			},
			want: map[string]int{"A": 15, "B": 3},
		},
		{
			name: "variant_match_is_exact",
			orders: []orderdomain.Order{
				order("Design One", "Black M", 4),
				order("Design One", "black m", 2),
			},
			want: map[string]int{"Black M": 4, "black m": 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MaterialDemand(tt.orders)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("MaterialDemand() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestProductDemand(t *testing.T) {
	orders := []orderdomain.Order{
		order("Hoodie", "Black M", 5),
		order("Hoodie", "Black M", 3),
		order("Hoodie", "White L", 2),
		order("Tee", "Black M", 7),
	}

	got := ProductDemand(orders)
	want := map[string]map[string]int{
		"Hoodie": {"Black M": 8, "White L": 2},
		"Tee":    {"Black M": 7},
	}

	if !reflect.DeepEqual(got, want) {
		t.Errorf("ProductDemand() = %v, want %v", got, want)
	}
}

func TestProductDemand_Empty(t *testing.T) {
	got := ProductDemand(nil)
	if len(got) != 0 {
		t.Errorf("Expected empty map, got %v", got)
	}
}
