// Package planning holds the derived views over the canonical entities:
// order demand aggregation, restock ranking and order-age bucketing. All
// functions are pure; every view recomputes from scratch on each call.
package planning

import (
	orderdomain "github.com/atelierlabs/workroom/internal/order/domain"
)

// MaterialDemand sums ordered quantities per variant string across all
// orders. Matching is exact; duplicate orders simply add. An empty order
// list yields an empty map.
func MaterialDemand(orders []orderdomain.Order) map[string]int {
	demand := make(map[string]int)
	for _, o := range orders {
		demand[o.Variant] += o.Qty
	}
	return demand
}

// ProductDemand groups ordered quantities by design name, then by variant.
func ProductDemand(orders []orderdomain.Order) map[string]map[string]int {
	demand := make(map[string]map[string]int)
	for _, o := range orders {
		variants, ok := demand[o.Name]
		if !ok {
			variants = make(map[string]int)
			demand[o.Name] = variants
		}
		variants[o.Variant] += o.Qty
	}
	return demand
}
