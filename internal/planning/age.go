package planning

import (
	"time"
)

// AgeTier classifies how long an order has been outstanding.
type AgeTier string

const (
	TierNew    AgeTier = "new"
	TierMedium AgeTier = "medium"
	TierOld    AgeTier = "old"
)

// ElapsedHours returns whole hours between the order date and now,
// truncated. Negative spans (future-dated orders) truncate toward zero.
func ElapsedHours(orderDate, now time.Time) int {
	return int(now.Sub(orderDate).Hours())
}

// Tier buckets an order by elapsed hours against the urgent and warning
// thresholds. Boundaries are inclusive: an order aged exactly urgent hours
// is still new. urgent < warning is expected but not enforced; evaluation
// order makes urgent win when they overlap.
func Tier(orderDate, now time.Time, urgent, warning int) AgeTier {
	age := ElapsedHours(orderDate, now)
	switch {
	case age <= urgent:
		return TierNew
	case age <= warning:
		return TierMedium
	default:
		return TierOld
	}
}
