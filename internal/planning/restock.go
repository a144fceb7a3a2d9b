package planning

import (
	"strings"

	materialdomain "github.com/atelierlabs/workroom/internal/material/domain"
)

// Severity ranks how badly a material needs restocking.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityNormal   Severity = "normal"
)

// Fixed display cutoffs on the quantity/threshold ratio, independent of the
// operator-adjustable restock percentage.
const (
	criticalRatio = 0.25
	warningRatio  = 0.50
)

// QueueEntry is one row of the restock queue.
type QueueEntry struct {
	Material  materialdomain.Material `json:"material"`
	Shortfall int                     `json:"shortfall"`
	Severity  Severity                `json:"severity"`
}

// BelowThreshold reports whether the material's quantity is at or below
// percent of its reorder threshold. At percent 100 this is quantity <=
// threshold; at percent 0 only fully depleted materials qualify.
func BelowThreshold(m materialdomain.Material, percent int) bool {
	return float64(m.Quantity) <= float64(m.Threshold)*float64(percent)/100
}

// Classify assigns a severity from the quantity/threshold ratio. A zero
// threshold never divides: such a material is critical when depleted and
// normal otherwise.
func Classify(quantity, threshold int) Severity {
	if threshold == 0 {
		if quantity <= 0 {
			return SeverityCritical
		}
		return SeverityNormal
	}

	ratio := float64(quantity) / float64(threshold)
	switch {
	case ratio <= criticalRatio:
		return SeverityCritical
	case ratio <= warningRatio:
		return SeverityWarning
	default:
		return SeverityNormal
	}
}

// Restock filters materials to those at or below percent of their threshold,
// optionally narrowed by a case-insensitive name substring, and annotates
// each with its shortfall and severity. Input order is preserved.
func Restock(materials []materialdomain.Material, percent int, nameFilter string) []QueueEntry {
	needle := strings.ToLower(nameFilter)

	entries := []QueueEntry{}
	for _, m := range materials {
		if needle != "" && !strings.Contains(strings.ToLower(m.Name), needle) {
			continue
		}
		if !BelowThreshold(m, percent) {
			continue
		}

		shortfall := m.Threshold - m.Quantity
		if shortfall < 0 {
			shortfall = 0
		}
		entries = append(entries, QueueEntry{
			Material:  m,
			Shortfall: shortfall,
			Severity:  Classify(m.Quantity, m.Threshold),
		})
	}
	return entries
}
