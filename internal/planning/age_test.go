package planning

import (
	"testing"
	"time"
)

func TestElapsedHours(t *testing.T) {
	now := time.Date(2024, 10, 30, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		orderDate time.Time
		want      int
	}{
		{name: "same_instant", orderDate: now, want: 0},
		{name: "under_one_hour_truncates", orderDate: now.Add(-59 * time.Minute), want: 0},
		{name: "exactly_one_day", orderDate: now.Add(-24 * time.Hour), want: 24},
		{name: "partial_hour_truncates", orderDate: now.Add(-25*time.Hour - 30*time.Minute), want: 25},
		{name: "future_date_truncates_toward_zero", orderDate: now.Add(90 * time.Minute), want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ElapsedHours(tt.orderDate, now); got != tt.want {
				t.Errorf("ElapsedHours() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTier(t *testing.T) {
	now := time.Date(2024, 10, 30, 12, 0, 0, 0, time.UTC)
	const urgent, warning = 24, 48

	tests := []struct {
		name string
		age  time.Duration
		want AgeTier
	}{
		{name: "fresh_order", age: 0, want: TierNew},
		{name: "exactly_urgent_hours_still_new", age: 24 * time.Hour, want: TierNew},
		{name: "just_past_urgent", age: 25 * time.Hour, want: TierMedium},
		{name: "exactly_warning_hours_still_medium", age: 48 * time.Hour, want: TierMedium},
		{name: "just_past_warning", age: 49 * time.Hour, want: TierOld},
		{name: "week_old", age: 7 * 24 * time.Hour, want: TierOld},
		{name: "future_dated", age: -3 * time.Hour, want: TierNew},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tier(now.Add(-tt.age), now, urgent, warning)
			if got != tt.want {
				t.Errorf("Tier(age=%v) = %v, want %v", tt.age, got, tt.want)
			}
		})
	}
}

// An order's tier never moves back toward new as it ages.
func TestTier_MonotoneInAge(t *testing.T) {
	now := time.Date(2024, 10, 30, 12, 0, 0, 0, time.UTC)
	rank := map[AgeTier]int{TierNew: 0, TierMedium: 1, TierOld: 2}

	prev := Tier(now, now, 24, 48)
	for h := 1; h <= 72; h++ {
		cur := Tier(now.Add(-time.Duration(h)*time.Hour), now, 24, 48)
		if rank[cur] < rank[prev] {
			t.Fatalf("Tier moved from %v back to %v at %d hours", prev, cur, h)
		}
		prev = cur
	}
}

func TestDismissSet(t *testing.T) {
	set := NewDismissSet()

	if set.Dismissed("MAT-1") {
		t.Error("Expected fresh set to contain nothing")
	}

	set.Dismiss("MAT-1")
	if !set.Dismissed("MAT-1") {
		t.Error("Expected MAT-1 to be dismissed")
	}
	if set.Dismissed("MAT-2") {
		t.Error("Expected MAT-2 to remain visible")
	}

	// Idempotent
	set.Dismiss("MAT-1")
	if !set.Dismissed("MAT-1") {
		t.Error("Expected MAT-1 to stay dismissed")
	}
}
