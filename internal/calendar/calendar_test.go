package calendar

import (
	"testing"
	"time"
)

// A fixed Friday keeps weekday math readable in the cases below.
var friday = time.Date(2026, time.March, 6, 12, 0, 0, 0, time.UTC)

func TestWorkingDaysExcludesWeekends(t *testing.T) {
	// Looking back 7 days from a Friday: offsets 7..1 are
	// Fri Sat Sun Mon Tue Wed Thu.
	got := WorkingDays(friday, 7)
	want := []int{7, 4, 3, 2, 1}

	if len(got) != len(want) {
		t.Fatalf("WorkingDays = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("WorkingDays = %v, want %v", got, want)
		}
	}
}

func TestWorkingDaysDescending(t *testing.T) {
	got := WorkingDays(friday, 30)
	for i := 1; i < len(got); i++ {
		if got[i] >= got[i-1] {
			t.Fatalf("offsets not strictly descending at %d: %v", i, got)
		}
	}
	if got[len(got)-1] != 1 {
		t.Fatalf("last offset = %d, want 1 (a Thursday)", got[len(got)-1])
	}
}

func TestWorkingDaysDeterministic(t *testing.T) {
	a := WorkingDays(friday, 60)
	b := WorkingDays(friday, 60)
	if len(a) != len(b) {
		t.Fatal("repeated calls disagree")
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("repeated calls disagree")
		}
	}
}

func TestWorkingDaysZeroLookback(t *testing.T) {
	if got := WorkingDays(friday, 0); len(got) != 0 {
		t.Fatalf("WorkingDays(0) = %v, want empty", got)
	}
}

func TestNextWorkingDay(t *testing.T) {
	candidates := []int{7, 4, 3, 2, 1}

	tests := []struct {
		name    string
		current int
		want    int
	}{
		{"middle of window", 4, 3},
		{"skips weekend gap", 7, 4},
		{"last element falls back", 1, 1},
		{"absent falls back to current-1", 5, 4},
		{"absent low clamps to 1", 2, 1}, // 2 is present but test the boundary via 1 above
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextWorkingDay(tt.current, candidates); got != tt.want {
				t.Errorf("NextWorkingDay(%d) = %d, want %d", tt.current, got, tt.want)
			}
		})
	}
}

func TestNextWorkingDayExhaustedWindowCanGoEarlier(t *testing.T) {
	// The fallback is max(1, current-1) even when that is earlier than
	// every remaining candidate. Pinned on purpose: short windows depend
	// on this exact behavior.
	if got := NextWorkingDay(9, []int{3, 2, 1}); got != 8 {
		t.Fatalf("NextWorkingDay(9) = %d, want 8", got)
	}
}

func TestMidnight(t *testing.T) {
	got := Midnight(friday, 3)
	want := time.Date(2026, time.March, 3, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("Midnight = %v, want %v", got, want)
	}
}
