package pacing

import "testing"

func days(from, to int) []int {
	var d []int
	for i := from; i >= to; i-- {
		d = append(d, i)
	}
	return d
}

func totalDays(ws []ModuleWindow) int {
	n := 0
	for _, w := range ws {
		n += len(w.Days)
	}
	return n
}

func TestAllocateWindowsPartitionsAllDays(t *testing.T) {
	pool := days(20, 1)
	ws := AllocateWindows([]int{5, 3, 2}, pool)

	if got := totalDays(ws); got != len(pool) {
		t.Fatalf("allocated %d days, want %d", got, len(pool))
	}

	// No gaps, no overlaps: concatenating windows reproduces the pool.
	var flat []int
	for _, w := range ws {
		flat = append(flat, w.Days...)
	}
	for i, d := range flat {
		if d != pool[i] {
			t.Fatalf("day %d = %d, want %d (windows %v)", i, d, pool[i], ws)
		}
	}
}

func TestAllocateWindowsProportional(t *testing.T) {
	ws := AllocateWindows([]int{5, 5}, days(10, 1))
	if len(ws[0].Days) != 5 || len(ws[1].Days) != 5 {
		t.Fatalf("windows = %d/%d days, want 5/5", len(ws[0].Days), len(ws[1].Days))
	}
}

func TestAllocateWindowsRemainderToLastModule(t *testing.T) {
	// 3 modules x 1 lesson over 10 days: each ceil(1/3*10)=4, but the
	// pool runs short for the last, which then absorbs the slack.
	ws := AllocateWindows([]int{1, 1, 1}, days(10, 1))
	if got := totalDays(ws); got != 10 {
		t.Fatalf("allocated %d days, want 10", got)
	}
	if len(ws[2].Days) == 0 {
		t.Fatal("last module received no days")
	}
}

func TestAllocateWindowsZeroLessonModule(t *testing.T) {
	ws := AllocateWindows([]int{2, 0, 2}, days(8, 1))
	if len(ws[1].Days) != 0 {
		t.Fatalf("zero-lesson module got %v, want empty window", ws[1].Days)
	}
	if got := totalDays(ws); got != 8 {
		t.Fatalf("allocated %d days, want 8", got)
	}
}

func TestAllocateWindowsZeroTotalLessons(t *testing.T) {
	// Must not divide by the zero lesson total.
	ws := AllocateWindows([]int{0, 0}, days(5, 1))
	for _, w := range ws {
		if len(w.Days) != 0 {
			t.Fatalf("window %d = %v, want empty", w.ModuleIdx, w.Days)
		}
	}
}

func TestAllocateWindowsEmptyPool(t *testing.T) {
	ws := AllocateWindows([]int{3}, nil)
	if len(ws) != 1 || len(ws[0].Days) != 0 {
		t.Fatalf("windows = %v, want one empty window", ws)
	}
}

func TestAllocateWindowsTrailingZeroModule(t *testing.T) {
	// Slack goes to the last module that has lessons, not a trailing
	// empty one.
	ws := AllocateWindows([]int{1, 1, 0}, days(10, 1))
	if len(ws[2].Days) != 0 {
		t.Fatalf("trailing zero-lesson module got %v", ws[2].Days)
	}
	if got := totalDays(ws); got != 10 {
		t.Fatalf("allocated %d days, want 10", got)
	}
}
