package archetype

import "testing"

func TestCompletionRateCyclesTiers(t *testing.T) {
	want := []float64{1.0, 0.8, 0.6, 0.4, 0.2}
	for i := 0; i < 25; i++ {
		if got := CompletionRate(i); got != want[i%5] {
			t.Errorf("CompletionRate(%d) = %v, want %v", i, got, want[i%5])
		}
	}
}

func TestShouldSplitLesson(t *testing.T) {
	tests := []struct {
		s, l, m, q int
		want       bool
	}{
		{0, 0, 0, 2, true},   // 0 % 10 = 0
		{1, 1, 0, 2, true},   // 2
		{1, 2, 0, 2, false},  // 3
		{5, 5, 0, 2, true},   // 10 % 10 = 0
		{4, 4, 1, 2, false},  // 9
		{0, 0, 0, 1, false},  // too few questions
		{10, 10, 10, 4, true},// 30 % 10 = 0
	}
	for _, tt := range tests {
		if got := ShouldSplitLesson(tt.s, tt.l, tt.m, tt.q); got != tt.want {
			t.Errorf("ShouldSplitLesson(%d,%d,%d,q=%d) = %v, want %v",
				tt.s, tt.l, tt.m, tt.q, got, tt.want)
		}
	}
}

// TestSplitDistribution pins the exact split count over a 10x10 cohort at
// module 0. For (s+l)%10 < 3 with q>=2, each row of 10 lessons has
// exactly 3 splits.
func TestSplitDistribution(t *testing.T) {
	count := 0
	for s := 0; s < 10; s++ {
		for l := 0; l < 10; l++ {
			if ShouldSplitLesson(s, l, 0, 2) {
				count++
			}
		}
	}
	if count != 30 {
		t.Fatalf("split count over 10x10 cohort = %d, want 30", count)
	}
}

func TestShouldDelayMasteryCheck(t *testing.T) {
	// (s+l+m) % 5 < 2: exactly 2 of every 5 consecutive sums delay.
	delays := 0
	for sum := 0; sum < 100; sum++ {
		if ShouldDelayMasteryCheck(sum, 0, 0) {
			delays++
		}
	}
	if delays != 40 {
		t.Fatalf("delays over 100 = %d, want 40", delays)
	}

	if !ShouldDelayMasteryCheck(0, 0, 0) {
		t.Error("ShouldDelayMasteryCheck(0,0,0) = false, want true")
	}
	if ShouldDelayMasteryCheck(2, 0, 0) {
		t.Error("ShouldDelayMasteryCheck(2,0,0) = true, want false")
	}
}

func TestDecisionsAreDeterministic(t *testing.T) {
	for i := 0; i < 50; i++ {
		if CompletionRate(i) != CompletionRate(i) ||
			ShouldSplitLesson(i, i+1, i+2, 3) != ShouldSplitLesson(i, i+1, i+2, 3) ||
			ShouldDelayMasteryCheck(i, i+1, i+2) != ShouldDelayMasteryCheck(i, i+1, i+2) {
			t.Fatal("repeated calls disagree")
		}
	}
}

func TestMasteryScoreRange(t *testing.T) {
	for s := 0; s < 10; s++ {
		for l := 0; l < 10; l++ {
			score := MasteryScore(s, l)
			if score < 0.8 || score > 1.0 {
				t.Fatalf("MasteryScore(%d,%d) = %v, out of [0.8, 1.0]", s, l, score)
			}
		}
	}
}

func TestAttendanceStatus(t *testing.T) {
	if got := AttendanceStatus(0, 10); got != StatusAbsent {
		t.Errorf("AttendanceStatus(0,10) = %q, want absent", got)
	}
	if got := AttendanceStatus(0, 11); got != StatusLate {
		t.Errorf("AttendanceStatus(0,11) = %q, want late", got)
	}
	if got := AttendanceStatus(3, 4); got != StatusPresent {
		t.Errorf("AttendanceStatus(3,4) = %q, want present", got)
	}
}
