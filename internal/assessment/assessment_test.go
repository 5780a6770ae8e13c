package assessment

import "testing"

func TestPlanSpreadsAcrossWindow(t *testing.T) {
	window := []int{9, 8, 7, 4, 3} // newest first
	got := Plan(0, 5, 10, window)

	if len(got) != 5 {
		t.Fatalf("responses = %d, want 5", len(got))
	}

	// One student per window slot, oldest day first.
	wantDays := []int{3, 4, 7, 8, 9}
	for i, r := range got {
		if r.EnrollmentIdx != i {
			t.Errorf("response %d enrollment = %d", i, r.EnrollmentIdx)
		}
		if r.DayOffset != wantDays[i] {
			t.Errorf("response %d day = %d, want %d", i, r.DayOffset, wantDays[i])
		}
	}
}

func TestPlanMoreStudentsThanDays(t *testing.T) {
	window := []int{2, 1}
	got := Plan(0, 6, 8, window)

	if len(got) != 6 {
		t.Fatalf("responses = %d, want 6", len(got))
	}
	for _, r := range got {
		if r.DayOffset != 1 && r.DayOffset != 2 {
			t.Errorf("day offset %d outside window", r.DayOffset)
		}
	}
	// Minutes must be distinct so events stay ordered within a day.
	seen := map[int]bool{}
	for _, r := range got {
		key := r.DayOffset*10000 + r.Minute
		if seen[key] {
			t.Errorf("duplicate sitting slot day=%d minute=%d", r.DayOffset, r.Minute)
		}
		seen[key] = true
	}
}

func TestPlanScoresDeterministic(t *testing.T) {
	a := Plan(1, 4, 10, []int{3, 2, 1})
	b := Plan(1, 4, 10, []int{3, 2, 1})
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("response %d differs between runs", i)
		}
	}
	for _, r := range a {
		if r.Score < 0 || r.Score > 1 {
			t.Errorf("score %v out of range", r.Score)
		}
		if r.QuestionsAnswered < 1 || r.QuestionsAnswered > 10 {
			t.Errorf("questions answered %d out of range", r.QuestionsAnswered)
		}
	}
}

func TestPlanEmptyWindow(t *testing.T) {
	if got := Plan(0, 5, 10, nil); got != nil {
		t.Errorf("expected nil plan for empty window, got %v", got)
	}
}
