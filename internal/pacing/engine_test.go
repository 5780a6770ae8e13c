package pacing

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

var runNow = time.Date(2026, time.March, 6, 12, 0, 0, 0, time.UTC)

// recordingSink implements Sink and records every append in arrival order.
type recordingSink struct {
	shown       []QuestionActivity
	answered    []QuestionActivity
	completions []LessonCompletion
	masteries   []MasteryCompletion

	failAppends bool
}

var errSinkDown = errors.New("sink down")

func (s *recordingSink) AppendQuestionShown(_ context.Context, a QuestionActivity) error {
	if s.failAppends {
		return errSinkDown
	}
	s.shown = append(s.shown, a)
	return nil
}

func (s *recordingSink) AppendQuestionAnswered(_ context.Context, a QuestionActivity) error {
	if s.failAppends {
		return errSinkDown
	}
	s.answered = append(s.answered, a)
	return nil
}

func (s *recordingSink) AppendLessonCompletion(_ context.Context, c LessonCompletion) error {
	if s.failAppends {
		return errSinkDown
	}
	s.completions = append(s.completions, c)
	return nil
}

func (s *recordingSink) AppendMasteryCompletion(_ context.Context, c MasteryCompletion) error {
	if s.failAppends {
		return errSinkDown
	}
	s.masteries = append(s.masteries, c)
	return nil
}

func twoQuestionLesson(moduleID string, n int) LessonSpec {
	id := fmt.Sprintf("%s-lesson-%d", moduleID, n)
	return LessonSpec{
		ID:           id,
		ModuleID:     moduleID,
		AssignmentID: id + "-check",
		Questions: []QuestionSpec{
			{ID: id + "-q0", AssignmentQuestionID: id + "-aq0", KnowledgeComponentID: "kc-0"},
			{ID: id + "-q1", AssignmentQuestionID: id + "-aq1", KnowledgeComponentID: "kc-1"},
		},
	}
}

// checkLessonOrdering asserts the causal chain for one (enrollment,
// lesson) pair: shown(q) <= answered(q) <= shown(q+1) <= ... <=
// completed <= mastery-check.
func checkLessonOrdering(t *testing.T, sink *recordingSink, enrollmentID, lessonID string) {
	t.Helper()

	byQuestion := func(events []QuestionActivity) map[string]time.Time {
		m := make(map[string]time.Time)
		for _, e := range events {
			if e.EnrollmentID == enrollmentID && e.LessonID == lessonID {
				m[e.QuestionID] = e.Timestamp
			}
		}
		return m
	}
	shown := byQuestion(sink.shown)
	answered := byQuestion(sink.answered)

	var lastAnswered time.Time
	for qid, at := range answered {
		if st, ok := shown[qid]; ok && at.Before(st) {
			t.Errorf("question %s answered %v before shown %v", qid, at, st)
		}
		if at.After(lastAnswered) {
			lastAnswered = at
		}
	}

	for _, c := range sink.completions {
		if c.EnrollmentID != enrollmentID || c.LessonID != lessonID {
			continue
		}
		if c.Timestamp.Before(lastAnswered) {
			t.Errorf("lesson %s completed %v before last answer %v", lessonID, c.Timestamp, lastAnswered)
		}
		for _, m := range sink.masteries {
			if m.EnrollmentID == enrollmentID && m.LessonID == lessonID && m.Timestamp.Before(c.Timestamp) {
				t.Errorf("lesson %s mastery check %v before completion %v", lessonID, m.Timestamp, c.Timestamp)
			}
		}
	}
}

func TestRunEndToEndScenario(t *testing.T) {
	// 1 module with 2 lessons (2 questions each), 3-day window, 2
	// students. Student 0 has completion rate 1.0 and, by the modular
	// formula, splits lesson 0: (0+0+0)%10 = 0 < 3.
	module := ModuleSpec{ID: "m0", Lessons: []LessonSpec{
		twoQuestionLesson("m0", 0),
		twoQuestionLesson("m0", 1),
	}}
	enrollments := []Enrollment{
		{ID: "e0", StudentID: "s0", Name: "Student 0", Index: 0},
		{ID: "e1", StudentID: "s1", Name: "Student 1", Index: 1},
	}
	windows := []ModuleWindow{{ModuleIdx: 0, Days: []int{3, 2, 1}}}

	sink := &recordingSink{}
	stats, err := NewEngine(sink, runNow, nil).Run(context.Background(), enrollments, []ModuleSpec{module}, windows)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Both students complete both lessons (rates 1.0 and 0.8 both round
	// to 2 of 2 lessons).
	if len(sink.completions) != 4 {
		t.Fatalf("lesson completions = %d, want 4", len(sink.completions))
	}
	if len(sink.shown) != 8 || len(sink.answered) != 8 {
		t.Fatalf("question events = %d shown / %d answered, want 8/8", len(sink.shown), len(sink.answered))
	}
	if len(sink.masteries) != 4 {
		t.Fatalf("mastery completions = %d, want 4", len(sink.masteries))
	}

	// All four (student, lesson) pairs split under the modular formula.
	if stats.SplitLessons != 4 {
		t.Errorf("splits = %d, want 4", stats.SplitLessons)
	}

	// Student 0's lesson 0 spans two days: first half on the oldest day,
	// remainder on the next working day.
	var days []time.Time
	for _, a := range sink.answered {
		if a.EnrollmentID == "e0" && a.LessonID == "m0-lesson-0" {
			days = append(days, a.Timestamp.Truncate(24*time.Hour))
		}
	}
	if len(days) != 2 || days[0].Equal(days[1]) {
		t.Errorf("split lesson answered on days %v, want two distinct days", days)
	}

	for _, e := range enrollments {
		for _, l := range module.Lessons {
			checkLessonOrdering(t, sink, e.ID, l.ID)
		}
	}

	if stats.LessonsCompleted != 4 || stats.QuestionsAnswered != 8 {
		t.Errorf("stats = %d lessons / %d answers, want 4/8", stats.LessonsCompleted, stats.QuestionsAnswered)
	}
}

func TestRunImmediatePathOrdering(t *testing.T) {
	// Index 3 neither splits (3%10 >= 3) nor delays (3%5 >= 2): the whole
	// chain lands on one day and must still be causally ordered.
	module := ModuleSpec{ID: "m0", Lessons: []LessonSpec{twoQuestionLesson("m0", 0)}}
	enrollments := []Enrollment{{ID: "e3", StudentID: "s3", Name: "Student 3", Index: 3}}
	windows := []ModuleWindow{{ModuleIdx: 0, Days: []int{5, 4, 3}}}

	sink := &recordingSink{}
	stats, err := NewEngine(sink, runNow, nil).Run(context.Background(), enrollments, []ModuleSpec{module}, windows)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if stats.SplitLessons != 0 || stats.DelayedChecks != 0 {
		t.Fatalf("splits/delays = %d/%d, want 0/0", stats.SplitLessons, stats.DelayedChecks)
	}
	if len(sink.masteries) != 1 {
		t.Fatalf("masteries = %d, want 1", len(sink.masteries))
	}
	if sink.masteries[0].Delayed {
		t.Error("immediate mastery check marked delayed")
	}
	checkLessonOrdering(t, sink, "e3", "m0-lesson-0")
}

func TestRunCompletionRateBoundaries(t *testing.T) {
	lessons := make([]LessonSpec, 5)
	for i := range lessons {
		lessons[i] = twoQuestionLesson("m0", i)
	}
	module := ModuleSpec{ID: "m0", Lessons: lessons}
	windows := []ModuleWindow{{ModuleIdx: 0, Days: []int{10, 9, 8, 7, 6, 5, 4, 3, 2, 1}}}

	completionsFor := func(index int) int {
		sink := &recordingSink{}
		enr := []Enrollment{{ID: "e", StudentID: "s", Name: "S", Index: index}}
		if _, err := NewEngine(sink, runNow, nil).Run(context.Background(), enr, []ModuleSpec{module}, windows); err != nil {
			t.Fatalf("Run(index %d): %v", index, err)
		}
		return len(sink.completions)
	}

	if got := completionsFor(0); got != 5 {
		t.Errorf("rate 1.0 completed %d of 5 lessons, want 5", got)
	}
	// ceil(5 * 0.2) = 1.
	if got := completionsFor(4); got != 1 {
		t.Errorf("rate 0.2 completed %d of 5 lessons, want 1", got)
	}
}

func TestRunZeroLessonModule(t *testing.T) {
	modules := []ModuleSpec{
		{ID: "empty"},
		{ID: "m1", Lessons: []LessonSpec{twoQuestionLesson("m1", 0)}},
	}
	windows := AllocateWindows([]int{0, 1}, []int{3, 2, 1})
	enrollments := []Enrollment{{ID: "e0", StudentID: "s0", Name: "S", Index: 0}}

	sink := &recordingSink{}
	stats, err := NewEngine(sink, runNow, nil).Run(context.Background(), enrollments, modules, windows)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, c := range sink.completions {
		if c.ModuleID == "empty" {
			t.Error("zero-lesson module produced a completion")
		}
	}
	if stats.LessonsCompleted != 1 {
		t.Errorf("lessons completed = %d, want 1", stats.LessonsCompleted)
	}
}

func TestRunLessonWithoutQuestionsFails(t *testing.T) {
	module := ModuleSpec{ID: "m0", Lessons: []LessonSpec{{ID: "broken", ModuleID: "m0"}}}
	windows := []ModuleWindow{{ModuleIdx: 0, Days: []int{2, 1}}}
	enrollments := []Enrollment{{ID: "e0", StudentID: "s0", Name: "S", Index: 0}}

	_, err := NewEngine(&recordingSink{}, runNow, nil).Run(context.Background(), enrollments, []ModuleSpec{module}, windows)
	if err == nil {
		t.Fatal("expected error for lesson without questions")
	}
}

func TestRunSinkFailureAborts(t *testing.T) {
	module := ModuleSpec{ID: "m0", Lessons: []LessonSpec{twoQuestionLesson("m0", 0)}}
	windows := []ModuleWindow{{ModuleIdx: 0, Days: []int{2, 1}}}
	enrollments := []Enrollment{{ID: "e0", StudentID: "s0", Name: "S", Index: 0}}

	sink := &recordingSink{failAppends: true}
	_, err := NewEngine(sink, runNow, nil).Run(context.Background(), enrollments, []ModuleSpec{module}, windows)
	if !errors.Is(err, errSinkDown) {
		t.Fatalf("err = %v, want wrapped sink error", err)
	}
}

func TestRunDeterministic(t *testing.T) {
	lessons := make([]LessonSpec, 4)
	for i := range lessons {
		lessons[i] = twoQuestionLesson("m0", i)
	}
	module := ModuleSpec{ID: "m0", Lessons: lessons}
	windows := []ModuleWindow{{ModuleIdx: 0, Days: []int{8, 7, 6, 5, 4, 3, 2, 1}}}
	var enrollments []Enrollment
	for i := 0; i < 7; i++ {
		enrollments = append(enrollments, Enrollment{
			ID: fmt.Sprintf("e%d", i), StudentID: fmt.Sprintf("s%d", i), Name: "S", Index: i,
		})
	}

	runOnce := func() *recordingSink {
		sink := &recordingSink{}
		if _, err := NewEngine(sink, runNow, nil).Run(context.Background(), enrollments, []ModuleSpec{module}, windows); err != nil {
			t.Fatalf("Run: %v", err)
		}
		return sink
	}

	a, b := runOnce(), runOnce()
	if len(a.answered) != len(b.answered) || len(a.completions) != len(b.completions) || len(a.masteries) != len(b.masteries) {
		t.Fatal("repeated runs emitted different event counts")
	}
	for i := range a.answered {
		if a.answered[i] != b.answered[i] {
			t.Fatalf("answered[%d] differs between runs", i)
		}
	}
	for i := range a.masteries {
		if a.masteries[i] != b.masteries[i] {
			t.Fatalf("masteries[%d] differs between runs", i)
		}
	}
}

func TestRunModuleWindowMismatch(t *testing.T) {
	module := ModuleSpec{ID: "m0", Lessons: []LessonSpec{twoQuestionLesson("m0", 0)}}
	_, err := NewEngine(&recordingSink{}, runNow, nil).Run(context.Background(), nil, []ModuleSpec{module}, nil)
	if err == nil {
		t.Fatal("expected error for modules/windows length mismatch")
	}
}
