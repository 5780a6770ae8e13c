package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		if err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got); err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSchemaVersionRecorded(t *testing.T) {
	s := openTestStore(t)

	got, err := s.MetaValue(context.Background(), "version")
	if err != nil {
		t.Fatalf("MetaValue: %v", err)
	}
	if got != SchemaVersion {
		t.Errorf("recorded version = %q, want %q", got, SchemaVersion)
	}
}

func TestIsPostgresDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want bool
	}{
		{"postgres://dev@localhost/dash", true},
		{"postgresql://dev@localhost/dash", true},
		{"sandbox.db", false},
		{"file::memory:?cache=shared", false},
	}
	for _, tt := range tests {
		if got := IsPostgresDSN(tt.dsn); got != tt.want {
			t.Errorf("IsPostgresDSN(%q) = %v, want %v", tt.dsn, got, tt.want)
		}
	}
}

func TestEventAppendCountsAndDelete(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("EventRepo: %v", err)
	}
	ctx := context.Background()
	ts := time.Date(2026, 3, 4, 9, 0, 0, 0, time.UTC)

	appends := []func() error{
		func() error {
			return repo.AppendQuestionEvent(ctx, QuestionEventData{
				GroupID: "g1", EnrollmentID: "e1", LessonID: "l1",
				QuestionID: "q1", AssignmentQuestionID: "aq1",
				KnowledgeComponentID: "kc1", Action: "shown", Timestamp: ts,
			})
		},
		func() error {
			return repo.AppendQuestionEvent(ctx, QuestionEventData{
				GroupID: "g1", EnrollmentID: "e1", LessonID: "l1",
				QuestionID: "q1", AssignmentQuestionID: "aq1",
				Action: "answered", Timestamp: ts.Add(2 * time.Minute),
			})
		},
		func() error {
			return repo.AppendLessonCompletion(ctx, LessonCompletionData{
				GroupID: "g1", EnrollmentID: "e1", LessonID: "l1",
				ModuleID: "m1", QuestionsAnswered: 1, Timestamp: ts.Add(5 * time.Minute),
			})
		},
		func() error {
			return repo.AppendAssignmentCompletion(ctx, AssignmentCompletionData{
				GroupID: "g1", EnrollmentID: "e1", AssignmentID: "a1",
				LessonID: "l1", Score: 0.95, Timestamp: ts.Add(10 * time.Minute),
			})
		},
		func() error {
			return repo.AppendPointEvent(ctx, PointEventData{
				GroupID: "g1", EnrollmentID: "e1", Points: 10,
				Reason: "lesson-completed", Timestamp: ts,
			})
		},
		func() error {
			return repo.AppendAttendanceEvent(ctx, AttendanceEventData{
				GroupID: "g1", EnrollmentID: "e1", Date: ts.Truncate(24 * time.Hour),
				Status: "present", Timestamp: ts,
			})
		},
		func() error {
			return repo.AppendAssessmentResponse(ctx, AssessmentResponseData{
				GroupID: "g1", EnrollmentID: "e1", AssessmentID: "as1",
				Score: 0.9, QuestionsAnswered: 9, Timestamp: ts,
			})
		},
		func() error {
			return repo.AppendFeedbackEvent(ctx, FeedbackEventData{
				GroupID: "g1", EnrollmentID: "e1", LessonID: "l1",
				Comment: "Nice work.", Tone: "praise", Generator: "canned", Timestamp: ts,
			})
		},
	}
	for i, fn := range appends {
		if err := fn(); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	counts, err := repo.EventCounts(ctx, "g1")
	if err != nil {
		t.Fatalf("EventCounts: %v", err)
	}
	want := EventCounts{
		QuestionEvents: 2, LessonCompletions: 1, AssignmentCompletions: 1,
		PointEvents: 1, AttendanceEvents: 1, AssessmentResponses: 1, FeedbackEvents: 1,
	}
	if counts != want {
		t.Errorf("counts = %+v, want %+v", counts, want)
	}
	if counts.Total() != 8 {
		t.Errorf("total = %d, want 8", counts.Total())
	}

	// Other groups are untouched by a delete.
	if err := repo.AppendPointEvent(ctx, PointEventData{
		GroupID: "g2", EnrollmentID: "e9", Points: 5, Reason: "lesson-completed", Timestamp: ts,
	}); err != nil {
		t.Fatalf("append other-group event: %v", err)
	}

	deleted, err := repo.DeleteGroupEvents(ctx, "g1")
	if err != nil {
		t.Fatalf("DeleteGroupEvents: %v", err)
	}
	if deleted != 8 {
		t.Errorf("deleted = %d, want 8", deleted)
	}

	other, err := repo.EventCounts(ctx, "g2")
	if err != nil {
		t.Fatalf("EventCounts g2: %v", err)
	}
	if other.PointEvents != 1 {
		t.Errorf("g2 point events = %d, want 1", other.PointEvents)
	}
}

func TestDailyActivityGroupsByDay(t *testing.T) {
	s := openTestStore(t)
	repo, err := s.EventRepo()
	if err != nil {
		t.Fatalf("EventRepo: %v", err)
	}
	ctx := context.Background()

	day1 := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 3, 9, 0, 0, 0, time.UTC)

	for _, ts := range []time.Time{day1, day1.Add(3 * time.Minute), day2} {
		if err := repo.AppendQuestionEvent(ctx, QuestionEventData{
			GroupID: "g1", EnrollmentID: "e1", LessonID: "l1",
			QuestionID: "q1", AssignmentQuestionID: "aq1",
			Action: "answered", Timestamp: ts,
		}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}
	if err := repo.AppendLessonCompletion(ctx, LessonCompletionData{
		GroupID: "g1", EnrollmentID: "e1", LessonID: "l1",
		ModuleID: "m1", QuestionsAnswered: 2, Timestamp: day2,
	}); err != nil {
		t.Fatalf("append completion: %v", err)
	}

	days, err := repo.DailyActivity(ctx, "g1")
	if err != nil {
		t.Fatalf("DailyActivity: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("days = %d, want 2", len(days))
	}
	if days[0].Day != "2026-03-02" || days[1].Day != "2026-03-03" {
		t.Errorf("day order = %s, %s", days[0].Day, days[1].Day)
	}
	if days[0].QuestionsAnswered != 2 {
		t.Errorf("day1 answered = %d, want 2", days[0].QuestionsAnswered)
	}
	if days[1].LessonsCompleted != 1 {
		t.Errorf("day2 completions = %d, want 1", days[1].LessonsCompleted)
	}
}

func TestRosterRoundTrip(t *testing.T) {
	s := openTestStore(t)
	repo := s.RosterRepo()
	ctx := context.Background()

	if err := repo.EnsureEducator(ctx, EducatorData{PublicID: "ed1", Name: "T", Email: "t@example.com"}); err != nil {
		t.Fatalf("EnsureEducator: %v", err)
	}
	// Idempotent.
	if err := repo.EnsureEducator(ctx, EducatorData{PublicID: "ed1", Name: "T", Email: "t@example.com"}); err != nil {
		t.Fatalf("EnsureEducator again: %v", err)
	}
	if err := repo.EnsureGroup(ctx, GroupData{PublicID: "g1", Name: "Demo", EducatorID: "ed1"}); err != nil {
		t.Fatalf("EnsureGroup: %v", err)
	}

	has, err := repo.HasGroup(ctx, "g1")
	if err != nil || !has {
		t.Fatalf("HasGroup = %v, %v", has, err)
	}

	module := ModuleRow{
		PublicID: "m1",
		Title:    "Module One",
		Lessons: []LessonRow{
			{
				PublicID: "l1", Title: "Lesson One", AssignmentID: "a1",
				Questions: []QuestionRow{
					{PublicID: "q1", AssignmentQuestionID: "aq1", KnowledgeComponentID: "kc1", Prompt: "p1"},
					{PublicID: "q2", AssignmentQuestionID: "aq2", Prompt: "p2"},
				},
			},
			{PublicID: "l2", Title: "Lesson Two", AssignmentID: "a2",
				Questions: []QuestionRow{{PublicID: "q3", AssignmentQuestionID: "aq3", Prompt: "p3"}}},
		},
	}
	if err := repo.CreateModule(ctx, "g1", 0, module); err != nil {
		t.Fatalf("CreateModule: %v", err)
	}
	if err := repo.EnrollStudents(ctx, "g1", []StudentData{
		{ProfileID: "s1", EnrollmentID: "e1", DisplayName: "Maya"},
		{ProfileID: "s2", EnrollmentID: "e2", DisplayName: "Omar"},
	}); err != nil {
		t.Fatalf("EnrollStudents: %v", err)
	}

	modules, err := repo.Modules(ctx, "g1")
	if err != nil {
		t.Fatalf("Modules: %v", err)
	}
	if len(modules) != 1 || len(modules[0].Lessons) != 2 {
		t.Fatalf("modules shape = %+v", modules)
	}
	if modules[0].Lessons[0].PublicID != "l1" || modules[0].Lessons[1].PublicID != "l2" {
		t.Errorf("lesson order = %s, %s", modules[0].Lessons[0].PublicID, modules[0].Lessons[1].PublicID)
	}
	if got := modules[0].Lessons[0].Questions; len(got) != 2 || got[0].PublicID != "q1" {
		t.Errorf("question load = %+v", got)
	}

	enrollments, err := repo.Enrollments(ctx, "g1")
	if err != nil {
		t.Fatalf("Enrollments: %v", err)
	}
	if len(enrollments) != 2 || enrollments[0].PublicID != "e1" || enrollments[1].PublicID != "e2" {
		t.Fatalf("enrollment order = %+v", enrollments)
	}

	if err := repo.DeleteGroupRoster(ctx, "g1"); err != nil {
		t.Fatalf("DeleteGroupRoster: %v", err)
	}
	has, err = repo.HasGroup(ctx, "g1")
	if err != nil {
		t.Fatalf("HasGroup after delete: %v", err)
	}
	if has {
		t.Error("group survived DeleteGroupRoster")
	}

	// Deleting an absent group is a no-op.
	if err := repo.DeleteGroupRoster(ctx, "g1"); err != nil {
		t.Fatalf("second DeleteGroupRoster: %v", err)
	}
}
