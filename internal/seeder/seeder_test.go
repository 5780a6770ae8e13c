package seeder

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/abhisek/paceseed/internal/calendar"
	"github.com/abhisek/paceseed/internal/feedback"
	"github.com/abhisek/paceseed/internal/paceapi"
	"github.com/abhisek/paceseed/internal/store"
)

// Fixed reference time: Friday 2026-03-06.
var testNow = time.Date(2026, 3, 6, 12, 0, 0, 0, time.UTC)

// mockEventRepo is an in-memory EventRepo.
type mockEventRepo struct {
	questions   []store.QuestionEventData
	lessons     []store.LessonCompletionData
	assignments []store.AssignmentCompletionData
	points      []store.PointEventData
	attendance  []store.AttendanceEventData
	assessments []store.AssessmentResponseData
	feedback    []store.FeedbackEventData

	failAppends bool
}

var errMockAppend = errors.New("append refused")

func (m *mockEventRepo) AppendQuestionEvent(_ context.Context, d store.QuestionEventData) error {
	if m.failAppends {
		return errMockAppend
	}
	m.questions = append(m.questions, d)
	return nil
}

func (m *mockEventRepo) AppendLessonCompletion(_ context.Context, d store.LessonCompletionData) error {
	if m.failAppends {
		return errMockAppend
	}
	m.lessons = append(m.lessons, d)
	return nil
}

func (m *mockEventRepo) AppendAssignmentCompletion(_ context.Context, d store.AssignmentCompletionData) error {
	if m.failAppends {
		return errMockAppend
	}
	m.assignments = append(m.assignments, d)
	return nil
}

func (m *mockEventRepo) AppendPointEvent(_ context.Context, d store.PointEventData) error {
	if m.failAppends {
		return errMockAppend
	}
	m.points = append(m.points, d)
	return nil
}

func (m *mockEventRepo) AppendAttendanceEvent(_ context.Context, d store.AttendanceEventData) error {
	if m.failAppends {
		return errMockAppend
	}
	m.attendance = append(m.attendance, d)
	return nil
}

func (m *mockEventRepo) AppendAssessmentResponse(_ context.Context, d store.AssessmentResponseData) error {
	if m.failAppends {
		return errMockAppend
	}
	m.assessments = append(m.assessments, d)
	return nil
}

func (m *mockEventRepo) AppendFeedbackEvent(_ context.Context, d store.FeedbackEventData) error {
	if m.failAppends {
		return errMockAppend
	}
	m.feedback = append(m.feedback, d)
	return nil
}

func (m *mockEventRepo) DailyActivity(context.Context, string) ([]store.DayActivity, error) {
	return nil, nil
}

func (m *mockEventRepo) EventCounts(context.Context, string) (store.EventCounts, error) {
	return store.EventCounts{
		QuestionEvents:        len(m.questions),
		LessonCompletions:     len(m.lessons),
		AssignmentCompletions: len(m.assignments),
		PointEvents:           len(m.points),
		AttendanceEvents:      len(m.attendance),
		AssessmentResponses:   len(m.assessments),
		FeedbackEvents:        len(m.feedback),
	}, nil
}

func (m *mockEventRepo) DeleteGroupEvents(context.Context, string) (int, error) {
	n := len(m.questions) + len(m.lessons) + len(m.assignments) + len(m.points) +
		len(m.attendance) + len(m.assessments) + len(m.feedback)
	m.questions, m.lessons, m.assignments = nil, nil, nil
	m.points, m.attendance, m.assessments, m.feedback = nil, nil, nil, nil
	return n, nil
}

// mockRosterRepo is an in-memory RosterRepo.
type mockRosterRepo struct {
	group       *store.GroupData
	educator    *store.EducatorData
	modules     []store.ModuleRow
	enrollments []store.EnrollmentRow
	assessments []string

	createModuleCalls int
}

func (m *mockRosterRepo) EnsureEducator(_ context.Context, d store.EducatorData) error {
	m.educator = &d
	return nil
}

func (m *mockRosterRepo) EnsureGroup(_ context.Context, d store.GroupData) error {
	m.group = &d
	return nil
}

func (m *mockRosterRepo) HasGroup(context.Context, string) (bool, error) {
	return m.group != nil, nil
}

func (m *mockRosterRepo) CreateModule(_ context.Context, _ string, _ int, row store.ModuleRow) error {
	m.createModuleCalls++
	m.modules = append(m.modules, row)
	return nil
}

func (m *mockRosterRepo) CreateAssessment(_ context.Context, _ string, publicID, _ string) error {
	m.assessments = append(m.assessments, publicID)
	return nil
}

func (m *mockRosterRepo) EnrollStudents(_ context.Context, _ string, students []store.StudentData) error {
	for i, s := range students {
		m.enrollments = append(m.enrollments, store.EnrollmentRow{
			PublicID:         s.EnrollmentID,
			StudentProfileID: s.ProfileID,
			DisplayName:      s.DisplayName,
			Position:         i,
		})
	}
	return nil
}

func (m *mockRosterRepo) Modules(context.Context, string) ([]store.ModuleRow, error) {
	return m.modules, nil
}

func (m *mockRosterRepo) Enrollments(context.Context, string) ([]store.EnrollmentRow, error) {
	return m.enrollments, nil
}

func (m *mockRosterRepo) DeleteGroupRoster(context.Context, string) error {
	m.group, m.educator = nil, nil
	m.modules, m.enrollments, m.assessments = nil, nil, nil
	return nil
}

// mockPace records pacing API calls.
type mockPace struct {
	resets []string
	pushes []paceapi.PushRequest
}

func (m *mockPace) Reset(_ context.Context, groupID string) error {
	m.resets = append(m.resets, groupID)
	return nil
}

func (m *mockPace) Push(_ context.Context, push paceapi.PushRequest) error {
	m.pushes = append(m.pushes, push)
	return nil
}

func newTestRunner(events *mockEventRepo, roster *mockRosterRepo, extra ...RunnerOption) *Runner {
	opts := Options{GroupID: "sandbox-group-1", Students: 4, LookbackDays: 14}
	ros := append([]RunnerOption{WithNow(testNow)}, extra...)
	return New(events, roster, opts, ros...)
}

func TestSeedCreatesRosterAndEvents(t *testing.T) {
	events := &mockEventRepo{}
	roster := &mockRosterRepo{}
	r := newTestRunner(events, roster)

	rep, err := r.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}

	if roster.group == nil || roster.educator == nil {
		t.Fatal("group/educator not created")
	}
	if len(roster.modules) != 3 {
		t.Errorf("modules = %d, want 3", len(roster.modules))
	}
	if len(roster.enrollments) != 4 {
		t.Errorf("enrollments = %d, want 4", len(roster.enrollments))
	}
	if len(roster.assessments) != 1 || roster.assessments[0] != AssessmentID {
		t.Errorf("assessments = %v", roster.assessments)
	}

	workingDays := len(calendar.WorkingDays(testNow, 14))
	if len(rep.WorkingDays) != workingDays {
		t.Errorf("working days = %d, want %d", len(rep.WorkingDays), workingDays)
	}

	if len(events.questions) == 0 || len(events.lessons) == 0 || len(events.assignments) == 0 {
		t.Error("pacing pass emitted no lesson activity")
	}
	if got := len(events.attendance); got != 4*workingDays {
		t.Errorf("attendance events = %d, want %d", got, 4*workingDays)
	}
	if got := len(events.assessments); got != 4 {
		t.Errorf("assessment responses = %d, want 4", got)
	}
	if rep.Points != len(events.points) || rep.Points == 0 {
		t.Errorf("points report = %d, events = %d", rep.Points, len(events.points))
	}
	if rep.Feedback != len(events.feedback) || rep.Feedback == 0 {
		t.Errorf("feedback report = %d, events = %d", rep.Feedback, len(events.feedback))
	}
	if rep.PacePushed {
		t.Error("pace reported pushed with no client configured")
	}

	// Every event must carry the sandbox group ID.
	for _, q := range events.questions {
		if q.GroupID != "sandbox-group-1" {
			t.Fatalf("question event with group %q", q.GroupID)
		}
	}
}

func TestSeedPointsMatchCompletedLessons(t *testing.T) {
	events := &mockEventRepo{}
	r := newTestRunner(events, &mockRosterRepo{})

	if _, err := r.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	// One point award per completed lesson means the two counts agree.
	if len(events.points) != len(events.lessons) {
		t.Errorf("point events = %d, lesson completions = %d", len(events.points), len(events.lessons))
	}
}

func TestSeedPushesPace(t *testing.T) {
	pace := &mockPace{}
	r := newTestRunner(&mockEventRepo{}, &mockRosterRepo{}, WithPace(pace))

	rep, err := r.Seed(context.Background())
	if err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if !rep.PacePushed {
		t.Fatal("report does not show pace pushed")
	}
	if len(pace.pushes) != 1 {
		t.Fatalf("pushes = %d, want 1", len(pace.pushes))
	}

	push := pace.pushes[0]
	if push.GroupID != "sandbox-group-1" {
		t.Errorf("push group = %q", push.GroupID)
	}
	if len(push.Modules) != 3 {
		t.Fatalf("push modules = %d, want 3", len(push.Modules))
	}
	wantModules := []string{"sandbox-module-1", "sandbox-module-2", "sandbox-module-3"}
	for m, mp := range push.Modules {
		if mp.ModuleID != wantModules[m] {
			t.Errorf("push module %d = %q, want %q", m, mp.ModuleID, wantModules[m])
		}
		if len(mp.DayOffsets) != len(rep.Windows[m].Days) {
			t.Errorf("module %d day offsets = %d, want %d", m, len(mp.DayOffsets), len(rep.Windows[m].Days))
		}
	}
}

func TestSeedReusesExistingRoster(t *testing.T) {
	events := &mockEventRepo{}
	roster := &mockRosterRepo{}
	r := newTestRunner(events, roster)

	first, err := r.Seed(context.Background())
	if err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	firstCounts, _ := events.EventCounts(context.Background(), "sandbox-group-1")
	createCalls := roster.createModuleCalls

	second, err := r.Seed(context.Background())
	if err != nil {
		t.Fatalf("second Seed: %v", err)
	}
	secondCounts, _ := events.EventCounts(context.Background(), "sandbox-group-1")

	if roster.createModuleCalls != createCalls {
		t.Error("reseed recreated modules instead of reusing the roster")
	}
	if firstCounts != secondCounts {
		t.Errorf("reseed changed event counts: %+v vs %+v", firstCounts, secondCounts)
	}
	if first.Stats.QuestionsAnswered != second.Stats.QuestionsAnswered {
		t.Error("reseed produced different pacing output")
	}
}

func TestSeedFeedbackMatchesMasteryEvents(t *testing.T) {
	events := &mockEventRepo{}
	r := newTestRunner(events, &mockRosterRepo{})

	if _, err := r.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}
	if len(events.feedback) == 0 {
		t.Fatal("no feedback events seeded")
	}

	// Each comment is written about a lesson whose mastery check is in
	// the store; its tone must reflect that check's recorded score.
	masteryTone := make(map[string]string)
	for _, a := range events.assignments {
		masteryTone[a.EnrollmentID+"/"+a.LessonID] = feedback.ToneFor(a.Score)
	}
	for _, f := range events.feedback {
		want, ok := masteryTone[f.EnrollmentID+"/"+f.LessonID]
		if !ok {
			t.Errorf("feedback on %s/%s has no mastery event", f.EnrollmentID, f.LessonID)
			continue
		}
		if f.Tone != want {
			t.Errorf("feedback tone for %s/%s = %q, mastery score implies %q",
				f.EnrollmentID, f.LessonID, f.Tone, want)
		}
	}
}

func TestSeedKeepEventsSkipsClearing(t *testing.T) {
	events := &mockEventRepo{}
	roster := &mockRosterRepo{}

	if _, err := newTestRunner(events, roster).Seed(context.Background()); err != nil {
		t.Fatalf("first Seed: %v", err)
	}
	firstCounts, _ := events.EventCounts(context.Background(), "sandbox-group-1")

	keep := New(events, roster,
		Options{GroupID: "sandbox-group-1", Students: 4, LookbackDays: 14, KeepEvents: true},
		WithNow(testNow))
	if _, err := keep.Seed(context.Background()); err != nil {
		t.Fatalf("keep Seed: %v", err)
	}

	counts, _ := events.EventCounts(context.Background(), "sandbox-group-1")
	if counts.Total() != 2*firstCounts.Total() {
		t.Errorf("events after keep reseed = %d, want %d", counts.Total(), 2*firstCounts.Total())
	}
}

func TestFixCreatesMissingRoster(t *testing.T) {
	events := &mockEventRepo{}
	roster := &mockRosterRepo{}
	r := newTestRunner(events, roster)

	if err := r.Fix(context.Background()); err != nil {
		t.Fatalf("Fix: %v", err)
	}
	if roster.group == nil || len(roster.modules) != 3 || len(roster.enrollments) != 4 {
		t.Fatalf("roster after Fix = %+v", roster)
	}
	counts, _ := events.EventCounts(context.Background(), "sandbox-group-1")
	if counts.Total() != 0 {
		t.Errorf("Fix wrote %d events, want 0", counts.Total())
	}

	// A second Fix reuses the roster.
	calls := roster.createModuleCalls
	if err := r.Fix(context.Background()); err != nil {
		t.Fatalf("second Fix: %v", err)
	}
	if roster.createModuleCalls != calls {
		t.Error("second Fix recreated modules")
	}
}

func TestSeedAbortsOnSinkFailure(t *testing.T) {
	events := &mockEventRepo{failAppends: true}
	r := newTestRunner(events, &mockRosterRepo{})

	if _, err := r.Seed(context.Background()); !errors.Is(err, errMockAppend) {
		t.Fatalf("expected wrapped append error, got %v", err)
	}
}

func TestPaceResetRequiresClient(t *testing.T) {
	r := newTestRunner(&mockEventRepo{}, &mockRosterRepo{})
	if err := r.PaceReset(context.Background()); err == nil {
		t.Fatal("expected error without a pacing client")
	}

	pace := &mockPace{}
	r = newTestRunner(&mockEventRepo{}, &mockRosterRepo{}, WithPace(pace))
	if err := r.PaceReset(context.Background()); err != nil {
		t.Fatalf("PaceReset: %v", err)
	}
	if len(pace.resets) != 1 || pace.resets[0] != "sandbox-group-1" {
		t.Errorf("resets = %v", pace.resets)
	}
}

func TestCleanRemovesEverything(t *testing.T) {
	events := &mockEventRepo{}
	roster := &mockRosterRepo{}
	pace := &mockPace{}
	r := newTestRunner(events, roster, WithPace(pace))

	if _, err := r.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	deleted, err := r.Clean(context.Background())
	if err != nil {
		t.Fatalf("Clean: %v", err)
	}
	if deleted == 0 {
		t.Error("Clean deleted no events after a seed")
	}
	if roster.group != nil {
		t.Error("roster survived Clean")
	}
	if len(pace.resets) != 1 {
		t.Errorf("pace resets = %d, want 1", len(pace.resets))
	}

	// Cleaning an already-clean group is a no-op, not an error.
	if _, err := r.Clean(context.Background()); err != nil {
		t.Fatalf("second Clean: %v", err)
	}
}

func TestVerifyReportsState(t *testing.T) {
	events := &mockEventRepo{}
	roster := &mockRosterRepo{}
	r := newTestRunner(events, roster)

	rep, err := r.Verify(context.Background())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if rep.GroupExists {
		t.Fatal("group reported before seeding")
	}

	if _, err := r.Seed(context.Background()); err != nil {
		t.Fatalf("Seed: %v", err)
	}

	rep, err = r.Verify(context.Background())
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if !rep.GroupExists {
		t.Fatal("group missing after seeding")
	}
	if rep.Modules != 3 || rep.Lessons != 7 || rep.Students != 4 {
		t.Errorf("verify report = %+v", rep)
	}
	if rep.Counts.Total() == 0 {
		t.Error("verify found no events after seeding")
	}
}

func TestStudentFixturesNamesUniqueAndOrdered(t *testing.T) {
	students := StudentFixtures(30)
	if len(students) != 30 {
		t.Fatalf("students = %d", len(students))
	}
	seen := map[string]bool{}
	for i, s := range students {
		if seen[s.EnrollmentID] {
			t.Errorf("duplicate enrollment ID %s", s.EnrollmentID)
		}
		seen[s.EnrollmentID] = true
		if s.DisplayName == "" {
			t.Errorf("student %d has empty name", i)
		}
	}
}

func TestCurriculumFixtureShape(t *testing.T) {
	modules := CurriculumFixture()
	if len(modules) != 3 {
		t.Fatalf("modules = %d", len(modules))
	}

	var withoutKC int
	for _, m := range modules {
		if len(m.Lessons) == 0 {
			t.Errorf("module %s has no lessons", m.PublicID)
		}
		for _, l := range m.Lessons {
			if l.AssignmentID == "" {
				t.Errorf("lesson %s has no mastery check", l.PublicID)
			}
			if len(l.Questions) == 0 {
				t.Errorf("lesson %s has no questions", l.PublicID)
			}
			for _, q := range l.Questions {
				if q.KnowledgeComponentID == "" {
					withoutKC++
				}
			}
		}
	}
	if withoutKC == 0 {
		t.Error("fixture should include at least one question without a knowledge component")
	}
}
