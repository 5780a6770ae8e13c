// Package seeder orchestrates a full sandbox seeding run: roster
// creation, the pacing engine pass, engagement events, assessment
// responses, feedback comments, and the pacing API push.
package seeder

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/paceseed/internal/archetype"
	"github.com/abhisek/paceseed/internal/assessment"
	"github.com/abhisek/paceseed/internal/calendar"
	"github.com/abhisek/paceseed/internal/feedback"
	"github.com/abhisek/paceseed/internal/paceapi"
	"github.com/abhisek/paceseed/internal/pacing"
	"github.com/abhisek/paceseed/internal/store"
)

// assessmentQuestions is the fixed size of the group assessment.
const assessmentQuestions = 10

// Intra-day minutes for the engagement phases. Afternoon slots keep
// them clear of the morning lesson activity.
const (
	attendanceMinute = 8*60 + 30
	pointsMinute     = 16 * 60
	feedbackMinute   = 17 * 60
)

// PacePusher is the slice of the pacing API client the runner needs.
type PacePusher interface {
	Reset(ctx context.Context, groupID string) error
	Push(ctx context.Context, push paceapi.PushRequest) error
}

// Options fixes the shape of a seeding run.
type Options struct {
	GroupID      string
	Students     int
	LookbackDays int

	// KeepEvents skips the event-clearing step before seeding, so a run
	// adds to whatever the group already holds.
	KeepEvents bool
}

// Runner executes seeding phases against the store.
type Runner struct {
	events   store.EventRepo
	roster   store.RosterRepo
	opts     Options
	pace     PacePusher
	comments feedback.Generator
	log      *zap.Logger
	now      time.Time
	progress ProgressFunc
}

// RunnerOption customizes a Runner.
type RunnerOption func(*Runner)

// WithPace enables the pacing API phases.
func WithPace(p PacePusher) RunnerOption {
	return func(r *Runner) { r.pace = p }
}

// WithFeedback overrides the feedback generator.
func WithFeedback(g feedback.Generator) RunnerOption {
	return func(r *Runner) { r.comments = g }
}

// WithLogger attaches a logger.
func WithLogger(log *zap.Logger) RunnerOption {
	return func(r *Runner) { r.log = log }
}

// WithProgress attaches a progress callback.
func WithProgress(fn ProgressFunc) RunnerOption {
	return func(r *Runner) { r.progress = fn }
}

// WithNow pins the reference time. Tests use this for stable windows.
func WithNow(now time.Time) RunnerOption {
	return func(r *Runner) { r.now = now }
}

// New creates a Runner. By default there is no pacing API, comments come
// from the canned generator, and the reference time is time.Now.
func New(events store.EventRepo, roster store.RosterRepo, opts Options, ros ...RunnerOption) *Runner {
	r := &Runner{
		events:   events,
		roster:   roster,
		opts:     opts,
		comments: feedback.NewCanned(),
		log:      zap.NewNop(),
		now:      time.Now(),
	}
	for _, o := range ros {
		o(r)
	}
	return r
}

// Report summarizes a completed seeding run.
type Report struct {
	// RunID tags the run in logs; events themselves stay deterministic.
	RunID string

	Stats       *pacing.RunStats
	Windows     []pacing.ModuleWindow
	WorkingDays []int
	Points      int
	Attendance  int
	Assessments int
	Feedback    int
	PacePushed  bool
}

// VerifyReport describes what the database currently holds for the group.
type VerifyReport struct {
	GroupExists bool
	Modules     int
	Lessons     int
	Students    int
	Counts      store.EventCounts
}

// StatsReport is the per-day and per-type aggregate view.
type StatsReport struct {
	Days   []store.DayActivity
	Counts store.EventCounts
}

func (r *Runner) report(phase, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	r.log.Info(msg, zap.String("phase", phase))
	if r.progress != nil {
		r.progress(Progress{Phase: phase, Message: msg})
	}
}

// Verify inspects the group without modifying anything.
func (r *Runner) Verify(ctx context.Context) (*VerifyReport, error) {
	rep := &VerifyReport{}

	exists, err := r.roster.HasGroup(ctx, r.opts.GroupID)
	if err != nil {
		return nil, err
	}
	rep.GroupExists = exists
	if !exists {
		return rep, nil
	}

	modules, err := r.roster.Modules(ctx, r.opts.GroupID)
	if err != nil {
		return nil, err
	}
	rep.Modules = len(modules)
	for _, m := range modules {
		rep.Lessons += len(m.Lessons)
	}

	enrollments, err := r.roster.Enrollments(ctx, r.opts.GroupID)
	if err != nil {
		return nil, err
	}
	rep.Students = len(enrollments)

	rep.Counts, err = r.events.EventCounts(ctx, r.opts.GroupID)
	if err != nil {
		return nil, err
	}
	return rep, nil
}

// Fix creates any missing sandbox roster rows without touching events.
func (r *Runner) Fix(ctx context.Context) error {
	_, _, err := r.ensureRoster(ctx)
	return err
}

// Clean removes everything seeded for the group: pacing configuration,
// events, then the roster. Safe to run against a group that was never
// seeded.
func (r *Runner) Clean(ctx context.Context) (int, error) {
	if r.pace != nil {
		r.report("clean", "resetting pacing configuration")
		if err := r.pace.Reset(ctx, r.opts.GroupID); err != nil {
			return 0, fmt.Errorf("reset pacing configuration: %w", err)
		}
	}

	deleted, err := r.events.DeleteGroupEvents(ctx, r.opts.GroupID)
	if err != nil {
		return deleted, fmt.Errorf("delete events: %w", err)
	}
	r.report("clean", "deleted %d events", deleted)

	if err := r.roster.DeleteGroupRoster(ctx, r.opts.GroupID); err != nil {
		return deleted, fmt.Errorf("delete roster: %w", err)
	}
	r.report("clean", "roster removed")
	return deleted, nil
}

// Seed runs every seeding phase and returns the run report. Reseeding an
// existing group replaces its events but reuses its roster.
func (r *Runner) Seed(ctx context.Context) (*Report, error) {
	modules, enrollments, err := r.ensureRoster(ctx)
	if err != nil {
		return nil, err
	}

	// Replace any prior synthetic history before writing the new one.
	if !r.opts.KeepEvents {
		if deleted, err := r.events.DeleteGroupEvents(ctx, r.opts.GroupID); err != nil {
			return nil, fmt.Errorf("clear prior events: %w", err)
		} else if deleted > 0 {
			r.report("roster", "cleared %d events from a previous run", deleted)
		}
	}

	rep := &Report{
		RunID:       uuid.NewString(),
		WorkingDays: calendar.WorkingDays(r.now, r.opts.LookbackDays),
	}
	r.log.Info("seeding run started",
		zap.String("run_id", rep.RunID),
		zap.String("group", r.opts.GroupID))

	lessonCounts := make([]int, len(modules))
	for i, m := range modules {
		lessonCounts[i] = len(m.Lessons)
	}
	rep.Windows = pacing.AllocateWindows(lessonCounts, rep.WorkingDays)

	r.report("pacing", "distributing lesson activity over %d working days", len(rep.WorkingDays))
	engine := pacing.NewEngine(&repoSink{events: r.events, groupID: r.opts.GroupID}, r.now, r.log)
	rep.Stats, err = engine.Run(ctx, toEnrollments(enrollments), toModuleSpecs(modules), rep.Windows)
	if err != nil {
		return nil, fmt.Errorf("pacing engine: %w", err)
	}

	if err := r.seedPoints(ctx, modules, enrollments, rep); err != nil {
		return nil, err
	}
	if err := r.seedAttendance(ctx, enrollments, rep); err != nil {
		return nil, err
	}
	if err := r.seedAssessments(ctx, enrollments, rep); err != nil {
		return nil, err
	}
	if err := r.seedFeedback(ctx, modules, enrollments, rep); err != nil {
		return nil, err
	}
	if err := r.pushPace(ctx, modules, rep); err != nil {
		return nil, err
	}

	r.report("done", "seeding complete")
	return rep, nil
}

// ensureRoster creates the sandbox roster when the group is missing and
// returns the curriculum and enrollments in pacing order.
func (r *Runner) ensureRoster(ctx context.Context) ([]store.ModuleRow, []store.EnrollmentRow, error) {
	exists, err := r.roster.HasGroup(ctx, r.opts.GroupID)
	if err != nil {
		return nil, nil, err
	}

	if !exists {
		r.report("roster", "creating sandbox roster for %s", r.opts.GroupID)
		if err := r.roster.EnsureEducator(ctx, EducatorFixture()); err != nil {
			return nil, nil, err
		}
		if err := r.roster.EnsureGroup(ctx, GroupFixture(r.opts.GroupID)); err != nil {
			return nil, nil, err
		}
		for i, m := range CurriculumFixture() {
			if err := r.roster.CreateModule(ctx, r.opts.GroupID, i, m); err != nil {
				return nil, nil, err
			}
		}
		if err := r.roster.CreateAssessment(ctx, r.opts.GroupID, AssessmentID, "Unit Checkpoint"); err != nil {
			return nil, nil, err
		}
		if err := r.roster.EnrollStudents(ctx, r.opts.GroupID, StudentFixtures(r.opts.Students)); err != nil {
			return nil, nil, err
		}
	} else {
		r.report("roster", "reusing existing roster for %s", r.opts.GroupID)
	}

	modules, err := r.roster.Modules(ctx, r.opts.GroupID)
	if err != nil {
		return nil, nil, err
	}
	enrollments, err := r.roster.Enrollments(ctx, r.opts.GroupID)
	if err != nil {
		return nil, nil, err
	}
	if len(enrollments) == 0 {
		return nil, nil, fmt.Errorf("group %s has no enrollments", r.opts.GroupID)
	}
	return modules, enrollments, nil
}

// seedPoints awards points per completed lesson, spread across the
// module's window so the dashboard's points timeline has texture.
func (r *Runner) seedPoints(ctx context.Context, modules []store.ModuleRow, enrollments []store.EnrollmentRow, rep *Report) error {
	r.report("points", "awarding lesson points")

	for i := range enrollments {
		globalLesson := 0
		for m, module := range modules {
			days := rep.Windows[m].Days
			completed := completedCount(i, len(module.Lessons))
			for j := 0; j < completed; j++ {
				if len(days) == 0 {
					break
				}
				day := days[j%len(days)]
				err := r.events.AppendPointEvent(ctx, store.PointEventData{
					GroupID:      r.opts.GroupID,
					EnrollmentID: enrollments[i].PublicID,
					Points:       archetype.LessonPoints(i, globalLesson+j),
					Reason:       "lesson-completed",
					Timestamp:    r.stamp(day, pointsMinute+i),
				})
				if err != nil {
					return fmt.Errorf("append point event: %w", err)
				}
				rep.Points++
			}
			globalLesson += len(module.Lessons)
		}
	}
	return nil
}

// seedAttendance marks every student on every working day with the
// deterministic present/absent/late pattern.
func (r *Runner) seedAttendance(ctx context.Context, enrollments []store.EnrollmentRow, rep *Report) error {
	r.report("attendance", "marking attendance for %d days", len(rep.WorkingDays))

	for _, day := range rep.WorkingDays {
		for i := range enrollments {
			err := r.events.AppendAttendanceEvent(ctx, store.AttendanceEventData{
				GroupID:      r.opts.GroupID,
				EnrollmentID: enrollments[i].PublicID,
				Date:         calendar.Midnight(r.now, day),
				Status:       archetype.AttendanceStatus(i, day),
				Timestamp:    r.stamp(day, attendanceMinute+i),
			})
			if err != nil {
				return fmt.Errorf("append attendance event: %w", err)
			}
			rep.Attendance++
		}
	}
	return nil
}

// seedAssessments records one checkpoint sitting per student.
func (r *Runner) seedAssessments(ctx context.Context, enrollments []store.EnrollmentRow, rep *Report) error {
	r.report("assessment", "recording checkpoint sittings")

	for _, resp := range assessment.Plan(0, len(enrollments), assessmentQuestions, rep.WorkingDays) {
		err := r.events.AppendAssessmentResponse(ctx, store.AssessmentResponseData{
			GroupID:           r.opts.GroupID,
			EnrollmentID:      enrollments[resp.EnrollmentIdx].PublicID,
			AssessmentID:      AssessmentID,
			Score:             resp.Score,
			QuestionsAnswered: resp.QuestionsAnswered,
			Timestamp:         r.stamp(resp.DayOffset, resp.Minute),
		})
		if err != nil {
			return fmt.Errorf("append assessment response: %w", err)
		}
		rep.Assessments++
	}
	return nil
}

// seedFeedback writes one teacher comment per student per module, on
// the student's most recently completed lesson in that module. Score and
// delay derive from the same per-module lesson index the pacing engine
// uses, so the comment agrees with the stored mastery event.
func (r *Runner) seedFeedback(ctx context.Context, modules []store.ModuleRow, enrollments []store.EnrollmentRow, rep *Report) error {
	r.report("feedback", "writing teacher feedback")

	for i := range enrollments {
		for m, module := range modules {
			days := rep.Windows[m].Days
			completed := completedCount(i, len(module.Lessons))
			if completed == 0 || len(days) == 0 {
				continue
			}

			last := module.Lessons[completed-1]
			lastIdx := completed - 1
			in := feedback.Input{
				StudentName: firstName(enrollments[i].DisplayName),
				LessonTitle: last.Title,
				Score:       archetype.MasteryScore(i, lastIdx),
				Delayed:     archetype.ShouldDelayMasteryCheck(i, lastIdx, m),
			}
			comment, err := r.comments.Comment(ctx, in)
			if err != nil {
				return fmt.Errorf("generate feedback: %w", err)
			}

			// Comments land at the end of the module's window.
			err = r.events.AppendFeedbackEvent(ctx, store.FeedbackEventData{
				GroupID:      r.opts.GroupID,
				EnrollmentID: enrollments[i].PublicID,
				LessonID:     last.PublicID,
				Comment:      comment.Text,
				Tone:         comment.Tone,
				Generator:    comment.Generator,
				Timestamp:    r.stamp(days[len(days)-1], feedbackMinute+i),
			})
			if err != nil {
				return fmt.Errorf("append feedback event: %w", err)
			}
			rep.Feedback++
		}
	}
	return nil
}

// pushPace uploads the allocator windows to the pacing API so the
// dashboard's pacing view matches the seeded history.
func (r *Runner) pushPace(ctx context.Context, modules []store.ModuleRow, rep *Report) error {
	if r.pace == nil {
		return nil
	}
	r.report("pace-push", "pushing pacing configuration")

	push := paceapi.PushRequest{
		GroupID:     r.opts.GroupID,
		GeneratedAt: r.now,
	}
	for m, module := range modules {
		push.Modules = append(push.Modules, paceapi.ModulePace{
			ModuleID:   module.PublicID,
			DayOffsets: rep.Windows[m].Days,
		})
	}
	if err := r.pace.Push(ctx, push); err != nil {
		return fmt.Errorf("push pacing configuration: %w", err)
	}
	rep.PacePushed = true
	return nil
}

// Pace recomputes the allocator windows from the stored curriculum and
// pushes them to the pacing API without reseeding any events.
func (r *Runner) Pace(ctx context.Context) ([]pacing.ModuleWindow, error) {
	if r.pace == nil {
		return nil, fmt.Errorf("no pacing API configured")
	}

	exists, err := r.roster.HasGroup(ctx, r.opts.GroupID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, fmt.Errorf("group %s does not exist; seed first", r.opts.GroupID)
	}

	modules, err := r.roster.Modules(ctx, r.opts.GroupID)
	if err != nil {
		return nil, err
	}

	lessonCounts := make([]int, len(modules))
	for i, m := range modules {
		lessonCounts[i] = len(m.Lessons)
	}
	rep := &Report{WorkingDays: calendar.WorkingDays(r.now, r.opts.LookbackDays)}
	rep.Windows = pacing.AllocateWindows(lessonCounts, rep.WorkingDays)

	if err := r.pushPace(ctx, modules, rep); err != nil {
		return nil, err
	}
	return rep.Windows, nil
}

// PaceReset clears the group's remote pacing configuration.
func (r *Runner) PaceReset(ctx context.Context) error {
	if r.pace == nil {
		return fmt.Errorf("no pacing API configured")
	}
	if err := r.pace.Reset(ctx, r.opts.GroupID); err != nil {
		return fmt.Errorf("reset pacing configuration: %w", err)
	}
	return nil
}

// Stats returns the aggregate view of what the group currently holds.
func (r *Runner) Stats(ctx context.Context) (*StatsReport, error) {
	days, err := r.events.DailyActivity(ctx, r.opts.GroupID)
	if err != nil {
		return nil, err
	}
	counts, err := r.events.EventCounts(ctx, r.opts.GroupID)
	if err != nil {
		return nil, err
	}
	return &StatsReport{Days: days, Counts: counts}, nil
}

func (r *Runner) stamp(dayOffset, minute int) time.Time {
	return calendar.Midnight(r.now, dayOffset).Add(time.Duration(minute) * time.Minute)
}

// completedCount mirrors the engine's per-module lesson count: the
// completion rate times the module size, rounded up, clamped.
func completedCount(studentIdx, lessons int) int {
	n := int(math.Ceil(archetype.CompletionRate(studentIdx) * float64(lessons)))
	if n > lessons {
		n = lessons
	}
	return n
}

func firstName(display string) string {
	if parts := strings.Fields(display); len(parts) > 0 {
		return parts[0]
	}
	return display
}

func toModuleSpecs(modules []store.ModuleRow) []pacing.ModuleSpec {
	out := make([]pacing.ModuleSpec, 0, len(modules))
	for _, m := range modules {
		spec := pacing.ModuleSpec{ID: m.PublicID}
		for _, l := range m.Lessons {
			ls := pacing.LessonSpec{
				ID:           l.PublicID,
				ModuleID:     m.PublicID,
				AssignmentID: l.AssignmentID,
			}
			for _, q := range l.Questions {
				ls.Questions = append(ls.Questions, pacing.QuestionSpec{
					ID:                   q.PublicID,
					AssignmentQuestionID: q.AssignmentQuestionID,
					KnowledgeComponentID: q.KnowledgeComponentID,
				})
			}
			spec.Lessons = append(spec.Lessons, ls)
		}
		out = append(out, spec)
	}
	return out
}

func toEnrollments(rows []store.EnrollmentRow) []pacing.Enrollment {
	out := make([]pacing.Enrollment, 0, len(rows))
	for i, e := range rows {
		out = append(out, pacing.Enrollment{
			ID:        e.PublicID,
			StudentID: e.StudentProfileID,
			Name:      e.DisplayName,
			Index:     i,
		})
	}
	return out
}
