package pacing

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/paceseed/internal/archetype"
	"github.com/abhisek/paceseed/internal/calendar"
)

// Intra-day minute layout. Events within a day are spaced by fixed
// offsets proportional to question position, which guarantees monotonic
// ordering without wall-clock precision.
const (
	baseHour       = 9  // simulated school day starts at 09:00 UTC
	questionStride = 3  // minutes between consecutive question pairs
	answerLag      = 2  // minutes between shown and answered
	masteryGap     = 5  // minutes after completion for an immediate check
	deferredGap    = 15 // extra minutes keeping a deferred check after its lesson
)

// startStagger is the fraction of a module window across which student
// start days are spread, so the cohort doesn't pile onto day one.
const startStagger = 0.3

// Engine walks every (student, module) pair and emits time-distributed
// activity events through a Sink. Execution is sequential: appends are
// issued one at a time and the first failure aborts the run.
type Engine struct {
	sink Sink
	now  time.Time
	log  *zap.Logger
}

// NewEngine creates an engine seeding events relative to now.
func NewEngine(sink Sink, now time.Time, log *zap.Logger) *Engine {
	if log == nil {
		log = zap.NewNop()
	}
	return &Engine{sink: sink, now: now, log: log}
}

// run holds the per-run mutable state: deferred-work queues and the stats
// accumulator. Built fresh for every Run call.
type run struct {
	*Engine
	totalStudents int
	continuations []PartialLessonContinuation
	pendingChecks []PendingMasteryCheck
	stats         *RunStats
}

// Run schedules every enrollment across every module window, then drains
// the deferred queues. modules and windows are parallel slices from
// AllocateWindows.
func (e *Engine) Run(ctx context.Context, enrollments []Enrollment, modules []ModuleSpec, windows []ModuleWindow) (*RunStats, error) {
	if len(modules) != len(windows) {
		return nil, fmt.Errorf("pacing: %d modules but %d windows", len(modules), len(windows))
	}

	r := &run{
		Engine:        e,
		totalStudents: len(enrollments),
		stats:         NewRunStats(),
	}
	r.stats.Students = len(enrollments)

	for _, enr := range enrollments {
		if err := r.scheduleStudent(ctx, enr, modules, windows); err != nil {
			return nil, err
		}
	}

	if err := r.reconcile(ctx); err != nil {
		return nil, err
	}

	for _, day := range r.stats.Days() {
		d := r.stats.PerDay[day]
		e.log.Info("seeded day",
			zap.Int("days_ago", day),
			zap.Int("questions_shown", d.QuestionsShown),
			zap.Int("questions_answered", d.QuestionsAnswered),
			zap.Int("lessons_completed", d.LessonsCompleted),
			zap.Int("mastery_checks", d.MasteryChecks),
		)
	}

	return r.stats, nil
}

// scheduleStudent walks one student's lessons across each module's day
// window in strict module order, simulating sequential curriculum
// progress.
func (r *run) scheduleStudent(ctx context.Context, enr Enrollment, modules []ModuleSpec, windows []ModuleWindow) error {
	rate := archetype.CompletionRate(enr.Index)

	for mi, module := range modules {
		window := windows[mi].Days
		if len(window) == 0 || len(module.Lessons) == 0 {
			continue
		}

		toComplete := int(math.Ceil(float64(len(module.Lessons)) * rate))
		if toComplete > len(module.Lessons) {
			toComplete = len(module.Lessons)
		}
		if toComplete == 0 {
			continue
		}

		start := 0
		if r.totalStudents > 0 {
			start = int(float64(enr.Index) / float64(r.totalStudents) * float64(len(window)) * startStagger)
		}
		daysPerLesson := (len(window) - start) / toComplete
		if daysPerLesson < 1 {
			daysPerLesson = 1
		}

		dayIdx := start
		for li := 0; li < toComplete; li++ {
			lesson := module.Lessons[li]
			if len(lesson.Questions) == 0 {
				return fmt.Errorf("pacing: lesson %s has no questions (enrollment %s)", lesson.ID, enr.ID)
			}

			day := window[min(dayIdx, len(window)-1)]

			if archetype.ShouldSplitLesson(enr.Index, li, mi, len(lesson.Questions)) {
				half := len(lesson.Questions) / 2
				if err := r.emitQuestions(ctx, enr, lesson, 0, half, day); err != nil {
					return err
				}
				r.continuations = append(r.continuations, PartialLessonContinuation{
					Student:   enr,
					Lesson:    lesson,
					LessonIdx: li,
					ModuleIdx: mi,
					Answered:  half,
					DayOffset: calendar.NextWorkingDay(day, window),
					Window:    window,
				})
				r.stats.SplitLessons++
				// The lesson spans two days; move the cursor two slots.
				dayIdx += 2 * daysPerLesson
				continue
			}

			if err := r.emitQuestions(ctx, enr, lesson, 0, len(lesson.Questions), day); err != nil {
				return err
			}
			if err := r.completeLesson(ctx, enr, lesson, li, mi, day, window); err != nil {
				return err
			}
			dayIdx += daysPerLesson
		}

		r.log.Debug("scheduled student module",
			zap.String("enrollment", enr.ID),
			zap.String("module", module.ID),
			zap.Int("lessons", toComplete),
			zap.Float64("rate", rate),
		)
	}

	return nil
}

// emitQuestions emits shown/answered pairs for questions [from, to) of
// the lesson on the given day. Question positions are absolute within the
// lesson so a continuation's minutes stay ahead of the first day's.
func (r *run) emitQuestions(ctx context.Context, enr Enrollment, lesson LessonSpec, from, to, day int) error {
	for qi := from; qi < to; qi++ {
		q := lesson.Questions[qi]
		act := QuestionActivity{
			EnrollmentID:         enr.ID,
			LessonID:             lesson.ID,
			QuestionID:           q.ID,
			AssignmentQuestionID: q.AssignmentQuestionID,
			KnowledgeComponentID: q.KnowledgeComponentID,
		}

		// Shown events require a knowledge component; answered events
		// do not.
		if q.KnowledgeComponentID != "" {
			act.Timestamp = r.stamp(day, qi*questionStride)
			if err := r.sink.AppendQuestionShown(ctx, act); err != nil {
				return fmt.Errorf("append question shown: %w", err)
			}
			r.stats.addShown(day)
		}

		act.Timestamp = r.stamp(day, qi*questionStride+answerLag)
		if err := r.sink.AppendQuestionAnswered(ctx, act); err != nil {
			return fmt.Errorf("append question answered: %w", err)
		}
		r.stats.addAnswered(day)
	}
	return nil
}

// completeLesson emits the lesson completion and either emits the mastery
// check immediately or defers it to the next working day.
func (r *run) completeLesson(ctx context.Context, enr Enrollment, lesson LessonSpec, lessonIdx, moduleIdx, day int, window []int) error {
	completionMinute := len(lesson.Questions) * questionStride

	if err := r.sink.AppendLessonCompletion(ctx, LessonCompletion{
		EnrollmentID:      enr.ID,
		LessonID:          lesson.ID,
		ModuleID:          lesson.ModuleID,
		QuestionsAnswered: len(lesson.Questions),
		Timestamp:         r.stamp(day, completionMinute),
	}); err != nil {
		return fmt.Errorf("append lesson completion: %w", err)
	}
	r.stats.addCompleted(day)

	if lesson.AssignmentID == "" {
		return nil
	}

	if archetype.ShouldDelayMasteryCheck(enr.Index, lessonIdx, moduleIdx) {
		r.pendingChecks = append(r.pendingChecks, PendingMasteryCheck{
			Student:   enr,
			Lesson:    lesson,
			LessonIdx: lessonIdx,
			ModuleIdx: moduleIdx,
			DayOffset: calendar.NextWorkingDay(day, window),
			Minute:    completionMinute + deferredGap,
		})
		r.stats.DelayedChecks++
		return nil
	}

	if err := r.sink.AppendMasteryCompletion(ctx, MasteryCompletion{
		EnrollmentID: enr.ID,
		AssignmentID: lesson.AssignmentID,
		LessonID:     lesson.ID,
		Score:        archetype.MasteryScore(enr.Index, lessonIdx),
		Timestamp:    r.stamp(day, completionMinute+masteryGap),
	}); err != nil {
		return fmt.Errorf("append mastery completion: %w", err)
	}
	r.stats.addMastery(day)
	return nil
}

// stamp converts a day offset and intra-day minute to a concrete UTC
// timestamp.
func (e *Engine) stamp(dayOffset, minute int) time.Time {
	day := calendar.Midnight(e.now, dayOffset)
	return day.Add(time.Duration(baseHour)*time.Hour + time.Duration(minute)*time.Minute)
}
