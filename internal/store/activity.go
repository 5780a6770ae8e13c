package store

import (
	"context"
	"fmt"
	"sort"

	"github.com/abhisek/paceseed/ent/assessmentresponseevent"
	"github.com/abhisek/paceseed/ent/assignmentcompletionevent"
	"github.com/abhisek/paceseed/ent/attendanceevent"
	"github.com/abhisek/paceseed/ent/feedbackevent"
	"github.com/abhisek/paceseed/ent/lessoncompletionevent"
	"github.com/abhisek/paceseed/ent/pointevent"
	"github.com/abhisek/paceseed/ent/questionevent"
)

// dayExpr returns the SQL expression extracting YYYY-MM-DD from the
// timestamp column for the active dialect.
func (r *eventRepo) dayExpr() string {
	if r.placeholder(1) == "?" { // SQLite
		return "strftime('%Y-%m-%d', timestamp)"
	}
	return "to_char(timestamp, 'YYYY-MM-DD')"
}

// DailyActivity aggregates per-day counts across the event tables with
// raw SQL; ent has no cross-table grouped aggregation.
func (r *eventRepo) DailyActivity(ctx context.Context, groupID string) ([]DayActivity, error) {
	byDay := make(map[string]*DayActivity)
	day := func(key string) *DayActivity {
		d := byDay[key]
		if d == nil {
			d = &DayActivity{Day: key}
			byDay[key] = d
		}
		return d
	}

	q := fmt.Sprintf(`SELECT %s AS day,
			SUM(CASE WHEN action = 'shown' THEN 1 ELSE 0 END),
			SUM(CASE WHEN action = 'answered' THEN 1 ELSE 0 END)
		FROM question_events WHERE group_id = %s GROUP BY 1`,
		r.dayExpr(), r.placeholder(1))
	rows, err := r.db.QueryContext(ctx, q, groupID)
	if err != nil {
		return nil, fmt.Errorf("query question activity: %w", err)
	}
	for rows.Next() {
		var key string
		var shown, answered int
		if err := rows.Scan(&key, &shown, &answered); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan question activity: %w", err)
		}
		d := day(key)
		d.QuestionsShown = shown
		d.QuestionsAnswered = answered
	}
	if err := rows.Err(); err != nil {
		rows.Close()
		return nil, fmt.Errorf("iterate question activity: %w", err)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}

	countTables := []struct {
		table string
		apply func(d *DayActivity, n int)
	}{
		{"lesson_completion_events", func(d *DayActivity, n int) { d.LessonsCompleted = n }},
		{"assignment_completion_events", func(d *DayActivity, n int) { d.MasteryChecks = n }},
		{"point_events", func(d *DayActivity, n int) { d.PointAwards = n }},
		{"attendance_events", func(d *DayActivity, n int) { d.Attendance = n }},
	}

	for _, ct := range countTables {
		q := fmt.Sprintf(`SELECT %s AS day, COUNT(*) FROM %s WHERE group_id = %s GROUP BY 1`,
			r.dayExpr(), ct.table, r.placeholder(1))
		rows, err := r.db.QueryContext(ctx, q, groupID)
		if err != nil {
			return nil, fmt.Errorf("query %s: %w", ct.table, err)
		}
		for rows.Next() {
			var key string
			var n int
			if err := rows.Scan(&key, &n); err != nil {
				rows.Close()
				return nil, fmt.Errorf("scan %s: %w", ct.table, err)
			}
			ct.apply(day(key), n)
		}
		if err := rows.Err(); err != nil {
			rows.Close()
			return nil, fmt.Errorf("iterate %s: %w", ct.table, err)
		}
		if err := rows.Close(); err != nil {
			return nil, err
		}
	}

	days := make([]DayActivity, 0, len(byDay))
	for _, d := range byDay {
		days = append(days, *d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Day < days[j].Day })
	return days, nil
}

func (r *eventRepo) EventCounts(ctx context.Context, groupID string) (EventCounts, error) {
	var counts EventCounts
	var err error

	if counts.QuestionEvents, err = r.client.QuestionEvent.Query().
		Where(questionevent.GroupID(groupID)).Count(ctx); err != nil {
		return counts, fmt.Errorf("count question events: %w", err)
	}
	if counts.LessonCompletions, err = r.client.LessonCompletionEvent.Query().
		Where(lessoncompletionevent.GroupID(groupID)).Count(ctx); err != nil {
		return counts, fmt.Errorf("count lesson completions: %w", err)
	}
	if counts.AssignmentCompletions, err = r.client.AssignmentCompletionEvent.Query().
		Where(assignmentcompletionevent.GroupID(groupID)).Count(ctx); err != nil {
		return counts, fmt.Errorf("count assignment completions: %w", err)
	}
	if counts.PointEvents, err = r.client.PointEvent.Query().
		Where(pointevent.GroupID(groupID)).Count(ctx); err != nil {
		return counts, fmt.Errorf("count point events: %w", err)
	}
	if counts.AttendanceEvents, err = r.client.AttendanceEvent.Query().
		Where(attendanceevent.GroupID(groupID)).Count(ctx); err != nil {
		return counts, fmt.Errorf("count attendance events: %w", err)
	}
	if counts.AssessmentResponses, err = r.client.AssessmentResponseEvent.Query().
		Where(assessmentresponseevent.GroupID(groupID)).Count(ctx); err != nil {
		return counts, fmt.Errorf("count assessment responses: %w", err)
	}
	if counts.FeedbackEvents, err = r.client.FeedbackEvent.Query().
		Where(feedbackevent.GroupID(groupID)).Count(ctx); err != nil {
		return counts, fmt.Errorf("count feedback events: %w", err)
	}

	return counts, nil
}

// DeleteGroupEvents removes every event row seeded for the group and
// returns the number of rows deleted.
func (r *eventRepo) DeleteGroupEvents(ctx context.Context, groupID string) (int, error) {
	total := 0

	n, err := r.client.QuestionEvent.Delete().
		Where(questionevent.GroupID(groupID)).Exec(ctx)
	if err != nil {
		return total, fmt.Errorf("delete question events: %w", err)
	}
	total += n

	if n, err = r.client.LessonCompletionEvent.Delete().
		Where(lessoncompletionevent.GroupID(groupID)).Exec(ctx); err != nil {
		return total, fmt.Errorf("delete lesson completions: %w", err)
	}
	total += n

	if n, err = r.client.AssignmentCompletionEvent.Delete().
		Where(assignmentcompletionevent.GroupID(groupID)).Exec(ctx); err != nil {
		return total, fmt.Errorf("delete assignment completions: %w", err)
	}
	total += n

	if n, err = r.client.PointEvent.Delete().
		Where(pointevent.GroupID(groupID)).Exec(ctx); err != nil {
		return total, fmt.Errorf("delete point events: %w", err)
	}
	total += n

	if n, err = r.client.AttendanceEvent.Delete().
		Where(attendanceevent.GroupID(groupID)).Exec(ctx); err != nil {
		return total, fmt.Errorf("delete attendance events: %w", err)
	}
	total += n

	if n, err = r.client.AssessmentResponseEvent.Delete().
		Where(assessmentresponseevent.GroupID(groupID)).Exec(ctx); err != nil {
		return total, fmt.Errorf("delete assessment responses: %w", err)
	}
	total += n

	if n, err = r.client.FeedbackEvent.Delete().
		Where(feedbackevent.GroupID(groupID)).Exec(ctx); err != nil {
		return total, fmt.Errorf("delete feedback events: %w", err)
	}
	total += n

	return total, nil
}
