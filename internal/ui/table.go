package ui

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/paceseed/internal/store"
)

// RenderDayTable renders per-day activity as an aligned table.
func RenderDayTable(days []store.DayActivity) string {
	if len(days) == 0 {
		return PhaseStyle.Render("no seeded activity") + "\n"
	}

	headers := []string{"day", "shown", "answered", "lessons", "checks", "points", "attendance"}
	rows := make([][]string, 0, len(days))
	for _, d := range days {
		rows = append(rows, []string{
			d.Day,
			fmt.Sprintf("%d", d.QuestionsShown),
			fmt.Sprintf("%d", d.QuestionsAnswered),
			fmt.Sprintf("%d", d.LessonsCompleted),
			fmt.Sprintf("%d", d.MasteryChecks),
			fmt.Sprintf("%d", d.PointAwards),
			fmt.Sprintf("%d", d.Attendance),
		})
	}
	return renderTable(headers, rows)
}

// RenderCounts renders per-type event totals.
func RenderCounts(c store.EventCounts) string {
	rows := [][]string{
		{"question events", fmt.Sprintf("%d", c.QuestionEvents)},
		{"lesson completions", fmt.Sprintf("%d", c.LessonCompletions)},
		{"mastery checks", fmt.Sprintf("%d", c.AssignmentCompletions)},
		{"point awards", fmt.Sprintf("%d", c.PointEvents)},
		{"attendance marks", fmt.Sprintf("%d", c.AttendanceEvents)},
		{"assessment responses", fmt.Sprintf("%d", c.AssessmentResponses)},
		{"feedback comments", fmt.Sprintf("%d", c.FeedbackEvents)},
		{"total", fmt.Sprintf("%d", c.Total())},
	}
	return renderTable([]string{"event type", "count"}, rows)
}

func renderTable(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if w := lipgloss.Width(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	var b strings.Builder
	for i, h := range headers {
		b.WriteString(HeaderCellStyle.Render(pad(h, widths[i])))
	}
	b.WriteString("\n")
	for _, row := range rows {
		for i, cell := range row {
			b.WriteString(CellStyle.Render(pad(cell, widths[i])))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func pad(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}
