// Package assessment plans synthetic assessment responses. Each student
// answers the group assessment once, on a working day inside the
// lookback window, with a score derived from the same deterministic
// profile functions that drive lesson pacing.
package assessment

import (
	"github.com/abhisek/paceseed/internal/archetype"
)

// Intra-day layout for assessment sittings. Afternoon, clear of the
// morning lesson activity.
const (
	sittingHour   = 13
	sittingStride = 2
)

// Response is one student's planned assessment sitting.
type Response struct {
	// EnrollmentIdx is the student's roster position.
	EnrollmentIdx int

	// DayOffset is the working day (days before now) of the sitting.
	DayOffset int

	// Minute is minutes past midnight on that day.
	Minute int

	Score             float64
	QuestionsAnswered int
}

// Plan spreads one response per student across the window's working
// days, oldest day first. An empty window means no usable history and
// yields no responses.
func Plan(ordinal, students, questions int, window []int) []Response {
	if len(window) == 0 || students <= 0 {
		return nil
	}

	// Window offsets are newest-first; walk from the oldest end so
	// early-roster students sit the assessment first.
	out := make([]Response, 0, students)
	for i := 0; i < students; i++ {
		slot := len(window) - 1 - (i*len(window))/students
		score := archetype.MasteryScore(i, ordinal)

		answered := int(score*float64(questions) + 0.5)
		if answered < 1 {
			answered = 1
		}

		out = append(out, Response{
			EnrollmentIdx:     i,
			DayOffset:         window[slot],
			Minute:            sittingHour*60 + i*sittingStride,
			Score:             score,
			QuestionsAnswered: answered,
		})
	}
	return out
}
