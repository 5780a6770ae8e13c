// Package archetype assigns deterministic learner behavior to synthetic
// students. Every function here is pure. Decisions derive from stable
// integer indices, never from randomness, so reseeding with the same
// roster produces the same dataset, and demo dashboards stay reproducible.
package archetype

// completionRates are the five pacing tiers, assigned round-robin by
// student index.
var completionRates = [...]float64{1.0, 0.8, 0.6, 0.4, 0.2}

// CompletionRate returns the fraction of each module's lessons the
// student completes.
func CompletionRate(studentIdx int) float64 {
	return completionRates[studentIdx%len(completionRates)]
}

// ShouldSplitLesson reports whether the lesson's question activity is
// spread across two consecutive scheduled days. Roughly 30% of lessons
// split; single-question lessons never do.
func ShouldSplitLesson(studentIdx, lessonIdx, moduleIdx, questionCount int) bool {
	return (studentIdx+lessonIdx+moduleIdx)%10 < 3 && questionCount >= 2
}

// ShouldDelayMasteryCheck reports whether the mastery-check completion is
// pushed to the next working day after the lesson. Roughly 40% delay.
func ShouldDelayMasteryCheck(studentIdx, lessonIdx, moduleIdx int) bool {
	return (studentIdx+lessonIdx+moduleIdx)%5 < 2
}

// MasteryScore returns the mastery-check score for a (student, lesson)
// pair. Stronger archetypes score higher; everything stays in 0.8..1.0 so
// sandbox dashboards look like a healthy class.
func MasteryScore(studentIdx, lessonIdx int) float64 {
	return 1.0 - 0.05*float64((studentIdx+lessonIdx)%5)
}

// Attendance statuses produced by AttendanceStatus.
const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusLate    = "late"
)

// AttendanceStatus returns the attendance mark for a student on a working
// day. About one day in ten is absent and one in ten late.
func AttendanceStatus(studentIdx, dayOffset int) string {
	switch (studentIdx + dayOffset) % 10 {
	case 0:
		return StatusAbsent
	case 1:
		return StatusLate
	default:
		return StatusPresent
	}
}

// LessonPoints returns the point award for completing a lesson. A small
// deterministic spread keeps the leaderboard from looking flat.
func LessonPoints(studentIdx, lessonIdx int) int {
	return 10 + (studentIdx+lessonIdx)%3*5
}
