package pacing

import "sort"

// DayStats aggregates the events seeded for one day offset.
type DayStats struct {
	QuestionsShown    int
	QuestionsAnswered int
	LessonsCompleted  int
	MasteryChecks     int
}

// RunStats summarizes one engine run. A fresh value is built per run and
// returned by the engine; there is no cross-run or package-level state.
type RunStats struct {
	PerDay map[int]*DayStats

	Students          int
	QuestionsShown    int
	QuestionsAnswered int
	LessonsCompleted  int
	MasteryChecks     int
	SplitLessons      int
	DelayedChecks     int
}

// NewRunStats returns an empty stats accumulator.
func NewRunStats() *RunStats {
	return &RunStats{PerDay: make(map[int]*DayStats)}
}

func (s *RunStats) day(offset int) *DayStats {
	d := s.PerDay[offset]
	if d == nil {
		d = &DayStats{}
		s.PerDay[offset] = d
	}
	return d
}

func (s *RunStats) addShown(offset int) {
	s.QuestionsShown++
	s.day(offset).QuestionsShown++
}

func (s *RunStats) addAnswered(offset int) {
	s.QuestionsAnswered++
	s.day(offset).QuestionsAnswered++
}

func (s *RunStats) addCompleted(offset int) {
	s.LessonsCompleted++
	s.day(offset).LessonsCompleted++
}

func (s *RunStats) addMastery(offset int) {
	s.MasteryChecks++
	s.day(offset).MasteryChecks++
}

// Days returns the day offsets with activity, oldest first.
func (s *RunStats) Days() []int {
	days := make([]int, 0, len(s.PerDay))
	for d := range s.PerDay {
		days = append(days, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(days)))
	return days
}
