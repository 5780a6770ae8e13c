// Package calendar answers working-day questions for the pacing
// simulation. Day offsets are measured in days before the run's current
// date; a larger offset is further in the past.
package calendar

import "time"

// WorkingDays returns the day offsets of every working day in the
// lookback window, descending from lookbackDays down to 1. Offsets whose
// calendar date falls on a Saturday or Sunday are excluded. The result is
// fully determined by now and lookbackDays.
func WorkingDays(now time.Time, lookbackDays int) []int {
	var offsets []int
	for offset := lookbackDays; offset >= 1; offset-- {
		day := now.AddDate(0, 0, -offset)
		if wd := day.Weekday(); wd == time.Saturday || wd == time.Sunday {
			continue
		}
		offsets = append(offsets, offset)
	}
	return offsets
}

// NextWorkingDay returns the candidate immediately following current in
// candidates, one step closer to the present. When current is absent from
// candidates or is the last element, it falls back to max(1, current-1):
// an exhausted window still needs some later day. On very short windows
// the fallback can land before the day that produced it; callers rely on
// that exact behavior.
func NextWorkingDay(current int, candidates []int) int {
	for i, c := range candidates {
		if c != current {
			continue
		}
		if i+1 < len(candidates) {
			return candidates[i+1]
		}
		break
	}
	if current <= 2 {
		return 1
	}
	return current - 1
}

// Midnight returns the UTC midnight of the calendar day offset days
// before now.
func Midnight(now time.Time, offset int) time.Time {
	day := now.AddDate(0, 0, -offset).UTC()
	return time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC)
}
