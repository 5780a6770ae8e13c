package pacing

import "math"

// ModuleWindow is the slice of working days allotted to one module.
// Days are day-offsets in descending order (oldest first); offsets are
// never shared across modules.
type ModuleWindow struct {
	ModuleIdx int
	Days      []int
}

// AllocateWindows partitions the working days among sequential modules in
// proportion to each module's lesson count. Modules are processed in
// order; each takes ceil(count/total * len(days)) days off the front of
// the pool, and rounding slack left after the last module is appended to
// the last non-empty module's window rather than discarded. A module with
// zero lessons receives an empty window and is skipped by downstream
// consumers. Zero total lessons yields all-empty windows; the division is
// never attempted.
func AllocateWindows(lessonCounts []int, workingDays []int) []ModuleWindow {
	windows := make([]ModuleWindow, len(lessonCounts))
	for i := range windows {
		windows[i].ModuleIdx = i
	}

	total := 0
	for _, c := range lessonCounts {
		total += c
	}
	if total == 0 || len(workingDays) == 0 {
		return windows
	}

	remaining := workingDays
	last := -1
	for i, c := range lessonCounts {
		if c == 0 {
			continue
		}
		n := int(math.Ceil(float64(c) / float64(total) * float64(len(workingDays))))
		if n > len(remaining) {
			n = len(remaining)
		}
		windows[i].Days = append([]int(nil), remaining[:n]...)
		remaining = remaining[n:]
		last = i
	}

	if len(remaining) > 0 && last >= 0 {
		windows[last].Days = append(windows[last].Days, remaining...)
	}

	return windows
}
