package seeder

// Progress is one status update from a running phase.
type Progress struct {
	// Phase is one of "clean", "roster", "pacing", "points",
	// "attendance", "assessment", "feedback", "pace-push", "done".
	Phase   string
	Message string
}

// ProgressFunc receives status updates during a run. May be nil.
type ProgressFunc func(Progress)
