// Package trace provides transition-trace recording for scheduling runs.
// This package has no dependencies on sim/ — it stores pure data types.
package trace

// Record captures a single state transition in a run's timeline.
type Record struct {
	Time int64
	PID  int64
	From string
	To   string
}
