// Defines the Process struct that models one simulated process.
// Tracks arrival, CPU demand, I/O cadence and the dispatch timestamps the
// event selector needs to compute candidate transition times.

package sim

import (
	"fmt"
	"math"
)

// Never is the sentinel time meaning "this event does not occur".
// Non-positive I/O frequency, I/O duration and quantum inputs normalize
// to Never, and overflowed candidate times clamp to it, so a Never
// candidate can never win the minimum selection.
const Never int64 = math.MaxInt64

// State represents the lifecycle state of a process. The names double as
// the state columns of the trace output.
type State string

const (
	StateNew        State = "NEW"
	StateReady      State = "READY"
	StateRunning    State = "RUNNING"
	StateWaiting    State = "WAITING"
	StateTerminated State = "TERMINATED"
)

// Process models a single process's lifecycle in the simulation.
// All times are abstract integer units.
type Process struct {
	PID        int64 // Unique identifier, stable for the record's lifetime
	Arrival    int64 // Time the process becomes eligible to enter Ready
	TotalBurst int64 // Total CPU time required
	Remaining  int64 // CPU time left; exactly 0 when and only when Terminated
	IOFreq     int64 // CPU time between induced I/O waits (Never = no I/O)
	IODur      int64 // Duration of one I/O wait (Never = no I/O)
	Quantum    int64 // Round-robin slice after which the process is preempted (Never = never)

	LastDispatch int64 // Time of the most recent Ready -> Running
	LastIOStart  int64 // Time of the most recent Running -> Waiting
}

// NewProcess builds a process record, applying the input normalization
// rules: negative arrival and burst clamp to 0; non-positive I/O
// frequency, I/O duration and quantum become Never. Remaining starts at
// the full burst.
func NewProcess(pid, arrival, totalBurst, ioFreq, ioDur, quantum int64) *Process {
	if arrival < 0 {
		arrival = 0
	}
	if totalBurst < 0 {
		totalBurst = 0
	}
	if ioFreq <= 0 {
		ioFreq = Never
	}
	if ioDur <= 0 {
		ioDur = Never
	}
	if quantum <= 0 {
		quantum = Never
	}
	return &Process{
		PID:        pid,
		Arrival:    arrival,
		TotalBurst: totalBurst,
		Remaining:  totalBurst,
		IOFreq:     ioFreq,
		IODur:      ioDur,
		Quantum:    quantum,
	}
}

// This method returns a human-readable string representation of a Process.
func (p Process) String() string {
	return fmt.Sprintf("Process: (PID: %d, Arrival: %d, TotalBurst: %d, Remaining: %d)",
		p.PID, p.Arrival, p.TotalBurst, p.Remaining)
}
