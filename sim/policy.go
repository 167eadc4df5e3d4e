package sim

import (
	"fmt"
	"strings"
)

// Policy selects the total order used to arrange the Ready pool. It is
// an enum-tagged strategy fixed once per run and passed explicitly to
// every reorder call; there is no shared mutable comparator state.
type Policy int

const (
	// FCFS dispatches in arrival order and never revises it.
	FCFS Policy = iota
	// SJF orders Ready by total required CPU time, fixed at arrival.
	SJF
	// SRTF orders Ready by remaining CPU time, the preemptive variant of SJF.
	SRTF
)

var policyNames = map[Policy]string{
	FCFS: "fcfs",
	SJF:  "sjf",
	SRTF: "srtf",
}

func (p Policy) String() string {
	if name, ok := policyNames[p]; ok {
		return strings.ToUpper(name)
	}
	return fmt.Sprintf("Policy(%d)", int(p))
}

// ParsePolicy maps a configuration name to a Policy.
// Valid names: "fcfs", "sjf", "srtf" (case-insensitive).
func ParsePolicy(name string) (Policy, error) {
	switch strings.ToLower(name) {
	case "fcfs":
		return FCFS, nil
	case "sjf":
		return SJF, nil
	case "srtf":
		return SRTF, nil
	default:
		return FCFS, fmt.Errorf("unknown policy %q", name)
	}
}

// Less reports whether a orders before b under the policy. It is a pure
// function of the two records; equal keys rely on the pool's stable
// reorder to keep their insertion order.
func (p Policy) Less(a, b *Process) bool {
	switch p {
	case FCFS:
		return a.Arrival < b.Arrival
	case SJF:
		return a.TotalBurst < b.TotalBurst
	case SRTF:
		return a.Remaining < b.Remaining
	default:
		panic(fmt.Sprintf("Less: unhandled policy %d", int(p)))
	}
}

// ReordersReady reports whether entries into Ready trigger a re-sort.
// FCFS keeps arrival order, which is already the seed order of the run.
func (p Policy) ReordersReady() bool {
	return p != FCFS
}

// Title returns the banner line written ahead of each run's trace.
func (p Policy) Title() string {
	switch p {
	case FCFS:
		return "--- FIRST COME FIRST SERVE SCHEDULING SIMULATION ---"
	case SJF:
		return "--- SHORTEST JOB FIRST SCHEDULING SIMULATION ---"
	case SRTF:
		return "--- SHORTEST REMAINING TIME FIRST SCHEDULING SIMULATION ---"
	default:
		panic(fmt.Sprintf("Title: unhandled policy %d", int(p)))
	}
}
