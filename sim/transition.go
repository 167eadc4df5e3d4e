// The event selector: computes, for the current pool configuration, the
// earliest feasible next transition and its time.

package sim

import "fmt"

// Kind identifies one of the six legal state transitions.
type Kind int

const (
	NewToReady Kind = iota
	WaitingToReady
	RunningToTerminated
	RunningToWaiting
	RunningToReady
	ReadyToRunning
)

var kindNames = map[Kind]string{
	NewToReady:          "NEW->READY",
	WaitingToReady:      "WAITING->READY",
	RunningToTerminated: "RUNNING->TERMINATED",
	RunningToWaiting:    "RUNNING->WAITING",
	RunningToReady:      "RUNNING->READY",
	ReadyToRunning:      "READY->RUNNING",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// transitionKinds fixes the tie-break priority between candidates at
// equal times. Every transition that delivers a process into Ready
// resolves before the dispatch out of Ready at the same instant, so the
// dispatch always sees the fully settled Ready pool and a process that
// finishes I/O exactly at a dispatch point is not starved. Among
// Running-sourced ties, completion beats I/O start beats preemption: a
// process whose burst ends exactly on its I/O period or quantum boundary
// terminates instead of bouncing through Waiting or Ready with nothing
// left to run.
var transitionKinds = [...]Kind{
	NewToReady,
	WaitingToReady,
	RunningToTerminated,
	RunningToWaiting,
	RunningToReady,
	ReadyToRunning,
}

// Candidate pairs a transition kind with the earliest time it could
// legally occur given the current pool state. Time is Never when the
// kind's precondition does not hold.
type Candidate struct {
	Kind Kind
	Time int64
}

// satAdd adds two times, clamping to Never when either operand is
// already Never or the sum overflows to a negative value. A corrupted
// time must not win the minimum selection.
func satAdd(a, b int64) int64 {
	if a == Never || b == Never {
		return Never
	}
	if sum := a + b; sum >= 0 {
		return sum
	}
	return Never
}

// candidateTime evaluates one kind's candidate formula against the
// current pool configuration.
func (s *Simulator) candidateTime(k Kind) int64 {
	switch k {
	case NewToReady:
		if s.New.IsEmpty() {
			return Never
		}
		return s.New.PeekHead().Arrival
	case WaitingToReady:
		if s.Waiting.IsEmpty() {
			return Never
		}
		head := s.Waiting.PeekHead()
		return satAdd(head.LastIOStart, head.IODur)
	case RunningToTerminated:
		if s.Running.IsEmpty() {
			return Never
		}
		head := s.Running.PeekHead()
		return satAdd(head.LastDispatch, head.Remaining)
	case RunningToWaiting:
		if s.Running.IsEmpty() {
			return Never
		}
		head := s.Running.PeekHead()
		return satAdd(head.LastDispatch, head.IOFreq)
	case RunningToReady:
		if s.Running.IsEmpty() {
			return Never
		}
		head := s.Running.PeekHead()
		return satAdd(head.LastDispatch, head.Quantum)
	case ReadyToRunning:
		// Only one process runs at a time.
		if s.Ready.IsEmpty() || !s.Running.IsEmpty() {
			return Never
		}
		return max(s.Clock, s.Ready.PeekHead().Arrival)
	default:
		panic(fmt.Sprintf("candidateTime: unhandled kind %d", int(k)))
	}
}

// candidates evaluates all six candidate times, listed in tie-break
// priority order.
func (s *Simulator) candidates() []Candidate {
	out := make([]Candidate, 0, len(transitionKinds))
	for _, k := range transitionKinds {
		out = append(out, Candidate{Kind: k, Time: s.candidateTime(k)})
	}
	return out
}

// nextTransition returns the earliest feasible candidate. Equal times
// resolve to the first kind in transitionKinds order, which the strict
// comparison below preserves. ok is false when every candidate is Never:
// the terminal condition of a run.
func (s *Simulator) nextTransition() (Candidate, bool) {
	best := Candidate{Time: Never}
	for _, c := range s.candidates() {
		if c.Time < best.Time {
			best = c
		}
	}
	if best.Time == Never {
		return Candidate{}, false
	}
	return best, true
}
