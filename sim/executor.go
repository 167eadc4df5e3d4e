// The transition executor: applies a selected transition's side effects
// and emits one trace record per applied transition.

package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/sim/trace"
)

// apply executes the chosen transition at its candidate time: it moves
// the source pool's head to the destination pool's tail, applies the
// kind's field mutations, re-sorts Ready when the active policy calls
// for it, and records the transition. The step is atomic from the loop's
// perspective; preconditions were already established by the selector.
func (s *Simulator) apply(c Candidate) {
	now := c.Time
	switch c.Kind {
	case NewToReady:
		p := s.move(s.New, s.Ready)
		s.resortReady()
		s.record(now, p, StateNew, StateReady)

	case WaitingToReady:
		p := s.move(s.Waiting, s.Ready)
		s.resortReady()
		s.record(now, p, StateWaiting, StateReady)

	case RunningToTerminated:
		p := s.move(s.Running, s.Terminated)
		// closes any residual rounding
		p.Remaining = 0
		s.Metrics.recordTermination(now, p)
		s.record(now, p, StateRunning, StateTerminated)

	case RunningToWaiting:
		p := s.move(s.Running, s.Waiting)
		p.Remaining -= p.IOFreq
		p.LastIOStart = now
		s.Metrics.recordIOWait(p)
		s.record(now, p, StateRunning, StateWaiting)

	case RunningToReady:
		p := s.move(s.Running, s.Ready)
		p.Remaining -= p.Quantum
		s.Metrics.Preemptions++
		s.resortReady()
		s.record(now, p, StateRunning, StateReady)

	case ReadyToRunning:
		p := s.move(s.Ready, s.Running)
		p.LastDispatch = now
		s.Metrics.Dispatches++
		s.record(now, p, StateReady, StateRunning)

	default:
		panic(fmt.Sprintf("apply: unhandled kind %d", int(c.Kind)))
	}
}

// move transfers ownership of the head of from to the tail of to.
func (s *Simulator) move(from, to *Pool) *Process {
	p := from.PopHead()
	to.Append(p)
	return p
}

// resortReady re-sorts the Ready pool under SJF and SRTF. FCFS keeps
// arrival order, which the seed sort already established.
func (s *Simulator) resortReady() {
	if s.Policy.ReordersReady() {
		s.Ready.Reorder(s.Policy.Less)
	}
}

func (s *Simulator) record(now int64, p *Process, from, to State) {
	logrus.Debugf("[t %07d] pid %d: %s -> %s", now, p.PID, from, to)
	s.Trace.Add(trace.Record{Time: now, PID: p.PID, From: string(from), To: string(to)})
}
