// sim/simulator.go
package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/sched-sim/sched-sim/sim/trace"
)

// Simulator holds the clock, the five state pools and the active policy
// for one run. The run loop repeatedly asks the selector for the next
// feasible transition and applies it until none remains. Single logical
// timeline, advanced in discrete steps; no concurrency.
type Simulator struct {
	Clock  int64
	Policy Policy

	New        *Pool
	Ready      *Pool
	Running    *Pool
	Waiting    *Pool
	Terminated *Pool

	Trace   *trace.Trace
	Metrics *Metrics
}

// NewSimulator seeds the New pool with the given process set, stably
// sorted by arrival, and leaves the other pools empty. The seed sort
// uses the FCFS order regardless of the run policy: arrival order is
// what makes the NewToReady candidate formula read the earliest arrival
// off the pool head.
func NewSimulator(policy Policy, procs []*Process) *Simulator {
	s := &Simulator{
		Policy:     policy,
		New:        NewPool(StateNew),
		Ready:      NewPool(StateReady),
		Running:    NewPool(StateRunning),
		Waiting:    NewPool(StateWaiting),
		Terminated: NewPool(StateTerminated),
		Trace:      trace.New(),
		Metrics:    NewMetrics(),
	}
	for _, p := range procs {
		s.New.Append(p)
	}
	s.New.Reorder(FCFS.Less)
	return s
}

// Run drives the selector/executor loop to completion. The clock is
// monotone non-decreasing because each applied transition is the global
// minimum candidate. Termination is guaranteed: every Running-sourced
// transition strictly decreases the head's remaining time, so every
// process eventually reaches Terminated.
func (s *Simulator) Run() {
	for {
		c, ok := s.nextTransition()
		if !ok {
			break
		}
		s.Clock = c.Time
		s.apply(c)
	}
	s.Metrics.EndTime = s.Clock
	logrus.Infof("[t %07d] %s simulation ended", s.Clock, s.Policy)
}

// ProcessCount returns the total membership across all five pools. The
// pools partition the process set, so this stays equal to the input
// count after every transition.
func (s *Simulator) ProcessCount() int {
	return s.New.Len() + s.Ready.Len() + s.Running.Len() + s.Waiting.Len() + s.Terminated.Len()
}

// Reset empties every pool, drops the collected trace and metrics, and
// rewinds the clock. No record survives into the next run.
func (s *Simulator) Reset() {
	s.Clock = 0
	s.New = NewPool(StateNew)
	s.Ready = NewPool(StateReady)
	s.Running = NewPool(StateRunning)
	s.Waiting = NewPool(StateWaiting)
	s.Terminated = NewPool(StateTerminated)
	s.Trace = trace.New()
	s.Metrics = NewMetrics()
}
