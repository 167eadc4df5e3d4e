// Tracks per-run statistics such as turnaround, waiting time and
// transition counts.

package sim

import "fmt"

// Metrics aggregates statistics about one simulation run for final
// reporting. Useful for comparing policies on the same process set.
type Metrics struct {
	Completed   int   // Number of processes that reached Terminated
	Dispatches  int   // Number of Ready -> Running transitions
	Preemptions int   // Number of quantum expirations (Running -> Ready)
	IOWaits     int   // Number of induced I/O waits (Running -> Waiting)
	EndTime     int64 // Clock value when the run stopped

	TotalTurnaround int64 // Sum of (completion - arrival) across processes
	TotalWaiting    int64 // Sum of time spent in Ready across processes

	TurnaroundByPID map[int64]int64 // map of pid -> turnaround time

	ioWaitsByPID map[int64]int64 // per-process I/O wait count, for waiting-time accounting
}

// NewMetrics creates an empty Metrics ready for recording.
func NewMetrics() *Metrics {
	return &Metrics{
		TurnaroundByPID: make(map[int64]int64),
		ioWaitsByPID:    make(map[int64]int64),
	}
}

func (m *Metrics) recordIOWait(p *Process) {
	m.IOWaits++
	m.ioWaitsByPID[p.PID]++
}

// recordTermination accounts for a process reaching Terminated at the
// given time. Waiting time is turnaround minus CPU time minus the time
// spent in I/O waits.
func (m *Metrics) recordTermination(now int64, p *Process) {
	m.Completed++
	turnaround := now - p.Arrival
	m.TotalTurnaround += turnaround
	m.TurnaroundByPID[p.PID] = turnaround

	ioTime := int64(0)
	if p.IODur != Never {
		ioTime = m.ioWaitsByPID[p.PID] * p.IODur
	}
	m.TotalWaiting += turnaround - p.TotalBurst - ioTime
}

// Print displays aggregated metrics at the end of a run.
func (m *Metrics) Print(policy Policy) {
	fmt.Printf("=== %s Simulation Metrics ===\n", policy)
	fmt.Printf("Completed Processes  : %d\n", m.Completed)
	fmt.Printf("Dispatches           : %d\n", m.Dispatches)
	fmt.Printf("Preemptions          : %d\n", m.Preemptions)
	fmt.Printf("I/O Waits            : %d\n", m.IOWaits)
	fmt.Printf("End Time             : %d\n", m.EndTime)
	if m.Completed > 0 {
		avgTurnaround := float64(m.TotalTurnaround) / float64(m.Completed)
		avgWaiting := float64(m.TotalWaiting) / float64(m.Completed)
		fmt.Printf("Average Turnaround   : %.2f\n", avgTurnaround)
		fmt.Printf("Average Waiting      : %.2f\n", avgWaiting)
	}
}
