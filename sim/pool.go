// Implements Pool, the ordered container behind each of the five
// scheduling states. Processes move between pools head-to-tail; a live
// process belongs to exactly one pool at any instant.

package sim

import (
	"fmt"
	"sort"
	"strings"
)

// Pool is an ordered, mutable collection of process records. Callers
// must check Len or IsEmpty before peeking or popping; the selector is
// responsible for never driving the executor against an empty source
// pool, so an empty peek or pop here is a precondition violation and
// panics.
type Pool struct {
	name  State
	procs []*Process
}

// NewPool creates an empty pool labeled with the state it represents.
func NewPool(name State) *Pool {
	return &Pool{name: name}
}

// Name returns the state this pool represents.
func (pl *Pool) Name() State {
	return pl.name
}

// Len returns the number of processes in the pool.
func (pl *Pool) Len() int {
	return len(pl.procs)
}

// IsEmpty reports whether the pool holds no processes.
func (pl *Pool) IsEmpty() bool {
	return len(pl.procs) == 0
}

// PeekHead returns the front process without removing it.
// Panics if the pool is empty.
func (pl *Pool) PeekHead() *Process {
	if len(pl.procs) == 0 {
		panic(fmt.Sprintf("PeekHead: %s pool is empty", pl.name))
	}
	return pl.procs[0]
}

// PeekTail returns the back process without removing it.
// Panics if the pool is empty.
func (pl *Pool) PeekTail() *Process {
	if len(pl.procs) == 0 {
		panic(fmt.Sprintf("PeekTail: %s pool is empty", pl.name))
	}
	return pl.procs[len(pl.procs)-1]
}

// Append adds a process to the back of the pool.
func (pl *Pool) Append(p *Process) {
	if p == nil {
		panic(fmt.Sprintf("Append: nil process appended to %s pool", pl.name))
	}
	pl.procs = append(pl.procs, p)
}

// PopHead removes and returns the front process.
// Panics if the pool is empty.
func (pl *Pool) PopHead() *Process {
	if len(pl.procs) == 0 {
		panic(fmt.Sprintf("PopHead: %s pool is empty", pl.name))
	}
	p := pl.procs[0]
	pl.procs = pl.procs[1:]
	return p
}

// Items returns the pool contents for iteration.
// The returned slice is the pool's internal storage -- callers within the
// sim package may iterate over it but MUST NOT append to or reslice it.
// For reordering, use Reorder() instead.
func (pl *Pool) Items() []*Process {
	return pl.procs
}

// Reorder stably sorts the pool with the supplied ordering: processes
// comparing equal keep their existing relative order, so comparators
// never need a secondary key.
func (pl *Pool) Reorder(less func(a, b *Process) bool) {
	if less == nil {
		panic("Reorder: less must not be nil")
	}
	sort.SliceStable(pl.procs, func(i, j int) bool {
		return less(pl.procs[i], pl.procs[j])
	})
}

func (pl *Pool) String() string {
	var sb strings.Builder
	sb.WriteString(string(pl.name))
	sb.WriteString("[")
	for i, p := range pl.procs {
		sb.WriteString(fmt.Sprint(p.PID))
		if i < len(pl.procs)-1 {
			sb.WriteString(" ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}
