package trace

// Trace collects transition records during one simulation run, in the
// order the transitions were applied.
type Trace struct {
	Records []Record
}

// New creates a Trace ready for recording.
func New() *Trace {
	return &Trace{Records: make([]Record, 0)}
}

// Add appends one transition record.
func (t *Trace) Add(r Record) {
	t.Records = append(t.Records, r)
}

// Len returns the number of recorded transitions.
func (t *Trace) Len() int {
	return len(t.Records)
}
