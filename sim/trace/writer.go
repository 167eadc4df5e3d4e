package trace

import (
	"bufio"
	"fmt"
	"io"
	"os"
)

// Header is the column line preceding every run's transition listing.
const Header = "time\tpid\told state\tnew state"

// Write emits the run title, the column header and one tab-separated
// line per transition.
func Write(w io.Writer, title string, t *Trace) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%s\n", title)
	fmt.Fprintf(bw, "%s\n", Header)
	for _, r := range t.Records {
		fmt.Fprintf(bw, "%d\t%d\t%s\t%s\n", r.Time, r.PID, r.From, r.To)
	}
	return bw.Flush()
}

// WriteFile writes the trace to the named file, truncating any previous
// contents.
func WriteFile(path, title string, t *Trace) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return Write(f, title, t)
}
