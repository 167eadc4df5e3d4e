// Parses the comma-separated process description files consumed by the
// scheduling runs. One process per line, six integers:
//
//	pid,arrival,total_burst,io_freq,io_dur,quantum
//
// Normalization (negative clamps, "never" sentinels) happens in
// sim.NewProcess so parsed and generated process sets share one rule set.

package workload

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/sirupsen/logrus"

	sim "github.com/sched-sim/sched-sim/sim"
)

// fieldsPerLine is the number of comma-separated integers per process.
const fieldsPerLine = 6

// ErrTruncatedInput reports that parsing stopped at a malformed line.
// The processes parsed before that line are still returned; the
// condition is recoverable and the caller decides whether to proceed.
var ErrTruncatedInput = errors.New("workload: input ended at malformed line")

// Parse reads process descriptions until EOF or the first malformed
// line. Blank lines are skipped.
func Parse(r io.Reader) ([]*sim.Process, error) {
	procs := make([]*sim.Process, 0)
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		fields := strings.Split(line, ",")
		if len(fields) != fieldsPerLine {
			logrus.Warnf("workload: line %d has %d fields, want %d; stopping", lineNo, len(fields), fieldsPerLine)
			return procs, fmt.Errorf("line %d: %w", lineNo, ErrTruncatedInput)
		}
		vals := make([]int64, fieldsPerLine)
		for i, f := range fields {
			v, err := strconv.ParseInt(strings.TrimSpace(f), 10, 64)
			if err != nil {
				logrus.Warnf("workload: line %d field %d is not an integer; stopping", lineNo, i+1)
				return procs, fmt.Errorf("line %d: %w", lineNo, ErrTruncatedInput)
			}
			vals[i] = v
		}
		procs = append(procs, sim.NewProcess(vals[0], vals[1], vals[2], vals[3], vals[4], vals[5]))
	}
	if err := scanner.Err(); err != nil {
		return procs, err
	}
	return procs, nil
}

// ParseFile opens and parses one input file. A missing file is fatal to
// the run; the open error is returned as-is for the caller to report.
func ParseFile(path string) ([]*sim.Process, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}
