package workload

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sim "github.com/sched-sim/sched-sim/sim"
)

const sampleInput = `1,0,22,5,1,2
3,12,12,5,1,2
5,17,14,5,1,2
2,9,11,5,1,2
4,13,11,5,1,2
`

func TestParse_SampleInput(t *testing.T) {
	procs, err := Parse(strings.NewReader(sampleInput))
	require.NoError(t, err)
	require.Len(t, procs, 5)

	first := procs[0]
	assert.Equal(t, int64(1), first.PID)
	assert.Equal(t, int64(0), first.Arrival)
	assert.Equal(t, int64(22), first.TotalBurst)
	assert.Equal(t, int64(22), first.Remaining)
	assert.Equal(t, int64(5), first.IOFreq)
	assert.Equal(t, int64(1), first.IODur)
	assert.Equal(t, int64(2), first.Quantum)
}

func TestParse_AppliesNormalizationRules(t *testing.T) {
	procs, err := Parse(strings.NewReader("1,-5,-3,0,-2,0\n"))
	require.NoError(t, err)
	require.Len(t, procs, 1)

	p := procs[0]
	assert.Equal(t, int64(0), p.Arrival)
	assert.Equal(t, int64(0), p.TotalBurst)
	assert.Equal(t, sim.Never, p.IOFreq)
	assert.Equal(t, sim.Never, p.IODur)
	assert.Equal(t, sim.Never, p.Quantum)
}

func TestParse_MalformedLine_ReturnsPartialSet(t *testing.T) {
	// A malformed line stops parsing but keeps what came before it
	input := "1,0,5,0,0,0\nnot-a-process\n2,1,5,0,0,0\n"
	procs, err := Parse(strings.NewReader(input))

	require.ErrorIs(t, err, ErrTruncatedInput)
	require.Len(t, procs, 1)
	assert.Equal(t, int64(1), procs[0].PID)
}

func TestParse_WrongFieldCount_ReturnsPartialSet(t *testing.T) {
	input := "1,0,5,0,0,0\n2,1,5,0,0\n"
	procs, err := Parse(strings.NewReader(input))

	require.ErrorIs(t, err, ErrTruncatedInput)
	assert.Len(t, procs, 1)
}

func TestParse_SkipsBlankLines(t *testing.T) {
	input := "1,0,5,0,0,0\n\n  \n2,1,5,0,0,0\n"
	procs, err := Parse(strings.NewReader(input))

	require.NoError(t, err)
	assert.Len(t, procs, 2)
}

func TestParse_EmptyInput(t *testing.T) {
	procs, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, procs)
}

func TestParse_ToleratesSpacesAroundFields(t *testing.T) {
	procs, err := Parse(strings.NewReader(" 1, 0, 22, 5, 1, 2 \n"))
	require.NoError(t, err)
	require.Len(t, procs, 1)
	assert.Equal(t, int64(22), procs[0].TotalBurst)
}

func TestParseFile_MissingFile_ReturnsError(t *testing.T) {
	_, err := ParseFile("does-not-exist.txt")
	assert.Error(t, err)
}
