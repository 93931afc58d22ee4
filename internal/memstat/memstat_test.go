package memstat

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
)

var sink []*int

func TestTake_CountsMallocs(t *testing.T) {
	before := Take()
	for i := range 1000 {
		v := i
		sink = append(sink, &v)
	}
	delta := Take().Sub(before)
	sink = nil

	assert.GreaterOrEqual(t, delta.Mallocs, uint64(1000))
	assert.Positive(t, delta.TotalHeap)
}

func TestTake_MaxRSS(t *testing.T) {
	s := Take()
	switch runtime.GOOS {
	case "linux", "darwin", "freebsd":
		assert.Positive(t, s.MaxRSS)
	default:
		assert.Zero(t, s.MaxRSS)
	}
}

func TestSnapshot_PerOp(t *testing.T) {
	s := Snapshot{Mallocs: 30}
	assert.InDelta(t, 3.0, s.PerOp(10), 1e-9)
	assert.Zero(t, s.PerOp(0))
}
