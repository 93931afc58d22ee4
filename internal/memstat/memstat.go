// Package memstat samples process memory counters for benchmarks.
package memstat

import "runtime"

// Snapshot is a point-in-time view of heap allocation counters.
type Snapshot struct {
	Mallocs   uint64 // Cumulative heap objects allocated
	Frees     uint64 // Cumulative heap objects freed
	HeapAlloc uint64 // Bytes of live heap objects
	TotalHeap uint64 // Cumulative bytes allocated
	NumGC     uint32
	MaxRSS    int64 // Peak resident set size in bytes (0 if unsupported)
}

// Take reads the current counters. It calls runtime.ReadMemStats, which stops
// the world briefly; do not call it inside a timed loop.
func Take() Snapshot {
	var ms runtime.MemStats
	runtime.ReadMemStats(&ms)

	return Snapshot{
		Mallocs:   ms.Mallocs,
		Frees:     ms.Frees,
		HeapAlloc: ms.HeapAlloc,
		TotalHeap: ms.TotalAlloc,
		NumGC:     ms.NumGC,
		MaxRSS:    maxRSS(),
	}
}

// Sub returns the counter deltas from earlier to s. HeapAlloc and MaxRSS are
// levels, not counters, and are taken from s unchanged.
func (s Snapshot) Sub(earlier Snapshot) Snapshot {
	return Snapshot{
		Mallocs:   s.Mallocs - earlier.Mallocs,
		Frees:     s.Frees - earlier.Frees,
		HeapAlloc: s.HeapAlloc,
		TotalHeap: s.TotalHeap - earlier.TotalHeap,
		NumGC:     s.NumGC - earlier.NumGC,
		MaxRSS:    s.MaxRSS,
	}
}

// PerOp divides the malloc count by ops.
func (s Snapshot) PerOp(ops int) float64 {
	if ops <= 0 {
		return 0
	}
	return float64(s.Mallocs) / float64(ops)
}
