package storage

// Inspector is the read-only view of a storage's chains.
type Inspector interface {
	// Len returns the number of live slots.
	Len() int

	// Cap returns the number of slots in the table.
	Cap() int

	// Head returns the first live slot, or Nil when empty.
	Head() Ref

	// FreeHead returns the first free slot, or Nil when the free chain is exhausted.
	FreeHead() Ref

	// Next returns the successor of ref on whichever chain it belongs to.
	Next(ref Ref) Ref

	// IsLive reports whether ref currently holds an element.
	IsLive(ref Ref) bool
}

// View is an Inspector that can also read elements.
type View[T any] interface {
	Inspector

	// Element returns the element held by a live slot.
	Element(ref Ref) T
}

// Storage defines the pooled list engine.
//
// Implementations:
//   - Buffer: contiguous table of value slots
//   - Nodes: table of boxed nodes
type Storage[T any] interface {
	View[T]

	// Push links elem at the head, reusing a free slot when one exists.
	Push(elem T)

	// Pop unlinks and returns the head element. Panics with ErrEmptyList when empty.
	Pop() T

	// Peek returns the head element. Panics with ErrEmptyList when empty.
	Peek() T

	// Clone returns a deep copy that shares no slots with the receiver.
	Clone() Storage[T]

	// Kind reports the strategy.
	Kind() Kind

	// Stats returns a snapshot of the counters.
	Stats() Stats
}

// New creates an empty storage for the strategy named in cfg.
// A nil cfg selects DefaultConfig.
func New[T any](cfg *Config) Storage[T] {
	if cfg == nil {
		cfg = &DefaultConfig
	}
	if cfg.Kind == KindNodes {
		return NewNodes[T](cfg)
	}
	return NewBuffer[T](cfg)
}
