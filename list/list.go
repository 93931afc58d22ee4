package list

import (
	"log/slog"
	"sync/atomic"

	"github.com/joshuapare/cowlist/list/storage"
	"github.com/joshuapare/cowlist/list/verify"
)

var discardLogger = slog.New(slog.DiscardHandler)

// noCopy may be embedded into structs which must not be copied
// after the first use. See go vet's copylocks check.
type noCopy struct{}

func (*noCopy) Lock()   {}
func (*noCopy) Unlock() {}

// shared is a storage plus the number of handles and iterators referencing it.
type shared[T any] struct {
	store storage.Storage[T]
	refs  atomic.Int32
}

func newShared[T any](s storage.Storage[T]) *shared[T] {
	sh := &shared[T]{store: s}
	sh.refs.Store(1)
	return sh
}

func (sh *shared[T]) retain() *shared[T] {
	sh.refs.Add(1)
	return sh
}

func (sh *shared[T]) release() {
	sh.refs.Add(-1)
}

// List is a copy-on-write LIFO list. The zero value is an empty list ready to use.
// Copy a List with Clone, never by dereferencing (b := *a): a value copy shares
// the storage without counting it, so writes through one copy show in the other.
type List[T any] struct {
	_ noCopy

	sh    *shared[T]
	cfg   storage.Config
	forks int
}

// Stats holds handle-level counters alongside the storage counters.
type Stats struct {
	storage.Stats

	Kind   storage.Kind
	Len    int
	Cap    int
	Forks  int  // Forks performed by this handle
	Shared bool // Storage currently referenced by another handle or iterator
}

// New creates an empty list using storage.DefaultConfig.
func New[T any]() *List[T] {
	return NewWithConfig[T](nil)
}

// NewWithConfig creates an empty list with the given storage configuration.
// A nil cfg selects storage.DefaultConfig.
func NewWithConfig[T any](cfg *storage.Config) *List[T] {
	if cfg == nil {
		cfg = &storage.DefaultConfig
	}
	l := &List[T]{cfg: *cfg}
	l.sh = newShared(storage.New[T](&l.cfg))
	return l
}

// ref returns the handle's storage reference, creating it for a zero List.
func (l *List[T]) ref() *shared[T] {
	if l.sh == nil {
		l.sh = newShared(storage.New[T](&l.cfg))
	}
	return l.sh
}

// Clone returns a handle sharing this list's storage. Neither handle copies
// anything until one of them mutates.
func (l *List[T]) Clone() *List[T] {
	return &List[T]{
		sh:  l.ref().retain(),
		cfg: l.cfg,
	}
}

// Release drops this handle's reference to its storage. The handle is left
// as an empty list.
func (l *List[T]) Release() {
	if l.sh != nil {
		l.sh.release()
		l.sh = nil
	}
}

// IsUnique reports whether this handle is the only reference to its storage.
func (l *List[T]) IsUnique() bool {
	return l.ref().refs.Load() == 1
}

// ensureExclusiveStorage forks the storage if another handle or iterator shares it.
func (l *List[T]) ensureExclusiveStorage() storage.Storage[T] {
	sh := l.ref()
	if sh.refs.Load() > 1 {
		fork := newShared(sh.store.Clone())
		sh.release()
		l.sh = fork
		l.forks++

		l.logger().Debug("storage forked",
			"strategy", fork.store.Kind(),
			"len", fork.store.Len(),
			"cap", fork.store.Cap(),
		)
	}
	return l.sh.store
}

func (l *List[T]) logger() *slog.Logger {
	if l.cfg.Logger != nil {
		return l.cfg.Logger
	}
	return discardLogger
}

// Push adds v at the head.
func (l *List[T]) Push(v T) {
	l.ensureExclusiveStorage().Push(v)
}

// Pop removes and returns the head element. Panics with ErrEmptyList when empty.
func (l *List[T]) Pop() T {
	return l.ensureExclusiveStorage().Pop()
}

// Peek returns the head element without removing it. Panics with ErrEmptyList when empty.
func (l *List[T]) Peek() T {
	return l.ref().store.Peek()
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	if l.sh == nil {
		return 0
	}
	return l.sh.store.Len()
}

// IsEmpty reports whether Len() == 0.
func (l *List[T]) IsEmpty() bool {
	return l.Len() == 0
}

// Cap returns the number of slots in the backing table.
func (l *List[T]) Cap() int {
	if l.sh == nil {
		return 0
	}
	return l.sh.store.Cap()
}

// readOnlyView hides the mutating methods of the storage behind a View.
type readOnlyView[T any] struct {
	storage.View[T]
}

// View exposes the backing slot table read-only, for printing and diagnostics.
// The result cannot be asserted back to storage.Storage.
func (l *List[T]) View() storage.View[T] {
	return readOnlyView[T]{l.ref().store}
}

// Stats returns a snapshot of the handle and storage counters.
func (l *List[T]) Stats() Stats {
	sh := l.ref()
	return Stats{
		Stats:  sh.store.Stats(),
		Kind:   sh.store.Kind(),
		Len:    sh.store.Len(),
		Cap:    sh.store.Cap(),
		Forks:  l.forks,
		Shared: sh.refs.Load() > 1,
	}
}

// Validate checks the chain invariants of the backing storage.
func (l *List[T]) Validate() error {
	return verify.Chains(l.ref().store)
}
