package list

import (
	"iter"

	"github.com/joshuapare/cowlist/list/storage"
)

// Iterator is a one-shot cursor over a list, head to tail. It holds a
// reference to the storage it started on until it is exhausted or closed.
type Iterator[T any] struct {
	sh  *shared[T]
	cur storage.Ref
	pos int
}

// Iter returns a new iterator positioned at the head.
func (l *List[T]) Iter() *Iterator[T] {
	sh := l.ref().retain()
	return &Iterator[T]{sh: sh, cur: sh.store.Head()}
}

// Next returns the next element, or false once the iterator is exhausted.
func (it *Iterator[T]) Next() (T, bool) {
	if it.sh == nil || it.cur == storage.Nil {
		it.Close()
		var zero T
		return zero, false
	}

	s := it.sh.store
	v := s.Element(it.cur)
	it.cur = s.Next(it.cur)
	it.pos++
	return v, true
}

// Index returns the index of the element Next will return.
func (it *Iterator[T]) Index() Index { return Index{offset: it.pos} }

// Close releases the iterator's storage reference. Safe to call more than once.
func (it *Iterator[T]) Close() {
	if it.sh != nil {
		it.sh.release()
		it.sh = nil
	}
}

// All returns a sequence of the elements, head to tail. Each call starts at the head.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := l.Iter()
		defer it.Close()

		for v, ok := it.Next(); ok; v, ok = it.Next() {
			if !yield(v) {
				return
			}
		}
	}
}

// Enumerate returns a sequence of index/element pairs, head to tail.
func (l *List[T]) Enumerate() iter.Seq2[Index, T] {
	return func(yield func(Index, T) bool) {
		it := l.Iter()
		defer it.Close()

		for {
			i := it.Index()
			v, ok := it.Next()
			if !ok || !yield(i, v) {
				return
			}
		}
	}
}

// Values returns the elements head to tail as a new slice.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.Len())
	for v := range l.All() {
		out = append(out, v)
	}
	return out
}
