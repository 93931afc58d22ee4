package list

import (
	"cmp"
	"fmt"
)

// Index is a position in a list, counted from the head. Indexes compare with
// ==, Less and Compare.
type Index struct {
	offset int
}

// Offset returns the number of steps from the head.
func (i Index) Offset() int { return i.offset }

// Less reports whether i comes before j.
func (i Index) Less(j Index) bool { return i.offset < j.offset }

// Compare returns -1, 0 or +1 like cmp.Compare.
func (i Index) Compare(j Index) int { return cmp.Compare(i.offset, j.offset) }

// StartIndex returns the index of the head element (offset 0).
func (l *List[T]) StartIndex() Index { return Index{} }

// EndIndex returns the index one past the last element (offset Len()).
func (l *List[T]) EndIndex() Index { return Index{offset: l.Len()} }

// IndexAfter returns the index following i.
func (l *List[T]) IndexAfter(i Index) Index { return Index{offset: i.offset + 1} }

// At returns the element at i. Panics with an error wrapping ErrIndexOutOfRange
// if i is not in [StartIndex(), EndIndex()).
func (l *List[T]) At(i Index) T {
	return l.Get(i.offset)
}

// Get returns the element offset steps from the head in O(offset).
func (l *List[T]) Get(offset int) T {
	s := l.ref().store
	if offset < 0 || offset >= s.Len() {
		panic(fmt.Errorf("%w: offset %d, count %d", ErrIndexOutOfRange, offset, s.Len()))
	}

	ref := s.Head()
	for range offset {
		ref = s.Next(ref)
	}
	return s.Element(ref)
}
