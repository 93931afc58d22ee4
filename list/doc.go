// Package list provides a copy-on-write singly-linked list backed by a pooled
// slot table.
//
// # Overview
//
// List is a LIFO list with O(1) Push, Pop and Peek at the head. Elements live
// in a storage.Storage whose slots are recycled through a free chain, so a list
// that repeatedly grows and shrinks stops allocating once it reaches its
// working size.
//
// # Copy-on-Write
//
// Clone returns a second handle that shares the first handle's storage. Sharing
// is tracked with a reference count. The first mutating call on either handle
// after a Clone deep-copies the storage (a fork) so the other handle never
// observes the change. Handles that only read never fork.
//
//	a := list.New[int]()
//	a.Push(1)
//
//	b := a.Clone() // shares storage, no copy yet
//	b.Push(2)      // b forks; a still holds [1]
//
// Go cannot intercept struct assignment, so Clone is the only supported way to
// copy a List. List carries a noCopy marker and go vet flags value copies.
// Release drops a handle's reference when it is no longer needed so the
// remaining handle can mutate without forking.
//
// # Traversal
//
// Offsets count from the head: offset 0 is the most recently pushed element.
//
//	for v := range l.All() {
//	    fmt.Println(v)
//	}
//
//	for i := l.StartIndex(); i.Less(l.EndIndex()); i = l.IndexAfter(i) {
//	    fmt.Println(l.At(i))
//	}
//
// Iterators keep the storage they started on alive. Mutating the list while an
// iterator is open forks the list, and the iterator continues over its snapshot.
//
// # Errors
//
// Pop and Peek on an empty list panic with ErrEmptyList. At and Get panic with
// an error wrapping ErrIndexOutOfRange. Both are programming errors; check Len
// first.
//
// # Thread Safety
//
// A List is not safe for concurrent mutation. Clones handed to other goroutines
// may be read concurrently, and each may fork independently.
package list
