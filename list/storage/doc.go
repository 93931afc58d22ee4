// Package storage provides the pooled slot engine behind list.List.
//
// # Overview
//
// A storage owns a grow-only table of slots, the head of the live chain and the
// head of the free chain. Popped slots are not handed back to the garbage
// collector; they are threaded onto the free chain and reused by the next push.
// The table only grows when the free chain is empty, so a list that cycles
// between push and pop settles at a fixed capacity and stops allocating.
//
// # Storage Interface
//
// The core abstraction is the Storage interface, which supports:
//
//   - Push(elem): Take a slot from the free chain and link it at the head
//   - Pop(): Unlink the head slot and return it to the free chain
//   - Peek(): Read the head element
//   - Clone(): Deep copy of the table and state (used for copy-on-write forks)
//   - Head/FreeHead/Next/Element/IsLive: read-only chain inspection
//
// # Implementations
//
// Buffer: contiguous table of value slots
//
//   - One slice holds every slot, so traversal stays in cache
//   - Growth copies the slice; no per-slot allocation
//
// Nodes: table of individually boxed nodes
//
//   - Each slot is its own heap object referenced by index
//   - Growth copies pointers and boxes only the new nodes
//
// Both strategies share the same growth rule and chain layout, so they are
// observably identical.
//
// # Usage Example
//
//	s := storage.New[int](nil) // Buffer with DefaultConfig
//	s.Push(1)
//	s.Push(2)
//	top := s.Pop() // 2
//
// # Chains
//
// Every slot carries one next reference. It threads the live chain while the
// slot holds an element and the free chain once the slot is released:
//
//	head     -> 4 -> 1 -> 0 -> Nil   (count = 3)
//	freeHead -> 2 -> 3 -> Nil        (cap - count = 2)
//
// Every ref in [0, Cap()) sits on exactly one of the two chains.
//
// # Growth
//
// When the free chain is exhausted the table grows to
//
//	max(1, old + ceil(old/2))
//
// giving the sequence 1, 2, 3, 5, 8, 12, 18, ... The new slots are chained in
// ascending order and become the free chain.
//
// # Errors
//
// Popping or peeking an empty storage is a programming error and panics with
// ErrEmptyList. Callers check Len() first.
//
// # Thread Safety
//
// Storage instances are not thread-safe. Callers must synchronize access
// externally.
package storage
