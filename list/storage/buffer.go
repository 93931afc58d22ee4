package storage

import (
	"fmt"
	"log/slog"
	"slices"
)

// slot is one cell of a Buffer table.
type slot[T any] struct {
	elem T
	live bool // elem is set and the slot is on the live chain
	next Ref
}

// Buffer is a storage backed by one contiguous slice of value slots.
//
// Popped slots are cleared and pushed onto the free chain; the next Push takes
// them back. The slice is only replaced when the free chain runs dry.
type Buffer[T any] struct {
	slots    []slot[T]
	head     Ref
	freeHead Ref
	count    int

	log   *slog.Logger
	stats Stats
}

// NewBuffer creates an empty Buffer. The table is not allocated until the first Push.
func NewBuffer[T any](cfg *Config) *Buffer[T] {
	return &Buffer[T]{
		head:     Nil,
		freeHead: Nil,
		log:      cfg.logger(),
	}
}

// Push links elem at the head.
func (b *Buffer[T]) Push(elem T) {
	ref := b.dequeueReusable()

	s := &b.slots[ref]
	s.elem = elem
	s.live = true
	s.next = b.head

	b.head = ref
	b.count++
	b.stats.Pushes++
}

// Pop unlinks the head slot, returns it to the free chain and yields its element.
func (b *Buffer[T]) Pop() T {
	if b.head == Nil {
		panic(ErrEmptyList)
	}

	ref := b.head
	s := &b.slots[ref]
	if !s.live {
		panic(fmt.Errorf("%w: ref %d", ErrBadSlot, ref))
	}
	elem, next := s.elem, s.next

	b.enqueueUnused(ref)

	b.head = next
	b.count--
	b.stats.Pops++

	return elem
}

// Peek returns the head element.
func (b *Buffer[T]) Peek() T {
	if b.head == Nil {
		panic(ErrEmptyList)
	}

	s := &b.slots[b.head]
	if !s.live {
		panic(fmt.Errorf("%w: ref %d", ErrBadSlot, b.head))
	}
	return s.elem
}

// dequeueReusable takes the first slot off the free chain, growing the table
// if the chain is empty. The returned slot's next is Nil.
func (b *Buffer[T]) dequeueReusable() Ref {
	if b.freeHead == Nil {
		b.growIfNeeded()
	} else {
		b.stats.Reuses++
	}

	ref := b.freeHead
	s := &b.slots[ref]
	b.freeHead = s.next
	s.next = Nil

	return ref
}

// enqueueUnused clears the slot at ref and makes it the new free head.
func (b *Buffer[T]) enqueueUnused(ref Ref) {
	s := &b.slots[ref]

	var zero T
	s.elem = zero
	s.live = false
	s.next = b.freeHead

	b.freeHead = ref
}

// growIfNeeded replaces the table with a larger copy and chains the added
// slots into the free chain. Must only run with an empty free chain.
func (b *Buffer[T]) growIfNeeded() {
	if b.freeHead != Nil {
		panic(ErrGrowWithFreeSlots)
	}

	oldCap := len(b.slots)
	newCap := nextCapacity(oldCap)

	slots := make([]slot[T], newCap)
	copy(slots, b.slots)

	for off := oldCap; off < newCap-1; off++ {
		slots[off].next = Ref(off + 1)
	}
	slots[newCap-1].next = Nil

	b.slots = slots
	b.freeHead = Ref(oldCap)

	b.stats.GrowCalls++
	b.stats.SlotsAdded += newCap - oldCap

	b.log.Debug("slot table grown", "strategy", KindBuffer, "old_cap", oldCap, "new_cap", newCap)
}

// Len returns the number of live slots.
func (b *Buffer[T]) Len() int { return b.count }

// Cap returns the table size.
func (b *Buffer[T]) Cap() int { return len(b.slots) }

// Head returns the first live slot.
func (b *Buffer[T]) Head() Ref { return b.head }

// FreeHead returns the first free slot.
func (b *Buffer[T]) FreeHead() Ref { return b.freeHead }

// Next returns the successor of ref.
func (b *Buffer[T]) Next(ref Ref) Ref {
	return b.at(ref).next
}

// IsLive reports whether ref holds an element.
func (b *Buffer[T]) IsLive(ref Ref) bool {
	return b.at(ref).live
}

// Element returns the element stored at ref.
func (b *Buffer[T]) Element(ref Ref) T {
	s := b.at(ref)
	if !s.live {
		panic(fmt.Errorf("%w: ref %d", ErrBadSlot, ref))
	}
	return s.elem
}

func (b *Buffer[T]) at(ref Ref) *slot[T] {
	if ref < 0 || int(ref) >= len(b.slots) {
		panic(fmt.Errorf("%w: %d (cap %d)", ErrBadRef, ref, len(b.slots)))
	}
	return &b.slots[ref]
}

// Clone returns a deep copy with its own table. Counters start at zero.
func (b *Buffer[T]) Clone() Storage[T] {
	return &Buffer[T]{
		slots:    slices.Clone(b.slots),
		head:     b.head,
		freeHead: b.freeHead,
		count:    b.count,
		log:      b.log,
	}
}

// Kind returns KindBuffer.
func (b *Buffer[T]) Kind() Kind { return KindBuffer }

// Stats returns a snapshot of the counters.
func (b *Buffer[T]) Stats() Stats { return b.stats }

// Compile-time interface check
var _ Storage[int] = (*Buffer[int])(nil)
