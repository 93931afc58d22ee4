package storage

import (
	"fmt"
	"log/slog"
)

// node is a heap-boxed slot.
type node[T any] struct {
	elem T
	live bool
	next Ref
}

// Nodes is a storage whose table holds pointers to individually allocated nodes.
// Nodes are boxed once when the table grows and then recycled through the free
// chain for the lifetime of the storage.
type Nodes[T any] struct {
	nodes    []*node[T]
	head     Ref
	freeHead Ref
	count    int

	log   *slog.Logger
	stats Stats
}

// NewNodes creates an empty Nodes storage.
func NewNodes[T any](cfg *Config) *Nodes[T] {
	return &Nodes[T]{
		head:     Nil,
		freeHead: Nil,
		log:      cfg.logger(),
	}
}

// Push links elem at the head.
func (n *Nodes[T]) Push(elem T) {
	ref := n.dequeueReusable()

	nd := n.nodes[ref]
	nd.elem = elem
	nd.live = true
	nd.next = n.head

	n.head = ref
	n.count++
	n.stats.Pushes++
}

// Pop unlinks the head node, returns it to the free chain and yields its element.
func (n *Nodes[T]) Pop() T {
	if n.head == Nil {
		panic(ErrEmptyList)
	}

	ref := n.head
	nd := n.nodes[ref]
	if !nd.live {
		panic(fmt.Errorf("%w: ref %d", ErrBadSlot, ref))
	}
	elem, next := nd.elem, nd.next

	n.enqueueUnused(ref)

	n.head = next
	n.count--
	n.stats.Pops++

	return elem
}

// Peek returns the head element.
func (n *Nodes[T]) Peek() T {
	if n.head == Nil {
		panic(ErrEmptyList)
	}

	nd := n.nodes[n.head]
	if !nd.live {
		panic(fmt.Errorf("%w: ref %d", ErrBadSlot, n.head))
	}
	return nd.elem
}

// dequeueReusable takes the first node off the free chain, growing the table
// if the chain is empty. The returned node's next is Nil.
func (n *Nodes[T]) dequeueReusable() Ref {
	if n.freeHead == Nil {
		n.growIfNeeded()
	} else {
		n.stats.Reuses++
	}

	ref := n.freeHead
	nd := n.nodes[ref]
	n.freeHead = nd.next
	nd.next = Nil

	return ref
}

// enqueueUnused clears the node at ref and makes it the new free head.
func (n *Nodes[T]) enqueueUnused(ref Ref) {
	nd := n.nodes[ref]

	var zero T
	nd.elem = zero
	nd.live = false
	nd.next = n.freeHead

	n.freeHead = ref
}

// growIfNeeded boxes the added nodes in ascending order and makes them the free chain.
func (n *Nodes[T]) growIfNeeded() {
	if n.freeHead != Nil {
		panic(ErrGrowWithFreeSlots)
	}

	oldCap := len(n.nodes)
	newCap := nextCapacity(oldCap)

	nodes := make([]*node[T], newCap)
	copy(nodes, n.nodes)

	for off := oldCap; off < newCap; off++ {
		next := Ref(off + 1)
		if off == newCap-1 {
			next = Nil
		}
		nodes[off] = &node[T]{next: next}
	}

	n.nodes = nodes
	n.freeHead = Ref(oldCap)

	n.stats.GrowCalls++
	n.stats.SlotsAdded += newCap - oldCap

	n.log.Debug("slot table grown", "strategy", KindNodes, "old_cap", oldCap, "new_cap", newCap)
}

// Len returns the number of live nodes.
func (n *Nodes[T]) Len() int { return n.count }

// Cap returns the table size.
func (n *Nodes[T]) Cap() int { return len(n.nodes) }

// Head returns the first live node.
func (n *Nodes[T]) Head() Ref { return n.head }

// FreeHead returns the first free node.
func (n *Nodes[T]) FreeHead() Ref { return n.freeHead }

// Next returns the successor of ref.
func (n *Nodes[T]) Next(ref Ref) Ref { return n.at(ref).next }

// IsLive reports whether ref holds an element.
func (n *Nodes[T]) IsLive(ref Ref) bool { return n.at(ref).live }

// Kind returns KindNodes.
func (n *Nodes[T]) Kind() Kind { return KindNodes }

// Stats returns a snapshot of the counters.
func (n *Nodes[T]) Stats() Stats { return n.stats }

// Element returns the element stored at ref.
func (n *Nodes[T]) Element(ref Ref) T {
	nd := n.at(ref)
	if !nd.live {
		panic(fmt.Errorf("%w: ref %d", ErrBadSlot, ref))
	}
	return nd.elem
}

func (n *Nodes[T]) at(ref Ref) *node[T] {
	if ref < 0 || int(ref) >= len(n.nodes) {
		panic(fmt.Errorf("%w: %d (cap %d)", ErrBadRef, ref, len(n.nodes)))
	}
	return n.nodes[ref]
}

// Clone returns a deep copy, boxing a fresh copy of every node. Counters start at zero.
func (n *Nodes[T]) Clone() Storage[T] {
	var nodes []*node[T]
	if n.nodes != nil {
		nodes = make([]*node[T], len(n.nodes))
		for i, nd := range n.nodes {
			cp := *nd
			nodes[i] = &cp
		}
	}

	return &Nodes[T]{
		nodes:    nodes,
		head:     n.head,
		freeHead: n.freeHead,
		count:    n.count,
		log:      n.log,
	}
}

// Compile-time interface check
var _ Storage[int] = (*Nodes[int])(nil)
