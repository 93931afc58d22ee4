package storage

import "errors"

var (
	// ErrEmptyList indicates Pop or Peek on a storage with no live slots.
	ErrEmptyList = errors.New("storage: access on empty list")

	// ErrBadRef indicates a slot reference outside the table.
	ErrBadRef = errors.New("storage: bad slot reference")

	// ErrBadSlot indicates a live slot that holds no element.
	ErrBadSlot = errors.New("storage: live slot without element")

	// ErrGrowWithFreeSlots indicates growth was requested while the free chain still had slots.
	ErrGrowWithFreeSlots = errors.New("storage: grow with non-empty free chain")
)
