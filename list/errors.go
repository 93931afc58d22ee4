package list

import (
	"errors"

	"github.com/joshuapare/cowlist/list/storage"
)

var (
	// ErrEmptyList indicates Pop or Peek on an empty list.
	ErrEmptyList = storage.ErrEmptyList

	// ErrIndexOutOfRange indicates an offset outside [0, Len()).
	ErrIndexOutOfRange = errors.New("list: index out of range")
)
