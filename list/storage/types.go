package storage

import (
	"fmt"
	"strings"
)

// Ref is the index of a slot in the table.
type Ref int

// Nil is the sentinel ref meaning "no successor".
const Nil Ref = -1

// Kind selects a storage strategy.
type Kind uint8

const (
	KindBuffer Kind = iota // contiguous value slots
	KindNodes              // boxed nodes
)

func (k Kind) String() string {
	switch k {
	case KindBuffer:
		return "buffer"
	case KindNodes:
		return "nodes"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// MarshalText encodes the strategy name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText decodes a strategy name accepted by ParseKind.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// ParseKind maps a strategy name ("buffer", "nodes") to its Kind.
func ParseKind(name string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "buffer", "buf":
		return KindBuffer, nil
	case "nodes", "node":
		return KindNodes, nil
	default:
		return 0, fmt.Errorf("storage: unknown strategy %q", name)
	}
}

// Stats holds storage counters for testing and instrumentation.
type Stats struct {
	GrowCalls  int // Number of table growths
	SlotsAdded int // Total slots added by growth
	Pushes     int // Push calls
	Pops       int // Pop calls
	Reuses     int // Pushes served from the free chain without growing
}

// nextCapacity returns the table size after one growth step from old.
func nextCapacity(old int) int {
	return max(1, old+(old+1)>>1)
}
