package verify

import (
	"fmt"

	"github.com/joshuapare/cowlist/list/storage"
)

// ValidationError describes a broken storage invariant.
type ValidationError struct {
	Type    string
	Message string
	Ref     storage.Ref // Slot where the problem was found (storage.Nil if N/A)
	Details map[string]any
}

func (e *ValidationError) Error() string {
	if e.Ref != storage.Nil {
		return fmt.Sprintf("%s at ref %d: %s", e.Type, e.Ref, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Chains validates the live and free chains of s.
// Returns the first error encountered, or nil if all checks pass.
func Chains(s storage.Inspector) error {
	capacity := s.Cap()
	count := s.Len()

	if count < 0 || count > capacity {
		return &ValidationError{
			Type:    "Count",
			Message: fmt.Sprintf("count %d outside [0, %d]", count, capacity),
			Ref:     storage.Nil,
		}
	}

	seen := make([]bool, capacity)

	if err := walk(s, "LiveChain", s.Head(), count, true, seen); err != nil {
		return err
	}
	if err := walk(s, "FreeChain", s.FreeHead(), capacity-count, false, seen); err != nil {
		return err
	}

	for ref, ok := range seen {
		if !ok {
			return &ValidationError{
				Type:    "Coverage",
				Message: "slot is on neither chain",
				Ref:     storage.Ref(ref),
			}
		}
	}

	return nil
}

// walk follows one chain for exactly want steps, marking each ref in seen.
func walk(s storage.Inspector, kind string, ref storage.Ref, want int, live bool, seen []bool) error {
	steps := 0
	for ref != storage.Nil {
		if ref < 0 || int(ref) >= len(seen) {
			return &ValidationError{
				Type:    kind,
				Message: fmt.Sprintf("ref out of range after %d steps", steps),
				Ref:     ref,
				Details: map[string]any{"cap": len(seen)},
			}
		}
		if seen[ref] {
			return &ValidationError{
				Type:    kind,
				Message: fmt.Sprintf("ref visited twice after %d steps", steps),
				Ref:     ref,
			}
		}
		if s.IsLive(ref) != live {
			return &ValidationError{
				Type:    kind,
				Message: fmt.Sprintf("slot liveness is %t, want %t", !live, live),
				Ref:     ref,
			}
		}

		seen[ref] = true
		steps++
		if steps > want {
			return &ValidationError{
				Type:    kind,
				Message: fmt.Sprintf("chain longer than %d", want),
				Ref:     ref,
			}
		}
		ref = s.Next(ref)
	}

	if steps != want {
		return &ValidationError{
			Type:    kind,
			Message: fmt.Sprintf("chain has %d slots, want %d", steps, want),
			Ref:     storage.Nil,
			Details: map[string]any{"steps": steps, "want": want},
		}
	}
	return nil
}

// Growth checks that a table grew from oldCap to newCap by the storage growth rule:
// newCap == max(1, oldCap + ceil(oldCap/2)).
func Growth(oldCap, newCap int) error {
	want := max(1, oldCap+(oldCap+1)/2)
	if newCap != want {
		return &ValidationError{
			Type:    "Growth",
			Message: fmt.Sprintf("capacity %d -> %d, want %d", oldCap, newCap, want),
			Ref:     storage.Nil,
			Details: map[string]any{"old": oldCap, "new": newCap, "want": want},
		}
	}
	return nil
}
