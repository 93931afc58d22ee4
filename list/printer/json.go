package printer

import (
	"encoding/json"

	"github.com/joshuapare/cowlist/list"
	"github.com/joshuapare/cowlist/list/storage"
)

// jsonList represents a list in JSON format.
type jsonList struct {
	Kind      string `json:"kind"`
	Len       int    `json:"len"`
	Cap       int    `json:"cap"`
	Elements  []any  `json:"elements"`
	Truncated bool   `json:"truncated,omitempty"`
}

// jsonSlot represents one slot of the table in JSON format.
type jsonSlot struct {
	Ref     int  `json:"ref"`
	Live    bool `json:"live"`
	Next    int  `json:"next"`
	Element any  `json:"element,omitempty"`
}

type jsonSlots struct {
	Head     int        `json:"head"`
	FreeHead int        `json:"free_head"`
	Len      int        `json:"len"`
	Cap      int        `json:"cap"`
	Slots    []jsonSlot `json:"slots"`
}

type jsonStats struct {
	Kind       string `json:"kind"`
	Len        int    `json:"len"`
	Cap        int    `json:"cap"`
	GrowCalls  int    `json:"grow_calls"`
	SlotsAdded int    `json:"slots_added"`
	Pushes     int    `json:"pushes"`
	Pops       int    `json:"pops"`
	Reuses     int    `json:"reuses"`
	Forks      int    `json:"forks"`
	Shared     bool   `json:"shared"`
}

func printListJSON[T any](p *Printer, l *list.List[T]) error {
	st := l.Stats()
	out := jsonList{
		Kind:     st.Kind.String(),
		Len:      st.Len,
		Cap:      st.Cap,
		Elements: make([]any, 0, st.Len),
	}

	for v := range l.All() {
		if p.opts.MaxElements > 0 && len(out.Elements) == p.opts.MaxElements {
			out.Truncated = true
			break
		}
		out.Elements = append(out.Elements, v)
	}

	return p.encode(out)
}

func printSlotsJSON[T any](p *Printer, v storage.View[T]) error {
	out := jsonSlots{
		Head:     int(v.Head()),
		FreeHead: int(v.FreeHead()),
		Len:      v.Len(),
		Cap:      v.Cap(),
		Slots:    make([]jsonSlot, 0, v.Cap()),
	}

	for ref := range storage.Ref(v.Cap()) {
		s := jsonSlot{Ref: int(ref), Live: v.IsLive(ref), Next: int(v.Next(ref))}
		if s.Live {
			s.Element = v.Element(ref)
		} else if !p.opts.ShowFree {
			continue
		}
		out.Slots = append(out.Slots, s)
	}

	return p.encode(out)
}

func (p *Printer) printStatsJSON(st list.Stats) error {
	return p.encode(jsonStats{
		Kind:       st.Kind.String(),
		Len:        st.Len,
		Cap:        st.Cap,
		GrowCalls:  st.GrowCalls,
		SlotsAdded: st.SlotsAdded,
		Pushes:     st.Pushes,
		Pops:       st.Pops,
		Reuses:     st.Reuses,
		Forks:      st.Forks,
		Shared:     st.Shared,
	})
}

func (p *Printer) encode(v any) error {
	enc := json.NewEncoder(p.writer)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
