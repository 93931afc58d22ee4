package printer

import (
	"fmt"
	"strings"

	"github.com/joshuapare/cowlist/list"
	"github.com/joshuapare/cowlist/list/storage"
)

// printListText prints a list header followed by one indented line per element.
func printListText[T any](p *Printer, l *list.List[T]) error {
	indent := strings.Repeat(" ", p.opts.IndentSize)
	st := l.Stats()

	if _, err := p.num.Fprintf(p.writer, "List (%s) len=%d cap=%d\n", st.Kind, st.Len, st.Cap); err != nil {
		return err
	}

	shown := 0
	for i, v := range l.Enumerate() {
		if p.opts.MaxElements > 0 && shown == p.opts.MaxElements {
			break
		}
		if _, err := fmt.Fprintf(p.writer, "%s[%d] %v\n", indent, i.Offset(), v); err != nil {
			return err
		}
		shown++
	}

	if rest := st.Len - shown; rest > 0 {
		if _, err := p.num.Fprintf(p.writer, "%s... %d more\n", indent, rest); err != nil {
			return err
		}
	}
	return nil
}

// printSlotsText prints the slot table as aligned columns.
func printSlotsText[T any](p *Printer, v storage.View[T]) error {
	fmt.Fprintf(p.writer, "head=%s free=%s len=%d cap=%d\n",
		refString(v.Head()), refString(v.FreeHead()), v.Len(), v.Cap())
	fmt.Fprintf(p.writer, "%-6s %-5s %-6s %s\n", "REF", "STATE", "NEXT", "ELEMENT")

	for ref := range storage.Ref(v.Cap()) {
		live := v.IsLive(ref)
		if !live && !p.opts.ShowFree {
			continue
		}

		state, elem := "free", ""
		if live {
			state, elem = "live", fmt.Sprint(v.Element(ref))
		}

		if _, err := fmt.Fprintf(p.writer, "%-6d %-5s %-6s %s\n",
			ref, state, refString(v.Next(ref)), elem); err != nil {
			return err
		}
	}
	return nil
}

// printStatsText prints counters with locale digit grouping.
func (p *Printer) printStatsText(st list.Stats) error {
	w := p.writer
	p.num.Fprintf(w, "Strategy:       %s\n", st.Kind)
	p.num.Fprintf(w, "Len / Cap:      %d / %d\n", st.Len, st.Cap)
	p.num.Fprintf(w, "Grow calls:     %d (%d slots added)\n", st.GrowCalls, st.SlotsAdded)
	p.num.Fprintf(w, "Pushes:         %d (reused: %d)\n", st.Pushes, st.Reuses)
	p.num.Fprintf(w, "Pops:           %d\n", st.Pops)
	p.num.Fprintf(w, "Forks:          %d\n", st.Forks)
	_, err := p.num.Fprintf(w, "Shared:         %t\n", st.Shared)
	return err
}

func refString(ref storage.Ref) string {
	if ref == storage.Nil {
		return "-"
	}
	return fmt.Sprint(int(ref))
}
