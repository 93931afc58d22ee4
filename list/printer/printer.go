package printer

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/joshuapare/cowlist/list"
	"github.com/joshuapare/cowlist/list/storage"
)

const (
	DefaultIndentSize  = 2
	DefaultMaxElements = 0
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxElements limits how many elements PrintList shows (0 = unlimited).
	// Default: 0
	MaxElements int

	// ShowFree includes free slots in PrintSlots output.
	// Default: true
	ShowFree bool

	// Language selects digit grouping for counters in text output.
	// Default: language.English
	Language language.Tag
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:      FormatText,
		IndentSize:  DefaultIndentSize,
		MaxElements: DefaultMaxElements,
		ShowFree:    true,
		Language:    language.English,
	}
}

// Printer handles formatted output of lists and their storage.
type Printer struct {
	opts   Options
	writer io.Writer
	num    *message.Printer
}

// New creates a new Printer writing to w.
//
// Example:
//
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	printer.PrintList(p, l)
func New(w io.Writer, opts Options) *Printer {
	if opts.Language == language.Und {
		opts.Language = language.English
	}
	return &Printer{
		opts:   opts,
		writer: w,
		num:    message.NewPrinter(opts.Language),
	}
}

// PrintList prints the elements of l head to tail with its length and capacity.
func PrintList[T any](p *Printer, l *list.List[T]) error {
	switch p.opts.Format {
	case FormatJSON:
		return printListJSON(p, l)
	default:
		return printListText(p, l)
	}
}

// PrintSlots dumps the slot table behind v: every ref with its state, next
// ref and element.
func PrintSlots[T any](p *Printer, v storage.View[T]) error {
	switch p.opts.Format {
	case FormatJSON:
		return printSlotsJSON(p, v)
	default:
		return printSlotsText(p, v)
	}
}

// PrintStats prints handle and storage counters.
func (p *Printer) PrintStats(st list.Stats) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printStatsJSON(st)
	default:
		return p.printStatsText(st)
	}
}
