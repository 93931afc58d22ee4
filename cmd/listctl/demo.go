package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cowlist/cmd/listctl/logger"
	cowlist "github.com/joshuapare/cowlist/list"
	"github.com/joshuapare/cowlist/list/printer"
	"github.com/joshuapare/cowlist/list/storage"
)

type demoOptions struct {
	pop      int
	format   string
	strategy string
	slots    bool
	fork     string
}

func newDemoCmd() *cobra.Command {
	opts := demoOptions{}
	cmd := &cobra.Command{
		Use:   "demo [values...]",
		Short: "Push values and show the list, its slots and a forked clone",
		Long: `The demo command pushes each argument onto a new list, optionally pops
some of them, then prints the list. A clone is taken and pushed to so the
original can be shown unchanged next to the forked copy.

Example:
  listctl demo a b c
  listctl demo a b c d --pop 2 --slots
  listctl demo 1 2 3 --strategy nodes --format json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd.OutOrStdout(), args, opts)
		},
	}
	cmd.Flags().IntVar(&opts.pop, "pop", 0, "Pop this many values after pushing")
	cmd.Flags().StringVar(&opts.format, "format", "text", "Output format: text or json")
	cmd.Flags().StringVar(&opts.strategy, "strategy", "buffer", "Storage strategy: buffer or nodes")
	cmd.Flags().BoolVar(&opts.slots, "slots", false, "Dump the slot table")
	cmd.Flags().StringVar(&opts.fork, "fork", "fork", "Value pushed onto the clone")
	return cmd
}

func runDemo(w io.Writer, values []string, opts demoOptions) error {
	kind, err := storage.ParseKind(opts.strategy)
	if err != nil {
		return err
	}

	format := printer.Format(opts.format)
	if jsonOut {
		format = printer.FormatJSON
	}
	if format != printer.FormatText && format != printer.FormatJSON {
		return fmt.Errorf("unknown format %q", opts.format)
	}
	text := format == printer.FormatText

	if opts.pop < 0 || opts.pop > len(values) {
		return fmt.Errorf("--pop %d: only %d values pushed", opts.pop, len(values))
	}

	l := cowlist.NewWithConfig[string](&storage.Config{Kind: kind, Logger: logger.L})
	defer l.Release()

	for _, v := range values {
		l.Push(v)
	}
	logger.Debug("demo pushed", "count", len(values), "cap", l.Cap())

	for range opts.pop {
		v := l.Pop()
		if text {
			printInfo(w, "popped %s\n", v)
		}
	}

	popts := printer.DefaultOptions()
	popts.Format = format
	p := printer.New(w, popts)

	if err := printer.PrintList(p, l); err != nil {
		return err
	}
	if opts.slots {
		if text {
			printInfo(w, "\nSlots:\n")
		}
		if err := printer.PrintSlots(p, l.View()); err != nil {
			return err
		}
	}

	clone := l.Clone()
	defer clone.Release()
	clone.Push(opts.fork)

	if text {
		printInfo(w, "\nClone after push %q:\n", opts.fork)
	}
	if err := printer.PrintList(p, clone); err != nil {
		return err
	}

	if text {
		printInfo(w, "\nOriginal:\n")
	}
	if err := printer.PrintList(p, l); err != nil {
		return err
	}

	if verbose && text {
		printInfo(w, "\nClone stats:\n")
		if err := p.PrintStats(clone.Stats()); err != nil {
			return err
		}
	}

	if err := l.Validate(); err != nil {
		return fmt.Errorf("original: %w", err)
	}
	if err := clone.Validate(); err != nil {
		return fmt.Errorf("clone: %w", err)
	}
	return nil
}
