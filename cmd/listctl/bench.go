package main

import (
	"container/list"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cowlist/cmd/listctl/logger"
	"github.com/joshuapare/cowlist/internal/memstat"
	cowlist "github.com/joshuapare/cowlist/list"
	"github.com/joshuapare/cowlist/list/printer"
	"github.com/joshuapare/cowlist/list/storage"
)

type benchOptions struct {
	n        int
	cycles   int
	strategy string
	baseline bool
	verify   bool
}

// BenchResult is one measured workload run.
type BenchResult struct {
	Name        string         `json:"name"`
	N           int            `json:"n"`
	Cycles      int            `json:"cycles"`
	Ops         int            `json:"ops"`
	Duration    time.Duration  `json:"duration_ns"`
	NsPerOp     float64        `json:"ns_per_op"`
	AllocsPerOp float64        `json:"allocs_per_op"`
	Bytes       uint64         `json:"bytes_allocated"`
	CapFill     int            `json:"cap_after_fill"`
	CapCycles   int            `json:"cap_after_cycles"`
	MaxRSS      int64          `json:"max_rss,omitempty"`
	Stats       *cowlist.Stats `json:"stats,omitempty"`
}

func newBenchCmd() *cobra.Command {
	opts := benchOptions{}
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark push/pop workloads",
		Long: `The bench command fills a list with n elements, runs push/pop cycles at
that depth, then drains it. Each storage strategy is timed separately and
heap allocations are counted per operation.

Example:
  listctl bench
  listctl bench --n 10000 --cycles 1000000 --strategy nodes
  listctl bench --baseline --verify --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd.OutOrStdout(), opts)
		},
	}
	cmd.Flags().IntVar(&opts.n, "n", 1000, "Elements held during the steady-state phase")
	cmd.Flags().IntVar(&opts.cycles, "cycles", 100000, "Pop/push pairs in the steady-state phase")
	cmd.Flags().
		StringVar(&opts.strategy, "strategy", "all", "Storage strategy: buffer, nodes or all")
	cmd.Flags().BoolVar(&opts.baseline, "baseline", false, "Also run container/list")
	cmd.Flags().BoolVar(&opts.verify, "verify", false, "Validate storage chains after each phase")
	return cmd
}

func runBench(w io.Writer, opts benchOptions) error {
	if opts.n < 0 || opts.cycles < 0 {
		return fmt.Errorf("--n and --cycles must not be negative")
	}
	if opts.cycles > 0 && opts.n == 0 {
		return fmt.Errorf("--cycles needs --n of at least 1")
	}

	kinds, err := benchKinds(opts.strategy)
	if err != nil {
		return err
	}

	logger.Info("bench started", "n", opts.n, "cycles", opts.cycles, "strategy", opts.strategy)

	var results []BenchResult
	for _, kind := range kinds {
		printVerbose(w, "Running %s...\n", kind)
		res, err := benchList(kind, opts)
		if err != nil {
			logger.Error("bench failed", "strategy", kind.String(), "error", err)
			return err
		}
		logger.Info("bench finished", "strategy", kind.String(), "ns_per_op", res.NsPerOp,
			"allocs_per_op", res.AllocsPerOp)
		results = append(results, res)
	}
	if opts.baseline {
		printVerbose(w, "Running container/list...\n")
		results = append(results, benchBaseline(opts))
	}

	if jsonOut {
		return printJSON(w, results)
	}
	return printBenchText(w, results)
}

func benchKinds(name string) ([]storage.Kind, error) {
	if strings.EqualFold(strings.TrimSpace(name), "all") {
		return []storage.Kind{storage.KindBuffer, storage.KindNodes}, nil
	}
	kind, err := storage.ParseKind(name)
	if err != nil {
		return nil, err
	}
	return []storage.Kind{kind}, nil
}

func benchList(kind storage.Kind, opts benchOptions) (BenchResult, error) {
	l := cowlist.NewWithConfig[int](&storage.Config{Kind: kind, Logger: logger.L})
	defer l.Release()

	check := func(phase string) error {
		if !opts.verify {
			return nil
		}
		if err := l.Validate(); err != nil {
			return fmt.Errorf("%s: after %s: %w", kind, phase, err)
		}
		return nil
	}

	before := memstat.Take()
	start := time.Now()

	for i := range opts.n {
		l.Push(i)
	}
	capFill := l.Cap()
	if err := check("fill"); err != nil {
		return BenchResult{}, err
	}
	for i := range opts.cycles {
		l.Pop()
		l.Push(i)
	}
	capCycles := l.Cap()
	if err := check("cycles"); err != nil {
		return BenchResult{}, err
	}
	for !l.IsEmpty() {
		l.Pop()
	}
	if err := check("drain"); err != nil {
		return BenchResult{}, err
	}

	elapsed := time.Since(start)
	delta := memstat.Take().Sub(before)
	st := l.Stats()

	res := newBenchResult(kind.String(), opts, elapsed, delta, &st)
	res.CapFill, res.CapCycles = capFill, capCycles
	return res, nil
}

func benchBaseline(opts benchOptions) BenchResult {
	l := list.New()

	before := memstat.Take()
	start := time.Now()

	for i := range opts.n {
		l.PushFront(i)
	}
	for i := range opts.cycles {
		l.Remove(l.Front())
		l.PushFront(i)
	}
	for l.Len() > 0 {
		l.Remove(l.Front())
	}

	elapsed := time.Since(start)
	delta := memstat.Take().Sub(before)
	return newBenchResult("container/list", opts, elapsed, delta, nil)
}

func newBenchResult(
	name string,
	opts benchOptions,
	elapsed time.Duration,
	delta memstat.Snapshot,
	st *cowlist.Stats,
) BenchResult {
	ops := 2*opts.n + 2*opts.cycles
	res := BenchResult{
		Name:        name,
		N:           opts.n,
		Cycles:      opts.cycles,
		Ops:         ops,
		Duration:    elapsed,
		AllocsPerOp: delta.PerOp(ops),
		Bytes:       delta.TotalHeap,
		MaxRSS:      delta.MaxRSS,
		Stats:       st,
	}
	if ops > 0 {
		res.NsPerOp = float64(elapsed.Nanoseconds()) / float64(ops)
	}
	return res
}

func printBenchText(w io.Writer, results []BenchResult) error {
	if len(results) > 0 {
		printInfo(w, "n=%d cycles=%d ops=%d\n\n", results[0].N, results[0].Cycles, results[0].Ops)
	}
	printInfo(w, "%-16s %12s %14s %14s %10s\n", "STRATEGY", "NS/OP", "ALLOCS/OP", "BYTES", "CAP")
	for _, r := range results {
		capacity := "-"
		if r.Stats != nil {
			capacity = fmt.Sprintf("%d/%d", r.CapFill, r.CapCycles)
		}
		fmt.Fprintf(w, "%-16s %12.2f %14.4f %14d %10s\n",
			r.Name, r.NsPerOp, r.AllocsPerOp, r.Bytes, capacity)
	}

	if !verbose || quiet {
		return nil
	}
	p := printer.New(w, printer.DefaultOptions())
	for _, r := range results {
		if r.Stats == nil {
			continue
		}
		fmt.Fprintf(w, "\n%s:\n", r.Name)
		if err := p.PrintStats(*r.Stats); err != nil {
			return err
		}
	}
	return nil
}
