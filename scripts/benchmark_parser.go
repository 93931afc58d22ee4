package main

import (
	"bufio"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"
)

// baselineImpl is the sub-benchmark name other strategies are compared against.
const baselineImpl = "ContainerList"

// BenchmarkResult represents a parsed benchmark result.
type BenchmarkResult struct {
	Name        string
	Operation   string // e.g. Storage_PushPop
	Impl        string // e.g. Buffer, Nodes, ContainerList
	Iterations  int
	NsPerOp     float64
	BytesPerOp  int64
	AllocsPerOp int64
}

// ComparisonResult compares one strategy with the baseline for an operation.
type ComparisonResult struct {
	Operation      string
	Impl           string
	NsPerOp        float64
	BaselineNs     float64
	Speedup        float64
	BytesPerOp     int64
	BaselineBytes  int64
	AllocsPerOp    int64
	BaselineAllocs int64
	NoBaseline     bool
}

var (
	inputFile = flag.String(
		"input",
		"",
		"Input file with benchmark output (stdin if not specified)",
	)
	outputFile = flag.String("output", "", "Output markdown file (stdout if not specified)")
	quiet      = flag.Bool("quiet", false, "Suppress progress output")
)

func main() {
	flag.Parse()

	var in io.Reader = os.Stdin
	if *inputFile != "" {
		f, err := os.Open(*inputFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening input file: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		in = f
	}

	results := parseBenchmarks(bufio.NewScanner(in))
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Parsed %d benchmark results\n", len(results))
	}

	comparisons := generateComparisons(results)
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Generated %d comparisons\n", len(comparisons))
	}

	report := generateMarkdownReport(comparisons, time.Now())

	if *outputFile == "" {
		fmt.Fprint(os.Stdout, report)
		return
	}
	if err := os.WriteFile(*outputFile, []byte(report), 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
		os.Exit(1)
	}
	if !*quiet {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", *outputFile)
	}
}

// BenchmarkStorage_PushPop/Buffer-8    10000    12450 ns/op    0 B/op    0 allocs/op
var benchmarkRegex = regexp.MustCompile(
	`^(Benchmark\S+)\s+(\d+)\s+([\d.]+)\s+ns/op(?:\s+(\d+)\s+B/op)?(?:\s+(\d+)\s+allocs/op)?`,
)

func parseBenchmarks(scanner *bufio.Scanner) []BenchmarkResult {
	var results []BenchmarkResult

	for scanner.Scan() {
		line := scanner.Text()

		// go test -json wraps each line in an event
		var testEvent map[string]any
		if err := json.Unmarshal([]byte(line), &testEvent); err == nil {
			if output, ok := testEvent["Output"].(string); ok {
				line = output
			}
		}

		matches := benchmarkRegex.FindStringSubmatch(strings.TrimSpace(line))
		if matches == nil {
			continue
		}

		name := matches[1]
		iterations, _ := strconv.Atoi(matches[2])
		nsPerOp, _ := strconv.ParseFloat(matches[3], 64)

		var bytesPerOp, allocsPerOp int64
		if matches[4] != "" {
			bytesPerOp, _ = strconv.ParseInt(matches[4], 10, 64)
		}
		if matches[5] != "" {
			allocsPerOp, _ = strconv.ParseInt(matches[5], 10, 64)
		}

		operation, impl := splitBenchmarkName(name)
		results = append(results, BenchmarkResult{
			Name:        name,
			Operation:   operation,
			Impl:        impl,
			Iterations:  iterations,
			NsPerOp:     nsPerOp,
			BytesPerOp:  bytesPerOp,
			AllocsPerOp: allocsPerOp,
		})
	}

	return results
}

// splitBenchmarkName splits Benchmark<Operation>/<impl>-<procs> into its parts.
// Benchmarks without a sub-benchmark get an empty impl.
func splitBenchmarkName(name string) (operation, impl string) {
	parts := strings.Split(strings.TrimPrefix(name, "Benchmark"), "/")
	last := len(parts) - 1
	if dash := strings.LastIndex(parts[last], "-"); dash > 0 {
		if _, err := strconv.Atoi(parts[last][dash+1:]); err == nil {
			parts[last] = parts[last][:dash]
		}
	}
	if len(parts) == 1 {
		return parts[0], ""
	}
	return strings.Join(parts[:last], "/"), parts[last]
}

func generateComparisons(results []BenchmarkResult) []ComparisonResult {
	grouped := make(map[string]map[string]BenchmarkResult)
	for _, r := range results {
		if grouped[r.Operation] == nil {
			grouped[r.Operation] = make(map[string]BenchmarkResult)
		}
		grouped[r.Operation][r.Impl] = r
	}

	var comparisons []ComparisonResult
	for op, impls := range grouped {
		base, hasBase := impls[baselineImpl]
		for impl, r := range impls {
			if impl == baselineImpl {
				continue
			}
			c := ComparisonResult{
				Operation:   op,
				Impl:        impl,
				NsPerOp:     r.NsPerOp,
				BytesPerOp:  r.BytesPerOp,
				AllocsPerOp: r.AllocsPerOp,
				NoBaseline:  !hasBase,
			}
			if hasBase {
				c.BaselineNs = base.NsPerOp
				c.BaselineBytes = base.BytesPerOp
				c.BaselineAllocs = base.AllocsPerOp
				if r.NsPerOp > 0 {
					c.Speedup = base.NsPerOp / r.NsPerOp
				}
			}
			comparisons = append(comparisons, c)
		}
	}

	sort.Slice(comparisons, func(i, j int) bool {
		if comparisons[i].Operation != comparisons[j].Operation {
			return comparisons[i].Operation < comparisons[j].Operation
		}
		return comparisons[i].Impl < comparisons[j].Impl
	})

	return comparisons
}

func generateMarkdownReport(comparisons []ComparisonResult, now time.Time) string {
	var sb strings.Builder

	sb.WriteString("# Benchmark Report\n\n")
	fmt.Fprintf(&sb, "Generated: %s\n\n", now.Format("2006-01-02 15:04:05"))

	faster, compared := 0, 0
	for _, c := range comparisons {
		if c.NoBaseline {
			continue
		}
		compared++
		if c.Speedup > 1.0 {
			faster++
		}
	}

	sb.WriteString("## Summary\n\n")
	fmt.Fprintf(&sb, "- **Total benchmarks**: %d\n", len(comparisons))
	fmt.Fprintf(&sb, "- **Compared with container/list**: %d\n", compared)
	if compared > 0 {
		fmt.Fprintf(&sb, "  - faster than baseline: %d (%.1f%%)\n",
			faster, float64(faster)/float64(compared)*100)
	}
	sb.WriteString("\n")

	sb.WriteString("## Detailed Results\n\n")
	sb.WriteString("| Operation | Strategy | ns/op | baseline ns/op | Speedup | Memory (B/op) | Allocs |\n")
	sb.WriteString("|-----------|----------|-------|----------------|---------|---------------|--------|\n")

	for _, c := range comparisons {
		if c.NoBaseline {
			fmt.Fprintf(&sb, "| %s | %s | %s | *N/A* | *N/A* | %s | %s |\n",
				c.Operation, c.Impl, formatNumber(c.NsPerOp),
				formatBytes(c.BytesPerOp), formatNumber(float64(c.AllocsPerOp)))
			continue
		}

		indicator := "✓"
		if c.Speedup < 1.0 {
			indicator = "✗"
		}
		fmt.Fprintf(&sb, "| %s | %s | %s | %s | %.2fx %s | %s vs %s | %s vs %s |\n",
			c.Operation, c.Impl,
			formatNumber(c.NsPerOp), formatNumber(c.BaselineNs),
			c.Speedup, indicator,
			formatBytes(c.BytesPerOp), formatBytes(c.BaselineBytes),
			formatNumber(float64(c.AllocsPerOp)), formatNumber(float64(c.BaselineAllocs)),
		)
	}

	sb.WriteString("\n## Notes\n\n")
	sb.WriteString("- **Speedup > 1.0**: strategy is faster than container/list ✓\n")
	sb.WriteString("- **Memory comparison**: Lower is better\n")
	sb.WriteString("- **Allocations**: Fewer is better\n")

	return sb.String()
}

func formatNumber(n float64) string {
	if n >= 1000000 {
		return fmt.Sprintf("%.2fM", n/1000000)
	} else if n >= 1000 {
		return fmt.Sprintf("%.1fK", n/1000)
	}
	return fmt.Sprintf("%.0f", n)
}

func formatBytes(b int64) string {
	if b >= 1024*1024 {
		return fmt.Sprintf("%.2fMB", float64(b)/(1024*1024))
	} else if b >= 1024 {
		return fmt.Sprintf("%.1fKB", float64(b)/1024)
	}
	return fmt.Sprintf("%dB", b)
}
