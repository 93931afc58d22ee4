package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/joshuapare/cowlist/cmd/listctl/logger"
)

var (
	// Global flags
	verbose bool
	quiet   bool
	jsonOut bool
	logOn   bool
	logDir  string
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "listctl",
		Short: "Exercise and benchmark copy-on-write pooled lists",
		Long: `listctl drives cowlist lists from the command line. It can push and pop
values to show how slots are recycled and forked, and it can benchmark the
buffer and node storage strategies against container/list.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			path, err := logger.Init(logger.Options{Enabled: logOn, LogDir: logDir, Level: level})
			if err != nil {
				return fmt.Errorf("init logging: %w", err)
			}
			if path != "" {
				printVerbose(cmd.ErrOrStderr(), "Logging to %s\n", path)
			}
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Close()
		},
	}

	// Global flags
	verbose, quiet, jsonOut, logOn, logDir = false, false, false, false, ""
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	root.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	root.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	root.PersistentFlags().BoolVar(&logOn, "log", false, "Write a JSON log file")
	root.PersistentFlags().StringVar(&logDir, "log-dir", "", "Log directory (default ~/.listctl/logs)")

	root.AddCommand(newBenchCmd(), newDemoCmd(), newVersionCmd())
	return root
}

func execute() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(w io.Writer, format string, args ...any) {
	if !quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(w io.Writer, format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(w, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
