package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"varphi/internal/sema"
	"varphi/internal/version"
)

var rootCmd = &cobra.Command{
	Use:           "varphi",
	Short:         "Varphi Turing machine language front-end",
	Long:          `Varphi checks multi-tape Turing machine programs and compiles them with a pluggable backend`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadSettings(cmd); err != nil {
			return err
		}
		cleanup, err := setupTracing(cmd)
		if err != nil {
			return err
		}
		traceCleanup = cleanup
		return setupProfiling(cmd)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		stopProfiling(cmd)
		runTraceCleanup()
	},
}

// errReported means diagnostics were already printed; only the exit code is left.
var errReported = errors.New("compilation failed")

func init() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(backendsCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(cleanCmd)

	// Глобальные флаги
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|on|off)")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().String("trace", "", "trace outputs, comma-separated (- for stderr, *.ndjson selects ndjson)")
	rootCmd.PersistentFlags().String("trace-level", "off", "trace level (off|error|phase|detail|debug)")
	rootCmd.PersistentFlags().String("trace-format", "text", "trace format (text|ndjson)")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a Go runtime trace to file")
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		stopProfiling(rootCmd)
		runTraceCleanup()
		os.Exit(exitCode(os.Stderr, err))
	}
}

// exitCode prints err unless it was already reported and maps it to the
// process status: 2 for defects of the tool, 1 for everything else.
func exitCode(w io.Writer, err error) int {
	switch {
	case errors.Is(err, errReported):
		return 1
	case errors.Is(err, sema.ErrInternal):
		fmt.Fprintf(w, "internal compiler error: %v\n", err)
		fmt.Fprintln(w, "this is a bug in varphi; please report it together with the input program")
		return 2
	default:
		fmt.Fprintf(w, "error: %v\n", err)
		return 1
	}
}
