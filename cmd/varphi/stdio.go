package main

import (
	"os"

	"github.com/spf13/cobra"
)

// stdoutFile returns the *os.File behind the command's output, or nil when it
// was redirected to something else (tests). A nil file is never a terminal.
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}

func stderrFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.ErrOrStderr().(*os.File); ok {
		return f
	}
	return nil
}
