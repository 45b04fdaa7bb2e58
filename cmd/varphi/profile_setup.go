package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"varphi/internal/prof"
)

var profileSession *prof.Session

// setupProfiling starts the runtime profilers named by the persistent flags.
func setupProfiling(cmd *cobra.Command) error {
	flags := cmd.Root().PersistentFlags()

	var cfg prof.Config
	var err error
	if cfg.CPU, err = flags.GetString("cpu-profile"); err != nil {
		return fmt.Errorf("failed to get cpu-profile flag: %w", err)
	}
	if cfg.Mem, err = flags.GetString("mem-profile"); err != nil {
		return fmt.Errorf("failed to get mem-profile flag: %w", err)
	}
	if cfg.RuntimeTrace, err = flags.GetString("runtime-trace"); err != nil {
		return fmt.Errorf("failed to get runtime-trace flag: %w", err)
	}
	if !cfg.Enabled() {
		return nil
	}
	if profileSession, err = prof.Start(cfg); err != nil {
		return fmt.Errorf("failed to start profiling: %w", err)
	}
	return nil
}

func stopProfiling(cmd *cobra.Command) {
	if err := profileSession.Stop(); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "profile: %v\n", err)
	}
	profileSession = nil
}
