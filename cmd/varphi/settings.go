package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// settings are the global options after merging varphi.toml and flags.
type settings struct {
	manifest *manifest
	color    triMode
	format   diagFormat
	quiet    bool
	timings  bool
}

var cli settings

// loadSettings reads the manifest and lets explicitly set flags override it.
func loadSettings(cmd *cobra.Command) error {
	wd, err := os.Getwd()
	if err != nil {
		return err
	}
	m, err := loadManifest(wd)
	if err != nil {
		return err
	}
	cli = settings{manifest: m}

	flags := cmd.Root().PersistentFlags()
	colorValue := m.Config.Diagnostics.Color
	if flags.Changed("color") {
		if colorValue, err = flags.GetString("color"); err != nil {
			return fmt.Errorf("failed to get color flag: %w", err)
		}
	}
	if cli.color, err = readColorMode(colorValue); err != nil {
		return err
	}
	if cli.format, err = readDiagFormat(m.Config.Diagnostics.Format); err != nil {
		return err
	}
	if cli.quiet, err = flags.GetBool("quiet"); err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	if cli.timings, err = flags.GetBool("timings"); err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	return nil
}

// diagFormatFlag returns the command's --format when set, else the manifest value.
func diagFormatFlag(cmd *cobra.Command) (diagFormat, error) {
	if !cmd.Flags().Changed("format") {
		return cli.format, nil
	}
	v, err := cmd.Flags().GetString("format")
	if err != nil {
		return "", fmt.Errorf("failed to get format flag: %w", err)
	}
	return readDiagFormat(v)
}

func (s settings) jobs(cmd *cobra.Command) (int, error) {
	if cmd.Flags().Changed("jobs") {
		return cmd.Flags().GetInt("jobs")
	}
	if s.manifest == nil {
		return 0, nil
	}
	return s.manifest.Config.Build.Jobs, nil
}
