package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"varphi/internal/driver"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build artifacts",
	Long:  "Remove the out_dir of the current project and, with --cache, the artifact disk cache.",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().Bool("cache", false, "also empty the artifact disk cache")
	cleanCmd.Flags().String("cache-dir", "", "disk cache location (default $XDG_CACHE_HOME/varphi)")
}

func runClean(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	outDir := cli.manifest.outDir()

	info, err := os.Stat(outDir)
	switch {
	case errors.Is(err, os.ErrNotExist):
		if !cli.quiet {
			fmt.Fprintf(out, "%s not found\n", outDir)
		}
	case err != nil:
		return fmt.Errorf("failed to stat %q: %w", outDir, err)
	case !info.IsDir():
		return fmt.Errorf("%q is not a directory", outDir)
	default:
		if err := os.RemoveAll(outDir); err != nil {
			return fmt.Errorf("failed to remove %q: %w", outDir, err)
		}
		if !cli.quiet {
			fmt.Fprintf(out, "removed %s\n", outDir)
		}
	}

	withCache, err := cmd.Flags().GetBool("cache")
	if err != nil {
		return fmt.Errorf("failed to get cache flag: %w", err)
	}
	if !withCache {
		return nil
	}
	cacheDir, err := cmd.Flags().GetString("cache-dir")
	if err != nil {
		return fmt.Errorf("failed to get cache-dir flag: %w", err)
	}
	cache, err := driver.OpenDiskCache(cacheDir, "varphi")
	if err != nil {
		return fmt.Errorf("failed to open disk cache: %w", err)
	}
	if err := cache.DropAll(); err != nil {
		return fmt.Errorf("failed to empty disk cache: %w", err)
	}
	if !cli.quiet {
		fmt.Fprintf(out, "emptied cache %s\n", cache.Dir())
	}
	return nil
}
