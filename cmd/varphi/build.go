package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"varphi/internal/backend"
	"varphi/internal/driver"
	"varphi/internal/source"
)

var buildCmd = &cobra.Command{
	Use:   "build [flags] <file.vp|directory>",
	Short: "Compile Varphi programs with a backend",
	Long: `Build compiles a program, or every *.vp file in a directory, and writes one artifact per file.
A single file is written to stdout unless --output or --out-dir is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runBuild,
}

func init() {
	buildCmd.Flags().StringP("backend", "b", "", "backend to compile with (see `varphi backends`)")
	buildCmd.Flags().String("out-dir", "", "directory for artifacts (default from varphi.toml, else ./build)")
	buildCmd.Flags().StringP("output", "o", "", "artifact file for a single input")
	buildCmd.Flags().String("format", "pretty", "diagnostics format (pretty|short|json)")
	buildCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	buildCmd.Flags().String("ui", "auto", "progress UI (auto|on|off)")
	buildCmd.Flags().Bool("disk-cache", false, "reuse artifacts from the persistent disk cache")
	buildCmd.Flags().String("cache-dir", "", "disk cache location (default $XDG_CACHE_HOME/varphi)")
}

type buildOptions struct {
	backend  string
	outDir   string
	output   string
	toStdout bool
	useUI    bool
	jobs     int
	format   diagFormat
	cache    *driver.DiskCache
}

func readBuildOptions(cmd *cobra.Command, fileTarget bool) (buildOptions, error) {
	var opts buildOptions
	var err error
	flags := cmd.Flags()

	if opts.backend, err = flags.GetString("backend"); err != nil {
		return opts, fmt.Errorf("failed to get backend flag: %w", err)
	}
	if opts.backend == "" {
		opts.backend = cli.manifest.Config.Build.Backend
	}
	if _, err := backend.New(opts.backend); err != nil {
		return opts, err
	}

	if opts.output, err = flags.GetString("output"); err != nil {
		return opts, fmt.Errorf("failed to get output flag: %w", err)
	}
	if opts.output != "" && !fileTarget {
		return opts, fmt.Errorf("--output needs a single input file; use --out-dir for directories")
	}
	if opts.outDir, err = flags.GetString("out-dir"); err != nil {
		return opts, fmt.Errorf("failed to get out-dir flag: %w", err)
	}
	opts.toStdout = fileTarget && opts.output == "" && opts.outDir == ""
	if opts.outDir == "" {
		opts.outDir = cli.manifest.outDir()
	}

	if opts.format, err = diagFormatFlag(cmd); err != nil {
		return opts, err
	}
	if opts.jobs, err = cli.jobs(cmd); err != nil {
		return opts, fmt.Errorf("failed to get jobs flag: %w", err)
	}

	uiValue, err := flags.GetString("ui")
	if err != nil {
		return opts, fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiValue)
	if err != nil {
		return opts, err
	}
	opts.useUI = !opts.toStdout && !cli.quiet && mode.enabledFor(stdoutFile(cmd))

	useCache, err := flags.GetBool("disk-cache")
	if err != nil {
		return opts, fmt.Errorf("failed to get disk-cache flag: %w", err)
	}
	if useCache {
		cacheDir, err := flags.GetString("cache-dir")
		if err != nil {
			return opts, fmt.Errorf("failed to get cache-dir flag: %w", err)
		}
		if opts.cache, err = driver.OpenDiskCache(cacheDir, "varphi"); err != nil {
			return opts, fmt.Errorf("failed to open disk cache: %w", err)
		}
	}
	return opts, nil
}

func runBuild(cmd *cobra.Command, args []string) error {
	target := args[0]
	info, err := os.Stat(target)
	if err != nil {
		return err
	}
	opts, err := readBuildOptions(cmd, !info.IsDir())
	if err != nil {
		return err
	}

	files, baseDir, err := driver.ExpandTarget(target)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files in %s", driver.SourceExt, target)
	}

	req := driver.BuildRequest{
		Files:   files,
		BaseDir: baseDir,
		Backend: opts.backend,
		Jobs:    opts.jobs,
		Cache:   opts.cache,
		Timings: cli.timings,
	}

	var (
		fs      *source.FileSet
		results []driver.FileResult
	)
	if opts.useUI {
		fs, results, err = runBuildWithUI(cmd.Context(), "varphi build ("+opts.backend+")", req)
	} else {
		fs, results, err = driver.BuildFiles(cmd.Context(), req)
	}
	if err != nil {
		return err
	}

	diagOpts := reportOpts{format: opts.format, color: cli.color.enabledFor(stderrFile(cmd))}
	failed, err := summarizeResults(cmd.ErrOrStderr(), cmd.ErrOrStderr(), fs, results, diagOpts)
	if err != nil {
		return err
	}

	written, err := writeArtifacts(cmd, opts, baseDir, results)
	if err != nil {
		return err
	}
	if !cli.quiet && !opts.toStdout {
		fmt.Fprintf(cmd.ErrOrStderr(), "built %d of %d %s\n", written, len(files), plural(len(files), "file", "files"))
		if opts.cache != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "cache: %s\n", opts.cache.Dir())
		}
	}
	if failed > 0 {
		return errReported
	}
	return nil
}

func writeArtifacts(cmd *cobra.Command, opts buildOptions, baseDir string, results []driver.FileResult) (int, error) {
	written := 0
	for _, r := range results {
		if r.Failed() {
			continue
		}
		switch {
		case opts.toStdout:
			out := r.Artifact
			if !bytes.HasSuffix(out, []byte("\n")) {
				out = append(append([]byte(nil), out...), '\n')
			}
			if _, err := cmd.OutOrStdout().Write(out); err != nil {
				return written, err
			}
		case opts.output != "":
			if err := writeFile(opts.output, r.Artifact); err != nil {
				return written, err
			}
		default:
			path := artifactPath(opts.outDir, baseDir, r.Path, backend.Extension(opts.backend))
			if err := writeFile(path, r.Artifact); err != nil {
				return written, err
			}
		}
		written++
	}
	return written, nil
}

// artifactPath mirrors the input layout under outDir and swaps the extension.
func artifactPath(outDir, baseDir, input, ext string) string {
	rel, err := filepath.Rel(baseDir, input)
	if err != nil || strings.HasPrefix(rel, "..") {
		rel = filepath.Base(input)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(outDir, rel+"."+ext)
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
