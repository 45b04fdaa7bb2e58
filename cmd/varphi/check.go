package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"varphi/internal/driver"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.vp|directory>",
	Short: "Validate Varphi programs",
	Long:  `Check parses and validates a program, or every *.vp file in a directory, and prints the diagnostics`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "diagnostics format (pretty|short|json)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	format, err := diagFormatFlag(cmd)
	if err != nil {
		return err
	}
	jobs, err := cli.jobs(cmd)
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	files, baseDir, err := driver.ExpandTarget(args[0])
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files in %s", driver.SourceExt, args[0])
	}

	// "empty" is the cheapest backend: check only needs validation
	fs, results, err := driver.BuildFiles(cmd.Context(), driver.BuildRequest{
		Files:   files,
		BaseDir: baseDir,
		Backend: "empty",
		Jobs:    jobs,
		Timings: cli.timings,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	opts := reportOpts{format: format, color: cli.color.enabledFor(stdoutFile(cmd))}
	failed, err := summarizeResults(out, cmd.ErrOrStderr(), fs, results, opts)
	if err != nil {
		return err
	}
	if failed > 0 {
		return errReported
	}
	if !cli.quiet && format != formatJSON {
		fmt.Fprintf(out, "ok: %d %s checked\n", len(files), plural(len(files), "file", "files"))
	}
	return nil
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
