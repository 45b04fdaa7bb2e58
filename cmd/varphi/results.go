package main

import (
	"errors"
	"fmt"
	"io"

	"varphi/internal/compiler"
	"varphi/internal/driver"
	"varphi/internal/sema"
	"varphi/internal/source"
)

// summarizeResults prints diagnostics and timings for a finished run and
// reports how many files failed. An internal failure is returned as is so the
// process exits with the internal-error status.
func summarizeResults(diagOut, infoOut io.Writer, fs *source.FileSet, results []driver.FileResult, opts reportOpts) (failed int, err error) {
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		failed++
		switch {
		case errors.As(r.Err, new(*compiler.Error)):
			// printed below with the other diagnostics
		case errors.Is(r.Err, sema.ErrInternal):
			return failed, fmt.Errorf("%s: %w", r.Path, r.Err)
		default:
			fmt.Fprintf(diagOut, "error: %s: %v\n", r.Path, r.Err)
		}
	}
	if err := reportErrors(diagOut, fs, driver.UserErrors(results), opts); err != nil {
		return failed, err
	}
	if cli.timings {
		for _, r := range results {
			printTimings(infoOut, r.Path, r.Timing)
		}
	}
	return failed, nil
}
