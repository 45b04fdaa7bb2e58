package main

import (
	"encoding/json"
	"fmt"
	"io"

	"varphi/internal/compiler"
	"varphi/internal/diag"
	"varphi/internal/diagfmt"
	"varphi/internal/observ"
	"varphi/internal/source"
)

type reportOpts struct {
	format diagFormat
	color  bool
}

// reportErrors prints user errors in the chosen format. Errors without a
// source file (unreadable inputs) have no location and are printed first.
func reportErrors(w io.Writer, fs *source.FileSet, errs []*compiler.Error, opts reportOpts) error {
	if len(errs) == 0 {
		return nil
	}
	bag := diag.NewBag(len(errs))
	var detached []diag.Diagnostic
	for _, e := range errs {
		if e.File == nil {
			detached = append(detached, e.Diag)
			continue
		}
		bag.Add(e.Diag)
	}
	bag.Sort()

	switch opts.format {
	case formatJSON:
		out := diagfmt.BuildDiagnosticsOutput(bag, fs, diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         diagfmt.PathModeRelative,
			IncludeNotes:     true,
		})
		for _, d := range detached {
			out.Diagnostics = append(out.Diagnostics, diagfmt.DiagnosticJSON{
				Severity: d.Severity.String(),
				Code:     d.Code.ID(),
				Title:    d.Code.Title(),
				Message:  d.Message,
			})
		}
		out.Count = len(out.Diagnostics)
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)

	case formatShort:
		for _, d := range detached {
			if _, err := fmt.Fprintf(w, "error %s %s\n", d.Code.ID(), d.Message); err != nil {
				return err
			}
		}
		if text := diag.FormatShortDiagnostics(bag.Items(), fs, true); text != "" {
			_, err := fmt.Fprintln(w, text)
			return err
		}
		return nil

	default:
		for _, d := range detached {
			if _, err := io.WriteString(w, diagfmt.Headline(d.Message, diagfmt.RenderOpts{Color: opts.color})); err != nil {
				return err
			}
		}
		return diagfmt.Pretty(w, bag, fs, diagfmt.PrettyOpts{
			Color:     opts.color,
			PathMode:  diagfmt.PathModeRelative,
			ShowNotes: true,
		})
	}
}

func printTimings(w io.Writer, path string, report *observ.Report) {
	if report == nil || len(report.Phases) == 0 {
		return
	}
	fmt.Fprintf(w, "%s: %.2f ms\n", path, report.TotalMS)
	for _, p := range report.Phases {
		fmt.Fprintf(w, "  %-10s %8.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			fmt.Fprintf(w, "  // %s", p.Note)
		}
		fmt.Fprintln(w)
	}
}
