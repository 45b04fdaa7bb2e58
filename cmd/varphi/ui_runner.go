package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"varphi/internal/driver"
	"varphi/internal/source"
	"varphi/internal/ui"
)

type buildOutcome struct {
	fs      *source.FileSet
	results []driver.FileResult
	err     error
}

func runBuildWithUI(ctx context.Context, title string, req driver.BuildRequest) (*source.FileSet, []driver.FileResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan buildOutcome, 1)

	go func() {
		req.Progress = driver.ChannelSink{Ch: events}
		fs, results, err := driver.BuildFiles(ctx, req)
		outcomeCh <- buildOutcome{fs: fs, results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, req.Files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fs, outcome.results, uiErr
	}
	return outcome.fs, outcome.results, outcome.err
}
