package trace

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Tracer is the main interface for emitting trace events.
type Tracer interface {
	// Emit records a trace event. Must be goroutine-safe.
	Emit(ev *Event)
	// Flush ensures all buffered events are written.
	Flush() error
	// Close flushes and releases resources.
	Close() error
	Level() Level
	// Enabled returns true if tracing is active (Level > LevelOff).
	Enabled() bool
}

// Config holds tracer configuration.
type Config struct {
	Level  Level
	Format Format
	Output io.Writer // takes precedence over OutputPath
	// OutputPath is a comma-separated list of destinations. "-" or "" means
	// stderr; a *.ndjson path always gets FormatNDJSON.
	OutputPath string
}

// New creates a Tracer based on Config. Several destinations share one
// MultiTracer.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	if cfg.Output != nil {
		return NewStreamTracer(cfg.Output, cfg.Level, cfg.Format), nil
	}

	paths := strings.Split(cfg.OutputPath, ",")
	tracers := make([]Tracer, 0, len(paths))
	for _, path := range paths {
		path = strings.TrimSpace(path)
		w, err := openOutput(path)
		if err != nil {
			for _, tr := range tracers {
				_ = tr.Close()
			}
			return nil, err
		}
		format := cfg.Format
		if strings.HasSuffix(path, ".ndjson") {
			format = FormatNDJSON
		}
		tracers = append(tracers, NewStreamTracer(w, cfg.Level, format))
	}
	if len(tracers) == 1 {
		return tracers[0], nil
	}
	return NewMultiTracer(cfg.Level, tracers...), nil
}

func openOutput(path string) (io.Writer, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stderr}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	return f, nil
}

// nopCloser keeps Close from closing stderr.
type nopCloser struct{ io.Writer }
