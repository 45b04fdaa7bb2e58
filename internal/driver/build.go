package driver

import (
	"context"
	"errors"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"varphi/internal/backend"
	"varphi/internal/compiler"
	"varphi/internal/observ"
	"varphi/internal/source"
	"varphi/internal/trace"
	"varphi/internal/version"
)

// BuildRequest describes one multi-file run.
type BuildRequest struct {
	Files   []string
	BaseDir string // diagnostics paths are shown relative to it
	Backend string
	Jobs    int // 0 = GOMAXPROCS
	// Progress receives per-file events; nil disables them.
	Progress ProgressSink
	// Cache stores artifacts between runs; nil disables caching.
	Cache   *DiskCache
	Timings bool
}

// FileResult is the outcome for one input file.
type FileResult struct {
	Path     string
	FileID   source.FileID
	Loaded   bool
	Artifact []byte
	// Err is a *compiler.Error for problems in the program, anything else
	// for internal failures.
	Err    error
	Cached bool
	Timing *observ.Report
}

// Failed reports whether the file did not produce an artifact.
func (r FileResult) Failed() bool { return r.Err != nil }

// BuildFiles compiles every file with its own compiler and backend instance.
// Results keep the order of req.Files; one file's failure does not stop the
// others. The returned error is for setup problems and cancellation only.
func BuildFiles(ctx context.Context, req BuildRequest) (*source.FileSet, []FileResult, error) {
	if _, err := backend.New(req.Backend); err != nil {
		return nil, nil, err
	}

	fileSet := source.NewFileSetWithBase(req.BaseDir)
	results := make([]FileResult, len(req.Files))
	if len(req.Files) == 0 {
		return fileSet, results, nil
	}

	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "build", 0).
		WithExtra("files", strconv.Itoa(len(req.Files))).
		WithExtra("backend", req.Backend)
	defer span.End("")

	for _, path := range req.Files {
		emit(req.Progress, Event{File: path, Stage: StageLoad, Status: StatusQueued})
	}

	// FileSet не потокобезопасен: загружаем всё заранее, дальше только чтение
	for i, path := range req.Files {
		results[i].Path = path
		id, err := fileSet.Load(path)
		if err != nil {
			results[i].Err = compiler.LoadError(path, err)
			emit(req.Progress, Event{File: path, Stage: StageLoad, Status: StatusError, Err: results[i].Err})
			continue
		}
		results[i].FileID = id
		results[i].Loaded = true
	}

	jobs := req.Jobs
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(req.Files)))

	for i := range results {
		if !results[i].Loaded {
			continue
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			results[i] = buildOne(gctx, req, fileSet, results[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return fileSet, results, err
	}
	return fileSet, results, nil
}

// buildOne работает только со своим индексом results, мьютекс не нужен.
func buildOne(ctx context.Context, req BuildRequest, fileSet *source.FileSet, res FileResult) FileResult {
	started := time.Now()
	file := fileSet.Get(res.FileID)
	key := CacheKey(file.Hash, req.Backend, version.Version)

	if req.Cache != nil {
		var payload CachePayload
		if hit, err := req.Cache.Get(key, &payload); err == nil && hit && payload.Backend == req.Backend {
			res.Artifact = payload.Artifact
			res.Cached = true
			emit(req.Progress, Event{File: res.Path, Stage: StageCache, Status: StatusDone, Elapsed: time.Since(started)})
			return res
		}
	}

	emit(req.Progress, Event{File: res.Path, Stage: StageCompile, Status: StatusWorking})

	b, err := backend.New(req.Backend)
	if err != nil {
		res.Err = err
		emit(req.Progress, Event{File: res.Path, Stage: StageCompile, Status: StatusError, Err: err})
		return res
	}
	var timer *observ.Timer
	if req.Timings {
		timer = observ.NewTimer()
	}
	c := compiler.New(b, compiler.Options{Files: fileSet, Timer: timer})
	out, err := c.CompileSource(ctx, file)
	if timer != nil {
		report := timer.Report()
		res.Timing = &report
	}
	if err != nil {
		res.Err = err
		emit(req.Progress, Event{File: res.Path, Stage: StageCompile, Status: StatusError, Err: err, Elapsed: time.Since(started)})
		return res
	}
	res.Artifact = out

	if req.Cache != nil {
		payload := &CachePayload{Backend: req.Backend, Path: res.Path, Artifact: out}
		if err := req.Cache.Put(key, payload); err != nil {
			emit(req.Progress, Event{File: res.Path, Stage: StageCache, Status: StatusError, Err: err})
		}
	}
	emit(req.Progress, Event{File: res.Path, Stage: StageCompile, Status: StatusDone, Elapsed: time.Since(started)})
	return res
}

// UserErrors returns the diagnostics-carrying failures.
func UserErrors(results []FileResult) []*compiler.Error {
	var out []*compiler.Error
	for _, r := range results {
		var cerr *compiler.Error
		if errors.As(r.Err, &cerr) {
			out = append(out, cerr)
		}
	}
	return out
}
