package compiler

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"varphi/internal/diag"
	"varphi/internal/lexer"
	"varphi/internal/observ"
	"varphi/internal/parser"
	"varphi/internal/sema"
	"varphi/internal/source"
	"varphi/internal/trace"
)

type Options struct {
	// Timer receives parse, sema and finalize phases; nil disables timings.
	Timer *observ.Timer
	// Files stores the compiled sources and is shared by every run. When nil,
	// each Compile and CompileFile call gets a fresh set of its own.
	Files *source.FileSet
}

// Compiler drives one backend. It is not safe for concurrent use: give each
// goroutine its own Compiler and backend.
type Compiler[T any] struct {
	backend Backend[T]
	opts    Options
	// files is opts.Files, or the set of the latest run when opts.Files is nil.
	files *source.FileSet
}

func New[T any](backend Backend[T], opts Options) *Compiler[T] {
	return &Compiler[T]{backend: backend, opts: opts, files: opts.Files}
}

// Files returns the shared file set, or the one used by the latest run.
func (c *Compiler[T]) Files() *source.FileSet {
	if c.files == nil {
		c.files = source.NewFileSet()
	}
	return c.files
}

// runFiles returns the set the next run registers its source in.
func (c *Compiler[T]) runFiles() *source.FileSet {
	if c.opts.Files != nil {
		return c.opts.Files
	}
	c.files = source.NewFileSet()
	return c.files
}

// Compile runs src, registered under name, through the backend.
func (c *Compiler[T]) Compile(ctx context.Context, name string, src []byte) (T, error) {
	fs := c.runFiles()
	id := fs.AddVirtual(name, src)
	return c.run(ctx, fs.Get(id))
}

// CompileFile reads path from disk and compiles it.
func (c *Compiler[T]) CompileFile(ctx context.Context, path string) (T, error) {
	fs := c.runFiles()
	idx := c.opts.Timer.Begin("load")
	id, err := fs.Load(path)
	c.opts.Timer.End(idx, path)
	if err != nil {
		var zero T
		return zero, LoadError(path, err)
	}
	return c.run(ctx, fs.Get(id))
}

// CompileSource compiles a file that is already loaded. The file set is only
// read, so compilers running in parallel may share one.
func (c *Compiler[T]) CompileSource(ctx context.Context, file *source.File) (T, error) {
	return c.run(ctx, file)
}

func (c *Compiler[T]) run(ctx context.Context, file *source.File) (result T, err error) {
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "compile", 0).WithExtra("file", file.Path)
	defer func() {
		if err != nil {
			root.End(err.Error())
			return
		}
		root.End("ok")
	}()

	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	session := sema.NewSession()
	c.backend.Reset()

	lines, err := c.parse(tracer, root.ID(), file)
	if err != nil {
		return zero, err
	}

	if err := c.check(tracer, root.ID(), file, session, lines); err != nil {
		return zero, err
	}

	idx := c.opts.Timer.Begin("finalize")
	out, err := c.backend.Finalize()
	c.opts.Timer.End(idx, "")
	if err != nil {
		return zero, fmt.Errorf("backend finalize: %w", err)
	}
	return out, nil
}

// parse scans and parses the whole file before any line is validated, so a
// syntax error anywhere wins over a semantic error on an earlier line.
func (c *Compiler[T]) parse(tracer trace.Tracer, parent uint64, file *source.File) ([]parser.Line, error) {
	span := trace.Begin(tracer, trace.ScopePass, "parse", parent)
	idx := c.opts.Timer.Begin("parse")

	// одна диагностика: первая ошибка останавливает разбор
	bag := diag.NewBag(1)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	res := parser.ParseFile(file, lx, parser.Options{Reporter: reporter})

	note := strconv.Itoa(len(res.Lines)) + " lines"
	c.opts.Timer.End(idx, note)
	span.WithExtra("lines", strconv.Itoa(len(res.Lines))).End("")

	if d, ok := bag.First(); ok {
		return nil, &Error{Diag: d, File: file}
	}
	if !res.OK {
		return nil, fmt.Errorf("%w: parser stopped without a diagnostic", sema.ErrInternal)
	}
	return res.Lines, nil
}

func (c *Compiler[T]) check(tracer trace.Tracer, parent uint64, file *source.File, session *sema.Session, lines []parser.Line) error {
	span := trace.Begin(tracer, trace.ScopePass, "sema", parent)
	idx := c.opts.Timer.Begin("sema")
	accepted := 0
	defer func() {
		c.opts.Timer.End(idx, strconv.Itoa(accepted)+" transitions")
		span.WithExtra("transitions", strconv.Itoa(accepted)).End("")
	}()

	for _, line := range lines {
		t, err := session.Build(line)
		if err != nil {
			return wrap(file, err)
		}
		trace.Point(tracer, trace.ScopeLine, "transition", span.ID(), t.String())
		c.backend.OnTransition(t)
		accepted++
	}
	return nil
}

// wrap turns user errors into *Error; internal errors pass through untouched.
func wrap(file *source.File, err error) error {
	if errors.Is(err, sema.ErrInternal) {
		return err
	}
	if d, ok := diag.AsDiagnostic(err); ok {
		return &Error{Diag: d, File: file, cause: err}
	}
	return err
}
