package compiler

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"varphi/internal/diag"
	"varphi/internal/diagfmt"
	"varphi/internal/machine"
	"varphi/internal/observ"
	"varphi/internal/sema"
	"varphi/internal/source"
	"varphi/internal/trace"
)

// recorder keeps every hook call so tests can check ordering.
type recorder struct {
	calls       []string
	transitions []machine.Transition
	finalized   int
	failWith    error
}

func (r *recorder) Reset() {
	r.calls = append(r.calls, "reset")
	r.transitions = nil
}

func (r *recorder) OnTransition(t machine.Transition) {
	r.calls = append(r.calls, "transition")
	r.transitions = append(r.transitions, t)
}

func (r *recorder) Finalize() (int, error) {
	r.calls = append(r.calls, "finalize")
	r.finalized++
	if r.failWith != nil {
		return 0, r.failWith
	}
	return len(r.transitions), nil
}

func compile(t *testing.T, src string) (*recorder, int, error) {
	t.Helper()
	rec := &recorder{}
	n, err := New[int](rec, Options{}).Compile(context.Background(), "test.vp", []byte(src))
	return rec, n, err
}

func TestSwapVariables(t *testing.T) {
	rec, n, err := compile(t, "start ($x, $y) next ($y, $x) (LEFT, RIGHT)")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if n != 1 || len(rec.transitions) != 1 {
		t.Fatalf("expected one transition, got %d", n)
	}
	want := machine.NewTransition("start",
		[]machine.Symbol{machine.Canonical(1), machine.Canonical(2)},
		"next",
		[]machine.Symbol{machine.Canonical(2), machine.Canonical(1)},
		[]machine.Direction{machine.Left, machine.Right},
		1)
	if !rec.transitions[0].Equal(want) {
		t.Fatalf("transition = %s, want %s", rec.transitions[0], want)
	}
}

func TestTransitionCountAndOrder(t *testing.T) {
	src := "// increment\n" +
		"q0 (0) q0 (0) (RIGHT)\n" +
		"q0 (1) q0 (1) (RIGHT)\n" +
		"\n" +
		"q0 (BLANK) q1 (BLANK) (LEFT) /* turn */\n" +
		"q1 (*) HALT (*) (STAY)\n"
	rec, n, err := compile(t, src)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("expected 4 transitions, got %d", n)
	}
	wantCalls := "reset transition transition transition transition finalize"
	if got := strings.Join(rec.calls, " "); got != wantCalls {
		t.Fatalf("calls = %q", got)
	}
	for i, wantLine := range []uint32{2, 3, 5, 6} {
		if rec.transitions[i].Line() != wantLine {
			t.Errorf("transition %d line = %d, want %d", i, rec.transitions[i].Line(), wantLine)
		}
	}
}

func TestLocalArityMismatch(t *testing.T) {
	rec, _, err := compile(t, "s (a, b) s (a, b, c) (LEFT, LEFT)")
	var local *sema.LocalArityError
	if !errors.As(err, &local) {
		t.Fatalf("expected LocalArityError, got %v", err)
	}
	if local.Read != 2 || local.Write != 3 || local.Shift != 2 {
		t.Fatalf("counts = %+v", local)
	}
	if rec.finalized != 0 || len(rec.transitions) != 0 {
		t.Fatal("failed run must not reach the backend")
	}
}

func TestGlobalArityMismatch(t *testing.T) {
	src := "q0 (a) q1 (b) (LEFT)\nq1 (a, b) q2 (b, a) (LEFT, LEFT)\nq2 (a) q3 (b) (LEFT)\n"
	rec, _, err := compile(t, src)
	var global *sema.GlobalArityError
	if !errors.As(err, &global) {
		t.Fatalf("expected GlobalArityError, got %v", err)
	}
	if global.Expected != 1 || global.Actual != 2 {
		t.Fatalf("arity = %+v", global)
	}
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatal("expected *compiler.Error")
	}
	if pos := cerr.File.Position(cerr.Diag.Primary.Start); pos.Line != 2 || pos.Column != 0 {
		t.Fatalf("anchored at %+v, want line 2", pos)
	}
	if len(rec.transitions) != 1 {
		t.Fatalf("only the first line may reach the backend, got %d", len(rec.transitions))
	}
}

func TestUndefinedVariable(t *testing.T) {
	_, _, err := compile(t, "s0 ($x) s1 ($y) (LEFT)")
	var undef *sema.UndefinedVariableError
	if !errors.As(err, &undef) || undef.Name != "y" {
		t.Fatalf("expected undefined $y, got %v", err)
	}
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatal("expected *compiler.Error")
	}
	want := "error: undefined variable '$y': used in the write tuple but not defined in the read tuple\n" +
		"   --> line 1:13\n" +
		"     |\n" +
		"   1 | s0 ($x) s1 ($y) (LEFT)\n" +
		"     |             ^~\n"
	if got := cerr.Render(diagfmt.RenderOpts{}); got != want {
		t.Fatalf("render mismatch:\nwant %q\ngot  %q", want, got)
	}
	if d, ok := diag.AsDiagnostic(err); !ok || d.Code != diag.SemaUndefinedVariable {
		t.Fatalf("AsDiagnostic = %+v, %v", d, ok)
	}
}

func TestCommentsOnly(t *testing.T) {
	rec, n, err := compile(t, "// nothing\n\n/* still\nnothing */\n")
	if err != nil {
		t.Fatal(err)
	}
	if n != 0 || rec.finalized != 1 || len(rec.transitions) != 0 {
		t.Fatalf("n=%d finalized=%d", n, rec.finalized)
	}
}

func TestSessionIsolation(t *testing.T) {
	rec := &recorder{}
	c := New[int](rec, Options{})
	ctx := context.Background()

	if _, err := c.Compile(ctx, "one.vp", []byte("a (x) b (y) (LEFT)\n")); err != nil {
		t.Fatalf("arity-1 program: %v", err)
	}
	n, err := c.Compile(ctx, "two.vp", []byte("a (x, y) b (y, x) (LEFT, RIGHT)\nb (x, x) a (y, y) (STAY, STAY)\n"))
	if err != nil {
		t.Fatalf("arity-2 program after arity-1 run: %v", err)
	}
	if n != 2 {
		t.Fatalf("backend state leaked across runs: %d transitions", n)
	}

	// a failed run leaves nothing behind either
	if _, err := c.Compile(ctx, "bad.vp", []byte("a (x) b (y, z) (LEFT)")); err == nil {
		t.Fatal("expected local arity error")
	}
	if _, err := c.Compile(ctx, "three.vp", []byte("a (x, y, z) b (x, y, z) (LEFT, LEFT, LEFT)")); err != nil {
		t.Fatalf("arity-3 program after failure: %v", err)
	}
}

func TestReusedCompilerDoesNotRetainSources(t *testing.T) {
	c := New[int](&recorder{}, Options{})
	ctx := context.Background()
	for i := 0; i < 100; i++ {
		if _, err := c.Compile(ctx, "loop.vp", []byte("a (x) b (x) (STAY)\n")); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if n := c.Files().Len(); n != 1 {
			t.Fatalf("run %d: file set holds %d files, want 1", i, n)
		}
	}

	_, err := c.Compile(ctx, "bad.vp", []byte("a (x) b ($y) (LEFT)\n"))
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *Error, got %v", err)
	}
	if cerr.File == nil || cerr.File.Path != "bad.vp" || c.Files().Len() != 1 {
		t.Fatalf("error file = %+v, set len = %d", cerr.File, c.Files().Len())
	}
	if _, err := c.Compile(ctx, "next.vp", []byte("a (x) b (x) (STAY)\n")); err != nil {
		t.Fatal(err)
	}
	if got := string(cerr.File.Content); got != "a (x) b ($y) (LEFT)\n" {
		t.Fatalf("earlier error lost its source: %q", got)
	}
}

func TestSharedFileSetKeepsEverySource(t *testing.T) {
	shared := source.NewFileSet()
	c := New[int](&recorder{}, Options{Files: shared})
	for _, name := range []string{"one.vp", "two.vp", "three.vp"} {
		if _, err := c.Compile(context.Background(), name, []byte("a (x) b (x) (STAY)\n")); err != nil {
			t.Fatal(err)
		}
	}
	if c.Files() != shared || shared.Len() != 3 {
		t.Fatalf("shared set len = %d", shared.Len())
	}
}

func TestSyntaxErrorWinsOverEarlierSemanticError(t *testing.T) {
	_, _, err := compile(t, "q0 (a) q1 (b, c) (LEFT)\nq1 (a) q2 (b) (UP)\n")
	var cerr *Error
	if !errors.As(err, &cerr) {
		t.Fatalf("expected *compiler.Error, got %v", err)
	}
	if cerr.Diag.Code != diag.SynExpectDirection {
		t.Fatalf("code = %s, want %s", cerr.Diag.Code.ID(), diag.SynExpectDirection.ID())
	}
	if errors.Unwrap(err) != nil {
		t.Fatal("syntax errors carry no typed cause")
	}
}

func TestLexErrorIsReported(t *testing.T) {
	_, _, err := compile(t, "q0 (a) q1 (b) (LEFT) /* open")
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Diag.Code != diag.LexUnterminatedBlockComment {
		t.Fatalf("expected unterminated comment, got %v", err)
	}
}

func TestFinalizeErrorIsNotADiagnostic(t *testing.T) {
	boom := errors.New("disk full")
	rec := &recorder{failWith: boom}
	_, err := New[int](rec, Options{}).Compile(context.Background(), "f.vp", []byte("a (x) b (x) (STAY)"))
	if !errors.Is(err, boom) {
		t.Fatalf("expected wrapped backend error, got %v", err)
	}
	if _, ok := diag.AsDiagnostic(err); ok {
		t.Fatal("backend errors are not diagnostics")
	}
}

func TestCompileFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "m.vp")
	if err := os.WriteFile(path, []byte("\ufeffa (x) b (x) (STAY)\r\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	timer := observ.NewTimer()
	c := New[int](&recorder{}, Options{Timer: timer})
	n, err := c.CompileFile(context.Background(), path)
	if err != nil || n != 1 {
		t.Fatalf("CompileFile = %d, %v", n, err)
	}
	var names []string
	for _, p := range timer.Phases() {
		names = append(names, p.Name)
	}
	if got := strings.Join(names, ","); got != "load,parse,sema,finalize" {
		t.Fatalf("phases = %s", got)
	}

	_, err = c.CompileFile(context.Background(), filepath.Join(dir, "missing.vp"))
	var cerr *Error
	if !errors.As(err, &cerr) || cerr.Diag.Code != diag.IOLoadFileError || !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected load error, got %v", err)
	}
}

func TestCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	rec := &recorder{}
	_, err := New[int](rec, Options{}).Compile(ctx, "c.vp", []byte("a (x) b (x) (STAY)"))
	if !errors.Is(err, context.Canceled) || len(rec.calls) != 0 {
		t.Fatalf("err=%v calls=%v", err, rec.calls)
	}
}

func TestTraceEvents(t *testing.T) {
	var buf bytes.Buffer
	tr := trace.NewStreamTracer(&buf, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), tr)
	if _, err := New[int](&recorder{}, Options{}).Compile(ctx, "t.vp", []byte("a (x) b (x) (STAY)\nb (x) a (x) (STAY)\n")); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"driver:compile", "pass:parse", "pass:sema", "line:transition (a (x) b (x) (STAY))", "{transitions=2}"} {
		if !strings.Contains(out, want) {
			t.Errorf("trace missing %q:\n%s", want, out)
		}
	}
}
