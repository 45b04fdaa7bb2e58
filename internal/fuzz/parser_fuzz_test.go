package fuzztests

import (
	"context"
	"errors"
	"testing"
	"time"

	"varphi/internal/backend"
	"varphi/internal/compiler"
	"varphi/internal/diag"
	"varphi/internal/diagfmt"
	"varphi/internal/lexer"
	"varphi/internal/parser"
	"varphi/internal/source"
	"varphi/internal/testkit"
)

// parseTimeout is the maximum time allowed for one input.
// If parsing takes longer, it indicates a potential infinite loop.
const parseTimeout = 5 * time.Second

func FuzzParserSpans(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		fs := source.NewFileSet()
		file := fs.Get(fs.AddVirtual("fuzz.vp", clampInput(input)))

		bag := diag.NewBag(1)
		reporter := diag.BagReporter{Bag: bag}
		lx := lexer.New(file, lexer.Options{Reporter: reporter})

		done := make(chan parser.Result, 1)
		go func() {
			done <- parser.ParseFile(file, lx, parser.Options{Reporter: reporter})
		}()

		var res parser.Result
		select {
		case res = <-done:
		case <-time.After(parseTimeout):
			t.Fatalf("parser hang on input (len=%d): %q", len(input), input)
		}

		if !res.OK {
			if _, ok := bag.First(); !ok {
				t.Fatalf("parse failed without a diagnostic")
			}
			return
		}
		if err := testkit.CheckSpanInvariants(res, file); err != nil {
			t.Fatalf("span invariants: %v", err)
		}
	})
}

// FuzzCompile drives whole programs through the json backend. Every failure
// must be a user-facing *compiler.Error; an internal error is a bug.
func FuzzCompile(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		be, err := backend.New("json")
		if err != nil {
			t.Fatal(err)
		}
		c := compiler.New(be, compiler.Options{})

		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()
		out, err := c.Compile(ctx, "fuzz.vp", clampInput(input))
		if err == nil {
			if _, derr := backend.DecodeTable("json", out); derr != nil {
				t.Fatalf("json artifact does not decode: %v", derr)
			}
			return
		}
		var cerr *compiler.Error
		if !errors.As(err, &cerr) {
			t.Fatalf("non-diagnostic error: %v", err)
		}
		if cerr.Diag.Message == "" || cerr.Render(diagfmt.RenderOpts{}) == "" {
			t.Fatalf("diagnostic without text: %+v", cerr.Diag)
		}
	})
}
