package testkit

import (
	"strings"
	"testing"

	"varphi/internal/diag"
	"varphi/internal/lexer"
	"varphi/internal/parser"
	"varphi/internal/source"
)

func parse(t *testing.T, src string) (parser.Result, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("k.vp", []byte(src)))
	reporter := diag.BagReporter{Bag: diag.NewBag(1)}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	return parser.ParseFile(file, lx, parser.Options{Reporter: reporter}), file
}

func TestCheckSpanInvariantsAccepts(t *testing.T) {
	res, file := parse(t, "// inc\nq0 (1, $x) q0 (1, $x) (RIGHT, STAY)\n\nq0 (BLANK, *) halt (1, *) (STAY, STAY)\n")
	if !res.OK || len(res.Lines) != 2 {
		t.Fatalf("parse failed: %+v", res)
	}
	if err := CheckSpanInvariants(res, file); err != nil {
		t.Fatalf("CheckSpanInvariants: %v", err)
	}
}

func TestCheckSpanInvariantsRejects(t *testing.T) {
	res, file := parse(t, "a (x) b (y) (LEFT)\nb (x) c (y) (LEFT)\n")

	tests := []struct {
		name   string
		mutate func(*parser.Result)
		want   string
	}{
		{"empty span", func(r *parser.Result) { r.Lines[0].Span.End = r.Lines[0].Span.Start }, "empty span"},
		{"overlap", func(r *parser.Result) { r.Lines[1].Span.Start = r.Lines[0].Span.End - 1 }, "overlaps"},
		{"wrong line", func(r *parser.Result) { r.Lines[1].Line = 7 }, "Line=7"},
		{"token outside", func(r *parser.Result) { r.Lines[0].Reads[0].Span = r.Lines[1].Reads[0].Span }, "outside"},
		{"beyond content", func(r *parser.Result) { r.Lines[1].Span.End = 1000 }, "beyond content"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cp := parser.Result{OK: res.OK, Lines: make([]parser.Line, len(res.Lines))}
			copy(cp.Lines, res.Lines)
			for i := range cp.Lines {
				cp.Lines[i].Reads = append(cp.Lines[i].Reads[:0:0], res.Lines[i].Reads...)
			}
			tt.mutate(&cp)
			err := CheckSpanInvariants(cp, file)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("err = %v, want substring %q", err, tt.want)
			}
		})
	}
	if err := CheckSpanInvariants(res, nil); err == nil {
		t.Fatalf("expected error for nil file")
	}
}
