package diagfmt

import (
	"bytes"
	"strings"
	"testing"

	"varphi/internal/diag"
	"varphi/internal/source"
)

func TestFormatSnippet(t *testing.T) {
	tests := []struct {
		name string
		in   Snippet
		want string
	}{
		{
			name: "variable",
			in: Snippet{
				Message:  "undefined variable '$y'",
				Line:     1,
				Column:   12,
				Source:   []string{"s0 ($x) s1 ($y) (LEFT)"},
				TokenLen: 2,
			},
			want: "error: undefined variable '$y'\n" +
				"   --> line 1:13\n" +
				"     |\n" +
				"   1 | s0 ($x) s1 ($y) (LEFT)\n" +
				"     |             ^~\n",
		},
		{
			name: "second line default token length",
			in: Snippet{
				Message: "global tape count mismatch",
				Line:    2,
				Column:  0,
				Source:  []string{"a (x) b (y) (LEFT)", "b (x, y) c (y, x) (LEFT, LEFT)"},
			},
			want: "error: global tape count mismatch\n" +
				"   --> line 2:1\n" +
				"     |\n" +
				"   2 | b (x, y) c (y, x) (LEFT, LEFT)\n" +
				"     | ^\n",
		},
		{
			name: "tabs are mirrored",
			in: Snippet{
				Message:  "expected tape symbol",
				Line:     1,
				Column:   5,
				Source:   []string{"\tq0 (ab)"},
				TokenLen: 2,
			},
			want: "error: expected tape symbol\n" +
				"   --> line 1:6\n" +
				"     |\n" +
				"   1 | \tq0 (ab)\n" +
				"     | \t    ^~\n",
		},
		{
			name: "wide runes",
			in: Snippet{
				Message:  "wide",
				Line:     1,
				Column:   3,
				Source:   []string{"漢 (語)"},
				TokenLen: 1,
			},
			want: "error: wide\n" +
				"   --> line 1:4\n" +
				"     |\n" +
				"   1 | 漢 (語)\n" +
				"     |     ^~\n",
		},
		{
			name: "path on location row",
			in:   Snippet{Message: "m", Path: "add.vp", Line: 1, Column: 0, Source: []string{"x"}},
			want: "error: m\n   --> add.vp line 1:1\n     |\n   1 | x\n     | ^\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Format(tt.in, RenderOpts{}); got != tt.want {
				t.Fatalf("Format mismatch:\nwant:\n%q\ngot:\n%q", tt.want, got)
			}
		})
	}
}

func TestFormatFallsBack(t *testing.T) {
	header := "error: boom\n   --> line 3:2\n"
	cases := []Snippet{
		{Message: "boom", Line: 3, Column: 1},
		{Message: "boom", Line: 3, Column: 1, Source: []string{"only one line"}},
		{Message: "boom", Line: 3, Column: 1, Source: []string{}},
	}
	for i, s := range cases {
		if got := Format(s, RenderOpts{}); got != header {
			t.Errorf("case %d: got %q, want %q", i, got, header)
		}
	}
	if got := Format(Snippet{Message: "zero", Line: 0, Source: []string{"x"}}, RenderOpts{}); got != "error: zero\n   --> line 0:1\n" {
		t.Errorf("line 0: got %q", got)
	}
}

func TestFormatColumnPastEnd(t *testing.T) {
	s := Snippet{Message: "eof", Line: 1, Column: 40, Source: []string{"q0 (a)"}, TokenLen: 1}
	got := Format(s, RenderOpts{})
	if !strings.HasSuffix(got, "     |       ^\n") {
		t.Fatalf("pointer should clamp to end of line, got %q", got)
	}
}

func TestFormatColor(t *testing.T) {
	s := Snippet{Message: "m", Line: 1, Source: []string{"x"}}
	if plain := Format(s, RenderOpts{}); strings.Contains(plain, "\x1b[") {
		t.Fatalf("color disabled but escape codes present: %q", plain)
	}
	if colored := Format(s, RenderOpts{Color: true}); !strings.Contains(colored, "\x1b[") {
		t.Fatalf("color enabled but no escape codes: %q", colored)
	}
}

func TestSnippetFor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("s.vp", []byte("q0 (a) q1 (b) (LEFT)\nqé ($x) q1 ($yy) (LEFT)\n"))
	file := fs.Get(id)

	d := diag.NewError(diag.SemaUndefinedVariable, source.Span{File: id, Start: 34, End: 37}, "undefined")
	s := SnippetFor(d, file)
	if s.Line != 2 || s.Column != 12 || s.TokenLen != 3 || len(s.Source) != 2 {
		t.Fatalf("snippet = %+v", s)
	}

	noSource := SnippetFor(d, nil)
	if noSource.Source != nil || noSource.TokenLen != 1 {
		t.Fatalf("snippet without file = %+v", noSource)
	}

	var buf bytes.Buffer
	if err := Render(&buf, s, RenderOpts{}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "   2 | qé ($x) q1 ($yy) (LEFT)\n     |             ^~~\n") {
		t.Fatalf("render = %q", buf.String())
	}
}
