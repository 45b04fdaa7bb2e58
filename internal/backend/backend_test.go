package backend

import (
	"context"
	"strings"
	"testing"

	"varphi/internal/compiler"
)

const program = "// binary flip\n" +
	"q0 (0) q0 (1) (RIGHT)\n" +
	"q0 (1) q0 (0) (RIGHT)\n" +
	"q0 (BLANK) halt (BLANK) (STAY)\n"

func run(t *testing.T, name, src string) string {
	t.Helper()
	b, err := New(name)
	if err != nil {
		t.Fatal(err)
	}
	out, err := compiler.New(b, compiler.Options{}).Compile(context.Background(), "p.vp", []byte(src))
	if err != nil {
		t.Fatalf("%s: %v", name, err)
	}
	return string(out)
}

func TestSimpleBackends(t *testing.T) {
	tests := []struct {
		backend string
		src     string
		want    string
	}{
		{"count", program, "3"},
		{"count", "", "0"},
		{"empty", "// only a comment\n", "EMPTY"},
		{"empty", program, "NOT EMPTY"},
		{"states", program, "halt, q0"},
		{"states", "   \t  \n  \r\n  ", ""},
	}
	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			if got := run(t, tt.backend, tt.src); got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestTableBackendsRoundTrip(t *testing.T) {
	src := "a ($x, *) b ($x, $x) (LEFT, STAY)\nb (1, BLANK) a (0, 1) (RIGHT, RIGHT)\n"
	for _, name := range []string{"json", "yaml", "msgpack"} {
		t.Run(name, func(t *testing.T) {
			table, err := DecodeTable(name, []byte(run(t, name, src)))
			if err != nil {
				t.Fatal(err)
			}
			if table.Tapes != 2 || len(table.Transitions) != 2 {
				t.Fatalf("table = %+v", table)
			}
			if strings.Join(table.States, ",") != "a,b" {
				t.Errorf("states = %v", table.States)
			}
			r := table.Transitions[0]
			if r.Line != 1 || r.From != "a" || r.To != "b" ||
				strings.Join(r.Read, " ") != "$1 *" ||
				strings.Join(r.Write, " ") != "$1 $1" ||
				strings.Join(r.Move, " ") != "LEFT STAY" {
				t.Errorf("rule = %+v", r)
			}
			if w := table.Transitions[1].Write; strings.Join(w, " ") != "0 1" {
				t.Errorf("second rule writes %v", w)
			}
		})
	}
}

func TestEmptyTable(t *testing.T) {
	out := run(t, "json", "")
	if !strings.Contains(out, `"transitions": []`) || !strings.Contains(out, `"tapes": 0`) {
		t.Fatalf("empty json = %s", out)
	}
}

func TestMermaid(t *testing.T) {
	want := "stateDiagram-v2\n" +
		"    state \"q0\" as s0\n" +
		"    state \"halt\" as s1\n" +
		"    [*] --> s0\n" +
		"    s0 --> s0 : 0/1 RIGHT\n" +
		"    s0 --> s0 : 1/0 RIGHT\n" +
		"    s0 --> s1 : BLANK/BLANK STAY\n"
	if got := run(t, "mermaid", program); got != want {
		t.Fatalf("mermaid:\n%s\nwant:\n%s", got, want)
	}
}

func TestMermaidAliasesReservedAndUnicodeStates(t *testing.T) {
	got := run(t, "mermaid", "end (a) состояние (b) (LEFT)\nсостояние (b) end (a) (RIGHT)\n")
	want := "stateDiagram-v2\n" +
		"    state \"end\" as s0\n" +
		"    state \"состояние\" as s1\n" +
		"    [*] --> s0\n" +
		"    s0 --> s1 : a/b LEFT\n" +
		"    s1 --> s0 : b/a RIGHT\n"
	if got != want {
		t.Fatalf("mermaid:\n%s\nwant:\n%s", got, want)
	}
	if got := run(t, "mermaid", ""); got != "stateDiagram-v2\n" {
		t.Fatalf("empty program = %q", got)
	}
	if got := mermaidLabel(`a"b`); got != "a#quot;b" {
		t.Fatalf("mermaidLabel = %q", got)
	}
}

func TestBackendReuse(t *testing.T) {
	for _, name := range Names() {
		b, _ := New(name)
		c := compiler.New(b, compiler.Options{})
		ctx := context.Background()
		first, err := c.Compile(ctx, "a.vp", []byte(program))
		if err != nil {
			t.Fatal(err)
		}
		if _, err := c.Compile(ctx, "b.vp", []byte("x (a, b) y (b, a) (LEFT, LEFT)")); err != nil {
			t.Fatal(err)
		}
		again, err := c.Compile(ctx, "a.vp", []byte(program))
		if err != nil {
			t.Fatal(err)
		}
		if string(first) != string(again) {
			t.Errorf("%s: output depends on previous runs", name)
		}
	}
}

func TestRegistry(t *testing.T) {
	want := "count,empty,json,mermaid,msgpack,states,yaml"
	if got := strings.Join(Names(), ","); got != want {
		t.Fatalf("Names() = %s", got)
	}
	if _, err := New("llvm"); err == nil || !strings.Contains(err.Error(), "available: count") {
		t.Fatalf("unknown backend error = %v", err)
	}
	if Extension("yaml") != "yaml" || Extension("nope") != "out" || Describe("count") == "" {
		t.Fatal("extension lookup broken")
	}
}
