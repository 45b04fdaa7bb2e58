package machine

import "testing"

func TestSymbolString(t *testing.T) {
	tests := []struct {
		sym  Symbol
		want string
	}{
		{Literal('a'), "a"},
		{Literal('é'), "é"},
		{Blank(), "BLANK"},
		{Wildcard(), "*"},
		{Variable("x"), "$x"},
		{Canonical(2), "$2"},
	}
	for _, tt := range tests {
		if got := tt.sym.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestSymbolEquality(t *testing.T) {
	if Literal('a') != Literal('a') || Literal('a') == Literal('b') {
		t.Fatalf("literal equality broken")
	}
	if Canonical(1) != Canonical(1) || Canonical(1) == Canonical(2) {
		t.Fatalf("canonical equality broken")
	}
	if Blank() == Wildcard() {
		t.Fatalf("blank must differ from wildcard")
	}
	if Variable("1") == Canonical(1) {
		t.Fatalf("variable must differ from canonical")
	}
}

func TestSymbolAccessors(t *testing.T) {
	if r, ok := Literal('0').Char(); !ok || r != '0' {
		t.Errorf("Char() = %q, %v", r, ok)
	}
	if _, ok := Blank().Char(); ok {
		t.Errorf("Blank has no char")
	}
	if n, ok := Variable("tmp").Name(); !ok || n != "tmp" {
		t.Errorf("Name() = %q, %v", n, ok)
	}
	if i, ok := Canonical(3).Index(); !ok || i != 3 {
		t.Errorf("Index() = %d, %v", i, ok)
	}
	if !Variable("x").IsVariable() || Canonical(1).IsVariable() {
		t.Errorf("IsVariable mismatch")
	}
}

func TestDirectionString(t *testing.T) {
	cases := map[Direction]string{Left: "LEFT", Right: "RIGHT", Stay: "STAY", Direction(9): "Direction(9)"}
	for d, want := range cases {
		if got := d.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}

func TestTransitionIsImmutable(t *testing.T) {
	reads := []Symbol{Canonical(1), Blank()}
	tr := NewTransition("q0", reads, "q1", []Symbol{Canonical(1), Literal('a')}, []Direction{Right, Stay}, 3)

	reads[0] = Literal('z')
	if tr.ReadAt(0) != Canonical(1) {
		t.Fatalf("constructor must copy its input")
	}
	out := tr.Reads()
	out[1] = Wildcard()
	if tr.ReadAt(1) != Blank() {
		t.Fatalf("accessor must return a copy")
	}
	if tr.Arity() != 2 || tr.Line() != 3 {
		t.Fatalf("Arity=%d Line=%d", tr.Arity(), tr.Line())
	}
}

func TestTransitionEqualAndString(t *testing.T) {
	a := NewTransition("q0", []Symbol{Canonical(1), Wildcard()}, "halt", []Symbol{Canonical(1), Blank()}, []Direction{Left, Stay}, 1)
	b := NewTransition("q0", []Symbol{Canonical(1), Wildcard()}, "halt", []Symbol{Canonical(1), Blank()}, []Direction{Left, Stay}, 1)
	c := NewTransition("q0", []Symbol{Canonical(1), Wildcard()}, "halt", []Symbol{Canonical(1), Blank()}, []Direction{Left, Stay}, 2)
	if !a.Equal(b) || a.Equal(c) {
		t.Fatalf("Equal mismatch")
	}
	if got := a.String(); got != "q0 ($1, *) halt ($1, BLANK) (LEFT, STAY)" {
		t.Fatalf("String() = %q", got)
	}
	empty := NewTransition("q", nil, "r", nil, nil, 1)
	if got := empty.String(); got != "q () r () ()" {
		t.Fatalf("String() = %q", got)
	}
}
