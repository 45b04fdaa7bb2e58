package source

import "testing"

func TestSpanBasics(t *testing.T) {
	s := Span{File: 1, Start: 4, End: 9}
	if s.Empty() {
		t.Errorf("span should not be empty")
	}
	if s.Len() != 5 {
		t.Errorf("Len() = %d, want 5", s.Len())
	}
	if got := s.String(); got != "1:4-9" {
		t.Errorf("String() = %q", got)
	}
	if !(Span{File: 1, Start: 3, End: 3}).Empty() {
		t.Errorf("zero-width span should be empty")
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 0, Start: 2, End: 5}
	b := Span{File: 0, Start: 8, End: 12}
	got := a.Cover(b)
	if got.Start != 2 || got.End != 12 {
		t.Errorf("Cover() = %+v", got)
	}
	if got := b.Cover(a); got.Start != 2 || got.End != 12 {
		t.Errorf("Cover() is not symmetric: %+v", got)
	}
}

func TestResolve(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("r.vp", []byte("q0 a\nq1 b"))
	start, end := fs.Resolve(Span{File: id, Start: 5, End: 7})
	if start != (LineCol{Line: 2, Col: 1}) || end != (LineCol{Line: 2, Col: 3}) {
		t.Errorf("Resolve = %+v %+v", start, end)
	}
}
