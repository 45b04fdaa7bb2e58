package machine

import (
	"slices"
	"strings"
)

// Transition is one validated rule. It is immutable: accessors return copies.
type Transition struct {
	current string
	next    string
	reads   []Symbol
	writes  []Symbol
	shifts  []Direction
	line    uint32
}

// NewTransition copies its slice arguments. Callers are responsible for the
// package invariants; the semantic core is the only producer in practice.
func NewTransition(current string, reads []Symbol, next string, writes []Symbol, shifts []Direction, line uint32) Transition {
	return Transition{
		current: current,
		next:    next,
		reads:   slices.Clone(reads),
		writes:  slices.Clone(writes),
		shifts:  slices.Clone(shifts),
		line:    line,
	}
}

func (t Transition) CurrentState() string { return t.current }
func (t Transition) NextState() string    { return t.next }
func (t Transition) Reads() []Symbol      { return slices.Clone(t.reads) }
func (t Transition) Writes() []Symbol     { return slices.Clone(t.writes) }
func (t Transition) Shifts() []Direction  { return slices.Clone(t.shifts) }

// Line is the 1-based source line of the rule.
func (t Transition) Line() uint32 { return t.line }

// Arity is the tape count of the rule.
func (t Transition) Arity() int { return len(t.reads) }

// ReadAt, WriteAt and ShiftAt index without copying.
func (t Transition) ReadAt(i int) Symbol     { return t.reads[i] }
func (t Transition) WriteAt(i int) Symbol    { return t.writes[i] }
func (t Transition) ShiftAt(i int) Direction { return t.shifts[i] }

// Equal reports structural equality, line included.
func (t Transition) Equal(o Transition) bool {
	return t.current == o.current &&
		t.next == o.next &&
		t.line == o.line &&
		slices.Equal(t.reads, o.reads) &&
		slices.Equal(t.writes, o.writes) &&
		slices.Equal(t.shifts, o.shifts)
}

// String renders the rule in Varphi surface syntax.
func (t Transition) String() string {
	var b strings.Builder
	b.WriteString(t.current)
	b.WriteByte(' ')
	writeTuple(&b, t.reads)
	b.WriteByte(' ')
	b.WriteString(t.next)
	b.WriteByte(' ')
	writeTuple(&b, t.writes)
	b.WriteByte(' ')
	writeTuple(&b, t.shifts)
	return b.String()
}

func writeTuple[T interface{ String() string }](b *strings.Builder, items []T) {
	b.WriteByte('(')
	for i, it := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(it.String())
	}
	b.WriteByte(')')
}
