package machine

import (
	"fmt"
	"strconv"
)

// SymbolKind discriminates the Symbol variant.
type SymbolKind uint8

const (
	SymLiteral SymbolKind = iota
	SymBlank
	SymWildcard
	SymVariable
	SymCanonical
)

func (k SymbolKind) String() string {
	switch k {
	case SymLiteral:
		return "literal"
	case SymBlank:
		return "blank"
	case SymWildcard:
		return "wildcard"
	case SymVariable:
		return "variable"
	case SymCanonical:
		return "canonical"
	}
	return "unknown"
}

// Symbol is one tape position pattern. The zero value is not a valid symbol;
// use the constructors. Symbols are comparable with ==.
type Symbol struct {
	kind  SymbolKind
	char  rune
	name  string
	index int
}

// Literal is a concrete single-character tape symbol.
func Literal(r rune) Symbol { return Symbol{kind: SymLiteral, char: r} }

// Blank is the empty tape cell.
func Blank() Symbol { return Symbol{kind: SymBlank} }

// Wildcard matches anything on read and leaves the cell unchanged on write.
func Wildcard() Symbol { return Symbol{kind: SymWildcard} }

// Variable is a named binding before canonicalization; name excludes '$'.
func Variable(name string) Symbol { return Symbol{kind: SymVariable, name: name} }

// Canonical is a variable after canonicalization; index starts at 1.
func Canonical(index int) Symbol { return Symbol{kind: SymCanonical, index: index} }

func (s Symbol) Kind() SymbolKind { return s.kind }

// Char returns the literal character; ok is false for other kinds.
func (s Symbol) Char() (rune, bool) { return s.char, s.kind == SymLiteral }

// Name returns the variable name without '$'; ok is false for other kinds.
func (s Symbol) Name() (string, bool) { return s.name, s.kind == SymVariable }

// Index returns the canonical index; ok is false for other kinds.
func (s Symbol) Index() (int, bool) { return s.index, s.kind == SymCanonical }

// IsVariable reports whether s still carries a source variable name.
func (s Symbol) IsVariable() bool { return s.kind == SymVariable }

func (s Symbol) String() string {
	switch s.kind {
	case SymLiteral:
		return string(s.char)
	case SymBlank:
		return "BLANK"
	case SymWildcard:
		return "*"
	case SymVariable:
		return "$" + s.name
	case SymCanonical:
		return "$" + strconv.Itoa(s.index)
	}
	return fmt.Sprintf("Symbol(%d)", s.kind)
}
