package sema

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"varphi/internal/machine"
	"varphi/internal/token"
)

// ResolveSymbol classifies a read or write token. The order is fixed:
// variable, blank, wildcard, single alphanumeric literal.
func ResolveSymbol(tok token.Token) (machine.Symbol, error) {
	switch tok.Kind {
	case token.Variable:
		if name, ok := strings.CutPrefix(tok.Text, "$"); ok && name != "" {
			return machine.Variable(name), nil
		}
	case token.KwBlank:
		return machine.Blank(), nil
	case token.Star:
		return machine.Wildcard(), nil
	case token.Ident:
		r, size := utf8.DecodeRuneInString(tok.Text)
		if size > 0 && size == len(tok.Text) && (unicode.IsLetter(r) || unicode.IsDigit(r)) {
			return machine.Literal(r), nil
		}
	}
	return machine.Symbol{}, &ClassificationError{Token: tok, Want: "tape symbol"}
}

// ResolveDirection maps LEFT, RIGHT and STAY.
func ResolveDirection(tok token.Token) (machine.Direction, error) {
	switch tok.Kind {
	case token.KwLeft:
		return machine.Left, nil
	case token.KwRight:
		return machine.Right, nil
	case token.KwStay:
		return machine.Stay, nil
	}
	return 0, &ClassificationError{Token: tok, Want: "direction"}
}

func resolveSymbols(toks []token.Token) ([]machine.Symbol, error) {
	out := make([]machine.Symbol, len(toks))
	for i, tok := range toks {
		sym, err := ResolveSymbol(tok)
		if err != nil {
			return nil, err
		}
		out[i] = sym
	}
	return out, nil
}

func resolveDirections(toks []token.Token) ([]machine.Direction, error) {
	out := make([]machine.Direction, len(toks))
	for i, tok := range toks {
		dir, err := ResolveDirection(tok)
		if err != nil {
			return nil, err
		}
		out[i] = dir
	}
	return out, nil
}
