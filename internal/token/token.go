package token

import (
	"varphi/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwBlank, KwLeft, KwRight, KwStay:
		return true
	default:
		return false
	}
}

// IsDirection reports whether the token spells a head movement.
func (t Token) IsDirection() bool {
	switch t.Kind {
	case KwLeft, KwRight, KwStay:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case Star, LParen, RParen, Comma:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// CanBeState reports whether the token may name a machine state.
// Keywords are accepted as state names.
func (t Token) CanBeState() bool {
	return t.Kind == Ident || t.IsKeyword()
}
