package token_test

import (
	"testing"

	"varphi/internal/source"
	"varphi/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsKeyword(t *testing.T) {
	for _, k := range []token.Kind{token.KwBlank, token.KwLeft, token.KwRight, token.KwStay} {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
		if !tok(k).CanBeState() {
			t.Fatalf("%v should be usable as a state", k)
		}
	}
	for _, k := range []token.Kind{token.Ident, token.Variable, token.Star, token.EOF} {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
}

func TestIsDirection(t *testing.T) {
	if tok(token.KwBlank).IsDirection() {
		t.Fatalf("BLANK is not a direction")
	}
	for _, k := range []token.Kind{token.KwLeft, token.KwRight, token.KwStay} {
		if !tok(k).IsDirection() {
			t.Fatalf("%v should be a direction", k)
		}
	}
}

func TestIsPunct(t *testing.T) {
	for _, k := range []token.Kind{token.Star, token.LParen, token.RParen, token.Comma} {
		if !tok(k).IsPunct() {
			t.Fatalf("%v should be punct", k)
		}
	}
	if tok(token.Variable).IsPunct() {
		t.Fatalf("Variable must NOT be punct")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.Invalid:  "Invalid",
		token.Variable: "Variable",
		token.KwStay:   "KwStay",
		token.Comma:    "Comma",
		token.Kind(99): "Kind(?)",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("String() = %q, want %q", got, want)
		}
	}
}
