package lexer

import (
	"fmt"

	"varphi/internal/diag"
	"varphi/internal/source"
	"varphi/internal/token"
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	look   *token.Token   // 1 элементный буфер для токена
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next возвращает следующий **значимый** токен с уже собранным Leading.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.collectLeadingTrivia()

	// Leading из hold к EOF не приклеиваем
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	var tok token.Token
	switch ch := lx.cursor.Peek(); {
	case ch == '$':
		tok = lx.scanVariable()
	case isWordByte(ch):
		tok = lx.scanWord()
	case ch >= utf8RuneSelf:
		// возможно Unicode-слово; иначе неизвестный символ
		if r, _ := lx.peekRune(); isWordRune(r) {
			tok = lx.scanWord()
		} else {
			tok = lx.scanUnknown()
		}
	default:
		tok = lx.scanPunct()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

// Peek возвращает следующий токен, не потребляя его.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// All drains the lexer and returns every token including the final EOF.
func (lx *Lexer) All() []token.Token {
	out := make([]token.Token, 0, 64)
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	var kind token.Kind
	switch lx.cursor.Peek() {
	case '*':
		kind = token.Star
	case '(':
		kind = token.LParen
	case ')':
		kind = token.RParen
	case ',':
		kind = token.Comma
	default:
		return lx.scanUnknown()
	}
	lx.cursor.Bump()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanUnknown consumes one rune and reports it.
func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	r, _ := lx.peekRune()
	lx.bumpRune()
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", r))
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// tooLong reports an oversized token and gives up on the rest of the file.
func (lx *Lexer) tooLong(start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexTokenTooLong, sp, fmt.Sprintf("token exceeds %d bytes", MaxTokenLength))
	lx.cursor.SkipToEnd()
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}
