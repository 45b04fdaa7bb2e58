package lexer

import (
	"varphi/internal/diag"
	"varphi/internal/token"
)

const utf8RuneSelf = 0x80

// scanWord сканирует [letter|digit|_]+ и проверяет через LookupKeyword.
// Ключевые слова регистрозависимые (только uppercase). Token.Text — ровно исходный срез.
func (lx *Lexer) scanWord() token.Token {
	start := lx.cursor.Mark()
	if !lx.consumeWord(start) {
		return lx.tooLong(start)
	}
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	if k, ok := token.LookupKeyword(text); ok {
		return token.Token{Kind: k, Span: sp, Text: text}
	}
	return token.Token{Kind: token.Ident, Span: sp, Text: text}
}

// scanVariable сканирует '$' word.
func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	nameStart := lx.cursor.Mark()
	if !lx.consumeWord(start) {
		return lx.tooLong(start)
	}
	sp := lx.cursor.SpanFrom(start)
	if lx.cursor.Mark() == nameStart {
		lx.errLex(diag.LexBadVariable, sp, "expected variable name after '$'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
	}
	return token.Token{Kind: token.Variable, Span: sp, Text: lx.text(sp)}
}

// consumeWord съедает символы слова; false, если токен от start вышел за MaxTokenLength.
func (lx *Lexer) consumeWord(start Mark) bool {
	for !lx.cursor.EOF() {
		if lx.cursor.Off-uint32(start) > MaxTokenLength {
			return false
		}
		b := lx.cursor.Peek()
		if b < utf8RuneSelf {
			if !isWordByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, _ := lx.peekRune()
		if !isWordRune(r) {
			break
		}
		lx.bumpRune()
	}
	return lx.cursor.Off-uint32(start) <= MaxTokenLength
}
