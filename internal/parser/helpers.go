package parser

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"varphi/internal/diag"
	"varphi/internal/source"
	"varphi/internal/token"
)

// advance — съедает следующий токен и обновляет lastSpan
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan — возвращает лучший span для диагностики.
// На EOF указываем сразу за последним съеденным токеном, а не в конец файла.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && p.lastSpan.End > 0 {
		return source.Span{File: p.lastSpan.File, Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return peek.Span
}

// expect — ожидаем конкретный токен. Если нет — репортим и возвращаем (invalid,false).
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// репортует ошибку и передает текущий спан
func (p *Parser) err(code diag.Code, msg string) {
	p.report(code, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sp source.Span, msg string) {
	p.failed = true
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, sp, msg).Emit()
	}
}

func (p *Parser) reportWithNote(code diag.Code, sp source.Span, msg string, noteSpan source.Span, note string) {
	p.failed = true
	if p.opts.Reporter != nil {
		diag.ReportError(p.opts.Reporter, code, sp, msg).WithNote(noteSpan, note).Emit()
	}
}

// isTapeCharacter — ровно одна руна, буква или цифра.
func isTapeCharacter(text string) bool {
	r, size := utf8.DecodeRuneInString(text)
	if size == 0 || size != len(text) {
		return false
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.EOF:
		return "end of file"
	case token.Invalid:
		if tok.Text == "" {
			return "invalid token"
		}
	}
	return fmt.Sprintf("'%s'", tok.Text)
}
