package parser

import (
	"varphi/internal/diag"
	"varphi/internal/lexer"
	"varphi/internal/source"
	"varphi/internal/token"
)

type Options struct {
	Reporter diag.Reporter
}

// Line is one syntactically valid transition rule, still made of raw tokens.
// Reads, Writes and Shifts are never nil.
type Line struct {
	Current token.Token
	Next    token.Token
	Reads   []token.Token
	Writes  []token.Token
	Shifts  []token.Token
	// Line is the 1-based source line of Current.
	Line uint32
	// Span covers the rule from Current to the closing ')' of the shift tuple.
	Span source.Span
}

type Result struct {
	Lines []Line
	// OK is false when parsing stopped at a syntax error.
	OK bool
}

// Parser — состояние парсера на один файл
type Parser struct {
	lx       *lexer.Lexer
	file     *source.File
	opts     Options
	lastSpan source.Span // span последнего съеденного токена для лучшей диагностики
	failed   bool
}

// ParseFile — входная точка для разбора одного файла. Разбор останавливается
// на первой ошибке: дальнейшие строки не имеют смысла для семантики.
func ParseFile(file *source.File, lx *lexer.Lexer, opts Options) Result {
	p := Parser{
		lx:       lx,
		file:     file,
		opts:     opts,
		lastSpan: source.Span{File: file.ID},
	}
	lines := p.parseProgram()
	return Result{Lines: lines, OK: !p.failed}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

// parseProgram — transition* EOF
func (p *Parser) parseProgram() []Line {
	lines := make([]Line, 0, 16)
	for !p.at(token.EOF) {
		line, ok := p.parseTransition()
		if !ok {
			return lines
		}
		lines = append(lines, line)
	}
	return lines
}

// parseTransition — state tuple(symbol) state tuple(symbol) tuple(direction)
func (p *Parser) parseTransition() (Line, bool) {
	current, ok := p.parseState("expected current state")
	if !ok {
		return Line{}, false
	}
	reads, ok := p.parseTuple(p.parseSymbol, "read")
	if !ok {
		return Line{}, false
	}
	next, ok := p.parseState("expected next state")
	if !ok {
		return Line{}, false
	}
	writes, ok := p.parseTuple(p.parseSymbol, "write")
	if !ok {
		return Line{}, false
	}
	shifts, ok := p.parseTuple(p.parseDirection, "shift")
	if !ok {
		return Line{}, false
	}
	return Line{
		Current: current,
		Next:    next,
		Reads:   reads,
		Writes:  writes,
		Shifts:  shifts,
		Line:    p.file.Position(current.Span.Start).Line,
		Span:    current.Span.Cover(p.lastSpan),
	}, true
}

// parseState принимает идентификатор или ключевое слово.
func (p *Parser) parseState(msg string) (token.Token, bool) {
	if p.lx.Peek().CanBeState() {
		return p.advance(), true
	}
	p.err(diag.SynExpectState, msg+", found "+describe(p.lx.Peek()))
	return token.Token{}, false
}

// parseSymbol — $var | BLANK | * | одна буква/цифра.
func (p *Parser) parseSymbol() (token.Token, bool) {
	tok := p.lx.Peek()
	switch tok.Kind {
	case token.Variable, token.KwBlank, token.Star:
		return p.advance(), true
	case token.Ident:
		if isTapeCharacter(tok.Text) {
			return p.advance(), true
		}
	}
	p.err(diag.SynExpectTapeSymbol, "expected tape symbol, found "+describe(tok))
	return token.Token{}, false
}

func (p *Parser) parseDirection() (token.Token, bool) {
	if p.lx.Peek().IsDirection() {
		return p.advance(), true
	}
	p.err(diag.SynExpectDirection, "expected LEFT, RIGHT or STAY, found "+describe(p.lx.Peek()))
	return token.Token{}, false
}

// parseTuple — '(' [ elem { ',' elem } ] ')'
func (p *Parser) parseTuple(elem func() (token.Token, bool), what string) ([]token.Token, bool) {
	open, ok := p.expect(token.LParen, diag.SynExpectTuple, "expected '(' to open the "+what+" tuple, found "+describe(p.lx.Peek()))
	if !ok {
		return nil, false
	}
	items := make([]token.Token, 0, 2)
	if p.at(token.RParen) {
		p.advance()
		return items, true
	}
	for {
		tok, ok := elem()
		if !ok {
			return nil, false
		}
		items = append(items, tok)
		switch {
		case p.at(token.Comma):
			p.advance()
		case p.at(token.RParen):
			p.advance()
			return items, true
		default:
			p.reportWithNote(diag.SynUnclosedParen, p.getDiagnosticSpan(),
				"expected ',' or ')' in "+what+" tuple, found "+describe(p.lx.Peek()),
				open.Span, "tuple opened here")
			return nil, false
		}
	}
}
