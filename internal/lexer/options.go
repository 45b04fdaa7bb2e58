package lexer

import (
	"varphi/internal/diag"
	"varphi/internal/source"
)

// MaxTokenLength bounds a single word or variable, in bytes.
const MaxTokenLength = 4096

type Options struct {
	Reporter diag.Reporter // может быть nil — тогда ошибки игнорируем (но продолжаем лексить)
}

func (lx *Lexer) errLex(code diag.Code, sp source.Span, msg string) {
	if lx.opts.Reporter != nil {
		diag.ReportError(lx.opts.Reporter, code, sp, msg).Emit()
	}
}
