package diag

import (
	"errors"

	"varphi/internal/source"
)

type Note struct {
	Span source.Span
	Msg  string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Notes    []Note
}

func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Primary:  primary,
		Message:  msg,
	}
}

func NewError(code Code, primary source.Span, msg string) Diagnostic {
	return New(SevError, code, primary, msg)
}

func (d Diagnostic) WithNote(sp source.Span, msg string) Diagnostic {
	d.Notes = append(d.Notes, Note{Span: sp, Msg: msg})
	return d
}

// Diagnosable is implemented by errors that describe a problem in the user's
// program rather than a defect of the tool.
type Diagnosable interface {
	error
	Diagnostic() Diagnostic
}

// AsDiagnostic finds the first Diagnosable in err's chain.
func AsDiagnostic(err error) (Diagnostic, bool) {
	var d Diagnosable
	if errors.As(err, &d) {
		return d.Diagnostic(), true
	}
	return Diagnostic{}, false
}
