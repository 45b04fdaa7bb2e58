package compiler

import (
	"fmt"

	"varphi/internal/diag"
	"varphi/internal/diagfmt"
	"varphi/internal/source"
)

// Error is a problem in the user's program. It keeps the diagnostic, the
// source it points into and the typed cause, if any.
//
// Lex and syntax errors have no typed cause; semantic errors unwrap to the
// sema error (*sema.GlobalArityError and friends).
type Error struct {
	Diag diag.Diagnostic
	// File is the snapshot the diagnostic spans refer to; nil for I/O errors.
	File  *source.File
	cause error
}

func (e *Error) Error() string {
	return e.Diag.Code.ID() + ": " + e.Diag.Message
}

func (e *Error) Unwrap() error { return e.cause }

// Diagnostic makes *Error a diag.Diagnosable.
func (e *Error) Diagnostic() diag.Diagnostic { return e.Diag }

// Snippet anchors the diagnostic in the source snapshot. path is shown on the
// location row when not empty.
func (e *Error) Snippet(path string) diagfmt.Snippet {
	s := diagfmt.SnippetFor(e.Diag, e.File)
	s.Path = path
	return s
}

// Render formats the error against its source line.
func (e *Error) Render(opts diagfmt.RenderOpts) string {
	return diagfmt.Format(e.Snippet(""), opts)
}

// LoadError reports a source file that could not be read.
func LoadError(path string, err error) *Error {
	d := diag.NewError(diag.IOLoadFileError, source.Span{}, fmt.Sprintf("cannot read %s: %v", path, err))
	return &Error{Diag: d, cause: err}
}

var _ diag.Diagnosable = (*Error)(nil)
