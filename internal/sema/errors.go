package sema

import (
	"errors"
	"fmt"

	"varphi/internal/diag"
	"varphi/internal/source"
	"varphi/internal/token"
)

// ErrInternal marks failures caused by a defect in the tool itself.
var ErrInternal = errors.New("internal compiler error")

// ClassificationError reports a token the resolver has no mapping for.
type ClassificationError struct {
	Token token.Token
	// Want is what the token was supposed to be: "tape symbol" or "direction".
	Want string
}

func (e *ClassificationError) Error() string {
	return fmt.Sprintf("%s: cannot classify %s token %q as %s", ErrInternal, e.Token.Kind, e.Token.Text, e.Want)
}

func (e *ClassificationError) Unwrap() error { return ErrInternal }

// LocalArityError: one line's read, write and shift tuples disagree.
type LocalArityError struct {
	Span  source.Span
	Read  int
	Write int
	Shift int
}

func (e *LocalArityError) Error() string {
	return fmt.Sprintf("local tape count mismatch: read %d symbols, but wrote %d and shifted %d", e.Read, e.Write, e.Shift)
}

func (e *LocalArityError) Diagnostic() diag.Diagnostic {
	return diag.NewError(diag.SemaLocalArity, e.Span, e.Error())
}

// GlobalArityError: a line disagrees with the tape count of the first one.
type GlobalArityError struct {
	Span     source.Span
	Expected int
	Actual   int
	// Established points at the line that fixed the tape count.
	Established source.Span
}

func (e *GlobalArityError) Error() string {
	return fmt.Sprintf("global tape count mismatch: previous transitions used %d tapes, but this one uses %d", e.Expected, e.Actual)
}

func (e *GlobalArityError) Diagnostic() diag.Diagnostic {
	d := diag.NewError(diag.SemaGlobalArity, e.Span, e.Error())
	if !e.Established.Empty() {
		d = d.WithNote(e.Established, fmt.Sprintf("tape count %d established here", e.Expected))
	}
	return d
}

// UndefinedVariableError: a write tuple names a variable the read tuple
// never bound.
type UndefinedVariableError struct {
	Span source.Span
	// Name excludes the leading '$'.
	Name string
	// WriteIndex is the position of the variable inside the write tuple.
	WriteIndex int
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("undefined variable '$%s': used in the write tuple but not defined in the read tuple", e.Name)
}

func (e *UndefinedVariableError) Diagnostic() diag.Diagnostic {
	return diag.NewError(diag.SemaUndefinedVariable, e.Span, e.Error())
}

var (
	_ diag.Diagnosable = (*LocalArityError)(nil)
	_ diag.Diagnosable = (*GlobalArityError)(nil)
	_ diag.Diagnosable = (*UndefinedVariableError)(nil)
)
