// Package sema turns parsed transition lines into validated machine
// transitions.
//
// A Session carries the only cross-line state of a compile run: the tape
// count established by the first accepted transition. Everything else
// (symbol resolution, local arity, variable canonicalization) is scoped to a
// single line. The first violation ends the run; Build never skips a line.
//
// User mistakes are reported as *LocalArityError, *GlobalArityError and
// *UndefinedVariableError, all diag.Diagnosable. A token the resolver cannot
// classify is a *ClassificationError wrapping ErrInternal: that is a parser
// defect, not a problem in the program.
package sema
