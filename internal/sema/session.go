package sema

import (
	"errors"

	"varphi/internal/machine"
	"varphi/internal/parser"
	"varphi/internal/source"
)

// State is the arity-tracking state of a Session.
type State uint8

const (
	// Idle: no transition accepted yet, tape count unknown.
	Idle State = iota
	// Established: the tape count is fixed for the rest of the run.
	Established
)

func (s State) String() string {
	if s == Established {
		return "established"
	}
	return "idle"
}

// Session validates the lines of one compile run. Create a new Session per
// run; a Session is not safe for concurrent use.
type Session struct {
	expected    int
	established bool
	origin      source.Span
}

func NewSession() *Session {
	return &Session{}
}

// State reports whether the tape count has been fixed.
func (s *Session) State() State {
	if s.established {
		return Established
	}
	return Idle
}

// Expected returns the established tape count; ok is false while Idle.
func (s *Session) Expected() (n int, ok bool) {
	return s.expected, s.established
}

// Build validates one line and returns its transition.
// Checks run in order: resolution, local arity, global arity, canonicalization.
// A line rejected by the local check never touches the session.
func (s *Session) Build(line parser.Line) (machine.Transition, error) {
	reads, err := resolveSymbols(line.Reads)
	if err != nil {
		return machine.Transition{}, err
	}
	writes, err := resolveSymbols(line.Writes)
	if err != nil {
		return machine.Transition{}, err
	}
	shifts, err := resolveDirections(line.Shifts)
	if err != nil {
		return machine.Transition{}, err
	}

	if len(writes) != len(reads) || len(shifts) != len(reads) {
		return machine.Transition{}, &LocalArityError{
			Span:  line.Current.Span,
			Read:  len(reads),
			Write: len(writes),
			Shift: len(shifts),
		}
	}

	arity := len(reads)
	if !s.established {
		s.expected = arity
		s.established = true
		s.origin = line.Current.Span
	} else if arity != s.expected {
		return machine.Transition{}, &GlobalArityError{
			Span:        line.Current.Span,
			Expected:    s.expected,
			Actual:      arity,
			Established: s.origin,
		}
	}

	reads, writes, err = Canonicalize(reads, writes)
	if err != nil {
		var undef *UndefinedVariableError
		if errors.As(err, &undef) {
			undef.Span = line.Writes[undef.WriteIndex].Span
		}
		return machine.Transition{}, err
	}

	return machine.NewTransition(line.Current.Text, reads, line.Next.Text, writes, shifts, line.Line), nil
}
