package compiler

import "varphi/internal/machine"

// Backend receives the validated transitions of one run.
//
// Reset is called at the start of every run and must drop whatever the
// previous run accumulated. OnTransition is called once per transition, in
// source order. Finalize is called exactly once after the last transition,
// also for programs without transitions.
type Backend[T any] interface {
	Reset()
	OnTransition(t machine.Transition)
	Finalize() (T, error)
}
