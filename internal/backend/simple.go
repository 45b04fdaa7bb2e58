package backend

import (
	"slices"
	"strconv"
	"strings"

	"varphi/internal/machine"
)

// LineCounter counts transitions.
type LineCounter struct {
	n int
}

func (c *LineCounter) Reset()                          { c.n = 0 }
func (c *LineCounter) OnTransition(machine.Transition) { c.n++ }

func (c *LineCounter) Finalize() (Artifact, error) {
	return []byte(strconv.Itoa(c.n)), nil
}

// EmptyChecker reports whether the program has any transition at all.
type EmptyChecker struct {
	seen bool
}

func (e *EmptyChecker) Reset()                          { e.seen = false }
func (e *EmptyChecker) OnTransition(machine.Transition) { e.seen = true }

func (e *EmptyChecker) Finalize() (Artifact, error) {
	if e.seen {
		return []byte("NOT EMPTY"), nil
	}
	return []byte("EMPTY"), nil
}

// StateLister collects every state name used as a current or next state.
type StateLister struct {
	states map[string]struct{}
}

func (l *StateLister) Reset() { l.states = make(map[string]struct{}) }

func (l *StateLister) OnTransition(t machine.Transition) {
	if l.states == nil {
		l.Reset()
	}
	l.states[t.CurrentState()] = struct{}{}
	l.states[t.NextState()] = struct{}{}
}

func (l *StateLister) Finalize() (Artifact, error) {
	names := make([]string, 0, len(l.states))
	for s := range l.states {
		names = append(names, s)
	}
	slices.Sort(names)
	return []byte(strings.Join(names, ", ")), nil
}
