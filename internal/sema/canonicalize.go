package sema

import "varphi/internal/machine"

// Canonicalize renumbers the variables of one transition. Reads are walked
// first: each new name gets the next index starting at 1, repeated names
// share it. Writes may only use names bound by the reads; the first one that
// does not yields *UndefinedVariableError with WriteIndex set and Span left
// for the caller to fill. Inputs are not modified.
func Canonicalize(reads, writes []machine.Symbol) ([]machine.Symbol, []machine.Symbol, error) {
	mapping := make(map[string]int, len(reads))
	next := 1

	outReads := make([]machine.Symbol, len(reads))
	for i, sym := range reads {
		name, ok := sym.Name()
		if !ok {
			outReads[i] = sym
			continue
		}
		idx, seen := mapping[name]
		if !seen {
			idx = next
			mapping[name] = idx
			next++
		}
		outReads[i] = machine.Canonical(idx)
	}

	outWrites := make([]machine.Symbol, len(writes))
	for i, sym := range writes {
		name, ok := sym.Name()
		if !ok {
			outWrites[i] = sym
			continue
		}
		idx, bound := mapping[name]
		if !bound {
			return nil, nil, &UndefinedVariableError{Name: name, WriteIndex: i}
		}
		outWrites[i] = machine.Canonical(idx)
	}
	return outReads, outWrites, nil
}
