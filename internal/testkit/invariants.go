// Package testkit holds checks shared by tests and fuzz harnesses.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"varphi/internal/parser"
	"varphi/internal/source"
	"varphi/internal/token"
)

// CheckSpanInvariants runs a minimal set of span invariants on parsed lines:
// 1) every line span is non-empty, points into sf and stays within its content
// 2) every token of a line lies inside the line span
// 3) lines appear in source order and never overlap
// 4) Line matches the 1-based line of the current-state token
func CheckSpanInvariants(res parser.Result, sf *source.File) error {
	if sf == nil {
		return fmt.Errorf("nil file")
	}
	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}

	var prevEnd uint32
	for i, ln := range res.Lines {
		sp := ln.Span
		if sp.File != sf.ID {
			return fmt.Errorf("line %d: span points to file %d, want %d", i, sp.File, sf.ID)
		}
		if sp.End <= sp.Start {
			return fmt.Errorf("line %d: empty span %v", i, sp)
		}
		if sp.End > lenContent {
			return fmt.Errorf("line %d: span end beyond content: %d > %d", i, sp.End, lenContent)
		}
		if sp.Start < prevEnd {
			return fmt.Errorf("line %d: span %v overlaps previous line ending at %d", i, sp, prevEnd)
		}
		prevEnd = sp.End

		if err := within(sp, ln.Current, ln.Next); err != nil {
			return fmt.Errorf("line %d: %w", i, err)
		}
		for _, group := range [][]token.Token{ln.Reads, ln.Writes, ln.Shifts} {
			if err := within(sp, group...); err != nil {
				return fmt.Errorf("line %d: %w", i, err)
			}
		}
		if want := sf.Position(ln.Current.Span.Start).Line; ln.Line != want {
			return fmt.Errorf("line %d: Line=%d, current state starts on line %d", i, ln.Line, want)
		}
	}
	return nil
}

func within(outer source.Span, toks ...token.Token) error {
	for _, tok := range toks {
		if tok.Span.Start < outer.Start || tok.Span.End > outer.End {
			return fmt.Errorf("token %q at %v outside %v", tok.Text, tok.Span, outer)
		}
	}
	return nil
}
