// Package diag defines the diagnostic model shared by the scanner, the
// parser and the semantic core.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – tri-level enum (Info, Warning, Error) defined in severity.go.
//   - Code – compact numeric identifier (see codes.go) with stable string form.
//   - Message – human oriented text; keep it short and actionable.
//   - Primary span – the canonical source.Span pointing to the issue.
//   - Notes – optional secondary spans/messages for additional context.
//
// # Emitting diagnostics
//
// The scanner and the parser emit through a diag.Reporter, usually a
// BagReporter over a Bag bounded to a single entry: compilation stops at the
// first problem. The semantic core returns typed errors instead; each of
// them implements Diagnosable so that callers can recover the Diagnostic
// with AsDiagnostic.
//
// Package diag does not perform any formatting beyond the one-line short
// form. Rendering lives in internal/diagfmt.
package diag
