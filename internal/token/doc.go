// Package token defines lexical token kinds and trivia for Varphi programs.
// Invariants:
//   - Token.Text is a slice of the original source (no copies).
//   - Token.Span matches Text exactly (Begin..End).
//   - Comments and whitespace are leading Trivia and never appear in the
//     main token stream.
//   - Tape symbols ('a', '0', ...) are identifiers of a single rune.
//     They are recognized by the semantic layer, not the lexer.
package token
