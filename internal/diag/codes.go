package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedBlockComment Code = 1003
	LexBadVariable              Code = 1004
	LexTokenTooLong             Code = 1005

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnclosedParen    Code = 2002
	SynExpectState      Code = 2003
	SynExpectDirection  Code = 2004
	SynExpectTapeSymbol Code = 2005
	SynExpectTuple      Code = 2006

	// Семантические
	SemaInfo              Code = 3000
	SemaLocalArity        Code = 3001
	SemaGlobalArity       Code = 3002
	SemaUndefinedVariable Code = 3003

	// I/O
	IOLoadFileError Code = 4001
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadVariable:              "Malformed variable",
	LexTokenTooLong:             "Token is too long",
	SynInfo:                     "Syntax information",
	SynUnexpectedToken:          "Unexpected token",
	SynUnclosedParen:            "Unclosed parenthesis",
	SynExpectState:              "Expected state name",
	SynExpectDirection:          "Expected head direction",
	SynExpectTapeSymbol:         "Expected tape symbol",
	SynExpectTuple:              "Expected tuple",
	SemaInfo:                    "Semantic information",
	SemaLocalArity:              "Local tape count mismatch",
	SemaGlobalArity:             "Global tape count mismatch",
	SemaUndefinedVariable:       "Undefined variable",
	IOLoadFileError:             "I/O error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
