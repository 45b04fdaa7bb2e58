package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Ident represents a state name or a literal tape symbol.
	Ident
	// Variable represents a '$name' tape variable.
	Variable
	// KwBlank represents the 'BLANK' keyword.
	KwBlank // BLANK
	// KwLeft represents the 'LEFT' keyword.
	KwLeft // LEFT
	// KwRight represents the 'RIGHT' keyword.
	KwRight // RIGHT
	// KwStay represents the 'STAY' keyword.
	KwStay // STAY

	Star   // *
	LParen // (
	RParen // )
	Comma  // ,
)

var kindNames = [...]string{
	Invalid:  "Invalid",
	EOF:      "EOF",
	Ident:    "Ident",
	Variable: "Variable",
	KwBlank:  "KwBlank",
	KwLeft:   "KwLeft",
	KwRight:  "KwRight",
	KwStay:   "KwStay",
	Star:     "Star",
	LParen:   "LParen",
	RParen:   "RParen",
	Comma:    "Comma",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}
