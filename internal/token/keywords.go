package token

var keywords = map[string]Kind{
	"BLANK": KwBlank,
	"LEFT":  KwLeft,
	"RIGHT": KwRight,
	"STAY":  KwStay,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистрозависимые — распознаются только uppercase версии.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
