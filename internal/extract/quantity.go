package extract

import (
	"midosis/internal/lexicon"
)

// Quantity extracts a package-count phrase ("2 cajas", "un frasco") as free
// text. The value is not semantically validated; the scheduler treats it as
// an opaque note.
func Quantity(text string, lex *lexicon.Lexicon) (string, Span, bool) {
	tokens := tokenize(text)
	for i := 0; i+1 < len(tokens); i++ {
		if _, ok := parseNumber(tokens[i].Text, lex); !ok {
			continue
		}
		if !lex.IsQuantityUnit(tokens[i+1].Text) {
			continue
		}
		start, end := tokens[i].Start, tokens[i+1].End
		return text[start:end], spanOf(start, end), true
	}
	return "", Span{}, false
}
