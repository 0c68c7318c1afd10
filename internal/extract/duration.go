package extract

import (
	"midosis/internal/lexicon"
)

var durationPrepositions = map[string]bool{
	"por": true, "durante": true, "para": true,
}

var durationUnits = map[string]bool{
	"día": true, "días": true, "dia": true, "dias": true,
	"semana": true, "semanas": true,
	"mes": true, "meses": true,
}

// Duration locates a treatment-length expression such as "por 14 días" or
// "durante dos semanas" and returns its surface form. Conversion to days
// happens in the canon package.
func Duration(text string, lex *lexicon.Lexicon) (string, Span, bool) {
	tokens := tokenize(text)
	for i := 0; i+2 < len(tokens); i++ {
		if !durationPrepositions[tokens[i].Text] {
			continue
		}
		if _, ok := parseNumber(tokens[i+1].Text, lex); !ok {
			continue
		}
		if !durationUnits[tokens[i+2].Text] {
			continue
		}
		start, end := tokens[i].Start, tokens[i+2].End
		return text[start:end], spanOf(start, end), true
	}
	return "", Span{}, false
}
