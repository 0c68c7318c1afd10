package extract

import (
	"midosis/internal/lexicon"
	"midosis/internal/stringprocessing"
)

var frequencyIntervalUnits = map[string]bool{
	"hora": true, "horas": true, "hrs": true, "h": true,
	"día": true, "días": true, "dia": true, "dias": true,
}

// Frequency locates a frequency expression and returns its surface form.
// Numeric "cada N horas" / "cada N días" patterns take priority; worded
// phrasings ("dos veces al día", "diario") come from the lexicon table.
// Canonicalization happens separately in the canon package.
func Frequency(text string, lex *lexicon.Lexicon) (string, Span, bool) {
	tokens := tokenize(text)
	for i := 0; i+2 < len(tokens); i++ {
		if tokens[i].Text != "cada" {
			continue
		}
		if _, ok := parseNumber(tokens[i+1].Text, lex); !ok {
			continue
		}
		if !frequencyIntervalUnits[tokens[i+2].Text] {
			continue
		}
		start, end := tokens[i].Start, tokens[i+2].End
		return text[start:end], spanOf(start, end), true
	}

	for _, entry := range lex.Frequencies {
		if start, end, ok := stringprocessing.FindPhrase(text, entry.Phrase); ok {
			return text[start:end], spanOf(start, end), true
		}
	}
	return "", Span{}, false
}
