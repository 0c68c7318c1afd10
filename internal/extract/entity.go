package extract

import (
	"unicode/utf8"

	"midosis/internal/lexicon"
	"midosis/internal/stringprocessing"
)

// articles that may sit between a trigger word and the medication name
// ("agregar el paracetamol").
var entityArticles = map[string]bool{
	"el": true, "la": true, "los": true, "las": true,
	"un": true, "una": true, "mi": true, "mis": true,
	"de": true, "del": true,
}

// Entity extracts the medication name. The curated lexicon is consulted
// first (longest alias wins); when nothing matches, a morphological fallback
// takes the word following a trigger ("pastilla de equisina" -> "Equisina").
// The returned name is title-cased.
func Entity(text string, lex *lexicon.Lexicon) (string, Span, bool) {
	if name, alias, ok := lex.LookupEntity(text); ok {
		start, end, _ := stringprocessing.FindPhrase(text, alias)
		return name, spanOf(start, end), true
	}
	return fallbackEntity(text, lex)
}

func fallbackEntity(text string, lex *lexicon.Lexicon) (string, Span, bool) {
	tokens := tokenize(text)
	triggers := make(map[string]bool, len(lex.EntityTriggers))
	for _, t := range lex.EntityTriggers {
		triggers[t] = true
	}

	for i, tok := range tokens {
		if !triggers[tok.Text] {
			continue
		}
		for j := i + 1; j < len(tokens); j++ {
			cand := tokens[j]
			if entityArticles[cand.Text] {
				continue
			}
			if validEntityCandidate(cand.Text, lex) {
				return stringprocessing.TitleCase(cand.Text), spanOf(cand.Start, cand.End), true
			}
			break
		}
	}
	return "", Span{}, false
}

func validEntityCandidate(word string, lex *lexicon.Lexicon) bool {
	if utf8.RuneCountInString(word) < 3 {
		return false
	}
	if isDigits(word) || lex.IsStopword(word) || lex.IsQuantityUnit(word) {
		return false
	}
	if _, ok := lex.CanonicalUnit(word); ok {
		return false
	}
	if _, ok := lex.DaypartClass(word); ok {
		return false
	}
	return true
}
