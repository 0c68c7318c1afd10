package extract

import (
	"strings"

	"midosis/internal/lexicon"
	"midosis/internal/stringprocessing"
)

// TimeOfDay locates the time-of-day expression and returns its surface form.
// Candidates are tried in the canonicalizer's priority order: clock literal,
// "a las <h>" with qualifier, bare "<h> horas", hour plus daypart, named
// instants, and finally a daypart phrase with no hour at all.
func TimeOfDay(text string, lex *lexicon.Lexicon) (string, Span, bool) {
	tokens := tokenize(text)

	// Clock literal, e.g. "8:30" or "08:30 de la mañana".
	for i, tok := range tokens {
		if strings.Contains(tok.Text, ":") {
			end := extendTimeQualifier(tokens, i, lex)
			return text[tok.Start:end], spanOf(tok.Start, end), true
		}
	}

	// "a las 8", "a la 1", plus optional qualifier or trailing "horas".
	for i := 0; i+2 < len(tokens); i++ {
		if tokens[i].Text != "a" || (tokens[i+1].Text != "las" && tokens[i+1].Text != "la") {
			continue
		}
		if !isDigits(tokens[i+2].Text) {
			continue
		}
		end := extendTimeQualifier(tokens, i+2, lex)
		return text[tokens[i+2].Start:end], spanOf(tokens[i+2].Start, end), true
	}

	// Bare "<h> horas" or "<h> am/pm/daypart". An interval like
	// "cada 12 horas" belongs to the frequency slot, not here.
	for i, tok := range tokens {
		if !isDigits(tok.Text) {
			continue
		}
		if i > 0 && tokens[i-1].Text == "cada" {
			continue
		}
		end := extendTimeQualifier(tokens, i, lex)
		if end > tok.End {
			return text[tok.Start:end], spanOf(tok.Start, end), true
		}
	}

	// Named instants: "mediodía", "después del desayuno", ...
	for _, phrase := range lex.NamedTimePhrases() {
		if start, end, ok := stringprocessing.FindPhrase(text, phrase); ok {
			return text[start:end], spanOf(start, end), true
		}
	}

	// Daypart with no hour: "en la noche", "por la mañana".
	for i := 0; i+2 < len(tokens); i++ {
		switch tokens[i].Text {
		case "en", "por", "de":
		default:
			continue
		}
		if tokens[i+1].Text != "la" {
			continue
		}
		if _, ok := lex.DaypartClass(tokens[i+2].Text); ok {
			start, end := tokens[i].Start, tokens[i+2].End
			return text[start:end], spanOf(start, end), true
		}
	}

	return "", Span{}, false
}

// extendTimeQualifier returns the byte offset just past any qualifier
// attached to the hour token at index i: "horas", a bare daypart ("8 am"),
// or a "de/en/por la <daypart>" phrase.
func extendTimeQualifier(tokens []stringprocessing.Token, i int, lex *lexicon.Lexicon) int {
	end := tokens[i].End
	if i+1 < len(tokens) {
		next := tokens[i+1].Text
		if next == "horas" || next == "hrs" {
			return tokens[i+1].End
		}
		if _, ok := lex.DaypartClass(next); ok {
			return tokens[i+1].End
		}
		if (next == "de" || next == "en" || next == "por") && i+3 < len(tokens) && tokens[i+2].Text == "la" {
			if _, ok := lex.DaypartClass(tokens[i+3].Text); ok {
				return tokens[i+3].End
			}
		}
	}
	return end
}
