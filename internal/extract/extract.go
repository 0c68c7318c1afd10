// Package extract implements the per-slot extractors of the command
// interpreter. Every extractor is a pure function over normalized text and
// the lexicon: it returns the raw matched surface form plus its span, or
// reports no match. Extractors never consume text from each other, so
// overlapping matches between slots are fine.
package extract

import (
	"strconv"

	"midosis/internal/lexicon"
	"midosis/internal/stringprocessing"
)

// Span is the byte range of a match in the normalized text, kept for
// diagnostics.
type Span struct {
	Start int
	End   int
}

func spanOf(start, end int) Span { return Span{Start: start, End: end} }

// parseNumber resolves a token to a positive integer, accepting digits and
// the lexicon's spelled-out number words.
func parseNumber(token string, lex *lexicon.Lexicon) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil && n > 0 {
		return n, true
	}
	if n, ok := lex.NumberWord(token); ok {
		return n, true
	}
	return 0, false
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func tokenize(text string) []stringprocessing.Token {
	return stringprocessing.Tokenize(text)
}
