package extract

import (
	"strconv"
	"unicode"

	"midosis/internal/lexicon"
	"midosis/pkg/dosistypes"
)

// Dosage extracts "<amount> <unit>" where the unit belongs to the closed
// unit vocabulary. Joined forms ("500mg") are accepted. Count units
// (tableta, cápsula) remain counts and are never converted to mass.
func Dosage(text string, lex *lexicon.Lexicon) (dosistypes.Dosage, Span, bool) {
	tokens := tokenize(text)
	for i, tok := range tokens {
		// Joined amount+unit in one token.
		if amount, unitTok, ok := splitJoined(tok.Text); ok {
			if unit, known := lex.CanonicalUnit(unitTok); known {
				return dosistypes.Dosage{Amount: amount, Unit: unit}, spanOf(tok.Start, tok.End), true
			}
		}
		if !isDigits(tok.Text) || i+1 >= len(tokens) {
			continue
		}
		amount, err := strconv.Atoi(tok.Text)
		if err != nil || amount <= 0 {
			continue
		}
		if unit, known := lex.CanonicalUnit(tokens[i+1].Text); known {
			return dosistypes.Dosage{Amount: amount, Unit: unit}, spanOf(tok.Start, tokens[i+1].End), true
		}
	}
	return dosistypes.Dosage{}, Span{}, false
}

// splitJoined splits "500mg" into amount and unit token.
func splitJoined(token string) (int, string, bool) {
	split := -1
	for i, r := range token {
		if !unicode.IsDigit(r) {
			split = i
			break
		}
	}
	if split <= 0 || split == len(token) {
		return 0, "", false
	}
	amount, err := strconv.Atoi(token[:split])
	if err != nil || amount <= 0 {
		return 0, "", false
	}
	return amount, token[split:], true
}
