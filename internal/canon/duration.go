package canon

import (
	"fmt"
	"strings"

	"midosis/internal/lexicon"
	"midosis/internal/stringprocessing"
)

// Duration converts a treatment-length surface form ("por 14 días",
// "durante dos semanas") into a day count, using week=7 and month=30.
// Absolute end dates are out of scope here and yield ErrNoMatch.
func Duration(surface string, lex *lexicon.Lexicon) (int, error) {
	s := stringprocessing.Normalize(surface)
	if s == "" {
		return 0, ErrNoMatch
	}

	amount := 0
	mult := 0
	for _, tok := range stringprocessing.Tokenize(s) {
		if n, ok := parseAmount(tok.Text, lex); ok && amount == 0 {
			amount = n
			continue
		}
		switch {
		case strings.HasPrefix(tok.Text, "día") || strings.HasPrefix(tok.Text, "dia"):
			mult = 1
		case strings.HasPrefix(tok.Text, "semana"):
			mult = 7
		case strings.HasPrefix(tok.Text, "mes"):
			mult = 30
		}
	}

	if amount == 0 || mult == 0 {
		return 0, ErrNoMatch
	}
	if amount < 0 {
		return 0, fmt.Errorf("duration %d: %w", amount, ErrOutOfRange)
	}
	return amount * mult, nil
}
