package canon

import (
	"fmt"
	"strconv"
	"strings"

	"midosis/internal/lexicon"
	"midosis/internal/stringprocessing"
	"midosis/pkg/dosistypes"
)

// Frequency converts a frequency surface form into the canonical vocabulary.
// Numeric intervals collapse where they coincide with a coarser kind:
// "cada 24 horas" is daily, "cada 7 días" is weekly, so equivalent phrasings
// ("tres veces al día" / "cada 8 horas") share one canonical value.
func Frequency(surface string, lex *lexicon.Lexicon) (dosistypes.Frequency, error) {
	s := stringprocessing.Normalize(surface)
	if s == "" {
		return dosistypes.Frequency{}, ErrNoMatch
	}

	tokens := stringprocessing.Tokenize(s)
	if len(tokens) >= 3 && tokens[0].Text == "cada" {
		n, ok := parseAmount(tokens[1].Text, lex)
		if !ok {
			return dosistypes.Frequency{}, fmt.Errorf("interval %q: %w", tokens[1].Text, ErrNoMatch)
		}
		unit := tokens[2].Text
		switch {
		case strings.HasPrefix(unit, "hora") || unit == "hrs" || unit == "h":
			if n <= 0 || n > 24 {
				return dosistypes.Frequency{}, fmt.Errorf("every %d hours: %w", n, ErrOutOfRange)
			}
			if n == 24 {
				return dosistypes.Daily(), nil
			}
			return dosistypes.EveryNHours(n), nil
		case strings.HasPrefix(unit, "día") || strings.HasPrefix(unit, "dia"):
			switch {
			case n == 1:
				return dosistypes.Daily(), nil
			case n == 7:
				return dosistypes.Weekly(), nil
			case n > 0:
				return dosistypes.EveryNHours(n * 24), nil
			default:
				return dosistypes.Frequency{}, fmt.Errorf("every %d days: %w", n, ErrOutOfRange)
			}
		}
	}

	for _, entry := range lex.Frequencies {
		if entry.Phrase == s {
			return entry.Canonical, nil
		}
	}
	return dosistypes.Frequency{}, ErrNoMatch
}

func parseAmount(token string, lex *lexicon.Lexicon) (int, bool) {
	if n, err := strconv.Atoi(token); err == nil {
		return n, true
	}
	return lex.NumberWord(token)
}
