package canon

import (
	"fmt"
	"strconv"
	"strings"

	"midosis/internal/lexicon"
	"midosis/internal/stringprocessing"
	"midosis/pkg/dosistypes"
)

// Representative clock times for daypart phrases that carry no hour
// ("en la noche").
var daypartTimes = map[lexicon.PeriodClass]dosistypes.ClockTime{
	lexicon.Morning:   {Hour: 8},
	lexicon.Afternoon: {Hour: 16},
	lexicon.Evening:   {Hour: 20},
}

// Time converts a time-of-day surface form into a canonical 24-hour clock
// time. Accepted forms, in priority order: "HH:MM" literal (with optional
// daypart qualifier), "<hour> <qualifier>", bare "<hour> horas", named
// instants from the lexicon, and a bare daypart phrase. Hour 12 with a
// morning qualifier wraps to 0; hours below 12 with an afternoon or evening
// qualifier shift to the second half of the day.
func Time(surface string, lex *lexicon.Lexicon) (dosistypes.ClockTime, error) {
	s := stringprocessing.Normalize(surface)
	if s == "" {
		return dosistypes.ClockTime{}, ErrNoMatch
	}
	if ct, ok := lex.NamedTime(s); ok {
		return ct, nil
	}

	hour, minute := -1, 0
	var class lexicon.PeriodClass
	hasClass := false

	for _, tok := range stringprocessing.Tokenize(s) {
		switch {
		case strings.Contains(tok.Text, ":") && hour < 0:
			parts := strings.SplitN(tok.Text, ":", 2)
			h, err1 := strconv.Atoi(parts[0])
			m, err2 := strconv.Atoi(parts[1])
			if err1 != nil || err2 != nil {
				return dosistypes.ClockTime{}, fmt.Errorf("clock literal %q: %w", tok.Text, ErrNoMatch)
			}
			hour, minute = h, m
		case isAllDigits(tok.Text) && hour < 0:
			h, err := strconv.Atoi(tok.Text)
			if err != nil {
				return dosistypes.ClockTime{}, fmt.Errorf("hour %q: %w", tok.Text, ErrNoMatch)
			}
			hour = h
		default:
			if c, ok := lex.DaypartClass(tok.Text); ok && !hasClass {
				class = c
				hasClass = true
			}
		}
	}

	if hour < 0 {
		if hasClass {
			return daypartTimes[class], nil
		}
		return dosistypes.ClockTime{}, ErrNoMatch
	}
	if minute < 0 || minute > 59 {
		return dosistypes.ClockTime{}, fmt.Errorf("minute %d: %w", minute, ErrOutOfRange)
	}

	if hasClass {
		switch class {
		case lexicon.Morning:
			if hour == 12 {
				hour = 0
			}
		case lexicon.Afternoon, lexicon.Evening:
			if hour < 12 {
				hour += 12
			}
		}
	}
	if hour > 23 {
		return dosistypes.ClockTime{}, fmt.Errorf("hour %d: %w", hour, ErrOutOfRange)
	}

	return dosistypes.ClockTime{Hour: hour, Minute: minute}, nil
}

func isAllDigits(s string) bool {
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
