package dosistypes

import "time"

// NextOccurrence returns the first time at or after now matching the clock
// time t. Used by scheduling collaborators to anchor a reminder series.
func NextOccurrence(t ClockTime, now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), t.Hour, t.Minute, 0, 0, now.Location())
	if next.Before(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// Occurrences expands a parsed command into the concrete notification
// timestamps a scheduler would register, starting from now and bounded by
// the command's duration (or horizonDays when no duration is present).
// The command itself is not modified; absent time or frequency slots yield
// an empty list. Pure function of its arguments.
func Occurrences(cmd ParsedCommand, now time.Time, horizonDays int) []time.Time {
	if cmd.TimeOfDay == nil || cmd.Frequency == nil {
		return nil
	}
	days := cmd.DurationDays
	if days <= 0 {
		days = horizonDays
	}
	if days <= 0 {
		return nil
	}

	anchor := NextOccurrence(*cmd.TimeOfDay, now)
	end := anchor.AddDate(0, 0, days)

	var step time.Duration
	switch cmd.Frequency.Kind {
	case FrequencyEveryNHours:
		if cmd.Frequency.Hours <= 0 {
			return nil
		}
		step = time.Duration(cmd.Frequency.Hours) * time.Hour
	case FrequencyDaily:
		step = 24 * time.Hour
	case FrequencyWeekly:
		step = 7 * 24 * time.Hour
	case FrequencyAsNeeded:
		// On-demand medication has no fixed series.
		return nil
	default:
		return nil
	}

	var out []time.Time
	for t := anchor; t.Before(end); t = t.Add(step) {
		out = append(out, t)
	}
	return out
}
