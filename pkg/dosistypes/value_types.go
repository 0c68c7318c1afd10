package dosistypes

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ClockTime is a canonical 24-hour time of day.
type ClockTime struct {
	Hour   int
	Minute int
}

// Valid reports whether the time is within 00:00..23:59.
func (c ClockTime) Valid() bool {
	return c.Hour >= 0 && c.Hour <= 23 && c.Minute >= 0 && c.Minute <= 59
}

// String renders the time as zero-padded "HH:MM".
func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// MarshalJSON encodes the time as its "HH:MM" string form.
func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes an "HH:MM" string into a ClockTime.
func (c *ClockTime) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseClockTime(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseClockTime parses a zero-padded or plain "H:MM" / "HH:MM" literal.
func ParseClockTime(s string) (ClockTime, error) {
	parts := strings.SplitN(s, ":", 2)
	if len(parts) != 2 {
		return ClockTime{}, fmt.Errorf("invalid clock time %q", s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid hour in %q", s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return ClockTime{}, fmt.Errorf("invalid minute in %q", s)
	}
	ct := ClockTime{Hour: hour, Minute: minute}
	if !ct.Valid() {
		return ClockTime{}, fmt.Errorf("clock time %q out of range", s)
	}
	return ct, nil
}

// FrequencyKind is the closed vocabulary of canonical dosing frequencies.
type FrequencyKind string

// Canonical frequency kinds.
const (
	FrequencyEveryNHours FrequencyKind = "every_n_hours"
	FrequencyDaily       FrequencyKind = "daily"
	FrequencyWeekly      FrequencyKind = "weekly"
	FrequencyAsNeeded    FrequencyKind = "as_needed"
)

// Frequency is a canonical dosing frequency. Hours is meaningful only when
// Kind is FrequencyEveryNHours.
type Frequency struct {
	Kind  FrequencyKind
	Hours int
}

// EveryNHours builds an interval frequency.
func EveryNHours(n int) Frequency { return Frequency{Kind: FrequencyEveryNHours, Hours: n} }

// Daily is the once-per-day frequency.
func Daily() Frequency { return Frequency{Kind: FrequencyDaily} }

// Weekly is the once-per-week frequency.
func Weekly() Frequency { return Frequency{Kind: FrequencyWeekly} }

// AsNeeded is the on-demand frequency.
func AsNeeded() Frequency { return Frequency{Kind: FrequencyAsNeeded} }

// String renders the machine form, e.g. "every_12_hours" or "daily".
func (f Frequency) String() string {
	if f.Kind == FrequencyEveryNHours {
		return fmt.Sprintf("every_%d_hours", f.Hours)
	}
	return string(f.Kind)
}

// MarshalJSON encodes the frequency as its machine string form.
func (f Frequency) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

// UnmarshalJSON decodes a machine string form back into a Frequency.
func (f *Frequency) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseFrequency(s)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ParseFrequency parses a machine string form ("daily", "every_12_hours")
// back into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	switch {
	case s == string(FrequencyDaily):
		return Daily(), nil
	case s == string(FrequencyWeekly):
		return Weekly(), nil
	case s == string(FrequencyAsNeeded):
		return AsNeeded(), nil
	case strings.HasPrefix(s, "every_") && strings.HasSuffix(s, "_hours"):
		body := strings.TrimSuffix(strings.TrimPrefix(s, "every_"), "_hours")
		n, err := strconv.Atoi(body)
		if err != nil || n <= 0 {
			return Frequency{}, fmt.Errorf("invalid frequency %q", s)
		}
		return EveryNHours(n), nil
	default:
		return Frequency{}, fmt.Errorf("invalid frequency %q", s)
	}
}

// Dosage is a canonical dosage: positive amount plus a unit from the closed
// unit vocabulary. Count units (tableta, cápsula) stay as counts, they are
// never converted to mass.
type Dosage struct {
	Amount int
	Unit   string
}

// String renders the dosage as "500 mg".
func (d Dosage) String() string {
	return fmt.Sprintf("%d %s", d.Amount, d.Unit)
}
