// Package dosistypes contains the shared types exchanged between the Mi Dosis
// interpretation engine and its collaborators (scheduler, TTS formatter,
// corpus builder). Types here are plain data: no I/O, no hidden state.
package dosistypes

// Action identifies what the user asked the assistant to do.
// Exactly one action is assigned per command, never a set.
type Action string

// Supported actions. ActionUnknown is the fallback when no keyword matched.
const (
	ActionAddMedication    Action = "add_medication"
	ActionDeleteMedication Action = "delete_medication"
	ActionListMedications  Action = "list_medications"
	ActionSetReminder      Action = "set_reminder"
	ActionCheckMedication  Action = "check_medication"
	ActionCheckToday       Action = "check_today"
	ActionUnknown          Action = "unknown"
)

// ParsedCommand is the structured, confidence-scored result of interpreting
// one free-form sentence. It is constructed fresh per call, returned by
// value, and never mutated afterwards. Optional slots use pointer or
// zero-value-omitted fields so the serialized record stays flat.
type ParsedCommand struct {
	Action       Action     `json:"action"`
	EntityName   string     `json:"entityName,omitempty"`
	DosageAmount int        `json:"dosageAmount,omitempty"`
	DosageUnit   string     `json:"dosageUnit,omitempty"`
	Frequency    *Frequency `json:"frequency,omitempty"`
	TimeOfDay    *ClockTime `json:"timeOfDay,omitempty"`
	DurationDays int        `json:"durationDays,omitempty"`
	Quantity     string     `json:"quantity,omitempty"`
	WakeWord     bool       `json:"wakeWord,omitempty"`
	Confidence   float64    `json:"confidence"`
	RawText      string     `json:"rawText"`
}

// HasEntity reports whether an entity name was extracted.
func (p ParsedCommand) HasEntity() bool { return p.EntityName != "" }

// HasDosage reports whether a dosage amount and unit were extracted.
func (p ParsedCommand) HasDosage() bool { return p.DosageAmount > 0 && p.DosageUnit != "" }

// Template holds the slot values decomposed from one canonical example
// sentence. The variation generator expands each slot into a synonym set and
// recombines them; the template itself is consumed once and discarded.
type Template struct {
	Starter    string
	Action     string
	EntityName string
	Dosage     string
	Time       string
	Frequency  string
	Duration   string

	// Source is the canonical sentence the template was decomposed from.
	Source string
}

// Components returns the slot values as a map keyed by placeholder name.
func (t Template) Components() map[string]string {
	return map[string]string{
		"starter":    t.Starter,
		"action":     t.Action,
		"entityName": t.EntityName,
		"dosage":     t.Dosage,
		"time":       t.Time,
		"frequency":  t.Frequency,
		"duration":   t.Duration,
	}
}
