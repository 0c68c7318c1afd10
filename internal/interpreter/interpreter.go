// Package interpreter orchestrates the slot extractors and canonicalizers
// into the single Interpret operation: free-form sentence in, structured
// confidence-scored command record out. Interpret never fails; every
// degraded path produces a well-formed record so the caller can decide
// whether to proceed or ask the user again.
package interpreter

import (
	"errors"

	"midosis/internal/canon"
	"midosis/internal/extract"
	"midosis/internal/lexicon"
	"midosis/internal/logger"
	"midosis/internal/stringprocessing"
	"midosis/pkg/dosistypes"
)

// Defaults applied when an add-medication command leaves a slot empty.
// No other action gets defaults.
var (
	defaultFrequency    = dosistypes.Daily()
	defaultTime         = dosistypes.ClockTime{Hour: 8}
	defaultDurationDays = 7
)

// Interpreter turns sentences into ParsedCommand records. It holds only the
// immutable lexicon, so one instance serves concurrent callers.
type Interpreter struct {
	lex *lexicon.Lexicon
}

// New creates an Interpreter over the given lexicon.
func New(lex *lexicon.Lexicon) *Interpreter {
	return &Interpreter{lex: lex}
}

// Interpret parses one sentence. The returned record always carries the
// original text; on any internal fault it degrades to an unknown action
// with zero confidence instead of panicking.
func (in *Interpreter) Interpret(text string) (cmd dosistypes.ParsedCommand) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("interpretation fault", "input", text, "panic", r)
			cmd = dosistypes.ParsedCommand{Action: dosistypes.ActionUnknown, RawText: text}
		}
	}()

	cmd = dosistypes.ParsedCommand{Action: dosistypes.ActionUnknown, RawText: text}

	norm := stringprocessing.Normalize(text)
	if norm == "" {
		return cmd
	}

	cmd.WakeWord = extract.WakeWord(norm, in.lex)

	var found foundSlots

	// Action first: the default-filling policy below depends on it.
	if action, span, ok := extract.Action(norm, in.lex); ok {
		cmd.Action = action
		found.action = true
		logger.Debug("action detected", "action", action, "span", norm[span.Start:span.End])
	}

	// The remaining extractors run independently over the same normalized
	// text; overlapping matches between slots are tolerated.
	if name, _, ok := extract.Entity(norm, in.lex); ok {
		cmd.EntityName = name
		found.entity = true
	}

	if raw, _, ok := extract.Dosage(norm, in.lex); ok {
		if d, err := canon.Dosage(raw); err == nil {
			cmd.DosageAmount = d.Amount
			cmd.DosageUnit = d.Unit
			found.dosage = true
		} else {
			logger.Debug("dosage rejected", "surface", raw.String(), "error", err)
		}
	}

	if surface, _, ok := extract.Frequency(norm, in.lex); ok {
		if f, err := canon.Frequency(surface, in.lex); err == nil {
			cmd.Frequency = &f
			found.frequency = true
		} else if !errors.Is(err, canon.ErrNoMatch) {
			logger.Debug("frequency rejected", "surface", surface, "error", err)
		}
	}

	if surface, _, ok := extract.TimeOfDay(norm, in.lex); ok {
		if t, err := canon.Time(surface, in.lex); err == nil {
			cmd.TimeOfDay = &t
			found.timeOfDay = true
		} else if !errors.Is(err, canon.ErrNoMatch) {
			logger.Debug("time rejected", "surface", surface, "error", err)
		}
	}

	if surface, _, ok := extract.Duration(norm, in.lex); ok {
		if days, err := canon.Duration(surface, in.lex); err == nil {
			cmd.DurationDays = days
			found.duration = true
		} else if !errors.Is(err, canon.ErrNoMatch) {
			logger.Debug("duration rejected", "surface", surface, "error", err)
		}
	}

	if q, _, ok := extract.Quantity(norm, in.lex); ok {
		cmd.Quantity = q
	}

	// Confidence reflects what was actually extracted, before defaults.
	cmd.Confidence = score(found)

	// Default fill: add-medication only.
	if cmd.Action == dosistypes.ActionAddMedication {
		if cmd.Frequency == nil {
			f := defaultFrequency
			cmd.Frequency = &f
		}
		if cmd.TimeOfDay == nil {
			t := defaultTime
			cmd.TimeOfDay = &t
		}
		if cmd.DurationDays == 0 {
			cmd.DurationDays = defaultDurationDays
		}
	}

	validate(&cmd)
	return cmd
}
