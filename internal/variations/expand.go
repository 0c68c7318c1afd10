package variations

import (
	"fmt"
	"strconv"
	"strings"

	"midosis/internal/canon"
	"midosis/internal/stringprocessing"
	"midosis/pkg/dosistypes"
)

// Per-slot expansion. Every function returns a non-empty, deterministically
// ordered list; an empty base value expands to a single empty string so the
// slot disappears from the rendered sentence.

func (g *Generator) expandAction(base string) []string {
	if base == "" {
		return []string{""}
	}
	if syns, ok := g.lex.Synonyms.ActionSynonyms[base]; ok && len(syns) > 0 {
		return syns
	}
	return []string{base}
}

func (g *Generator) expandEntity(base string) []string {
	if base == "" {
		return []string{""}
	}
	if syns, ok := g.lex.Synonyms.EntitySynonyms[base]; ok && len(syns) > 0 {
		return syns
	}
	return []string{base}
}

func (g *Generator) expandDosage(base string) []string {
	if base == "" {
		return []string{""}
	}
	fields := strings.Fields(base)
	if len(fields) != 2 {
		return []string{base}
	}
	amount, unit := fields[0], fields[1]
	out := []string{
		base,
		"dosis de " + base,
		amount + unit,
	}
	if unit == "mg" {
		out = append(out, amount+" miligramos")
	}
	return dedupe(out)
}

func (g *Generator) expandTime(base string) []string {
	if base == "" {
		return []string{""}
	}
	ct, err := canon.Time(base, g.lex)
	if err != nil {
		return []string{base}
	}

	hour12 := ct.Hour % 12
	if hour12 == 0 {
		hour12 = 12
	}
	h := strconv.Itoa(hour12)

	var out []string
	switch {
	case ct.Hour < 12:
		out = append(out,
			fmt.Sprintf("a las %s de la mañana", h),
			fmt.Sprintf("a las %s am", h),
			fmt.Sprintf("en la mañana a las %s", h),
		)
	case ct.Hour < 19:
		out = append(out,
			fmt.Sprintf("a las %s de la tarde", h),
			fmt.Sprintf("a las %s pm", h),
			fmt.Sprintf("en la tarde a las %s", h),
		)
	default:
		out = append(out,
			fmt.Sprintf("a las %s de la noche", h),
			fmt.Sprintf("a las %s pm", h),
			fmt.Sprintf("en la noche a las %s", h),
		)
	}
	if ct.Minute > 0 {
		out = append(out, fmt.Sprintf("a las %d:%02d", ct.Hour, ct.Minute))
	} else {
		out = append(out, "a las "+h, fmt.Sprintf("a las %s horas", h))
	}
	return dedupe(out)
}

func (g *Generator) expandFrequency(base string) []string {
	if base == "" {
		return []string{""}
	}
	f, err := canon.Frequency(base, g.lex)
	if err != nil {
		return []string{base}
	}

	switch f.Kind {
	case dosistypes.FrequencyEveryNHours:
		switch f.Hours {
		case 8:
			return []string{"cada 8 horas", "cada ocho horas", "tres veces al día"}
		case 12:
			return []string{"cada 12 horas", "cada doce horas", "dos veces al día"}
		default:
			return []string{fmt.Sprintf("cada %d horas", f.Hours)}
		}
	case dosistypes.FrequencyDaily:
		return []string{"diario", "todos los días", "una vez al día", "cada día"}
	case dosistypes.FrequencyWeekly:
		return []string{"semanal", "una vez por semana", "cada semana"}
	case dosistypes.FrequencyAsNeeded:
		return []string{"cuando sea necesario", "si es necesario"}
	default:
		return []string{base}
	}
}

func (g *Generator) expandDuration(base string) []string {
	if base == "" {
		return []string{""}
	}
	var amount, unit string
	for _, tok := range stringprocessing.Tokenize(base) {
		switch {
		case amount == "" && isNumberToken(tok.Text):
			amount = tok.Text
		case strings.HasPrefix(tok.Text, "día") || strings.HasPrefix(tok.Text, "dia"),
			strings.HasPrefix(tok.Text, "semana"), strings.HasPrefix(tok.Text, "mes"):
			unit = tok.Text
		}
	}
	if amount == "" || unit == "" {
		return []string{base}
	}
	body := amount + " " + unit
	return []string{
		"por " + body,
		"durante " + body,
		"para " + body,
	}
}

func isNumberToken(s string) bool {
	if _, err := strconv.Atoi(s); err == nil {
		return true
	}
	return false
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	var out []string
	for _, s := range list {
		if !seen[s] {
			seen[s] = true
			out = append(out, s)
		}
	}
	return out
}
