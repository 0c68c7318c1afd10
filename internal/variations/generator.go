// Package variations expands one canonical command sentence into a bounded
// list of paraphrases for offline training corpora. The full cross-product
// of all synonym tables is never materialized: only a fixed prefix of each
// per-slot list participates, and emission stops at the caller's cap.
package variations

import (
	"strings"

	"midosis/internal/extract"
	"midosis/internal/lexicon"
	"midosis/internal/stringprocessing"
	"midosis/pkg/dosistypes"
)

// Generator produces paraphrases of canonical command sentences. It holds
// only the immutable lexicon and is safe for concurrent use.
type Generator struct {
	lex *lexicon.Lexicon
}

// New creates a Generator over the given lexicon.
func New(lex *lexicon.Lexicon) *Generator {
	return &Generator{lex: lex}
}

// Decompose parses a canonical sentence into its slot template using the
// same extractors as the interpreter. A sentence without at least an action
// and an entity name is not decomposable.
func (g *Generator) Decompose(sentence string) (dosistypes.Template, bool) {
	norm := stringprocessing.Normalize(sentence)
	if norm == "" {
		return dosistypes.Template{}, false
	}

	tmpl := dosistypes.Template{Source: sentence, Starter: "mi dosis"}
	for _, starter := range g.lex.Synonyms.Starters {
		if strings.HasPrefix(norm, strings.ToLower(starter)) {
			tmpl.Starter = strings.ToLower(starter)
			break
		}
	}

	_, span, ok := extract.Action(norm, g.lex)
	if !ok {
		return dosistypes.Template{}, false
	}
	tmpl.Action = norm[span.Start:span.End]

	name, _, ok := extract.Entity(norm, g.lex)
	if !ok {
		return dosistypes.Template{}, false
	}
	tmpl.EntityName = strings.ToLower(name)

	if d, _, ok := extract.Dosage(norm, g.lex); ok {
		tmpl.Dosage = d.String()
	}
	if surface, _, ok := extract.TimeOfDay(norm, g.lex); ok {
		tmpl.Time = surface
	}
	if surface, _, ok := extract.Frequency(norm, g.lex); ok {
		tmpl.Frequency = surface
	}
	if surface, _, ok := extract.Duration(norm, g.lex); ok {
		tmpl.Duration = surface
	}

	return tmpl, true
}

// Generate expands the sentence into at most cap distinct paraphrases in
// deterministic order. An undecomposable sentence yields an empty list.
func (g *Generator) Generate(sentence string, cap int) []string {
	if cap <= 0 {
		return nil
	}
	tmpl, ok := g.Decompose(sentence)
	if !ok {
		return nil
	}

	take := g.lex.Synonyms.TakeCounts
	templates := prefix(g.lex.Synonyms.Templates, take.Templates)
	starters := prefix(g.lex.Synonyms.Starters, take.Starter)
	actions := prefix(g.expandAction(tmpl.Action), take.Action)
	entities := prefix(g.expandEntity(tmpl.EntityName), take.EntityName)
	dosages := prefix(g.expandDosage(tmpl.Dosage), take.Dosage)
	times := prefix(g.expandTime(tmpl.Time), take.Time)
	frequencies := prefix(g.expandFrequency(tmpl.Frequency), take.Frequency)
	durations := prefix(g.expandDuration(tmpl.Duration), take.Duration)

	seen := make(map[string]bool)
	var out []string

	for _, format := range templates {
		for _, starter := range starters {
			for _, action := range actions {
				for _, entity := range entities {
					for _, dosage := range dosages {
						for _, tod := range times {
							for _, freq := range frequencies {
								for _, dur := range durations {
									s := render(format, starter, action, entity, dosage, tod, freq, dur)
									if !seen[s] {
										seen[s] = true
										out = append(out, s)
									}
									if len(out) >= cap {
										return out
									}
								}
							}
						}
					}
				}
			}
		}
	}
	return out
}

func render(format, starter, action, entity, dosage, tod, freq, dur string) string {
	r := strings.NewReplacer(
		"{starter}", starter,
		"{action}", action,
		"{entityName}", entity,
		"{dosage}", dosage,
		"{time}", tod,
		"{frequency}", freq,
		"{duration}", dur,
	)
	// Collapse the gaps left by empty slots.
	return stringprocessing.Normalize(r.Replace(format))
}

func prefix(list []string, n int) []string {
	if len(list) == 0 {
		return []string{""}
	}
	if n > 0 && len(list) > n {
		return list[:n]
	}
	return list
}
