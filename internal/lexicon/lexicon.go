// Package lexicon holds the static lookup tables the interpreter and the
// variation generator share: entity names, the ordered action keyword table,
// dayparts, frequency phrasings, dosage units and synonym sets.
//
// A Lexicon is built once from YAML (embedded by default, or a user-supplied
// file) and is read-only afterwards, so concurrent interpreter calls can
// share one instance without synchronization.
package lexicon

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"midosis/internal/data/embedded"
	"midosis/internal/stringprocessing"
	"midosis/pkg/dosistypes"
)

// PeriodClass groups dayparts by how they shift an ambiguous hour.
type PeriodClass string

// Daypart classes. Morning keeps the hour (12 wraps to 0), afternoon and
// evening push hours below 12 into the second half of the day.
const (
	Morning   PeriodClass = "morning"
	Afternoon PeriodClass = "afternoon"
	Evening   PeriodClass = "evening"
)

// ActionKeyword binds one surface keyword to an action. The table is a
// slice, not a map: position is priority, and the first keyword found in a
// sentence wins.
type ActionKeyword struct {
	Keyword string
	Action  dosistypes.Action
}

// Entity is one curated medication with its surface aliases.
type Entity struct {
	Name    string
	Aliases []string
}

// FrequencyPhrase maps one worded phrasing to its canonical frequency.
type FrequencyPhrase struct {
	Phrase    string
	Canonical dosistypes.Frequency
}

// TakeCounts bounds how many entries of each synonym list the variation
// generator feeds into the cross-product.
type TakeCounts struct {
	Templates  int `yaml:"templates"`
	Starter    int `yaml:"starter"`
	Action     int `yaml:"action"`
	EntityName int `yaml:"entityName"`
	Dosage     int `yaml:"dosage"`
	Time       int `yaml:"time"`
	Frequency  int `yaml:"frequency"`
	Duration   int `yaml:"duration"`
}

// SynonymTable holds the variation generator's per-slot synonym sets and
// sentence templates.
type SynonymTable struct {
	Templates      []string            `yaml:"templates"`
	Starters       []string            `yaml:"starters"`
	ActionSynonyms map[string][]string `yaml:"action_synonyms"`
	EntitySynonyms map[string][]string `yaml:"entity_synonyms"`
	TakeCounts     TakeCounts          `yaml:"take_counts"`
}

// Lexicon is the full immutable table set.
type Lexicon struct {
	WakePhrases     []string
	Actions         []ActionKeyword
	Entities        []Entity
	EntityTriggers  []string
	EntityStopwords map[string]bool
	Dayparts        map[string]PeriodClass
	NamedTimes      map[string]dosistypes.ClockTime
	Frequencies     []FrequencyPhrase
	Units           map[string]string // alias -> canonical unit
	QuantityUnits   map[string]bool
	NumberWords     map[string]int
	Synonyms        *SynonymTable

	// aliasIndex pairs every entity alias with its canonical name, sorted
	// longest alias first so multi-word aliases win over their prefixes.
	aliasIndex []aliasEntry

	// namedTimeKeys holds NamedTimes keys sorted longest first so phrase
	// scans are deterministic.
	namedTimeKeys []string
}

type aliasEntry struct {
	alias string
	name  string
}

// raw YAML shapes.

type rawLexicon struct {
	WakePhrases     []string            `yaml:"wake_phrases"`
	Actions         []rawAction         `yaml:"actions"`
	Entities        []rawEntity         `yaml:"entities"`
	EntityTriggers  []string            `yaml:"entity_triggers"`
	EntityStopwords []string            `yaml:"entity_stopwords"`
	Dayparts        map[string]string   `yaml:"dayparts"`
	NamedTimes      map[string]string   `yaml:"named_times"`
	Frequencies     []rawFrequency      `yaml:"frequencies"`
	Units           map[string][]string `yaml:"units"`
	QuantityUnits   []string            `yaml:"quantity_units"`
	NumberWords     map[string]int      `yaml:"number_words"`
}

type rawAction struct {
	Keyword string `yaml:"keyword"`
	Action  string `yaml:"action"`
}

type rawEntity struct {
	Name    string   `yaml:"name"`
	Aliases []string `yaml:"aliases"`
}

type rawFrequency struct {
	Phrase    string `yaml:"phrase"`
	Canonical string `yaml:"canonical"`
}

// Default builds the lexicon from the embedded data files.
func Default() (*Lexicon, error) {
	return build(embedded.LexiconData, embedded.SynonymData)
}

// LoadFile builds the lexicon from a user-supplied YAML file using the same
// schema as the embedded data. Synonym tables stay embedded; only the
// interpretation tables are replaceable.
func LoadFile(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon file: %w", err)
	}
	return build(data, embedded.SynonymData)
}

func build(lexData, synData []byte) (*Lexicon, error) {
	var raw rawLexicon
	if err := yaml.Unmarshal(lexData, &raw); err != nil {
		return nil, fmt.Errorf("parse lexicon data: %w", err)
	}
	var syn SynonymTable
	if err := yaml.Unmarshal(synData, &syn); err != nil {
		return nil, fmt.Errorf("parse synonym data: %w", err)
	}

	if len(raw.Actions) == 0 {
		return nil, fmt.Errorf("lexicon has no action keywords")
	}
	if len(raw.Entities) == 0 {
		return nil, fmt.Errorf("lexicon has no entities")
	}

	lex := &Lexicon{
		WakePhrases:     raw.WakePhrases,
		EntityTriggers:  raw.EntityTriggers,
		EntityStopwords: make(map[string]bool, len(raw.EntityStopwords)),
		Dayparts:        make(map[string]PeriodClass, len(raw.Dayparts)),
		QuantityUnits:   make(map[string]bool, len(raw.QuantityUnits)),
		NamedTimes:      make(map[string]dosistypes.ClockTime, len(raw.NamedTimes)),
		Units:           make(map[string]string),
		NumberWords:     raw.NumberWords,
		Synonyms:        &syn,
	}

	for _, a := range raw.Actions {
		action := dosistypes.Action(a.Action)
		switch action {
		case dosistypes.ActionAddMedication, dosistypes.ActionDeleteMedication,
			dosistypes.ActionListMedications, dosistypes.ActionSetReminder,
			dosistypes.ActionCheckMedication, dosistypes.ActionCheckToday:
		default:
			return nil, fmt.Errorf("action keyword %q maps to unknown action %q", a.Keyword, a.Action)
		}
		lex.Actions = append(lex.Actions, ActionKeyword{Keyword: a.Keyword, Action: action})
	}

	for _, e := range raw.Entities {
		if e.Name == "" || len(e.Aliases) == 0 {
			return nil, fmt.Errorf("entity entry missing name or aliases")
		}
		lex.Entities = append(lex.Entities, Entity{Name: e.Name, Aliases: e.Aliases})
		for _, alias := range e.Aliases {
			lex.aliasIndex = append(lex.aliasIndex, aliasEntry{alias: strings.ToLower(alias), name: e.Name})
		}
	}
	// Longest alias first so "ácido acetilsalicílico" beats "ácido"; ties
	// break lexicographically to keep scans deterministic.
	sort.SliceStable(lex.aliasIndex, func(i, j int) bool {
		if len(lex.aliasIndex[i].alias) != len(lex.aliasIndex[j].alias) {
			return len(lex.aliasIndex[i].alias) > len(lex.aliasIndex[j].alias)
		}
		return lex.aliasIndex[i].alias < lex.aliasIndex[j].alias
	})

	for _, w := range raw.EntityStopwords {
		lex.EntityStopwords[strings.ToLower(w)] = true
	}

	for part, class := range raw.Dayparts {
		switch PeriodClass(class) {
		case Morning, Afternoon, Evening:
			lex.Dayparts[strings.ToLower(part)] = PeriodClass(class)
		default:
			return nil, fmt.Errorf("daypart %q has unknown class %q", part, class)
		}
	}

	for phrase, clock := range raw.NamedTimes {
		ct, err := dosistypes.ParseClockTime(clock)
		if err != nil {
			return nil, fmt.Errorf("named time %q: %w", phrase, err)
		}
		lex.NamedTimes[strings.ToLower(phrase)] = ct
	}
	for phrase := range lex.NamedTimes {
		lex.namedTimeKeys = append(lex.namedTimeKeys, phrase)
	}
	sort.SliceStable(lex.namedTimeKeys, func(i, j int) bool {
		if len(lex.namedTimeKeys[i]) != len(lex.namedTimeKeys[j]) {
			return len(lex.namedTimeKeys[i]) > len(lex.namedTimeKeys[j])
		}
		return lex.namedTimeKeys[i] < lex.namedTimeKeys[j]
	})

	for _, f := range raw.Frequencies {
		canonical, err := dosistypes.ParseFrequency(f.Canonical)
		if err != nil {
			return nil, fmt.Errorf("frequency phrase %q: %w", f.Phrase, err)
		}
		lex.Frequencies = append(lex.Frequencies, FrequencyPhrase{
			Phrase:    strings.ToLower(f.Phrase),
			Canonical: canonical,
		})
	}
	// Longest phrase first: "una vez al día" must match before "día"-level
	// fragments in other entries.
	sort.SliceStable(lex.Frequencies, func(i, j int) bool {
		if len(lex.Frequencies[i].Phrase) != len(lex.Frequencies[j].Phrase) {
			return len(lex.Frequencies[i].Phrase) > len(lex.Frequencies[j].Phrase)
		}
		return lex.Frequencies[i].Phrase < lex.Frequencies[j].Phrase
	})

	for canonical, aliases := range raw.Units {
		for _, alias := range aliases {
			lex.Units[strings.ToLower(alias)] = canonical
		}
	}

	for _, q := range raw.QuantityUnits {
		lex.QuantityUnits[strings.ToLower(q)] = true
	}

	applyTakeCountDefaults(&syn.TakeCounts)

	return lex, nil
}

func applyTakeCountDefaults(tc *TakeCounts) {
	def := func(v *int, fallback int) {
		if *v <= 0 {
			*v = fallback
		}
	}
	def(&tc.Templates, 3)
	def(&tc.Starter, 3)
	def(&tc.Action, 3)
	def(&tc.EntityName, 2)
	def(&tc.Dosage, 2)
	def(&tc.Time, 2)
	def(&tc.Frequency, 2)
	def(&tc.Duration, 2)
}

// LookupEntity scans text for the longest known entity alias and returns the
// canonical (title-cased) name together with the alias that matched. Text
// must already be normalized.
func (l *Lexicon) LookupEntity(text string) (name, alias string, ok bool) {
	for _, entry := range l.aliasIndex {
		if stringprocessing.ContainsPhrase(text, entry.alias) {
			return entry.name, entry.alias, true
		}
	}
	return "", "", false
}

// CanonicalUnit resolves a surface unit token to its canonical unit.
func (l *Lexicon) CanonicalUnit(token string) (string, bool) {
	u, ok := l.Units[strings.ToLower(token)]
	return u, ok
}

// NumberWord resolves a spelled-out number ("ocho" -> 8).
func (l *Lexicon) NumberWord(token string) (int, bool) {
	n, ok := l.NumberWords[strings.ToLower(token)]
	return n, ok
}

// NamedTimePhrases returns the named-instant phrases, longest first.
func (l *Lexicon) NamedTimePhrases() []string {
	return l.namedTimeKeys
}

// NamedTime resolves a named-instant phrase to its clock time.
func (l *Lexicon) NamedTime(phrase string) (dosistypes.ClockTime, bool) {
	ct, ok := l.NamedTimes[strings.ToLower(phrase)]
	return ct, ok
}

// DaypartClass resolves a daypart word to its period class.
func (l *Lexicon) DaypartClass(token string) (PeriodClass, bool) {
	c, ok := l.Dayparts[strings.ToLower(token)]
	return c, ok
}

// IsQuantityUnit reports whether the word is a package-count unit.
func (l *Lexicon) IsQuantityUnit(word string) bool {
	return l.QuantityUnits[strings.ToLower(word)]
}

// IsStopword reports whether the word can never be an entity name.
func (l *Lexicon) IsStopword(word string) bool {
	return l.EntityStopwords[strings.ToLower(word)]
}

