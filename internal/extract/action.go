package extract

import (
	"midosis/internal/lexicon"
	"midosis/internal/stringprocessing"
	"midosis/pkg/dosistypes"
)

// Action scans the ordered keyword table and returns the action of the first
// table entry that occurs in the text. Table order is the priority: a
// sentence like "recuérdame agregar paracetamol" contains two action-like
// words, and the earlier table entry decides, not the earlier word.
func Action(text string, lex *lexicon.Lexicon) (dosistypes.Action, Span, bool) {
	for _, entry := range lex.Actions {
		if start, end, ok := stringprocessing.FindPhrase(text, entry.Keyword); ok {
			return entry.Action, spanOf(start, end), true
		}
	}
	return dosistypes.ActionUnknown, Span{}, false
}

// WakeWord reports whether the text carries one of the assistant's wake
// phrases ("mi dosis", "hey dosis", ...).
func WakeWord(text string, lex *lexicon.Lexicon) bool {
	for _, phrase := range lex.WakePhrases {
		if stringprocessing.ContainsPhrase(text, phrase) {
			return true
		}
	}
	return false
}
