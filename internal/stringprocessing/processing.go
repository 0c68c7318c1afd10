// Package stringprocessing provides the text utilities shared by the slot
// extractors and the lexicon: normalization, word-boundary search and
// tokenization. Accents are never stripped; accented and unaccented surface
// forms are distinct lexicon entries.
package stringprocessing

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Normalize lower-cases the input, trims it and collapses internal runs of
// whitespace to single spaces. It performs no accent folding.
func Normalize(text string) string {
	return strings.Join(strings.Fields(strings.ToLower(text)), " ")
}

// Token is one word of the normalized text with its byte offsets.
type Token struct {
	Text  string
	Start int
	End   int
}

// Tokenize splits normalized text into word tokens. Leading and trailing
// punctuation is stripped from each token ("¿qué" -> "qué") but a colon
// between digits survives so clock literals stay single tokens.
func Tokenize(text string) []Token {
	var tokens []Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isWordRune(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if isWordRune(r) {
				i += size
				continue
			}
			// Keep "8:30" together: a colon flanked by digits is part
			// of the token.
			if r == ':' && i > start && i+size < len(text) {
				prev, _ := utf8.DecodeLastRuneInString(text[:i])
				next, _ := utf8.DecodeRuneInString(text[i+size:])
				if unicode.IsDigit(prev) && unicode.IsDigit(next) {
					i += size
					continue
				}
			}
			break
		}
		tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i})
	}
	return tokens
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}

// FindPhrase locates needle in text on word boundaries and returns its byte
// span. A plain substring search would let "ibu" match inside "ibuprofeno".
func FindPhrase(text, needle string) (start, end int, ok bool) {
	if needle == "" {
		return 0, 0, false
	}
	idx := 0
	for {
		i := strings.Index(text[idx:], needle)
		if i < 0 {
			return 0, 0, false
		}
		s := idx + i
		e := s + len(needle)
		beforeOK := s == 0 || isBoundaryRune(lastRune(text[:s]))
		afterOK := e == len(text) || isBoundaryRune(firstRune(text[e:]))
		if beforeOK && afterOK {
			return s, e, true
		}
		idx = s + 1
	}
}

// ContainsPhrase reports whether needle occurs in text on word boundaries.
func ContainsPhrase(text, needle string) bool {
	_, _, ok := FindPhrase(text, needle)
	return ok
}

// TitleCase upper-cases the first letter of the word, leaving the rest as-is.
func TitleCase(word string) string {
	if word == "" {
		return word
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + word[size:]
}

func firstRune(s string) rune {
	r, _ := utf8.DecodeRuneInString(s)
	return r
}

func lastRune(s string) rune {
	r, _ := utf8.DecodeLastRuneInString(s)
	return r
}

func isBoundaryRune(r rune) bool {
	return !unicode.IsLetter(r) && !unicode.IsDigit(r)
}
