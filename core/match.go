package core

import (
	"strings"
	"unicode"
)

// Match ranks, best first.
const (
	matchScattered = iota
	matchInside
	matchWordStart
	matchPrefix
)

// matchScore ranks how well query matches text, ignoring case. ok is false
// when the query runes do not appear in text in order. An empty query
// matches everything at the lowest rank.
func matchScore(text, query string) (score int, ok bool) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return matchScattered, true
	}
	t := strings.ToLower(text)
	switch {
	case strings.HasPrefix(t, q):
		return matchPrefix, true
	case startsWord(t, q):
		return matchWordStart, true
	case strings.Contains(t, q):
		return matchInside, true
	}
	rest := []rune(q)
	for _, r := range t {
		if len(rest) > 0 && r == rest[0] {
			rest = rest[1:]
		}
	}
	return matchScattered, len(rest) == 0
}

func startsWord(text, query string) bool {
	words := strings.FieldsFunc(text, func(r rune) bool {
		return unicode.IsSpace(r) || unicode.IsPunct(r)
	})
	for _, w := range words {
		if strings.HasPrefix(w, query) {
			return true
		}
	}
	return false
}
