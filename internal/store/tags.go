package store

import (
	"strings"

	"github.com/agnivade/levenshtein"
	"golang.org/x/text/unicode/norm"
)

// NormalizeTag trims the tag and puts it in Unicode NFC form so that the
// same label typed two different ways compares equal.
func NormalizeTag(tag string) string {
	return norm.NFC.String(strings.TrimSpace(tag))
}

func ContainsTag(tags []string, tag string) bool {
	tag = NormalizeTag(tag)
	for _, t := range tags {
		if NormalizeTag(t) == tag {
			return true
		}
	}
	return false
}

// UniqueTags normalizes tags and drops blanks and duplicates, keeping the
// first occurrence. The result is never nil.
func UniqueTags(tags []string) []string {
	out := make([]string, 0, len(tags))
	seen := make(map[string]bool, len(tags))
	for _, t := range tags {
		t = NormalizeTag(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// SimilarTags returns the existing tags within edit distance maxDistance of
// candidate, excluding exact matches.
func SimilarTags(tags []string, candidate string, maxDistance int) []string {
	candidate = strings.ToLower(NormalizeTag(candidate))
	if candidate == "" {
		return nil
	}
	var out []string
	for _, t := range tags {
		existing := strings.ToLower(NormalizeTag(t))
		if existing == candidate {
			continue
		}
		if levenshtein.ComputeDistance(existing, candidate) <= maxDistance {
			out = append(out, t)
		}
	}
	return out
}
