package domain

import (
	"regexp"
)

var tagRe = regexp.MustCompile(`<[^>]*>`)

// StripTags removes every <...> tag from text. No attribute or nesting
// awareness: each tag is the shortest run from '<' to the next '>'.
// Text without tags is returned unchanged.
func StripTags(text string) string {
	if text == "" {
		return ""
	}
	return tagRe.ReplaceAllString(text, "")
}

// DeduplicateStrings returns a new slice with duplicates and empty strings
// removed, preserving the order of first occurrence.
func DeduplicateStrings(ss []string) []string {
	seen := make(map[string]struct{}, len(ss))
	result := make([]string, 0, len(ss))

	for _, s := range ss {
		if s == "" {
			continue
		}
		if _, exists := seen[s]; exists {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}

	return result
}
