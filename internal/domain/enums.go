package domain

import (
	"fmt"
	"strings"
)

// SourceDictionary identifies the dictionary a Wordnik definition came from.
type SourceDictionary string

const (
	SourceDictionaryAHD5       SourceDictionary = "ahd-5"
	SourceDictionaryCentury    SourceDictionary = "century"
	SourceDictionaryGCIDE      SourceDictionary = "gcide"
	SourceDictionaryWiktionary SourceDictionary = "wiktionary"
	SourceDictionaryWebster    SourceDictionary = "webster"
	SourceDictionaryWordNet    SourceDictionary = "wordnet"
)

func (s SourceDictionary) String() string { return string(s) }

func (s SourceDictionary) IsValid() bool {
	switch s {
	case SourceDictionaryAHD5, SourceDictionaryCentury, SourceDictionaryGCIDE,
		SourceDictionaryWiktionary, SourceDictionaryWebster, SourceDictionaryWordNet:
		return true
	}
	return false
}

// DisplayName returns the human-readable name of the dictionary.
func (s SourceDictionary) DisplayName() string {
	switch s {
	case SourceDictionaryAHD5:
		return "The American Heritage Dictionary, 5th Edition"
	case SourceDictionaryCentury:
		return "The Century Dictionary"
	case SourceDictionaryGCIDE:
		return "GNU Collaborative International Dictionary of English"
	case SourceDictionaryWiktionary:
		return "Wiktionary"
	case SourceDictionaryWebster:
		return "Webster's Revised Unabridged Dictionary"
	case SourceDictionaryWordNet:
		return "WordNet 3.0"
	}
	return string(s)
}

// ParseSourceDictionary parses a source tag case-insensitively.
func ParseSourceDictionary(raw string) (SourceDictionary, error) {
	s := SourceDictionary(strings.ToLower(strings.TrimSpace(raw)))
	if !s.IsValid() {
		return "", fmt.Errorf("unknown source dictionary %q", raw)
	}
	return s, nil
}
