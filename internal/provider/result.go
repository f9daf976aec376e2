package provider

import "fmt"

// DefinitionResult is a single word sense from an external dictionary.
type DefinitionResult struct {
	Text             *string
	PartOfSpeech     *string
	Examples         []string
	SourceDictionary *string
	AttributionURL   *string
}

// PronunciationResult is a phonetic transcription with its notation tag.
type PronunciationResult struct {
	Raw     string
	RawType string
}

// SyllableResult is one hyphenation fragment.
type SyllableResult struct {
	Text string
	Type *string
}

// Relationship selects which related words to fetch.
type Relationship string

const (
	RelationshipSynonym Relationship = "synonym"
	RelationshipAntonym Relationship = "antonym"
)

func (r Relationship) String() string { return string(r) }

func (r Relationship) IsValid() bool {
	switch r {
	case RelationshipSynonym, RelationshipAntonym:
		return true
	}
	return false
}

// IPAType is the notation tag of IPA transcriptions.
const IPAType = "IPA"

// IPATranscriptions keeps only IPA-tagged transcriptions, in source order.
// Returns ErrNoPhonetics when none remain.
func IPATranscriptions(prons []PronunciationResult) ([]string, error) {
	out := make([]string, 0, len(prons))
	for _, p := range prons {
		if p.RawType == IPAType && p.Raw != "" {
			out = append(out, p.Raw)
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%w: %d transcriptions, none IPA", ErrNoPhonetics, len(prons))
	}
	return out, nil
}
