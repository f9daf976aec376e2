package domain

// NoPartOfSpeech is shown when the source omits the part of speech.
const NoPartOfSpeech = "[None]"

// WordInfo is everything known about one looked-up word.
// It is built once per lookup and not modified afterwards.
type WordInfo struct {
	Word           string       `json:"word"`
	Definitions    []Definition `json:"definitions"`
	Pronunciations []string     `json:"pronunciations"`
	Synonyms       []string     `json:"synonyms"`
	Antonyms       []string     `json:"antonyms"`
	Syllables      []Syllable   `json:"syllables"`
}

// Definition is one sense of a word.
// Text is nil when the source returned an entry without text; such
// definitions are kept but never rendered.
type Definition struct {
	Text             *string           `json:"text"`
	PartOfSpeech     string            `json:"partOfSpeech"`
	Examples         []Example         `json:"examples"`
	SourceDictionary *SourceDictionary `json:"sourceDictionary,omitempty"`
	AttributionURL   *string           `json:"attributionUrl,omitempty"`
}

// HasText reports whether the definition carries renderable text.
func (d Definition) HasText() bool {
	return d.Text != nil && *d.Text != ""
}

// TopExample returns the first example in source order.
func (d Definition) TopExample() (string, bool) {
	if len(d.Examples) == 0 {
		return "", false
	}
	return d.Examples[0].Text, true
}

// Example is a usage sentence attached to a definition.
type Example struct {
	Text string `json:"text"`
}

// Syllable is one hyphenation fragment of a word.
type Syllable struct {
	Text string  `json:"text"`
	Type *string `json:"type,omitempty"`
}

// IsStressed reports whether the syllable is tagged as stressed.
func (s Syllable) IsStressed() bool {
	return s.Type != nil && *s.Type == "stress"
}

// LookupMode selects where the word to look up comes from.
type LookupMode string

const (
	LookupModeWord         LookupMode = "WORD"
	LookupModeRandom       LookupMode = "RANDOM"
	LookupModeWordOfTheDay LookupMode = "WORD_OF_THE_DAY"
)

func (m LookupMode) String() string { return string(m) }

func (m LookupMode) IsValid() bool {
	switch m {
	case LookupModeWord, LookupModeRandom, LookupModeWordOfTheDay:
		return true
	}
	return false
}
