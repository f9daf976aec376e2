package wordnik

// apiDefinition is one element of GET /word.json/{word}/definitions.
type apiDefinition struct {
	Text             *string      `json:"text"`
	PartOfSpeech     *string      `json:"partOfSpeech"`
	ExampleUses      []apiExample `json:"exampleUses"`
	SourceDictionary *string      `json:"sourceDictionary"`
	AttributionURL   *string      `json:"attributionUrl"`
}

type apiExample struct {
	Text string `json:"text"`
}

// apiPronunciation is one element of GET /word.json/{word}/pronunciations.
type apiPronunciation struct {
	Raw     string `json:"raw"`
	RawType string `json:"rawType"`
}

// apiRelated is one relationship group of GET /word.json/{word}/relatedWords.
type apiRelated struct {
	RelationshipType string   `json:"relationshipType"`
	Words            []string `json:"words"`
}

// apiSyllable is one element of GET /word.json/{word}/hyphenation.
type apiSyllable struct {
	Text string  `json:"text"`
	Seq  int     `json:"seq"`
	Type *string `json:"type"`
}

// apiRandomWord is the body of GET /words.json/randomWord.
type apiRandomWord struct {
	ID   int64  `json:"id"`
	Word string `json:"word"`
}

// apiWordOfTheDay is the body of GET /words.json/wordOfTheDay.
type apiWordOfTheDay struct {
	Word        string `json:"word"`
	Note        string `json:"note"`
	PublishDate string `json:"publishDate"`
}
