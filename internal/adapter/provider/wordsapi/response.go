package wordsapi

import (
	"encoding/json"
	"sort"
)

// apiWord is the body of GET /words/{word}.
type apiWord struct {
	Word    string      `json:"word"`
	Results []apiResult `json:"results"`
}

// apiResult is one sense inside apiWord.
type apiResult struct {
	Definition   *string  `json:"definition"`
	PartOfSpeech *string  `json:"partOfSpeech"`
	Examples     []string `json:"examples"`
}

// apiPronunciationBody is the body of GET /words/{word}/pronunciation.
type apiPronunciationBody struct {
	Word          string           `json:"word"`
	Pronunciation apiPronunciation `json:"pronunciation"`
}

// apiPronunciation is either a bare string or an object keyed by part of
// speech ("all", "noun", "verb", ...).
type apiPronunciation map[string]string

func (p *apiPronunciation) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*p = apiPronunciation{"all": s}
		return nil
	}
	var m map[string]string
	if err := json.Unmarshal(b, &m); err != nil {
		return err
	}
	*p = m
	return nil
}

// ordered returns the transcriptions with "all" first, then by key.
func (p apiPronunciation) ordered() []string {
	keys := make([]string, 0, len(p))
	for k := range p {
		if k != "all" {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)
	if _, ok := p["all"]; ok {
		keys = append([]string{"all"}, keys...)
	}

	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if v := p[k]; v != "" {
			out = append(out, v)
		}
	}
	return out
}

// apiSynonyms is the body of GET /words/{word}/synonyms.
type apiSynonyms struct {
	Synonyms []string `json:"synonyms"`
}

// apiAntonyms is the body of GET /words/{word}/antonyms.
type apiAntonyms struct {
	Antonyms []string `json:"antonyms"`
}

// apiSyllablesBody is the body of GET /words/{word}/syllables.
type apiSyllablesBody struct {
	Syllables struct {
		Count int      `json:"count"`
		List  []string `json:"list"`
	} `json:"syllables"`
}
