package lookup

import (
	"github.com/heartmarshall/define/internal/domain"
	"github.com/heartmarshall/define/internal/provider"
)

// mapToWordInfo converts provider results into a domain.WordInfo.
// All free text passes through domain.StripTags. Definitions without text
// are kept (the presenter skips them); source order is preserved.
func mapToWordInfo(
	word string,
	defs []provider.DefinitionResult,
	pronunciations, synonyms, antonyms []string,
	syllables []provider.SyllableResult,
) *domain.WordInfo {
	info := &domain.WordInfo{
		Word:           word,
		Definitions:    make([]domain.Definition, 0, len(defs)),
		Pronunciations: stripAll(pronunciations),
		Synonyms:       domain.DeduplicateStrings(stripAll(synonyms)),
		Antonyms:       domain.DeduplicateStrings(stripAll(antonyms)),
		Syllables:      make([]domain.Syllable, 0, len(syllables)),
	}

	for _, d := range defs {
		info.Definitions = append(info.Definitions, mapDefinition(d))
	}

	for _, s := range syllables {
		text := domain.StripTags(s.Text)
		if text == "" {
			continue
		}
		info.Syllables = append(info.Syllables, domain.Syllable{Text: text, Type: s.Type})
	}

	return info
}

func mapDefinition(d provider.DefinitionResult) domain.Definition {
	def := domain.Definition{
		PartOfSpeech:   domain.NoPartOfSpeech,
		Examples:       make([]domain.Example, 0, len(d.Examples)),
		AttributionURL: d.AttributionURL,
	}

	if d.Text != nil {
		text := domain.StripTags(*d.Text)
		def.Text = &text
	}
	if d.PartOfSpeech != nil && *d.PartOfSpeech != "" {
		def.PartOfSpeech = *d.PartOfSpeech
	}
	for _, ex := range d.Examples {
		if text := domain.StripTags(ex); text != "" {
			def.Examples = append(def.Examples, domain.Example{Text: text})
		}
	}
	if d.SourceDictionary != nil {
		// Unknown dictionaries are dropped rather than failing the lookup.
		if src, err := domain.ParseSourceDictionary(*d.SourceDictionary); err == nil {
			def.SourceDictionary = &src
		}
	}

	return def
}

func stripAll(ss []string) []string {
	out := make([]string, 0, len(ss))
	for _, s := range ss {
		if text := domain.StripTags(s); text != "" {
			out = append(out, text)
		}
	}
	return out
}
