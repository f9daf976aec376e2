package freedict

import (
	"context"
	"log/slog"
	"net/url"
	"strings"

	"github.com/heartmarshall/define/internal/adapter/provider/httpjson"
	"github.com/heartmarshall/define/internal/provider"
)

const defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"

// Provider fetches dictionary data from the FreeDictionary API.
// The API needs no key and serves every resource from one endpoint, so each
// operation issues its own request for the full entry.
type Provider struct {
	baseURL string
	client  *httpjson.Client
	log     *slog.Logger
}

// NewProviderWithURL creates a Provider. An empty baseURL selects the public endpoint.
func NewProviderWithURL(baseURL string, client *httpjson.Client, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
		log:     logger.With("adapter", "freedict"),
	}
}

// Definitions flattens the senses of every entry, in source order.
func (p *Provider) Definitions(ctx context.Context, word string) ([]provider.DefinitionResult, error) {
	entries, err := p.fetchEntries(ctx, "freedict definitions", word)
	if err != nil {
		return nil, err
	}

	var out []provider.DefinitionResult
	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			for _, def := range meaning.Definitions {
				r := provider.DefinitionResult{Examples: []string{}}
				if def.Definition != "" {
					text := def.Definition
					r.Text = &text
				}
				if meaning.PartOfSpeech != "" {
					pos := meaning.PartOfSpeech
					r.PartOfSpeech = &pos
				}
				if def.Example != "" {
					r.Examples = append(r.Examples, def.Example)
				}
				out = append(out, r)
			}
		}
	}
	if out == nil {
		out = []provider.DefinitionResult{}
	}

	p.log.DebugContext(ctx, "definitions fetched", slog.String("word", word), slog.Int("count", len(out)))
	return out, nil
}

// Pronunciations collects transcriptions across entries, deduplicated by
// text. FreeDictionary transcriptions are IPA.
func (p *Provider) Pronunciations(ctx context.Context, word string) ([]provider.PronunciationResult, error) {
	entries, err := p.fetchEntries(ctx, "freedict pronunciations", word)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{})
	out := []provider.PronunciationResult{}
	add := func(text string) {
		if text == "" {
			return
		}
		if _, ok := seen[text]; ok {
			return
		}
		seen[text] = struct{}{}
		out = append(out, provider.PronunciationResult{Raw: text, RawType: provider.IPAType})
	}

	for _, entry := range entries {
		add(entry.Phonetic)
		for _, ph := range entry.Phonetics {
			add(ph.Text)
		}
	}
	return out, nil
}

// RelatedWords gathers meaning-level and definition-level synonyms or
// antonyms. Missing arrays count as empty.
func (p *Provider) RelatedWords(ctx context.Context, word string, rel provider.Relationship) ([]string, error) {
	if !rel.IsValid() {
		return nil, provider.ErrUnsupported
	}
	entries, err := p.fetchEntries(ctx, "freedict "+rel.String()+"s", word)
	if err != nil {
		return nil, err
	}

	pick := func(syn, ant []string) []string {
		if rel == provider.RelationshipSynonym {
			return syn
		}
		return ant
	}

	words := []string{}
	for _, entry := range entries {
		for _, meaning := range entry.Meanings {
			words = append(words, pick(meaning.Synonyms, meaning.Antonyms)...)
			for _, def := range meaning.Definitions {
				words = append(words, pick(def.Synonyms, def.Antonyms)...)
			}
		}
	}
	return words, nil
}

// Syllables is not offered by FreeDictionary.
func (p *Provider) Syllables(context.Context, string) ([]provider.SyllableResult, error) {
	return nil, provider.ErrUnsupported
}

// RandomWord is not offered by FreeDictionary.
func (p *Provider) RandomWord(context.Context) (string, error) {
	return "", provider.ErrUnsupported
}

// WordOfTheDay is not offered by FreeDictionary.
func (p *Provider) WordOfTheDay(context.Context) (string, error) {
	return "", provider.ErrUnsupported
}

func (p *Provider) fetchEntries(ctx context.Context, op, word string) ([]apiEntry, error) {
	reqURL := p.baseURL + "/" + url.PathEscape(word)

	var entries []apiEntry
	if err := p.client.Get(ctx, op, reqURL, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}
