package wordnik

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	"github.com/heartmarshall/define/internal/adapter/provider/httpjson"
	"github.com/heartmarshall/define/internal/provider"
)

const defaultBaseURL = "https://api.wordnik.com/v4"

var errMissingWord = errors.New("response has no word")

// Provider fetches dictionary data from the Wordnik API.
// The API key travels as the api_key query parameter.
type Provider struct {
	baseURL string
	apiKey  string
	client  *httpjson.Client
	log     *slog.Logger
}

// NewProviderWithURL creates a Provider. An empty baseURL selects the public endpoint.
func NewProviderWithURL(baseURL, apiKey string, client *httpjson.Client, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Provider{
		baseURL: baseURL,
		apiKey:  apiKey,
		client:  client,
		log:     logger.With("adapter", "wordnik"),
	}
}

// Definitions fetches all definitions for word, in source order.
func (p *Provider) Definitions(ctx context.Context, word string) ([]provider.DefinitionResult, error) {
	q := url.Values{}
	q.Set("limit", "200")
	q.Set("includeRelated", "false")
	q.Set("useCanonical", "false")
	q.Set("includeTags", "false")

	var defs []apiDefinition
	if err := p.get(ctx, "wordnik definitions", p.wordURL(word, "definitions", q), &defs); err != nil {
		return nil, err
	}

	out := make([]provider.DefinitionResult, 0, len(defs))
	for _, d := range defs {
		r := provider.DefinitionResult{
			Text:             d.Text,
			PartOfSpeech:     d.PartOfSpeech,
			Examples:         make([]string, 0, len(d.ExampleUses)),
			SourceDictionary: d.SourceDictionary,
			AttributionURL:   d.AttributionURL,
		}
		for _, ex := range d.ExampleUses {
			r.Examples = append(r.Examples, ex.Text)
		}
		out = append(out, r)
	}

	p.log.DebugContext(ctx, "definitions fetched", slog.String("word", word), slog.Int("count", len(out)))
	return out, nil
}

// Pronunciations fetches all transcriptions for word, of every notation.
func (p *Provider) Pronunciations(ctx context.Context, word string) ([]provider.PronunciationResult, error) {
	q := url.Values{}
	q.Set("useCanonical", "false")
	q.Set("limit", "50")

	var prons []apiPronunciation
	if err := p.get(ctx, "wordnik pronunciations", p.wordURL(word, "pronunciations", q), &prons); err != nil {
		return nil, err
	}

	out := make([]provider.PronunciationResult, 0, len(prons))
	for _, pr := range prons {
		out = append(out, provider.PronunciationResult{Raw: pr.Raw, RawType: pr.RawType})
	}
	return out, nil
}

// RelatedWords fetches the synonyms or antonyms of word.
// A body without a group for rel yields an empty result.
func (p *Provider) RelatedWords(ctx context.Context, word string, rel provider.Relationship) ([]string, error) {
	q := url.Values{}
	q.Set("useCanonical", "false")
	q.Set("relationshipTypes", rel.String())
	q.Set("limitPerRelationshipType", "10")

	var groups []apiRelated
	if err := p.get(ctx, "wordnik related words", p.wordURL(word, "relatedWords", q), &groups); err != nil {
		return nil, err
	}

	words := []string{}
	for _, g := range groups {
		if g.RelationshipType == rel.String() {
			words = append(words, g.Words...)
		}
	}
	return words, nil
}

// Syllables fetches the hyphenation of word.
func (p *Provider) Syllables(ctx context.Context, word string) ([]provider.SyllableResult, error) {
	q := url.Values{}
	q.Set("useCanonical", "false")
	q.Set("limit", "50")

	var sylls []apiSyllable
	if err := p.get(ctx, "wordnik hyphenation", p.wordURL(word, "hyphenation", q), &sylls); err != nil {
		return nil, err
	}

	out := make([]provider.SyllableResult, 0, len(sylls))
	for _, s := range sylls {
		out = append(out, provider.SyllableResult{Text: s.Text, Type: s.Type})
	}
	return out, nil
}

// RandomWord fetches a random word that has at least one definition.
func (p *Provider) RandomWord(ctx context.Context) (string, error) {
	q := url.Values{}
	q.Set("hasDictionaryDef", "true")

	var rw apiRandomWord
	if err := p.get(ctx, "wordnik random word", p.wordsURL("randomWord", q), &rw); err != nil {
		return "", err
	}
	if rw.Word == "" {
		return "", &provider.DecodeError{Op: "wordnik random word", Err: errMissingWord}
	}
	return rw.Word, nil
}

// WordOfTheDay fetches today's featured word.
func (p *Provider) WordOfTheDay(ctx context.Context) (string, error) {
	var wotd apiWordOfTheDay
	if err := p.get(ctx, "wordnik word of the day", p.wordsURL("wordOfTheDay", url.Values{}), &wotd); err != nil {
		return "", err
	}
	if wotd.Word == "" {
		return "", &provider.DecodeError{Op: "wordnik word of the day", Err: errMissingWord}
	}
	p.log.DebugContext(ctx, "word of the day", slog.String("word", wotd.Word), slog.String("published", wotd.PublishDate))
	return wotd.Word, nil
}

func (p *Provider) get(ctx context.Context, op, reqURL string, out any) error {
	return p.client.Get(ctx, op, reqURL, nil, out)
}

// wordURL builds {base}/word.json/{word}/{resource}?{q}&api_key=...
func (p *Provider) wordURL(word, resource string, q url.Values) string {
	q.Set("api_key", p.apiKey)
	return p.baseURL + "/word.json/" + url.PathEscape(word) + "/" + resource + "?" + q.Encode()
}

// wordsURL builds {base}/words.json/{resource}?{q}&api_key=...
func (p *Provider) wordsURL(resource string, q url.Values) string {
	q.Set("api_key", p.apiKey)
	return p.baseURL + "/words.json/" + resource + "?" + q.Encode()
}
