package wordsapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/heartmarshall/define/internal/adapter/provider/httpjson"
	"github.com/heartmarshall/define/internal/provider"
)

const (
	defaultBaseURL = "https://wordsapiv1.p.rapidapi.com/words"
	// DefaultHost is the RapidAPI host header value for WordsAPI.
	DefaultHost = "wordsapiv1.p.rapidapi.com"
)

var errMissingWord = errors.New("response has no word")

// Provider fetches dictionary data from WordsAPI via RapidAPI.
// Credentials travel in the X-RapidAPI-Key and X-RapidAPI-Host headers.
type Provider struct {
	baseURL string
	apiKey  string
	host    string
	client  *httpjson.Client
	log     *slog.Logger
}

// NewProviderWithURL creates a Provider. An empty baseURL selects the public endpoint.
func NewProviderWithURL(baseURL, apiKey, host string, client *httpjson.Client, logger *slog.Logger) *Provider {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if host == "" {
		host = DefaultHost
	}
	return &Provider{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		host:    host,
		client:  client,
		log:     logger.With("adapter", "wordsapi"),
	}
}

// Definitions fetches the senses of word with their examples.
func (p *Provider) Definitions(ctx context.Context, word string) ([]provider.DefinitionResult, error) {
	var w apiWord
	if err := p.get(ctx, "wordsapi definitions", p.wordURL(word, ""), &w); err != nil {
		return nil, err
	}

	out := make([]provider.DefinitionResult, 0, len(w.Results))
	for _, r := range w.Results {
		examples := r.Examples
		if examples == nil {
			examples = []string{}
		}
		out = append(out, provider.DefinitionResult{
			Text:         r.Definition,
			PartOfSpeech: r.PartOfSpeech,
			Examples:     examples,
		})
	}

	p.log.DebugContext(ctx, "definitions fetched", slog.String("word", word), slog.Int("count", len(out)))
	return out, nil
}

// Pronunciations fetches the transcriptions of word. WordsAPI only serves
// IPA, so every result is tagged as such and wrapped in slashes.
func (p *Provider) Pronunciations(ctx context.Context, word string) ([]provider.PronunciationResult, error) {
	var body apiPronunciationBody
	if err := p.get(ctx, "wordsapi pronunciation", p.wordURL(word, "pronunciation"), &body); err != nil {
		return nil, err
	}

	transcriptions := body.Pronunciation.ordered()
	out := make([]provider.PronunciationResult, 0, len(transcriptions))
	for _, t := range transcriptions {
		out = append(out, provider.PronunciationResult{Raw: "/" + t + "/", RawType: provider.IPAType})
	}
	return out, nil
}

// RelatedWords fetches the synonyms or antonyms of word.
// A missing array yields an empty result.
func (p *Provider) RelatedWords(ctx context.Context, word string, rel provider.Relationship) ([]string, error) {
	var words []string
	switch rel {
	case provider.RelationshipSynonym:
		var body apiSynonyms
		if err := p.get(ctx, "wordsapi synonyms", p.wordURL(word, "synonyms"), &body); err != nil {
			return nil, err
		}
		words = body.Synonyms
	case provider.RelationshipAntonym:
		var body apiAntonyms
		if err := p.get(ctx, "wordsapi antonyms", p.wordURL(word, "antonyms"), &body); err != nil {
			return nil, err
		}
		words = body.Antonyms
	default:
		return nil, provider.ErrUnsupported
	}

	if words == nil {
		words = []string{}
	}
	return words, nil
}

// Syllables fetches the syllable split of word. WordsAPI does not mark stress.
func (p *Provider) Syllables(ctx context.Context, word string) ([]provider.SyllableResult, error) {
	var body apiSyllablesBody
	if err := p.get(ctx, "wordsapi syllables", p.wordURL(word, "syllables"), &body); err != nil {
		return nil, err
	}

	out := make([]provider.SyllableResult, 0, len(body.Syllables.List))
	for _, s := range body.Syllables.List {
		out = append(out, provider.SyllableResult{Text: s})
	}
	return out, nil
}

// RandomWord fetches a random word.
func (p *Provider) RandomWord(ctx context.Context) (string, error) {
	q := url.Values{}
	q.Set("random", "true")

	var w apiWord
	if err := p.get(ctx, "wordsapi random word", p.baseURL+"/?"+q.Encode(), &w); err != nil {
		return "", err
	}
	if w.Word == "" {
		return "", &provider.DecodeError{Op: "wordsapi random word", Err: errMissingWord}
	}
	return w.Word, nil
}

// WordOfTheDay is not offered by WordsAPI.
func (p *Provider) WordOfTheDay(context.Context) (string, error) {
	return "", provider.ErrUnsupported
}

func (p *Provider) get(ctx context.Context, op, reqURL string, out any) error {
	header := http.Header{}
	header.Set("X-RapidAPI-Key", p.apiKey)
	header.Set("X-RapidAPI-Host", p.host)
	return p.client.Get(ctx, op, reqURL, header, out)
}

// wordURL builds {base}/{word}[/{resource}].
func (p *Provider) wordURL(word, resource string) string {
	u := p.baseURL + "/" + url.PathEscape(word)
	if resource != "" {
		u += "/" + resource
	}
	return u
}
