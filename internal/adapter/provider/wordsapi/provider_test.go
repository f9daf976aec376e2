package wordsapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/define/internal/adapter/provider/httpjson"
	"github.com/heartmarshall/define/internal/provider"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestProvider(t *testing.T, handler http.HandlerFunc) *Provider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.Header.Get("X-RapidAPI-Key"))
		assert.Equal(t, "test-host", r.Header.Get("X-RapidAPI-Host"))
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	client := httpjson.New(time.Second, "", newTestLogger())
	return NewProviderWithURL(srv.URL+"/words", "test-key", "test-host", client, newTestLogger())
}

func TestProvider_Definitions_Success(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/words/hello", r.URL.Path)
		w.Write([]byte(`{
			"word": "hello",
			"results": [
				{"definition": "an expression of greeting", "partOfSpeech": "noun", "synonyms": ["hi"], "examples": ["every morning they exchanged polite hellos"]},
				{"definition": "used to answer the telephone", "partOfSpeech": null}
			],
			"syllables": {"count": 2, "list": ["hel", "lo"]},
			"pronunciation": {"all": "hɛ'loʊ"}
		}`))
	})

	defs, err := p.Definitions(context.Background(), "hello")
	require.NoError(t, err)
	require.Len(t, defs, 2)

	require.NotNil(t, defs[0].Text)
	assert.Equal(t, "an expression of greeting", *defs[0].Text)
	require.NotNil(t, defs[0].PartOfSpeech)
	assert.Equal(t, "noun", *defs[0].PartOfSpeech)
	assert.Equal(t, []string{"every morning they exchanged polite hellos"}, defs[0].Examples)

	assert.Nil(t, defs[1].PartOfSpeech)
	assert.NotNil(t, defs[1].Examples)
	assert.Empty(t, defs[1].Examples)
	assert.Nil(t, defs[1].SourceDictionary)
}

func TestProvider_Definitions_NotFound(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"success": false, "message": "word not found"}`))
	})

	_, err := p.Definitions(context.Background(), "qwzxv")
	require.Error(t, err)
	assert.ErrorIs(t, err, provider.ErrUpstream)
	assert.Contains(t, err.Error(), "word not found")
}

func TestProvider_Pronunciations(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
		want []string
	}{
		{
			name: "object with all",
			body: `{"word":"hello","pronunciation":{"all":"hɛ'loʊ"}}`,
			want: []string{"/hɛ'loʊ/"},
		},
		{
			name: "per part of speech",
			body: `{"word":"record","pronunciation":{"verb":"rɪ'kɔrd","noun":"'rɛkərd","all":"rɪ'kɔrd"}}`,
			want: []string{"/rɪ'kɔrd/", "/'rɛkərd/", "/rɪ'kɔrd/"},
		},
		{
			name: "bare string",
			body: `{"word":"cat","pronunciation":"kæt"}`,
			want: []string{"/kæt/"},
		},
		{
			name: "missing",
			body: `{"word":"xyz"}`,
			want: []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/words/word/pronunciation", r.URL.Path)
				w.Write([]byte(tt.body))
			})

			prons, err := p.Pronunciations(context.Background(), "word")
			require.NoError(t, err)

			got := make([]string, 0, len(prons))
			for _, pr := range prons {
				assert.Equal(t, provider.IPAType, pr.RawType)
				got = append(got, pr.Raw)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProvider_Pronunciations_WrongShape(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"word":"cat","pronunciation":["kæt"]}`))
	})

	_, err := p.Pronunciations(context.Background(), "cat")
	assert.ErrorIs(t, err, provider.ErrDecode)
}

func TestProvider_RelatedWords(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/words/happy/synonyms":
			w.Write([]byte(`{"word":"happy","synonyms":["glad","felicitous"]}`))
		case "/words/happy/antonyms":
			w.Write([]byte(`{"word":"happy","antonyms":["unhappy"]}`))
		default:
			t.Errorf("unexpected path: %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	})

	syns, err := p.RelatedWords(context.Background(), "happy", provider.RelationshipSynonym)
	require.NoError(t, err)
	assert.Equal(t, []string{"glad", "felicitous"}, syns)

	ants, err := p.RelatedWords(context.Background(), "happy", provider.RelationshipAntonym)
	require.NoError(t, err)
	assert.Equal(t, []string{"unhappy"}, ants)
}

func TestProvider_RelatedWords_MissingArrayIsEmpty(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"word":"the"}`))
	})

	ants, err := p.RelatedWords(context.Background(), "the", provider.RelationshipAntonym)
	require.NoError(t, err)
	assert.NotNil(t, ants)
	assert.Empty(t, ants)
}

func TestProvider_Syllables(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/words/hello/syllables", r.URL.Path)
		w.Write([]byte(`{"word":"hello","syllables":{"count":2,"list":["hel","lo"]}}`))
	})

	sylls, err := p.Syllables(context.Background(), "hello")
	require.NoError(t, err)
	assert.Equal(t, []provider.SyllableResult{{Text: "hel"}, {Text: "lo"}}, sylls)
}

func TestProvider_RandomWord(t *testing.T) {
	t.Parallel()

	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/words/", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("random"))
		w.Write([]byte(`{"word":"quixotic","results":[]}`))
	})

	word, err := p.RandomWord(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "quixotic", word)
}

func TestProvider_WordOfTheDay_Unsupported(t *testing.T) {
	t.Parallel()

	var calls atomic.Int32
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	})

	_, err := p.WordOfTheDay(context.Background())
	assert.ErrorIs(t, err, provider.ErrUnsupported)
	assert.Equal(t, int32(0), calls.Load())
}
