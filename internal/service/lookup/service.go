package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/define/internal/domain"
	"github.com/heartmarshall/define/internal/provider"
	"github.com/heartmarshall/define/pkg/ctxutil"
)

type dictionaryProvider interface {
	Definitions(ctx context.Context, word string) ([]provider.DefinitionResult, error)
	Pronunciations(ctx context.Context, word string) ([]provider.PronunciationResult, error)
	RelatedWords(ctx context.Context, word string, rel provider.Relationship) ([]string, error)
	Syllables(ctx context.Context, word string) ([]provider.SyllableResult, error)
	RandomWord(ctx context.Context) (string, error)
	WordOfTheDay(ctx context.Context) (string, error)
}

// Service assembles a WordInfo from one dictionary provider.
type Service struct {
	log  *slog.Logger
	dict dictionaryProvider
}

// NewService creates a new lookup service.
func NewService(logger *slog.Logger, dict dictionaryProvider) *Service {
	return &Service{
		log:  logger.With("service", "lookup"),
		dict: dict,
	}
}

// Fetch looks up word. Definitions are mandatory: their failure fails the
// lookup. Pronunciations, synonyms, antonyms and syllables are fetched
// concurrently and degrade to empty lists on failure.
func (s *Service) Fetch(ctx context.Context, word string) (*domain.WordInfo, error) {
	if strings.TrimSpace(word) == "" {
		return nil, domain.NewConfigError("word", "required")
	}

	var (
		definitions    []provider.DefinitionResult
		pronunciations []string
		synonyms       []string
		antonyms       []string
		syllables      []provider.SyllableResult
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		definitions, err = s.dict.Definitions(gctx, word)
		if err != nil {
			return fmt.Errorf("fetch definitions for %q: %w", word, err)
		}
		return nil
	})

	g.Go(func() error {
		prons, err := s.dict.Pronunciations(gctx, word)
		if err == nil {
			pronunciations, err = provider.IPATranscriptions(prons)
		}
		if err != nil {
			s.degrade(gctx, "pronunciations", word, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		synonyms, err = s.dict.RelatedWords(gctx, word, provider.RelationshipSynonym)
		if err != nil {
			s.degrade(gctx, "synonyms", word, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		antonyms, err = s.dict.RelatedWords(gctx, word, provider.RelationshipAntonym)
		if err != nil {
			s.degrade(gctx, "antonyms", word, err)
		}
		return nil
	})

	g.Go(func() error {
		var err error
		syllables, err = s.dict.Syllables(gctx, word)
		if err != nil {
			s.degrade(gctx, "syllables", word, err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		s.log.DebugContext(ctx, "lookup failed",
			slog.String("word", word),
			slog.String("lookup_id", ctxutil.LookupIDFromCtx(ctx)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	info := mapToWordInfo(word, definitions, pronunciations, synonyms, antonyms, syllables)

	s.log.DebugContext(ctx, "lookup complete",
		slog.String("word", word),
		slog.String("lookup_id", ctxutil.LookupIDFromCtx(ctx)),
		slog.Int("definitions", len(info.Definitions)),
		slog.Int("pronunciations", len(info.Pronunciations)),
		slog.Int("synonyms", len(info.Synonyms)),
		slog.Int("antonyms", len(info.Antonyms)),
		slog.Int("syllables", len(info.Syllables)),
	)

	return info, nil
}

// ResolveWord asks the provider for a word when none was given.
func (s *Service) ResolveWord(ctx context.Context, mode domain.LookupMode) (string, error) {
	if !mode.IsValid() {
		return "", domain.NewConfigError("mode", fmt.Sprintf("unknown lookup mode %q", mode))
	}

	var (
		word string
		err  error
	)
	switch mode {
	case domain.LookupModeRandom:
		word, err = s.dict.RandomWord(ctx)
		if err != nil {
			return "", fmt.Errorf("fetch random word: %w", err)
		}
	case domain.LookupModeWordOfTheDay:
		word, err = s.dict.WordOfTheDay(ctx)
		if err != nil {
			return "", fmt.Errorf("fetch word of the day: %w", err)
		}
	default:
		return "", domain.NewConfigError("mode", fmt.Sprintf("cannot resolve a word for mode %s", mode))
	}

	s.log.DebugContext(ctx, "word resolved",
		slog.String("mode", mode.String()),
		slog.String("word", word),
		slog.String("lookup_id", ctxutil.LookupIDFromCtx(ctx)),
	)
	return word, nil
}

// degrade logs an optional sub-query failure. Unsupported operations, words
// without IPA and cancellation after a definitions failure are expected and
// logged quietly.
func (s *Service) degrade(ctx context.Context, field, word string, err error) {
	attrs := []any{
		slog.String("field", field),
		slog.String("word", word),
		slog.String("lookup_id", ctxutil.LookupIDFromCtx(ctx)),
		slog.String("error", err.Error()),
	}
	if errors.Is(err, provider.ErrUnsupported) || errors.Is(err, provider.ErrNoPhonetics) || ctx.Err() != nil {
		s.log.DebugContext(ctx, "optional field unavailable", attrs...)
		return
	}
	s.log.WarnContext(ctx, "optional field failed, proceeding without it", attrs...)
}
