package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/heartmarshall/define/internal/adapter/provider/freedict"
	"github.com/heartmarshall/define/internal/adapter/provider/httpjson"
	"github.com/heartmarshall/define/internal/adapter/provider/wordnik"
	"github.com/heartmarshall/define/internal/adapter/provider/wordsapi"
	"github.com/heartmarshall/define/internal/config"
	"github.com/heartmarshall/define/internal/domain"
	"github.com/heartmarshall/define/internal/presenter"
	"github.com/heartmarshall/define/internal/service/lookup"
	"github.com/heartmarshall/define/pkg/ctxutil"
)

// Run is the application entry point. It parses args, loads configuration,
// performs one lookup and writes the result to stdout. Errors are reported
// on stderr as "Error: <message>". The return value is the exit code.
func Run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	r := &runner{
		stdout:     stdout,
		stderr:     stderr,
		loadConfig: config.Load,
		getenv:     os.Getenv,
	}
	return r.exit(r.run(ctx, args))
}

type runner struct {
	stdout     io.Writer
	stderr     io.Writer
	loadConfig func() (*config.Config, error)
	getenv     func(string) string
}

func (r *runner) exit(err error) int {
	if err == nil {
		return 0
	}
	fmt.Fprintf(r.stderr, "Error: %s\n", err)
	return 1
}

func (r *runner) run(ctx context.Context, args []string) error {
	opts, help, err := parseOptions(args)
	if errors.Is(err, errHelp) {
		fmt.Fprintln(r.stdout, help)
		return nil
	}
	if err != nil {
		return err
	}

	if opts.Version {
		fmt.Fprintf(r.stdout, "define %s\n", BuildVersion())
		return nil
	}

	mode, err := opts.mode()
	if err != nil {
		return err
	}
	if opts.Max != nil && *opts.Max < 0 {
		return domain.NewConfigError("max", "must be >= 0")
	}

	cfg, err := r.loadConfig()
	if err != nil {
		return err
	}
	if opts.Provider != "" {
		if err := config.ValidateProvider(opts.Provider); err != nil {
			return err
		}
		cfg.Provider = opts.Provider
	}

	apiKey := opts.UseKey
	if apiKey == "" {
		apiKey = cfg.APIKey()
	}
	if cfg.RequiresKey() && apiKey == "" {
		return domain.NewConfigError("api key",
			fmt.Sprintf("%s requires a key: set %s or pass --use-key", cfg.Provider, cfg.KeyEnv()))
	}

	maxDefs := cfg.Display.Max
	if opts.Max != nil {
		maxDefs = *opts.Max
	}

	logger := NewLogger(r.stderr, cfg.Log)
	ctx = ctxutil.NewLookupContext(ctx)

	logger.DebugContext(ctx, "lookup started",
		slog.String("version", BuildVersion()),
		slog.String("provider", cfg.Provider),
		slog.String("mode", mode.String()),
		slog.String("lookup_id", ctxutil.LookupIDFromCtx(ctx)),
	)

	svc := newLookupService(cfg, apiKey, logger)

	word := opts.Args.Word
	if mode != domain.LookupModeWord {
		word, err = svc.ResolveWord(ctx, mode)
		if err != nil {
			return err
		}
	}

	info, err := svc.Fetch(ctx, word)
	if err != nil {
		return err
	}

	if opts.JSON {
		data, err := presenter.RenderJSON(info)
		if err != nil {
			return fmt.Errorf("render json: %w", err)
		}
		_, err = fmt.Fprintf(r.stdout, "%s\n", data)
		return err
	}

	lines := presenter.Render(info, presenter.Options{
		Max:           maxDefs,
		ShowExamples:  opts.Examples,
		ShowPhonetics: opts.Phonetics,
		ShowSynonyms:  opts.Synonyms,
		ShowAntonyms:  opts.Antonyms,
		ShowSyllables: opts.Syllables,
		NoTypes:       opts.NoTypes,
		Colour:        r.colour(opts, cfg),
		Verbose:       opts.Verbose,
		Heading:       mode != domain.LookupModeWord,
	})
	for _, line := range lines {
		if _, err := fmt.Fprintln(r.stdout, line); err != nil {
			return err
		}
	}
	return nil
}

// colour is on unless disabled by flag, config or the NO_COLOR convention.
func (r *runner) colour(opts *Options, cfg *config.Config) bool {
	return !opts.NoColour && !cfg.Display.NoColour && r.getenv("NO_COLOR") == ""
}

func newLookupService(cfg *config.Config, apiKey string, logger *slog.Logger) *lookup.Service {
	client := httpjson.New(cfg.HTTP.Timeout, cfg.HTTP.UserAgent, logger)

	switch cfg.Provider {
	case config.ProviderWordsAPI:
		return lookup.NewService(logger,
			wordsapi.NewProviderWithURL(cfg.WordsAPI.BaseURL, apiKey, cfg.WordsAPI.Host, client, logger))
	case config.ProviderFreeDict:
		return lookup.NewService(logger,
			freedict.NewProviderWithURL(cfg.FreeDict.BaseURL, client, logger))
	default:
		return lookup.NewService(logger,
			wordnik.NewProviderWithURL(cfg.Wordnik.BaseURL, apiKey, client, logger))
	}
}
