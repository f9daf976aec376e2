package config

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/define/internal/domain"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
// Provider names are normalized to lower case.
// A missing API key is not checked here: the command line may still
// supply one.
func (c *Config) Validate() error {
	c.Provider = strings.ToLower(strings.TrimSpace(c.Provider))
	if err := ValidateProvider(c.Provider); err != nil {
		return err
	}

	if c.HTTP.Timeout <= 0 {
		return domain.NewConfigError("http.timeout", "must be > 0")
	}
	if c.Display.Max < 0 {
		return domain.NewConfigError("display.max", "must be >= 0")
	}

	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return domain.NewConfigError("log.format", "must be one of: text, json")
	}

	return nil
}

// ValidateProvider checks that name is a known provider.
func ValidateProvider(name string) error {
	switch name {
	case ProviderWordnik, ProviderWordsAPI, ProviderFreeDict:
		return nil
	}
	return domain.NewConfigError("provider",
		fmt.Sprintf("unknown provider %q (want wordnik, wordsapi or freedict)", name))
}
