package config

import "time"

// Provider names accepted by the provider setting.
const (
	ProviderWordnik  = "wordnik"
	ProviderWordsAPI = "wordsapi"
	ProviderFreeDict = "freedict"
)

// Config is the root application configuration.
type Config struct {
	Provider string         `yaml:"provider" env:"DICT_PROVIDER" env-default:"wordnik"`
	Wordnik  WordnikConfig  `yaml:"wordnik"`
	WordsAPI WordsAPIConfig `yaml:"wordsapi"`
	FreeDict FreeDictConfig `yaml:"freedict"`
	HTTP     HTTPConfig     `yaml:"http"`
	Log      LogConfig      `yaml:"log"`
	Display  DisplayConfig  `yaml:"display"`
}

// WordnikConfig holds Wordnik API settings.
type WordnikConfig struct {
	APIKey  string `yaml:"api_key"  env:"WORDNIK_API_KEY"`
	BaseURL string `yaml:"base_url" env:"WORDNIK_BASE_URL" env-default:"https://api.wordnik.com/v4"`
}

// WordsAPIConfig holds WordsAPI (RapidAPI) settings.
type WordsAPIConfig struct {
	APIKey  string `yaml:"api_key"  env:"WORDSAPI_KEY"`
	Host    string `yaml:"host"     env:"WORDSAPI_HOST"     env-default:"wordsapiv1.p.rapidapi.com"`
	BaseURL string `yaml:"base_url" env:"WORDSAPI_BASE_URL" env-default:"https://wordsapiv1.p.rapidapi.com/words"`
}

// FreeDictConfig holds dictionaryapi.dev settings.
type FreeDictConfig struct {
	BaseURL string `yaml:"base_url" env:"FREEDICT_BASE_URL" env-default:"https://api.dictionaryapi.dev/api/v2/entries/en"`
}

// HTTPConfig holds outbound HTTP client settings.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout"    env:"HTTP_TIMEOUT"    env-default:"10s"`
	UserAgent string        `yaml:"user_agent" env:"HTTP_USER_AGENT" env-default:"define-cli"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"warn"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"text"`
}

// DisplayConfig holds rendering defaults that CLI flags may override.
// Colour is expressed negatively: env-default only fills zero values, so a
// "true" default could never be switched off from YAML.
type DisplayConfig struct {
	Max      int  `yaml:"max"       env:"DEFINE_MAX"       env-default:"10"`
	NoColour bool `yaml:"no_colour" env:"DEFINE_NO_COLOUR"`
}

// APIKey returns the configured key for the selected provider.
// The freedict provider needs no key and always yields "".
func (c *Config) APIKey() string {
	switch c.Provider {
	case ProviderWordnik:
		return c.Wordnik.APIKey
	case ProviderWordsAPI:
		return c.WordsAPI.APIKey
	}
	return ""
}

// RequiresKey reports whether the selected provider needs an API key.
func (c *Config) RequiresKey() bool {
	return c.Provider == ProviderWordnik || c.Provider == ProviderWordsAPI
}

// KeyEnv names the environment variable holding the selected provider's key.
func (c *Config) KeyEnv() string {
	switch c.Provider {
	case ProviderWordnik:
		return "WORDNIK_API_KEY"
	case ProviderWordsAPI:
		return "WORDSAPI_KEY"
	}
	return ""
}
