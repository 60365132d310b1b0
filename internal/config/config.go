// Package config loads server configuration from environment variables.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Sentiment provider names accepted by ONEIRO_SENTIMENT_PROVIDER.
const (
	ProviderLexicon = "lexicon"
	ProviderOpenAI  = "openai"
)

// Config holds everything the server reads from the environment. The
// lexicon provider is the default so the server works with no setup; the
// OpenAI provider needs OPENAI_API_KEY.
type Config struct {
	SentimentProvider string `env:"ONEIRO_SENTIMENT_PROVIDER" envDefault:"lexicon"`
	OpenAIModel       string `env:"ONEIRO_OPENAI_MODEL" envDefault:"gpt-4o-mini"`
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	MaxList           int    `env:"ONEIRO_MAX_LIST" envDefault:"20"`
}

// Load parses the environment into a Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.SentimentProvider != ProviderLexicon && cfg.SentimentProvider != ProviderOpenAI {
		return Config{}, fmt.Errorf("unknown sentiment provider %q", cfg.SentimentProvider)
	}
	if cfg.MaxList < 1 {
		return Config{}, fmt.Errorf("ONEIRO_MAX_LIST must be at least 1, got %d", cfg.MaxList)
	}
	return cfg, nil
}
