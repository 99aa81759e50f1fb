package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/newspulse/pulse/pkg/log"
)

// OpenAIConfig covers any OpenAI-compatible completion endpoint.
type OpenAIConfig struct {
	BaseURL string `env:"OPENAI_BASE_URL" envDefault:"https://api.openai.com"`
	APIKey  string `env:"OPENAI_API_KEY,required,notEmpty"`
	Model   string `env:"OPENAI_MODEL,required,notEmpty"`
}

func NewOpenAIConfig(ctx context.Context) *OpenAIConfig {
	c := &OpenAIConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse OpenAI config")
	}
	return c
}
