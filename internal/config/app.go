package config

import (
	"context"
	"path/filepath"

	"github.com/caarlos0/env/v9"
	"github.com/newspulse/pulse/pkg/log"
)

type AppConfig struct {
	RuntimePath string `env:"PULSE_RUNTIME_PATH" envDefault:".pulse"`
	// Allow selecting the completion provider
	LLMProvider string `env:"LLM_PROVIDER" envDefault:"gemini"`

	HTTPAddr string `env:"PULSE_HTTP_ADDR" envDefault:":8080"`
}

func NewAppConfig(ctx context.Context) *AppConfig {
	c := &AppConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse App config")
	}
	return c
}

func (c AppConfig) GetRuntimePath() string {
	return c.RuntimePath
}

func (c AppConfig) GetDatabasePath() string {
	return filepath.Join(c.RuntimePath, "pulse.db")
}
