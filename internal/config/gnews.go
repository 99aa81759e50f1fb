package config

import (
	"context"

	"github.com/caarlos0/env/v11"
	"github.com/newspulse/pulse/pkg/log"
)

type GNewsConfig struct {
	APIKey   string `env:"GNEWS_API_KEY,required,notEmpty"`
	Language string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	Country  string `env:"DEFAULT_COUNTRY" envDefault:"in"`
}

func NewGNewsConfig(ctx context.Context) *GNewsConfig {
	c := &GNewsConfig{}
	if err := env.Parse(c); err != nil {
		log.FromCtx(ctx).Fatal().Err(err).Msg("failed to parse GNews config")
	}
	return c
}
