package llm

import (
	"context"
	"fmt"

	"github.com/newspulse/pulse/internal/config"
	"github.com/newspulse/pulse/internal/core"
	"github.com/newspulse/pulse/pkg/log"
)

// NewProvider creates the appropriate Completer based on configuration.
func NewProvider(ctx context.Context, cfg *config.AppConfig) (core.Completer, error) {
	log.FromCtx(ctx).Info().
		Str("provider", cfg.LLMProvider).
		Msg("starting llm provider")

	switch cfg.LLMProvider {
	case "gemini":
		gc := config.NewGeminiConfig(ctx)
		return NewGemini(gc.APIKey, gc.Model), nil
	case "openai", "custom":
		oc := config.NewOpenAIConfig(ctx)
		return NewOpenAICompatible(oc.BaseURL, oc.APIKey, oc.Model), nil
	default:
		return nil, fmt.Errorf("unknown llm provider: %s", cfg.LLMProvider)
	}
}
