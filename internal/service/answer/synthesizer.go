package answer

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"

	"github.com/newspulse/pulse/internal/core"
	"github.com/newspulse/pulse/pkg/log"
)

const (
	// maxContextChars bounds prompt size and completion cost.
	maxContextChars  = 4000
	truncationMarker = "... [truncated]"

	notFoundSentinel = "NOT_FOUND"
	minAnswerLength  = 10
	articlePrefix    = "From the article: "
)

// Synthesizer produces an answer for a question about one article using
// a three-stage escalation: extract from the article text, reason from
// headline plus background knowledge, then a last-resort fallback. Every
// stage absorbs completion failures; Answer always returns a string.
type Synthesizer struct {
	completer core.Completer
	fetcher   core.ArticleFetcher

	encOnce sync.Once
	enc     *tiktoken.Tiktoken
}

func NewSynthesizer(completer core.Completer, fetcher core.ArticleFetcher) *Synthesizer {
	return &Synthesizer{
		completer: completer,
		fetcher:   fetcher,
	}
}

func (s *Synthesizer) Answer(ctx context.Context, article core.Article, question string) string {
	logger := log.FromCtx(ctx)

	articleCtx := s.assembleContext(ctx, article)

	// Stage 1: extraction from the article text
	prompt := extractionPrompt(articleCtx, question)
	s.logTokens(ctx, "extraction", prompt)

	reply, err := s.completer.Generate(ctx, prompt)
	if err == nil {
		reply = strings.TrimSpace(reply)
		if reply != notFoundSentinel && len(reply) > minAnswerLength {
			return articlePrefix + reply
		}
		logger.Debug().Str("url", article.URL).Msg("extraction stage found no answer")
	} else {
		logger.Warn().Err(err).Msg("extraction completion failed, escalating")
	}

	// Stage 2: reasoning from headline/description and background knowledge
	prompt = reasoningPrompt(article, question)
	s.logTokens(ctx, "reasoning", prompt)

	reasoned, reasonErr := s.completer.Generate(ctx, prompt)
	if reasonErr == nil {
		return strings.TrimSpace(reasoned)
	}
	logger.Warn().Err(reasonErr).Msg("reasoning completion failed, falling back")

	// Stage 3: last resort, pointing at canonical sources
	fallback, fallbackErr := s.completer.Generate(ctx, fallbackPrompt(article, question))
	if fallbackErr == nil {
		return strings.TrimSpace(fallback)
	}
	logger.Error().Err(fallbackErr).Msg("fallback completion failed")

	return fmt.Sprintf("I couldn't generate an answer right now (%v). Please try rephrasing your question.", reasonErr)
}

// assembleContext prefers the fetched article body and degrades to
// title/description when the page is unreachable or unparseable.
func (s *Synthesizer) assembleContext(ctx context.Context, article core.Article) string {
	var body string
	if article.URL != "" && s.fetcher != nil {
		fetched := s.fetcher.FetchFullArticle(ctx, article.URL)
		if fetched != core.ContentUnavailable && !strings.HasPrefix(fetched, core.FetchErrorPrefix) {
			body = fetched
		}
	}
	if body == "" {
		body = article.Title + "\n\n" + article.Description
	}
	return truncateContext(body)
}

func truncateContext(text string) string {
	if len(text) <= maxContextChars {
		return text
	}
	return text[:maxContextChars] + truncationMarker
}

func (s *Synthesizer) logTokens(ctx context.Context, stage, prompt string) {
	logger := log.FromCtx(ctx)
	if !logger.Debug().Enabled() {
		return
	}

	s.encOnce.Do(func() {
		enc, err := tiktoken.GetEncoding("cl100k_base")
		if err != nil {
			logger.Debug().Err(err).Msg("token encoder unavailable")
			return
		}
		s.enc = enc
	})
	if s.enc == nil {
		return
	}

	logger.Debug().
		Str("stage", stage).
		Int("prompt_tokens", len(s.enc.Encode(prompt, nil, nil))).
		Msg("prompt assembled")
}
