package answer

import (
	"context"
	"fmt"
	"strings"
)

// Summarize condenses article text into one paragraph. Unlike Answer,
// enrichment calls surface errors; the transport turns them into
// warnings instead of failing the page.
func (s *Synthesizer) Summarize(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	summary, err := s.completer.Generate(ctx, summaryPrompt(text))
	if err != nil {
		return "", fmt.Errorf("summarize: %w", err)
	}
	return strings.TrimSpace(summary), nil
}

// SuggestQuestions proposes discussion questions for an article, one
// per line.
func (s *Synthesizer) SuggestQuestions(ctx context.Context, text string, n int) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", nil
	}
	if n < 1 {
		n = 3
	}
	questions, err := s.completer.Generate(ctx, questionsPrompt(text, n))
	if err != nil {
		return "", fmt.Errorf("suggest questions: %w", err)
	}
	return strings.TrimSpace(questions), nil
}
