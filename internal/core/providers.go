package core

import "context"

// Completer is the single-operation text completion service the answer
// pipeline is built on.
type Completer interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ArticleFetcher retrieves the readable body of an article page. It
// never fails hard: errors come back as text (see FetchErrorPrefix and
// ContentUnavailable).
type ArticleFetcher interface {
	FetchFullArticle(ctx context.Context, url string) string
}

type SearchOptions struct {
	Language   string
	Country    string
	MaxResults int
}

type NewsProvider interface {
	Search(ctx context.Context, query string, opts SearchOptions) ([]Article, error)
	TopHeadlines(ctx context.Context, topic string, opts SearchOptions) ([]Article, error)
}
