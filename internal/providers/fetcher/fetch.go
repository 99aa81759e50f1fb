package fetcher

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/inbucket/html2text"
	"github.com/newspulse/pulse/internal/core"
	"github.com/newspulse/pulse/pkg/log"
	"golang.org/x/net/html"
)

const (
	maxResponseSize     = 2 << 20 // 2MB limit
	defaultFetchTimeout = 20 * time.Second
)

// decorative tags stripped from the article container before text
// extraction.
var strippedTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"iframe":   true,
	"nav":      true,
	"aside":    true,
	"figure":   true,
	"form":     true,
	"button":   true,
	"svg":      true,
}

// Fetcher downloads an article page and extracts its readable body.
// All failures come back as text: callers degrade to title/description
// instead of aborting the question.
type Fetcher struct {
	client *http.Client
}

func NewWithTimeout(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

func New() *Fetcher {
	return NewWithTimeout(defaultFetchTimeout)
}

func (f *Fetcher) FetchFullArticle(ctx context.Context, url string) string {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Sprintf("%s: %v", core.FetchErrorPrefix, err)
	}
	req.Header.Set("User-Agent", core.BrowserUserAgent)

	resp, err := f.client.Do(req)
	if err != nil {
		return fmt.Sprintf("%s: %v", core.FetchErrorPrefix, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Sprintf("%s: HTTP %d", core.FetchErrorPrefix, resp.StatusCode)
	}

	doc, err := html.Parse(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return fmt.Sprintf("%s: %v", core.FetchErrorPrefix, err)
	}

	container := findContainer(doc)
	if container == nil {
		log.FromCtx(ctx).Debug().Str("url", url).Msg("no article container found")
		return core.ContentUnavailable
	}
	stripDecorative(container)

	var buf bytes.Buffer
	if err := html.Render(&buf, container); err != nil {
		return fmt.Sprintf("%s: %v", core.FetchErrorPrefix, err)
	}

	text, err := html2text.FromReader(&buf, html2text.Options{OmitLinks: true})
	if err != nil {
		return fmt.Sprintf("%s: %v", core.FetchErrorPrefix, err)
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return core.ContentUnavailable
	}
	return text
}

// findContainer tries site-agnostic selectors in priority order: a
// "story-body" class, a plain <article> tag, then an "article-body"
// class.
func findContainer(doc *html.Node) *html.Node {
	matchers := []func(*html.Node) bool{
		hasClassContaining("story-body"),
		isElement("article"),
		hasClassContaining("article-body"),
	}
	for _, match := range matchers {
		if n := findFirst(doc, match); n != nil {
			return n
		}
	}
	return nil
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	if n.Type == html.ElementNode && match(n) {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findFirst(c, match); found != nil {
			return found
		}
	}
	return nil
}

func isElement(tag string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		return n.Data == tag
	}
}

func hasClassContaining(substr string) func(*html.Node) bool {
	return func(n *html.Node) bool {
		for _, attr := range n.Attr {
			if attr.Key == "class" && strings.Contains(attr.Val, substr) {
				return true
			}
		}
		return false
	}
}

func stripDecorative(n *html.Node) {
	var next *html.Node
	for c := n.FirstChild; c != nil; c = next {
		next = c.NextSibling
		if c.Type == html.ElementNode && strippedTags[c.Data] {
			n.RemoveChild(c)
			continue
		}
		stripDecorative(c)
	}
}
