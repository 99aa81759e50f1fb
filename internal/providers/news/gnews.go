package news

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/newspulse/pulse/internal/config"
	"github.com/newspulse/pulse/internal/core"
	"github.com/newspulse/pulse/pkg/retry"
)

const defaultBaseURL = "https://gnews.io/api/v4"

// Client wraps the GNews v4 REST API.
type Client struct {
	client   *http.Client
	retrier  *retry.Retrier
	baseURL  string
	apiKey   string
	language string
	country  string
}

func NewClient(cfg *config.GNewsConfig) *Client {
	return NewClientWithBaseURL(cfg, defaultBaseURL)
}

func NewClientWithBaseURL(cfg *config.GNewsConfig, baseURL string) *Client {
	return &Client{
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
		retrier:  retry.NewDefaultRetrier(),
		baseURL:  baseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		country:  cfg.Country,
	}
}

func (c *Client) Search(ctx context.Context, query string, opts core.SearchOptions) ([]core.Article, error) {
	params := c.baseParams(opts)
	params.Set("q", query)

	data, err := c.request(ctx, "search", params)
	if err != nil {
		return nil, err
	}
	return normalize(data.Articles), nil
}

func (c *Client) TopHeadlines(ctx context.Context, topic string, opts core.SearchOptions) ([]core.Article, error) {
	params := c.baseParams(opts)
	if topic != "" {
		params.Set("topic", topic)
	}

	data, err := c.request(ctx, "top-headlines", params)
	if err != nil {
		return nil, err
	}
	return normalize(data.Articles), nil
}

func (c *Client) baseParams(opts core.SearchOptions) url.Values {
	lang := opts.Language
	if lang == "" {
		lang = c.language
	}
	country := opts.Country
	if country == "" {
		country = c.country
	}

	params := url.Values{}
	params.Set("lang", lang)
	params.Set("country", country)
	params.Set("max", strconv.Itoa(clampMax(opts.MaxResults)))
	return params
}

type apiResponse struct {
	Articles []apiArticle `json:"articles"`
}

type apiArticle struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Content     string `json:"content"`
	URL         string `json:"url"`
	Image       string `json:"image"`
	PublishedAt string `json:"publishedAt"`
	Source      struct {
		Name string `json:"name"`
	} `json:"source"`
}

func (c *Client) request(ctx context.Context, endpoint string, params url.Values) (apiResponse, error) {
	params.Set("apikey", c.apiKey)
	reqURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	var result apiResponse
	err := c.retrier.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return fmt.Errorf("create request: %w", err)
		}

		resp, err := c.client.Do(req)
		if err != nil {
			return fmt.Errorf("request: %w", err)
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read body: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("gnews api error: http %d: %s", resp.StatusCode, string(data))
		}

		if err := json.Unmarshal(data, &result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
		return nil
	})
	if err != nil {
		return apiResponse{}, err
	}
	return result, nil
}

func clampMax(max int) int {
	if max < 1 {
		return 10
	}
	if max > 100 {
		return 100
	}
	return max
}

func normalize(articles []apiArticle) []core.Article {
	normalized := make([]core.Article, 0, len(articles))
	for _, a := range articles {
		normalized = append(normalized, core.Article{
			Title:       a.Title,
			Description: a.Description,
			Content:     a.Content,
			URL:         a.URL,
			ImageURL:    a.Image,
			PublishedAt: a.PublishedAt,
			Source:      a.Source.Name,
		})
	}
	return normalized
}
