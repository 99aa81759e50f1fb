package news

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newspulse/pulse/internal/config"
	"github.com/newspulse/pulse/internal/core"
)

const fixture = `{
	"totalArticles": 1,
	"articles": [{
		"title": "Big Launch",
		"description": "Something launched.",
		"content": "Full content...",
		"url": "https://news.example/launch",
		"image": "https://news.example/launch.jpg",
		"publishedAt": "2024-05-01T10:00:00Z",
		"source": {"name": "Example News", "url": "https://news.example"}
	}]
}`

func testConfig() *config.GNewsConfig {
	return &config.GNewsConfig{APIKey: "test-key", Language: "en", Country: "in"}
}

func TestSearch(t *testing.T) {
	var gotQuery map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		q := r.URL.Query()
		gotQuery = map[string]string{
			"q": q.Get("q"), "lang": q.Get("lang"), "country": q.Get("country"),
			"max": q.Get("max"), "apikey": q.Get("apikey"),
		}
		fmt.Fprint(w, fixture)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testConfig(), server.URL)
	articles, err := client.Search(context.Background(), "rockets", core.SearchOptions{MaxResults: 5})

	require.NoError(t, err)
	require.Len(t, articles, 1)
	assert.Equal(t, "Big Launch", articles[0].Title)
	assert.Equal(t, "Example News", articles[0].Source)
	assert.Equal(t, "https://news.example/launch.jpg", articles[0].ImageURL)

	assert.Equal(t, "rockets", gotQuery["q"])
	assert.Equal(t, "en", gotQuery["lang"])
	assert.Equal(t, "in", gotQuery["country"])
	assert.Equal(t, "5", gotQuery["max"])
	assert.Equal(t, "test-key", gotQuery["apikey"])
}

func TestTopHeadlines_TopicOptional(t *testing.T) {
	var gotTopic string
	var hasTopic bool
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/top-headlines", r.URL.Path)
		gotTopic = r.URL.Query().Get("topic")
		_, hasTopic = r.URL.Query()["topic"]
		fmt.Fprint(w, fixture)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testConfig(), server.URL)

	_, err := client.TopHeadlines(context.Background(), "technology", core.SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, "technology", gotTopic)

	_, err = client.TopHeadlines(context.Background(), "", core.SearchOptions{})
	require.NoError(t, err)
	assert.False(t, hasTopic, "empty topic must be omitted")
}

func TestTopHeadlines_OptionOverrides(t *testing.T) {
	var gotLang, gotCountry string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotLang = r.URL.Query().Get("lang")
		gotCountry = r.URL.Query().Get("country")
		fmt.Fprint(w, fixture)
	}))
	defer server.Close()

	client := NewClientWithBaseURL(testConfig(), server.URL)
	_, err := client.TopHeadlines(context.Background(), "world", core.SearchOptions{Language: "hi", Country: "us"})

	require.NoError(t, err)
	assert.Equal(t, "hi", gotLang)
	assert.Equal(t, "us", gotCountry)
}

func TestClampMax(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{0, 10},
		{-3, 10},
		{1, 1},
		{50, 50},
		{100, 100},
		{500, 100},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampMax(tt.in))
	}
}
