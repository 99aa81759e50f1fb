package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newspulse/pulse/internal/core"
)

func TestGemini_Generate(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.Header.Get("x-goog-api-key")
		json.NewDecoder(r.Body).Decode(&gotBody)

		fmt.Fprint(w, `{"candidates":[{"content":{"parts":[{"text":"generated text"}]}}]}`)
	}))
	defer server.Close()

	g := NewGeminiWithBaseURL(server.URL, "test-key", "gemini-2.0-flash")
	got, err := g.Generate(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "generated text", got)
	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", gotPath)
	assert.Equal(t, "test-key", gotKey)
	require.Contains(t, gotBody, "contents")
}

func TestGemini_Generate_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		fmt.Fprint(w, `{"error":{"message":"quota exceeded"}}`)
	}))
	defer server.Close()

	g := NewGeminiWithBaseURL(server.URL, "test-key", "gemini-2.0-flash")
	_, err := g.Generate(context.Background(), "hello")

	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrServiceUnavailable)
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestGemini_Generate_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"candidates":[]}`)
	}))
	defer server.Close()

	g := NewGeminiWithBaseURL(server.URL, "test-key", "gemini-2.0-flash")
	_, err := g.Generate(context.Background(), "hello")

	assert.ErrorIs(t, err, core.ErrServiceUnavailable)
}

func TestOpenAICompatible_Generate(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		fmt.Fprint(w, `{"choices":[{"message":{"content":"chat reply"}}]}`)
	}))
	defer server.Close()

	o := NewOpenAICompatible(server.URL, "sk-test", "gpt-test")
	got, err := o.Generate(context.Background(), "hello")

	require.NoError(t, err)
	assert.Equal(t, "chat reply", got)
	assert.Equal(t, "Bearer sk-test", gotAuth)
}

func TestOpenAICompatible_Generate_EmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"choices":[]}`)
	}))
	defer server.Close()

	o := NewOpenAICompatible(server.URL, "sk-test", "gpt-test")
	_, err := o.Generate(context.Background(), "hello")

	assert.ErrorIs(t, err, core.ErrServiceUnavailable)
}
