package narrative_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/raisket/advisor/internal/narrative"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	g, err := narrative.New("anthropic", "sk-test")
	require.Nil(t, err)
	assert.Equal(t, "anthropic", g.Name())

	g, err = narrative.New("openai", "sk-test")
	require.Nil(t, err)
	assert.Equal(t, "openai", g.Name())

	_, err = narrative.New("gemini", "sk-test")
	assert.ErrorIs(t, err, narrative.ErrUnknownProvider)
}

func TestNewWithoutAPIKey(t *testing.T) {
	_, err := narrative.NewAnthropicGenerator("")
	assert.ErrorIs(t, err, narrative.ErrNoAPIKey)

	_, err = narrative.NewOpenAIGenerator("")
	assert.ErrorIs(t, err, narrative.ErrNoAPIKey)
}

func TestAnthropicGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/messages", r.URL.Path)
		assert.Equal(t, "sk-test", r.Header.Get("x-api-key"))
		assert.NotEmpty(t, r.Header.Get("anthropic-version"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"content": [{"type": "text", "text": "Your budget is healthy."}],
			"stop_reason": "end_turn"
		}`))
	}))
	defer server.Close()

	g, err := narrative.NewAnthropicGenerator("sk-test", narrative.WithAnthropicBaseURL(server.URL))
	require.Nil(t, err)

	text, err := g.Generate(context.Background(), "Budget analysis: healthy")
	require.Nil(t, err)
	assert.Equal(t, "Your budget is healthy.", text)
}

func TestAnthropicGenerateUnauthorized(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"type": "error", "error": {"type": "authentication_error", "message": "invalid x-api-key"}}`))
	}))
	defer server.Close()

	g, err := narrative.NewAnthropicGenerator("sk-wrong", narrative.WithAnthropicBaseURL(server.URL))
	require.Nil(t, err)

	_, err = g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, narrative.ErrNoAPIKey)
}

func TestAnthropicGenerateServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		_, _ = w.Write([]byte(`upstream overloaded`))
	}))
	defer server.Close()

	g, err := narrative.NewAnthropicGenerator("sk-test", narrative.WithAnthropicBaseURL(server.URL))
	require.Nil(t, err)

	_, err = g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, narrative.ErrProviderDown)
}

func TestAnthropicGenerateUnreachable(t *testing.T) {
	g, err := narrative.NewAnthropicGenerator("sk-test",
		narrative.WithAnthropicBaseURL("http://127.0.0.1:1"),
		narrative.WithAnthropicHTTPClient(&http.Client{Timeout: time.Second}),
	)
	require.Nil(t, err)

	_, err = g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, narrative.ErrProviderDown)
}

func TestOpenAIGenerate(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"choices": [{"message": {"role": "assistant", "content": "Pay the highest rate first."}, "finish_reason": "stop"}]
		}`))
	}))
	defer server.Close()

	g, err := narrative.NewOpenAIGenerator("sk-test", narrative.WithOpenAIBaseURL(server.URL))
	require.Nil(t, err)

	text, err := g.Generate(context.Background(), "Debt analysis: avalanche")
	require.Nil(t, err)
	assert.Equal(t, "Pay the highest rate first.", text)
}

func TestOpenAIGenerateEmptyResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices": []}`))
	}))
	defer server.Close()

	g, err := narrative.NewOpenAIGenerator("sk-test", narrative.WithOpenAIBaseURL(server.URL))
	require.Nil(t, err)

	_, err = g.Generate(context.Background(), "prompt")
	assert.ErrorIs(t, err, narrative.ErrProviderDown)
}
