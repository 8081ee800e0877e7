package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGeminiProvider verifies that our HTTP client correctly constructs
// generateContent requests and parses the responses. A httptest server stands
// in for the real API, so the test is fast and makes no network calls.
func TestGeminiProvider(t *testing.T) {
	var capturedPath, capturedKey string
	var capturedBody geminiRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedKey = r.Header.Get("x-goog-api-key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&capturedBody))

		w.Header().Set("Content-Type", "application/json")
		_, err := w.Write([]byte(`{
			"candidates": [{"content": {"role": "model", "parts": [{"text": "Hello "}, {"text": "there."}]}, "finishReason": "STOP"}],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 3, "totalTokenCount": 15}
		}`))
		assert.NoError(t, err)
	}))
	defer server.Close()

	provider := NewGeminiProvider(server.URL, "gemini-2.0-flash", 5*time.Second)

	completion, err := provider.Complete(context.Background(), Credential{Label: "key-1", Key: "secret"}, &CompletionRequest{
		SystemPrompt: "You are a helpful assistant.",
		Messages: []Message{
			{Role: "user", Content: "Hi"},
			{Role: "assistant", Content: "Hello!"},
			{Role: "user", Content: "How are you?"},
		},
	})
	require.NoError(t, err)

	// Multi-part candidates are concatenated.
	assert.Equal(t, "Hello there.", completion.Text)
	assert.Equal(t, 12, completion.Usage.PromptTokens)
	assert.Equal(t, 3, completion.Usage.CompletionTokens)
	assert.Equal(t, 15, completion.Usage.TotalTokens)

	assert.Equal(t, "/v1beta/models/gemini-2.0-flash:generateContent", capturedPath)
	assert.Equal(t, "secret", capturedKey)

	require.NotNil(t, capturedBody.SystemInstruction)
	assert.Equal(t, "You are a helpful assistant.", capturedBody.SystemInstruction.Parts[0].Text)
	// The assistant role must be translated to Gemini's "model".
	require.Len(t, capturedBody.Contents, 3)
	assert.Equal(t, "user", capturedBody.Contents[0].Role)
	assert.Equal(t, "model", capturedBody.Contents[1].Role)
	assert.Equal(t, "user", capturedBody.Contents[2].Role)
}

func TestGeminiProvider_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error": {"message": "quota exceeded"}}`))
	}))
	defer server.Close()

	provider := NewGeminiProvider(server.URL, "gemini-2.0-flash", 5*time.Second)

	_, err := provider.Complete(context.Background(), Credential{Key: "k"}, &CompletionRequest{
		Messages: []Message{{Role: "user", Content: "Hi"}},
	})
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusTooManyRequests, provErr.Status)
	assert.Contains(t, provErr.Body, "quota exceeded")
}

func TestGeminiProvider_EmptyCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	provider := NewGeminiProvider(server.URL, "gemini-2.0-flash", 5*time.Second)

	_, err := provider.Complete(context.Background(), Credential{Key: "k"}, &CompletionRequest{
		Messages: []Message{{Role: "user", Content: "Hi"}},
	})
	require.Error(t, err)
}
