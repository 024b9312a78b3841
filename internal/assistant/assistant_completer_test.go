package assistant_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"go-hrms/internal/assistant"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const completionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gpt-3.5-turbo",
  "choices": [{"index": 0, "finish_reason": "stop", "message": {"role": "assistant", "content": "You have 15 vacation days."}}]
}`

func TestOpenAICompleter(t *testing.T) {
	t.Run("no key disables the client", func(t *testing.T) {
		assert.Nil(t, assistant.NewOpenAICompleter(assistant.OpenAIConfig{}))
	})

	t.Run("sends chat completion request", func(t *testing.T) {
		var body map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, &body)
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, completionBody)
		}))
		defer srv.Close()

		completer := assistant.NewOpenAICompleter(assistant.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/", Model: "gpt-3.5-turbo"})
		reply, err := completer.Complete(context.Background(), []assistant.ChatMessage{
			{Role: assistant.RoleSystem, Content: "You are an HR leave management assistant."},
			{Role: assistant.RoleUser, Content: "How many vacation days?"},
		})

		require.NoError(t, err)
		assert.Equal(t, "You have 15 vacation days.", reply)
		assert.Equal(t, "gpt-3.5-turbo", body["model"])
		assert.EqualValues(t, 300, body["max_tokens"])
		assert.EqualValues(t, 0.7, body["temperature"])
		messages, _ := body["messages"].([]any)
		assert.Len(t, messages, 2)
	})

	t.Run("upstream failure", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusServiceUnavailable)
			_, _ = io.WriteString(w, `{"error":{"message":"overloaded","type":"server_error"}}`)
		}))
		defer srv.Close()

		completer := assistant.NewOpenAICompleter(assistant.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/"})
		_, err := completer.Complete(context.Background(), []assistant.ChatMessage{{Role: assistant.RoleUser, Content: "hi"}})

		assert.Error(t, err)
	})

	t.Run("empty choices", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = io.WriteString(w, `{"id":"x","object":"chat.completion","created":1,"model":"gpt-3.5-turbo","choices":[]}`)
		}))
		defer srv.Close()

		completer := assistant.NewOpenAICompleter(assistant.OpenAIConfig{APIKey: "sk-test", BaseURL: srv.URL + "/"})
		_, err := completer.Complete(context.Background(), []assistant.ChatMessage{{Role: assistant.RoleUser, Content: "hi"}})

		assert.Error(t, err)
	})
}
