package deepseek

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GenerateContent(t *testing.T) {
	var captured Request
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, chatCompletionsPath, r.URL.Path)
		if r.Header.Get("Authorization") != "Bearer sk-test" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"Authentication Fails","type":"authentication_error"}}`))
			return
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		switch captured.Messages[len(captured.Messages)-1].Content {
		case "overloaded":
			w.WriteHeader(http.StatusServiceUnavailable)
			w.Write([]byte(`upstream busy`))
		case "garbage":
			w.Write([]byte(`{"choices": [`))
		case "empty":
			w.Write([]byte(`{"id":"x","choices":[]}`))
		default:
			w.Write([]byte(`{
				"id": "chatcmpl-1",
				"model": "deepseek-chat",
				"choices": [{"index": 0, "message": {"role": "assistant", "content": "Pack layers for Lisbon."}, "finish_reason": "stop"}],
				"usage": {"prompt_tokens": 9, "completion_tokens": 5, "total_tokens": 14}
			}`))
		}
	}))
	defer ts.Close()

	client, err := New(Config{APIKey: "sk-test", BaseURL: ts.URL + "/"})
	require.NoError(t, err)

	ask := func(text string) (*Response, error) {
		return client.GenerateContent(context.Background(), &Request{
			Messages: []Message{
				{Role: RoleSystem, Content: "You are a travel assistant."},
				{Role: RoleUser, Content: text},
			},
		})
	}

	t.Run("success", func(t *testing.T) {
		resp, err := ask("What should I pack for Lisbon?")
		require.NoError(t, err)
		assert.Equal(t, "Pack layers for Lisbon.", resp.Choices[0].Message.Content)
		assert.Equal(t, 14, resp.Usage.TotalTokens)
		assert.Equal(t, DefaultModel, captured.Model)
		assert.False(t, captured.Stream)
	})

	t.Run("api error without json body", func(t *testing.T) {
		_, err := ask("overloaded")
		var apiErr *APIError
		require.ErrorAs(t, err, &apiErr)
		assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
		assert.Equal(t, "upstream busy", apiErr.Message)
	})

	t.Run("malformed", func(t *testing.T) {
		_, err := ask("garbage")
		assert.ErrorIs(t, err, ErrMalformedResponse)
	})

	t.Run("no choices", func(t *testing.T) {
		_, err := ask("empty")
		assert.ErrorIs(t, err, ErrNoChoices)
	})

	t.Run("empty request", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrEmptyRequest)
	})
}

func TestClient_Unauthorized(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Authentication Fails","type":"authentication_error"}}`))
	}))
	defer ts.Close()

	client, err := New(Config{APIKey: "sk-wrong", BaseURL: ts.URL, Model: "qwen-plus"})
	require.NoError(t, err)
	assert.Equal(t, "qwen-plus", client.Model())

	_, err = client.GenerateContent(context.Background(), &Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "authentication_error", apiErr.Type)
	assert.Equal(t, "Authentication Fails", apiErr.Message)
}

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrAPIKeyRequired)
}
