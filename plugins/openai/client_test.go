package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	_, err := NewClient("", "", "")
	assert.Error(t, err)

	client, err := NewClient("sk-test", "", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, client.Model)
}

func TestClient_GenerateContent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer sk-test", r.Header.Get("Authorization"))

		var body map[string]interface{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "test-model", body["model"])

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"created": 1700000000,
			"model": "test-model",
			"choices": [{
				"index": 0,
				"finish_reason": "stop",
				"message": {"role": "assistant", "content": "Bondi is lovely in summer."}
			}]
		}`))
	}))
	defer server.Close()

	client, err := NewClient("sk-test", server.URL+"/", "test-model")
	require.NoError(t, err)

	out, err := client.GenerateContent(context.Background(), "Beach tips?")
	require.NoError(t, err)
	assert.Equal(t, "Bondi is lovely in summer.", out)
}

func TestClient_GenerateContent_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error": {"message": "bad model", "type": "invalid_request_error"}}`))
	}))
	defer server.Close()

	client, err := NewClient("sk-test", server.URL+"/", "nope")
	require.NoError(t, err)

	_, err = client.GenerateContent(context.Background(), "hi")
	assert.Error(t, err)
}
