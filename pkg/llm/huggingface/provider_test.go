package huggingface

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"adaptive-coach-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCapturingServer(t *testing.T, captured *map[string]interface{}) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, captured))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{"choices":[{"message":{"content":"COMPLEX"}}]}`)
	}))
}

func TestChatSendsZeroTemperature(t *testing.T) {
	var captured map[string]interface{}
	srv := newCapturingServer(t, &captured)
	defer srv.Close()

	provider := NewHuggingFaceProvider("test-key", srv.URL, "test-model")
	reply, err := provider.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "design a full training program"}},
		llm.WithTemperature(0.0),
		llm.WithMaxTokens(10),
	)

	require.NoError(t, err)
	assert.Equal(t, "COMPLEX", reply)

	temperature, present := captured["temperature"]
	require.True(t, present, "temperature must be serialized even when zero")
	assert.Equal(t, 0.0, temperature)
	assert.Equal(t, 10.0, captured["max_tokens"])
}

func TestChatDefaultsTemperature(t *testing.T) {
	var captured map[string]interface{}
	srv := newCapturingServer(t, &captured)
	defer srv.Close()

	provider := NewHuggingFaceProvider("test-key", srv.URL, "test-model")
	_, err := provider.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hi"}},
	)
	require.NoError(t, err)

	assert.Equal(t, 0.7, captured["temperature"])
	assert.Equal(t, "test-model", captured["model"])
}
