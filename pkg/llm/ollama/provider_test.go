package ollama

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
		fmt.Fprint(w, `{"model":"test-model","message":{"role":"assistant","content":"SIMPLE"},"done":true}`)
	}))
}

func TestChatSendsZeroTemperature(t *testing.T) {
	var captured map[string]interface{}
	srv := newCapturingServer(t, &captured)
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "test-model")
	reply, err := provider.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "how do I plan my training week"}},
		llm.WithTemperature(0.0),
		llm.WithMaxTokens(10),
	)

	require.NoError(t, err)
	assert.Equal(t, "SIMPLE", reply)

	opts, ok := captured["options"].(map[string]interface{})
	require.True(t, ok, "request must carry an options block")

	temperature, present := opts["temperature"]
	require.True(t, present, "temperature must be serialized even when zero")
	assert.Equal(t, 0.0, temperature)
	assert.Equal(t, 10.0, opts["num_predict"])
}

func TestChatDefaultsTemperature(t *testing.T) {
	var captured map[string]interface{}
	srv := newCapturingServer(t, &captured)
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "test-model")
	_, err := provider.Chat(context.Background(),
		[]llm.Message{{Role: "user", Content: "hi"}},
	)
	require.NoError(t, err)

	opts := captured["options"].(map[string]interface{})
	assert.Equal(t, 0.7, opts["temperature"])
}

func TestChatModelOverrideAndRoleMapping(t *testing.T) {
	var captured map[string]interface{}
	srv := newCapturingServer(t, &captured)
	defer srv.Close()

	provider := NewOllamaProvider(srv.URL, "default-model")
	_, err := provider.Chat(context.Background(),
		[]llm.Message{
			{Role: "user", Content: "hello"},
			{Role: "model", Content: "previous reply"},
		},
		llm.WithModel("override-model"),
	)
	require.NoError(t, err)

	assert.Equal(t, "override-model", captured["model"])

	messages := captured["messages"].([]interface{})
	require.Len(t, messages, 2)
	second := messages[1].(map[string]interface{})
	assert.Equal(t, "assistant", second["role"])
}
