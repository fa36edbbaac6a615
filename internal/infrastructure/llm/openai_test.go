package llm_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"realty_analyzer/internal/infrastructure/llm"
)

func TestOpenAIClientComplete(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name       string
		status     int
		body       string
		wantAnswer string
		wantErr    error
		wantAnyErr bool
	}{
		{
			name:       "ok",
			status:     http.StatusOK,
			body:       `{"choices":[{"message":{"role":"assistant","content":"{\"summary\":\"ok\"}"}}]}`,
			wantAnswer: `{"summary":"ok"}`,
		},
		{
			name:    "no choices",
			status:  http.StatusOK,
			body:    `{"choices":[]}`,
			wantErr: llm.ErrEmptyResponse,
		},
		{
			name:       "provider error",
			status:     http.StatusTooManyRequests,
			body:       `{"error":{"message":"rate limited"}}`,
			wantAnyErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				rq.Equal("/v1/chat/completions", r.URL.Path)
				rq.Equal("Bearer secret-key", r.Header.Get("Authorization"))

				raw, err := io.ReadAll(r.Body)
				rq.NoError(err)

				var body map[string]any
				rq.NoError(json.Unmarshal(raw, &body))
				rq.Equal("test-model", body["model"])
				rq.Equal(map[string]any{"type": "json_object"}, body["response_format"])

				messages, ok := body["messages"].([]any)
				rq.True(ok)
				rq.Len(messages, 2)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			}))
			defer server.Close()

			client := llm.NewOpenAIClient(llm.OpenAIOptions{
				APIKey:      "secret-key",
				BaseURL:     server.URL + "/v1/",
				Model:       "test-model",
				Temperature: 0.2,
			}, nil)

			answer, err := client.Complete(context.Background(), llm.Request{
				System: "system",
				Prompt: "prompt",
				JSON:   true,
			})

			switch {
			case tc.wantErr != nil:
				rq.ErrorIs(err, tc.wantErr)
			case tc.wantAnyErr:
				rq.Error(err)
				rq.Contains(err.Error(), "429")
			default:
				rq.NoError(err)
				rq.Equal(tc.wantAnswer, answer)
			}
		})
	}
}
