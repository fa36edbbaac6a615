package middlewarex_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"realty_analyzer/pkg/contextx"
	"realty_analyzer/pkg/middlewarex"
)

func TestTraceID(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{name: "generated", incoming: "", keep: false},
		{name: "propagated", incoming: "d1b2c3-trace_01", keep: true},
		{name: "unsafe replaced", incoming: "abc\" injected=1", keep: false},
		{name: "too long replaced", incoming: strings.Repeat("a", 65), keep: false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			var seen contextx.TraceID

			h := middlewarex.TraceID(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
				traceID, err := contextx.TraceIDFromContext(r.Context())
				rq.NoError(err)

				seen = traceID
			}))

			req := httptest.NewRequest(http.MethodGet, "/api/analyze", http.NoBody)
			if tc.incoming != "" {
				req.Header.Set("X-Trace-Id", tc.incoming)
			}

			w := httptest.NewRecorder()
			h.ServeHTTP(w, req)

			rq.NotEmpty(seen)
			rq.Equal(seen.String(), w.Header().Get("X-Trace-Id"))

			if tc.keep {
				rq.Equal(tc.incoming, seen.String())
			} else {
				rq.NotEqual(tc.incoming, seen.String())
			}
		})
	}
}
