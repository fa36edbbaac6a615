package middlewarex

import (
	"net/http"
	"regexp"

	"github.com/rs/xid"

	"realty_analyzer/pkg/contextx"
)

const headerNameTraceID = "X-Trace-Id"

// Чужой trace id попадает в логи и supportId ответа, поэтому принимаем только безопасный формат.
var validTraceID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`) //nolint:gochecknoglobals

func TraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(headerNameTraceID)

		if !validTraceID.MatchString(traceID) {
			traceID = xid.New().String()
		}

		ctx := contextx.WithTraceID(r.Context(), contextx.TraceID(traceID))

		w.Header().Set(headerNameTraceID, traceID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
