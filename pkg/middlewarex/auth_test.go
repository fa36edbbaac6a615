package middlewarex_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"git.appkode.ru/pub/go/failure"
	"github.com/stretchr/testify/require"

	"realty_analyzer/pkg/contextx"
	"realty_analyzer/pkg/errcodes"
	"realty_analyzer/pkg/middlewarex"
)

type verifierFunc func(ctx context.Context, token string) (contextx.UserID, error)

func (f verifierFunc) VerifyToken(ctx context.Context, token string) (contextx.UserID, error) {
	return f(ctx, token)
}

func TestAuth(t *testing.T) {
	rq := require.New(t)

	verifier := verifierFunc(func(_ context.Context, token string) (contextx.UserID, error) {
		if token == "good" {
			return 42, nil
		}

		return 0, failure.NewUnauthorizedError("bad token", failure.WithCode(errcodes.AccessTokenExpired))
	})

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID, err := contextx.UserIDFromContext(r.Context())
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("X-User", userID.String())
		w.WriteHeader(http.StatusOK)
	})

	handler := middlewarex.Auth(verifier)(next)

	testCases := []struct {
		name       string
		header     string
		wantStatus int
		wantUser   string
		wantCode   string
	}{
		{name: "valid token", header: "Bearer good", wantStatus: http.StatusOK, wantUser: "42"},
		{name: "lowercase scheme", header: "bearer good", wantStatus: http.StatusOK, wantUser: "42"},
		{name: "missing header", header: "", wantStatus: http.StatusUnauthorized, wantCode: "AccessTokenInvalid"},
		{name: "wrong scheme", header: "Basic Zm9vOmJhcg==", wantStatus: http.StatusUnauthorized, wantCode: "AccessTokenInvalid"},
		{name: "rejected token", header: "Bearer stale", wantStatus: http.StatusUnauthorized, wantCode: "AccessTokenExpired"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/deals", http.NoBody)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}

			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			rq.Equal(tc.wantStatus, rec.Code)
			rq.Equal(tc.wantUser, rec.Header().Get("X-User"))

			if tc.wantCode != "" {
				rq.Contains(rec.Body.String(), `"code":"`+tc.wantCode+`"`)
				rq.Contains(rec.Body.String(), `"success":false`)
			}
		})
	}
}
