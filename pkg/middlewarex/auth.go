package middlewarex

import (
	"context"
	"net/http"
	"strings"

	"git.appkode.ru/pub/go/failure"

	"realty_analyzer/pkg/contextx"
	"realty_analyzer/pkg/errcodes"
	"realty_analyzer/pkg/httpx/reply"
	"realty_analyzer/pkg/logx"
)

const bearerPrefix = "Bearer "

type tokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (contextx.UserID, error)
}

// Auth rejects requests without a valid bearer token and stores the token
// subject in the request context.
func Auth(verifier tokenVerifier) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			header := r.Header.Get("Authorization")
			if len(header) <= len(bearerPrefix) || !strings.EqualFold(header[:len(bearerPrefix)], bearerPrefix) {
				reply.Error(ctx, w, failure.NewUnauthorizedError(
					"missing bearer token",
					failure.WithCode(errcodes.AccessTokenInvalid),
					failure.WithDescription("Authorization header with a bearer token is required"),
				))

				return
			}

			userID, err := verifier.VerifyToken(ctx, strings.TrimSpace(header[len(bearerPrefix):]))
			if err != nil {
				reply.Error(ctx, w, err)

				return
			}

			ctx = contextx.WithUserID(ctx, userID)
			ctx = contextx.WithLogger(ctx, logger(ctx).With(logx.Stringer(logx.FieldUserID, userID)))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
