package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"realty_analyzer/pkg/httpx/reply"
	"realty_analyzer/pkg/logx"
	"realty_analyzer/pkg/middlewarex"
)

type RouterOptions struct {
	SensitiveDataMasker logx.SensitiveDataMaskerInterface
	LogBodyMaxLen       int
}

// NewRouter builds the API handler with the common middleware chain.
func NewRouter(s Server, opts RouterOptions) http.Handler {
	if opts.SensitiveDataMasker == nil {
		opts.SensitiveDataMasker = logx.NewSensitiveDataMasker()
	}

	r := chi.NewRouter()

	r.Use(
		middlewarex.TraceID,
		middlewarex.Logger,
		middlewarex.Recovery,
		middlewarex.Metrics,
		middlewarex.RequestLogging(opts.SensitiveDataMasker, opts.LogBodyMaxLen),
		middlewarex.ResponseLogging(opts.SensitiveDataMasker, opts.LogBodyMaxLen),
	)

	s.RegisterRoutes(r)

	return r
}

func (s Server) RegisterRoutes(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		// unauthorized zone
		r.Post("/auth/register", handler(s.postRegister))
		r.Post("/auth/login", handler(s.postLogin))
		r.Post("/analyze", handler(s.postAnalyze))
		r.Get("/market/sentiment", handler(s.getMarketSentiment))

		// authorized zone
		r.Group(func(r chi.Router) {
			r.Use(middlewarex.Auth(s.AuthServer))

			r.Get("/auth/me", handler(s.getMe))

			r.Route("/deals", func(r chi.Router) {
				r.Post("/", handler(s.postDeal))
				r.Get("/", handler(s.getDeals))
				r.Get("/{id}", handler(s.getDeal))
				r.Delete("/{id}", handler(s.deleteDeal))
			})
		})
	})
}

func handler(f func(http.ResponseWriter, *http.Request) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := f(w, r); err != nil {
			reply.Error(r.Context(), w, toFailure(err))
		}
	}
}
