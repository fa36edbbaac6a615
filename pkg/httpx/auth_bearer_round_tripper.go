package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
)

var ErrEmptyToken = errors.New("empty bearer token")

type authenticator interface {
	Authenticate(context.Context) error
	BearerToken() string
}

// StaticToken is an authenticator for APIs keyed by a long-lived secret.
// Authenticate only verifies that a key is configured.
type StaticToken string

func (s StaticToken) Authenticate(context.Context) error {
	if s == "" {
		return ErrEmptyToken
	}

	return nil
}

func (s StaticToken) BearerToken() string {
	return string(s)
}

type AuthBearerRoundTripper struct {
	next          http.RoundTripper
	authenticator authenticator
}

func NewAuthBearerRoundTripper(
	next http.RoundTripper,
	authenticator authenticator,
) AuthBearerRoundTripper {
	return AuthBearerRoundTripper{
		next:          next,
		authenticator: authenticator,
	}
}

func (rt AuthBearerRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	if rt.authenticator.BearerToken() == "" {
		if err := rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}
	}

	// RoundTrippers must not mutate the caller's request.
	req = req.Clone(req.Context())
	rt.setAuthorizationHeader(req)

	resp, err := rt.next.RoundTrip(req)
	if err != nil {
		return nil, fmt.Errorf("next.RoundTrip: %w", err)
	}

	if resp.StatusCode == http.StatusUnauthorized && req.GetBody != nil {
		resp.Body.Close()

		if err = rt.authenticator.Authenticate(req.Context()); err != nil {
			return nil, fmt.Errorf("authenticator.Authenticate: %w", err)
		}

		retry := req.Clone(req.Context())

		if retry.Body, err = req.GetBody(); err != nil {
			return nil, fmt.Errorf("req.GetBody: %w", err)
		}

		rt.setAuthorizationHeader(retry)

		return rt.next.RoundTrip(retry) //nolint:wrapcheck
	}

	return resp, nil
}

func (rt AuthBearerRoundTripper) setAuthorizationHeader(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+rt.authenticator.BearerToken())
}
