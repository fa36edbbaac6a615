package probe_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"

	"realty_analyzer/pkg/probe"
)

func TestServer(t *testing.T) {
	rq := require.New(t)

	testCases := []struct {
		name          string
		listenAddress string
		endpoint      string
		statusCode    int
		appName       string
		appVersion    string
		body          []byte
	}{
		{
			name:          "Health handler",
			listenAddress: ":10001",
			endpoint:      "http://:10001/healthz",
			statusCode:    http.StatusOK,
			appName:       "realty-analyzer",
			appVersion:    "v0.0.1",
			body:          []byte(`{"name":"realty-analyzer","version":"v0.0.1"}`),
		},
		{
			name:          "Ready handler",
			listenAddress: ":10002",
			endpoint:      "http://:10002/ready",
			statusCode:    http.StatusOK,
			appName:       "app-2",
			appVersion:    "v0.0.2",
			body:          []byte(`{"name":"app-2","version":"v0.0.2"}`),
		},
		{
			name:          "Invalid endpoint",
			listenAddress: ":10003",
			endpoint:      "http://:10003/invalid",
			statusCode:    http.StatusNotFound,
			body:          []byte("404 page not found\n"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(*testing.T) {
			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()

			probeServer := probe.NewServer(
				tc.listenAddress,
				probe.Options{
					Name:    tc.appName,
					Version: tc.appVersion,
				},
			)

			g, ctx := errgroup.WithContext(ctx)

			g.Go(func() error {
				return probeServer.Run(ctx)
			})

			// Wait for server to start.
			time.Sleep(time.Second)

			req, err := http.NewRequestWithContext(ctx, http.MethodGet, tc.endpoint, http.NoBody)
			rq.NoError(err)

			resp, err := http.DefaultClient.Do(req)
			rq.NoError(err)

			defer resp.Body.Close()

			rq.Equal(tc.statusCode, resp.StatusCode)

			bodyBytes, err := io.ReadAll(resp.Body)
			rq.NoError(err)

			rq.Equal(tc.body, bodyBytes)

			cancel()

			rq.NoError(g.Wait())
		})
	}
}

func TestServerReadinessChecks(t *testing.T) {
	rq := require.New(t)

	probeServer := probe.NewServer(
		"",
		probe.Options{Name: "realty-analyzer", Version: "dev"},
		probe.ReadinessCheck{Name: "postgres", Check: func(context.Context) error { return nil }},
		probe.ReadinessCheck{Name: "redis", Check: func(context.Context) error { return errors.New("connection refused") }},
	)

	httpServer := httptest.NewServer(probeServer.Handler())
	defer httpServer.Close()

	resp, err := http.Get(httpServer.URL + "/ready") //nolint:noctx
	rq.NoError(err)

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	rq.NoError(err)

	rq.Equal(http.StatusServiceUnavailable, resp.StatusCode)
	rq.JSONEq(`{"name":"realty-analyzer","version":"dev","failed":{"redis":"connection refused"}}`, string(body))

	resp, err = http.Get(httpServer.URL + "/healthz") //nolint:noctx
	rq.NoError(err)

	defer resp.Body.Close()

	rq.Equal(http.StatusOK, resp.StatusCode)
}
