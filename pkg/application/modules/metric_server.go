package modules

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"realty_analyzer/pkg/metrics"
)

// MetricServer отдаёт /metrics со счётчиками анализа, LLM и HTTP.
type MetricServer struct {
	ListenAddress   string
	ShutdownTimeout time.Duration
}

func (m MetricServer) Run(ctx context.Context, g *errgroup.Group) {
	prometheusServer := metrics.NewPrometheusServer(m.ListenAddress, m.ShutdownTimeout)

	g.Go(func() error {
		if err := prometheusServer.Run(ctx); err != nil {
			return fmt.Errorf("prometheusServer.Run: %w", err)
		}

		return nil
	})
}
