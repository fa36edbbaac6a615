package insight

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/errcodes"
	"realty_analyzer/pkg/logx"
)

// Advisor is the language model collaborator.
type Advisor interface {
	SummarizeInvestment(
		ctx context.Context,
		params entity.PropertyParameters,
		report entity.FinancialReport,
		location value.Location,
	) (entity.InvestmentInsight, error)
	MarketSentiment(ctx context.Context, location value.Location) (entity.MarketSentiment, error)
}

type SentimentCache interface {
	Get(ctx context.Context, key string) (entity.MarketSentiment, bool)
	Set(ctx context.Context, key string, sentiment entity.MarketSentiment)
}

type Service struct {
	advisor Advisor
	cache   SentimentCache
	timeout time.Duration
}

// NewService returns a service answering with empty insights when advisor
// is nil.
func NewService(advisor Advisor, cache SentimentCache, timeout time.Duration) *Service {
	return &Service{
		advisor: advisor,
		cache:   cache,
		timeout: timeout,
	}
}

func (s *Service) Enabled() bool {
	return s.advisor != nil
}

// Analyze asks for the investment narrative and, when a location is given,
// the market sentiment. Both calls run concurrently under one timeout. A
// failed call leaves its part nil and never fails the whole.
func (s *Service) Analyze(
	ctx context.Context,
	params entity.PropertyParameters,
	report entity.FinancialReport,
	location value.Location,
) entity.Insights {
	var result entity.Insights

	if !s.Enabled() {
		return result
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var g errgroup.Group

	g.Go(func() error {
		insight, err := s.advisor.SummarizeInvestment(ctx, params, report, location)
		if err != nil {
			logger(ctx).Warn("advisor.SummarizeInvestment", logx.Error(err))

			return nil
		}

		result.Investment = &insight

		return nil
	})

	if location.Valid() {
		g.Go(func() error {
			sentiment, err := s.marketSentiment(ctx, location)
			if err != nil {
				logger(ctx).Warn("s.marketSentiment", logx.Error(err), slog.String(logx.FieldLocation, location.String()))

				return nil
			}

			result.Market = &sentiment

			return nil
		})
	}

	_ = g.Wait() //nolint:errcheck // goroutines never fail

	return result
}

// MarketSentiment returns the cached or freshly generated outlook for a location.
func (s *Service) MarketSentiment(ctx context.Context, location value.Location) (entity.MarketSentiment, error) {
	if !location.Valid() {
		return entity.MarketSentiment{}, domain.NewFieldError(errcodes.InvalidLocation, "location", "must be 1 to 120 characters")
	}

	if !s.Enabled() {
		return entity.MarketSentiment{}, domain.NewError(errcodes.InsightsUnavailable, "ai insights are disabled")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	sentiment, err := s.marketSentiment(ctx, location)
	if err != nil {
		return entity.MarketSentiment{}, domain.WrapError(err, errcodes.InsightsUnavailable, "market sentiment unavailable")
	}

	return sentiment, nil
}

// SummarizeInvestment exposes the advisor to background jobs.
func (s *Service) SummarizeInvestment(
	ctx context.Context,
	params entity.PropertyParameters,
	report entity.FinancialReport,
	location value.Location,
) (entity.InvestmentInsight, error) {
	if !s.Enabled() {
		return entity.InvestmentInsight{}, domain.NewError(errcodes.InsightsUnavailable, "ai insights are disabled")
	}

	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	insight, err := s.advisor.SummarizeInvestment(ctx, params, report, location)
	if err != nil {
		return entity.InvestmentInsight{}, fmt.Errorf("advisor.SummarizeInvestment: %w", err)
	}

	return insight, nil
}

func (s *Service) marketSentiment(ctx context.Context, location value.Location) (entity.MarketSentiment, error) {
	key := location.Normalize()

	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			return cached, nil
		}
	}

	sentiment, err := s.advisor.MarketSentiment(ctx, location)
	if err != nil {
		return entity.MarketSentiment{}, fmt.Errorf("advisor.MarketSentiment: %w", err)
	}

	// Fallback records are not worth remembering.
	if s.cache != nil && !sentiment.Fallback {
		s.cache.Set(ctx, key, sentiment)
	}

	return sentiment, nil
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.timeout <= 0 {
		return context.WithCancel(ctx)
	}

	return context.WithTimeout(ctx, s.timeout)
}
