package deal

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/service/calculator"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/contextx"
	"realty_analyzer/pkg/errcodes"
	"realty_analyzer/pkg/logx"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
	maxNameLength   = 200
)

type Repository interface {
	Create(ctx context.Context, deal entity.Deal) error
	Get(ctx context.Context, id value.DealID, ownerID int64) (entity.Deal, error)
	List(ctx context.Context, ownerID int64, limit, offset int) ([]entity.Deal, error)
	Delete(ctx context.Context, id value.DealID, ownerID int64) error
	SetAISummary(ctx context.Context, id value.DealID, summary string) error
}

// Notifier отправляет оповещение о выгодной сделке.
type Notifier interface {
	NotifyDeal(ctx context.Context, deal entity.Deal) error
}

// Enqueuer ставит фоновую генерацию AI-резюме в очередь.
type Enqueuer interface {
	EnqueueDealInsight(ctx context.Context, id value.DealID, ownerID int64) error
}

type Summarizer interface {
	SummarizeInvestment(
		ctx context.Context,
		params entity.PropertyParameters,
		report entity.FinancialReport,
		location value.Location,
	) (entity.InvestmentInsight, error)
}

type Service struct {
	repo     Repository
	notifier Notifier
	enqueuer Enqueuer
	now      func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *Service) WithNotifier(n Notifier) *Service {
	s.notifier = n
	return s
}

func (s *Service) WithEnqueuer(e Enqueuer) *Service {
	s.enqueuer = e
	return s
}

func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

type SaveInput struct {
	Name     string
	Location value.Location
	Params   entity.PropertyParameters
}

// Save analyzes the property and stores the result for the owner. Alerts and
// background summaries are best effort and never fail the save.
func (s *Service) Save(ctx context.Context, ownerID int64, in SaveInput) (entity.Deal, entity.FinancialReport, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" || len([]rune(name)) > maxNameLength {
		return entity.Deal{}, entity.FinancialReport{}, domain.NewFieldError(
			errcodes.InvalidPropertyParameters,
			"name",
			fmt.Sprintf("must be 1 to %d characters", maxNameLength),
		)
	}

	report, err := calculator.Analyze(in.Params)
	if err != nil {
		return entity.Deal{}, entity.FinancialReport{}, fmt.Errorf("calculator.Analyze: %w", err)
	}

	deal := entity.NewDeal(ownerID, name, in.Location, in.Params, report, s.now().UTC())

	if err = s.repo.Create(ctx, deal); err != nil {
		return entity.Deal{}, entity.FinancialReport{}, fmt.Errorf("repo.Create: %w", err)
	}

	ctx = contextWithDeal(ctx, deal)

	logger(ctx).Info("deal saved")

	if deal.Verdict == value.VerdictExcellent && s.notifier != nil {
		if err = s.notifier.NotifyDeal(ctx, deal); err != nil {
			logger(ctx).Warn("notifier.NotifyDeal", logx.Error(err))
		}
	}

	if s.enqueuer != nil {
		if err = s.enqueuer.EnqueueDealInsight(ctx, deal.ID, ownerID); err != nil {
			logger(ctx).Warn("enqueuer.EnqueueDealInsight", logx.Error(err))
		}
	}

	return deal, report, nil
}

// List returns the owner's deals, newest first.
func (s *Service) List(ctx context.Context, ownerID int64, limit, offset int) ([]entity.Deal, error) {
	deals, err := s.repo.List(ctx, ownerID, PageLimit(limit), offset)
	if err != nil {
		return nil, fmt.Errorf("repo.List: %w", err)
	}

	return deals, nil
}

func (s *Service) Get(ctx context.Context, id value.DealID, ownerID int64) (entity.Deal, error) {
	deal, err := s.repo.Get(ctx, id, ownerID)
	if err != nil {
		return entity.Deal{}, fmt.Errorf("repo.Get: %w", err)
	}

	return deal, nil
}

// PageLimit clamps a requested page size, zero means the default.
func PageLimit(limit int) int {
	switch {
	case limit <= 0:
		return DefaultPageSize
	case limit > MaxPageSize:
		return MaxPageSize
	default:
		return limit
	}
}

// Delete removes a deal only when it belongs to the owner. A deal of another
// user is reported as not found.
func (s *Service) Delete(ctx context.Context, id value.DealID, ownerID int64) error {
	if err := s.repo.Delete(ctx, id, ownerID); err != nil {
		return fmt.Errorf("repo.Delete: %w", err)
	}

	logger(ctx).Info("deal deleted", slog.String(logx.FieldDealID, id.String()))

	return nil
}

// GenerateSummary recomputes the report of a stored deal, asks the model for
// a narrative and stores its summary on the deal.
func (s *Service) GenerateSummary(ctx context.Context, summarizer Summarizer, id value.DealID, ownerID int64) error {
	deal, err := s.repo.Get(ctx, id, ownerID)
	if err != nil {
		return fmt.Errorf("repo.Get: %w", err)
	}

	report, err := calculator.Analyze(deal.Params)
	if err != nil {
		return fmt.Errorf("calculator.Analyze: %w", err)
	}

	insight, err := summarizer.SummarizeInvestment(ctx, deal.Params, report, deal.Location)
	if err != nil {
		return fmt.Errorf("summarizer.SummarizeInvestment: %w", err)
	}

	if insight.Fallback || strings.TrimSpace(insight.Summary) == "" {
		logger(ctx).Warn("model summary unusable, deal left without summary", slog.String(logx.FieldDealID, id.String()))

		return nil
	}

	if err = s.repo.SetAISummary(ctx, id, insight.Summary); err != nil {
		return fmt.Errorf("repo.SetAISummary: %w", err)
	}

	return nil
}

func contextWithDeal(ctx context.Context, deal entity.Deal) context.Context {
	l := logger(ctx).With(
		slog.String(logx.FieldDealID, deal.ID.String()),
		slog.String(logx.FieldVerdict, deal.Verdict.String()),
	)

	return contextx.WithLogger(ctx, l)
}
