package worker

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hibiken/asynq"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/service/deal"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/contextx"
	"realty_analyzer/pkg/errcodes"
	"realty_analyzer/pkg/logx"
)

type summaryGenerator interface {
	GenerateSummary(ctx context.Context, summarizer deal.Summarizer, id value.DealID, ownerID int64) error
}

// DealInsight fills the AI summary of a saved deal.
type DealInsight struct {
	deals      summaryGenerator
	summarizer deal.Summarizer
}

func NewDealInsight(deals summaryGenerator, summarizer deal.Summarizer) *DealInsight {
	return &DealInsight{
		deals:      deals,
		summarizer: summarizer,
	}
}

func (h *DealInsight) Handle(ctx context.Context, task *asynq.Task) error {
	id, ownerID, err := parseDealInsightTask(task)
	if err != nil {
		return fmt.Errorf("parseDealInsightTask: %w: %w", err, asynq.SkipRetry)
	}

	ctx = contextx.WithLogger(ctx, logger(ctx).With(
		slog.String(logx.FieldTaskType, task.Type()),
		slog.String(logx.FieldDealID, id.String()),
		slog.Int64(logx.FieldUserID, ownerID),
	))

	if err = h.deals.GenerateSummary(ctx, h.summarizer, id, ownerID); err != nil {
		// сделку удалили до выполнения задачи
		if code, ok := domain.GetCode(err); ok && code == errcodes.DealNotFound {
			logger(ctx).Info("deal is gone, task dropped")

			return fmt.Errorf("deals.GenerateSummary: %w: %w", err, asynq.SkipRetry)
		}

		return fmt.Errorf("deals.GenerateSummary: %w", err)
	}

	logger(ctx).Info("deal summary generated")

	return nil
}
