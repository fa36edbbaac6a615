package worker

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/hibiken/asynq"

	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/logx"
)

const (
	dealInsightMaxRetry = 3
	dealInsightTimeout  = 2 * time.Minute
)

type taskClient interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// Enqueuer puts deal tasks into the Redis backed queue.
type Enqueuer struct {
	client taskClient
}

func NewEnqueuer(client taskClient) *Enqueuer {
	return &Enqueuer{client: client}
}

func (e *Enqueuer) EnqueueDealInsight(ctx context.Context, id value.DealID, ownerID int64) error {
	task, err := NewDealInsightTask(id, ownerID)
	if err != nil {
		return fmt.Errorf("NewDealInsightTask: %w", err)
	}

	info, err := e.client.EnqueueContext(
		ctx,
		task,
		asynq.Queue(QueueDefault),
		asynq.MaxRetry(dealInsightMaxRetry),
		asynq.Timeout(dealInsightTimeout),
	)
	if err != nil {
		return fmt.Errorf("client.EnqueueContext: %w", err)
	}

	logger(ctx).Info(
		"task enqueued",
		slog.String(logx.FieldTaskType, TypeDealInsight),
		slog.String("task-id", info.ID),
		slog.String(logx.FieldDealID, id.String()),
	)

	return nil
}
