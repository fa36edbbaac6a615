// Package worker holds background tasks executed by the asynq server.
package worker

import (
	"fmt"

	"github.com/hibiken/asynq"
	jsoniter "github.com/json-iterator/go"

	"realty_analyzer/internal/domain/value"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

const (
	TypeDealInsight = "deal:insight"

	QueueDefault = "default"
)

type dealInsightPayload struct {
	DealID  string `json:"dealId"`
	OwnerID int64  `json:"ownerId"`
}

func NewDealInsightTask(id value.DealID, ownerID int64) (*asynq.Task, error) {
	payload, err := json.Marshal(dealInsightPayload{
		DealID:  id.String(),
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("json.Marshal: %w", err)
	}

	return asynq.NewTask(TypeDealInsight, payload), nil
}

func parseDealInsightTask(task *asynq.Task) (value.DealID, int64, error) {
	var payload dealInsightPayload

	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return value.DealID{}, 0, fmt.Errorf("json.Unmarshal: %w", err)
	}

	id, err := value.ParseDealID(payload.DealID)
	if err != nil {
		return value.DealID{}, 0, fmt.Errorf("value.ParseDealID: %w", err)
	}

	if payload.OwnerID <= 0 {
		return value.DealID{}, 0, fmt.Errorf("invalid owner id %d", payload.OwnerID)
	}

	return id, payload.OwnerID, nil
}
