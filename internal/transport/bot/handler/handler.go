package handler

import (
	"context"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
)

type marketService interface {
	Enabled() bool
	MarketSentiment(ctx context.Context, location value.Location) (entity.MarketSentiment, error)
}

type Handler struct {
	market marketService
}

func New(market marketService) *Handler {
	return &Handler{
		market: market,
	}
}
