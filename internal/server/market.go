package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/httpx/reply"
	"realty_analyzer/pkg/rest"
)

type marketService interface {
	MarketSentiment(ctx context.Context, location value.Location) (entity.MarketSentiment, error)
}

type MarketServer struct {
	marketService marketService
}

func NewMarketServer(marketService marketService) MarketServer {
	return MarketServer{
		marketService: marketService,
	}
}

func (s MarketServer) getMarketSentiment(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	location := value.Location(strings.TrimSpace(r.URL.Query().Get("location")))

	sentiment, err := s.marketService.MarketSentiment(ctx, location)
	if err != nil {
		return fmt.Errorf("marketService.MarketSentiment: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, rest.MarketSentimentResponse{
		Success:   true,
		Sentiment: newRESTMarketSentiment(sentiment),
	})

	return nil
}
