package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/spf13/cast"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/service/calculator"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/httpx/reply"
	"realty_analyzer/pkg/httpx/req"
	"realty_analyzer/pkg/metrics"
	"realty_analyzer/pkg/rest"
)

type insightService interface {
	Enabled() bool
	Analyze(
		ctx context.Context,
		params entity.PropertyParameters,
		report entity.FinancialReport,
		location value.Location,
	) entity.Insights
}

type AnalyzeServer struct {
	insightService insightService
}

func NewAnalyzeServer(insightService insightService) AnalyzeServer {
	return AnalyzeServer{
		insightService: insightService,
	}
}

func (s AnalyzeServer) postAnalyze(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	raw, err := req.ReadObject(r)
	if err != nil {
		return fmt.Errorf("req.ReadObject: %w", err)
	}

	params, err := calculator.ParametersFromMap(raw, calculator.DefaultParameters())
	if err != nil {
		return fmt.Errorf("calculator.ParametersFromMap: %w", err)
	}

	report, err := calculator.Analyze(params)
	if err != nil {
		return fmt.Errorf("calculator.Analyze: %w", err)
	}

	metrics.IncAnalysis(report.Recommendation.Verdict.String())

	response := rest.AnalyzeResponse{
		Success:  true,
		Analysis: newRESTAnalysis(report),
	}

	if includeAI(raw) && s.insightService.Enabled() {
		response.AI = newRESTInsights(s.insightService.Analyze(ctx, params, report, locationFrom(raw)))
	}

	reply.JSON(ctx, w, http.StatusOK, response)

	return nil
}

// includeAI is true unless the body says otherwise.
func includeAI(raw map[string]any) bool {
	v, ok := raw["includeAi"]
	if !ok || v == nil {
		return true
	}

	include, err := cast.ToBoolE(v)
	if err != nil {
		return true
	}

	return include
}

func locationFrom(raw map[string]any) value.Location {
	return value.Location(strings.TrimSpace(cast.ToString(raw["location"])))
}
