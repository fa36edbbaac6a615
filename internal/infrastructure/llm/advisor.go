package llm

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/logx"
	"realty_analyzer/pkg/lox"
	"realty_analyzer/pkg/metrics"
)

const (
	operationInvestment = "investment"
	operationSentiment  = "sentiment"

	outcomeOK       = "ok"
	outcomeError    = "error"
	outcomeFallback = "fallback"
)

// NewsSource gives recent headlines for a location.
type NewsSource interface {
	Headlines(ctx context.Context, location value.Location) ([]entity.NewsItem, error)
}

// Advisor turns a Completer into the insight collaborator.
type Advisor struct {
	completer Completer
	prompts   *Prompts
	news      NewsSource
}

// NewAdvisor builds an advisor. news may be nil.
func NewAdvisor(completer Completer, prompts *Prompts, news NewsSource) *Advisor {
	return &Advisor{
		completer: completer,
		prompts:   prompts,
		news:      news,
	}
}

func (a *Advisor) SummarizeInvestment(
	ctx context.Context,
	params entity.PropertyParameters,
	report entity.FinancialReport,
	location value.Location,
) (entity.InvestmentInsight, error) {
	req, err := a.prompts.Investment(params, report, location)
	if err != nil {
		return entity.InvestmentInsight{}, fmt.Errorf("prompts.Investment: %w", err)
	}

	raw, err := a.complete(ctx, operationInvestment, req)
	if err != nil {
		return entity.InvestmentInsight{}, err
	}

	answer, err := decodeAnswer[investmentAnswer](raw)
	if err != nil {
		a.fallback(ctx, operationInvestment, err)

		return entity.InvestmentInsight{
			Summary:     strings.TrimSpace(raw),
			Strengths:   []string{},
			Risks:       []string{},
			Suggestions: []string{},
			Fallback:    true,
		}, nil
	}

	metrics.IncLLMCall(a.completer.Name(), operationInvestment, outcomeOK)

	insight := entity.InvestmentInsight{
		Summary:     strings.TrimSpace(answer.Summary),
		Strengths:   cleanList(answer.Strengths),
		Risks:       cleanList(answer.Risks),
		Suggestions: cleanList(answer.Suggestions),
	}

	if html, err := renderMarkdown(insight.Summary); err != nil {
		logger(ctx).Warn("renderMarkdown", logx.Error(err))
	} else {
		insight.SummaryHTML = html
	}

	return insight, nil
}

func (a *Advisor) MarketSentiment(ctx context.Context, location value.Location) (entity.MarketSentiment, error) {
	headlines := a.headlines(ctx, location)

	req, err := a.prompts.Sentiment(location, headlines)
	if err != nil {
		return entity.MarketSentiment{}, fmt.Errorf("prompts.Sentiment: %w", err)
	}

	raw, err := a.complete(ctx, operationSentiment, req)
	if err != nil {
		return entity.MarketSentiment{}, err
	}

	answer, err := decodeAnswer[sentimentAnswer](raw)
	if err != nil {
		a.fallback(ctx, operationSentiment, err)

		return entity.MarketSentiment{
			Location:  location,
			Sentiment: value.SentimentNeutral,
			Outlook:   strings.TrimSpace(raw),
			Factors:   []string{},
			Headlines: headlines,
			Fallback:  true,
		}, nil
	}

	metrics.IncLLMCall(a.completer.Name(), operationSentiment, outcomeOK)

	return entity.MarketSentiment{
		Location:  location,
		Sentiment: value.ParseSentiment(answer.Sentiment),
		Outlook:   strings.TrimSpace(answer.Outlook),
		Factors:   cleanList(answer.Factors),
		Headlines: headlines,
	}, nil
}

func (a *Advisor) complete(ctx context.Context, operation string, req Request) (string, error) {
	raw, err := a.completer.Complete(ctx, req)
	if err != nil {
		metrics.IncLLMCall(a.completer.Name(), operation, outcomeError)

		return "", fmt.Errorf("%s.Complete: %w", a.completer.Name(), err)
	}

	return raw, nil
}

func (a *Advisor) fallback(ctx context.Context, operation string, err error) {
	metrics.IncLLMCall(a.completer.Name(), operation, outcomeFallback)
	metrics.IncLLMDecodeFallback(operation)

	logger(ctx).Warn(
		"model answer is not decodable, using fallback",
		slog.String(logx.FieldLLMProvider, a.completer.Name()),
		slog.String(logx.FieldLLMOperation, operation),
		logx.Error(err),
	)
}

func (a *Advisor) headlines(ctx context.Context, location value.Location) []string {
	if a.news == nil {
		return []string{}
	}

	items, err := a.news.Headlines(ctx, location)
	if err != nil {
		// новости только дополняют промпт
		logger(ctx).Warn("news.Headlines", logx.Error(err), slog.String(logx.FieldLocation, location.String()))

		return []string{}
	}

	return lox.Map(items, func(item entity.NewsItem) string {
		return item.Title
	})
}

func cleanList(items []string) []string {
	result := make([]string, 0, len(items))

	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			result = append(result, item)
		}
	}

	return result
}
