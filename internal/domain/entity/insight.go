package entity

import "realty_analyzer/internal/domain/value"

// InvestmentInsight is the model's narrative over one report. Fallback is
// set when the model answer could not be decoded and the record carries the
// raw text only.
type InvestmentInsight struct {
	Summary     string   `json:"summary"`
	SummaryHTML string   `json:"summaryHtml"`
	Strengths   []string `json:"strengths"`
	Risks       []string `json:"risks"`
	Suggestions []string `json:"suggestions"`
	Fallback    bool     `json:"fallback"`
}

type MarketSentiment struct {
	Location  value.Location  `json:"location"`
	Sentiment value.Sentiment `json:"sentiment"`
	Outlook   string          `json:"outlook"`
	Factors   []string        `json:"factors"`
	Headlines []string        `json:"headlines"`
	Fallback  bool            `json:"fallback"`
}

// Insights groups the optional AI parts of an analysis. A nil part means
// the provider failed or is disabled.
type Insights struct {
	Investment *InvestmentInsight `json:"investment,omitempty"`
	Market     *MarketSentiment   `json:"market,omitempty"`
}

func (i Insights) Empty() bool {
	return i.Investment == nil && i.Market == nil
}

type NewsItem struct {
	Title  string
	Link   string
	Source string
}
