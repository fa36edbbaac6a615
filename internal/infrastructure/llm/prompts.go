package llm

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v2"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
)

//go:embed prompts.yaml
var promptsYAML []byte

type promptPair struct {
	System string `yaml:"system"`
	User   string `yaml:"user"`
}

type promptFile struct {
	Investment promptPair `yaml:"investment"`
	Sentiment  promptPair `yaml:"sentiment"`
}

type Prompts struct {
	investmentSystem string
	investment       *template.Template
	sentimentSystem  string
	sentiment        *template.Template
}

//nolint:gochecknoglobals
var promptFuncs = template.FuncMap{
	"money": func(v float64) string {
		return decimal.NewFromFloat(v).StringFixed(2)
	},
	"pct": func(v float64) string {
		return decimal.NewFromFloat(v).Round(2).String()
	},
}

// LoadPrompts parses the embedded prompt file.
func LoadPrompts() (*Prompts, error) {
	var file promptFile

	if err := yaml.Unmarshal(promptsYAML, &file); err != nil {
		return nil, fmt.Errorf("yaml.Unmarshal: %w", err)
	}

	investment, err := template.New("investment").Funcs(promptFuncs).Parse(file.Investment.User)
	if err != nil {
		return nil, fmt.Errorf("parse investment template: %w", err)
	}

	sentiment, err := template.New("sentiment").Funcs(promptFuncs).Parse(file.Sentiment.User)
	if err != nil {
		return nil, fmt.Errorf("parse sentiment template: %w", err)
	}

	return &Prompts{
		investmentSystem: strings.TrimSpace(file.Investment.System),
		investment:       investment,
		sentimentSystem:  strings.TrimSpace(file.Sentiment.System),
		sentiment:        sentiment,
	}, nil
}

type investmentView struct {
	Location           string
	PurchasePrice      float64
	DownPaymentPercent float64
	DownPayment        float64
	LoanAmount         float64
	InterestRate       float64
	LoanTerm           int
	MonthlyRent        float64
	Mortgage           float64
	TotalExpenses      float64
	CashFlow           float64
	NOI                float64
	CapRate            float64
	CashOnCash         string
	Verdict            string
}

type sentimentView struct {
	Location  string
	Headlines []string
}

func (p *Prompts) Investment(
	params entity.PropertyParameters,
	report entity.FinancialReport,
	location value.Location,
) (Request, error) {
	view := investmentView{
		Location:           strings.TrimSpace(location.String()),
		PurchasePrice:      report.PurchaseInfo.PurchasePrice,
		DownPaymentPercent: report.PurchaseInfo.DownPaymentPercent,
		DownPayment:        report.PurchaseInfo.DownPayment,
		LoanAmount:         report.PurchaseInfo.LoanAmount,
		InterestRate:       report.PurchaseInfo.InterestRate,
		LoanTerm:           report.PurchaseInfo.LoanTerm,
		MonthlyRent:        params.MonthlyRent,
		Mortgage:           report.MonthlyNumbers.Mortgage,
		TotalExpenses:      report.MonthlyNumbers.TotalExpenses,
		CashFlow:           report.MonthlyNumbers.CashFlow,
		NOI:                report.AnnualNumbers.NOI,
		CapRate:            report.Metrics.CapRate,
		CashOnCash:         "n/a (no down payment)",
		Verdict:            report.Recommendation.Verdict.String(),
	}

	if coc := report.Metrics.CashOnCashReturn; coc != nil {
		view.CashOnCash = decimal.NewFromFloat(*coc).Round(2).String() + "%"
	}

	prompt, err := execute(p.investment, view)
	if err != nil {
		return Request{}, err
	}

	return Request{System: p.investmentSystem, Prompt: prompt, JSON: true}, nil
}

func (p *Prompts) Sentiment(location value.Location, headlines []string) (Request, error) {
	prompt, err := execute(p.sentiment, sentimentView{
		Location:  strings.TrimSpace(location.String()),
		Headlines: headlines,
	})
	if err != nil {
		return Request{}, err
	}

	return Request{System: p.sentimentSystem, Prompt: prompt, JSON: true}, nil
}

func execute(tpl *template.Template, data any) (string, error) {
	var sb strings.Builder

	if err := tpl.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("%s.Execute: %w", tpl.Name(), err)
	}

	return sb.String(), nil
}
