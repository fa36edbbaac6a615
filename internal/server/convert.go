package server

import (
	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/pkg/lox"
	"realty_analyzer/pkg/rest"
)

func newRESTUser(user entity.User) rest.User {
	return rest.User{
		ID:        user.ID,
		Email:     user.Email.String(),
		Name:      user.Name,
		CreatedAt: user.CreatedAt,
	}
}

func newRESTParameters(p entity.PropertyParameters) rest.PropertyParameters {
	return rest.PropertyParameters{
		PurchasePrice:             p.PurchasePrice,
		DownPaymentPercent:        p.DownPaymentPercent,
		InterestRate:              p.InterestRate,
		LoanTerm:                  p.LoanTerm,
		MonthlyRent:               p.MonthlyRent,
		PropertyTax:               p.PropertyTax,
		Insurance:                 p.Insurance,
		HOAFees:                   p.HOAFees,
		MaintenancePercent:        p.MaintenancePercent,
		VacancyPercent:            p.VacancyPercent,
		PropertyManagementPercent: p.PropertyManagementPercent,
	}
}

func newRESTAnalysis(report entity.FinancialReport) rest.Analysis {
	return rest.Analysis{
		PurchaseInfo: rest.PurchaseInfo{
			PurchasePrice:      report.PurchaseInfo.PurchasePrice,
			DownPayment:        report.PurchaseInfo.DownPayment,
			DownPaymentPercent: report.PurchaseInfo.DownPaymentPercent,
			LoanAmount:         report.PurchaseInfo.LoanAmount,
			InterestRate:       report.PurchaseInfo.InterestRate,
			LoanTerm:           report.PurchaseInfo.LoanTerm,
		},
		MonthlyNumbers: rest.MonthlyNumbers{
			Rent:          report.MonthlyNumbers.Rent,
			Mortgage:      report.MonthlyNumbers.Mortgage,
			PropertyTax:   report.MonthlyNumbers.PropertyTax,
			Insurance:     report.MonthlyNumbers.Insurance,
			HOA:           report.MonthlyNumbers.HOA,
			Maintenance:   report.MonthlyNumbers.Maintenance,
			Vacancy:       report.MonthlyNumbers.Vacancy,
			Management:    report.MonthlyNumbers.Management,
			TotalExpenses: report.MonthlyNumbers.TotalExpenses,
			CashFlow:      report.MonthlyNumbers.CashFlow,
		},
		AnnualNumbers: rest.AnnualNumbers{
			Rent:     report.AnnualNumbers.Rent,
			CashFlow: report.AnnualNumbers.CashFlow,
			NOI:      report.AnnualNumbers.NOI,
		},
		Metrics: rest.Metrics{
			CapRate:          report.Metrics.CapRate,
			CashOnCashReturn: report.Metrics.CashOnCashReturn,
			ROI:              report.Metrics.ROI,
		},
		Recommendation: rest.Recommendation{
			Verdict: report.Recommendation.Verdict.String(),
			Reason:  report.Recommendation.Reason,
			Color:   report.Recommendation.Color,
		},
	}
}

func newRESTMarketSentiment(m entity.MarketSentiment) rest.MarketSentiment {
	return rest.MarketSentiment{
		Location:  m.Location.String(),
		Sentiment: string(m.Sentiment),
		Outlook:   m.Outlook,
		Factors:   nonNil(m.Factors),
		Headlines: nonNil(m.Headlines),
		Fallback:  m.Fallback,
	}
}

func newRESTInsights(insights entity.Insights) *rest.Insights {
	if insights.Empty() {
		return nil
	}

	result := &rest.Insights{}

	if i := insights.Investment; i != nil {
		result.Investment = &rest.InvestmentInsight{
			Summary:     i.Summary,
			SummaryHTML: i.SummaryHTML,
			Strengths:   nonNil(i.Strengths),
			Risks:       nonNil(i.Risks),
			Suggestions: nonNil(i.Suggestions),
			Fallback:    i.Fallback,
		}
	}

	if m := insights.Market; m != nil {
		market := newRESTMarketSentiment(*m)
		result.Market = &market
	}

	return result
}

func newRESTDeal(deal entity.Deal) rest.Deal {
	return rest.Deal{
		ID:               deal.ID.String(),
		Name:             deal.Name,
		Location:         deal.Location.String(),
		Params:           newRESTParameters(deal.Params),
		CashFlow:         deal.CashFlow,
		ROI:              deal.ROI,
		CapRate:          deal.CapRate,
		CashOnCashReturn: deal.CashOnCashReturn,
		Verdict:          deal.Verdict.String(),
		AISummary:        deal.AISummary,
		CreatedAt:        deal.CreatedAt,
		UpdatedAt:        deal.UpdatedAt,
	}
}

func newRESTDeals(deals []entity.Deal) []rest.Deal {
	return lox.Map(deals, newRESTDeal)
}

func nonNil(items []string) []string {
	if items == nil {
		return []string{}
	}

	return items
}
