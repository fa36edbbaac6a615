// Package calculator computes investment metrics for a rental property. It is
// pure: no I/O, no shared state, safe for concurrent use.
package calculator

import (
	"math"

	"github.com/shopspring/decimal"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/pkg/errcodes"
)

const (
	monthsPerYear = 12
	percent       = 100
)

// Analyze validates the parameters and computes the report.
func Analyze(p entity.PropertyParameters) (entity.FinancialReport, error) {
	if err := Validate(p); err != nil {
		return entity.FinancialReport{}, err
	}

	return compute(p)
}

func compute(p entity.PropertyParameters) (entity.FinancialReport, error) {
	downPayment := p.PurchasePrice * p.DownPaymentPercent / percent
	loanAmount := p.PurchasePrice - downPayment

	monthly := entity.MonthlyNumbers{
		Rent:        p.MonthlyRent,
		Mortgage:    MonthlyPayment(loanAmount, p.InterestRate, p.LoanTerm),
		PropertyTax: p.PropertyTax / monthsPerYear,
		Insurance:   p.Insurance / monthsPerYear,
		HOA:         p.HOAFees,
		Maintenance: p.MonthlyRent * p.MaintenancePercent / percent,
		Vacancy:     p.MonthlyRent * p.VacancyPercent / percent,
		Management:  p.MonthlyRent * p.PropertyManagementPercent / percent,
	}

	monthly.TotalExpenses = monthly.Mortgage +
		monthly.PropertyTax +
		monthly.Insurance +
		monthly.HOA +
		monthly.Maintenance +
		monthly.Vacancy +
		monthly.Management
	monthly.CashFlow = monthly.Rent - monthly.TotalExpenses

	annualRent := p.MonthlyRent * monthsPerYear
	operatingPercent := p.MaintenancePercent + p.VacancyPercent + p.PropertyManagementPercent

	// NOI excludes debt service.
	annual := entity.AnnualNumbers{
		Rent:     annualRent,
		CashFlow: monthly.CashFlow * monthsPerYear,
		NOI: annualRent - (p.PropertyTax +
			p.Insurance +
			p.HOAFees*monthsPerYear +
			annualRent*operatingPercent/percent),
	}

	capRate := annual.NOI / p.PurchasePrice * percent

	if !finite(downPayment, loanAmount, capRate, annual.NOI, annual.CashFlow, annual.Rent) ||
		!finite(monthly.Mortgage, monthly.TotalExpenses, monthly.CashFlow) {
		return entity.FinancialReport{}, domain.NewError(
			errcodes.InvalidPropertyParameters,
			"parameters produce a non-finite result",
		)
	}

	metrics := entity.Metrics{
		CapRate: round2(capRate),
	}

	// Without a down payment there is no cash invested, so the return is undefined.
	if cashOnCash := annual.CashFlow / downPayment * percent; downPayment > 0 && finite(cashOnCash) {
		coc := round2(cashOnCash)
		roi := coc
		metrics.CashOnCashReturn = &coc
		metrics.ROI = &roi
	}

	return entity.FinancialReport{
		PurchaseInfo: entity.PurchaseInfo{
			PurchasePrice:      p.PurchasePrice,
			DownPayment:        downPayment,
			DownPaymentPercent: p.DownPaymentPercent,
			LoanAmount:         loanAmount,
			InterestRate:       p.InterestRate,
			LoanTerm:           p.LoanTerm,
		},
		MonthlyNumbers: monthly,
		AnnualNumbers:  annual,
		Metrics:        metrics,
		Recommendation: Recommend(monthly.CashFlow, metrics.ROI),
	}, nil
}

// MonthlyPayment returns the fixed annuity payment. A zero rate amortizes
// the loan in equal parts.
func MonthlyPayment(loanAmount, annualRatePercent float64, termYears int) float64 {
	n := float64(termYears * monthsPerYear)
	r := annualRatePercent / percent / monthsPerYear

	growth := math.Pow(1+r, n)
	if r == 0 || growth == 1 {
		return loanAmount / n
	}

	return loanAmount * (r * growth) / (growth - 1)
}

// Recommend classifies a deal. Rules are checked in order and the first
// match wins. A nil roi never satisfies a threshold on it.
func Recommend(monthlyCashFlow float64, roi *float64) entity.Recommendation {
	verdict := classify(monthlyCashFlow, roi)

	return entity.Recommendation{
		Verdict: verdict,
		Reason:  verdict.Reason(),
		Color:   verdict.Color(),
	}
}

func classify(cashFlow float64, roi *float64) value.Verdict {
	switch {
	case cashFlow < 0:
		return value.VerdictAvoid
	case cashFlow < 100 || (roi != nil && *roi < 5):
		return value.VerdictMarginal
	case roi != nil && *roi >= 10 && cashFlow >= 200:
		return value.VerdictExcellent
	default:
		return value.VerdictGood
	}
}

func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}

	return true
}
