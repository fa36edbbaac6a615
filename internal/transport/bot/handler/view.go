package handler

import (
	"fmt"
	"html"
	"strings"

	"github.com/shopspring/decimal"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/entity"
)

//nolint:gochecknoglobals
var argAliases = map[string]string{
	"price":       "purchasePrice",
	"down":        "downPaymentPercent",
	"rate":        "interestRate",
	"term":        "loanTerm",
	"rent":        "monthlyRent",
	"tax":         "propertyTax",
	"insurance":   "insurance",
	"hoa":         "hoaFees",
	"maintenance": "maintenancePercent",
	"vacancy":     "vacancyPercent",
	"management":  "propertyManagementPercent",
}

// ParseArgs reads "key=value" pairs after the command into the loose input
// object. Short aliases and full parameter names are accepted.
func ParseArgs(text string) map[string]any {
	result := make(map[string]any)

	for _, field := range strings.Fields(commandArgument(text)) {
		key, val, ok := strings.Cut(field, "=")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if full, ok := argAliases[strings.ToLower(key)]; ok {
			key = full
		}

		result[key] = strings.TrimSpace(val)
	}

	return result
}

func FormatReport(report entity.FinancialReport) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📊 <b>%s</b>\n%s\n\n", report.Recommendation.Verdict, html.EscapeString(report.Recommendation.Reason))
	fmt.Fprintf(&sb, "💰 Price: $%s, loan $%s\n", money(report.PurchaseInfo.PurchasePrice), money(report.PurchaseInfo.LoanAmount))
	fmt.Fprintf(&sb, "🏦 Mortgage: $%s/mo\n", money(report.MonthlyNumbers.Mortgage))
	fmt.Fprintf(&sb, "🧾 Expenses: $%s/mo\n", money(report.MonthlyNumbers.TotalExpenses))
	fmt.Fprintf(&sb, "💵 Cash flow: $%s/mo\n", money(report.MonthlyNumbers.CashFlow))
	fmt.Fprintf(&sb, "📈 Cap rate: %s%%\n", money(report.Metrics.CapRate))
	fmt.Fprintf(&sb, "📈 Cash-on-cash: %s", percent(report.Metrics.CashOnCashReturn))

	return sb.String()
}

func FormatSentiment(m entity.MarketSentiment) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "🌆 <b>%s</b>: %s\n\n", html.EscapeString(m.Location.String()), m.Sentiment)
	sb.WriteString(html.EscapeString(m.Outlook))

	for _, factor := range m.Factors {
		fmt.Fprintf(&sb, "\n• %s", html.EscapeString(factor))
	}

	return sb.String()
}

func FormatError(err error) string {
	if appErr, ok := domain.AsAppError(err); ok {
		return "❌ " + html.EscapeString(appErr.Error())
	}

	return "❌ internal error"
}

func money(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

func percent(v *float64) string {
	if v == nil {
		return "n/a"
	}

	return decimal.NewFromFloat(*v).StringFixed(2) + "%"
}
