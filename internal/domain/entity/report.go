package entity

import "realty_analyzer/internal/domain/value"

// FinancialReport is computed once per request and never mutated.
type FinancialReport struct {
	PurchaseInfo   PurchaseInfo   `json:"purchaseInfo"`
	MonthlyNumbers MonthlyNumbers `json:"monthlyNumbers"`
	AnnualNumbers  AnnualNumbers  `json:"annualNumbers"`
	Metrics        Metrics        `json:"metrics"`
	Recommendation Recommendation `json:"recommendation"`
}

type PurchaseInfo struct {
	PurchasePrice      float64 `json:"purchasePrice"`
	DownPayment        float64 `json:"downPayment"`
	DownPaymentPercent float64 `json:"downPaymentPercent"`
	LoanAmount         float64 `json:"loanAmount"`
	InterestRate       float64 `json:"interestRate"`
	LoanTerm           int     `json:"loanTerm"`
}

type MonthlyNumbers struct {
	Rent          float64 `json:"rent"`
	Mortgage      float64 `json:"mortgage"`
	PropertyTax   float64 `json:"propertyTax"`
	Insurance     float64 `json:"insurance"`
	HOA           float64 `json:"hoa"`
	Maintenance   float64 `json:"maintenance"`
	Vacancy       float64 `json:"vacancy"`
	Management    float64 `json:"management"`
	TotalExpenses float64 `json:"totalExpenses"`
	CashFlow      float64 `json:"cashFlow"`
}

type AnnualNumbers struct {
	Rent     float64 `json:"rent"`
	CashFlow float64 `json:"cashFlow"`
	NOI      float64 `json:"noi"`
}

// Metrics holds percentages rounded to two decimals. CashOnCashReturn and
// ROI are nil when the down payment is zero.
type Metrics struct {
	CapRate          float64  `json:"capRate"`
	CashOnCashReturn *float64 `json:"cashOnCashReturn"`
	ROI              *float64 `json:"roi"`
}

type Recommendation struct {
	Verdict value.Verdict `json:"verdict"`
	Reason  string        `json:"reason"`
	Color   string        `json:"color"`
}
