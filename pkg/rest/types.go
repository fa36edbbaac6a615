// Данный файл должен быть сгенерирован из openapi спецификации и называться types.gen.go
package rest

import "time"

// Error Модель ошибок
type Error struct {
	Success bool `json:"success"`

	// Error Дублирует Message для старых клиентов
	Error string `json:"error"`

	// Code Код ошибки
	Code ErrorCode `json:"code"`

	// Message Сообщение об ошибке (для отображения в UI в будущем)
	Message string `json:"message"`

	// SupportID Идентификатор запроса для обращения в поддержку
	SupportID string `json:"supportId"`
}

// ErrorCode Код ошибки
type ErrorCode string

type Success struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,max=100"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type User struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type AuthResponse struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

type UserResponse struct {
	Success bool `json:"success"`
	User    User `json:"user"`
}

// PropertyParameters Входные параметры расчёта
type PropertyParameters struct {
	PurchasePrice             float64 `json:"purchasePrice"`
	DownPaymentPercent        float64 `json:"downPaymentPercent"`
	InterestRate              float64 `json:"interestRate"`
	LoanTerm                  int     `json:"loanTerm"`
	MonthlyRent               float64 `json:"monthlyRent"`
	PropertyTax               float64 `json:"propertyTax"`
	Insurance                 float64 `json:"insurance"`
	HOAFees                   float64 `json:"hoaFees"`
	MaintenancePercent        float64 `json:"maintenancePercent"`
	VacancyPercent            float64 `json:"vacancyPercent"`
	PropertyManagementPercent float64 `json:"propertyManagementPercent"`
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

// Metrics Проценты округлены до двух знаков, null при нулевом первом взносе
type Metrics struct {
	CapRate          float64  `json:"capRate"`
	CashOnCashReturn *float64 `json:"cashOnCashReturn"`
	ROI              *float64 `json:"roi"`
}

type Recommendation struct {
	Verdict string `json:"verdict"`
	Reason  string `json:"reason"`
	Color   string `json:"color"`
}

// Analysis Финансовый отчёт по объекту
type Analysis struct {
	PurchaseInfo   PurchaseInfo   `json:"purchaseInfo"`
	MonthlyNumbers MonthlyNumbers `json:"monthlyNumbers"`
	AnnualNumbers  AnnualNumbers  `json:"annualNumbers"`
	Metrics        Metrics        `json:"metrics"`
	Recommendation Recommendation `json:"recommendation"`
}

type InvestmentInsight struct {
	Summary     string   `json:"summary"`
	SummaryHTML string   `json:"summaryHtml"`
	Strengths   []string `json:"strengths"`
	Risks       []string `json:"risks"`
	Suggestions []string `json:"suggestions"`
	Fallback    bool     `json:"fallback"`
}

type MarketSentiment struct {
	Location  string   `json:"location"`
	Sentiment string   `json:"sentiment"`
	Outlook   string   `json:"outlook"`
	Factors   []string `json:"factors"`
	Headlines []string `json:"headlines"`
	Fallback  bool     `json:"fallback"`
}

type Insights struct {
	Investment *InvestmentInsight `json:"investment,omitempty"`
	Market     *MarketSentiment   `json:"market,omitempty"`
}

type AnalyzeResponse struct {
	Success  bool      `json:"success"`
	Analysis Analysis  `json:"analysis"`
	AI       *Insights `json:"ai,omitempty"`
}

type Deal struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Location         string             `json:"location"`
	Params           PropertyParameters `json:"params"`
	CashFlow         float64            `json:"cashFlow"`
	ROI              *float64           `json:"roi"`
	CapRate          float64            `json:"capRate"`
	CashOnCashReturn *float64           `json:"cashOnCashReturn"`
	Verdict          string             `json:"verdict"`
	AISummary        *string            `json:"aiSummary"`
	CreatedAt        time.Time          `json:"createdAt"`
	UpdatedAt        time.Time          `json:"updatedAt"`
}

type DealResponse struct {
	Success  bool      `json:"success"`
	Deal     Deal      `json:"deal"`
	Analysis *Analysis `json:"analysis,omitempty"`
}

type DealListResponse struct {
	Success bool   `json:"success"`
	Deals   []Deal `json:"deals"`
	Limit   int    `json:"limit"`
	Offset  int    `json:"offset"`
}

type MarketSentimentResponse struct {
	Success   bool            `json:"success"`
	Sentiment MarketSentiment `json:"sentiment"`
}
