package entity

// PropertyParameters описывает входные данные одного расчёта.
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
