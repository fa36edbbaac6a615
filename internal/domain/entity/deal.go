package entity

import (
	"time"

	"realty_analyzer/internal/domain/value"
)

// Deal: сохранённый пользователем расчёт объекта.
type Deal struct {
	ID       value.DealID
	OwnerID  int64
	Name     string
	Location value.Location
	Params   PropertyParameters

	// Подмножество отчёта, которое сохраняется вместе с параметрами.
	CashFlow         float64
	ROI              *float64
	CapRate          float64
	CashOnCashReturn *float64
	Verdict          value.Verdict

	// Заполняется асинхронно воркером, может отсутствовать.
	AISummary *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewDeal builds a deal record from the inputs and the report computed for them.
func NewDeal(
	ownerID int64,
	name string,
	location value.Location,
	params PropertyParameters,
	report FinancialReport,
	now time.Time,
) Deal {
	return Deal{
		ID:               value.NewDealID(),
		OwnerID:          ownerID,
		Name:             name,
		Location:         location,
		Params:           params,
		CashFlow:         report.MonthlyNumbers.CashFlow,
		ROI:              report.Metrics.ROI,
		CapRate:          report.Metrics.CapRate,
		CashOnCashReturn: report.Metrics.CashOnCashReturn,
		Verdict:          report.Recommendation.Verdict,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
