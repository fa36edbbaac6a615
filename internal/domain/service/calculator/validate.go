package calculator

import (
	"fmt"
	"math"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/pkg/errcodes"
)

type field struct {
	name  string
	value float64
}

// Validate rejects parameters the formulas cannot turn into finite numbers.
// The first offending field is reported.
func Validate(p entity.PropertyParameters) error {
	fields := []field{
		{"purchasePrice", p.PurchasePrice},
		{"downPaymentPercent", p.DownPaymentPercent},
		{"interestRate", p.InterestRate},
		{"monthlyRent", p.MonthlyRent},
		{"propertyTax", p.PropertyTax},
		{"insurance", p.Insurance},
		{"hoaFees", p.HOAFees},
		{"maintenancePercent", p.MaintenancePercent},
		{"vacancyPercent", p.VacancyPercent},
		{"propertyManagementPercent", p.PropertyManagementPercent},
	}

	for _, f := range fields {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return invalid(f.name, "must be a finite number")
		}

		if f.value < 0 {
			return invalid(f.name, "must not be negative")
		}
	}

	switch {
	case p.PurchasePrice <= 0:
		return invalid("purchasePrice", "must be greater than zero")
	case p.DownPaymentPercent > 100:
		return invalid("downPaymentPercent", "must be between 0 and 100")
	case p.LoanTerm <= 0 || p.LoanTerm > maxLoanTermYears:
		return invalid("loanTerm", fmt.Sprintf("must be between 1 and %d years", maxLoanTermYears))
	}

	return nil
}

func invalid(field, message string) error {
	return domain.NewFieldError(errcodes.InvalidPropertyParameters, field, message)
}
