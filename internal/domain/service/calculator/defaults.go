package calculator

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cast"

	"realty_analyzer/internal/domain"
	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/pkg/errcodes"
)

const maxLoanTermYears = 100

// DefaultParameters enumerates the fallback value of every input field.
// Missing or unparsable fields in loose input take these values.
func DefaultParameters() entity.PropertyParameters {
	return entity.PropertyParameters{
		PurchasePrice:             0,
		DownPaymentPercent:        20,
		InterestRate:              7,
		LoanTerm:                  30,
		MonthlyRent:               0,
		PropertyTax:               0,
		Insurance:                 0,
		HOAFees:                   0,
		MaintenancePercent:        1,
		VacancyPercent:            5,
		PropertyManagementPercent: 10,
	}
}

// ParametersFromMap coerces a loosely typed object (JSON numbers, numeric
// strings) into parameters. Values that cannot be read as numbers fall back to
// defaults. Values that read as NaN or Inf are kept so Validate rejects them.
func ParametersFromMap(raw map[string]any, defaults entity.PropertyParameters) (entity.PropertyParameters, error) {
	loanTerm := coerceFloat(raw["loanTerm"], float64(defaults.LoanTerm))
	if math.IsNaN(loanTerm) || math.IsInf(loanTerm, 0) || math.Abs(loanTerm) > maxLoanTermYears {
		return entity.PropertyParameters{}, domain.NewFieldError(
			errcodes.InvalidPropertyParameters,
			"loanTerm",
			fmt.Sprintf("must be between 1 and %d years", maxLoanTermYears),
		)
	}

	return entity.PropertyParameters{
		PurchasePrice:             coerceFloat(raw["purchasePrice"], defaults.PurchasePrice),
		DownPaymentPercent:        coerceFloat(raw["downPaymentPercent"], defaults.DownPaymentPercent),
		InterestRate:              coerceFloat(raw["interestRate"], defaults.InterestRate),
		LoanTerm:                  int(math.Trunc(loanTerm)),
		MonthlyRent:               coerceFloat(raw["monthlyRent"], defaults.MonthlyRent),
		PropertyTax:               coerceFloat(raw["propertyTax"], defaults.PropertyTax),
		Insurance:                 coerceFloat(raw["insurance"], defaults.Insurance),
		HOAFees:                   coerceFloat(raw["hoaFees"], defaults.HOAFees),
		MaintenancePercent:        coerceFloat(raw["maintenancePercent"], defaults.MaintenancePercent),
		VacancyPercent:            coerceFloat(raw["vacancyPercent"], defaults.VacancyPercent),
		PropertyManagementPercent: coerceFloat(raw["propertyManagementPercent"], defaults.PropertyManagementPercent),
	}, nil
}

func coerceFloat(v any, def float64) float64 {
	switch t := v.(type) {
	case nil, bool:
		return def
	case string:
		if strings.TrimSpace(t) == "" {
			return def
		}

		v = strings.TrimSpace(t)
	}

	f, err := cast.ToFloat64E(v)
	if err == nil {
		return f
	}

	// Literals such as 1e400 or NaN are numbers even when cast refuses them.
	if f, _ = strconv.ParseFloat(fmt.Sprint(v), 64); math.IsInf(f, 0) || math.IsNaN(f) {
		return f
	}

	return def
}
