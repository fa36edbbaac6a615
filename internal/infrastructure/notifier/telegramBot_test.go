package notifier_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/value"
	"realty_analyzer/internal/infrastructure/notifier"
)

func TestFormatDeal(t *testing.T) {
	rq := require.New(t)

	coc := 14.5

	testCases := []struct {
		name        string
		deal        entity.Deal
		contains    []string
		notContains []string
	}{
		{
			name: "full",
			deal: entity.Deal{
				Name:             "Duplex <north>",
				Location:         value.Location("Austin & Co"),
				Params:           entity.PropertyParameters{PurchasePrice: 250000},
				CashFlow:         612.4,
				CapRate:          9.1,
				CashOnCashReturn: &coc,
				Verdict:          value.VerdictExcellent,
			},
			contains: []string{
				"<b>EXCELLENT deal saved</b>",
				"Duplex &lt;north&gt;",
				"Austin &amp; Co",
				"$250000.00",
				"$612.40/mo",
				"9.10%",
				"14.50",
			},
		},
		{
			name: "no location, zero down",
			deal: entity.Deal{
				Name:    "Cabin",
				Verdict: value.VerdictGood,
			},
			contains:    []string{"Cash-on-cash:</b> n/a"},
			notContains: []string{"Location"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			text := notifier.FormatDeal(tc.deal)

			for _, s := range tc.contains {
				rq.Contains(text, s)
			}

			for _, s := range tc.notContains {
				rq.NotContains(text, s)
			}
		})
	}
}
