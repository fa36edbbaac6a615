package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"realty_analyzer/internal/domain/entity"
)

func TestCalcCommand(t *testing.T) {
	rq := require.New(t)

	input := filepath.Join(t.TempDir(), "deal.json")
	rq.NoError(os.WriteFile(input, []byte(`{"monthlyRent": "2000", "propertyTax": 3000}`), 0o600))

	testCases := []struct {
		name        string
		args        []string
		wantErr     bool
		wantVerdict string
		wantCapRate float64
	}{
		{
			name:        "flags",
			args:        []string{"--price", "300000", "--rent", "2000", "--tax", "3000", "--insurance", "1200"},
			wantVerdict: "AVOID",
			wantCapRate: 5.32,
		},
		{
			name:        "file over flag defaults",
			args:        []string{"--price", "300000", "--insurance", "1200", "-i", input},
			wantVerdict: "AVOID",
			wantCapRate: 5.32,
		},
		{
			name:    "zero price",
			args:    []string{"--rent", "2000"},
			wantErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer

			cmd := newRootCmd()
			cmd.SetOut(&out)
			cmd.SetErr(&bytes.Buffer{})
			cmd.SetArgs(tc.args)

			err := cmd.Execute()
			if tc.wantErr {
				rq.Error(err)

				return
			}

			rq.NoError(err)

			var report entity.FinancialReport

			rq.NoError(json.Unmarshal(out.Bytes(), &report))
			rq.Equal(tc.wantVerdict, report.Recommendation.Verdict.String())
			rq.InDelta(tc.wantCapRate, report.Metrics.CapRate, 1e-9)
		})
	}
}
