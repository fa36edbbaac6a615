// Command calc prints the investment report of one property without the API.
package main

import (
	"bytes"
	"fmt"
	"os"

	jsoniter "github.com/json-iterator/go"
	"github.com/spf13/cobra"

	"realty_analyzer/internal/domain/entity"
	"realty_analyzer/internal/domain/service/calculator"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	params := calculator.DefaultParameters()

	var input string

	cmd := &cobra.Command{
		Use:           "calc",
		Short:         "Compute rental property investment metrics",
		Example:       "calc --price 300000 --rent 2000 --tax 3000 --insurance 1200",
		SilenceUsage:  true,
		SilenceErrors: false,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := params

			if input != "" {
				loaded, err := readParameters(input, params)
				if err != nil {
					return err
				}

				p = loaded
			}

			report, err := calculator.Analyze(p)
			if err != nil {
				return fmt.Errorf("calculator.Analyze: %w", err)
			}

			out, err := json.MarshalIndent(report, "", "  ")
			if err != nil {
				return fmt.Errorf("json.MarshalIndent: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), string(out))

			return err //nolint:wrapcheck
		},
	}

	flags := cmd.Flags()
	flags.Float64Var(&params.PurchasePrice, "price", params.PurchasePrice, "purchase price")
	flags.Float64Var(&params.DownPaymentPercent, "down", params.DownPaymentPercent, "down payment, percent of price")
	flags.Float64Var(&params.InterestRate, "rate", params.InterestRate, "annual interest rate, percent")
	flags.IntVar(&params.LoanTerm, "term", params.LoanTerm, "loan term, years")
	flags.Float64Var(&params.MonthlyRent, "rent", params.MonthlyRent, "monthly rent")
	flags.Float64Var(&params.PropertyTax, "tax", params.PropertyTax, "annual property tax")
	flags.Float64Var(&params.Insurance, "insurance", params.Insurance, "annual insurance")
	flags.Float64Var(&params.HOAFees, "hoa", params.HOAFees, "monthly HOA fees")
	flags.Float64Var(&params.MaintenancePercent, "maintenance", params.MaintenancePercent, "maintenance, percent")
	flags.Float64Var(&params.VacancyPercent, "vacancy", params.VacancyPercent, "vacancy, percent of rent")
	flags.Float64Var(&params.PropertyManagementPercent, "management", params.PropertyManagementPercent, "management, percent of rent")
	flags.StringVarP(&input, "input", "i", "", "JSON file with parameters, flags give the defaults")

	return cmd
}

func readParameters(path string, defaults entity.PropertyParameters) (entity.PropertyParameters, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return entity.PropertyParameters{}, fmt.Errorf("os.ReadFile: %w", err)
	}

	object := make(map[string]any)

	decoder := json.NewDecoder(bytes.NewReader(raw))
	decoder.UseNumber()

	if err = decoder.Decode(&object); err != nil {
		return entity.PropertyParameters{}, fmt.Errorf("json.Decode: %w", err)
	}

	params, err := calculator.ParametersFromMap(object, defaults)
	if err != nil {
		return entity.PropertyParameters{}, fmt.Errorf("calculator.ParametersFromMap: %w", err)
	}

	return params, nil
}
