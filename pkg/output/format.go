// Package output provides utilities for formatting and displaying planner
// results.
package output

import (
	"fmt"
	"strings"

	"github.com/pwalczyk/mortgage-planner/internal/planner"
	"github.com/pwalczyk/mortgage-planner/pkg/constants"
	"github.com/pwalczyk/mortgage-planner/pkg/format"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable report.
func PrettyFormat(result planner.Result) {
	p := message.NewPrinter(language.English)

	fmt.Printf("--- Payoff plan ---\n")
	fmt.Printf("Term: %d years %d months (%d payments)\n",
		result.Term.Years, result.Term.Months, result.Term.TotalMonths)
	fmt.Printf("Next payment: %s\n", result.NextPaymentDate)
	fmt.Printf("Payoff date:  %s\n", result.PayoffDate)
	fmt.Printf("Total paid:     %s\n", format.Currency(result.TotalPaid))
	fmt.Printf("Total interest: %s\n", format.Currency(result.TotalInterest))
	if result.BaselineMonthsSaved > 0 || result.BaselineInterestSaved > 0 {
		fmt.Printf("Versus no prepayments: %s interest and %d months saved\n",
			format.Currency(result.BaselineInterestSaved), result.BaselineMonthsSaved)
	}

	fmt.Printf("\nYear | Principal     | Interest      | Ending Balance\n")
	fmt.Printf("____ | _____________ | _____________ | ______________\n")
	for _, year := range result.YearSummaries {
		_, _ = p.Printf("%4d | $%.2f | $%.2f | $%.2f\n",
			year.Year, year.TotalPrincipal, year.TotalInterest, year.EndingBalance)
	}

	if len(result.Impacts) > 0 {
		fmt.Printf("\nLump Sum | Payment # | Interest Saved | Months Saved | Cumulative Saved\n")
		fmt.Printf("________ | _________ | ______________ | ____________ | ________________\n")
		for _, entry := range result.Impacts {
			_, _ = p.Printf("%s | %d | $%.2f | %d | $%.2f\n",
				entry.EventID, entry.PaymentNumber, entry.InterestSaved,
				entry.TimeSavedMonths, entry.CumulativeInterestSaved)
		}
	}
}

// CsvFormat outputs the payment ledger in comma-separated value format.
func CsvFormat(result planner.Result) {
	fmt.Printf(`"payment","amount","principal","interest","balance"`)
	fmt.Printf("\n")
	for _, record := range result.Schedule {
		fmt.Printf(`"%d","%.2f","%.2f","%.2f","%.2f"`,
			record.PaymentNumber, record.PaymentAmount, record.PrincipalPortion,
			record.InterestPortion, record.RemainingBalance)
		fmt.Printf("\n")
	}
}

// ValidateFormat checks that the requested output format is supported.
func ValidateFormat(name string) error {
	switch name {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	}
	return fmt.Errorf("invalid output format %q, valid formats: %s", name,
		strings.Join([]string{constants.OutputFormatPretty, constants.OutputFormatCSV}, ", "))
}
