// Package summary rolls a payment ledger into annual totals.
package summary

import (
	"github.com/pwalczyk/mortgage-planner/pkg/amortization"
	"github.com/pwalczyk/mortgage-planner/pkg/constants"
	"github.com/pwalczyk/mortgage-planner/pkg/mathutil"
)

// YearSummary covers up to 12 consecutive payments of a schedule.
type YearSummary struct {
	Year           int // 1-based bucket index
	Payments       int
	TotalPrincipal float64
	TotalInterest  float64
	EndingBalance  float64
}

// ByYear buckets the schedule into consecutive 12-payment years. A partial
// final year is included as a short bucket.
func ByYear(schedule amortization.Schedule) []YearSummary {
	var summaries []YearSummary
	for start := 0; start < len(schedule); start += constants.MonthsPerYear {
		end := start + constants.MonthsPerYear
		if end > len(schedule) {
			end = len(schedule)
		}
		bucket := schedule[start:end]

		entry := YearSummary{
			Year:     start/constants.MonthsPerYear + 1,
			Payments: len(bucket),
		}
		for _, record := range bucket {
			entry.TotalPrincipal += record.PrincipalPortion
			entry.TotalInterest += record.InterestPortion
		}
		entry.TotalPrincipal = mathutil.Round(entry.TotalPrincipal)
		entry.TotalInterest = mathutil.Round(entry.TotalInterest)
		entry.EndingBalance = bucket[len(bucket)-1].RemainingBalance
		summaries = append(summaries, entry)
	}
	return summaries
}

// TotalInterest sums the interest portions of the whole schedule.
func TotalInterest(schedule amortization.Schedule) float64 {
	total := 0.0
	for _, record := range schedule {
		total += record.InterestPortion
	}
	return mathutil.Round(total)
}

// TotalPrincipal sums the principal portions of the whole schedule.
func TotalPrincipal(schedule amortization.Schedule) float64 {
	total := 0.0
	for _, record := range schedule {
		total += record.PrincipalPortion
	}
	return mathutil.Round(total)
}

// TotalPaid sums the full payment amounts of the whole schedule.
func TotalPaid(schedule amortization.Schedule) float64 {
	total := 0.0
	for _, record := range schedule {
		total += record.PaymentAmount
	}
	return mathutil.Round(total)
}
