package planner

import (
	"errors"
	"testing"

	"github.com/pwalczyk/mortgage-planner/pkg/amortization"
	"github.com/pwalczyk/mortgage-planner/pkg/calendar"
	"github.com/pwalczyk/mortgage-planner/pkg/mathutil"
)

func testSnapshot() Snapshot {
	return Snapshot{
		Terms: amortization.LoanTerms{
			Principal:         100000,
			BaseAnnualRate:    0.06,
			MonthlyPayment:    720,
			StartDate:         calendar.MustParseDate("2024-01-01"),
			PaymentDayOfMonth: 15,
		},
	}
}

func TestRecalculate(t *testing.T) {
	snap := testSnapshot()
	snap.LumpSums = []amortization.LumpSumEvent{
		{ID: "bonus", Amount: 10000, PlannedDate: calendar.MustParseDate("2024-06-01")},
	}

	result, err := Recalculate(nil, snap)
	if err != nil {
		t.Fatalf("Recalculate() unexpected error: %v", err)
	}

	if !result.Term.Amortizes() {
		t.Errorf("Term = %+v, expected an amortizing classification", result.Term)
	}
	if result.Term.TotalMonths != 238 {
		t.Errorf("Term.TotalMonths = %d, expected 238", result.Term.TotalMonths)
	}
	if len(result.Schedule) == 0 {
		t.Fatalf("Recalculate() produced an empty schedule")
	}
	if len(result.Schedule) >= result.Term.TotalMonths {
		t.Errorf("schedule length = %d, expected the lump sum to beat the %d-month term",
			len(result.Schedule), result.Term.TotalMonths)
	}
	if final := result.Schedule[len(result.Schedule)-1].RemainingBalance; final > 0.01 {
		t.Errorf("final RemainingBalance = %.2f, expected <= 0.01", final)
	}

	if result.TotalInterest <= 0 {
		t.Errorf("TotalInterest = %.2f, expected positive", result.TotalInterest)
	}
	expectedPaid := result.TotalInterest + snap.Terms.Principal
	if !mathutil.WithinTolerance(result.TotalPaid, expectedPaid, float64(len(result.Schedule))*0.01) {
		t.Errorf("TotalPaid = %.2f, expected about interest plus principal %.2f", result.TotalPaid, expectedPaid)
	}

	if result.NextPaymentDate != "2024-01-15" {
		t.Errorf("NextPaymentDate = %s, expected 2024-01-15", result.NextPaymentDate)
	}
	expectedPayoff := calendar.FormatDate(calendar.PaymentDueDate(
		snap.Terms.StartDate, len(result.Schedule), snap.Terms.PaymentDayOfMonth, 0))
	if result.PayoffDate != expectedPayoff {
		t.Errorf("PayoffDate = %s, expected %s", result.PayoffDate, expectedPayoff)
	}

	if len(result.Impacts) != 1 {
		t.Fatalf("Impacts length = %d, expected 1", len(result.Impacts))
	}
	if result.Impacts[0].PrincipalReduction != 10000 {
		t.Errorf("Impacts[0].PrincipalReduction = %.2f, expected 10000", result.Impacts[0].PrincipalReduction)
	}

	if result.BaselineInterestSaved <= 0 {
		t.Errorf("BaselineInterestSaved = %.2f, expected positive with a lump sum in play", result.BaselineInterestSaved)
	}
	if result.BaselineMonthsSaved <= 0 {
		t.Errorf("BaselineMonthsSaved = %d, expected positive with a lump sum in play", result.BaselineMonthsSaved)
	}

	if len(result.YearSummaries) == 0 {
		t.Fatalf("YearSummaries is empty")
	}
	expectedBuckets := (len(result.Schedule) + 11) / 12
	if len(result.YearSummaries) != expectedBuckets {
		t.Errorf("YearSummaries length = %d, expected %d", len(result.YearSummaries), expectedBuckets)
	}
}

func TestRecalculatePaymentTooLow(t *testing.T) {
	snap := testSnapshot()
	snap.Terms.MonthlyPayment = 500 // exactly the first period's interest

	_, err := Recalculate(nil, snap)
	if !errors.Is(err, amortization.ErrPaymentTooLow) {
		t.Fatalf("Recalculate() error = %v, expected ErrPaymentTooLow", err)
	}
}

// Recalculate never mutates its snapshot; two runs over the same inputs
// produce identical results.
func TestRecalculateIsPure(t *testing.T) {
	snap := testSnapshot()
	snap.LumpSums = []amortization.LumpSumEvent{
		{ID: "bonus", Amount: 5000, PlannedDate: calendar.MustParseDate("2024-06-01")},
	}

	first, err := Recalculate(nil, snap)
	if err != nil {
		t.Fatalf("Recalculate() unexpected error: %v", err)
	}
	second, err := Recalculate(nil, snap)
	if err != nil {
		t.Fatalf("Recalculate() unexpected error: %v", err)
	}

	if len(first.Schedule) != len(second.Schedule) {
		t.Fatalf("schedule lengths differ between runs: %d vs %d", len(first.Schedule), len(second.Schedule))
	}
	if first.TotalInterest != second.TotalInterest || first.TotalPaid != second.TotalPaid {
		t.Errorf("totals differ between runs: %+v vs %+v", first, second)
	}
	if snap.Terms.ExtraMonthlyPayment != 0 {
		t.Errorf("snapshot was mutated: ExtraMonthlyPayment = %v", snap.Terms.ExtraMonthlyPayment)
	}
}
