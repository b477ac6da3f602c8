// Package planner orchestrates one full mortgage calculation over an
// immutable input snapshot. It is the explicit, caller-invoked analog of a
// reactive recompute: every call starts from the snapshot and returns a
// fresh Result.
package planner

import (
	"fmt"

	"github.com/pwalczyk/mortgage-planner/pkg/amortization"
	"github.com/pwalczyk/mortgage-planner/pkg/calendar"
	"github.com/pwalczyk/mortgage-planner/pkg/impact"
	"github.com/pwalczyk/mortgage-planner/pkg/summary"
	"go.uber.org/zap"
)

// Snapshot is the complete input set for one calculation run. The planner
// never mutates it.
type Snapshot struct {
	Terms           amortization.LoanTerms
	LumpSums        []amortization.LumpSumEvent
	RateAdjustments []amortization.RateAdjustment
}

// Result holds everything a caller needs to present one calculation.
type Result struct {
	Term          amortization.Term
	Schedule      amortization.Schedule
	YearSummaries []summary.YearSummary
	Impacts       []impact.LumpSumImpact

	TotalInterest   float64
	TotalPaid       float64
	NextPaymentDate string
	PayoffDate      string

	// Savings versus the same loan with no extra monthly payment and no
	// lump sums, under the same rate adjustments.
	BaselineInterestSaved float64
	BaselineMonthsSaved   int
}

// Recalculate runs the full calculation for one snapshot: the loan is
// classified with the term solver first, then the schedule, lump-sum
// impacts, yearly summaries, totals, and baseline comparison are derived.
//
// A payment that does not cover the first period's interest returns
// amortization.ErrPaymentTooLow before any schedule is generated.
func Recalculate(logger *zap.Logger, snap Snapshot) (Result, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	var result Result
	terms := snap.Terms

	result.Term = amortization.TermFromPayment(terms.Principal, terms.BaseAnnualRate, terms.MonthlyPayment)
	if !result.Term.Amortizes() {
		return result, amortization.ErrPaymentTooLow
	}

	generator := amortization.NewGenerator(logger)
	schedule, err := generator.Schedule(terms, snap.LumpSums, snap.RateAdjustments)
	if err != nil {
		return result, fmt.Errorf("generating schedule: %w", err)
	}
	result.Schedule = schedule
	result.YearSummaries = summary.ByYear(schedule)
	result.TotalInterest = summary.TotalInterest(schedule)
	result.TotalPaid = summary.TotalPaid(schedule)

	result.NextPaymentDate = calendar.FormatDate(calendar.PaymentDueDate(
		terms.StartDate, 1, terms.PaymentDayOfMonth, terms.PreferredPaymentDay))
	result.PayoffDate = calendar.FormatDate(calendar.PaymentDueDate(
		terms.StartDate, len(schedule), terms.PaymentDayOfMonth, terms.PreferredPaymentDay))

	result.Impacts, err = impact.NewAnalyzer(logger).Analyze(terms, snap.LumpSums, snap.RateAdjustments)
	if err != nil {
		return result, fmt.Errorf("analyzing lump sum impacts: %w", err)
	}

	baselineTerms := terms
	baselineTerms.ExtraMonthlyPayment = 0
	baseline, err := generator.Schedule(baselineTerms, nil, snap.RateAdjustments)
	if err != nil {
		return result, fmt.Errorf("generating baseline schedule: %w", err)
	}
	result.BaselineInterestSaved = summary.TotalInterest(baseline) - result.TotalInterest
	result.BaselineMonthsSaved = len(baseline) - len(schedule)

	logger.Debug("recalculated plan",
		zap.String("op", "planner.Recalculate"),
		zap.Int("payments", len(schedule)),
		zap.Float64("totalInterest", result.TotalInterest),
		zap.Int("monthsSaved", result.BaselineMonthsSaved),
	)
	return result, nil
}
