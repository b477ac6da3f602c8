// Package amortization implements the mortgage payoff simulation engine:
// the schedule generator, the term solver, and the payment ledger types
// shared by the analysis packages.
//
// Every function is pure given its arguments; the engine holds no state
// between calls and concurrent callers need no coordination.
package amortization

import (
	"fmt"
	"sort"
	"time"

	"github.com/pwalczyk/mortgage-planner/pkg/calendar"
	"github.com/pwalczyk/mortgage-planner/pkg/constants"
)

// LoanTerms holds the immutable inputs for one calculation run.
type LoanTerms struct {
	Principal           float64
	BaseAnnualRate      float64 // decimal fraction, e.g. 0.0404
	MonthlyPayment      float64
	ExtraMonthlyPayment float64
	StartDate           time.Time
	PaymentDayOfMonth   int // 1-28
	PreferredPaymentDay int // optional 29-31, clamped per month; 0 when unset
}

// LumpSumEvent is a one-time extra principal payment. The trigger is either
// an explicit PlannedDate or, when PlannedDate is zero, a legacy year/month
// pair relative to the loan start. The Paid flag is informational only and
// never affects the simulation.
type LumpSumEvent struct {
	ID          string
	Amount      float64
	PlannedDate time.Time
	Year        int
	Month       int
	Description string
	Paid        bool
}

// ResolvePaymentNumber maps the event's trigger onto a 1-based payment
// number. Legacy triggers resolve as payment 1 for year zero and
// (year-1)*12 + month otherwise.
func (e LumpSumEvent) ResolvePaymentNumber(terms LoanTerms) (int, error) {
	if !e.PlannedDate.IsZero() {
		number, err := calendar.PaymentNumberForDate(terms.StartDate, e.PlannedDate,
			terms.PaymentDayOfMonth, terms.PreferredPaymentDay)
		if err != nil {
			return 0, fmt.Errorf("resolving lump sum %s: %w", e.ID, err)
		}
		return number, nil
	}
	if e.Year == 0 {
		return 1, nil
	}
	return (e.Year-1)*constants.MonthsPerYear + e.Month, nil
}

// RateAdjustment shifts the annual rate from its effective date onward.
// Deltas are expressed in percentage points and compound additively with
// earlier adjustments; they never replace each other.
type RateAdjustment struct {
	ID               string
	EffectiveDate    time.Time
	RateDeltaPercent float64
	Description      string
}

// ResolvePaymentNumber maps the adjustment's effective date onto the first
// payment it applies to.
func (a RateAdjustment) ResolvePaymentNumber(terms LoanTerms) (int, error) {
	number, err := calendar.PaymentNumberForDate(terms.StartDate, a.EffectiveDate,
		terms.PaymentDayOfMonth, terms.PreferredPaymentDay)
	if err != nil {
		return 0, fmt.Errorf("resolving rate adjustment %s: %w", a.ID, err)
	}
	return number, nil
}

// PaymentRecord holds the values for a given payment. PrincipalPortion plus
// InterestPortion equals PaymentAmount within rounding.
type PaymentRecord struct {
	PaymentNumber    int
	PaymentAmount    float64
	PrincipalPortion float64
	InterestPortion  float64
	RemainingBalance float64
}

// Schedule is the ordered payment ledger for one simulation run.
type Schedule []PaymentRecord

// resolveLumpSums sums the amounts of all events landing on the same payment
// number; colliding events are simply added together.
func resolveLumpSums(terms LoanTerms, lumpSums []LumpSumEvent) (map[int]float64, error) {
	byPayment := make(map[int]float64, len(lumpSums))
	for _, event := range lumpSums {
		number, err := event.ResolvePaymentNumber(terms)
		if err != nil {
			return nil, err
		}
		byPayment[number] += event.Amount
	}
	return byPayment, nil
}

type resolvedAdjustment struct {
	paymentNumber int
	delta         float64 // decimal fraction added to the annual rate
	id            string
}

// resolveAdjustments converts percentage-point deltas into decimal fractions
// and orders them by the payment number they take effect at.
func resolveAdjustments(terms LoanTerms, adjustments []RateAdjustment) ([]resolvedAdjustment, error) {
	resolved := make([]resolvedAdjustment, 0, len(adjustments))
	for _, adjustment := range adjustments {
		number, err := adjustment.ResolvePaymentNumber(terms)
		if err != nil {
			return nil, err
		}
		resolved = append(resolved, resolvedAdjustment{
			paymentNumber: number,
			delta:         adjustment.RateDeltaPercent / constants.PercentageMultiplier,
			id:            adjustment.ID,
		})
	}
	sort.SliceStable(resolved, func(i, j int) bool {
		return resolved[i].paymentNumber < resolved[j].paymentNumber
	})
	return resolved, nil
}
