package amortization

import (
	"math"

	"github.com/pwalczyk/mortgage-planner/pkg/constants"
)

// Term describes how long a fixed monthly payment takes to retire a loan.
type Term struct {
	Years       int
	Months      int
	TotalMonths int
}

// Amortizes reports whether the payment actually retires the loan. The
// solver returns the 999-year sentinel instead of an error when it cannot,
// so callers can present a "payment too low" validation message.
func (t Term) Amortizes() bool {
	return t.Years < constants.NonAmortizingYears
}

// TermFromPayment inverts the standard amortization formula to compute how
// many monthly payments of the given amount retire the principal:
//
//	n = ceil( -ln(1 - P*r/M) / ln(1 + r) )   with r = annualRate / 12
//
// A zero rate degenerates to a straight division, and a payment at or below
// the first period's interest yields the non-amortizing sentinel.
func TermFromPayment(principal, annualRate, monthlyPayment float64) Term {
	if annualRate == 0 {
		return termFromMonths(int(math.Ceil(principal / monthlyPayment)))
	}

	monthlyRate := annualRate / constants.MonthsPerYear
	if monthlyPayment <= principal*monthlyRate {
		return Term{Years: constants.NonAmortizingYears}
	}

	totalMonths := math.Ceil(-math.Log(1-principal*monthlyRate/monthlyPayment) / math.Log(1+monthlyRate))
	return termFromMonths(int(totalMonths))
}

func termFromMonths(totalMonths int) Term {
	return Term{
		Years:       totalMonths / constants.MonthsPerYear,
		Months:      totalMonths % constants.MonthsPerYear,
		TotalMonths: totalMonths,
	}
}
