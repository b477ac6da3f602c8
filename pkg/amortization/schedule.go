package amortization

import (
	"github.com/pwalczyk/mortgage-planner/pkg/constants"
	"github.com/pwalczyk/mortgage-planner/pkg/mathutil"
	"go.uber.org/zap"
)

// Generator produces payoff schedules for a loan.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new generator instance. A nil logger is replaced
// with a nop logger so the engine stays usable as a plain library.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Schedule simulates the payoff of the loan month by month, applying
// time-varying rate adjustments, the constant extra monthly payment, and
// date-keyed lump-sum prepayments, and returns the ordered payment ledger.
//
// The effective annual rate is the base rate plus the cumulative adjustment
// deltas, floored at zero. The principal portion of a payment is floored at
// zero before lump sums are added, so an insufficient payment stalls the
// balance rather than growing it, and is clamped to the remaining balance so
// the loan is never overpaid. Every stored figure is rounded to two decimals
// with halves away from zero.
//
// The simulation stops when the balance drops to $0.01 or less; if the
// 1200-period safety cap is reached first, ErrScheduleCapExceeded is
// returned instead of a truncated ledger.
func (g *Generator) Schedule(terms LoanTerms, lumpSums []LumpSumEvent, adjustments []RateAdjustment) (Schedule, error) {
	lumpByPayment, err := resolveLumpSums(terms, lumpSums)
	if err != nil {
		return nil, err
	}
	pending, err := resolveAdjustments(terms, adjustments)
	if err != nil {
		return nil, err
	}

	schedule := make(Schedule, 0, 360)
	balance := terms.Principal
	cumulativeDelta := 0.0
	next := 0

	for number := 1; number <= constants.MaxSchedulePeriods; number++ {
		for next < len(pending) && pending[next].paymentNumber <= number {
			cumulativeDelta += pending[next].delta
			g.logger.Debug("applying rate adjustment",
				zap.String("op", "amortization.Schedule"),
				zap.String("adjustment", pending[next].id),
				zap.Int("paymentNumber", number),
				zap.Float64("cumulativeDelta", cumulativeDelta),
			)
			next++
		}

		annualRate := mathutil.Max(0, terms.BaseAnnualRate+cumulativeDelta)
		monthlyRate := annualRate / constants.MonthsPerYear

		interest := balance * monthlyRate
		principal := terms.MonthlyPayment + terms.ExtraMonthlyPayment - interest
		if principal < 0 {
			principal = 0
		}
		if lump := lumpByPayment[number]; lump > 0 {
			g.logger.Debug("applying lump sum prepayment",
				zap.String("op", "amortization.Schedule"),
				zap.Int("paymentNumber", number),
				zap.Float64("amount", lump),
			)
			principal += lump
		}
		if principal > balance {
			principal = balance
		}
		balance -= principal

		schedule = append(schedule, PaymentRecord{
			PaymentNumber:    number,
			PaymentAmount:    mathutil.Round(interest + principal),
			PrincipalPortion: mathutil.Round(principal),
			InterestPortion:  mathutil.Round(interest),
			RemainingBalance: mathutil.Round(balance),
		})

		if balance <= constants.CurrencyEpsilon {
			return schedule, nil
		}
	}

	return nil, ErrScheduleCapExceeded
}
