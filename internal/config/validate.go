package config

import (
	"fmt"

	"github.com/pwalczyk/mortgage-planner/pkg/calendar"
	"github.com/pwalczyk/mortgage-planner/pkg/constants"
)

// Validate performs field-scoped validation of the plan and returns one
// message per problem. The engine is only invoked when the returned slice
// is empty.
func (p *Plan) Validate() []string {
	var problems []string

	loan := p.Loan
	if loan.Principal <= 0 {
		problems = append(problems, fmt.Sprintf("loan.principal: must be positive, got %.2f", loan.Principal))
	}
	if loan.AnnualRate < 0 || loan.AnnualRate >= 1 {
		problems = append(problems, fmt.Sprintf("loan.annualRate: must be a decimal fraction in [0, 1), got %v (a 4.04%% rate is written as 0.0404)", loan.AnnualRate))
	}
	if loan.MonthlyPayment <= 0 {
		problems = append(problems, fmt.Sprintf("loan.monthlyPayment: must be positive, got %.2f", loan.MonthlyPayment))
	}
	if loan.ExtraMonthlyPayment < 0 {
		problems = append(problems, fmt.Sprintf("loan.extraMonthlyPayment: must not be negative, got %.2f", loan.ExtraMonthlyPayment))
	}
	if _, err := calendar.ParseDate(loan.StartDate); err != nil {
		problems = append(problems, fmt.Sprintf("loan.startDate: %v", err))
	}
	if loan.PaymentDayOfMonth < 1 || loan.PaymentDayOfMonth > constants.MaxFixedPaymentDay {
		problems = append(problems, fmt.Sprintf("loan.paymentDayOfMonth: must be between 1 and %d, got %d", constants.MaxFixedPaymentDay, loan.PaymentDayOfMonth))
	}
	if loan.PreferredPaymentDay != 0 && (loan.PreferredPaymentDay <= constants.MaxFixedPaymentDay || loan.PreferredPaymentDay > 31) {
		problems = append(problems, fmt.Sprintf("loan.preferredPaymentDay: must be between 29 and 31 when set, got %d", loan.PreferredPaymentDay))
	}

	for i, lump := range p.LumpSums {
		if lump.Amount < 0 {
			problems = append(problems, fmt.Sprintf("lumpSums[%d].amount: must not be negative, got %.2f", i, lump.Amount))
		}
		switch {
		case lump.Date != "":
			if _, err := calendar.ParseDate(lump.Date); err != nil {
				problems = append(problems, fmt.Sprintf("lumpSums[%d].date: %v", i, err))
			}
		case lump.Year < 0:
			problems = append(problems, fmt.Sprintf("lumpSums[%d].year: must not be negative, got %d", i, lump.Year))
		case lump.Year > 0 && (lump.Month < 1 || lump.Month > constants.MonthsPerYear):
			problems = append(problems, fmt.Sprintf("lumpSums[%d].month: must be between 1 and 12, got %d", i, lump.Month))
		}
	}

	for i, change := range p.RateChanges {
		if _, err := calendar.ParseDate(change.EffectiveDate); err != nil {
			problems = append(problems, fmt.Sprintf("rateChanges[%d].effectiveDate: %v", i, err))
		}
	}

	for i, plan := range p.PrepaymentPlans {
		if plan.Amount < 0 {
			problems = append(problems, fmt.Sprintf("prepaymentPlans[%d].amount: must not be negative, got %.2f", i, plan.Amount))
		}
		if plan.Frequency < 1 {
			problems = append(problems, fmt.Sprintf("prepaymentPlans[%d].frequency: must be at least 1 month, got %d", i, plan.Frequency))
		}
		start, err := calendar.ParseDate(plan.StartDate)
		if err != nil {
			problems = append(problems, fmt.Sprintf("prepaymentPlans[%d].startDate: %v", i, err))
		}
		end, err := calendar.ParseDate(plan.EndDate)
		if err != nil {
			problems = append(problems, fmt.Sprintf("prepaymentPlans[%d].endDate: %v", i, err))
		} else if !start.IsZero() && end.Before(start) {
			problems = append(problems, fmt.Sprintf("prepaymentPlans[%d].endDate: must not be before startDate", i))
		}
	}

	return problems
}
