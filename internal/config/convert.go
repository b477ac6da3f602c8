package config

import (
	"fmt"

	"github.com/pwalczyk/mortgage-planner/internal/planner"
	"github.com/pwalczyk/mortgage-planner/pkg/amortization"
	"github.com/pwalczyk/mortgage-planner/pkg/calendar"
)

// Snapshot converts the plan into the engine's input snapshot. Recurring
// prepayment plans are expanded into individual lump sums here; the engine
// only ever sees discrete events.
func (p *Plan) Snapshot() (planner.Snapshot, error) {
	var snap planner.Snapshot

	startDate, err := calendar.ParseDate(p.Loan.StartDate)
	if err != nil {
		return snap, fmt.Errorf("loan.startDate: %w", err)
	}
	snap.Terms = amortization.LoanTerms{
		Principal:           p.Loan.Principal,
		BaseAnnualRate:      p.Loan.AnnualRate,
		MonthlyPayment:      p.Loan.MonthlyPayment,
		ExtraMonthlyPayment: p.Loan.ExtraMonthlyPayment,
		StartDate:           startDate,
		PaymentDayOfMonth:   p.Loan.PaymentDayOfMonth,
		PreferredPaymentDay: p.Loan.PreferredPaymentDay,
	}

	for i, lump := range p.LumpSums {
		event := amortization.LumpSumEvent{
			ID:          lump.ID,
			Amount:      lump.Amount,
			Year:        lump.Year,
			Month:       lump.Month,
			Description: lump.Description,
			Paid:        lump.Paid,
		}
		if event.ID == "" {
			event.ID = fmt.Sprintf("lump-%d", i+1)
		}
		if lump.Date != "" {
			event.PlannedDate, err = calendar.ParseDate(lump.Date)
			if err != nil {
				return snap, fmt.Errorf("lumpSums[%d].date: %w", i, err)
			}
		}
		snap.LumpSums = append(snap.LumpSums, event)
	}

	for i, plan := range p.PrepaymentPlans {
		expanded, err := plan.expand(i)
		if err != nil {
			return snap, err
		}
		snap.LumpSums = append(snap.LumpSums, expanded...)
	}

	for i, change := range p.RateChanges {
		adjustment := amortization.RateAdjustment{
			ID:               change.ID,
			RateDeltaPercent: change.DeltaPercent,
			Description:      change.Description,
		}
		if adjustment.ID == "" {
			adjustment.ID = fmt.Sprintf("rate-%d", i+1)
		}
		adjustment.EffectiveDate, err = calendar.ParseDate(change.EffectiveDate)
		if err != nil {
			return snap, fmt.Errorf("rateChanges[%d].effectiveDate: %w", i, err)
		}
		snap.RateAdjustments = append(snap.RateAdjustments, adjustment)
	}

	return snap, nil
}

// expand walks the plan's cadence from start to end date (inclusive) and
// emits one lump sum per occurrence.
func (p PrepaymentPlan) expand(index int) ([]amortization.LumpSumEvent, error) {
	start, err := calendar.ParseDate(p.StartDate)
	if err != nil {
		return nil, fmt.Errorf("prepaymentPlans[%d].startDate: %w", index, err)
	}
	end, err := calendar.ParseDate(p.EndDate)
	if err != nil {
		return nil, fmt.Errorf("prepaymentPlans[%d].endDate: %w", index, err)
	}

	// Each occurrence is offset from the start date rather than the previous
	// occurrence, so month-end clamping never compounds across the series.
	var events []amortization.LumpSumEvent
	for n := 0; ; n++ {
		date := calendar.AddMonths(start, n*p.Frequency)
		if date.After(end) {
			break
		}
		events = append(events, amortization.LumpSumEvent{
			ID:          fmt.Sprintf("plan-%d-%d", index+1, n+1),
			Amount:      p.Amount,
			PlannedDate: date,
			Description: p.Description,
		})
	}
	return events, nil
}
