package amortization

import "errors"

var (
	// ErrPaymentTooLow reports a monthly payment that does not cover the
	// first period's interest, so the loan never amortizes.
	ErrPaymentTooLow = errors.New("amortization: payment does not cover interest")

	// ErrScheduleCapExceeded reports a schedule that failed to retire the
	// balance within the 1200-period safety cap. This should not occur for
	// valid amortizing inputs.
	ErrScheduleCapExceeded = errors.New("amortization: schedule exceeded the 1200-period safety cap")
)
