// Package calendar maps calendar dates onto 1-based payment periods.
//
// All dates are zone-less calendar dates pinned to midnight UTC so that no
// time-zone arithmetic can influence period resolution.
package calendar

import (
	"errors"
	"fmt"
	"time"

	"github.com/pwalczyk/mortgage-planner/pkg/constants"
)

// DateLayout is the ISO-8601 format expected in plan files and is also the
// output date format.
const DateLayout = constants.DateLayout

// ErrCapExceeded reports that a date could not be resolved to a payment
// number within the 1200-period safety cap; the inputs are malformed.
var ErrCapExceeded = errors.New("calendar: payment period cap exceeded while resolving date")

// ParseDate parses an ISO-8601 calendar date pinned to midnight UTC.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, want format %s: %w", s, DateLayout, err)
	}
	return t, nil
}

// MustParseDate is like ParseDate but panics on error. This is intended for
// use in tests where the date string is known to be valid.
func MustParseDate(s string) time.Time {
	t, err := ParseDate(s)
	if err != nil {
		panic(err)
	}
	return t
}

// FormatDate renders a date in the standard output format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DaysInMonth returns the number of days in the given month.
func DaysInMonth(year int, month time.Month) int {
	// Day zero of the following month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddMonths advances a date by the given number of months, clamping the day
// to the target month's length instead of letting it spill over (January 31
// plus one month is the last day of February, not March 2 or 3).
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	anchor := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, time.UTC)
	year, month, _ = anchor.Date()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// DueDay resolves the payment day for one specific month. A preferred day
// above 28 overrides the fixed day and is clamped to the month's last day,
// so a preference of 31 resolves to 28 or 29 in February and 30 in April.
func DueDay(year int, month time.Month, paymentDay, preferredDay int) int {
	day := paymentDay
	if preferredDay > constants.MaxFixedPaymentDay {
		day = preferredDay
		if last := DaysInMonth(year, month); day > last {
			day = last
		}
	}
	return day
}

func dueDateIn(year int, month time.Month, paymentDay, preferredDay int) time.Time {
	return time.Date(year, month, DueDay(year, month, paymentDay, preferredDay), 0, 0, 0, 0, time.UTC)
}

// PaymentNumberForDate converts a calendar date into the 1-based payment
// period it falls in. Targets at or before the start date resolve to the
// first payment; otherwise the function walks forward one payment period at
// a time and returns the index of the first due date at or after the target.
func PaymentNumberForDate(startDate, targetDate time.Time, paymentDay, preferredDay int) (int, error) {
	if !targetDate.After(startDate) {
		return 1, nil
	}
	year, month, _ := startDate.Date()
	due := dueDateIn(year, month, paymentDay, preferredDay)
	if due.Before(startDate) {
		year, month = nextMonth(year, month)
		due = dueDateIn(year, month, paymentDay, preferredDay)
	}
	for number := 1; number <= constants.MaxSchedulePeriods; number++ {
		if !due.Before(targetDate) {
			return number, nil
		}
		year, month = nextMonth(year, month)
		due = dueDateIn(year, month, paymentDay, preferredDay)
	}
	return 0, ErrCapExceeded
}

// PaymentDueDate returns the due date of the given 1-based payment number.
// The first payment is due on the first occurrence of the resolved payment
// day on or after the start date; later payments fall monthly thereafter.
func PaymentDueDate(startDate time.Time, paymentNumber, paymentDay, preferredDay int) time.Time {
	year, month, _ := startDate.Date()
	due := dueDateIn(year, month, paymentDay, preferredDay)
	if due.Before(startDate) {
		year, month = nextMonth(year, month)
		due = dueDateIn(year, month, paymentDay, preferredDay)
	}
	for number := 1; number < paymentNumber; number++ {
		year, month = nextMonth(year, month)
		due = dueDateIn(year, month, paymentDay, preferredDay)
	}
	return due
}

func nextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}
