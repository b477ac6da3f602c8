package calendar

import (
	"errors"
	"testing"
	"time"
)

func TestPaymentNumberForDate(t *testing.T) {
	tests := []struct {
		name         string
		startDate    string
		targetDate   string
		paymentDay   int
		preferredDay int
		expected     int
	}{
		{
			name:       "Target equals start",
			startDate:  "2024-05-01",
			targetDate: "2024-05-01",
			paymentDay: 15,
			expected:   1,
		},
		{
			name:       "Target before start",
			startDate:  "2024-05-01",
			targetDate: "2024-04-01",
			paymentDay: 15,
			expected:   1,
		},
		{
			name:       "Target before first due date",
			startDate:  "2024-05-01",
			targetDate: "2024-05-10",
			paymentDay: 15,
			expected:   1,
		},
		{
			name:       "Target on first due date",
			startDate:  "2024-05-01",
			targetDate: "2024-05-15",
			paymentDay: 15,
			expected:   1,
		},
		{
			name:       "Target just past first due date",
			startDate:  "2024-05-01",
			targetDate: "2024-05-16",
			paymentDay: 15,
			expected:   2,
		},
		{
			name:       "Target on second due date",
			startDate:  "2024-05-01",
			targetDate: "2024-06-15",
			paymentDay: 15,
			expected:   2,
		},
		{
			name:       "Start after payment day shifts first due date",
			startDate:  "2024-05-20",
			targetDate: "2024-06-01",
			paymentDay: 15,
			expected:   1,
		},
		{
			name:       "Shifted first due date, second period",
			startDate:  "2024-05-20",
			targetDate: "2024-06-16",
			paymentDay: 15,
			expected:   2,
		},
		{
			name:         "Preferred day 31 clamps to leap February",
			startDate:    "2024-01-05",
			targetDate:   "2024-02-29",
			paymentDay:   15,
			preferredDay: 31,
			expected:     2,
		},
		{
			name:         "Preferred day 31 clamps to non-leap February",
			startDate:    "2023-01-05",
			targetDate:   "2023-02-28",
			paymentDay:   15,
			preferredDay: 31,
			expected:     2,
		},
		{
			name:         "Preferred day 31 clamps to 30-day April",
			startDate:    "2024-01-05",
			targetDate:   "2024-04-30",
			paymentDay:   15,
			preferredDay: 31,
			expected:     4,
		},
		{
			name:         "Preferred day ignores fixed payment day",
			startDate:    "2024-01-05",
			targetDate:   "2024-03-01",
			paymentDay:   15,
			preferredDay: 31,
			expected:     3,
		},
		{
			name:       "Year boundary",
			startDate:  "2024-11-01",
			targetDate: "2025-01-10",
			paymentDay: 15,
			expected:   3,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := PaymentNumberForDate(MustParseDate(tt.startDate), MustParseDate(tt.targetDate),
				tt.paymentDay, tt.preferredDay)
			if err != nil {
				t.Fatalf("PaymentNumberForDate() unexpected error: %v", err)
			}
			if result != tt.expected {
				t.Errorf("PaymentNumberForDate() = %d, expected %d", result, tt.expected)
			}
		})
	}
}

func TestPaymentNumberForDateCapExceeded(t *testing.T) {
	_, err := PaymentNumberForDate(MustParseDate("2024-01-01"), MustParseDate("2130-01-01"), 15, 0)
	if !errors.Is(err, ErrCapExceeded) {
		t.Errorf("PaymentNumberForDate() error = %v, expected ErrCapExceeded", err)
	}
}

func TestDaysInMonth(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		expected int
	}{
		{name: "Leap February", year: 2024, month: time.February, expected: 29},
		{name: "Non-leap February", year: 2023, month: time.February, expected: 28},
		{name: "Century leap year", year: 2000, month: time.February, expected: 29},
		{name: "Century non-leap year", year: 1900, month: time.February, expected: 28},
		{name: "April", year: 2024, month: time.April, expected: 30},
		{name: "January", year: 2024, month: time.January, expected: 31},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := DaysInMonth(tt.year, tt.month); result != tt.expected {
				t.Errorf("DaysInMonth(%d, %v) = %d, expected %d", tt.year, tt.month, result, tt.expected)
			}
		})
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		months   int
		expected string
	}{
		{name: "Plain month step", date: "2024-05-15", months: 3, expected: "2024-08-15"},
		{name: "Clamp January 31 to non-leap February", date: "2025-01-31", months: 1, expected: "2025-02-28"},
		{name: "Clamp January 31 to leap February", date: "2024-01-31", months: 1, expected: "2024-02-29"},
		{name: "Clamp March 31 to April 30", date: "2024-03-31", months: 1, expected: "2024-04-30"},
		{name: "Cross year boundary", date: "2024-11-15", months: 2, expected: "2025-01-15"},
		{name: "Negative offset", date: "2024-03-15", months: -1, expected: "2024-02-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := AddMonths(MustParseDate(tt.date), tt.months)
			if FormatDate(result) != tt.expected {
				t.Errorf("AddMonths(%s, %d) = %s, expected %s", tt.date, tt.months, FormatDate(result), tt.expected)
			}
		})
	}
}

func TestPaymentDueDate(t *testing.T) {
	tests := []struct {
		name          string
		startDate     string
		paymentNumber int
		paymentDay    int
		preferredDay  int
		expected      string
	}{
		{name: "First payment", startDate: "2024-05-01", paymentNumber: 1, paymentDay: 15, expected: "2024-05-15"},
		{name: "Third payment", startDate: "2024-05-01", paymentNumber: 3, paymentDay: 15, expected: "2024-07-15"},
		{name: "Start past payment day", startDate: "2024-05-20", paymentNumber: 1, paymentDay: 15, expected: "2024-06-15"},
		{name: "Preferred day clamps in February", startDate: "2024-01-05", paymentNumber: 2, paymentDay: 15, preferredDay: 31, expected: "2024-02-29"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := PaymentDueDate(MustParseDate(tt.startDate), tt.paymentNumber, tt.paymentDay, tt.preferredDay)
			if FormatDate(result) != tt.expected {
				t.Errorf("PaymentDueDate() = %s, expected %s", FormatDate(result), tt.expected)
			}
		})
	}
}

// Every due date must resolve back to its own payment number.
func TestPaymentDueDateRoundTrip(t *testing.T) {
	start := MustParseDate("2024-01-05")
	for number := 1; number <= 36; number++ {
		due := PaymentDueDate(start, number, 15, 31)
		resolved, err := PaymentNumberForDate(start, due, 15, 31)
		if err != nil {
			t.Fatalf("PaymentNumberForDate() unexpected error: %v", err)
		}
		if resolved != number {
			t.Errorf("round trip for payment %d resolved to %d (due %s)", number, resolved, FormatDate(due))
		}
	}
}
