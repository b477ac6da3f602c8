package format

import "testing"

func TestCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "Thousands separators", amount: 1234.56, expected: "$1,234.56"},
		{name: "Negative amount", amount: -1234.56, expected: "-$1,234.56"},
		{name: "Small amount", amount: 5.25, expected: "$5.25"},
		{name: "Zero", amount: 0, expected: "$0.00"},
		{name: "Millions", amount: 1234567.89, expected: "$1,234,567.89"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := Currency(tt.amount); result != tt.expected {
				t.Errorf("Currency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}

func TestNumericCurrency(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected string
	}{
		{name: "Positive", amount: 1234.56, expected: "1,234.56"},
		{name: "Negative", amount: -1234.56, expected: "-1,234.56"},
		{name: "Zero", amount: 0, expected: "0.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := NumericCurrency(tt.amount); result != tt.expected {
				t.Errorf("NumericCurrency(%v) = %q, expected %q", tt.amount, result, tt.expected)
			}
		})
	}
}
