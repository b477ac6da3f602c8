// Package constants provides shared constants for the mortgage-planner engine.
package constants

// DateLayout is the ISO-8601 calendar date format expected in plan files and
// is also the output date format.
const DateLayout = "2006-01-02"

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// CurrencyEpsilon is the balance at or below which a loan counts as retired
	CurrencyEpsilon = 0.01

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0
)

// Simulation bounds
const (
	// MaxSchedulePeriods caps every simulation at 100 years of monthly
	// payments; reaching it means the inputs cannot amortize.
	MaxSchedulePeriods = 1200

	// NonAmortizingYears is the sentinel term returned when a payment does
	// not cover the first period's interest.
	NonAmortizingYears = 999

	// MaxFixedPaymentDay is the highest day-of-month that exists in every
	// month; preferred payment days above it are clamped per month.
	MaxFixedPaymentDay = 28
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"
)

// DefaultPlanFile is the default plan file name
const DefaultPlanFile = "plan.yaml"
