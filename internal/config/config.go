// Package config defines the data structures of a payoff plan file and
// includes functions for loading, validating, and converting the plan into
// engine inputs.
package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Plan holds all configuration for one mortgage payoff calculation.
type Plan struct {
	Loan            Loan
	LumpSums        []LumpSum
	RateChanges     []RateChange
	PrepaymentPlans []PrepaymentPlan
	Logging         LoggingConfig `yaml:"logging,omitempty"`
	Output          OutputConfig  `yaml:"output,omitempty"`
}

// Loan indicates the mortgage and its parameters.
type Loan struct {
	Principal           float64
	AnnualRate          float64 // decimal fraction, e.g. 0.0404
	MonthlyPayment      float64
	ExtraMonthlyPayment float64
	StartDate           string // ISO-8601 date
	PaymentDayOfMonth   int    // 1-28
	PreferredPaymentDay int    // optional 29-31, clamped to each month's last day
}

// LumpSum is a one-time extra principal payment. Date takes precedence; the
// year/month pair is the legacy trigger relative to the loan start.
type LumpSum struct {
	ID          string
	Amount      float64
	Date        string
	Year        int
	Month       int
	Description string
	Paid        bool
}

// RateChange shifts the annual rate from its effective date onward, in
// percentage points, additively with earlier changes.
type RateChange struct {
	ID            string
	EffectiveDate string
	DeltaPercent  float64
	Description   string
}

// PrepaymentPlan is a recurring prepayment series that expands into
// individual lump sums on a fixed cadence before the engine runs.
type PrepaymentPlan struct {
	Description string
	Amount      float64
	StartDate   string
	EndDate     string
	Frequency   int // months
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// LoadPlan takes a file path as input and loads the YAML-formatted plan
// there.
func LoadPlan(path string) (*Plan, error) {
	viper.SetConfigFile(path)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading plan file, %s", err)
	}

	var plan Plan
	if err := viper.Unmarshal(&plan); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &plan, nil
}
