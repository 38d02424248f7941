package config

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/RichNSD/Payroll-Calculator/internal/calculation"
	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

// TaxTablesConfig is an optional YAML override of the built-in tax
// tables. Any section left empty keeps the built-in values.
type TaxTablesConfig struct {
	Year               int                        `yaml:"year"`
	Federal            map[string]FederalSchedule `yaml:"federal"`
	StandardDeductions map[string]decimal.Decimal `yaml:"standard_deductions"`
	StateRates         map[string]decimal.Decimal `yaml:"state_rates"`

	SocialSecurityWageBase decimal.Decimal `yaml:"social_security_wage_base"`
	SocialSecurityRate     decimal.Decimal `yaml:"social_security_rate"`
	MedicareRate           decimal.Decimal `yaml:"medicare_rate"`
}

// FederalSchedule is one filing status's bracket override.
type FederalSchedule struct {
	Thresholds []decimal.Decimal `yaml:"thresholds"`
	Rates      []decimal.Decimal `yaml:"rates"`
}

// LoadTaxTables reads a tables override file and merges it over the 2025
// defaults.
func LoadTaxTables(filename string) (*calculation.TaxTables, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var cfg TaxTablesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	tables := calculation.NewTaxTables2025()
	if err := applyTablesConfig(tables, &cfg); err != nil {
		return nil, fmt.Errorf("tax tables validation failed: %w", err)
	}
	return tables, nil
}

func applyTablesConfig(tables *calculation.TaxTables, cfg *TaxTablesConfig) error {
	if cfg.Year != 0 {
		tables.Year = cfg.Year
	}
	for status, schedule := range cfg.Federal {
		fs := domain.FilingStatus(status)
		if !fs.IsValid() {
			return fmt.Errorf("unknown filing status: %s", status)
		}
		if err := validateSchedule(schedule); err != nil {
			return fmt.Errorf("schedule for %s: %w", status, err)
		}
		tables.Federal[fs] = calculation.FederalSchedule{
			Thresholds: schedule.Thresholds,
			Rates:      schedule.Rates,
		}
	}
	for status, ded := range cfg.StandardDeductions {
		fs := domain.FilingStatus(status)
		if !fs.IsValid() {
			return fmt.Errorf("unknown filing status: %s", status)
		}
		if ded.IsNegative() {
			return fmt.Errorf("standard deduction for %s cannot be negative", status)
		}
		tables.StandardDeductions[fs] = ded
	}
	for state, rate := range cfg.StateRates {
		if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(100)) {
			return fmt.Errorf("state rate for %s must be between 0 and 100", state)
		}
		tables.StateRates[state] = rate
	}
	if !cfg.SocialSecurityWageBase.IsZero() {
		tables.SocialSecurityWageBase = cfg.SocialSecurityWageBase
	}
	if !cfg.SocialSecurityRate.IsZero() {
		tables.SocialSecurityRate = cfg.SocialSecurityRate
	}
	if !cfg.MedicareRate.IsZero() {
		tables.MedicareRate = cfg.MedicareRate
	}
	return nil
}

// validateSchedule enforces the schedule invariants: one more rate than
// thresholds, thresholds strictly increasing.
func validateSchedule(s FederalSchedule) error {
	if len(s.Rates) != len(s.Thresholds)+1 {
		return fmt.Errorf("rates must have exactly one more entry than thresholds (got %d rates, %d thresholds)",
			len(s.Rates), len(s.Thresholds))
	}
	for i := 1; i < len(s.Thresholds); i++ {
		if !s.Thresholds[i].GreaterThan(s.Thresholds[i-1]) {
			return fmt.Errorf("thresholds must be strictly increasing")
		}
	}
	for _, r := range s.Rates {
		if r.IsNegative() {
			return fmt.Errorf("rates cannot be negative")
		}
	}
	return nil
}
