package domain

import "github.com/shopspring/decimal"

// FilingStatus selects the federal bracket schedule and standard deduction.
type FilingStatus string

const (
	FilingSingle          FilingStatus = "single"
	FilingMarried         FilingStatus = "married"
	FilingHeadOfHousehold FilingStatus = "head_of_household"
)

// IsValid reports whether the filing status is one of the known values.
func (fs FilingStatus) IsValid() bool {
	switch fs {
	case FilingSingle, FilingMarried, FilingHeadOfHousehold:
		return true
	}
	return false
}

// IncomeMode selects how annual gross income is derived.
type IncomeMode string

const (
	IncomeModeSalary IncomeMode = "salary"
	IncomeModeHourly IncomeMode = "hourly"
)

// IncomeInput holds the raw income parameters for one calculation.
// It is rebuilt from current field values on every recalculation; the
// engine never mutates it.
type IncomeInput struct {
	Mode IncomeMode

	// Salary mode
	AnnualSalary decimal.Decimal

	// Hourly mode
	HourlyWage         decimal.Decimal
	HoursPerWeek       decimal.Decimal
	OvertimeHours      decimal.Decimal
	OvertimeMultiplier decimal.Decimal // defaults to 1.5 when not positive

	State        string
	FilingStatus FilingStatus
}

// PeriodBreakdown holds one amount at each supported pay-period granularity.
type PeriodBreakdown struct {
	Annual   decimal.Decimal
	Monthly  decimal.Decimal
	BiWeekly decimal.Decimal
	Weekly   decimal.Decimal
	Hourly   decimal.Decimal
}

// TaxBreakdown holds the annual amount of each tax component.
type TaxBreakdown struct {
	Federal        decimal.Decimal
	State          decimal.Decimal
	SocialSecurity decimal.Decimal
	Medicare       decimal.Decimal
	Total          decimal.Decimal
}

// IncomeResult is the derived output of the income engine. Immutable once
// computed; recomputed from scratch on every input change.
type IncomeResult struct {
	Gross PeriodBreakdown
	Net   PeriodBreakdown
	Taxes TaxBreakdown

	// EffectiveTaxRate is total tax over gross annual income as a
	// fraction, zero when gross is zero.
	EffectiveTaxRate decimal.Decimal

	// TotalAnnualHours backs the hourly-equivalent breakdown.
	TotalAnnualHours decimal.Decimal
}
