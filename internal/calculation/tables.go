package calculation

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

// TAX MODEL ASSUMPTIONS:
//
// 1. Federal brackets: 2025 schedules for single, married filing jointly,
//    and head of household. No inflation indexing.
// 2. Standard deduction: $15,000 single / $30,000 MFJ / $22,500 HoH (2025).
// 3. State tax: single flat effective rate per state applied to full gross,
//    no state deduction. States without an income tax carry a 0% rate.
// 4. FICA: Social Security 6.2% up to the $176,100 wage base, Medicare
//    1.45% uncapped. No Additional Medicare surtax in this model.

// FederalSchedule is one filing status's progressive schedule. Thresholds
// are the upper bounds of each bracket in increasing order; Rates carries
// one more entry than Thresholds, the last rate applying to all income
// above the final threshold.
type FederalSchedule struct {
	Thresholds []decimal.Decimal
	Rates      []decimal.Decimal
}

// TaxTables is the immutable tax configuration the engine computes
// against. Built once at startup and never mutated.
type TaxTables struct {
	Year               int
	Federal            map[domain.FilingStatus]FederalSchedule
	StandardDeductions map[domain.FilingStatus]decimal.Decimal
	// StateRates maps state name to a flat percentage (0-100).
	StateRates map[string]decimal.Decimal

	SocialSecurityWageBase decimal.Decimal
	SocialSecurityRate     decimal.Decimal
	MedicareRate           decimal.Decimal
}

func bracketRates() []decimal.Decimal {
	return []decimal.Decimal{
		decimal.NewFromFloat(0.10),
		decimal.NewFromFloat(0.12),
		decimal.NewFromFloat(0.22),
		decimal.NewFromFloat(0.24),
		decimal.NewFromFloat(0.32),
		decimal.NewFromFloat(0.35),
		decimal.NewFromFloat(0.37),
	}
}

func thresholds(bounds ...int64) []decimal.Decimal {
	out := make([]decimal.Decimal, len(bounds))
	for i, b := range bounds {
		out[i] = decimal.NewFromInt(b)
	}
	return out
}

// NewTaxTables2025 builds the default 2025 tax tables.
func NewTaxTables2025() *TaxTables {
	return &TaxTables{
		Year: 2025,
		Federal: map[domain.FilingStatus]FederalSchedule{
			domain.FilingSingle: {
				Thresholds: thresholds(11925, 48475, 103350, 197300, 250525, 626350),
				Rates:      bracketRates(),
			},
			domain.FilingMarried: {
				Thresholds: thresholds(23850, 96950, 206700, 394600, 501050, 751600),
				Rates:      bracketRates(),
			},
			domain.FilingHeadOfHousehold: {
				Thresholds: thresholds(17000, 64850, 103350, 197300, 250525, 626350),
				Rates:      bracketRates(),
			},
		},
		StandardDeductions: map[domain.FilingStatus]decimal.Decimal{
			domain.FilingSingle:          decimal.NewFromInt(15000),
			domain.FilingMarried:         decimal.NewFromInt(30000),
			domain.FilingHeadOfHousehold: decimal.NewFromInt(22500),
		},
		StateRates:             defaultStateRates(),
		SocialSecurityWageBase: decimal.NewFromInt(176100),
		SocialSecurityRate:     decimal.NewFromFloat(0.062),
		MedicareRate:           decimal.NewFromFloat(0.0145),
	}
}

// Schedule returns the federal schedule for a filing status, falling back
// to single for unknown statuses.
func (tt *TaxTables) Schedule(status domain.FilingStatus) FederalSchedule {
	if s, ok := tt.Federal[status]; ok {
		return s
	}
	return tt.Federal[domain.FilingSingle]
}

// StandardDeduction returns the deduction for a filing status, falling
// back to single for unknown statuses.
func (tt *TaxTables) StandardDeduction(status domain.FilingStatus) decimal.Decimal {
	if d, ok := tt.StandardDeductions[status]; ok {
		return d
	}
	return tt.StandardDeductions[domain.FilingSingle]
}

// StateRate returns the flat percentage for a state, zero for unknown
// state names.
func (tt *TaxTables) StateRate(state string) decimal.Decimal {
	if r, ok := tt.StateRates[state]; ok {
		return r
	}
	return decimal.Zero
}

// StateNames returns every known state name in alphabetical order.
func (tt *TaxTables) StateNames() []string {
	names := make([]string, 0, len(tt.StateRates))
	for name := range tt.StateRates {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultStateRates covers the 50 US states with a single flat effective
// rate each, expressed as a percentage. No-income-tax states are zero.
func defaultStateRates() map[string]decimal.Decimal {
	pct := func(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
	return map[string]decimal.Decimal{
		"Alabama":        pct(5.00),
		"Alaska":         pct(0),
		"Arizona":        pct(2.50),
		"Arkansas":       pct(4.40),
		"California":     pct(9.30),
		"Colorado":       pct(4.40),
		"Connecticut":    pct(5.50),
		"Delaware":       pct(5.55),
		"Florida":        pct(0),
		"Georgia":        pct(5.39),
		"Hawaii":         pct(8.25),
		"Idaho":          pct(5.80),
		"Illinois":       pct(4.95),
		"Indiana":        pct(3.05),
		"Iowa":           pct(5.70),
		"Kansas":         pct(5.58),
		"Kentucky":       pct(4.00),
		"Louisiana":      pct(4.25),
		"Maine":          pct(7.15),
		"Maryland":       pct(4.75),
		"Massachusetts":  pct(5.00),
		"Michigan":       pct(4.25),
		"Minnesota":      pct(6.80),
		"Mississippi":    pct(4.70),
		"Missouri":       pct(4.80),
		"Montana":        pct(5.90),
		"Nebraska":       pct(5.84),
		"Nevada":         pct(0),
		"New Hampshire":  pct(0),
		"New Jersey":     pct(5.53),
		"New Mexico":     pct(4.90),
		"New York":       pct(6.00),
		"North Carolina": pct(4.50),
		"North Dakota":   pct(1.95),
		"Ohio":           pct(3.50),
		"Oklahoma":       pct(4.75),
		"Oregon":         pct(8.75),
		"Pennsylvania":   pct(3.07),
		"Rhode Island":   pct(4.75),
		"South Carolina": pct(6.20),
		"South Dakota":   pct(0),
		"Tennessee":      pct(0),
		"Texas":          pct(0),
		"Utah":           pct(4.65),
		"Vermont":        pct(6.60),
		"Virginia":       pct(5.75),
		"Washington":     pct(0),
		"West Virginia":  pct(5.12),
		"Wisconsin":      pct(5.30),
		"Wyoming":        pct(0),
	}
}
