package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

// FederalTax computes progressive federal income tax on taxable income for
// a filing status. Each bracket's marginal rate applies only to the slice
// of income inside that bracket; the final rate applies to everything
// above the last threshold. Returns zero when taxable income is zero or
// negative.
func (e *Engine) FederalTax(taxableIncome decimal.Decimal, status domain.FilingStatus) decimal.Decimal {
	if taxableIncome.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}

	schedule := e.Tables.Schedule(status)
	tax := decimal.Zero
	lower := decimal.Zero

	for i, upper := range schedule.Thresholds {
		if taxableIncome.GreaterThan(upper) {
			tax = tax.Add(upper.Sub(lower).Mul(schedule.Rates[i]))
			lower = upper
			continue
		}
		return tax.Add(taxableIncome.Sub(lower).Mul(schedule.Rates[i]))
	}

	// Top bracket is unbounded.
	topRate := schedule.Rates[len(schedule.Rates)-1]
	return tax.Add(taxableIncome.Sub(lower).Mul(topRate))
}
