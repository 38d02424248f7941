package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

var (
	weeksPerYear   = decimal.NewFromInt(52)
	monthsPerYear  = decimal.NewFromInt(12)
	payPeriodsBiWk = decimal.NewFromInt(26)
	fullTimeHours  = decimal.NewFromInt(40)

	// DefaultOvertimeMultiplier applies when the input multiplier is
	// absent or not positive.
	DefaultOvertimeMultiplier = decimal.NewFromFloat(1.5)
)

// Engine computes income and expense results against a fixed set of tax
// tables. All methods are pure: the same input always yields the same
// result, and nothing on the engine is mutated after construction.
type Engine struct {
	Tables *TaxTables
}

// NewEngine creates an engine over the default tax tables.
func NewEngine() *Engine {
	return &Engine{Tables: NewTaxTables2025()}
}

// NewEngineWithTables creates an engine over custom tax tables.
func NewEngineWithTables(tables *TaxTables) *Engine {
	return &Engine{Tables: tables}
}

// ComputeIncome derives annual gross from the income inputs, applies the
// federal/state/FICA tax model, and breaks gross and net down across the
// five supported pay periods.
func (e *Engine) ComputeIncome(input domain.IncomeInput) domain.IncomeResult {
	gross, totalHours := annualGross(input)

	deduction := e.Tables.StandardDeduction(input.FilingStatus)
	taxable := gross.Sub(deduction)
	if taxable.IsNegative() {
		taxable = decimal.Zero
	}

	federal := e.FederalTax(taxable, input.FilingStatus)
	socialSecurity := e.socialSecurityTax(gross)
	medicare := gross.Mul(e.Tables.MedicareRate)
	state := gross.Mul(e.Tables.StateRate(input.State)).Div(decimal.NewFromInt(100))

	total := federal.Add(state).Add(socialSecurity).Add(medicare)

	netAnnual := gross.Sub(total)
	if netAnnual.IsNegative() {
		netAnnual = decimal.Zero
	}

	effectiveRate := decimal.Zero
	if gross.IsPositive() {
		effectiveRate = total.Div(gross)
	}

	return domain.IncomeResult{
		Gross: periodBreakdown(gross, totalHours),
		Net:   periodBreakdown(netAnnual, totalHours),
		Taxes: domain.TaxBreakdown{
			Federal:        federal,
			State:          state,
			SocialSecurity: socialSecurity,
			Medicare:       medicare,
			Total:          total,
		},
		EffectiveTaxRate: effectiveRate,
		TotalAnnualHours: totalHours,
	}
}

// annualGross resolves the income mode into annual gross pay and the total
// annual hours backing the hourly-equivalent figures.
func annualGross(input domain.IncomeInput) (gross, totalHours decimal.Decimal) {
	if input.Mode == domain.IncomeModeHourly {
		multiplier := input.OvertimeMultiplier
		if multiplier.LessThanOrEqual(decimal.Zero) {
			multiplier = DefaultOvertimeMultiplier
		}
		regular := input.HourlyWage.Mul(input.HoursPerWeek).Mul(weeksPerYear)
		overtime := input.HourlyWage.Mul(multiplier).Mul(input.OvertimeHours).Mul(weeksPerYear)
		hours := input.HoursPerWeek.Add(input.OvertimeHours.Mul(multiplier)).Mul(weeksPerYear)
		return regular.Add(overtime), hours
	}
	// Salary mode assumes a 40-hour week for the hourly-equivalent
	// breakdown only; gross is the stated salary.
	return input.AnnualSalary, fullTimeHours.Mul(weeksPerYear)
}

// socialSecurityTax applies the flat rate up to the wage base; income
// above the base is not taxed for this component.
func (e *Engine) socialSecurityTax(gross decimal.Decimal) decimal.Decimal {
	taxed := decimal.Min(gross, e.Tables.SocialSecurityWageBase)
	return taxed.Mul(e.Tables.SocialSecurityRate)
}

// periodBreakdown divides an annual amount across the supported pay
// periods. The hourly figure is zero when total hours is zero.
func periodBreakdown(annual, totalHours decimal.Decimal) domain.PeriodBreakdown {
	hourly := decimal.Zero
	if totalHours.IsPositive() {
		hourly = annual.Div(totalHours)
	}
	return domain.PeriodBreakdown{
		Annual:   annual,
		Monthly:  annual.Div(monthsPerYear),
		BiWeekly: annual.Div(payPeriodsBiWk),
		Weekly:   annual.Div(weeksPerYear),
		Hourly:   hourly,
	}
}
