// Package output renders a computed paycheck report in the supported
// formats: console, json, and csv.
package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
	"github.com/RichNSD/Payroll-Calculator/internal/money"
)

// Report bundles everything one calculation produced.
type Report struct {
	Income   domain.IncomeResult
	Expenses domain.ExpenseResult

	// DisposableMonthly is net monthly income minus the expense grand
	// total. It may be negative.
	DisposableMonthly decimal.Decimal
}

// NewReport derives the combined report from engine results.
func NewReport(income domain.IncomeResult, expenses domain.ExpenseResult) *Report {
	return &Report{
		Income:            income,
		Expenses:          expenses,
		DisposableMonthly: income.Net.Monthly.Sub(expenses.Grand),
	}
}

// Generate renders the report in the named format.
func Generate(r *Report, format string) ([]byte, error) {
	switch format {
	case "console":
		return []byte(r.consoleReport()), nil
	case "json":
		return r.jsonReport()
	case "csv":
		return r.csvReport()
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}

func (r *Report) consoleReport() string {
	var sb strings.Builder

	sb.WriteString("PAYCHECK BREAKDOWN\n")
	sb.WriteString(strings.Repeat("=", 60) + "\n")
	sb.WriteString(fmt.Sprintf("%-12s %15s %15s\n", "Period", "Gross", "Net"))
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	for _, row := range []struct {
		name       string
		gross, net decimal.Decimal
	}{
		{"Annual", r.Income.Gross.Annual, r.Income.Net.Annual},
		{"Monthly", r.Income.Gross.Monthly, r.Income.Net.Monthly},
		{"Bi-Weekly", r.Income.Gross.BiWeekly, r.Income.Net.BiWeekly},
		{"Weekly", r.Income.Gross.Weekly, r.Income.Net.Weekly},
		{"Hourly", r.Income.Gross.Hourly, r.Income.Net.Hourly},
	} {
		sb.WriteString(fmt.Sprintf("%-12s %15s %15s\n",
			row.name, money.FormatCurrency(row.gross), money.FormatCurrency(row.net)))
	}
	sb.WriteString("\n")

	sb.WriteString("ANNUAL TAXES\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Federal:          %15s\n", money.FormatCurrency(r.Income.Taxes.Federal)))
	sb.WriteString(fmt.Sprintf("State:            %15s\n", money.FormatCurrency(r.Income.Taxes.State)))
	sb.WriteString(fmt.Sprintf("Social Security:  %15s\n", money.FormatCurrency(r.Income.Taxes.SocialSecurity)))
	sb.WriteString(fmt.Sprintf("Medicare:         %15s\n", money.FormatCurrency(r.Income.Taxes.Medicare)))
	sb.WriteString(fmt.Sprintf("Total:            %15s\n", money.FormatCurrency(r.Income.Taxes.Total)))
	sb.WriteString(fmt.Sprintf("Effective Rate:   %15s\n", money.FormatPercent(r.Income.EffectiveTaxRate)))
	sb.WriteString("\n")

	sb.WriteString("MONTHLY EXPENSES\n")
	sb.WriteString(strings.Repeat("-", 60) + "\n")
	sb.WriteString(fmt.Sprintf("Housing:          %15s\n", money.FormatCurrency(r.Expenses.Housing)))
	sb.WriteString(fmt.Sprintf("Utilities:        %15s\n", money.FormatCurrency(r.Expenses.Utilities)))
	sb.WriteString(fmt.Sprintf("Travel:           %15s\n", money.FormatCurrency(r.Expenses.Travel)))
	sb.WriteString(fmt.Sprintf("Food:             %15s\n", money.FormatCurrency(r.Expenses.Food)))
	sb.WriteString(fmt.Sprintf("Additional:       %15s\n", money.FormatCurrency(r.Expenses.Additional)))
	sb.WriteString(fmt.Sprintf("Total:            %15s\n", money.FormatCurrency(r.Expenses.Grand)))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("MONTHLY DISPOSABLE INCOME: %s\n", money.FormatCurrency(r.DisposableMonthly)))
	return sb.String()
}

// jsonPeriods mirrors PeriodBreakdown with fixed two-decimal strings.
type jsonPeriods struct {
	Annual   string `json:"annual"`
	Monthly  string `json:"monthly"`
	BiWeekly string `json:"biweekly"`
	Weekly   string `json:"weekly"`
	Hourly   string `json:"hourly"`
}

func periodsJSON(p domain.PeriodBreakdown) jsonPeriods {
	return jsonPeriods{
		Annual:   p.Annual.StringFixed(2),
		Monthly:  p.Monthly.StringFixed(2),
		BiWeekly: p.BiWeekly.StringFixed(2),
		Weekly:   p.Weekly.StringFixed(2),
		Hourly:   p.Hourly.StringFixed(2),
	}
}

func (r *Report) jsonReport() ([]byte, error) {
	doc := struct {
		Gross             jsonPeriods       `json:"gross"`
		Net               jsonPeriods       `json:"net"`
		Taxes             map[string]string `json:"taxes"`
		EffectiveTaxRate  string            `json:"effective_tax_rate"`
		Expenses          map[string]string `json:"expenses"`
		DisposableMonthly string            `json:"disposable_monthly"`
	}{
		Gross: periodsJSON(r.Income.Gross),
		Net:   periodsJSON(r.Income.Net),
		Taxes: map[string]string{
			"federal":         r.Income.Taxes.Federal.StringFixed(2),
			"state":           r.Income.Taxes.State.StringFixed(2),
			"social_security": r.Income.Taxes.SocialSecurity.StringFixed(2),
			"medicare":        r.Income.Taxes.Medicare.StringFixed(2),
			"total":           r.Income.Taxes.Total.StringFixed(2),
		},
		EffectiveTaxRate: r.Income.EffectiveTaxRate.StringFixed(4),
		Expenses: map[string]string{
			"housing":          r.Expenses.Housing.StringFixed(2),
			"utilities":        r.Expenses.Utilities.StringFixed(2),
			"vehicle":          r.Expenses.Vehicle.StringFixed(2),
			"public_transport": r.Expenses.PublicTransport.StringFixed(2),
			"ride_share":       r.Expenses.RideShare.StringFixed(2),
			"misc_travel":      r.Expenses.MiscTravel.StringFixed(2),
			"travel":           r.Expenses.Travel.StringFixed(2),
			"food":             r.Expenses.Food.StringFixed(2),
			"additional":       r.Expenses.Additional.StringFixed(2),
			"total":            r.Expenses.Grand.StringFixed(2),
		},
		DisposableMonthly: r.DisposableMonthly.StringFixed(2),
	}
	return json.MarshalIndent(doc, "", "  ")
}

func (r *Report) csvReport() ([]byte, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	rows := [][]string{
		{"metric", "amount"},
		{"gross_annual", r.Income.Gross.Annual.StringFixed(2)},
		{"gross_monthly", r.Income.Gross.Monthly.StringFixed(2)},
		{"gross_biweekly", r.Income.Gross.BiWeekly.StringFixed(2)},
		{"gross_weekly", r.Income.Gross.Weekly.StringFixed(2)},
		{"gross_hourly", r.Income.Gross.Hourly.StringFixed(2)},
		{"net_annual", r.Income.Net.Annual.StringFixed(2)},
		{"net_monthly", r.Income.Net.Monthly.StringFixed(2)},
		{"net_biweekly", r.Income.Net.BiWeekly.StringFixed(2)},
		{"net_weekly", r.Income.Net.Weekly.StringFixed(2)},
		{"net_hourly", r.Income.Net.Hourly.StringFixed(2)},
		{"tax_federal", r.Income.Taxes.Federal.StringFixed(2)},
		{"tax_state", r.Income.Taxes.State.StringFixed(2)},
		{"tax_social_security", r.Income.Taxes.SocialSecurity.StringFixed(2)},
		{"tax_medicare", r.Income.Taxes.Medicare.StringFixed(2)},
		{"tax_total", r.Income.Taxes.Total.StringFixed(2)},
		{"effective_tax_rate", r.Income.EffectiveTaxRate.StringFixed(4)},
		{"expense_housing", r.Expenses.Housing.StringFixed(2)},
		{"expense_utilities", r.Expenses.Utilities.StringFixed(2)},
		{"expense_travel", r.Expenses.Travel.StringFixed(2)},
		{"expense_food", r.Expenses.Food.StringFixed(2)},
		{"expense_additional", r.Expenses.Additional.StringFixed(2)},
		{"expense_total", r.Expenses.Grand.StringFixed(2)},
		{"disposable_monthly", r.DisposableMonthly.StringFixed(2)},
	}
	if err := w.WriteAll(rows); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return []byte(sb.String()), nil
}
