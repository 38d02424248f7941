package integration

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/RichNSD/Payroll-Calculator/internal/calculation"
	"github.com/RichNSD/Payroll-Calculator/internal/config"
	"github.com/RichNSD/Payroll-Calculator/internal/domain"
	"github.com/RichNSD/Payroll-Calculator/internal/form"
	"github.com/RichNSD/Payroll-Calculator/internal/output"
	"github.com/RichNSD/Payroll-Calculator/internal/store"
)

const texasScenario = `
theme: dark
income:
  mode: salary
  annual_salary: "100,000"
  state: Texas
  filing_status: single
expenses:
  housing: "1,500"
  utilities: "225"
  food: "450"
  custom:
    housing:
      - label: HOA
        value: "75"
`

func writeScenarioFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scenario.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// TestScenarioEndToEnd walks the full pipeline: YAML scenario, form
// binding, both engine computations, and report generation.
func TestScenarioEndToEnd(t *testing.T) {
	parser := config.NewInputParser()
	scenario, err := parser.LoadFromFile(writeScenarioFile(t, texasScenario))
	require.NoError(t, err, "should load scenario successfully")

	f := form.New()
	scenario.Apply(f)

	engine := calculation.NewEngine()
	income := engine.ComputeIncome(f.IncomeInput())
	expenses := engine.ComputeExpenses(f.ExpenseInput())

	// $100k single filer in a no-income-tax state.
	assert.True(t, income.Taxes.Federal.Equal(decimal.NewFromInt(13614)),
		"federal = %v", income.Taxes.Federal)
	assert.True(t, income.Taxes.State.IsZero(), "state = %v", income.Taxes.State)
	assert.True(t, income.Taxes.SocialSecurity.Equal(decimal.NewFromInt(6200)),
		"social security = %v", income.Taxes.SocialSecurity)
	assert.True(t, income.Taxes.Medicare.Equal(decimal.NewFromInt(1450)),
		"medicare = %v", income.Taxes.Medicare)
	assert.True(t, income.Taxes.Total.Equal(decimal.NewFromInt(21264)),
		"total tax = %v", income.Taxes.Total)
	assert.Equal(t, "6561.33", income.Net.Monthly.StringFixed(2))
	assert.Equal(t, "3028.31", income.Net.BiWeekly.StringFixed(2))
	assert.Equal(t, "1514.15", income.Net.Weekly.StringFixed(2))

	// Housing 1500 + HOA 75, utilities 225, food 450.
	assert.True(t, expenses.Housing.Equal(decimal.NewFromInt(1575)),
		"housing = %v", expenses.Housing)
	assert.True(t, expenses.Grand.Equal(decimal.NewFromInt(2250)),
		"grand = %v", expenses.Grand)

	report := output.NewReport(income, expenses)
	for _, format := range []string{"console", "json", "csv"} {
		out, err := output.Generate(report, format)
		require.NoError(t, err, "format %s", format)
		assert.NotEmpty(t, out, "format %s", format)
	}
}

// TestPersistenceRoundTrip saves a populated form through the store,
// reopens the store cold, restores into a fresh form, and checks that the
// recomputed results are identical.
func TestPersistenceRoundTrip(t *testing.T) {
	dir := t.TempDir()

	first := form.New()
	first.SetTheme(domain.ThemeDark)
	first.SetText(form.FieldIncomeMode, string(domain.IncomeModeHourly))
	first.SetText(form.FieldHourlyWage, "20")
	first.SetText(form.FieldHoursPerWeek, "40")
	first.SetText(form.FieldOvertimeHours, "5")
	first.SetText(form.FieldState, "Pennsylvania")
	first.SetText(form.FieldHousingCost, "1,200")
	first.SetBool(form.FieldVehicleEnabled, true)
	first.SetText(form.FieldVehiclePayment, "350")
	first.AddCustomItem(domain.CategoryVehicle, domain.CustomItem{Label: "Parking", Value: "120"})

	s, err := store.Open(dir)
	require.NoError(t, err)
	require.NoError(t, s.Save(first.Serialize()))
	require.NoError(t, s.Close())

	reopened, err := store.Open(dir)
	require.NoError(t, err)
	defer reopened.Close()

	state, err := reopened.Load()
	require.NoError(t, err)
	require.NotNil(t, state, "saved state must survive a cold reopen")

	second := form.New()
	second.Restore(state)

	assert.Equal(t, domain.ThemeDark, second.Theme())

	engine := calculation.NewEngine()
	assert.Equal(t,
		engine.ComputeIncome(first.IncomeInput()),
		engine.ComputeIncome(second.IncomeInput()),
		"income results must match after restore")
	assert.Equal(t,
		engine.ComputeExpenses(first.ExpenseInput()),
		engine.ComputeExpenses(second.ExpenseInput()),
		"expense results must match after restore")
}

// TestClearResetsToDefaults mirrors the reset flow: clear wipes both
// persistence copies, and a restore of the now-absent state yields a
// default form.
func TestClearResetsToDefaults(t *testing.T) {
	dir := t.TempDir()

	s, err := store.Open(dir)
	require.NoError(t, err)
	defer s.Close()

	f := form.New()
	f.SetText(form.FieldAnnualSalary, "85,000")
	require.NoError(t, s.Save(f.Serialize()))
	require.NoError(t, s.Clear())

	state, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, state)

	f.Restore(state)
	assert.Empty(t, f.Text(form.FieldAnnualSalary))
	assert.Equal(t, "1.5", f.Text(form.FieldOvertimeMultiplier))
}
