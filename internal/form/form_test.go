package form

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

func TestDefaults(t *testing.T) {
	f := New()
	if f.Theme() != domain.ThemeLight {
		t.Errorf("default theme = %s, expected light", f.Theme())
	}
	if got := f.Text(FieldIncomeMode); got != string(domain.IncomeModeSalary) {
		t.Errorf("default income mode = %q", got)
	}
	if got := f.Text(FieldOvertimeMultiplier); got != "1.5" {
		t.Errorf("default overtime multiplier = %q", got)
	}
	if f.Bool(FieldVehicleEnabled) {
		t.Error("vehicle enabled by default")
	}
}

func TestUnknownIdentifiersIgnored(t *testing.T) {
	f := New()
	f.SetText("nonexistentField", "123")
	if got := f.Text("nonexistentField"); got != "" {
		t.Errorf("unknown field stored value %q", got)
	}
	f.SetBool("anotherUnknown", true)
	if f.Bool("anotherUnknown") {
		t.Error("unknown toggle stored value")
	}

	// Type mismatches are also no-ops.
	f.SetText(FieldVehicleEnabled, "yes")
	if got := f.Text(FieldVehicleEnabled); got != "" {
		t.Errorf("toggle field accepted text %q", got)
	}
	f.SetBool(FieldAnnualSalary, true)
	if f.Bool(FieldAnnualSalary) {
		t.Error("text field accepted bool")
	}
}

func populated() *Form {
	f := New()
	f.SetTheme(domain.ThemeDark)
	f.SetText(FieldIncomeMode, string(domain.IncomeModeHourly))
	f.SetText(FieldHourlyWage, "22.50")
	f.SetText(FieldHoursPerWeek, "38")
	f.SetText(FieldState, "Oregon")
	f.SetText(FieldFilingStatus, string(domain.FilingMarried))
	f.SetBool(FieldVehicleEnabled, true)
	f.SetText(FieldVehiclePayment, "410")
	f.AddCustomItem(domain.CategoryHousing, domain.CustomItem{Label: "HOA", Value: "75"})
	f.AddCustomItem(domain.CategoryHousing, domain.CustomItem{Label: "Storage", Value: "40"})
	f.AddCustomItem(domain.CategoryAdditional, domain.CustomItem{Label: "Gym", Value: "35"})
	return f
}

func TestSerializeRestoreRoundTrip(t *testing.T) {
	original := populated()
	state := original.Serialize()

	restored := New()
	restored.Restore(state)

	if restored.Theme() != domain.ThemeDark {
		t.Errorf("theme = %s, expected dark", restored.Theme())
	}
	for _, id := range FieldIDs {
		if IsToggle(id) {
			if restored.Bool(id) != original.Bool(id) {
				t.Errorf("toggle %s: got %v, expected %v", id, restored.Bool(id), original.Bool(id))
			}
		} else if restored.Text(id) != original.Text(id) {
			t.Errorf("field %s: got %q, expected %q", id, restored.Text(id), original.Text(id))
		}
	}

	housing := restored.CustomItems(domain.CategoryHousing)
	if len(housing) != 2 || housing[0].Label != "HOA" || housing[1].Label != "Storage" {
		t.Errorf("housing items order not preserved: %+v", housing)
	}
	if got := restored.CustomItems(domain.CategoryAdditional); len(got) != 1 || got[0].Value != "35" {
		t.Errorf("additional items = %+v", got)
	}
}

func TestRestoreIsFullRebuild(t *testing.T) {
	f := New()
	f.AddCustomItem(domain.CategoryUtilities, domain.CustomItem{Label: "Old", Value: "999"})
	f.SetText(FieldFoodCost, "before")

	state := domain.NewPersistedState()
	state.Inputs[FieldFoodCost] = domain.TextValue("450")
	state.Inputs["bogusField"] = domain.TextValue("ignored")
	state.Custom[domain.CategoryHousing] = []domain.CustomItem{{Label: "HOA", Value: "75"}}

	f.Restore(state)

	// Pre-existing rows are replaced, not merged.
	if got := f.CustomItems(domain.CategoryUtilities); got != nil {
		t.Errorf("utilities items survived restore: %+v", got)
	}
	if got := f.CustomItems(domain.CategoryHousing); len(got) != 1 {
		t.Errorf("housing items = %+v", got)
	}
	if got := f.Text(FieldFoodCost); got != "450" {
		t.Errorf("food = %q, expected 450", got)
	}
}

func TestRestoreNilYieldsDefaults(t *testing.T) {
	f := populated()
	f.Restore(nil)
	if f.Theme() != domain.ThemeLight {
		t.Errorf("theme = %s, expected light", f.Theme())
	}
	if got := f.Text(FieldHourlyWage); got != "" {
		t.Errorf("hourly wage = %q, expected empty", got)
	}
	if got := f.CustomItems(domain.CategoryHousing); got != nil {
		t.Errorf("custom items survived nil restore: %+v", got)
	}
}

func TestIncomeInputBinding(t *testing.T) {
	f := New()
	f.SetText(FieldIncomeMode, string(domain.IncomeModeHourly))
	f.SetText(FieldHourlyWage, "$22.50")
	f.SetText(FieldHoursPerWeek, "40")
	f.SetText(FieldOvertimeHours, "junk")
	f.SetText(FieldState, "Texas")
	f.SetText(FieldFilingStatus, "not-a-status")

	input := f.IncomeInput()
	if input.Mode != domain.IncomeModeHourly {
		t.Errorf("mode = %s", input.Mode)
	}
	if !input.HourlyWage.Equal(decimal.NewFromFloat(22.50)) {
		t.Errorf("wage = %v, expected 22.50", input.HourlyWage)
	}
	if !input.OvertimeHours.IsZero() {
		t.Errorf("junk overtime hours = %v, expected 0", input.OvertimeHours)
	}
	if input.FilingStatus != domain.FilingSingle {
		t.Errorf("invalid filing status mapped to %s, expected single", input.FilingStatus)
	}
}

func TestExpenseInputBinding(t *testing.T) {
	f := New()
	f.SetText(FieldHousingCost, "1,500")
	f.SetText(FieldHousingType, string(domain.HousingMortgage))
	f.SetText(FieldPropertyTax, "300")
	f.SetBool(FieldVehicleEnabled, true)
	f.SetText(FieldInsuranceAmount, "600")
	f.SetText(FieldInsurancePeriod, "6")
	f.AddCustomItem(domain.CategoryVehicle, domain.CustomItem{Label: "Parking", Value: "120"})

	input := f.ExpenseInput()
	if !input.Housing.Equal(decimal.NewFromInt(1500)) {
		t.Errorf("housing = %v, expected 1500", input.Housing)
	}
	if input.HousingType != domain.HousingMortgage {
		t.Errorf("housing type = %s", input.HousingType)
	}
	if !input.VehicleEnabled {
		t.Error("vehicle not enabled")
	}
	if !input.InsurancePeriodMonths.Equal(decimal.NewFromInt(6)) {
		t.Errorf("insurance period = %v, expected 6", input.InsurancePeriodMonths)
	}
	if got := input.Custom[domain.CategoryVehicle]; len(got) != 1 || got[0].Value != "120" {
		t.Errorf("vehicle custom items = %+v", got)
	}
}

func TestRemoveCustomItemPreservesOrder(t *testing.T) {
	f := New()
	for _, label := range []string{"a", "b", "c"} {
		f.AddCustomItem(domain.CategoryAdditional, domain.CustomItem{Label: label, Value: "1"})
	}
	f.RemoveCustomItem(domain.CategoryAdditional, 1)
	got := f.CustomItems(domain.CategoryAdditional)
	if len(got) != 2 || got[0].Label != "a" || got[1].Label != "c" {
		t.Errorf("items after removal = %+v", got)
	}

	// Out-of-range indexes are no-ops.
	f.RemoveCustomItem(domain.CategoryAdditional, 10)
	if len(f.CustomItems(domain.CategoryAdditional)) != 2 {
		t.Error("out-of-range removal changed the list")
	}
}
