package form

import (
	"github.com/RichNSD/Payroll-Calculator/internal/domain"
	"github.com/RichNSD/Payroll-Calculator/internal/money"
)

// Form holds the current value of every registered field plus each
// category's custom line items. It is the in-memory analogue of the
// rendered form: the UI projects it to widgets, the persistence layer
// snapshots it, and the engine bindings read it.
//
// A Form must be confined to a single goroutine (or an equivalent
// serialized owner); it carries no locking of its own.
type Form struct {
	theme  domain.Theme
	values map[string]domain.FieldValue
	custom map[domain.ExpenseCategory][]domain.CustomItem
}

// New creates a form with every field at its default value.
func New() *Form {
	return &Form{
		theme:  domain.ThemeLight,
		values: defaultValues(),
		custom: make(map[domain.ExpenseCategory][]domain.CustomItem),
	}
}

// Theme returns the current theme.
func (f *Form) Theme() domain.Theme { return f.theme }

// SetTheme sets the current theme.
func (f *Form) SetTheme(t domain.Theme) { f.theme = t }

// Text returns a field's text value. Unknown identifiers and toggle
// fields read as empty.
func (f *Form) Text(id string) string {
	v, ok := f.values[id]
	if !ok || v.IsBool {
		return ""
	}
	return v.Text
}

// Bool returns a toggle field's value. Unknown identifiers and text
// fields read as false.
func (f *Form) Bool(id string) bool {
	v, ok := f.values[id]
	if !ok || !v.IsBool {
		return false
	}
	return v.Bool
}

// SetText sets a text field. Unknown identifiers are ignored silently, as
// are toggle fields.
func (f *Form) SetText(id, value string) {
	if v, ok := f.values[id]; ok && !v.IsBool {
		f.values[id] = domain.TextValue(value)
	}
}

// SetBool sets a toggle field. Unknown and non-toggle identifiers are
// ignored silently.
func (f *Form) SetBool(id string, value bool) {
	if v, ok := f.values[id]; ok && v.IsBool {
		f.values[id] = domain.BoolValue(value)
	}
}

// CustomItems returns a copy of a category's line items in insertion
// order.
func (f *Form) CustomItems(cat domain.ExpenseCategory) []domain.CustomItem {
	items := f.custom[cat]
	if len(items) == 0 {
		return nil
	}
	out := make([]domain.CustomItem, len(items))
	copy(out, items)
	return out
}

// AddCustomItem appends a line item to a category.
func (f *Form) AddCustomItem(cat domain.ExpenseCategory, item domain.CustomItem) {
	f.custom[cat] = append(f.custom[cat], item)
}

// UpdateCustomItem replaces the line item at index. Out-of-range indexes
// are ignored silently.
func (f *Form) UpdateCustomItem(cat domain.ExpenseCategory, index int, item domain.CustomItem) {
	items := f.custom[cat]
	if index < 0 || index >= len(items) {
		return
	}
	items[index] = item
}

// RemoveCustomItem deletes the line item at index, preserving the order
// of the remainder. Out-of-range indexes are ignored silently.
func (f *Form) RemoveCustomItem(cat domain.ExpenseCategory, index int) {
	items := f.custom[cat]
	if index < 0 || index >= len(items) {
		return
	}
	f.custom[cat] = append(items[:index], items[index+1:]...)
}

// Reset returns every field to its default and drops all custom items.
func (f *Form) Reset() {
	f.theme = domain.ThemeLight
	f.values = defaultValues()
	f.custom = make(map[domain.ExpenseCategory][]domain.CustomItem)
}

// Serialize snapshots the whole form into a persistable document.
func (f *Form) Serialize() *domain.PersistedState {
	state := domain.NewPersistedState()
	state.Theme = f.theme
	for _, id := range FieldIDs {
		state.Inputs[id] = f.values[id]
	}
	for _, cat := range domain.CustomCategories {
		if items := f.CustomItems(cat); items != nil {
			state.Custom[cat] = items
		}
	}
	return state
}

// Restore applies a persisted document to the form. Fields start from
// defaults, every recognized input entry is written back by identifier
// (unknown identifiers are ignored), and the custom-item lists are fully
// rebuilt from the document, replacing whatever was there before.
func (f *Form) Restore(state *domain.PersistedState) {
	f.Reset()
	if state == nil {
		return
	}
	if state.Theme == domain.ThemeDark {
		f.theme = domain.ThemeDark
	}
	for id, v := range state.Inputs {
		if _, known := f.values[id]; !known {
			continue
		}
		if v.IsBool {
			f.SetBool(id, v.Bool)
		} else {
			f.SetText(id, v.Text)
		}
	}
	for _, cat := range domain.CustomCategories {
		if items := state.Custom[cat]; len(items) > 0 {
			restored := make([]domain.CustomItem, len(items))
			copy(restored, items)
			f.custom[cat] = restored
		}
	}
}

// IncomeInput binds the income fields into an engine input, coercing raw
// text through the zero-default parser.
func (f *Form) IncomeInput() domain.IncomeInput {
	mode := domain.IncomeModeSalary
	if f.Text(FieldIncomeMode) == string(domain.IncomeModeHourly) {
		mode = domain.IncomeModeHourly
	}
	status := domain.FilingStatus(f.Text(FieldFilingStatus))
	if !status.IsValid() {
		status = domain.FilingSingle
	}
	return domain.IncomeInput{
		Mode:               mode,
		AnnualSalary:       money.ParseAmount(f.Text(FieldAnnualSalary)),
		HourlyWage:         money.ParseAmount(f.Text(FieldHourlyWage)),
		HoursPerWeek:       money.ParseAmount(f.Text(FieldHoursPerWeek)),
		OvertimeHours:      money.ParseAmount(f.Text(FieldOvertimeHours)),
		OvertimeMultiplier: money.ParseAmount(f.Text(FieldOvertimeMultiplier)),
		State:              f.Text(FieldState),
		FilingStatus:       status,
	}
}

// ExpenseInput binds the expense fields and custom items into an engine
// input.
func (f *Form) ExpenseInput() domain.ExpenseInput {
	housingType := domain.HousingRent
	if f.Text(FieldHousingType) == string(domain.HousingMortgage) {
		housingType = domain.HousingMortgage
	}
	custom := make(map[domain.ExpenseCategory][]domain.CustomItem)
	for _, cat := range domain.CustomCategories {
		if items := f.CustomItems(cat); items != nil {
			custom[cat] = items
		}
	}
	return domain.ExpenseInput{
		Housing:                money.ParseAmount(f.Text(FieldHousingCost)),
		HousingType:            housingType,
		PropertyTax:            money.ParseAmount(f.Text(FieldPropertyTax)),
		Utilities:              money.ParseAmount(f.Text(FieldUtilitiesCost)),
		VehicleEnabled:         f.Bool(FieldVehicleEnabled),
		VehiclePayment:         money.ParseAmount(f.Text(FieldVehiclePayment)),
		FuelCost:               money.ParseAmount(f.Text(FieldFuelCost)),
		InsuranceAmount:        money.ParseAmount(f.Text(FieldInsuranceAmount)),
		InsurancePeriodMonths:  money.ParseAmount(f.Text(FieldInsurancePeriod)),
		PublicTransportEnabled: f.Bool(FieldPublicTransport),
		RideShareEnabled:       f.Bool(FieldRideShare),
		MiscTravelEnabled:      f.Bool(FieldMiscTravel),
		Food:                   money.ParseAmount(f.Text(FieldFoodCost)),
		Custom:                 custom,
	}
}
