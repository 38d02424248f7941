// Package tui is the interactive form over the calculation core: it
// projects the form's fields and custom-item rows into an editable list,
// recomputes income and expenses on every change, and persists the form
// through the debounced saver. All state mutation happens on the
// bubbletea event loop, which keeps the last-write-wins save guarantee.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/RichNSD/Payroll-Calculator/internal/calculation"
	"github.com/RichNSD/Payroll-Calculator/internal/domain"
	"github.com/RichNSD/Payroll-Calculator/internal/form"
	"github.com/RichNSD/Payroll-Calculator/internal/store"
)

type rowKind int

const (
	rowHeading rowKind = iota
	rowText            // free text bound to a field identifier
	rowToggle          // boolean field, flipped with space
	rowEnum            // fixed options, cycled with left/right
	rowItemLabel       // custom item label (category, index)
	rowItemValue       // custom item value (category, index)
	rowAddItem         // appends a custom item to the category
)

// row is one line of the editable form list.
type row struct {
	kind    rowKind
	label   string
	fieldID string
	cat     domain.ExpenseCategory
	index   int
	options []string
	input   textinput.Model
}

// Model is the TUI application state.
type Model struct {
	form   *form.Form
	engine *calculation.Engine
	store  *store.Store
	saver  *store.DebouncedSaver
	styles Styles

	rows  []row
	focus int

	income   domain.IncomeResult
	expenses domain.ExpenseResult

	width  int
	height int
}

// NewModel restores the saved state (if any) into a fresh form and builds
// the initial row list.
func NewModel(s *store.Store, engine *calculation.Engine) Model {
	f := form.New()
	if state, err := s.Load(); err == nil {
		f.Restore(state) // nil state restores defaults
	}

	m := Model{
		form:   f,
		engine: engine,
		store:  s,
		saver: store.NewDebouncedSaver(store.DefaultSaveDelay, func(state *domain.PersistedState) {
			// Failed saves are dropped; persistence is best-effort.
			_ = s.Save(state)
		}),
		styles: NewStyles(f.Theme()),
		width:  100,
		height: 30,
	}
	m.rows = m.buildRows()
	m.focusFirst()
	m.recompute()
	return m
}

func newInput(value string) textinput.Model {
	ti := textinput.New()
	ti.Prompt = ""
	ti.CharLimit = 32
	ti.Width = 16
	ti.SetValue(value)
	return ti
}

func textRow(f *form.Form, label, fieldID string) row {
	return row{kind: rowText, label: label, fieldID: fieldID, input: newInput(f.Text(fieldID))}
}

var customCategoryLabels = map[domain.ExpenseCategory]string{
	domain.CategoryHousing:         "Housing items",
	domain.CategoryUtilities:       "Utility items",
	domain.CategoryVehicle:         "Vehicle items",
	domain.CategoryPublicTransport: "Public transport items",
	domain.CategoryRideShare:       "Ride share items",
	domain.CategoryMiscTravel:      "Misc travel items",
	domain.CategoryAdditional:      "Additional items",
}

// buildRows projects the form into the row list, honoring the current
// visibility rules: hourly fields only in hourly mode, property tax only
// for mortgages, gated categories only while enabled.
func (m *Model) buildRows() []row {
	f := m.form
	rows := []row{
		{kind: rowHeading, label: "Income"},
		{kind: rowEnum, label: "Income mode", fieldID: form.FieldIncomeMode,
			options: []string{string(domain.IncomeModeSalary), string(domain.IncomeModeHourly)}},
	}

	if f.Text(form.FieldIncomeMode) == string(domain.IncomeModeHourly) {
		rows = append(rows,
			textRow(f, "Hourly wage", form.FieldHourlyWage),
			textRow(f, "Hours per week", form.FieldHoursPerWeek),
			textRow(f, "Overtime hours", form.FieldOvertimeHours),
			textRow(f, "Overtime multiplier", form.FieldOvertimeMultiplier),
		)
	} else {
		rows = append(rows, textRow(f, "Annual salary", form.FieldAnnualSalary))
	}

	rows = append(rows,
		row{kind: rowEnum, label: "State", fieldID: form.FieldState,
			options: m.engine.Tables.StateNames()},
		row{kind: rowEnum, label: "Filing status", fieldID: form.FieldFilingStatus,
			options: []string{
				string(domain.FilingSingle),
				string(domain.FilingMarried),
				string(domain.FilingHeadOfHousehold),
			}},
		row{kind: rowHeading, label: "Expenses"},
		textRow(f, "Housing cost", form.FieldHousingCost),
		row{kind: rowEnum, label: "Housing type", fieldID: form.FieldHousingType,
			options: []string{string(domain.HousingRent), string(domain.HousingMortgage)}},
	)
	if f.Text(form.FieldHousingType) == string(domain.HousingMortgage) {
		rows = append(rows, textRow(f, "Property tax", form.FieldPropertyTax))
	}
	rows = append(rows, m.customRows(domain.CategoryHousing)...)

	rows = append(rows, textRow(f, "Utilities", form.FieldUtilitiesCost))
	rows = append(rows, m.customRows(domain.CategoryUtilities)...)

	rows = append(rows, row{kind: rowToggle, label: "Vehicle", fieldID: form.FieldVehicleEnabled})
	if f.Bool(form.FieldVehicleEnabled) {
		rows = append(rows,
			textRow(f, "Vehicle payment", form.FieldVehiclePayment),
			textRow(f, "Fuel cost", form.FieldFuelCost),
			textRow(f, "Insurance amount", form.FieldInsuranceAmount),
			textRow(f, "Insurance period (months)", form.FieldInsurancePeriod),
		)
		rows = append(rows, m.customRows(domain.CategoryVehicle)...)
	}

	for _, gated := range []struct {
		label   string
		fieldID string
		cat     domain.ExpenseCategory
	}{
		{"Public transport", form.FieldPublicTransport, domain.CategoryPublicTransport},
		{"Ride share", form.FieldRideShare, domain.CategoryRideShare},
		{"Misc travel", form.FieldMiscTravel, domain.CategoryMiscTravel},
	} {
		rows = append(rows, row{kind: rowToggle, label: gated.label, fieldID: gated.fieldID})
		if f.Bool(gated.fieldID) {
			rows = append(rows, m.customRows(gated.cat)...)
		}
	}

	rows = append(rows, textRow(f, "Food", form.FieldFoodCost))
	rows = append(rows, m.customRows(domain.CategoryAdditional)...)
	return rows
}

// customRows renders a category's line items as label/value input pairs
// plus the trailing add row.
func (m *Model) customRows(cat domain.ExpenseCategory) []row {
	var rows []row
	for i, item := range m.form.CustomItems(cat) {
		rows = append(rows,
			row{kind: rowItemLabel, label: "  item label", cat: cat, index: i, input: newInput(item.Label)},
			row{kind: rowItemValue, label: "  item value", cat: cat, index: i, input: newInput(item.Value)},
		)
	}
	rows = append(rows, row{kind: rowAddItem, label: "  [+] add " + customCategoryLabels[cat], cat: cat})
	return rows
}

// recompute reruns both engines from the current form values.
func (m *Model) recompute() {
	m.income = m.engine.ComputeIncome(m.form.IncomeInput())
	m.expenses = m.engine.ComputeExpenses(m.form.ExpenseInput())
}

// scheduleSave snapshots the form and arms the debounced saver.
func (m *Model) scheduleSave() {
	m.saver.Trigger(m.form.Serialize())
}

// Flush forces any pending save to disk. Called on shutdown.
func (m *Model) Flush() {
	m.saver.Flush()
}
