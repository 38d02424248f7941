package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
	"github.com/RichNSD/Payroll-Calculator/internal/form"
)

// Scenario is a YAML description of a full form: income parameters,
// expense parameters, and custom line items. Amount fields are free-form
// text and go through the same tolerant coercion as interactive input.
type Scenario struct {
	Theme    string        `yaml:"theme"`
	Income   IncomeConfig  `yaml:"income"`
	Expenses ExpenseConfig `yaml:"expenses"`
}

// IncomeConfig holds the income section of a scenario file.
type IncomeConfig struct {
	Mode               string `yaml:"mode"`
	AnnualSalary       string `yaml:"annual_salary"`
	HourlyWage         string `yaml:"hourly_wage"`
	HoursPerWeek       string `yaml:"hours_per_week"`
	OvertimeHours      string `yaml:"overtime_hours"`
	OvertimeMultiplier string `yaml:"overtime_multiplier"`
	State              string `yaml:"state"`
	FilingStatus       string `yaml:"filing_status"`
}

// VehicleConfig holds the gated vehicle sub-section.
type VehicleConfig struct {
	Enabled               bool   `yaml:"enabled"`
	Payment               string `yaml:"payment"`
	Fuel                  string `yaml:"fuel"`
	Insurance             string `yaml:"insurance"`
	InsurancePeriodMonths string `yaml:"insurance_period_months"`
}

// ExpenseConfig holds the expenses section of a scenario file.
type ExpenseConfig struct {
	Housing         string        `yaml:"housing"`
	HousingType     string        `yaml:"housing_type"`
	PropertyTax     string        `yaml:"property_tax"`
	Utilities       string        `yaml:"utilities"`
	Vehicle         VehicleConfig `yaml:"vehicle"`
	PublicTransport bool          `yaml:"public_transport_enabled"`
	RideShare       bool          `yaml:"ride_share_enabled"`
	MiscTravel      bool          `yaml:"misc_travel_enabled"`
	Food            string        `yaml:"food"`

	Custom map[string][]domain.CustomItem `yaml:"custom"`
}

// InputParser handles parsing of scenario input files.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a scenario from a YAML file.
func (ip *InputParser) LoadFromFile(filename string) (*Scenario, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("scenario validation failed: %w", err)
	}

	return &scenario, nil
}

// ValidateScenario checks the enumerated fields of a scenario. Amount
// fields are deliberately not validated: they follow the zero-default
// coercion contract.
func (ip *InputParser) ValidateScenario(s *Scenario) error {
	if s.Theme != "" && s.Theme != string(domain.ThemeLight) && s.Theme != string(domain.ThemeDark) {
		return fmt.Errorf("theme must be %q or %q", domain.ThemeLight, domain.ThemeDark)
	}
	if s.Income.Mode != "" && s.Income.Mode != string(domain.IncomeModeSalary) && s.Income.Mode != string(domain.IncomeModeHourly) {
		return fmt.Errorf("income mode must be %q or %q", domain.IncomeModeSalary, domain.IncomeModeHourly)
	}
	if s.Income.FilingStatus != "" && !domain.FilingStatus(s.Income.FilingStatus).IsValid() {
		return fmt.Errorf("unknown filing status: %s", s.Income.FilingStatus)
	}
	if s.Expenses.HousingType != "" && s.Expenses.HousingType != string(domain.HousingRent) && s.Expenses.HousingType != string(domain.HousingMortgage) {
		return fmt.Errorf("housing type must be %q or %q", domain.HousingRent, domain.HousingMortgage)
	}
	known := make(map[string]bool, len(domain.CustomCategories))
	for _, cat := range domain.CustomCategories {
		known[string(cat)] = true
	}
	for cat := range s.Expenses.Custom {
		if !known[cat] {
			return fmt.Errorf("unknown custom item category: %s", cat)
		}
	}
	return nil
}

// Apply writes the scenario into a form, leaving unspecified fields at
// their defaults.
func (s *Scenario) Apply(f *form.Form) {
	if s.Theme == string(domain.ThemeDark) {
		f.SetTheme(domain.ThemeDark)
	}

	setText := func(id, value string) {
		if value != "" {
			f.SetText(id, value)
		}
	}
	setText(form.FieldIncomeMode, s.Income.Mode)
	setText(form.FieldAnnualSalary, s.Income.AnnualSalary)
	setText(form.FieldHourlyWage, s.Income.HourlyWage)
	setText(form.FieldHoursPerWeek, s.Income.HoursPerWeek)
	setText(form.FieldOvertimeHours, s.Income.OvertimeHours)
	setText(form.FieldOvertimeMultiplier, s.Income.OvertimeMultiplier)
	setText(form.FieldState, s.Income.State)
	setText(form.FieldFilingStatus, s.Income.FilingStatus)

	setText(form.FieldHousingCost, s.Expenses.Housing)
	setText(form.FieldHousingType, s.Expenses.HousingType)
	setText(form.FieldPropertyTax, s.Expenses.PropertyTax)
	setText(form.FieldUtilitiesCost, s.Expenses.Utilities)
	f.SetBool(form.FieldVehicleEnabled, s.Expenses.Vehicle.Enabled)
	setText(form.FieldVehiclePayment, s.Expenses.Vehicle.Payment)
	setText(form.FieldFuelCost, s.Expenses.Vehicle.Fuel)
	setText(form.FieldInsuranceAmount, s.Expenses.Vehicle.Insurance)
	setText(form.FieldInsurancePeriod, s.Expenses.Vehicle.InsurancePeriodMonths)
	f.SetBool(form.FieldPublicTransport, s.Expenses.PublicTransport)
	f.SetBool(form.FieldRideShare, s.Expenses.RideShare)
	f.SetBool(form.FieldMiscTravel, s.Expenses.MiscTravel)
	setText(form.FieldFoodCost, s.Expenses.Food)

	for cat, items := range s.Expenses.Custom {
		for _, item := range items {
			f.AddCustomItem(domain.ExpenseCategory(cat), item)
		}
	}
}
