// Package form defines the contract between the calculation core and the
// surrounding UI: a fixed registry of field identifiers, a Form snapshot
// of their current values, and the binding from raw field text to engine
// inputs.
package form

import "github.com/RichNSD/Payroll-Calculator/internal/domain"

// Field identifiers. This set is the persistence contract: the store
// reads and writes values by these keys, and the engines consume them by
// name through the Form bindings.
const (
	FieldIncomeMode         = "incomeMode"
	FieldAnnualSalary       = "annualSalary"
	FieldHourlyWage         = "hourlyWage"
	FieldHoursPerWeek       = "hoursPerWeek"
	FieldOvertimeHours      = "overtimeHours"
	FieldOvertimeMultiplier = "overtimeMultiplier"
	FieldState              = "state"
	FieldFilingStatus       = "filingStatus"

	FieldHousingCost     = "housingCost"
	FieldHousingType     = "housingType"
	FieldPropertyTax     = "propertyTax"
	FieldUtilitiesCost   = "utilitiesCost"
	FieldVehicleEnabled  = "vehicleEnabled"
	FieldVehiclePayment  = "vehiclePayment"
	FieldFuelCost        = "fuelCost"
	FieldInsuranceAmount = "insuranceAmount"
	FieldInsurancePeriod = "insurancePeriod"
	FieldPublicTransport = "publicTransportEnabled"
	FieldRideShare       = "rideShareEnabled"
	FieldMiscTravel      = "miscTravelEnabled"
	FieldFoodCost        = "foodCost"
)

// FieldIDs lists every known field identifier in canonical order.
var FieldIDs = []string{
	FieldIncomeMode,
	FieldAnnualSalary,
	FieldHourlyWage,
	FieldHoursPerWeek,
	FieldOvertimeHours,
	FieldOvertimeMultiplier,
	FieldState,
	FieldFilingStatus,
	FieldHousingCost,
	FieldHousingType,
	FieldPropertyTax,
	FieldUtilitiesCost,
	FieldVehicleEnabled,
	FieldVehiclePayment,
	FieldFuelCost,
	FieldInsuranceAmount,
	FieldInsurancePeriod,
	FieldPublicTransport,
	FieldRideShare,
	FieldMiscTravel,
	FieldFoodCost,
}

// toggleFields marks the identifiers whose values are booleans.
var toggleFields = map[string]bool{
	FieldVehicleEnabled:  true,
	FieldPublicTransport: true,
	FieldRideShare:       true,
	FieldMiscTravel:      true,
}

// IsToggle reports whether a field identifier holds a boolean value.
func IsToggle(id string) bool { return toggleFields[id] }

// defaultValues returns the initial value of every known field.
func defaultValues() map[string]domain.FieldValue {
	values := make(map[string]domain.FieldValue, len(FieldIDs))
	for _, id := range FieldIDs {
		if toggleFields[id] {
			values[id] = domain.BoolValue(false)
		} else {
			values[id] = domain.TextValue("")
		}
	}
	values[FieldIncomeMode] = domain.TextValue(string(domain.IncomeModeSalary))
	values[FieldFilingStatus] = domain.TextValue(string(domain.FilingSingle))
	values[FieldHousingType] = domain.TextValue(string(domain.HousingRent))
	values[FieldOvertimeMultiplier] = domain.TextValue("1.5")
	values[FieldInsurancePeriod] = domain.TextValue("1")
	return values
}
