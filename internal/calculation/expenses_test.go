package calculation

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
)

func items(values ...string) []domain.CustomItem {
	out := make([]domain.CustomItem, len(values))
	for i, v := range values {
		out[i] = domain.CustomItem{Label: "item", Value: v}
	}
	return out
}

func TestComputeExpensesHousing(t *testing.T) {
	engine := NewEngine()

	input := domain.ExpenseInput{
		Housing:     decimal.NewFromInt(1500),
		HousingType: domain.HousingRent,
		PropertyTax: decimal.NewFromInt(300),
		Custom: map[domain.ExpenseCategory][]domain.CustomItem{
			domain.CategoryHousing: items("75", "25.50"),
		},
	}

	// Rent: property tax excluded.
	result := engine.ComputeExpenses(input)
	if !result.Housing.Equal(decimal.NewFromFloat(1600.50)) {
		t.Errorf("rent housing total = %v, expected 1600.50", result.Housing)
	}

	// Mortgage: property tax included.
	input.HousingType = domain.HousingMortgage
	result = engine.ComputeExpenses(input)
	if !result.Housing.Equal(decimal.NewFromFloat(1900.50)) {
		t.Errorf("mortgage housing total = %v, expected 1900.50", result.Housing)
	}
}

func TestComputeExpensesVehicle(t *testing.T) {
	engine := NewEngine()
	input := domain.ExpenseInput{
		VehicleEnabled:        true,
		VehiclePayment:        decimal.NewFromInt(350),
		FuelCost:              decimal.NewFromInt(120),
		InsuranceAmount:       decimal.NewFromInt(600),
		InsurancePeriodMonths: decimal.NewFromInt(6),
		Custom: map[domain.ExpenseCategory][]domain.CustomItem{
			domain.CategoryVehicle: items("30"),
		},
	}

	result := engine.ComputeExpenses(input)
	// 350 + 120 + 600/6 + 30
	if !result.Vehicle.Equal(decimal.NewFromInt(600)) {
		t.Errorf("vehicle total = %v, expected 600", result.Vehicle)
	}

	// Disabled: contributes zero regardless of stored values.
	input.VehicleEnabled = false
	result = engine.ComputeExpenses(input)
	if !result.Vehicle.IsZero() {
		t.Errorf("disabled vehicle total = %v, expected 0", result.Vehicle)
	}
	if !result.Travel.IsZero() {
		t.Errorf("disabled vehicle travel total = %v, expected 0", result.Travel)
	}
}

func TestComputeExpensesInsurancePeriodGuard(t *testing.T) {
	engine := NewEngine()
	input := domain.ExpenseInput{
		VehicleEnabled:  true,
		InsuranceAmount: decimal.NewFromInt(600),
		// Zero period defaults to 1 rather than dividing by zero.
	}
	result := engine.ComputeExpenses(input)
	if !result.Vehicle.Equal(decimal.NewFromInt(600)) {
		t.Errorf("vehicle total = %v, expected 600", result.Vehicle)
	}
}

func TestComputeExpensesGatedTravelCategories(t *testing.T) {
	engine := NewEngine()
	custom := map[domain.ExpenseCategory][]domain.CustomItem{
		domain.CategoryPublicTransport: items("90"),
		domain.CategoryRideShare:       items("45", "15"),
		domain.CategoryMiscTravel:      items("200"),
	}

	disabled := engine.ComputeExpenses(domain.ExpenseInput{Custom: custom})
	if !disabled.Travel.IsZero() {
		t.Errorf("all gated travel disabled: total = %v, expected 0", disabled.Travel)
	}

	enabled := engine.ComputeExpenses(domain.ExpenseInput{
		PublicTransportEnabled: true,
		RideShareEnabled:       true,
		MiscTravelEnabled:      true,
		Custom:                 custom,
	})
	if !enabled.PublicTransport.Equal(decimal.NewFromInt(90)) {
		t.Errorf("public transport = %v, expected 90", enabled.PublicTransport)
	}
	if !enabled.RideShare.Equal(decimal.NewFromInt(60)) {
		t.Errorf("ride share = %v, expected 60", enabled.RideShare)
	}
	if !enabled.MiscTravel.Equal(decimal.NewFromInt(200)) {
		t.Errorf("misc travel = %v, expected 200", enabled.MiscTravel)
	}
	if !enabled.Travel.Equal(decimal.NewFromInt(350)) {
		t.Errorf("travel total = %v, expected 350", enabled.Travel)
	}
}

func TestSumCustomItemsTolerantParsing(t *testing.T) {
	tests := []struct {
		name     string
		items    []domain.CustomItem
		expected decimal.Decimal
	}{
		{"empty list", nil, decimal.Zero},
		{"plain values", items("10", "20.50"), decimal.NewFromFloat(30.50)},
		{"thousands separators", items("1,200"), decimal.NewFromInt(1200)},
		{"junk entries count as zero", items("abc", "15", ""), decimal.NewFromInt(15)},
		{"currency symbols stripped", items("$49.99"), decimal.NewFromFloat(49.99)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := SumCustomItems(tt.items); !got.Equal(tt.expected) {
				t.Errorf("SumCustomItems() = %v, expected %v", got, tt.expected)
			}
		})
	}
}

func TestComputeExpensesGrandTotal(t *testing.T) {
	engine := NewEngine()
	input := domain.ExpenseInput{
		Housing:        decimal.NewFromInt(1500),
		HousingType:    domain.HousingRent,
		Utilities:      decimal.NewFromInt(200),
		Food:           decimal.NewFromInt(400),
		VehicleEnabled: true,
		VehiclePayment: decimal.NewFromInt(300),
		Custom: map[domain.ExpenseCategory][]domain.CustomItem{
			domain.CategoryAdditional: items("50", "25"),
		},
	}
	result := engine.ComputeExpenses(input)
	// 1500 + 200 + 300 + 400 + 75
	if !result.Grand.Equal(decimal.NewFromInt(2475)) {
		t.Errorf("grand total = %v, expected 2475", result.Grand)
	}

	// Pure function: same input, same output.
	again := engine.ComputeExpenses(input)
	if !again.Grand.Equal(result.Grand) {
		t.Errorf("repeated computation diverged: %v vs %v", again.Grand, result.Grand)
	}
}
