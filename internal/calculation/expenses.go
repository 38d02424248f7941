package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/RichNSD/Payroll-Calculator/internal/domain"
	"github.com/RichNSD/Payroll-Calculator/internal/money"
)

// ComputeExpenses aggregates the fixed category inputs and every
// category's custom line items into per-category and grand totals. Gated
// travel sub-categories contribute zero while disabled, regardless of
// their stored values.
func (e *Engine) ComputeExpenses(input domain.ExpenseInput) domain.ExpenseResult {
	housing := input.Housing.Add(SumCustomItems(input.Custom[domain.CategoryHousing]))
	if input.HousingType == domain.HousingMortgage {
		housing = housing.Add(input.PropertyTax)
	}

	utilities := input.Utilities.Add(SumCustomItems(input.Custom[domain.CategoryUtilities]))

	vehicle := decimal.Zero
	if input.VehicleEnabled {
		period := input.InsurancePeriodMonths
		if period.LessThanOrEqual(decimal.Zero) {
			period = decimal.NewFromInt(1)
		}
		vehicle = input.VehiclePayment.
			Add(input.FuelCost).
			Add(input.InsuranceAmount.Div(period)).
			Add(SumCustomItems(input.Custom[domain.CategoryVehicle]))
	}

	publicTransport := gatedSum(input.PublicTransportEnabled, input.Custom[domain.CategoryPublicTransport])
	rideShare := gatedSum(input.RideShareEnabled, input.Custom[domain.CategoryRideShare])
	miscTravel := gatedSum(input.MiscTravelEnabled, input.Custom[domain.CategoryMiscTravel])

	travel := vehicle.Add(publicTransport).Add(rideShare).Add(miscTravel)
	additional := SumCustomItems(input.Custom[domain.CategoryAdditional])

	return domain.ExpenseResult{
		Housing:         housing,
		Utilities:       utilities,
		Vehicle:         vehicle,
		PublicTransport: publicTransport,
		RideShare:       rideShare,
		MiscTravel:      miscTravel,
		Travel:          travel,
		Food:            input.Food,
		Additional:      additional,
		Grand:           housing.Add(utilities).Add(travel).Add(input.Food).Add(additional),
	}
}

// SumCustomItems totals a category's line items. Entries whose stored
// value does not parse as a number count as zero.
func SumCustomItems(items []domain.CustomItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(money.ParseAmount(item.Value))
	}
	return total
}

func gatedSum(enabled bool, items []domain.CustomItem) decimal.Decimal {
	if !enabled {
		return decimal.Zero
	}
	return SumCustomItems(items)
}
