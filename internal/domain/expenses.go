package domain

import "github.com/shopspring/decimal"

// ExpenseCategory identifies one expense bucket. The four travel
// sub-categories are gated: they contribute to totals only while their
// enable flag is set.
type ExpenseCategory string

const (
	CategoryHousing         ExpenseCategory = "housing"
	CategoryUtilities       ExpenseCategory = "utilities"
	CategoryVehicle         ExpenseCategory = "vehicle"
	CategoryPublicTransport ExpenseCategory = "publicTransport"
	CategoryRideShare       ExpenseCategory = "rideShare"
	CategoryMiscTravel      ExpenseCategory = "miscTravel"
	CategoryFood            ExpenseCategory = "food"
	CategoryAdditional      ExpenseCategory = "additional"
)

// CustomCategories lists every category that accepts user-added line
// items, in display order.
var CustomCategories = []ExpenseCategory{
	CategoryHousing,
	CategoryUtilities,
	CategoryVehicle,
	CategoryPublicTransport,
	CategoryRideShare,
	CategoryMiscTravel,
	CategoryAdditional,
}

// HousingType distinguishes rent from mortgage; property tax applies only
// to mortgages.
type HousingType string

const (
	HousingRent     HousingType = "rent"
	HousingMortgage HousingType = "mortgage"
)

// CustomItem is a user-added expense line inside a category. The label is
// display-only. Value is kept as the raw text the user typed; it is parsed
// at aggregation time and treated as zero when it fails to parse.
type CustomItem struct {
	Label string `json:"label" yaml:"label"`
	Value string `json:"value" yaml:"value"`
}

// ExpenseInput holds the raw expense parameters for one calculation.
type ExpenseInput struct {
	Housing     decimal.Decimal
	HousingType HousingType
	PropertyTax decimal.Decimal

	Utilities decimal.Decimal

	VehicleEnabled        bool
	VehiclePayment        decimal.Decimal
	FuelCost              decimal.Decimal
	InsuranceAmount       decimal.Decimal
	InsurancePeriodMonths decimal.Decimal // defaults to 1 when not positive

	PublicTransportEnabled bool
	RideShareEnabled       bool
	MiscTravelEnabled      bool

	Food decimal.Decimal

	// Custom holds each category's user-added line items in insertion
	// order.
	Custom map[ExpenseCategory][]CustomItem
}

// ExpenseResult holds per-category monthly totals and the grand total.
type ExpenseResult struct {
	Housing         decimal.Decimal
	Utilities       decimal.Decimal
	Vehicle         decimal.Decimal
	PublicTransport decimal.Decimal
	RideShare       decimal.Decimal
	MiscTravel      decimal.Decimal
	Travel          decimal.Decimal
	Food            decimal.Decimal
	Additional      decimal.Decimal
	Grand           decimal.Decimal
}
