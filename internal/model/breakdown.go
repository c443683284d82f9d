package model

import "github.com/google/uuid"

type MealItem struct {
	UnitPrice float64 `json:"unit_price"`
	Quantity  float64 `json:"quantity"`
}

type Meals struct {
	Breakfast MealItem `json:"breakfast"`
	Lunch     MealItem `json:"lunch"`
	Dinner    MealItem `json:"dinner"`
}

// Margins are percentages, each applied once to its own subtotal.
type Margins struct {
	Vehicle float64 `json:"vehicle"`
	Labor   float64 `json:"labor"`
	Meal    float64 `json:"meal"`
}

type VehicleRates struct {
	Fuel         float64 `json:"fuel"`
	IPVA         float64 `json:"ipva"`
	Insurance    float64 `json:"insurance"`
	Maintenance  float64 `json:"maintenance"`
	Depreciation float64 `json:"depreciation"`
}

func (r VehicleRates) Sum() float64 {
	return r.Fuel + r.IPVA + r.Insurance + r.Maintenance + r.Depreciation
}

type ServiceLine struct {
	ServiceID   uuid.UUID   `json:"service_id"`
	Name        string      `json:"name"`
	PricingType PricingType `json:"pricing_type"`
	Quantity    int         `json:"quantity"`
	UnitCost    float64     `json:"unit_cost"`
	Total       float64     `json:"total"`
}

type CostBreakdown struct {
	DistanceKm      float64      `json:"distance_km"`
	DurationMinutes float64      `json:"duration_minutes"`
	RatesPerKm      VehicleRates `json:"rates_per_km"`
	Costs           VehicleRates `json:"costs"`
	TollTotal       float64      `json:"toll_total"`

	VehicleSubtotal float64 `json:"vehicle_subtotal"`
	VehicleMargin   float64 `json:"vehicle_margin"`
	VehicleTotal    float64 `json:"vehicle_total"`

	HourlyRate    float64 `json:"hourly_rate"`
	TravelHours   float64 `json:"travel_hours"`
	WorkHours     float64 `json:"work_hours"`
	LaborSubtotal float64 `json:"labor_subtotal"`
	LaborMargin   float64 `json:"labor_margin"`
	LaborTotal    float64 `json:"labor_total"`

	Meals        Meals   `json:"meals"`
	MealSubtotal float64 `json:"meal_subtotal"`
	MealMargin   float64 `json:"meal_margin"`
	MealTotal    float64 `json:"meal_total"`

	Services     []ServiceLine `json:"services"`
	ServiceTotal float64       `json:"service_total"`

	GrandTotal float64 `json:"grand_total"`
}
