package pricing

import "github.com/nurpe/contract-manager/internal/model"

const (
	// MonthlyHours is the number of paid hours a monthly salary package covers.
	MonthlyHours = 220.0
	// DefaultWorkHours is the on-site time added to the travel time of a visit.
	DefaultWorkHours = 2.0
)

// Input is everything a breakdown depends on. Distance and duration are
// already round-trip adjusted by the resolver.
type Input struct {
	Vehicle   model.VehicleProfile
	Distance  model.DistanceResult
	Toll      *model.TollData
	Employee  *model.EmployeeCost
	Services  []model.ServiceSelection
	Meals     model.Meals
	Margins   model.Margins
	WorkHours float64
}

// Rates derives the per-km vehicle rates.
func Rates(v model.VehicleProfile) model.VehicleRates {
	base := v.PurchaseValue
	if base <= 0 {
		base = v.CurrentValue
	}
	return model.VehicleRates{
		Fuel:         safeDiv(v.FuelPrice, v.FuelConsumption),
		IPVA:         safeDiv(v.AnnualIPVA, v.AnnualMileage),
		Insurance:    safeDiv(v.AnnualInsurance, v.AnnualMileage),
		Maintenance:  safeDiv(v.AnnualMaintenance, v.AnnualMileage),
		Depreciation: safeDiv(nonNegative(base)*nonNegative(v.DepreciationRate)/100, v.AnnualMileage),
	}
}

// HourlyRate spreads the monthly cost of an employee over MonthlyHours.
func HourlyRate(e model.EmployeeCost) float64 {
	return safeDiv(nonNegative(e.Salary)+nonNegative(e.Benefits)+nonNegative(e.Taxes), MonthlyHours)
}

// Compose turns the inputs into an itemised breakdown. It has no side effects,
// so identical inputs always give identical totals.
func Compose(in Input) model.CostBreakdown {
	distance := nonNegative(in.Distance.DistanceKm)
	duration := nonNegative(in.Distance.DurationMinutes)

	rates := Rates(in.Vehicle)
	costs := model.VehicleRates{
		Fuel:         rates.Fuel * distance,
		IPVA:         rates.IPVA * distance,
		Insurance:    rates.Insurance * distance,
		Maintenance:  rates.Maintenance * distance,
		Depreciation: rates.Depreciation * distance,
	}

	toll := 0.0
	if in.Toll != nil {
		toll = nonNegative(in.Toll.TotalCost)
	}

	out := model.CostBreakdown{
		DistanceKm:      distance,
		DurationMinutes: duration,
		RatesPerKm:      rates,
		Costs:           costs,
		TollTotal:       toll,
	}

	out.VehicleSubtotal = costs.Sum() + toll
	out.VehicleMargin = margin(out.VehicleSubtotal, in.Margins.Vehicle)
	out.VehicleTotal = out.VehicleSubtotal + out.VehicleMargin

	workHours := in.WorkHours
	if workHours <= 0 {
		workHours = DefaultWorkHours
	}
	out.TravelHours = duration / 60
	out.WorkHours = workHours
	if in.Employee != nil {
		out.HourlyRate = HourlyRate(*in.Employee)
	}
	out.LaborSubtotal = out.HourlyRate * (out.TravelHours + out.WorkHours)
	out.LaborMargin = margin(out.LaborSubtotal, in.Margins.Labor)
	out.LaborTotal = out.LaborSubtotal + out.LaborMargin

	out.Meals = model.Meals{
		Breakfast: cleanMeal(in.Meals.Breakfast),
		Lunch:     cleanMeal(in.Meals.Lunch),
		Dinner:    cleanMeal(in.Meals.Dinner),
	}
	out.MealSubtotal = mealTotal(out.Meals.Breakfast) + mealTotal(out.Meals.Lunch) + mealTotal(out.Meals.Dinner)
	out.MealMargin = margin(out.MealSubtotal, in.Margins.Meal)
	out.MealTotal = out.MealSubtotal + out.MealMargin

	out.Services = make([]model.ServiceLine, 0, len(in.Services))
	for _, sel := range in.Services {
		line := serviceLine(sel, out.HourlyRate)
		out.Services = append(out.Services, line)
		out.ServiceTotal += line.Total
	}

	out.GrandTotal = out.VehicleTotal + out.LaborTotal + out.MealTotal + out.ServiceTotal
	return out
}

func serviceLine(sel model.ServiceSelection, hourly float64) model.ServiceLine {
	qty := sel.Quantity
	if qty < 0 {
		qty = 0
	}
	unit := 0.0
	switch sel.Service.PricingType {
	case model.PricingTypeFixed:
		unit = nonNegative(sel.Service.FixedPrice)
	case model.PricingTypeHourly:
		unit = hourly * nonNegative(sel.Service.EstimatedHours)
	}
	return model.ServiceLine{
		ServiceID:   sel.Service.ID,
		Name:        sel.Service.Name,
		PricingType: sel.Service.PricingType,
		Quantity:    qty,
		UnitCost:    unit,
		Total:       unit * float64(qty),
	}
}

func margin(base, pct float64) float64 {
	return nonNegative(base) * nonNegative(pct) / 100
}

func cleanMeal(m model.MealItem) model.MealItem {
	return model.MealItem{UnitPrice: nonNegative(m.UnitPrice), Quantity: nonNegative(m.Quantity)}
}

func mealTotal(m model.MealItem) float64 {
	return m.UnitPrice * m.Quantity
}
