package model

import (
	"time"

	"github.com/google/uuid"
)

// VehicleProfile holds the annual ownership figures used to derive per-km rates.
// AnnualMileage is the divisor for every annualised rate.
type VehicleProfile struct {
	ID                uuid.UUID  `json:"id"`
	OwnerID           uuid.UUID  `json:"owner_id"`
	PurchaseValue     float64    `json:"purchase_value"`
	CurrentValue      float64    `json:"current_value"`
	AnnualIPVA        float64    `json:"annual_ipva" gorm:"column:annual_ipva"`
	AnnualInsurance   float64    `json:"annual_insurance"`
	AnnualMaintenance float64    `json:"annual_maintenance"`
	DepreciationRate  float64    `json:"depreciation_rate"`
	AnnualMileage     float64    `json:"annual_mileage"`
	FuelConsumption   float64    `json:"fuel_consumption"`
	FuelPrice         float64    `json:"fuel_price"`
	DefaultEmployeeID *uuid.UUID `json:"default_employee_id,omitempty"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

type EmployeeCost struct {
	ID        uuid.UUID `json:"id"`
	OwnerID   uuid.UUID `json:"owner_id"`
	Name      string    `json:"name"`
	Salary    float64   `json:"salary"`
	Benefits  float64   `json:"benefits"`
	Taxes     float64   `json:"taxes"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type PricingType string

const (
	PricingTypeHourly PricingType = "hourly"
	PricingTypeFixed  PricingType = "fixed"
)

type TechnicalVisitService struct {
	ID             uuid.UUID   `json:"id"`
	OwnerID        uuid.UUID   `json:"owner_id"`
	Name           string      `json:"name"`
	PricingType    PricingType `json:"pricing_type"`
	FixedPrice     float64     `json:"fixed_price"`
	EstimatedHours float64     `json:"estimated_hours"`
	IsActive       bool        `json:"is_active"`
	CreatedAt      time.Time   `json:"created_at"`
}

type ServiceSelection struct {
	Service  TechnicalVisitService
	Quantity int
}
