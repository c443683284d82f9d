package model

import (
	"time"

	"github.com/google/uuid"
)

type Contractor struct {
	ID       uuid.UUID `json:"id"`
	Name     string    `json:"name"`
	Document string    `json:"document"`
	Email    string    `json:"email"`
	Phone    string    `json:"phone"`
	Address  string    `json:"address"`
}

type Contract struct {
	ID           uuid.UUID  `json:"id"`
	OwnerID      uuid.UUID  `json:"owner_id"`
	ContractorID uuid.UUID  `json:"contractor_id"`
	Number       string     `json:"number"`
	Title        string     `json:"title"`
	PlanName     string     `json:"plan_name"`
	MonthlyValue float64    `json:"monthly_value"`
	StartAt      time.Time  `json:"start_at"`
	EndAt        *time.Time `json:"end_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	Contractor   Contractor `json:"contractor" gorm:"-"`
}
