package model

import (
	"time"

	"github.com/google/uuid"
)

type ClientData struct {
	Name     string `json:"name"`
	Document string `json:"document"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
}

// QuoteView is one destination of a calculation together with its current breakdown.
type QuoteView struct {
	SessionID   uuid.UUID     `json:"session_id"`
	Label       string        `json:"label"`
	Route       Route         `json:"route"`
	Breakdown   CostBreakdown `json:"breakdown"`
	Overrides   []string      `json:"overrides"`
	OpenEdits   []string      `json:"open_edits"`
	EmployeeSet bool          `json:"employee_set"`
}

type QuoteDocument struct {
	Client     ClientData
	Quotes     []QuoteView
	IssuedAt   time.Time
	ValidUntil time.Time
}

func (d QuoteDocument) GrandTotal() float64 {
	total := 0.0
	for _, q := range d.Quotes {
		total += q.Breakdown.GrandTotal
	}
	return total
}
