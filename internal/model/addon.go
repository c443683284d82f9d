package model

import (
	"time"

	"github.com/google/uuid"
)

type AddonStatus string

const (
	AddonStatusProposed AddonStatus = "PROPOSED"
	AddonStatusAccepted AddonStatus = "ACCEPTED"
	AddonStatusRejected AddonStatus = "REJECTED"
)

type ReviewStatus string

const (
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

// PlanAddon is a proposed plan change on a contract. A contractor rejection
// opens a review that an administrator settles.
type PlanAddon struct {
	ID                uuid.UUID     `json:"id"`
	ContractID        uuid.UUID     `json:"contract_id"`
	Description       string        `json:"description"`
	NewPlanName       string        `json:"new_plan_name"`
	NewMonthlyValue   float64       `json:"new_monthly_value"`
	Status            AddonStatus   `json:"status"`
	RejectionReason   *string       `json:"rejection_reason,omitempty"`
	RejectedAt        *time.Time    `json:"rejected_at,omitempty"`
	ReviewStatus      *ReviewStatus `json:"review_status,omitempty"`
	ReviewExplanation *string       `json:"review_explanation,omitempty"`
	ReviewedByUserID  *uuid.UUID    `json:"reviewed_by_user_id,omitempty"`
	ReviewedAt        *time.Time    `json:"reviewed_at,omitempty"`
	CreatedByUserID   uuid.UUID     `json:"created_by_user_id"`
	CreatedAt         time.Time     `json:"created_at"`
}

// RejectionView is what the contractor sees about a rejection they submitted.
type RejectionView struct {
	AddonID        uuid.UUID    `json:"addon_id"`
	Title          string       `json:"title"`
	ReviewStatus   ReviewStatus `json:"review_status"`
	OriginalReason string       `json:"original_reason"`
	Explanation    string       `json:"explanation,omitempty"`
}

func (a PlanAddon) RejectionView() (RejectionView, bool) {
	if a.Status != AddonStatusRejected || a.RejectionReason == nil {
		return RejectionView{}, false
	}
	review := ReviewStatusPending
	if a.ReviewStatus != nil {
		review = *a.ReviewStatus
	}
	view := RejectionView{
		AddonID:        a.ID,
		ReviewStatus:   review,
		OriginalReason: *a.RejectionReason,
	}
	if a.ReviewExplanation != nil {
		view.Explanation = *a.ReviewExplanation
	}
	switch review {
	case ReviewStatusApproved:
		view.Title = "Rejeição Aprovada"
	case ReviewStatusRejected:
		view.Title = "Rejeição Recusada"
	default:
		view.Title = "Rejeição em Análise"
	}
	return view, true
}
