package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/contract-manager/internal/model"
)

var ctx = context.Background()

func adminPrincipal() model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.UserRoleAdmin}
}

func contractorPrincipal(contractorID uuid.UUID) model.Principal {
	return model.Principal{UserID: uuid.New(), Role: model.UserRoleContractor, ContractorID: &contractorID}
}

func testContract(owner model.Principal, contractorID uuid.UUID) *model.Contract {
	return &model.Contract{
		ID:           uuid.New(),
		OwnerID:      owner.UserID,
		ContractorID: contractorID,
		Number:       "CT-2026-001",
		Title:        "Suporte técnico",
		PlanName:     "Plano Básico",
		MonthlyValue: 350,
		StartAt:      time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}
