package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/service/mocks"
)

func newAddonFixture(t *testing.T) (*AddonService, *mocks.MockContractStore, *mocks.MockAddonStore) {
	ctrl := gomock.NewController(t)
	contracts := mocks.NewMockContractStore(ctrl)
	addons := mocks.NewMockAddonStore(ctrl)
	svc := NewAddonService(contracts, addons, zerolog.Nop())
	svc.now = fixedClock(time.Date(2026, 4, 2, 10, 0, 0, 0, time.UTC))
	return svc, contracts, addons
}

func TestAddonRejectionReviewFlow(t *testing.T) {
	svc, contracts, addons := newAddonFixture(t)
	admin := adminPrincipal()
	contractorID := uuid.New()
	contractor := contractorPrincipal(contractorID)
	contract := testContract(admin, contractorID)

	addon := model.PlanAddon{
		ID:              uuid.New(),
		ContractID:      contract.ID,
		NewPlanName:     "Plano Pro",
		NewMonthlyValue: 500,
		Status:          model.AddonStatusProposed,
	}

	contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil).AnyTimes()

	// contractor rejects
	addons.EXPECT().GetAddon(gomock.Any(), addon.ID).Return(&addon, nil)
	addons.EXPECT().MarkRejected(gomock.Any(), addon.ID, "valor incorreto", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, reason string, at time.Time) (bool, error) {
			pending := model.ReviewStatusPending
			addon.Status = model.AddonStatusRejected
			addon.RejectionReason = &reason
			addon.RejectedAt = &at
			addon.ReviewStatus = &pending
			return true, nil
		})
	addons.EXPECT().GetAddon(gomock.Any(), addon.ID).DoAndReturn(func(_ context.Context, _ uuid.UUID) (*model.PlanAddon, error) {
		copied := addon
		return &copied, nil
	})

	rejected, err := svc.Reject(ctx, contractor, addon.ID, "  valor incorreto ")
	if err != nil {
		t.Fatalf("reject: %v", err)
	}
	if rejected.Rejection == nil || rejected.Rejection.Title != "Rejeição em Análise" {
		t.Fatalf("expected pending rejection view, got %+v", rejected.Rejection)
	}

	// admin approves the rejection
	addons.EXPECT().GetAddon(gomock.Any(), addon.ID).DoAndReturn(func(_ context.Context, _ uuid.UUID) (*model.PlanAddon, error) {
		copied := addon
		return &copied, nil
	})
	addons.EXPECT().SaveReview(gomock.Any(), addon.ID, model.ReviewStatusApproved, "ajuste será revisto", admin.UserID, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ uuid.UUID, status model.ReviewStatus, explanation string, reviewer uuid.UUID, at time.Time) (bool, error) {
			addon.ReviewStatus = &status
			addon.ReviewExplanation = &explanation
			addon.ReviewedByUserID = &reviewer
			addon.ReviewedAt = &at
			return true, nil
		})
	addons.EXPECT().GetAddon(gomock.Any(), addon.ID).DoAndReturn(func(_ context.Context, _ uuid.UUID) (*model.PlanAddon, error) {
		copied := addon
		return &copied, nil
	})

	reviewed, err := svc.Review(ctx, admin, addon.ID, ReviewInput{
		Decision:    model.ReviewStatusApproved,
		Explanation: "ajuste será revisto",
	})
	if err != nil {
		t.Fatalf("review: %v", err)
	}
	view := reviewed.Rejection
	if view == nil {
		t.Fatalf("expected rejection view")
	}
	if view.Title != "Rejeição Aprovada" || view.Explanation != "ajuste será revisto" || view.OriginalReason != "valor incorreto" {
		t.Fatalf("unexpected rejection view: %+v", view)
	}
}

func TestAddonReject(t *testing.T) {
	t.Run("reason is required", func(t *testing.T) {
		svc, _, _ := newAddonFixture(t)
		_, err := svc.Reject(ctx, contractorPrincipal(uuid.New()), uuid.New(), "   ")
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("admin cannot reject", func(t *testing.T) {
		svc, contracts, addons := newAddonFixture(t)
		admin := adminPrincipal()
		contract := testContract(admin, uuid.New())
		addon := &model.PlanAddon{ID: uuid.New(), ContractID: contract.ID, Status: model.AddonStatusProposed}
		addons.EXPECT().GetAddon(gomock.Any(), addon.ID).Return(addon, nil)
		contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)

		_, err := svc.Reject(ctx, admin, addon.ID, "valor incorreto")
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})

	t.Run("already decided", func(t *testing.T) {
		svc, contracts, addons := newAddonFixture(t)
		contractorID := uuid.New()
		contract := testContract(adminPrincipal(), contractorID)
		addon := &model.PlanAddon{ID: uuid.New(), ContractID: contract.ID, Status: model.AddonStatusAccepted}
		addons.EXPECT().GetAddon(gomock.Any(), addon.ID).Return(addon, nil)
		contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		addons.EXPECT().MarkRejected(gomock.Any(), addon.ID, "valor incorreto", gomock.Any()).Return(false, nil)

		_, err := svc.Reject(ctx, contractorPrincipal(contractorID), addon.ID, "valor incorreto")
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}

func TestAddonAcceptUpdatesPlan(t *testing.T) {
	svc, contracts, addons := newAddonFixture(t)
	contractorID := uuid.New()
	contract := testContract(adminPrincipal(), contractorID)
	addon := &model.PlanAddon{ID: uuid.New(), ContractID: contract.ID, NewPlanName: "Plano Pro", NewMonthlyValue: 500, Status: model.AddonStatusProposed}

	addons.EXPECT().GetAddon(gomock.Any(), addon.ID).Return(addon, nil)
	contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
	addons.EXPECT().MarkAccepted(gomock.Any(), addon.ID).Return(true, nil)
	contracts.EXPECT().UpdatePlan(gomock.Any(), contract.ID, "Plano Pro", 500.0).Return(nil)
	accepted := *addon
	accepted.Status = model.AddonStatusAccepted
	addons.EXPECT().GetAddon(gomock.Any(), addon.ID).Return(&accepted, nil)

	view, err := svc.Accept(ctx, contractorPrincipal(contractorID), addon.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if view.Status != model.AddonStatusAccepted || view.Rejection != nil {
		t.Fatalf("unexpected view: %+v", view)
	}
}

func TestAddonReview(t *testing.T) {
	t.Run("explanation is required", func(t *testing.T) {
		svc, _, _ := newAddonFixture(t)
		_, err := svc.Review(ctx, adminPrincipal(), uuid.New(), ReviewInput{Decision: model.ReviewStatusRejected})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("pending is not a decision", func(t *testing.T) {
		svc, _, _ := newAddonFixture(t)
		_, err := svc.Review(ctx, adminPrincipal(), uuid.New(), ReviewInput{Decision: model.ReviewStatusPending, Explanation: "x"})
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("review not pending", func(t *testing.T) {
		svc, contracts, addons := newAddonFixture(t)
		admin := adminPrincipal()
		contract := testContract(admin, uuid.New())
		addon := &model.PlanAddon{ID: uuid.New(), ContractID: contract.ID, Status: model.AddonStatusProposed}
		addons.EXPECT().GetAddon(gomock.Any(), addon.ID).Return(addon, nil)
		contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		addons.EXPECT().SaveReview(gomock.Any(), addon.ID, model.ReviewStatusRejected, "mantido", admin.UserID, gomock.Any()).Return(false, nil)

		_, err := svc.Review(ctx, admin, addon.ID, ReviewInput{Decision: model.ReviewStatusRejected, Explanation: "mantido"})
		if !errors.Is(err, ErrConflict) {
			t.Fatalf("expected ErrConflict, got %v", err)
		}
	})
}
