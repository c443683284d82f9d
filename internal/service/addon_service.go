package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/contract-manager/internal/model"
)

// AddonService runs plan-change addons: an admin proposes, the contractor
// accepts or rejects with a reason, and an admin reviews the rejection.
type AddonService struct {
	contracts ContractStore
	addons    AddonStore
	now       func() time.Time
	log       zerolog.Logger
}

func NewAddonService(contracts ContractStore, addons AddonStore, log zerolog.Logger) *AddonService {
	return &AddonService{
		contracts: contracts,
		addons:    addons,
		now:       time.Now,
		log:       log,
	}
}

// AddonView is an addon as listed to either party. Rejection is set once the
// contractor has rejected it.
type AddonView struct {
	model.PlanAddon
	Rejection *model.RejectionView `json:"rejection,omitempty"`
}

func newAddonView(addon model.PlanAddon) AddonView {
	view := AddonView{PlanAddon: addon}
	if rejection, ok := addon.RejectionView(); ok {
		view.Rejection = &rejection
	}
	return view
}

type ProposeAddonInput struct {
	Description     string
	NewPlanName     string
	NewMonthlyValue float64
}

func (s *AddonService) Propose(ctx context.Context, principal model.Principal, contractID uuid.UUID, input ProposeAddonInput) (*AddonView, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if _, err := loadContract(ctx, s.contracts, principal, contractID); err != nil {
		return nil, err
	}
	planName := strings.TrimSpace(input.NewPlanName)
	if planName == "" {
		return nil, fmt.Errorf("%w: new_plan_name is required", ErrInvalidInput)
	}
	if input.NewMonthlyValue <= 0 {
		return nil, fmt.Errorf("%w: new_monthly_value must be greater than zero", ErrInvalidInput)
	}

	addon, err := s.addons.CreateAddon(ctx, model.PlanAddon{
		ContractID:      contractID,
		Description:     strings.TrimSpace(input.Description),
		NewPlanName:     planName,
		NewMonthlyValue: input.NewMonthlyValue,
		Status:          model.AddonStatusProposed,
		CreatedByUserID: principal.UserID,
	})
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("contract_id", contractID.String()).
		Str("addon_id", addon.ID.String()).
		Msg("plan addon proposed")
	view := newAddonView(*addon)
	return &view, nil
}

func (s *AddonService) List(ctx context.Context, principal model.Principal, contractID uuid.UUID) ([]AddonView, error) {
	if _, err := loadContract(ctx, s.contracts, principal, contractID); err != nil {
		return nil, err
	}
	addons, err := s.addons.ListAddons(ctx, contractID)
	if err != nil {
		return nil, err
	}
	views := make([]AddonView, 0, len(addons))
	for _, addon := range addons {
		views = append(views, newAddonView(addon))
	}
	return views, nil
}

// Accept applies the proposed plan to the contract.
func (s *AddonService) Accept(ctx context.Context, principal model.Principal, addonID uuid.UUID) (*AddonView, error) {
	addon, contract, err := s.load(ctx, principal, addonID)
	if err != nil {
		return nil, err
	}
	if !principal.ActsFor(contract.ContractorID) {
		return nil, ErrPermissionDenied
	}
	updated, err := s.addons.MarkAccepted(ctx, addon.ID)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: addon is %s", ErrConflict, addon.Status)
	}
	if err := s.contracts.UpdatePlan(ctx, contract.ID, addon.NewPlanName, addon.NewMonthlyValue); err != nil {
		return nil, err
	}
	s.log.Info().
		Str("addon_id", addon.ID.String()).
		Str("plan", addon.NewPlanName).
		Msg("plan addon accepted")
	return s.reload(ctx, addon.ID)
}

// Reject records the contractor's reason and opens a pending review.
func (s *AddonService) Reject(ctx context.Context, principal model.Principal, addonID uuid.UUID, reason string) (*AddonView, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, fmt.Errorf("%w: rejection reason is required", ErrInvalidInput)
	}
	addon, contract, err := s.load(ctx, principal, addonID)
	if err != nil {
		return nil, err
	}
	if !principal.ActsFor(contract.ContractorID) {
		return nil, ErrPermissionDenied
	}
	updated, err := s.addons.MarkRejected(ctx, addon.ID, reason, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: addon is %s", ErrConflict, addon.Status)
	}
	s.log.Info().Str("addon_id", addon.ID.String()).Msg("plan addon rejected, review pending")
	return s.reload(ctx, addon.ID)
}

type ReviewInput struct {
	Decision    model.ReviewStatus
	Explanation string
}

// Review settles a pending rejection as approved or rejected.
func (s *AddonService) Review(ctx context.Context, principal model.Principal, addonID uuid.UUID, input ReviewInput) (*AddonView, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if input.Decision != model.ReviewStatusApproved && input.Decision != model.ReviewStatusRejected {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", ErrInvalidInput)
	}
	explanation := strings.TrimSpace(input.Explanation)
	if explanation == "" {
		return nil, fmt.Errorf("%w: explanation is required", ErrInvalidInput)
	}
	addon, _, err := s.load(ctx, principal, addonID)
	if err != nil {
		return nil, err
	}
	updated, err := s.addons.SaveReview(ctx, addon.ID, input.Decision, explanation, principal.UserID, s.now().UTC())
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, fmt.Errorf("%w: addon has no pending rejection review", ErrConflict)
	}
	s.log.Info().
		Str("addon_id", addon.ID.String()).
		Str("decision", string(input.Decision)).
		Msg("addon rejection reviewed")
	return s.reload(ctx, addon.ID)
}

func (s *AddonService) load(ctx context.Context, principal model.Principal, addonID uuid.UUID) (*model.PlanAddon, *model.Contract, error) {
	if addonID == uuid.Nil {
		return nil, nil, fmt.Errorf("%w: addon id is required", ErrInvalidInput)
	}
	addon, err := s.addons.GetAddon(ctx, addonID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrNotFound
		}
		return nil, nil, err
	}
	contract, err := loadContract(ctx, s.contracts, principal, addon.ContractID)
	if err != nil {
		return nil, nil, err
	}
	return addon, contract, nil
}

func (s *AddonService) reload(ctx context.Context, addonID uuid.UUID) (*AddonView, error) {
	addon, err := s.addons.GetAddon(ctx, addonID)
	if err != nil {
		return nil, err
	}
	view := newAddonView(*addon)
	return &view, nil
}
