package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/repository"
)

type ContractService struct {
	contracts ContractStore
	log       zerolog.Logger
}

func NewContractService(contracts ContractStore, log zerolog.Logger) *ContractService {
	return &ContractService{contracts: contracts, log: log}
}

func (s *ContractService) Create(ctx context.Context, principal model.Principal, contract model.Contract) (*model.Contract, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	contract.Number = strings.TrimSpace(contract.Number)
	contract.Title = strings.TrimSpace(contract.Title)
	contract.PlanName = strings.TrimSpace(contract.PlanName)
	if contract.Number == "" || contract.Title == "" {
		return nil, fmt.Errorf("%w: number and title are required", ErrInvalidInput)
	}
	if contract.ContractorID == uuid.Nil {
		return nil, fmt.Errorf("%w: contractor_id is required", ErrInvalidInput)
	}
	if contract.StartAt.IsZero() {
		return nil, fmt.Errorf("%w: start_at is required", ErrInvalidInput)
	}
	if contract.EndAt != nil && contract.EndAt.Before(contract.StartAt) {
		return nil, fmt.Errorf("%w: end_at must not be before start_at", ErrInvalidInput)
	}
	if contract.MonthlyValue < 0 {
		return nil, fmt.Errorf("%w: monthly_value must not be negative", ErrInvalidInput)
	}
	if _, err := s.contracts.GetContractor(ctx, contract.ContractorID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: contractor %s does not exist", ErrInvalidInput, contract.ContractorID)
		}
		return nil, err
	}

	contract.OwnerID = principal.UserID
	created, err := s.contracts.CreateContract(ctx, contract)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("contract_id", created.ID.String()).
		Str("contractor_id", created.ContractorID.String()).
		Msg("contract created")
	return created, nil
}

func (s *ContractService) Get(ctx context.Context, principal model.Principal, id uuid.UUID) (*model.Contract, error) {
	return loadContract(ctx, s.contracts, principal, id)
}

// List returns the contracts an admin owns, or those of the contractor the
// principal acts for.
func (s *ContractService) List(ctx context.Context, principal model.Principal) ([]model.Contract, error) {
	var filter repository.ContractFilter
	switch {
	case principal.IsAdmin():
		filter.OwnerID = &principal.UserID
	case principal.IsContractor() && principal.ContractorID != nil:
		filter.ContractorID = principal.ContractorID
	default:
		return nil, ErrPermissionDenied
	}
	return s.contracts.ListContracts(ctx, filter)
}

// loadContract fetches a contract the principal may see: its owning admin or
// the contractor party.
func loadContract(ctx context.Context, contracts ContractStore, principal model.Principal, id uuid.UUID) (*model.Contract, error) {
	if id == uuid.Nil {
		return nil, fmt.Errorf("%w: contract id is required", ErrInvalidInput)
	}
	contract, err := contracts.GetContract(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	switch {
	case principal.IsAdmin() && contract.OwnerID == principal.UserID:
		return contract, nil
	case principal.ActsFor(contract.ContractorID):
		return contract, nil
	default:
		return nil, ErrPermissionDenied
	}
}
