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
)

// SettingsService manages the vehicle, employee and service settings an
// administrator prices visits with. Settings are scoped to the admin user.
type SettingsService struct {
	store SettingsStore
	log   zerolog.Logger
}

func NewSettingsService(store SettingsStore, log zerolog.Logger) *SettingsService {
	return &SettingsService{store: store, log: log}
}

func (s *SettingsService) GetVehicle(ctx context.Context, principal model.Principal) (*model.VehicleProfile, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	profile, err := s.store.GetVehicleProfile(ctx, principal.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *SettingsService) SaveVehicle(ctx context.Context, principal model.Principal, profile model.VehicleProfile) (*model.VehicleProfile, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if profile.AnnualMileage <= 0 {
		return nil, fmt.Errorf("%w: annual_mileage must be greater than zero", ErrInvalidInput)
	}
	for name, value := range map[string]float64{
		"purchase_value":     profile.PurchaseValue,
		"current_value":      profile.CurrentValue,
		"annual_ipva":        profile.AnnualIPVA,
		"annual_insurance":   profile.AnnualInsurance,
		"annual_maintenance": profile.AnnualMaintenance,
		"depreciation_rate":  profile.DepreciationRate,
		"fuel_consumption":   profile.FuelConsumption,
		"fuel_price":         profile.FuelPrice,
	} {
		if value < 0 {
			return nil, fmt.Errorf("%w: %s must not be negative", ErrInvalidInput, name)
		}
	}
	if profile.DefaultEmployeeID != nil {
		if _, err := activeEmployee(ctx, s.store, principal.UserID, *profile.DefaultEmployeeID); err != nil {
			return nil, err
		}
	}

	profile.OwnerID = principal.UserID
	saved, err := s.store.UpsertVehicleProfile(ctx, profile)
	if err != nil {
		return nil, err
	}
	s.log.Info().
		Str("owner_id", principal.UserID.String()).
		Bool("default_employee", saved.DefaultEmployeeID != nil).
		Msg("vehicle settings saved")
	return saved, nil
}

// activeEmployee loads the employee and reports a missing or inactive one as
// invalid input.
func activeEmployee(ctx context.Context, store SettingsStore, ownerID, id uuid.UUID) (*model.EmployeeCost, error) {
	employee, err := store.GetEmployee(ctx, ownerID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: default employee %s does not exist", ErrInvalidInput, id)
		}
		return nil, err
	}
	if !employee.IsActive {
		return nil, fmt.Errorf("%w: default employee %s is inactive", ErrInvalidInput, id)
	}
	return employee, nil
}

func (s *SettingsService) ListEmployees(ctx context.Context, principal model.Principal) ([]model.EmployeeCost, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.store.ListEmployees(ctx, principal.UserID)
}

func (s *SettingsService) CreateEmployee(ctx context.Context, principal model.Principal, employee model.EmployeeCost) (*model.EmployeeCost, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if err := validateEmployee(&employee); err != nil {
		return nil, err
	}
	employee.OwnerID = principal.UserID
	return s.store.CreateEmployee(ctx, employee)
}

func (s *SettingsService) UpdateEmployee(ctx context.Context, principal model.Principal, employee model.EmployeeCost) (*model.EmployeeCost, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if employee.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: employee id is required", ErrInvalidInput)
	}
	if err := validateEmployee(&employee); err != nil {
		return nil, err
	}
	employee.OwnerID = principal.UserID
	saved, err := s.store.UpdateEmployee(ctx, employee)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func validateEmployee(e *model.EmployeeCost) error {
	e.Name = strings.TrimSpace(e.Name)
	if e.Name == "" {
		return fmt.Errorf("%w: employee name is required", ErrInvalidInput)
	}
	if e.Salary < 0 || e.Benefits < 0 || e.Taxes < 0 {
		return fmt.Errorf("%w: employee costs must not be negative", ErrInvalidInput)
	}
	return nil
}

func (s *SettingsService) ListServices(ctx context.Context, principal model.Principal) ([]model.TechnicalVisitService, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	return s.store.ListServices(ctx, principal.UserID)
}

func (s *SettingsService) CreateService(ctx context.Context, principal model.Principal, svc model.TechnicalVisitService) (*model.TechnicalVisitService, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if err := validateVisitService(&svc); err != nil {
		return nil, err
	}
	svc.OwnerID = principal.UserID
	return s.store.CreateService(ctx, svc)
}

func (s *SettingsService) UpdateService(ctx context.Context, principal model.Principal, svc model.TechnicalVisitService) (*model.TechnicalVisitService, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if svc.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: service id is required", ErrInvalidInput)
	}
	if err := validateVisitService(&svc); err != nil {
		return nil, err
	}
	svc.OwnerID = principal.UserID
	saved, err := s.store.UpdateService(ctx, svc)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return saved, nil
}

func validateVisitService(svc *model.TechnicalVisitService) error {
	svc.Name = strings.TrimSpace(svc.Name)
	if svc.Name == "" {
		return fmt.Errorf("%w: service name is required", ErrInvalidInput)
	}
	switch svc.PricingType {
	case model.PricingTypeFixed:
		if svc.FixedPrice < 0 {
			return fmt.Errorf("%w: fixed_price must not be negative", ErrInvalidInput)
		}
	case model.PricingTypeHourly:
		if svc.EstimatedHours < 0 {
			return fmt.Errorf("%w: estimated_hours must not be negative", ErrInvalidInput)
		}
	default:
		return fmt.Errorf("%w: pricing_type must be hourly or fixed", ErrInvalidInput)
	}
	return nil
}
