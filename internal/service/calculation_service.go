package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/contract-manager/internal/config"
	"github.com/nurpe/contract-manager/internal/geo"
	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/pricing"
)

// CalculationService prices technical visits: it resolves every destination,
// composes a breakdown for it and opens a quote session the user can edit.
type CalculationService struct {
	settings  SettingsStore
	resolver  RouteResolver
	sessions  *pricing.SessionStore
	workHours float64
	log       zerolog.Logger
}

func NewCalculationService(
	settings SettingsStore,
	resolver RouteResolver,
	sessions *pricing.SessionStore,
	cfg config.CalculationConfig,
	log zerolog.Logger,
) *CalculationService {
	workHours := cfg.WorkHours
	if workHours <= 0 {
		workHours = pricing.DefaultWorkHours
	}
	return &CalculationService{
		settings:  settings,
		resolver:  resolver,
		sessions:  sessions,
		workHours: workHours,
		log:       log,
	}
}

type CalculateInput struct {
	Principal    model.Principal
	Origin       string
	Destinations []model.Destination
	RoundTrip    bool
	Meals        model.Meals
	Margins      model.Margins
}

type CalculationResult struct {
	Quotes   []model.QuoteView `json:"quotes"`
	Warnings []string          `json:"warnings"`
}

func (s *CalculationService) Calculate(ctx context.Context, input CalculateInput) (*CalculationResult, error) {
	if !input.Principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if len(input.Destinations) == 0 {
		return nil, fmt.Errorf("%w: at least one destination is required", ErrInvalidInput)
	}
	ownerID := input.Principal.UserID

	vehicle, err := s.settings.GetVehicleProfile(ctx, ownerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: vehicle settings are not configured", ErrInvalidInput)
		}
		return nil, err
	}

	result := &CalculationResult{Warnings: []string{}}

	employee, err := s.defaultEmployee(ctx, ownerID, vehicle.DefaultEmployeeID)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		result.Warnings = append(result.Warnings, "no default employee configured, labor cost omitted")
	}

	selections, err := s.serviceSelections(ctx, ownerID, input.Destinations)
	if err != nil {
		return nil, err
	}

	items, err := s.resolver.ResolveBatch(ctx, input.Origin, input.Destinations, input.RoundTrip)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidAddress) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return nil, err
	}

	now := s.sessions.Now()
	result.Quotes = make([]model.QuoteView, 0, len(items))
	for i, item := range items {
		label := quoteLabel(item.Destination, i)
		if item.Route.Distance.IsSimulated() {
			result.Warnings = append(result.Warnings, fmt.Sprintf("%s: distance is a simulated estimate", label))
		}
		sess := pricing.NewSession(ownerID, label, item.Route, pricing.Input{
			Vehicle:   *vehicle,
			Distance:  item.Route.Distance,
			Toll:      item.Route.Toll,
			Employee:  employee,
			Services:  selections[i],
			Meals:     input.Meals,
			Margins:   input.Margins,
			WorkHours: s.workHours,
		}, now)
		s.sessions.Put(sess)
		result.Quotes = append(result.Quotes, sess.View())
	}

	s.log.Info().
		Str("owner_id", ownerID.String()).
		Int("destinations", len(result.Quotes)).
		Bool("round_trip", input.RoundTrip).
		Msg("calculation completed")
	return result, nil
}

// ResolveRoute resolves a single origin/destination pair without pricing it.
func (s *CalculationService) ResolveRoute(ctx context.Context, principal model.Principal, origin, destination string, roundTrip bool) (model.Route, error) {
	if !principal.IsAdmin() {
		return model.Route{}, ErrPermissionDenied
	}
	route, err := s.resolver.Resolve(ctx, origin, destination, roundTrip)
	if err != nil {
		if errors.Is(err, geo.ErrInvalidAddress) {
			return model.Route{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
		return model.Route{}, err
	}
	return route, nil
}

// defaultEmployee returns the employee labor is priced with, nil when none is
// configured.
func (s *CalculationService) defaultEmployee(ctx context.Context, ownerID uuid.UUID, id *uuid.UUID) (*model.EmployeeCost, error) {
	if id == nil {
		return nil, nil
	}
	return activeEmployee(ctx, s.settings, ownerID, *id)
}

// serviceSelections loads the services requested for each destination, in
// destination order.
func (s *CalculationService) serviceSelections(ctx context.Context, ownerID uuid.UUID, destinations []model.Destination) ([][]model.ServiceSelection, error) {
	var ids []uuid.UUID
	seen := make(map[uuid.UUID]struct{})
	for _, dest := range destinations {
		for _, req := range dest.Services {
			if req.Quantity <= 0 {
				return nil, fmt.Errorf("%w: service quantity must be at least 1", ErrInvalidInput)
			}
			if _, ok := seen[req.ServiceID]; ok {
				continue
			}
			seen[req.ServiceID] = struct{}{}
			ids = append(ids, req.ServiceID)
		}
	}

	byID := make(map[uuid.UUID]model.TechnicalVisitService, len(ids))
	if len(ids) > 0 {
		services, err := s.settings.GetServices(ctx, ownerID, ids)
		if err != nil {
			return nil, err
		}
		for _, svc := range services {
			byID[svc.ID] = svc
		}
	}

	selections := make([][]model.ServiceSelection, len(destinations))
	for i, dest := range destinations {
		for _, req := range dest.Services {
			svc, ok := byID[req.ServiceID]
			if !ok {
				return nil, fmt.Errorf("%w: service %s does not exist", ErrInvalidInput, req.ServiceID)
			}
			if !svc.IsActive {
				return nil, fmt.Errorf("%w: service %q is inactive", ErrInvalidInput, svc.Name)
			}
			selections[i] = append(selections[i], model.ServiceSelection{Service: svc, Quantity: req.Quantity})
		}
	}
	return selections, nil
}

func quoteLabel(dest model.Destination, index int) string {
	if label := strings.TrimSpace(dest.Label); label != "" {
		return label
	}
	return fmt.Sprintf("Destino %d", index+1)
}
