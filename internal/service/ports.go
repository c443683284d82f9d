package service

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/nurpe/contract-manager/internal/geo"
	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/repository"
)

type SettingsStore interface {
	GetVehicleProfile(ctx context.Context, ownerID uuid.UUID) (*model.VehicleProfile, error)
	UpsertVehicleProfile(ctx context.Context, p model.VehicleProfile) (*model.VehicleProfile, error)
	ListEmployees(ctx context.Context, ownerID uuid.UUID) ([]model.EmployeeCost, error)
	GetEmployee(ctx context.Context, ownerID, id uuid.UUID) (*model.EmployeeCost, error)
	CreateEmployee(ctx context.Context, e model.EmployeeCost) (*model.EmployeeCost, error)
	UpdateEmployee(ctx context.Context, e model.EmployeeCost) (*model.EmployeeCost, error)
	ListServices(ctx context.Context, ownerID uuid.UUID) ([]model.TechnicalVisitService, error)
	GetServices(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]model.TechnicalVisitService, error)
	CreateService(ctx context.Context, s model.TechnicalVisitService) (*model.TechnicalVisitService, error)
	UpdateService(ctx context.Context, s model.TechnicalVisitService) (*model.TechnicalVisitService, error)
}

type ContractStore interface {
	GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error)
	ListContracts(ctx context.Context, filter repository.ContractFilter) ([]model.Contract, error)
	GetContractor(ctx context.Context, id uuid.UUID) (*model.Contractor, error)
	CreateContract(ctx context.Context, c model.Contract) (*model.Contract, error)
	UpdatePlan(ctx context.Context, id uuid.UUID, planName string, monthlyValue float64) error
}

type SignatureStore interface {
	HasActiveContractorSignature(ctx context.Context, contractID uuid.UUID) (bool, error)
	HasCompanySignature(ctx context.Context, contractID uuid.UUID) (bool, error)
	ActiveMethod(ctx context.Context, contractID uuid.UUID) (*model.SignatureMethod, error)
	CreateSignedRecord(ctx context.Context, rec model.SignedRecord) (*model.SignedRecord, error)
	CancelContractorSignature(ctx context.Context, contractID uuid.UUID) (int64, error)
	CreateAdminSignature(ctx context.Context, sig model.AdminSignature) (*model.AdminSignature, error)
	AttachExternalSignature(ctx context.Context, ext model.ExternalSignature, signed model.SignedRecord, admin *model.AdminSignature) (*model.ExternalSignature, error)
	ListExternalSignatures(ctx context.Context, contractID uuid.UUID) ([]model.ExternalSignature, error)
}

type AddonStore interface {
	CreateAddon(ctx context.Context, a model.PlanAddon) (*model.PlanAddon, error)
	GetAddon(ctx context.Context, id uuid.UUID) (*model.PlanAddon, error)
	ListAddons(ctx context.Context, contractID uuid.UUID) ([]model.PlanAddon, error)
	MarkAccepted(ctx context.Context, id uuid.UUID) (bool, error)
	MarkRejected(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error)
	SaveReview(ctx context.Context, id uuid.UUID, status model.ReviewStatus, explanation string, reviewer uuid.UUID, at time.Time) (bool, error)
}

type RouteResolver interface {
	Resolve(ctx context.Context, origin, destination string, roundTrip bool) (model.Route, error)
	ResolveBatch(ctx context.Context, origin string, destinations []model.Destination, roundTrip bool) ([]geo.BatchItem, error)
}

type AddressSuggester interface {
	Suggest(ctx context.Context, query string) model.Suggestions
}

type Geocoder interface {
	Geocode(ctx context.Context, address string) (model.GeoPoint, error)
}

type FileStorage interface {
	Put(ctx context.Context, key, contentType string, body []byte) error
	Delete(ctx context.Context, key string) error
}

// DocumentRenderer renders a quote document to a file format.
type DocumentRenderer interface {
	Render(doc model.QuoteDocument) ([]byte, error)
}
