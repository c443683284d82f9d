package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contract-manager/internal/model"
)

// SettingsRepository stores the per-owner inputs of the cost calculation.
type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

const vehicleColumns = `
	id,
	owner_id,
	purchase_value,
	current_value,
	annual_ipva,
	annual_insurance,
	annual_maintenance,
	depreciation_rate,
	annual_mileage,
	fuel_consumption,
	fuel_price,
	default_employee_id,
	updated_at
`

func (r *SettingsRepository) GetVehicleProfile(ctx context.Context, ownerID uuid.UUID) (*model.VehicleProfile, error) {
	var profile model.VehicleProfile
	if err := r.db.WithContext(ctx).Raw(`
		SELECT`+vehicleColumns+`
		FROM vehicle_settings
		WHERE owner_id = ?
		LIMIT 1
	`, ownerID).Scan(&profile).Error; err != nil {
		return nil, err
	}
	if profile.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &profile, nil
}

func (r *SettingsRepository) UpsertVehicleProfile(ctx context.Context, p model.VehicleProfile) (*model.VehicleProfile, error) {
	var saved model.VehicleProfile
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO vehicle_settings (
			owner_id,
			purchase_value,
			current_value,
			annual_ipva,
			annual_insurance,
			annual_maintenance,
			depreciation_rate,
			annual_mileage,
			fuel_consumption,
			fuel_price,
			default_employee_id
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (owner_id) DO UPDATE SET
			purchase_value = EXCLUDED.purchase_value,
			current_value = EXCLUDED.current_value,
			annual_ipva = EXCLUDED.annual_ipva,
			annual_insurance = EXCLUDED.annual_insurance,
			annual_maintenance = EXCLUDED.annual_maintenance,
			depreciation_rate = EXCLUDED.depreciation_rate,
			annual_mileage = EXCLUDED.annual_mileage,
			fuel_consumption = EXCLUDED.fuel_consumption,
			fuel_price = EXCLUDED.fuel_price,
			default_employee_id = EXCLUDED.default_employee_id,
			updated_at = NOW()
		RETURNING`+vehicleColumns,
		p.OwnerID,
		p.PurchaseValue,
		p.CurrentValue,
		p.AnnualIPVA,
		p.AnnualInsurance,
		p.AnnualMaintenance,
		p.DepreciationRate,
		p.AnnualMileage,
		p.FuelConsumption,
		p.FuelPrice,
		p.DefaultEmployeeID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

const employeeColumns = `id, owner_id, name, salary, benefits, taxes, is_active, created_at`

func (r *SettingsRepository) ListEmployees(ctx context.Context, ownerID uuid.UUID) ([]model.EmployeeCost, error) {
	var employees []model.EmployeeCost
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+employeeColumns+`
		FROM employee_costs
		WHERE owner_id = ?
		ORDER BY created_at ASC
	`, ownerID).Scan(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (r *SettingsRepository) GetEmployee(ctx context.Context, ownerID, id uuid.UUID) (*model.EmployeeCost, error) {
	var employee model.EmployeeCost
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+employeeColumns+`
		FROM employee_costs
		WHERE owner_id = ? AND id = ?
		LIMIT 1
	`, ownerID, id).Scan(&employee).Error; err != nil {
		return nil, err
	}
	if employee.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &employee, nil
}

func (r *SettingsRepository) CreateEmployee(ctx context.Context, e model.EmployeeCost) (*model.EmployeeCost, error) {
	var saved model.EmployeeCost
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO employee_costs (owner_id, name, salary, benefits, taxes, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+employeeColumns,
		e.OwnerID, e.Name, e.Salary, e.Benefits, e.Taxes, e.IsActive,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *SettingsRepository) UpdateEmployee(ctx context.Context, e model.EmployeeCost) (*model.EmployeeCost, error) {
	var saved model.EmployeeCost
	err := r.db.WithContext(ctx).Raw(`
		UPDATE employee_costs
		SET name = ?, salary = ?, benefits = ?, taxes = ?, is_active = ?
		WHERE owner_id = ? AND id = ?
		RETURNING `+employeeColumns,
		e.Name, e.Salary, e.Benefits, e.Taxes, e.IsActive, e.OwnerID, e.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}

const serviceColumns = `id, owner_id, name, pricing_type, fixed_price, estimated_hours, is_active, created_at`

func (r *SettingsRepository) ListServices(ctx context.Context, ownerID uuid.UUID) ([]model.TechnicalVisitService, error) {
	var services []model.TechnicalVisitService
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+serviceColumns+`
		FROM technical_visit_services
		WHERE owner_id = ?
		ORDER BY name ASC
	`, ownerID).Scan(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

// GetServices returns the owner's services among ids, in no particular order.
func (r *SettingsRepository) GetServices(ctx context.Context, ownerID uuid.UUID, ids []uuid.UUID) ([]model.TechnicalVisitService, error) {
	if len(ids) == 0 {
		return []model.TechnicalVisitService{}, nil
	}
	var services []model.TechnicalVisitService
	if err := r.db.WithContext(ctx).Raw(`
		SELECT `+serviceColumns+`
		FROM technical_visit_services
		WHERE owner_id = ? AND id IN ?
	`, ownerID, ids).Scan(&services).Error; err != nil {
		return nil, err
	}
	return services, nil
}

func (r *SettingsRepository) CreateService(ctx context.Context, s model.TechnicalVisitService) (*model.TechnicalVisitService, error) {
	var saved model.TechnicalVisitService
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO technical_visit_services (owner_id, name, pricing_type, fixed_price, estimated_hours, is_active)
		VALUES (?, ?, ?, ?, ?, ?)
		RETURNING `+serviceColumns,
		s.OwnerID, s.Name, s.PricingType, s.FixedPrice, s.EstimatedHours, s.IsActive,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *SettingsRepository) UpdateService(ctx context.Context, s model.TechnicalVisitService) (*model.TechnicalVisitService, error) {
	var saved model.TechnicalVisitService
	err := r.db.WithContext(ctx).Raw(`
		UPDATE technical_visit_services
		SET name = ?, pricing_type = ?, fixed_price = ?, estimated_hours = ?, is_active = ?
		WHERE owner_id = ? AND id = ?
		RETURNING `+serviceColumns,
		s.Name, s.PricingType, s.FixedPrice, s.EstimatedHours, s.IsActive, s.OwnerID, s.ID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	if saved.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &saved, nil
}
