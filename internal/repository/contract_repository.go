package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contract-manager/internal/model"
)

type ContractRepository struct {
	db *gorm.DB
}

func NewContractRepository(db *gorm.DB) *ContractRepository {
	return &ContractRepository{db: db}
}

type contractRow struct {
	ID                 uuid.UUID
	OwnerID            uuid.UUID
	ContractorID       uuid.UUID
	Number             string
	Title              string
	PlanName           string
	MonthlyValue       float64
	StartAt            time.Time
	EndAt              *time.Time
	CreatedAt          time.Time
	ContractorName     string
	ContractorDocument string
	ContractorEmail    string
	ContractorPhone    string
	ContractorAddress  string
}

func (row contractRow) toModel() model.Contract {
	return model.Contract{
		ID:           row.ID,
		OwnerID:      row.OwnerID,
		ContractorID: row.ContractorID,
		Number:       row.Number,
		Title:        row.Title,
		PlanName:     row.PlanName,
		MonthlyValue: row.MonthlyValue,
		StartAt:      row.StartAt,
		EndAt:        row.EndAt,
		CreatedAt:    row.CreatedAt,
		Contractor: model.Contractor{
			ID:       row.ContractorID,
			Name:     row.ContractorName,
			Document: row.ContractorDocument,
			Email:    row.ContractorEmail,
			Phone:    row.ContractorPhone,
			Address:  row.ContractorAddress,
		},
	}
}

const contractSelect = `
	SELECT
		c.id,
		c.owner_id,
		c.contractor_id,
		c.number,
		c.title,
		c.plan_name,
		c.monthly_value,
		c.start_at,
		c.end_at,
		c.created_at,
		ct.name AS contractor_name,
		ct.document AS contractor_document,
		ct.email AS contractor_email,
		ct.phone AS contractor_phone,
		ct.address AS contractor_address
	FROM contracts c
	JOIN contractors ct ON ct.id = c.contractor_id
`

func (r *ContractRepository) GetContract(ctx context.Context, id uuid.UUID) (*model.Contract, error) {
	var row contractRow
	if err := r.db.WithContext(ctx).Raw(contractSelect+` WHERE c.id = ?`, id).Scan(&row).Error; err != nil {
		return nil, err
	}
	if row.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	contract := row.toModel()
	return &contract, nil
}

type ContractFilter struct {
	OwnerID      *uuid.UUID
	ContractorID *uuid.UUID
}

func (r *ContractRepository) ListContracts(ctx context.Context, filter ContractFilter) ([]model.Contract, error) {
	query := contractSelect
	var (
		args    []interface{}
		filters []string
	)
	if filter.OwnerID != nil {
		filters = append(filters, "c.owner_id = ?")
		args = append(args, *filter.OwnerID)
	}
	if filter.ContractorID != nil {
		filters = append(filters, "c.contractor_id = ?")
		args = append(args, *filter.ContractorID)
	}
	if len(filters) > 0 {
		query += " WHERE " + strings.Join(filters, " AND ")
	}
	query += " ORDER BY c.created_at DESC"

	var rows []contractRow
	if err := r.db.WithContext(ctx).Raw(query, args...).Scan(&rows).Error; err != nil {
		return nil, err
	}
	contracts := make([]model.Contract, 0, len(rows))
	for _, row := range rows {
		contracts = append(contracts, row.toModel())
	}
	return contracts, nil
}

func (r *ContractRepository) GetContractor(ctx context.Context, id uuid.UUID) (*model.Contractor, error) {
	var contractor model.Contractor
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, name, document, email, phone, address
		FROM contractors
		WHERE id = ?
	`, id).Scan(&contractor).Error; err != nil {
		return nil, err
	}
	if contractor.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &contractor, nil
}

func (r *ContractRepository) CreateContract(ctx context.Context, c model.Contract) (*model.Contract, error) {
	var id uuid.UUID
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO contracts (owner_id, contractor_id, number, title, plan_name, monthly_value, start_at, end_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id
	`, c.OwnerID, c.ContractorID, c.Number, c.Title, c.PlanName, c.MonthlyValue, c.StartAt, c.EndAt).Scan(&id).Error
	if err != nil {
		return nil, fmt.Errorf("insert contract: %w", err)
	}
	return r.GetContract(ctx, id)
}

// UpdatePlan applies an accepted plan change to the contract.
func (r *ContractRepository) UpdatePlan(ctx context.Context, id uuid.UUID, planName string, monthlyValue float64) error {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE contracts SET plan_name = ?, monthly_value = ? WHERE id = ?
	`, planName, monthlyValue, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
