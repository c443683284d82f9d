package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contract-manager/internal/model"
)

type AddonRepository struct {
	db *gorm.DB
}

func NewAddonRepository(db *gorm.DB) *AddonRepository {
	return &AddonRepository{db: db}
}

const addonColumns = `
	id,
	contract_id,
	description,
	new_plan_name,
	new_monthly_value,
	status,
	rejection_reason,
	rejected_at,
	review_status,
	review_explanation,
	reviewed_by_user_id,
	reviewed_at,
	created_by_user_id,
	created_at
`

func (r *AddonRepository) CreateAddon(ctx context.Context, a model.PlanAddon) (*model.PlanAddon, error) {
	var saved model.PlanAddon
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO plan_addons (contract_id, description, new_plan_name, new_monthly_value, created_by_user_id)
		VALUES (?, ?, ?, ?, ?)
		RETURNING`+addonColumns,
		a.ContractID, a.Description, a.NewPlanName, a.NewMonthlyValue, a.CreatedByUserID,
	).Scan(&saved).Error
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *AddonRepository) GetAddon(ctx context.Context, id uuid.UUID) (*model.PlanAddon, error) {
	var addon model.PlanAddon
	if err := r.db.WithContext(ctx).Raw(`
		SELECT`+addonColumns+`
		FROM plan_addons
		WHERE id = ?
	`, id).Scan(&addon).Error; err != nil {
		return nil, err
	}
	if addon.ID == uuid.Nil {
		return nil, gorm.ErrRecordNotFound
	}
	return &addon, nil
}

func (r *AddonRepository) ListAddons(ctx context.Context, contractID uuid.UUID) ([]model.PlanAddon, error) {
	var addons []model.PlanAddon
	if err := r.db.WithContext(ctx).Raw(`
		SELECT`+addonColumns+`
		FROM plan_addons
		WHERE contract_id = ?
		ORDER BY created_at DESC
	`, contractID).Scan(&addons).Error; err != nil {
		return nil, err
	}
	return addons, nil
}

// MarkAccepted moves a proposed addon to ACCEPTED. It returns false when the
// addon was no longer in PROPOSED.
func (r *AddonRepository) MarkAccepted(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE plan_addons SET status = 'ACCEPTED'
		WHERE id = ? AND status = 'PROPOSED'
	`, id)
	return result.RowsAffected > 0, result.Error
}

// MarkRejected stores the contractor's reason and opens the review.
func (r *AddonRepository) MarkRejected(ctx context.Context, id uuid.UUID, reason string, at time.Time) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE plan_addons
		SET status = 'REJECTED',
			rejection_reason = ?,
			rejected_at = ?,
			review_status = 'pending'
		WHERE id = ? AND status = 'PROPOSED'
	`, reason, at, id)
	return result.RowsAffected > 0, result.Error
}

// SaveReview settles a pending rejection review.
func (r *AddonRepository) SaveReview(
	ctx context.Context,
	id uuid.UUID,
	status model.ReviewStatus,
	explanation string,
	reviewer uuid.UUID,
	at time.Time,
) (bool, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE plan_addons
		SET review_status = ?,
			review_explanation = ?,
			reviewed_by_user_id = ?,
			reviewed_at = ?
		WHERE id = ? AND status = 'REJECTED' AND review_status = 'pending'
	`, string(status), explanation, reviewer, at, id)
	return result.RowsAffected > 0, result.Error
}
