package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/nurpe/contract-manager/internal/model"
)

// SignatureRepository keeps the two independent signature facts of a
// contract: the contractor's signed record and the company's admin signature.
type SignatureRepository struct {
	db *gorm.DB
}

func NewSignatureRepository(db *gorm.DB) *SignatureRepository {
	return &SignatureRepository{db: db}
}

func (r *SignatureRepository) HasActiveContractorSignature(ctx context.Context, contractID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM signed_contracts
			WHERE contract_id = ? AND cancelled = FALSE
		)
	`, contractID).Scan(&exists).Error
	return exists, err
}

func (r *SignatureRepository) HasCompanySignature(ctx context.Context, contractID uuid.UUID) (bool, error) {
	var exists bool
	err := r.db.WithContext(ctx).Raw(`
		SELECT EXISTS (
			SELECT 1 FROM admin_signatures WHERE contract_id = ?
		)
	`, contractID).Scan(&exists).Error
	return exists, err
}

// ActiveMethod returns the method of the active contractor signature, nil when
// the contractor has not signed.
func (r *SignatureRepository) ActiveMethod(ctx context.Context, contractID uuid.UUID) (*model.SignatureMethod, error) {
	var method string
	err := r.db.WithContext(ctx).Raw(`
		SELECT method
		FROM signed_contracts
		WHERE contract_id = ? AND cancelled = FALSE
		ORDER BY signed_at DESC
		LIMIT 1
	`, contractID).Scan(&method).Error
	if err != nil {
		return nil, err
	}
	if method == "" {
		return nil, nil
	}
	m := model.SignatureMethod(method)
	return &m, nil
}

const signedRecordColumns = `id, contract_id, contractor_id, signer_name, signer_email, method, fingerprint, cancelled, signed_at`

func (r *SignatureRepository) CreateSignedRecord(ctx context.Context, rec model.SignedRecord) (*model.SignedRecord, error) {
	return insertSignedRecord(r.db.WithContext(ctx), rec)
}

func insertSignedRecord(tx *gorm.DB, rec model.SignedRecord) (*model.SignedRecord, error) {
	var saved model.SignedRecord
	err := tx.Raw(`
		INSERT INTO signed_contracts (contract_id, contractor_id, signer_name, signer_email, method, fingerprint, signed_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		RETURNING `+signedRecordColumns,
		rec.ContractID, rec.ContractorID, rec.SignerName, rec.SignerEmail, rec.Method, rec.Fingerprint, rec.SignedAt,
	).Scan(&saved).Error
	if err != nil {
		return nil, fmt.Errorf("insert signed record: %w", err)
	}
	return &saved, nil
}

// CancelContractorSignature marks every active signed record of the contract
// as cancelled and reports how many were affected.
func (r *SignatureRepository) CancelContractorSignature(ctx context.Context, contractID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).Exec(`
		UPDATE signed_contracts SET cancelled = TRUE
		WHERE contract_id = ? AND cancelled = FALSE
	`, contractID)
	return result.RowsAffected, result.Error
}

func (r *SignatureRepository) CreateAdminSignature(ctx context.Context, sig model.AdminSignature) (*model.AdminSignature, error) {
	return insertAdminSignature(r.db.WithContext(ctx), sig)
}

func insertAdminSignature(tx *gorm.DB, sig model.AdminSignature) (*model.AdminSignature, error) {
	var saved model.AdminSignature
	err := tx.Raw(`
		INSERT INTO admin_signatures (contract_id, admin_user_id, signer_name, signed_at)
		VALUES (?, ?, ?, ?)
		RETURNING id, contract_id, admin_user_id, signer_name, signed_at
	`, sig.ContractID, sig.AdminUserID, sig.SignerName, sig.SignedAt).Scan(&saved).Error
	if err != nil {
		return nil, fmt.Errorf("insert admin signature: %w", err)
	}
	return &saved, nil
}

// AttachExternalSignature records a signature collected on an external
// platform. The attachment, the contractor's signed record and the company
// signature are written together or not at all. A nil admin keeps the
// company signature already on file.
func (r *SignatureRepository) AttachExternalSignature(
	ctx context.Context,
	ext model.ExternalSignature,
	signed model.SignedRecord,
	admin *model.AdminSignature,
) (*model.ExternalSignature, error) {
	var saved model.ExternalSignature
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Raw(`
			INSERT INTO external_signatures (
				contract_id,
				document_id,
				public_id,
				signer_name,
				signer_email,
				signed_at,
				notes,
				file_key,
				uploaded_by
			) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id, contract_id, document_id, public_id, signer_name, signer_email, signed_at, notes, file_key, uploaded_by, created_at
		`,
			ext.ContractID,
			ext.DocumentID,
			ext.PublicID,
			ext.SignerName,
			ext.SignerEmail,
			ext.SignedAt,
			ext.Notes,
			ext.FileKey,
			ext.UploadedBy,
		).Scan(&saved).Error; err != nil {
			return fmt.Errorf("insert external signature: %w", err)
		}
		if _, err := insertSignedRecord(tx, signed); err != nil {
			return err
		}
		if admin == nil {
			return nil
		}
		if _, err := insertAdminSignature(tx, *admin); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

func (r *SignatureRepository) ListExternalSignatures(ctx context.Context, contractID uuid.UUID) ([]model.ExternalSignature, error) {
	var items []model.ExternalSignature
	if err := r.db.WithContext(ctx).Raw(`
		SELECT id, contract_id, document_id, public_id, signer_name, signer_email, signed_at, notes, file_key, uploaded_by, created_at
		FROM external_signatures
		WHERE contract_id = ?
		ORDER BY created_at DESC
	`, contractID).Scan(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}
