package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/nurpe/contract-manager/internal/model"
)

const pdfMIME = "application/pdf"

// SignatureService tracks the contractor and company signatures of a
// contract. The presented state is always derived from both facts.
type SignatureService struct {
	contracts   ContractStore
	signatures  SignatureStore
	storage     FileStorage
	maxPDFBytes int64
	now         func() time.Time
	log         zerolog.Logger
}

func NewSignatureService(
	contracts ContractStore,
	signatures SignatureStore,
	storage FileStorage,
	maxPDFBytes int64,
	log zerolog.Logger,
) *SignatureService {
	return &SignatureService{
		contracts:   contracts,
		signatures:  signatures,
		storage:     storage,
		maxPDFBytes: maxPDFBytes,
		now:         time.Now,
		log:         log,
	}
}

func (s *SignatureService) Status(ctx context.Context, principal model.Principal, contractID uuid.UUID) (*model.SignatureStatus, error) {
	if _, err := loadContract(ctx, s.contracts, principal, contractID); err != nil {
		return nil, err
	}
	return s.status(ctx, contractID)
}

func (s *SignatureService) status(ctx context.Context, contractID uuid.UUID) (*model.SignatureStatus, error) {
	contractorSigned, err := s.signatures.HasActiveContractorSignature(ctx, contractID)
	if err != nil {
		return nil, err
	}
	companySigned, err := s.signatures.HasCompanySignature(ctx, contractID)
	if err != nil {
		return nil, err
	}
	status := &model.SignatureStatus{
		ContractID:       contractID,
		State:            model.DeriveSignatureState(contractorSigned, companySigned),
		ContractorSigned: contractorSigned,
		CompanySigned:    companySigned,
	}
	if contractorSigned {
		method, err := s.signatures.ActiveMethod(ctx, contractID)
		if err != nil {
			return nil, err
		}
		status.Method = method
	}
	return status, nil
}

type ContractorSignInput struct {
	SignerName  string
	SignerEmail string
}

// SignAsContractor signs the contract with the contractor's digital
// certificate. The certificate is simulated by a SHA-256 fingerprint of the
// contract, the signer and the signing time.
func (s *SignatureService) SignAsContractor(ctx context.Context, principal model.Principal, contractID uuid.UUID, input ContractorSignInput) (*model.SignatureStatus, error) {
	contract, err := loadContract(ctx, s.contracts, principal, contractID)
	if err != nil {
		return nil, err
	}
	if !principal.ActsFor(contract.ContractorID) {
		return nil, ErrPermissionDenied
	}
	name := strings.TrimSpace(input.SignerName)
	email := strings.TrimSpace(input.SignerEmail)
	if name == "" {
		return nil, fmt.Errorf("%w: signer_name is required", ErrInvalidInput)
	}

	signed, err := s.signatures.HasActiveContractorSignature(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if signed {
		return nil, ErrAlreadySigned
	}

	signedAt := s.now().UTC()
	if _, err := s.signatures.CreateSignedRecord(ctx, model.SignedRecord{
		ContractID:   contractID,
		ContractorID: contract.ContractorID,
		SignerName:   name,
		SignerEmail:  email,
		Method:       model.SignatureMethodDigitalCertificate,
		Fingerprint:  Fingerprint(contractID, name, email, signedAt),
		SignedAt:     signedAt,
	}); err != nil {
		return nil, alreadySigned(err)
	}
	s.log.Info().
		Str("contract_id", contractID.String()).
		Str("method", string(model.SignatureMethodDigitalCertificate)).
		Msg("contractor signature recorded")
	return s.status(ctx, contractID)
}

// CancelContractorSignature withdraws the contractor's active signature.
// The company signature, if any, is left in place.
func (s *SignatureService) CancelContractorSignature(ctx context.Context, principal model.Principal, contractID uuid.UUID) (*model.SignatureStatus, error) {
	if _, err := loadContract(ctx, s.contracts, principal, contractID); err != nil {
		return nil, err
	}
	affected, err := s.signatures.CancelContractorSignature(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: contract has no active contractor signature", ErrConflict)
	}
	s.log.Info().
		Str("contract_id", contractID.String()).
		Str("user_id", principal.UserID.String()).
		Msg("contractor signature cancelled")
	return s.status(ctx, contractID)
}

func (s *SignatureService) SignAsCompany(ctx context.Context, principal model.Principal, contractID uuid.UUID, signerName string) (*model.SignatureStatus, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if _, err := loadContract(ctx, s.contracts, principal, contractID); err != nil {
		return nil, err
	}
	signed, err := s.signatures.HasCompanySignature(ctx, contractID)
	if err != nil {
		return nil, err
	}
	if signed {
		return nil, ErrAlreadySigned
	}
	if _, err := s.signatures.CreateAdminSignature(ctx, model.AdminSignature{
		ContractID:  contractID,
		AdminUserID: principal.UserID,
		SignerName:  strings.TrimSpace(signerName),
		SignedAt:    s.now().UTC(),
	}); err != nil {
		return nil, alreadySigned(err)
	}
	s.log.Info().Str("contract_id", contractID.String()).Msg("company signature recorded")
	return s.status(ctx, contractID)
}

type AttachExternalInput struct {
	ContractID  uuid.UUID
	DocumentID  string
	PublicID    string
	SignerName  string
	SignerEmail string
	SignedAt    time.Time
	Notes       string
	File        []byte
}

// AttachExternal records a contract signed on an external platform. Both
// signature facts are written with it, so the contract becomes fully executed.
func (s *SignatureService) AttachExternal(ctx context.Context, principal model.Principal, input AttachExternalInput) (*model.ExternalSignature, error) {
	if !principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	contract, err := loadContract(ctx, s.contracts, principal, input.ContractID)
	if err != nil {
		return nil, err
	}

	input.DocumentID = strings.TrimSpace(input.DocumentID)
	input.PublicID = strings.TrimSpace(input.PublicID)
	input.SignerName = strings.TrimSpace(input.SignerName)
	input.SignerEmail = strings.TrimSpace(input.SignerEmail)
	if input.DocumentID == "" || input.PublicID == "" {
		return nil, fmt.Errorf("%w: document_id and public_id are required", ErrInvalidInput)
	}
	if input.SignerName == "" || input.SignerEmail == "" {
		return nil, fmt.Errorf("%w: signer name and email are required", ErrInvalidInput)
	}
	if input.SignedAt.IsZero() {
		return nil, fmt.Errorf("%w: signed_at is required", ErrInvalidInput)
	}

	signed, err := s.signatures.HasActiveContractorSignature(ctx, contract.ID)
	if err != nil {
		return nil, err
	}
	if signed {
		return nil, ErrAlreadySigned
	}
	companySigned, err := s.signatures.HasCompanySignature(ctx, contract.ID)
	if err != nil {
		return nil, err
	}

	var fileKey *string
	if len(input.File) > 0 {
		key, err := s.storeSignedPDF(ctx, contract.ID, input.File)
		if err != nil {
			return nil, err
		}
		fileKey = &key
	}
	var notes *string
	if n := strings.TrimSpace(input.Notes); n != "" {
		notes = &n
	}

	signedAt := input.SignedAt.UTC()
	saved, err := s.signatures.AttachExternalSignature(ctx,
		model.ExternalSignature{
			ContractID:  contract.ID,
			DocumentID:  input.DocumentID,
			PublicID:    input.PublicID,
			SignerName:  input.SignerName,
			SignerEmail: input.SignerEmail,
			SignedAt:    signedAt,
			Notes:       notes,
			FileKey:     fileKey,
			UploadedBy:  principal.UserID,
		},
		model.SignedRecord{
			ContractID:   contract.ID,
			ContractorID: contract.ContractorID,
			SignerName:   input.SignerName,
			SignerEmail:  input.SignerEmail,
			Method:       model.SignatureMethodExternalPlatform,
			Fingerprint:  Fingerprint(contract.ID, input.SignerName, input.SignerEmail, signedAt),
			SignedAt:     signedAt,
		},
		companySignature(companySigned, model.AdminSignature{
			ContractID:  contract.ID,
			AdminUserID: principal.UserID,
			SignerName:  input.SignerName,
			SignedAt:    signedAt,
		}),
	)
	if err != nil {
		if fileKey != nil {
			s.discardFile(ctx, *fileKey)
		}
		return nil, alreadySigned(err)
	}
	s.log.Info().
		Str("contract_id", contract.ID.String()).
		Str("document_id", input.DocumentID).
		Bool("file", fileKey != nil).
		Bool("company_signature_kept", companySigned).
		Msg("external signature attached")
	return saved, nil
}

func (s *SignatureService) ListExternal(ctx context.Context, principal model.Principal, contractID uuid.UUID) ([]model.ExternalSignature, error) {
	if _, err := loadContract(ctx, s.contracts, principal, contractID); err != nil {
		return nil, err
	}
	return s.signatures.ListExternalSignatures(ctx, contractID)
}

func (s *SignatureService) storeSignedPDF(ctx context.Context, contractID uuid.UUID, file []byte) (string, error) {
	if s.maxPDFBytes > 0 && int64(len(file)) > s.maxPDFBytes {
		return "", fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, s.maxPDFBytes)
	}
	if mt := mimetype.Detect(file); !mt.Is(pdfMIME) {
		return "", fmt.Errorf("%w: only PDF files are accepted, got %s", ErrInvalidInput, mt.String())
	}
	if s.storage == nil {
		return "", fmt.Errorf("%w: file storage is not configured", ErrInvalidInput)
	}
	key := fmt.Sprintf("contracts/%s/signed/%s.pdf", contractID, uuid.NewString())
	if err := s.storage.Put(ctx, key, pdfMIME, file); err != nil {
		return "", fmt.Errorf("store signed pdf: %w", err)
	}
	return key, nil
}

// discardFile removes an uploaded PDF whose attachment was not recorded.
func (s *SignatureService) discardFile(ctx context.Context, key string) {
	if err := s.storage.Delete(ctx, key); err != nil {
		s.log.Error().Err(err).Str("file_key", key).Msg("orphaned signed pdf left in storage")
		return
	}
	s.log.Warn().Str("file_key", key).Msg("signed pdf removed after failed attachment")
}

func companySignature(signed bool, sig model.AdminSignature) *model.AdminSignature {
	if signed {
		return nil
	}
	return &sig
}

// alreadySigned maps a unique index violation on the signature tables to
// ErrAlreadySigned.
func alreadySigned(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", ErrAlreadySigned, err)
	}
	return err
}

// Fingerprint identifies a signature: hex SHA-256 over the contract id, the
// signer and the signing instant.
func Fingerprint(contractID uuid.UUID, signerName, signerEmail string, signedAt time.Time) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		contractID.String(),
		signerName,
		strings.ToLower(signerEmail),
		signedAt.UTC().Format(time.RFC3339Nano),
	}, "|")))
	return hex.EncodeToString(sum[:])
}
