package model

import (
	"time"

	"github.com/google/uuid"
)

type SignatureState string

const (
	SignatureStateUnsigned       SignatureState = "unsigned"
	SignatureStateContractorOnly SignatureState = "contractor_only"
	SignatureStateCompanyOnly    SignatureState = "company_only"
	SignatureStateFullyExecuted  SignatureState = "fully_executed"
)

// DeriveSignatureState is the single place where the two signature facts of a
// contract are turned into its presented state.
func DeriveSignatureState(contractorSigned, companySigned bool) SignatureState {
	switch {
	case contractorSigned && companySigned:
		return SignatureStateFullyExecuted
	case contractorSigned:
		return SignatureStateContractorOnly
	case companySigned:
		return SignatureStateCompanyOnly
	default:
		return SignatureStateUnsigned
	}
}

type SignatureMethod string

const (
	SignatureMethodDigitalCertificate SignatureMethod = "digital_certificate"
	SignatureMethodExternalPlatform   SignatureMethod = "external_platform"
)

type SignedRecord struct {
	ID           uuid.UUID       `json:"id"`
	ContractID   uuid.UUID       `json:"contract_id"`
	ContractorID uuid.UUID       `json:"contractor_id"`
	SignerName   string          `json:"signer_name"`
	SignerEmail  string          `json:"signer_email"`
	Method       SignatureMethod `json:"method"`
	Fingerprint  string          `json:"fingerprint"`
	Cancelled    bool            `json:"cancelled"`
	SignedAt     time.Time       `json:"signed_at"`
}

type AdminSignature struct {
	ID          uuid.UUID `json:"id"`
	ContractID  uuid.UUID `json:"contract_id"`
	AdminUserID uuid.UUID `json:"admin_user_id"`
	SignerName  string    `json:"signer_name"`
	SignedAt    time.Time `json:"signed_at"`
}

type ExternalSignature struct {
	ID          uuid.UUID `json:"id"`
	ContractID  uuid.UUID `json:"contract_id"`
	DocumentID  string    `json:"document_id"`
	PublicID    string    `json:"public_id"`
	SignerName  string    `json:"signer_name"`
	SignerEmail string    `json:"signer_email"`
	SignedAt    time.Time `json:"signed_at"`
	Notes       *string   `json:"notes,omitempty"`
	FileKey     *string   `json:"file_key,omitempty"`
	UploadedBy  uuid.UUID `json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
}

type SignatureStatus struct {
	ContractID       uuid.UUID        `json:"contract_id"`
	State            SignatureState   `json:"state"`
	ContractorSigned bool             `json:"contractor_signed"`
	CompanySigned    bool             `json:"company_signed"`
	Method           *SignatureMethod `json:"method,omitempty"`
}
