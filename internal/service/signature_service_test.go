package service

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/service/mocks"
)

type signatureFixture struct {
	svc        *SignatureService
	contracts  *mocks.MockContractStore
	signatures *mocks.MockSignatureStore
	storage    *mocks.MockFileStorage
}

func newSignatureFixture(t *testing.T) signatureFixture {
	ctrl := gomock.NewController(t)
	f := signatureFixture{
		contracts:  mocks.NewMockContractStore(ctrl),
		signatures: mocks.NewMockSignatureStore(ctrl),
		storage:    mocks.NewMockFileStorage(ctrl),
	}
	f.svc = NewSignatureService(f.contracts, f.signatures, f.storage, 10<<20, zerolog.Nop())
	f.svc.now = fixedClock(time.Date(2026, 3, 10, 14, 0, 0, 0, time.UTC))
	return f
}

func TestSignatureStatusContractorOnly(t *testing.T) {
	f := newSignatureFixture(t)
	admin := adminPrincipal()
	contract := testContract(admin, uuid.New())
	method := model.SignatureMethodDigitalCertificate

	f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
	f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(true, nil)
	f.signatures.EXPECT().HasCompanySignature(gomock.Any(), contract.ID).Return(false, nil)
	f.signatures.EXPECT().ActiveMethod(gomock.Any(), contract.ID).Return(&method, nil)

	status, err := f.svc.Status(ctx, admin, contract.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if status.State != model.SignatureStateContractorOnly {
		t.Fatalf("expected contractor_only, got %s", status.State)
	}
	if status.Method == nil || *status.Method != method {
		t.Fatalf("expected digital certificate method, got %v", status.Method)
	}
}

func TestSignAsContractor(t *testing.T) {
	t.Run("records fingerprint", func(t *testing.T) {
		f := newSignatureFixture(t)
		contractorID := uuid.New()
		contractor := contractorPrincipal(contractorID)
		contract := testContract(adminPrincipal(), contractorID)

		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(false, nil)
		f.signatures.EXPECT().CreateSignedRecord(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, rec model.SignedRecord) (*model.SignedRecord, error) {
				if rec.Method != model.SignatureMethodDigitalCertificate || rec.ContractorID != contractorID {
					t.Fatalf("unexpected record: %+v", rec)
				}
				want := Fingerprint(contract.ID, "João Lima", "joao@acme.com", rec.SignedAt)
				if rec.Fingerprint != want || len(rec.Fingerprint) != 64 {
					t.Fatalf("unexpected fingerprint %q", rec.Fingerprint)
				}
				return &rec, nil
			})
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(true, nil)
		f.signatures.EXPECT().HasCompanySignature(gomock.Any(), contract.ID).Return(false, nil)
		f.signatures.EXPECT().ActiveMethod(gomock.Any(), contract.ID).Return(nil, nil)

		status, err := f.svc.SignAsContractor(ctx, contractor, contract.ID, ContractorSignInput{
			SignerName:  "João Lima",
			SignerEmail: "joao@acme.com",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if status.State != model.SignatureStateContractorOnly {
			t.Fatalf("expected contractor_only, got %s", status.State)
		}
	})

	t.Run("already signed", func(t *testing.T) {
		f := newSignatureFixture(t)
		contractorID := uuid.New()
		contract := testContract(adminPrincipal(), contractorID)

		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(true, nil)

		_, err := f.svc.SignAsContractor(ctx, contractorPrincipal(contractorID), contract.ID, ContractorSignInput{SignerName: "João"})
		if !errors.Is(err, ErrAlreadySigned) {
			t.Fatalf("expected ErrAlreadySigned, got %v", err)
		}
	})

	t.Run("concurrent sign loses on unique index", func(t *testing.T) {
		f := newSignatureFixture(t)
		contractorID := uuid.New()
		contract := testContract(adminPrincipal(), contractorID)

		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(false, nil)
		f.signatures.EXPECT().CreateSignedRecord(gomock.Any(), gomock.Any()).
			Return(nil, fmt.Errorf("insert signed record: %w", gorm.ErrDuplicatedKey))

		_, err := f.svc.SignAsContractor(ctx, contractorPrincipal(contractorID), contract.ID, ContractorSignInput{SignerName: "João"})
		if !errors.Is(err, ErrAlreadySigned) {
			t.Fatalf("expected ErrAlreadySigned, got %v", err)
		}
	})

	t.Run("other contractor", func(t *testing.T) {
		f := newSignatureFixture(t)
		contract := testContract(adminPrincipal(), uuid.New())
		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)

		_, err := f.svc.SignAsContractor(ctx, contractorPrincipal(uuid.New()), contract.ID, ContractorSignInput{SignerName: "João"})
		if !errors.Is(err, ErrPermissionDenied) {
			t.Fatalf("expected ErrPermissionDenied, got %v", err)
		}
	})
}

func TestCancelContractorSignatureWithoutSignature(t *testing.T) {
	f := newSignatureFixture(t)
	contractorID := uuid.New()
	contract := testContract(adminPrincipal(), contractorID)

	f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
	f.signatures.EXPECT().CancelContractorSignature(gomock.Any(), contract.ID).Return(int64(0), nil)

	_, err := f.svc.CancelContractorSignature(ctx, contractorPrincipal(contractorID), contract.ID)
	if !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}
}

func TestSignAsCompanyRequiresAdmin(t *testing.T) {
	f := newSignatureFixture(t)
	_, err := f.svc.SignAsCompany(ctx, contractorPrincipal(uuid.New()), uuid.New(), "Diretoria")
	if !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestSignAsCompanyDuplicateIsAlreadySigned(t *testing.T) {
	f := newSignatureFixture(t)
	admin := adminPrincipal()
	contract := testContract(admin, uuid.New())

	f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
	f.signatures.EXPECT().HasCompanySignature(gomock.Any(), contract.ID).Return(false, nil)
	f.signatures.EXPECT().CreateAdminSignature(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("insert admin signature: %w", gorm.ErrDuplicatedKey))

	_, err := f.svc.SignAsCompany(ctx, admin, contract.ID, "Diretoria")
	if !errors.Is(err, ErrAlreadySigned) {
		t.Fatalf("expected ErrAlreadySigned, got %v", err)
	}
}

func TestAttachExternal(t *testing.T) {
	pdf := append([]byte("%PDF-1.7\n"), bytes.Repeat([]byte("x"), 64)...)
	input := func(contractID uuid.UUID, file []byte) AttachExternalInput {
		return AttachExternalInput{
			ContractID:  contractID,
			DocumentID:  "doc-123",
			PublicID:    "pub-456",
			SignerName:  "João Lima",
			SignerEmail: "joao@acme.com",
			SignedAt:    time.Date(2026, 3, 9, 9, 0, 0, 0, time.UTC),
			Notes:       "assinado via plataforma",
			File:        file,
		}
	}

	t.Run("stores pdf and writes both signatures", func(t *testing.T) {
		f := newSignatureFixture(t)
		admin := adminPrincipal()
		contract := testContract(admin, uuid.New())

		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(false, nil)
		f.signatures.EXPECT().HasCompanySignature(gomock.Any(), contract.ID).Return(false, nil)
		f.storage.EXPECT().Put(gomock.Any(), gomock.Any(), "application/pdf", pdf).Return(nil)
		f.signatures.EXPECT().AttachExternalSignature(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, ext model.ExternalSignature, signed model.SignedRecord, adminSig *model.AdminSignature) (*model.ExternalSignature, error) {
				if ext.FileKey == nil || ext.Notes == nil {
					t.Fatalf("expected file key and notes: %+v", ext)
				}
				if signed.Method != model.SignatureMethodExternalPlatform || signed.ContractorID != contract.ContractorID {
					t.Fatalf("unexpected signed record: %+v", signed)
				}
				if adminSig == nil || adminSig.AdminUserID != admin.UserID {
					t.Fatalf("unexpected admin signature: %+v", adminSig)
				}
				ext.ID = uuid.New()
				return &ext, nil
			})

		saved, err := f.svc.AttachExternal(ctx, admin, input(contract.ID, pdf))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if saved.DocumentID != "doc-123" {
			t.Fatalf("unexpected attachment: %+v", saved)
		}
	})

	t.Run("rejects non pdf", func(t *testing.T) {
		f := newSignatureFixture(t)
		admin := adminPrincipal()
		contract := testContract(admin, uuid.New())
		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(false, nil)
		f.signatures.EXPECT().HasCompanySignature(gomock.Any(), contract.ID).Return(false, nil)

		_, err := f.svc.AttachExternal(ctx, admin, input(contract.ID, []byte("\x89PNG\r\n\x1a\nnot a pdf")))
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("rejects oversized file", func(t *testing.T) {
		f := newSignatureFixture(t)
		f.svc.maxPDFBytes = 16
		admin := adminPrincipal()
		contract := testContract(admin, uuid.New())
		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(false, nil)
		f.signatures.EXPECT().HasCompanySignature(gomock.Any(), contract.ID).Return(false, nil)

		_, err := f.svc.AttachExternal(ctx, admin, input(contract.ID, pdf))
		if !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("expected ErrInvalidInput, got %v", err)
		}
	})

	t.Run("contract already signed", func(t *testing.T) {
		f := newSignatureFixture(t)
		admin := adminPrincipal()
		contract := testContract(admin, uuid.New())
		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(true, nil)

		_, err := f.svc.AttachExternal(ctx, admin, input(contract.ID, nil))
		if !errors.Is(err, ErrAlreadySigned) {
			t.Fatalf("expected ErrAlreadySigned, got %v", err)
		}
	})

	t.Run("keeps existing company signature", func(t *testing.T) {
		f := newSignatureFixture(t)
		admin := adminPrincipal()
		contract := testContract(admin, uuid.New())

		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(false, nil)
		f.signatures.EXPECT().HasCompanySignature(gomock.Any(), contract.ID).Return(true, nil)
		f.signatures.EXPECT().AttachExternalSignature(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
			func(_ context.Context, ext model.ExternalSignature, _ model.SignedRecord, _ *model.AdminSignature) (*model.ExternalSignature, error) {
				ext.ID = uuid.New()
				return &ext, nil
			})

		if _, err := f.svc.AttachExternal(ctx, admin, input(contract.ID, nil)); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("removes uploaded pdf when the attachment fails", func(t *testing.T) {
		f := newSignatureFixture(t)
		admin := adminPrincipal()
		contract := testContract(admin, uuid.New())

		var storedKey string
		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(false, nil)
		f.signatures.EXPECT().HasCompanySignature(gomock.Any(), contract.ID).Return(false, nil)
		f.storage.EXPECT().Put(gomock.Any(), gomock.Any(), "application/pdf", pdf).DoAndReturn(
			func(_ context.Context, key, _ string, _ []byte) error {
				storedKey = key
				return nil
			})
		f.signatures.EXPECT().AttachExternalSignature(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, gorm.ErrDuplicatedKey)
		f.storage.EXPECT().Delete(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, key string) error {
				if key != storedKey {
					t.Fatalf("expected %q to be removed, got %q", storedKey, key)
				}
				return nil
			})

		_, err := f.svc.AttachExternal(ctx, admin, input(contract.ID, pdf))
		if !errors.Is(err, ErrAlreadySigned) {
			t.Fatalf("expected ErrAlreadySigned, got %v", err)
		}
	})
}
