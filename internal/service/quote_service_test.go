package service

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"

	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/pricing"
	"github.com/nurpe/contract-manager/internal/service/mocks"
)

func validClient() model.ClientData {
	return model.ClientData{
		Name:     "Maria Souza",
		Document: "123.456.789-00",
		Email:    "maria@example.com",
		Phone:    "(11) 98888-7777",
		Address:  "Rua B, 20, Campinas",
	}
}

func openSession(store *pricing.SessionStore, owner uuid.UUID) *pricing.Session {
	dest := model.Destination{Label: "Cliente A", Address: "Av. Brasil, 500, Campinas"}
	route := routeFor(dest)
	route.Toll = &model.TollData{TotalCost: 20}
	sess := pricing.NewSession(owner, dest.Label, route, pricing.Input{
		Vehicle:  *referenceVehicle(owner),
		Distance: route.Distance,
		Toll:     route.Toll,
	}, store.Now())
	store.Put(sess)
	return sess
}

func TestQuoteEdits(t *testing.T) {
	store := pricing.NewSessionStore(time.Hour)
	svc := NewQuoteService(store, nil, nil, 15, zerolog.Nop())
	admin := adminPrincipal()
	sess := openSession(store, admin.UserID)

	before, err := svc.Get(admin, sess.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	state, err := svc.OpenEdit(admin, sess.ID, "toll_total")
	if err != nil {
		t.Fatalf("open edit: %v", err)
	}
	if state.Raw != "20" {
		t.Fatalf("expected seed 20, got %q", state.Raw)
	}

	after, err := svc.ConfirmEdit(admin, sess.ID, "toll_total", "35,50")
	if err != nil {
		t.Fatalf("confirm edit: %v", err)
	}
	if diff := after.Breakdown.GrandTotal - before.Breakdown.GrandTotal; diff < 15.49 || diff > 15.51 {
		t.Fatalf("expected total to grow by 15.50, got %v", diff)
	}
	if len(after.Overrides) != 1 || after.Overrides[0] != "toll_total" {
		t.Fatalf("unexpected overrides: %v", after.Overrides)
	}

	if _, err := svc.ConfirmEdit(admin, sess.ID, "toll_total", "10"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for closed edit, got %v", err)
	}
	if _, err := svc.OpenEdit(admin, sess.ID, "salary"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown field, got %v", err)
	}

	if _, err := svc.OpenEdit(admin, sess.ID, "fuel_price"); err != nil {
		t.Fatalf("open edit: %v", err)
	}
	cancelled, err := svc.CancelEdit(admin, sess.ID, "fuel_price")
	if err != nil {
		t.Fatalf("cancel edit: %v", err)
	}
	if cancelled.Breakdown.GrandTotal != after.Breakdown.GrandTotal || len(cancelled.OpenEdits) != 0 {
		t.Fatalf("cancel changed the quote: %+v", cancelled)
	}
}

func TestQuoteOwnership(t *testing.T) {
	store := pricing.NewSessionStore(time.Hour)
	svc := NewQuoteService(store, nil, nil, 15, zerolog.Nop())
	sess := openSession(store, uuid.New())

	if _, err := svc.Get(adminPrincipal(), sess.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := svc.Get(contractorPrincipal(uuid.New()), sess.ID); !errors.Is(err, ErrPermissionDenied) {
		t.Fatalf("expected ErrPermissionDenied, got %v", err)
	}
}

func TestQuoteExport(t *testing.T) {
	t.Run("client data is required", func(t *testing.T) {
		store := pricing.NewSessionStore(time.Hour)
		svc := NewQuoteService(store, nil, nil, 15, zerolog.Nop())
		admin := adminPrincipal()
		sess := openSession(store, admin.UserID)
		client := validClient()
		client.Phone = " "

		_, err := svc.Export(ExportInput{Principal: admin, SessionIDs: []uuid.UUID{sess.ID}, Client: client, Format: ExportFormatText})
		if !errors.Is(err, ErrInvalidInput) || !strings.Contains(err.Error(), "phone") {
			t.Fatalf("expected missing phone error, got %v", err)
		}
	})

	t.Run("text export", func(t *testing.T) {
		store := pricing.NewSessionStore(time.Hour)
		svc := NewQuoteService(store, nil, nil, 15, zerolog.Nop())
		admin := adminPrincipal()
		sess := openSession(store, admin.UserID)

		result, err := svc.Export(ExportInput{Principal: admin, SessionIDs: []uuid.UUID{sess.ID}, Client: validClient(), Format: ExportFormatText})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		text := string(result.Content)
		for _, want := range []string{"Maria Souza", "Cliente A", "Pedágios: R$ 20,00", "Total: R$"} {
			if !strings.Contains(text, want) {
				t.Fatalf("expected %q in:\n%s", want, text)
			}
		}
		if !strings.HasSuffix(result.FileName, ".txt") {
			t.Fatalf("unexpected file name %s", result.FileName)
		}
	})

	t.Run("pdf export uses the validity period", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		pdf := mocks.NewMockDocumentRenderer(ctrl)
		store := pricing.NewSessionStore(time.Hour)
		svc := NewQuoteService(store, pdf, nil, 15, zerolog.Nop())
		admin := adminPrincipal()
		sess := openSession(store, admin.UserID)

		pdf.EXPECT().Render(gomock.Any()).DoAndReturn(func(doc model.QuoteDocument) ([]byte, error) {
			if !doc.ValidUntil.Equal(doc.IssuedAt.AddDate(0, 0, 30)) {
				t.Fatalf("expected 30 days validity, got %v", doc.ValidUntil.Sub(doc.IssuedAt))
			}
			if len(doc.Quotes) != 1 || doc.Client.Email != "maria@example.com" {
				t.Fatalf("unexpected document: %+v", doc)
			}
			return []byte("%PDF-1.4"), nil
		})

		result, err := svc.Export(ExportInput{
			Principal:    admin,
			SessionIDs:   []uuid.UUID{sess.ID},
			Client:       validClient(),
			Format:       ExportFormatPDF,
			ValidityDays: 30,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.ContentType != "application/pdf" {
			t.Fatalf("unexpected content type %s", result.ContentType)
		}
	})

	t.Run("unknown session", func(t *testing.T) {
		store := pricing.NewSessionStore(time.Hour)
		svc := NewQuoteService(store, nil, nil, 15, zerolog.Nop())

		_, err := svc.Export(ExportInput{Principal: adminPrincipal(), SessionIDs: []uuid.UUID{uuid.New()}, Client: validClient(), Format: ExportFormatXLSX})
		if !errors.Is(err, ErrNotFound) {
			t.Fatalf("expected ErrNotFound, got %v", err)
		}
	})
}
