package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"

	"github.com/nurpe/contract-manager/internal/http/middleware"
	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/pricing"
	"github.com/nurpe/contract-manager/internal/service"
	"github.com/nurpe/contract-manager/internal/service/mocks"
)

type stubParser map[string]model.Principal

func (p stubParser) Parse(token string) (model.Principal, error) {
	principal, ok := p[token]
	if !ok {
		return model.Principal{}, errors.New("unknown token")
	}
	return principal, nil
}

type fixture struct {
	router     *gin.Engine
	contracts  *mocks.MockContractStore
	signatures *mocks.MockSignatureStore
	addons     *mocks.MockAddonStore
	sessions   *pricing.SessionStore
	admin      model.Principal
	contractor model.Principal
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)

	contractorID := uuid.New()
	f := &fixture{
		contracts:  mocks.NewMockContractStore(ctrl),
		signatures: mocks.NewMockSignatureStore(ctrl),
		addons:     mocks.NewMockAddonStore(ctrl),
		sessions:   pricing.NewSessionStore(time.Hour),
		admin:      model.Principal{UserID: uuid.New(), Role: model.UserRoleAdmin},
		contractor: model.Principal{UserID: uuid.New(), Role: model.UserRoleContractor, ContractorID: &contractorID},
	}

	log := zerolog.Nop()
	handler := NewHandler(Services{
		Quotes:     service.NewQuoteService(f.sessions, nil, nil, 15, log),
		Contracts:  service.NewContractService(f.contracts, log),
		Signatures: service.NewSignatureService(f.contracts, f.signatures, nil, 1<<20, log),
		Addons:     service.NewAddonService(f.contracts, f.addons, log),
	}, 1<<20, log)

	parser := stubParser{"admin": f.admin, "contractor": f.contractor}
	f.router = NewRouter(handler, middleware.Auth(parser), "development", []string{"*"}, log)
	return f
}

func (f *fixture) contract() *model.Contract {
	return &model.Contract{
		ID:           uuid.New(),
		OwnerID:      f.admin.UserID,
		ContractorID: *f.contractor.ContractorID,
		Number:       "CT-2026-014",
		Title:        "Manutenção preventiva",
		PlanName:     "Plano Básico",
		MonthlyValue: 350,
		StartAt:      time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	}
}

func (f *fixture) do(method, path, token string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/healthz", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected request id header")
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodGet, "/contracts", "", nil)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestSignatureStatus(t *testing.T) {
	f := newFixture(t)
	contract := f.contract()
	method := model.SignatureMethodDigitalCertificate

	f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
	f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(true, nil)
	f.signatures.EXPECT().HasCompanySignature(gomock.Any(), contract.ID).Return(false, nil)
	f.signatures.EXPECT().ActiveMethod(gomock.Any(), contract.ID).Return(&method, nil)

	rec := f.do(http.MethodGet, "/contracts/"+contract.ID.String()+"/signature", "admin", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var status model.SignatureStatus
	if err := json.Unmarshal(rec.Body.Bytes(), &status); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if status.State != model.SignatureStateContractorOnly {
		t.Fatalf("expected contractor_only, got %s", status.State)
	}
	if status.Method == nil || *status.Method != method {
		t.Fatalf("expected method %s, got %v", method, status.Method)
	}
}

func TestErrorMapping(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		f := newFixture(t)
		rec := f.do(http.MethodGet, "/contracts/not-a-uuid", "admin", nil)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.contracts.EXPECT().GetContract(gomock.Any(), id).Return(nil, gorm.ErrRecordNotFound)
		rec := f.do(http.MethodGet, "/contracts/"+id.String(), "admin", nil)
		if rec.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("admin cannot sign as contractor", func(t *testing.T) {
		f := newFixture(t)
		contract := f.contract()
		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		rec := f.do(http.MethodPost, "/contracts/"+contract.ID.String()+"/signature/contractor", "admin",
			map[string]string{"signer_name": "Ana", "signer_email": "ana@example.com"})
		if rec.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", rec.Code)
		}
	})

	t.Run("already signed", func(t *testing.T) {
		f := newFixture(t)
		contract := f.contract()
		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(true, nil)
		rec := f.do(http.MethodPost, "/contracts/"+contract.ID.String()+"/signature/contractor", "contractor",
			map[string]string{"signer_name": "Ana", "signer_email": "ana@example.com"})
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", rec.Code)
		}
	})

	t.Run("review without pending rejection", func(t *testing.T) {
		f := newFixture(t)
		contract := f.contract()
		addon := &model.PlanAddon{ID: uuid.New(), ContractID: contract.ID, Status: model.AddonStatusAccepted}
		f.addons.EXPECT().GetAddon(gomock.Any(), addon.ID).Return(addon, nil)
		f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
		f.addons.EXPECT().SaveReview(gomock.Any(), addon.ID, model.ReviewStatusApproved, "ok", f.admin.UserID, gomock.Any()).Return(false, nil)

		rec := f.do(http.MethodPost, "/addons/"+addon.ID.String()+"/review", "admin",
			map[string]string{"decision": "APPROVED", "explanation": "ok"})
		if rec.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d: %s", rec.Code, rec.Body.String())
		}
	})
}

func TestAttachExternalRejectsNonPDF(t *testing.T) {
	f := newFixture(t)
	contract := f.contract()
	f.contracts.EXPECT().GetContract(gomock.Any(), contract.ID).Return(contract, nil)
	f.signatures.EXPECT().HasActiveContractorSignature(gomock.Any(), contract.ID).Return(false, nil)
	f.signatures.EXPECT().HasCompanySignature(gomock.Any(), contract.ID).Return(false, nil)

	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	_ = w.WriteField("document_id", "doc-1")
	_ = w.WriteField("public_id", "pub-1")
	_ = w.WriteField("signer_name", "Ana")
	_ = w.WriteField("signer_email", "ana@example.com")
	_ = w.WriteField("signed_at", "2026-03-10")
	part, _ := w.CreateFormFile("file", "signed.pdf")
	_, _ = part.Write([]byte("not a pdf"))
	_ = w.Close()

	req := httptest.NewRequest(http.MethodPost, "/contracts/"+contract.ID.String()+"/signature/external", &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", "Bearer admin")
	rec := httptest.NewRecorder()
	f.router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestQuoteEditAndTextExport(t *testing.T) {
	f := newFixture(t)
	route := model.Route{
		Origin:      "Rua A, 10, São Paulo",
		Destination: "Av. Brasil, 500, Campinas",
		Distance:    model.DistanceResult{DistanceKm: 100, DurationMinutes: 90, Source: model.DataSourceLive},
		Toll:        &model.TollData{TotalCost: 20},
	}
	sess := pricing.NewSession(f.admin.UserID, "Cliente A", route, pricing.Input{
		Distance: route.Distance,
		Toll:     route.Toll,
	}, f.sessions.Now())
	f.sessions.Put(sess)
	base := "/quotes/" + sess.ID.String()

	rec := f.do(http.MethodPost, base+"/edits/toll_total", "admin", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("open edit: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	rec = f.do(http.MethodPut, base+"/edits/toll_total", "admin", map[string]string{"value": "35,50"})
	if rec.Code != http.StatusOK {
		t.Fatalf("confirm edit: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var view model.QuoteView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if view.Breakdown.TollTotal != 35.5 {
		t.Fatalf("expected toll 35.5, got %v", view.Breakdown.TollTotal)
	}

	rec = f.do(http.MethodPut, base+"/edits/toll_total", "admin", map[string]string{"value": "1"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("confirm without open edit: expected 400, got %d", rec.Code)
	}

	rec = f.do(http.MethodGet, base, "contractor", nil)
	if rec.Code != http.StatusForbidden && rec.Code != http.StatusNotFound {
		t.Fatalf("foreign session: expected 403 or 404, got %d", rec.Code)
	}

	rec = f.do(http.MethodPost, "/quotes/export", "admin", map[string]any{
		"session_ids": []string{sess.ID.String()},
		"format":      "text",
		"client": model.ClientData{
			Name:     "Maria Souza",
			Document: "123.456.789-00",
			Email:    "maria@example.com",
			Phone:    "(11) 98888-7777",
			Address:  "Rua B, 20, Campinas",
		},
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("export: expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var out struct {
		FileName string `json:"file_name"`
		Text     string `json:"text"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !strings.HasPrefix(out.FileName, "orcamento_") {
		t.Fatalf("unexpected file name %q", out.FileName)
	}
	if !strings.Contains(out.Text, "Pedágios: R$ 35,50") {
		t.Fatalf("expected edited toll in text export:\n%s", out.Text)
	}
}

func TestExportRequiresSessions(t *testing.T) {
	f := newFixture(t)
	rec := f.do(http.MethodPost, "/quotes/export", "admin", map[string]any{"session_ids": []string{}})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
