package service

import (
	"errors"
	"fmt"
	"net/mail"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/pricing"
)

type ExportFormat string

const (
	ExportFormatPDF  ExportFormat = "pdf"
	ExportFormatText ExportFormat = "text"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// QuoteService exposes the quote sessions opened by a calculation: field
// edits on a single quote and the export of one or more quotes.
type QuoteService struct {
	sessions     *pricing.SessionStore
	pdf          DocumentRenderer
	xlsx         DocumentRenderer
	validityDays int
	log          zerolog.Logger
}

func NewQuoteService(
	sessions *pricing.SessionStore,
	pdf DocumentRenderer,
	xlsx DocumentRenderer,
	validityDays int,
	log zerolog.Logger,
) *QuoteService {
	return &QuoteService{
		sessions:     sessions,
		pdf:          pdf,
		xlsx:         xlsx,
		validityDays: validityDays,
		log:          log,
	}
}

func (s *QuoteService) Get(principal model.Principal, id uuid.UUID) (model.QuoteView, error) {
	var view model.QuoteView
	err := s.with(principal, id, func(sess *pricing.Session) error {
		view = sess.View()
		return nil
	})
	return view, err
}

type EditState struct {
	Field string          `json:"field"`
	Raw   string          `json:"raw"`
	Quote model.QuoteView `json:"quote"`
}

// OpenEdit puts a breakdown field in edit mode and returns its seed value.
func (s *QuoteService) OpenEdit(principal model.Principal, id uuid.UUID, field string) (*EditState, error) {
	f, err := parseField(field)
	if err != nil {
		return nil, err
	}
	var state EditState
	err = s.with(principal, id, func(sess *pricing.Session) error {
		raw, err := sess.OpenEdit(f)
		if err != nil {
			return err
		}
		state = EditState{Field: string(f), Raw: raw, Quote: sess.View()}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &state, nil
}

func (s *QuoteService) ConfirmEdit(principal model.Principal, id uuid.UUID, field, raw string) (model.QuoteView, error) {
	f, err := parseField(field)
	if err != nil {
		return model.QuoteView{}, err
	}
	var view model.QuoteView
	err = s.with(principal, id, func(sess *pricing.Session) error {
		if err := sess.ConfirmEdit(f, raw); err != nil {
			return err
		}
		view = sess.View()
		return nil
	})
	if err == nil {
		s.log.Debug().
			Str("session_id", id.String()).
			Str("field", string(f)).
			Msg("quote field overridden")
	}
	return view, err
}

func (s *QuoteService) CancelEdit(principal model.Principal, id uuid.UUID, field string) (model.QuoteView, error) {
	f, err := parseField(field)
	if err != nil {
		return model.QuoteView{}, err
	}
	var view model.QuoteView
	err = s.with(principal, id, func(sess *pricing.Session) error {
		if err := sess.CancelEdit(f); err != nil {
			return err
		}
		view = sess.View()
		return nil
	})
	return view, err
}

type ExportInput struct {
	Principal    model.Principal
	SessionIDs   []uuid.UUID
	Client       model.ClientData
	Format       ExportFormat
	ValidityDays int
}

type ExportResult struct {
	FileName    string
	ContentType string
	Content     []byte
}

func (s *QuoteService) Export(input ExportInput) (*ExportResult, error) {
	if !input.Principal.IsAdmin() {
		return nil, ErrPermissionDenied
	}
	if len(input.SessionIDs) == 0 {
		return nil, fmt.Errorf("%w: at least one quote is required", ErrInvalidInput)
	}
	client, err := validateClient(input.Client)
	if err != nil {
		return nil, err
	}
	validity := input.ValidityDays
	if validity <= 0 {
		validity = s.validityDays
	}
	if validity <= 0 {
		validity = 15
	}

	issuedAt := s.sessions.Now()
	doc := model.QuoteDocument{
		Client:     client,
		Quotes:     make([]model.QuoteView, 0, len(input.SessionIDs)),
		IssuedAt:   issuedAt,
		ValidUntil: issuedAt.AddDate(0, 0, validity),
	}
	for _, id := range input.SessionIDs {
		view, err := s.Get(input.Principal, id)
		if err != nil {
			return nil, err
		}
		doc.Quotes = append(doc.Quotes, view)
	}

	baseName := fmt.Sprintf("orcamento_%s", issuedAt.Format("20060102_150405"))
	var result *ExportResult
	switch input.Format {
	case ExportFormatPDF, "":
		content, err := s.pdf.Render(doc)
		if err != nil {
			return nil, fmt.Errorf("render pdf: %w", err)
		}
		result = &ExportResult{FileName: baseName + ".pdf", ContentType: "application/pdf", Content: content}
	case ExportFormatXLSX:
		content, err := s.xlsx.Render(doc)
		if err != nil {
			return nil, fmt.Errorf("render xlsx: %w", err)
		}
		result = &ExportResult{
			FileName:    baseName + ".xlsx",
			ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
			Content:     content,
		}
	case ExportFormatText:
		result = &ExportResult{
			FileName:    baseName + ".txt",
			ContentType: "text/plain; charset=utf-8",
			Content:     []byte(RenderQuoteText(doc)),
		}
	default:
		return nil, fmt.Errorf("%w: unsupported export format %q", ErrInvalidInput, input.Format)
	}

	s.log.Info().
		Str("format", string(input.Format)).
		Int("quotes", len(doc.Quotes)).
		Time("valid_until", doc.ValidUntil).
		Msg("quote exported")
	return result, nil
}

func (s *QuoteService) with(principal model.Principal, id uuid.UUID, fn func(*pricing.Session) error) error {
	if !principal.IsAdmin() {
		return ErrPermissionDenied
	}
	err := s.sessions.With(id, principal.UserID, fn)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pricing.ErrSessionNotFound):
		return fmt.Errorf("%w: quote %s", ErrNotFound, id)
	case errors.Is(err, pricing.ErrEditNotOpen), errors.Is(err, pricing.ErrUnknownField):
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	default:
		return err
	}
}

func parseField(raw string) (pricing.Field, error) {
	f, err := pricing.ParseField(raw)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return f, nil
}

func validateClient(c model.ClientData) (model.ClientData, error) {
	c = model.ClientData{
		Name:     strings.TrimSpace(c.Name),
		Document: strings.TrimSpace(c.Document),
		Email:    strings.TrimSpace(c.Email),
		Phone:    strings.TrimSpace(c.Phone),
		Address:  strings.TrimSpace(c.Address),
	}
	var missing []string
	if c.Name == "" {
		missing = append(missing, "name")
	}
	if c.Document == "" {
		missing = append(missing, "document")
	}
	if c.Email == "" {
		missing = append(missing, "email")
	}
	if c.Phone == "" {
		missing = append(missing, "phone")
	}
	if c.Address == "" {
		missing = append(missing, "address")
	}
	if len(missing) > 0 {
		return c, fmt.Errorf("%w: client %s required", ErrInvalidInput, strings.Join(missing, ", "))
	}
	if _, err := mail.ParseAddress(c.Email); err != nil {
		return c, fmt.Errorf("%w: client email is invalid", ErrInvalidInput)
	}
	return c, nil
}
