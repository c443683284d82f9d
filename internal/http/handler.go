package http

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/nurpe/contract-manager/internal/http/middleware"
	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/service"
)

type Services struct {
	Addresses    *service.AddressService
	Calculations *service.CalculationService
	Quotes       *service.QuoteService
	Settings     *service.SettingsService
	Contracts    *service.ContractService
	Signatures   *service.SignatureService
	Addons       *service.AddonService
}

type Handler struct {
	svc            Services
	maxUploadBytes int64
	log            zerolog.Logger
}

func NewHandler(svc Services, maxUploadBytes int64, log zerolog.Logger) *Handler {
	return &Handler{svc: svc, maxUploadBytes: maxUploadBytes, log: log}
}

func (h *Handler) Register(router *gin.Engine, authMiddleware gin.HandlerFunc) {
	protected := router.Group("/")
	protected.Use(authMiddleware)

	protected.POST("/addresses/validate", h.validateAddress)
	protected.GET("/addresses/suggestions", h.suggestAddresses)
	protected.GET("/addresses/geocode", h.geocodeAddress)
	protected.POST("/routes/resolve", h.resolveRoute)

	protected.POST("/calculations", h.calculate)
	protected.GET("/quotes/:id", h.getQuote)
	protected.POST("/quotes/:id/edits/:field", h.openEdit)
	protected.PUT("/quotes/:id/edits/:field", h.confirmEdit)
	protected.DELETE("/quotes/:id/edits/:field", h.cancelEdit)
	protected.POST("/quotes/export", h.exportQuotes)

	protected.GET("/settings/vehicle", h.getVehicle)
	protected.PUT("/settings/vehicle", h.saveVehicle)
	protected.GET("/settings/employees", h.listEmployees)
	protected.POST("/settings/employees", h.createEmployee)
	protected.PUT("/settings/employees/:id", h.updateEmployee)
	protected.GET("/settings/services", h.listServices)
	protected.POST("/settings/services", h.createService)
	protected.PUT("/settings/services/:id", h.updateService)

	protected.GET("/contracts", h.listContracts)
	protected.POST("/contracts", h.createContract)
	protected.GET("/contracts/:id", h.getContract)
	protected.GET("/contracts/:id/signature", h.signatureStatus)
	protected.POST("/contracts/:id/signature/contractor", h.signAsContractor)
	protected.DELETE("/contracts/:id/signature/contractor", h.cancelContractorSignature)
	protected.POST("/contracts/:id/signature/company", h.signAsCompany)
	protected.POST("/contracts/:id/signature/external", h.attachExternal)
	protected.GET("/contracts/:id/signature/external", h.listExternal)
	protected.GET("/contracts/:id/addons", h.listAddons)
	protected.POST("/contracts/:id/addons", h.proposeAddon)
	protected.POST("/addons/:id/accept", h.acceptAddon)
	protected.POST("/addons/:id/reject", h.rejectAddon)
	protected.POST("/addons/:id/review", h.reviewAddon)
}

func (h *Handler) principal(c *gin.Context) (model.Principal, bool) {
	principal, ok := middleware.MustPrincipal(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing principal"})
	}
	return principal, ok
}

func (h *Handler) handleError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrPermissionDenied):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadySigned), errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrUpstream):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		h.log.Error().
			Err(err).
			Str("request_id", middleware.GetRequestID(c)).
			Str("path", c.FullPath()).
			Msg("request failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func parseID(c *gin.Context, param string) (uuid.UUID, bool) {
	id, err := uuid.Parse(strings.TrimSpace(c.Param(param)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + param})
		return uuid.Nil, false
	}
	return id, true
}

func parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, service.ErrInvalidInput
	}
	layouts := []string{
		time.RFC3339,
		"2006-01-02",
		"2006-01-02T15:04:05",
	}
	for _, layout := range layouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, nil
		}
	}
	return time.Time{}, service.ErrInvalidInput
}
