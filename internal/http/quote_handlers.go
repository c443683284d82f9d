package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/service"
)

type calculateRequest struct {
	Origin       string              `json:"origin" binding:"required"`
	RoundTrip    bool                `json:"round_trip"`
	Destinations []model.Destination `json:"destinations" binding:"required,min=1"`
	Meals        model.Meals         `json:"meals"`
	Margins      model.Margins       `json:"margins"`
}

func (h *Handler) calculate(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req calculateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	result, err := h.svc.Calculations.Calculate(c.Request.Context(), service.CalculateInput{
		Principal:    principal,
		Origin:       req.Origin,
		Destinations: req.Destinations,
		RoundTrip:    req.RoundTrip,
		Meals:        req.Meals,
		Margins:      req.Margins,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

func (h *Handler) getQuote(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.svc.Quotes.Get(principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) openEdit(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	state, err := h.svc.Quotes.OpenEdit(principal, id, c.Param("field"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, state)
}

type confirmEditRequest struct {
	Value string `json:"value"`
}

func (h *Handler) confirmEdit(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req confirmEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.svc.Quotes.ConfirmEdit(principal, id, c.Param("field"), req.Value)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

func (h *Handler) cancelEdit(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.svc.Quotes.CancelEdit(principal, id, c.Param("field"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type exportQuotesRequest struct {
	SessionIDs   []string         `json:"session_ids" binding:"required,min=1"`
	Client       model.ClientData `json:"client"`
	Format       string           `json:"format"`
	ValidityDays int              `json:"validity_days"`
}

func (h *Handler) exportQuotes(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req exportQuotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	ids := make([]uuid.UUID, 0, len(req.SessionIDs))
	for _, raw := range req.SessionIDs {
		id, err := uuid.Parse(strings.TrimSpace(raw))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid session_ids"})
			return
		}
		ids = append(ids, id)
	}

	format := service.ExportFormat(strings.ToLower(strings.TrimSpace(req.Format)))
	result, err := h.svc.Quotes.Export(service.ExportInput{
		Principal:    principal,
		SessionIDs:   ids,
		Client:       req.Client,
		Format:       format,
		ValidityDays: req.ValidityDays,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	if format == service.ExportFormatText {
		c.JSON(http.StatusOK, gin.H{"file_name": result.FileName, "text": string(result.Content)})
		return
	}
	c.Header("Content-Disposition", "attachment; filename=\""+result.FileName+"\"")
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
