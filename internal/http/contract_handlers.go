package http

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/contract-manager/internal/model"
	"github.com/nurpe/contract-manager/internal/service"
)

type createContractRequest struct {
	ContractorID string  `json:"contractor_id" binding:"required"`
	Number       string  `json:"number" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	PlanName     string  `json:"plan_name"`
	MonthlyValue float64 `json:"monthly_value"`
	StartAt      string  `json:"start_at" binding:"required"`
	EndAt        string  `json:"end_at"`
}

func (h *Handler) createContract(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req createContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	contractorID, err := uuid.Parse(strings.TrimSpace(req.ContractorID))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid contractor_id"})
		return
	}
	startAt, err := parseDate(req.StartAt)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid start_at"})
		return
	}
	contract := model.Contract{
		ContractorID: contractorID,
		Number:       req.Number,
		Title:        req.Title,
		PlanName:     req.PlanName,
		MonthlyValue: req.MonthlyValue,
		StartAt:      startAt,
	}
	if strings.TrimSpace(req.EndAt) != "" {
		endAt, err := parseDate(req.EndAt)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid end_at"})
			return
		}
		contract.EndAt = &endAt
	}

	created, err := h.svc.Contracts.Create(c.Request.Context(), principal, contract)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *Handler) listContracts(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	contracts, err := h.svc.Contracts.List(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": contracts})
}

func (h *Handler) getContract(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	contract, err := h.svc.Contracts.Get(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, contract)
}

func (h *Handler) signatureStatus(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	status, err := h.svc.Signatures.Status(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

type contractorSignRequest struct {
	SignerName  string `json:"signer_name" binding:"required"`
	SignerEmail string `json:"signer_email" binding:"required"`
}

func (h *Handler) signAsContractor(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req contractorSignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := h.svc.Signatures.SignAsContractor(c.Request.Context(), principal, id, service.ContractorSignInput{
		SignerName:  req.SignerName,
		SignerEmail: req.SignerEmail,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, status)
}

func (h *Handler) cancelContractorSignature(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	status, err := h.svc.Signatures.CancelContractorSignature(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, status)
}

type companySignRequest struct {
	SignerName string `json:"signer_name" binding:"required"`
}

func (h *Handler) signAsCompany(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req companySignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	status, err := h.svc.Signatures.SignAsCompany(c.Request.Context(), principal, id, req.SignerName)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, status)
}

// attachExternal takes a multipart form; the signed PDF under "file" is optional.
func (h *Handler) attachExternal(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	signedAt, err := parseDate(c.PostForm("signed_at"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid signed_at"})
		return
	}

	var file []byte
	header, err := c.FormFile("file")
	switch {
	case errors.Is(err, http.ErrMissingFile):
	case err != nil:
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	default:
		f, err := header.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		defer f.Close()
		file, err = io.ReadAll(io.LimitReader(f, h.maxUploadBytes+1))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	ext, err := h.svc.Signatures.AttachExternal(c.Request.Context(), principal, service.AttachExternalInput{
		ContractID:  id,
		DocumentID:  c.PostForm("document_id"),
		PublicID:    c.PostForm("public_id"),
		SignerName:  c.PostForm("signer_name"),
		SignerEmail: c.PostForm("signer_email"),
		SignedAt:    signedAt,
		Notes:       c.PostForm("notes"),
		File:        file,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, ext)
}

func (h *Handler) listExternal(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	items, err := h.svc.Signatures.ListExternal(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type proposeAddonRequest struct {
	Description     string  `json:"description"`
	NewPlanName     string  `json:"new_plan_name" binding:"required"`
	NewMonthlyValue float64 `json:"new_monthly_value"`
}

func (h *Handler) proposeAddon(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req proposeAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.svc.Addons.Propose(c.Request.Context(), principal, id, service.ProposeAddonInput{
		Description:     req.Description,
		NewPlanName:     req.NewPlanName,
		NewMonthlyValue: req.NewMonthlyValue,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, view)
}

func (h *Handler) listAddons(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.svc.Addons.List(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": views})
}

func (h *Handler) acceptAddon(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.svc.Addons.Accept(c.Request.Context(), principal, id)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type rejectAddonRequest struct {
	Reason string `json:"reason" binding:"required"`
}

func (h *Handler) rejectAddon(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req rejectAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.svc.Addons.Reject(c.Request.Context(), principal, id, req.Reason)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}

type reviewAddonRequest struct {
	Decision    string `json:"decision" binding:"required"`
	Explanation string `json:"explanation" binding:"required"`
}

func (h *Handler) reviewAddon(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reviewAddonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	view, err := h.svc.Addons.Review(c.Request.Context(), principal, id, service.ReviewInput{
		Decision:    model.ReviewStatus(strings.ToLower(strings.TrimSpace(req.Decision))),
		Explanation: req.Explanation,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, view)
}
