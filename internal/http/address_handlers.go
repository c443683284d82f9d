package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type validateAddressRequest struct {
	Address string `json:"address"`
}

func (h *Handler) validateAddress(c *gin.Context) {
	if _, ok := h.principal(c); !ok {
		return
	}
	var req validateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.svc.Addresses.Validate(req.Address); err != nil {
		c.JSON(http.StatusOK, gin.H{"valid": false, "reason": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true})
}

func (h *Handler) suggestAddresses(c *gin.Context) {
	if _, ok := h.principal(c); !ok {
		return
	}
	c.JSON(http.StatusOK, h.svc.Addresses.Suggest(c.Request.Context(), c.Query("q")))
}

func (h *Handler) geocodeAddress(c *gin.Context) {
	if _, ok := h.principal(c); !ok {
		return
	}
	point, err := h.svc.Addresses.Geocode(c.Request.Context(), c.Query("address"))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, point)
}

type resolveRouteRequest struct {
	Origin      string `json:"origin" binding:"required"`
	Destination string `json:"destination" binding:"required"`
	RoundTrip   bool   `json:"round_trip"`
}

func (h *Handler) resolveRoute(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req resolveRouteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	route, err := h.svc.Calculations.ResolveRoute(c.Request.Context(), principal, req.Origin, req.Destination, req.RoundTrip)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, route)
}

