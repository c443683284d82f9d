package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/nurpe/contract-manager/internal/model"
)

func (h *Handler) getVehicle(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	profile, err := h.svc.Settings.GetVehicle(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type vehicleRequest struct {
	PurchaseValue     float64    `json:"purchase_value"`
	CurrentValue      float64    `json:"current_value"`
	AnnualIPVA        float64    `json:"annual_ipva"`
	AnnualInsurance   float64    `json:"annual_insurance"`
	AnnualMaintenance float64    `json:"annual_maintenance"`
	DepreciationRate  float64    `json:"depreciation_rate"`
	AnnualMileage     float64    `json:"annual_mileage"`
	FuelConsumption   float64    `json:"fuel_consumption"`
	FuelPrice         float64    `json:"fuel_price"`
	DefaultEmployeeID *uuid.UUID `json:"default_employee_id"`
}

func (h *Handler) saveVehicle(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	profile, err := h.svc.Settings.SaveVehicle(c.Request.Context(), principal, model.VehicleProfile{
		PurchaseValue:     req.PurchaseValue,
		CurrentValue:      req.CurrentValue,
		AnnualIPVA:        req.AnnualIPVA,
		AnnualInsurance:   req.AnnualInsurance,
		AnnualMaintenance: req.AnnualMaintenance,
		DepreciationRate:  req.DepreciationRate,
		AnnualMileage:     req.AnnualMileage,
		FuelConsumption:   req.FuelConsumption,
		FuelPrice:         req.FuelPrice,
		DefaultEmployeeID: req.DefaultEmployeeID,
	})
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

type employeeRequest struct {
	Name     string  `json:"name" binding:"required"`
	Salary   float64 `json:"salary"`
	Benefits float64 `json:"benefits"`
	Taxes    float64 `json:"taxes"`
	IsActive *bool   `json:"is_active"`
}

func (r employeeRequest) toModel(id uuid.UUID) model.EmployeeCost {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return model.EmployeeCost{
		ID:       id,
		Name:     r.Name,
		Salary:   r.Salary,
		Benefits: r.Benefits,
		Taxes:    r.Taxes,
		IsActive: active,
	}
}

func (h *Handler) listEmployees(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	employees, err := h.svc.Settings.ListEmployees(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": employees})
}

func (h *Handler) createEmployee(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employee, err := h.svc.Settings.CreateEmployee(c.Request.Context(), principal, req.toModel(uuid.Nil))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, employee)
}

func (h *Handler) updateEmployee(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req employeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	employee, err := h.svc.Settings.UpdateEmployee(c.Request.Context(), principal, req.toModel(id))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, employee)
}

type visitServiceRequest struct {
	Name           string  `json:"name" binding:"required"`
	PricingType    string  `json:"pricing_type" binding:"required"`
	FixedPrice     float64 `json:"fixed_price"`
	EstimatedHours float64 `json:"estimated_hours"`
	IsActive       *bool   `json:"is_active"`
}

func (r visitServiceRequest) toModel(id uuid.UUID) model.TechnicalVisitService {
	active := true
	if r.IsActive != nil {
		active = *r.IsActive
	}
	return model.TechnicalVisitService{
		ID:             id,
		Name:           r.Name,
		PricingType:    model.PricingType(r.PricingType),
		FixedPrice:     r.FixedPrice,
		EstimatedHours: r.EstimatedHours,
		IsActive:       active,
	}
}

func (h *Handler) listServices(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	services, err := h.svc.Settings.ListServices(c.Request.Context(), principal)
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": services})
}

func (h *Handler) createService(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	var req visitServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc, err := h.svc.Settings.CreateService(c.Request.Context(), principal, req.toModel(uuid.Nil))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

func (h *Handler) updateService(c *gin.Context) {
	principal, ok := h.principal(c)
	if !ok {
		return
	}
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req visitServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	svc, err := h.svc.Settings.UpdateService(c.Request.Context(), principal, req.toModel(id))
	if err != nil {
		h.handleError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}
