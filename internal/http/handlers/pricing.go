package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"navlun.com/app/internal/http/middleware"
	"navlun.com/app/internal/http/validation"
	"navlun.com/app/internal/modules/pricing"
	"navlun.com/app/internal/shared/apperr"
)

// PricingHandler exposes the provider pricing CRUD. Validation that guards
// the store lives in the service; this layer only shapes requests and
// responses.
type PricingHandler struct {
	svc *pricing.Service
}

func NewPricingHandler(svc *pricing.Service) *PricingHandler {
	return &PricingHandler{svc: svc}
}

type inspectionCreateReq struct {
	ServiceProviderID string   `json:"serviceProviderId" binding:"required"`
	Product           string   `json:"product" binding:"required"`
	City              string   `json:"city" binding:"required"`
	InspectionType    string   `json:"inspectionType" binding:"required"`
	Price             *float64 `json:"price" binding:"required"`
	Currency          string   `json:"currency"`
	Note              string   `json:"note"`
	Status            string   `json:"status"`
}

func (h *PricingHandler) CreateInspection(c *gin.Context) {
	var req inspectionCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please fill in the required fields.", validation.FromBindError(err, &req)))
		return
	}
	created, err := h.svc.CreateInspection(c.Request.Context(), pricing.InspectionDraft{
		ServiceProviderID: req.ServiceProviderID,
		Product:           req.Product,
		City:              req.City,
		InspectionType:    req.InspectionType,
		Price:             req.Price,
		Currency:          req.Currency,
		Note:              req.Note,
		Status:            req.Status,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PricingHandler) ListInspections(c *gin.Context) {
	providerID := c.Query("providerId")
	if providerID == "" {
		middleware.Fail(c, apperr.InvalidErr("Please fill in the required fields.",
			map[string]string{"providerId": "This field is required."}))
		return
	}
	items, err := h.svc.ListInspectionsByProvider(c.Request.Context(), providerID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type inspectionPatchReq struct {
	Product        *string  `json:"product"`
	City           *string  `json:"city"`
	InspectionType *string  `json:"inspectionType"`
	Price          *float64 `json:"price"`
	Currency       *string  `json:"currency"`
	Note           *string  `json:"note"`
	Status         *string  `json:"status"`
}

func (h *PricingHandler) UpdateInspection(c *gin.Context) {
	var req inspectionPatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Request data is invalid.", validation.FromBindError(err, &req)))
		return
	}
	updated, err := h.svc.UpdateInspection(c.Request.Context(), c.Param("id"), pricing.InspectionPatch{
		Product:        req.Product,
		City:           req.City,
		InspectionType: req.InspectionType,
		Price:          req.Price,
		Currency:       req.Currency,
		Note:           req.Note,
		Status:         req.Status,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PricingHandler) DeleteInspection(c *gin.Context) {
	if err := h.svc.DeleteInspection(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

type freightCreateReq struct {
	ServiceProviderID string   `json:"serviceProviderId" binding:"required"`
	Origin            string   `json:"origin" binding:"required"`
	Destination       string   `json:"destination" binding:"required"`
	Mode              string   `json:"mode" binding:"required"`
	Rate              *float64 `json:"rate" binding:"required"`
	Unit              string   `json:"unit"`
	Currency          string   `json:"currency"`
	Note              string   `json:"note"`
	Status            string   `json:"status"`
}

func (h *PricingHandler) CreateFreightRate(c *gin.Context) {
	var req freightCreateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Please fill in the required fields.", validation.FromBindError(err, &req)))
		return
	}
	created, err := h.svc.CreateFreightRate(c.Request.Context(), pricing.FreightDraft{
		ServiceProviderID: req.ServiceProviderID,
		Origin:            req.Origin,
		Destination:       req.Destination,
		Mode:              req.Mode,
		Rate:              req.Rate,
		Unit:              req.Unit,
		Currency:          req.Currency,
		Note:              req.Note,
		Status:            req.Status,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *PricingHandler) ListFreightRates(c *gin.Context) {
	providerID := c.Query("providerId")
	if providerID == "" {
		middleware.Fail(c, apperr.InvalidErr("Please fill in the required fields.",
			map[string]string{"providerId": "This field is required."}))
		return
	}
	items, err := h.svc.ListFreightRatesByProvider(c.Request.Context(), providerID)
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

type freightPatchReq struct {
	Origin      *string  `json:"origin"`
	Destination *string  `json:"destination"`
	Mode        *string  `json:"mode"`
	Rate        *float64 `json:"rate"`
	Unit        *string  `json:"unit"`
	Currency    *string  `json:"currency"`
	Note        *string  `json:"note"`
	Status      *string  `json:"status"`
}

func (h *PricingHandler) UpdateFreightRate(c *gin.Context) {
	var req freightPatchReq
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.Fail(c, apperr.InvalidErr("Request data is invalid.", validation.FromBindError(err, &req)))
		return
	}
	updated, err := h.svc.UpdateFreightRate(c.Request.Context(), c.Param("id"), pricing.FreightPatch{
		Origin:      req.Origin,
		Destination: req.Destination,
		Mode:        req.Mode,
		Rate:        req.Rate,
		Unit:        req.Unit,
		Currency:    req.Currency,
		Note:        req.Note,
		Status:      req.Status,
	})
	if err != nil {
		middleware.Fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *PricingHandler) DeleteFreightRate(c *gin.Context) {
	if err := h.svc.DeleteFreightRate(c.Request.Context(), c.Param("id")); err != nil {
		middleware.Fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
