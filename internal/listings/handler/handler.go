// Package handler handles HTTP requests for the listings catalog.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluepeak_backend/internal/listings/service"
	"bluepeak_backend/internal/listings/transport"
	"bluepeak_backend/platform/httpkit"
	"bluepeak_backend/platform/validator"
)

// Handler handles HTTP requests for listings.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new listings handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Browse retrieves a filtered, sorted, paginated page of listings.
// GET /api/listings
func (h *Handler) Browse(c *gin.Context) {
	var req transport.BrowseRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	httpkit.OK(c, h.svc.Browse(req))
}

// GetByID retrieves a single listing.
// GET /api/listings/:id
func (h *Handler) GetByID(c *gin.Context) {
	result, err := h.svc.GetByID(c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}

// Compare retrieves up to three listings side by side.
// GET /api/listings/compare?ids=a&ids=b
func (h *Handler) Compare(c *gin.Context) {
	var req transport.CompareRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Compare(req.IDs)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
