// Package handler handles HTTP requests for the mortgage calculator.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluepeak_backend/internal/mortgage/service"
	"bluepeak_backend/internal/mortgage/transport"
	"bluepeak_backend/platform/httpkit"
	"bluepeak_backend/platform/validator"
)

// Handler handles HTTP requests for mortgage estimates.
type Handler struct {
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new mortgage handler.
func New(val *validator.Validator) *Handler {
	return &Handler{val: val}
}

// Estimate computes a mortgage estimate.
// GET /api/mortgage/estimate
func (h *Handler) Estimate(c *gin.Context) {
	var req transport.EstimateRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := service.Estimate(req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
