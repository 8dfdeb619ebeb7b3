// Package handler handles HTTP requests for lead capture.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluepeak_backend/internal/leads/service"
	"bluepeak_backend/internal/leads/transport"
	"bluepeak_backend/platform/httpkit"
	"bluepeak_backend/platform/validator"
)

// Handler handles HTTP requests for leads.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new leads handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// SubmitViewing captures a viewing or contact request.
// POST /api/leads/viewing
func (h *Handler) SubmitViewing(c *gin.Context) {
	var req transport.ViewingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.SubmitViewing(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, result)
}
