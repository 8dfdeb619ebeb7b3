// Package handler handles HTTP requests for the chat endpoint.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bluepeak_backend/internal/chat/service"
	"bluepeak_backend/internal/chat/transport"
	"bluepeak_backend/platform/httpkit"
	"bluepeak_backend/platform/validator"
)

// Handler handles HTTP requests for chat.
type Handler struct {
	svc *service.Service
	val *validator.Validator
}

const (
	msgInvalidRequest   = "invalid request"
	msgValidationFailed = "validation failed"
)

// New creates a new chat handler.
func New(svc *service.Service, val *validator.Validator) *Handler {
	return &Handler{svc: svc, val: val}
}

// Chat handles one conversation turn.
// POST /api/chat
func (h *Handler) Chat(c *gin.Context) {
	var req transport.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgInvalidRequest, nil)
		return
	}
	if err := h.val.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, msgValidationFailed, err.Error())
		return
	}

	result, err := h.svc.Respond(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, result)
}
