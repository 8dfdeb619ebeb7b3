// Package chat provides the conversation bounded context module.
package chat

import (
	"bluepeak_backend/internal/chat/handler"
	"bluepeak_backend/internal/chat/service"
	apphttp "bluepeak_backend/internal/http"
	"bluepeak_backend/platform/ai/openai"
	"bluepeak_backend/platform/config"
	"bluepeak_backend/platform/logger"
	"bluepeak_backend/platform/validator"
)

// Module is the chat bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates and initializes the chat module. When no backend API key
// is configured, the module runs in deterministic fallback mode.
func NewModule(cfg config.ChatConfig, val *validator.Validator, log *logger.Logger) *Module {
	var completer service.Completer
	if cfg.IsChatBackendEnabled() {
		completer = openai.NewClient(openai.Config{
			APIKey:      cfg.GetChatAPIKey(),
			BaseURL:     cfg.GetChatBaseURL(),
			Model:       cfg.GetChatModel(),
			Temperature: cfg.GetChatTemperature(),
		})
	} else {
		log.Warn("no chat backend API key configured; using templated fallback responder")
	}

	svc := service.New(completer, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "chat"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts chat routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/chat", m.handler.Chat)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
