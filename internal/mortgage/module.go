// Package mortgage provides the mortgage calculator module.
package mortgage

import (
	apphttp "bluepeak_backend/internal/http"
	"bluepeak_backend/internal/mortgage/handler"
	"bluepeak_backend/platform/validator"
)

// Module is the mortgage module implementing http.Module.
type Module struct {
	handler *handler.Handler
}

// NewModule creates the mortgage module.
func NewModule(val *validator.Validator) *Module {
	return &Module{handler: handler.New(val)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "mortgage"
}

// RegisterRoutes mounts mortgage routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/mortgage/estimate", m.handler.Estimate)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
