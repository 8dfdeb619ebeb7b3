// Package leads provides the lead capture bounded context module.
package leads

import (
	"bluepeak_backend/internal/email"
	apphttp "bluepeak_backend/internal/http"
	"bluepeak_backend/internal/leads/handler"
	"bluepeak_backend/internal/leads/service"
	listingsrepo "bluepeak_backend/internal/listings/repository"
	"bluepeak_backend/platform/logger"
	"bluepeak_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// listingReader adapts the listings repository to the narrow interface the
// leads domain needs.
type listingReader struct {
	repo listingsrepo.Repository
}

func (r listingReader) Summary(id string) (service.ListingSummary, bool) {
	l, err := r.repo.ByID(id)
	if err != nil {
		return service.ListingSummary{}, false
	}
	return service.ListingSummary{ID: l.ID, Title: l.Title, Location: l.Location}, true
}

// NewModule creates and initializes the leads module.
func NewModule(sender email.Sender, listings listingsrepo.Repository, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(sender, listingReader{repo: listings}, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts leads routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.POST("/leads/viewing", m.handler.SubmitViewing)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
