// Package listings provides the listings catalog bounded context module.
package listings

import (
	apphttp "bluepeak_backend/internal/http"
	"bluepeak_backend/internal/listings/handler"
	"bluepeak_backend/internal/listings/repository"
	"bluepeak_backend/internal/listings/service"
	"bluepeak_backend/platform/currency"
	"bluepeak_backend/platform/logger"
	"bluepeak_backend/platform/validator"
)

// Module is the listings bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
	repo    repository.Repository
}

// NewModule creates and initializes the listings module.
func NewModule(conv *currency.Converter, val *validator.Validator, log *logger.Logger) (*Module, error) {
	repo, err := repository.New()
	if err != nil {
		return nil, err
	}

	svc := service.New(repo, conv, log)
	h := handler.New(svc, val)

	return &Module{
		handler: h,
		service: svc,
		repo:    repo,
	}, nil
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "listings"
}

// Service returns the service layer for external use.
func (m *Module) Service() *service.Service {
	return m.service
}

// Repository returns the repository for direct access if needed.
func (m *Module) Repository() repository.Repository {
	return m.repo
}

// RegisterRoutes mounts listings routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/listings", m.handler.Browse)
	ctx.API.GET("/listings/compare", m.handler.Compare)
	ctx.API.GET("/listings/:id", m.handler.GetByID)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
