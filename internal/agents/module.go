package agents

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apphttp "bluepeak_backend/internal/http"
	"bluepeak_backend/platform/httpkit"
)

// Module is the agent directory module implementing http.Module.
type Module struct{}

// NewModule creates the agents module.
func NewModule() *Module {
	return &Module{}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "agents"
}

// RegisterRoutes mounts agent directory routes on the provided router context.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.API.GET("/agents", m.list)
	ctx.API.GET("/agents/:id", m.getByID)
}

func (m *Module) list(c *gin.Context) {
	httpkit.OK(c, gin.H{"items": All()})
}

func (m *Module) getByID(c *gin.Context) {
	agent, ok := ByID(c.Param("id"))
	if !ok {
		httpkit.Error(c, http.StatusNotFound, "agent not found", nil)
		return
	}
	httpkit.OK(c, agent)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
