// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"profile/config"
	"profile/internal/delivery/api/router/handler"
	"profile/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProfileHandler *handler.ProfileHandler
	HealthHandler  *handler.HealthHandler
	MetricsHandler http.Handler `name:"metrics"`
	Config         *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	profileHandler *handler.ProfileHandler
	healthHandler  *handler.HealthHandler
	metricsHandler http.Handler
	config         *config.Config
}

// profileResources maps each collection path to the kind it serves.
var profileResources = []struct {
	path string
	kind entity.Kind
}{
	{path: "/customers", kind: entity.KindCustomer},
	{path: "/merchants", kind: entity.KindMerchant},
	{path: "/delivery-partners", kind: entity.KindDeliveryPartner},
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		profileHandler: params.ProfileHandler,
		healthHandler:  params.HealthHandler,
		metricsHandler: params.MetricsHandler,
		config:         params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", r.healthHandler.Check)

	if r.config.Metrics != nil && r.config.Metrics.Enabled && r.metricsHandler != nil {
		e.GET(r.config.Metrics.Path, echo.WrapHandler(r.metricsHandler))
	}

	h := r.profileHandler
	for _, res := range profileResources {
		group := e.Group(res.path)
		{
			group.GET("", h.List(res.kind))
			group.POST("", h.Register(res.kind))
			group.GET("/email/:email", h.GetIDByEmail(res.kind))
			group.GET("/:id", h.Get(res.kind))
			group.PUT("/:id", h.Update(res.kind))
			group.DELETE("/:id", h.Delete(res.kind))
		}

		if res.kind.SupportsBlacklist() {
			group.PUT("/:id/blacklist", h.Blacklist(res.kind))
			group.DELETE("/:id/blacklist", h.Unblacklist(res.kind))
		}
	}
}
