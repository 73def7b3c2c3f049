// Package router contains routing and server setup for the API delivery.
package router

import (
	"brandhub/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// APIPrefix mounts a second copy of every route for frontends that address
// the backend under /api.
const APIPrefix = "/api"

type RouterParams struct {
	fx.In

	BrandHandler *handler.BrandHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	brandHandler *handler.BrandHandler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		brandHandler: params.BrandHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	r.register(e.Group(""))
	r.register(e.Group(APIPrefix))
}

func (r *router) register(g *echo.Group) {
	g.GET("/health", handler.HealthCheck)

	brandsGroup := g.Group("/brands")
	{
		brandsGroup.GET("", r.brandHandler.ListBrands)
		// Static segment wins over the :id param in echo's router
		brandsGroup.GET("/map", r.brandHandler.BrandMap)
		// An empty id segment is looked up like any other unmatched id
		brandsGroup.GET("/", r.brandHandler.GetBrand)
		brandsGroup.GET("/:id", r.brandHandler.GetBrand)
	}

	g.GET("/agents", r.brandHandler.ListAgents)
}
