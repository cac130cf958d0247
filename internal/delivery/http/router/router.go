// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	CatalogHandler *handler.CatalogHandler
	RatingHandler  *handler.RatingHandler
	AdminHandler   *handler.AdminHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	catalogHandler *handler.CatalogHandler
	ratingHandler  *handler.RatingHandler
	adminHandler   *handler.AdminHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		catalogHandler: params.CatalogHandler,
		ratingHandler:  params.RatingHandler,
		adminHandler:   params.AdminHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/API")
	{
		// Catalog. The static segments (products, rate, rating, admin,
		// create_product) take precedence over the :cat parameter.
		api.POST("/create_product", r.catalogHandler.Create)
		api.GET("/products", r.catalogHandler.ListRandomSample)
		api.GET("/:cat", r.catalogHandler.ListByCategory)
		api.GET("/:cat/:id", r.catalogHandler.GetOne)
		api.PUT("/:cat/:id", r.catalogHandler.Update)

		// Ratings
		api.POST("/rate", r.ratingHandler.Submit)
		api.GET("/rating/:item_type/:item_id", r.ratingHandler.Stats)

		// Admin authentication
		api.POST("/admin", r.adminHandler.Login)
		api.POST("/admin/refresh-token", r.adminHandler.Refresh)
		api.GET("/admin/verify", r.adminHandler.Verify, r.authMiddleware.Authenticate)
	}
}
