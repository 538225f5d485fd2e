// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/drbearcub/jw-deployable-app/internal/delivery/http/middleware"
	"github.com/drbearcub/jw-deployable-app/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ConfigHandler   *handler.ConfigHandler
	DocumentHandler *handler.DocumentHandler
	ScrapeHandler   *handler.ScrapeHandler
	MetadataHandler *handler.MetadataHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	configHandler   *handler.ConfigHandler
	documentHandler *handler.DocumentHandler
	scrapeHandler   *handler.ScrapeHandler
	metadataHandler *handler.MetadataHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		configHandler:   params.ConfigHandler,
		documentHandler: params.DocumentHandler,
		scrapeHandler:   params.ScrapeHandler,
		metadataHandler: params.MetadataHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	api := e.Group("/api")

	// Auth routes
	authGroup := api.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.Signup)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/token", r.authHandler.Token)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.GET("/me", r.authHandler.Me, r.authMiddleware.Authenticate)
	}

	// Course configuration routes, all owner-scoped behind authentication
	configGroup := api.Group("/config")
	configGroup.Use(r.authMiddleware.Authenticate)
	{
		configGroup.POST("/create-config", r.configHandler.Create)
		configGroup.GET("/user-configs", r.configHandler.List)
		configGroup.GET("/config/:config_id", r.configHandler.Get)
		configGroup.PUT("/config/:config_id", r.configHandler.Update)
		configGroup.POST("/deactivate-config/:config_id", r.configHandler.Deactivate)
		configGroup.DELETE("/config/:config_id", r.configHandler.Delete)
	}

	// Reference document routes
	documentGroup := api.Group("/documents")
	documentGroup.Use(r.authMiddleware.Authenticate)
	{
		documentGroup.POST("/add-documents/:config_id", r.documentHandler.Attach)
		documentGroup.DELETE("/delete-document/:config_id", r.documentHandler.Detach)
	}

	// Scrape-to-PDF route
	scrapeGroup := api.Group("/scraper")
	scrapeGroup.Use(r.authMiddleware.Authenticate)
	{
		scrapeGroup.POST("/scrape-and-generate", r.scrapeHandler.ScrapeAndGenerate)
	}

	// Catalog metadata routes, public for form population
	metadataGroup := api.Group("/metadata")
	{
		metadataGroup.GET("/term-years", r.metadataHandler.TermYears)
		metadataGroup.GET("/organizations", r.metadataHandler.Organizations)
		metadataGroup.GET("/plugin-types", r.metadataHandler.PluginTypes)
	}
}
