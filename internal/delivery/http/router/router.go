// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"planner/internal/delivery/http/middleware"
	"planner/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler *handler.SessionHandler
	EventHandler   *handler.EventHandler
	RecipeHandler  *handler.RecipeHandler
	PhotoHandler   *handler.PhotoHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler *handler.SessionHandler
	eventHandler   *handler.EventHandler
	recipeHandler  *handler.RecipeHandler
	photoHandler   *handler.PhotoHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler: params.SessionHandler,
		eventHandler:   params.EventHandler,
		recipeHandler:  params.RecipeHandler,
		photoHandler:   params.PhotoHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.Current)
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/signup", r.sessionHandler.SignUp)
		sessionGroup.DELETE("", r.sessionHandler.Logout)
	}

	// Event routes that require a signed-in principal
	eventGroup := e.Group("/events")
	eventGroup.Use(r.authMiddleware.RequirePrincipal)
	{
		eventGroup.GET("", r.eventHandler.List)
		eventGroup.GET("/summary", r.eventHandler.Summary)
		eventGroup.POST("/refresh", r.eventHandler.Refresh)
		eventGroup.POST("", r.eventHandler.Create)
		eventGroup.PUT("/:id", r.eventHandler.Update)
		eventGroup.DELETE("/:id", r.eventHandler.Delete)
		eventGroup.POST("/:id/recipes", r.eventHandler.AddRecipe)
		eventGroup.DELETE("/:id/recipes/:recipeId", r.eventHandler.RemoveRecipe)
	}

	recipeGroup := e.Group("/recipes")
	{
		recipeGroup.GET("/random", r.recipeHandler.Random)
		recipeGroup.GET("/search", r.recipeHandler.Search)
	}

	// Stored photos, addressed by the URLs the photo store hands out
	e.GET("/photos/*", r.photoHandler.Serve)
}
