// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"

	"passport/internal/delivery/http/middleware"
	"passport/internal/delivery/http/router/handler"
)

type RouterParams struct {
	fx.In

	AuthHandler    *handler.AuthHandler
	AccountHandler *handler.AccountHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler    *handler.AuthHandler
	accountHandler *handler.AccountHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:    params.AuthHandler,
		accountHandler: params.AccountHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/api/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
		authGroup.POST("/logout", r.authHandler.Logout)
		authGroup.POST("/password", r.authHandler.ChangePassword, r.authMiddleware.Authenticate)
	}

	// User routes that require authentication
	userGroup := e.Group("/api/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.accountHandler.List)
		userGroup.GET("/profile", r.accountHandler.GetProfile)
		userGroup.PUT("/profile", r.accountHandler.UpdateProfile)
	}
}
