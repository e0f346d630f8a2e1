// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"pawmart/internal/delivery/http/middleware"
	"pawmart/internal/delivery/http/router/handler"
	"pawmart/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	PetOwnerHandler     *handler.PetOwnerHandler
	EntrepreneurHandler *handler.EntrepreneurHandler
	AdminHandler        *handler.AdminHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler         *handler.AuthHandler
	petOwnerHandler     *handler.PetOwnerHandler
	entrepreneurHandler *handler.EntrepreneurHandler
	adminHandler        *handler.AdminHandler
	authMiddleware      *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		petOwnerHandler:     params.PetOwnerHandler,
		entrepreneurHandler: params.EntrepreneurHandler,
		adminHandler:        params.AdminHandler,
		authMiddleware:      params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register/pet-owner", r.authHandler.RegisterPetOwner)
		authGroup.POST("/register/entrepreneur", r.authHandler.RegisterEntrepreneur)
		authGroup.POST("/login/:role", r.authHandler.Login)
		authGroup.POST("/verify", r.authHandler.VerifyToken)
	}

	// Pet owner routes require authentication
	petOwnerGroup := e.Group("/pet-owners")
	petOwnerGroup.Use(r.authMiddleware.Authenticate)
	{
		petOwnerGroup.GET("/:id", r.petOwnerHandler.Get)
		petOwnerGroup.PUT("/:id", r.petOwnerHandler.Update)
		petOwnerGroup.DELETE("/:id", r.petOwnerHandler.Delete)
	}

	// Entrepreneur reads require authentication
	entrepreneurGroup := e.Group("/entrepreneurs")
	entrepreneurGroup.Use(r.authMiddleware.Authenticate)
	{
		entrepreneurGroup.GET("", r.entrepreneurHandler.List)
		entrepreneurGroup.GET("/:id", r.entrepreneurHandler.Get)
		entrepreneurGroup.GET("/by-email/:email", r.entrepreneurHandler.GetByEmail)
		entrepreneurGroup.PUT("/:id", r.entrepreneurHandler.Update)
		entrepreneurGroup.DELETE("/:id", r.entrepreneurHandler.Delete)
	}

	// The approval lifecycle is an admin-only concern.
	entrepreneurGroup.PATCH("/:id/state",
		r.entrepreneurHandler.Transition,
		r.authMiddleware.RequireRole(entity.RoleAdmin),
	)

	// Admin account routes require authentication and the admin role
	adminGroup := e.Group("/admins")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/:id", r.adminHandler.Get)
		adminGroup.PUT("/:id", r.adminHandler.Update)
	}
}
