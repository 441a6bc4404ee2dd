// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"net/http"

	"sugarrush/config"
	"sugarrush/internal/delivery/http/middleware"
	"sugarrush/internal/delivery/http/router/handler"
	"sugarrush/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// Route policy names as they appear under authorization.routes in the config.
const (
	PolicyListUsers  = "listUsers"
	PolicyGetUser    = "getUser"
	PolicyUpdateUser = "updateUser"
	PolicyDeleteUser = "deleteUser"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	AuthHandler    *handler.AuthHandler
	UserHandler    *handler.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
	// MetricsHandler serves /metrics.
	MetricsHandler http.Handler `name:"metrics"`
}

// router holds all the handlers that need to be registered.
type router struct {
	policies       map[string]entity.Roles
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
	metricsHandler http.Handler
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	policies := make(map[string]entity.Roles, len(params.Config.Authorization.Routes))
	for name, roles := range params.Config.Authorization.Routes {
		policies[name] = entity.RolesFromStrings(roles)
	}

	return &router{
		policies:       policies,
		authHandler:    params.AuthHandler,
		userHandler:    params.UserHandler,
		authMiddleware: params.AuthMiddleware,
		metricsHandler: params.MetricsHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	if r.metricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(r.metricsHandler))
	}

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
	}

	// Logout stays outside the group so revoked and expired tokens reach it.
	e.POST("/users/logout", r.authHandler.Logout, r.authMiddleware.IdentifySession)

	userGroup := e.Group("/users")
	userGroup.Use(r.authMiddleware.Authenticate)
	{
		userGroup.GET("", r.userHandler.ListUsers, r.require(PolicyListUsers))
		userGroup.GET("/:id", r.userHandler.GetUser, r.require(PolicyGetUser))
		userGroup.PUT("/:id", r.userHandler.UpdateUser, r.require(PolicyUpdateUser))
		userGroup.DELETE("/:id", r.userHandler.DeleteUser, r.require(PolicyDeleteUser))
	}
}

// require returns the role check for a named policy. An unknown name admits only admins.
func (r *router) require(policy string) echo.MiddlewareFunc {
	return r.authMiddleware.RequireRoles(r.policies[policy])
}
