// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"ledger/internal/delivery/http/middleware"
	"ledger/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler *handler.AccountHandler
	FinanceHandler *handler.FinanceHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler *handler.AccountHandler
	financeHandler *handler.FinanceHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler: params.AccountHandler,
		financeHandler: params.FinanceHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Account provisioning and login are the only unauthenticated routes
	e.POST("/signup", r.accountHandler.SignUp)
	e.POST("/login", r.accountHandler.Login)

	// Routes that require a valid access token
	apiGroup := e.Group("/api")
	apiGroup.Use(r.authMiddleware.Authenticate)
	{
		apiGroup.POST("/expenses", r.financeHandler.AddExpense)
		apiGroup.POST("/bills", r.financeHandler.AddBill)
	}
}
