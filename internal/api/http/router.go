package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/providesk/helpdesk-gateway/internal/api/http/handlers"
	"github.com/providesk/helpdesk-gateway/internal/session"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Auth    *handlers.AuthHandler
	Options *handlers.OptionsHandler
	Tickets *handlers.TicketsHandler
	Session *session.Middleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	app.Post("/auth/google", cfg.Auth.Google)

	protected := app.Group("", cfg.Session.Handle)
	protected.Post("/auth/logout", cfg.Auth.Logout)
	protected.Get("/navigation", cfg.Auth.Navigation)

	protected.Get("/options/departments", cfg.Options.Departments)
	protected.Get("/options/categories", cfg.Options.Categories)
	protected.Get("/options/resolvers", cfg.Options.Resolvers)
	protected.Get("/options/ticket_types", cfg.Options.TicketTypes)

	protected.Post("/tickets", cfg.Tickets.Create)
	protected.Get("/tickets", cfg.Tickets.List)
}
