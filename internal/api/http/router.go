package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/team-pulse/internal/api/http/handlers"
	"github.com/spec-kit/team-pulse/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Members        *handlers.MembersHandler
	Announcements  *handlers.AnnouncementsHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)
	authGroup.Post("/password/change", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated(), cfg.Users.ChangePassword)

	api := app.Group("/api", cfg.AuthMiddleware.Handle, auth.RequireAuthenticated())

	api.Get("/members", cfg.Members.List)
	api.Post("/members", cfg.Members.Create)
	api.Patch("/members/:id", cfg.Members.Patch)
	api.Delete("/members/:id", cfg.Members.Delete)

	api.Get("/projects", cfg.Members.Projects)
	api.Get("/projects/workloads", cfg.Members.Workloads)

	api.Get("/announcements", cfg.Announcements.List)
	admin := api.Group("/announcements", auth.RequireAdmin())
	admin.Post("/", cfg.Announcements.Create)
	admin.Put("/:id", cfg.Announcements.Update)
	admin.Post("/:id/toggle", cfg.Announcements.Toggle)
	admin.Delete("/:id", cfg.Announcements.Delete)
}
