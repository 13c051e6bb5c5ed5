package http

import (
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/hallkeeper/hall-service/internal/api/http/handlers"
	"github.com/hallkeeper/hall-service/internal/auth"
	"github.com/hallkeeper/hall-service/internal/domain"
	"github.com/hallkeeper/hall-service/internal/observability"
	"github.com/hallkeeper/hall-service/internal/ratelimit"
)

// RouteConfig bundles dependencies for route registration. A nil Limiter
// leaves signup and login unthrottled.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Auth           *handlers.AuthHandler
	Student        *handlers.StudentHandler
	Meals          *handlers.MealsHandler
	Complaints     *handlers.ComplaintsHandler
	Notices        *handlers.NoticesHandler
	Admin          *handlers.AdminHandler
	AuthMiddleware *auth.AuthMiddleware
	Limiter        *ratelimit.Limiter
	Metrics        *observability.Metrics
	StaticDir      string
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)
	if cfg.Metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(cfg.Metrics.Handler()))
	}

	api := app.Group("/api")

	api.Post("/signup", limited(cfg.Limiter, cfg.Auth.Signup)...)
	api.Post("/login", limited(cfg.Limiter, cfg.Auth.Login)...)

	// Student routes act on the caller's own account, except the notice board
	// which any authenticated caller may read.
	student := api.Group("/student", cfg.AuthMiddleware.Handle)
	owner := auth.RequireAccount()
	student.Get("/dashboard", owner, cfg.Student.Dashboard)
	student.Post("/request-seat", owner, cfg.Student.RequestSeat)
	student.Post("/confirm-payment", owner, cfg.Student.ConfirmPayment)
	student.Get("/meals", owner, cfg.Meals.ListMonth)
	student.Post("/meals", owner, cfg.Meals.Save)
	student.Get("/meal-history", owner, cfg.Meals.History)
	student.Post("/complaints", owner, cfg.Complaints.Submit)
	student.Get("/notices", cfg.Notices.List)

	admin := api.Group("/admin", cfg.AuthMiddleware.Handle, auth.RequireRole(domain.RoleAdmin))
	admin.Get("/users", cfg.Admin.ListUsers)
	admin.Post("/approve-seat", cfg.Admin.ApproveSeat)
	admin.Get("/complaints", cfg.Complaints.List)
	admin.Post("/resolve-complaint", cfg.Complaints.Resolve)
	admin.Post("/notices", cfg.Notices.Post)
	admin.Get("/meals-overview", cfg.Meals.Overview)

	if cfg.StaticDir != "" {
		if info, err := os.Stat(cfg.StaticDir); err == nil && info.IsDir() {
			app.Static("/", cfg.StaticDir)
		}
	}
}

func limited(limiter *ratelimit.Limiter, h fiber.Handler) []fiber.Handler {
	if limiter == nil {
		return []fiber.Handler{h}
	}
	return []fiber.Handler{limiter.Handle, h}
}
