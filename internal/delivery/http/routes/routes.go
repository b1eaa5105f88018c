package routes

import (
	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/domain/user"
	"job-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	Health       *handler.HealthHandler
	Auth         *handler.AuthHandler
	Users        *handler.UserHandler
	Jobs         *handler.JobHandler
	Applications *handler.ApplicationHandler
	Admin        *handler.AdminHandler
	JobsWS       *ws.Handler

	AuthMW *middleware.AuthMiddleware
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	app.Get("/health", r.Health.Health)
	if r.JobsWS != nil {
		app.Get("/ws/jobs", r.JobsWS.HandleJobsWS)
	}

	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	r.Auth.RegisterRoutes(auth)

	requireAuth := r.AuthMW.Middleware()
	candidateOnly := r.AuthMW.RequireRoles(user.RoleCandidate)
	posterOnly := r.AuthMW.RequireRoles(user.RoleEmployer, user.RoleAdmin)
	adminOnly := r.AuthMW.RequireRoles(user.RoleAdmin)

	jobs := api.Group("/jobs")
	jobs.Get("/", r.Jobs.Search)
	jobs.Get("/matched", r.Jobs.Matched, requireAuth, candidateOnly)
	jobs.Get("/company", r.Jobs.CompanyJobs, requireAuth, posterOnly)
	jobs.Post("/", r.Jobs.Create, requireAuth, posterOnly)
	jobs.Get("/:id", r.Jobs.Get)
	jobs.Put("/:id", r.Jobs.Update, requireAuth, posterOnly)
	jobs.Delete("/:id", r.Jobs.Delete, requireAuth, posterOnly)
	jobs.Post("/:id/apply", r.Applications.Apply, requireAuth, candidateOnly)
	jobs.Get("/:id/applied", r.Applications.HasApplied, requireAuth, candidateOnly)
	jobs.Get("/:id/applications", r.Applications.ListForJob, requireAuth, posterOnly)

	users := api.Group("/users", requireAuth)
	users.Get("/me", r.Users.Me)
	users.Post("/me/resume", r.Users.UploadResume, candidateOnly)

	api.Get("/applications", r.Applications.ListMine, requireAuth, candidateOnly)

	companies := api.Group("/companies")
	companies.Get("/", r.Users.ListCompanies)
	companies.Get("/:id", r.Users.GetCompany)

	admin := api.Group("/admin", requireAuth, adminOnly)
	admin.Get("/users", r.Admin.ListUsers)
	admin.Delete("/users/:id", r.Admin.DeleteUser)
	admin.Get("/stats", r.Admin.Stats)
}
