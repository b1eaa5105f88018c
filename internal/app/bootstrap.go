package app

import (
	"fmt"
	"strings"

	"job-portal/internal/delivery/http/handler"
	"job-portal/internal/delivery/http/middleware"
	"job-portal/internal/delivery/http/routes"
	"job-portal/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(c *Container) (*App, func() error, error) {
	if c == nil {
		return nil, nil, fmt.Errorf("nil container")
	}

	f := fiber.New(fiber.Config{
		AppName:   c.Config.App.AppName,
		BodyLimit: int(c.Config.Uploads.MaxResumeSize) + 1<<20,
	})

	errMw := middleware.NewErrorMiddleware()
	accessMw := middleware.NewAccessLogMiddleware(c.Logger)
	f.Use(errMw.Middleware())
	f.Use(accessMw.Middleware())

	authMw := middleware.NewAuthMiddleware(c.JWT)

	registry := &routes.Registry{
		Health:       handler.NewHealthHandler(c.DB),
		Auth:         handler.NewAuthHandler(c.AuthUC),
		Users:        handler.NewUserHandler(c.UserUC, c.ResumeUC),
		Jobs:         handler.NewJobHandler(c.JobUC, c.JobSearchUC, c.MatchingUC, c.UserUC),
		Applications: handler.NewApplicationHandler(c.AppUC, c.UserUC),
		Admin:        handler.NewAdminHandler(c.AdminUC),
		JobsWS:       ws.NewHandler(c.Hub, c.Logger),
		AuthMW:       authMw,
	}
	registry.Register(f)

	go c.Hub.Run()

	app := &App{Fiber: f, Container: c}
	return app, c.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
