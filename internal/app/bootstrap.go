package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"movies/internal/config"
	"movies/internal/delivery/http/handler"
	"movies/internal/delivery/http/middleware"
	"movies/internal/delivery/http/routes"
	v1 "movies/internal/delivery/http/routes/v1"
	"movies/internal/usecase"
	"movies/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
	Hub   *ws.Hub

	container *Container
}

// New wires use cases, handlers and middleware on top of c. Background
// work (hub loop, session janitor) is started by Start.
func New(c *Container) *App {
	f := fiber.New(fiber.Config{AppName: c.Config.App.AppName})
	hub := ws.NewHub(c.Logger)

	store := usecase.NewSessionStore(c.Sessions, ws.NewNotifier(hub), c.Logger)
	sessionUC := usecase.NewSessionUsecase(store, c.Config.Session.TTL)

	api := v1.Handlers{
		Session: handler.NewSessionHandler(sessionUC),
		SignIn:  handler.NewSignInHandler(usecase.NewSignInUsecase(store)),
		Profile: handler.NewProfileHandler(usecase.NewProfileUsecase(store)),
		Review:  handler.NewReviewHandler(usecase.NewReviewUsecase(store, c.Catalog, c.Reviews)),
		Movie:   handler.NewMovieHandler(usecase.NewMovieUsecase(store, c.Catalog, c.Reviews)),
	}

	registerGlobalMiddleware(f, c.Logger)
	routes.NewRegistry(
		handler.NewHealthHandler(c.Config.App.AppName, c.HealthChecks()),
		api,
		ws.NewHandler(hub, sessionUC, c.Logger),
	).Register(f)

	return &App{Fiber: f, Hub: hub, container: c}
}

// Start runs the hub and the session janitor until ctx is done.
func (a *App) Start(ctx context.Context) {
	go a.Hub.Run(ctx)
	go a.container.RunJanitor(ctx)
}

func Bootstrap(cfg config.Config, logger *log.Logger) (*App, func() error, error) {
	ctx, cancel := context.WithCancel(context.Background())

	c, err := NewContainer(ctx, cfg, logger)
	if err != nil {
		cancel()
		return nil, nil, err
	}

	app := New(c)
	app.Start(ctx)

	cleanup := func() error {
		cancel()
		return c.Close()
	}
	return app, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	// access log wraps the error middleware so it sees the final status
	app.Use(middleware.NewAccessLogMiddleware(logger, "/health").Middleware())
	app.Use(middleware.NewErrorMiddleware(logger).Middleware())
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
