package routes

import (
	"movies/internal/delivery/http/handler"
	v1 "movies/internal/delivery/http/routes/v1"

	"github.com/gofiber/fiber/v3"
)

// WSRegistrar mounts the event stream outside the JSON API.
type WSRegistrar interface {
	RegisterRoutes(r fiber.Router)
}

type Registry struct {
	health *handler.HealthHandler
	v1     v1.Handlers
	ws     WSRegistrar
}

func NewRegistry(health *handler.HealthHandler, api v1.Handlers, ws WSRegistrar) *Registry {
	return &Registry{health: health, v1: api, ws: ws}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.registerHealth(app)
	r.registerAPI(app)
	if r.ws != nil {
		r.ws.RegisterRoutes(app)
	}
}

func (r *Registry) registerHealth(app *fiber.App) {
	if r.health == nil {
		return
	}
	r.health.RegisterRoutes(app)
}

func (r *Registry) registerAPI(app *fiber.App) {
	api := app.Group("/api")
	v1.Register(api.Group("/v1"), r.v1)
}
