package handler

import (
	"context"
	"time"

	"movies/internal/pkg/response"

	"github.com/gofiber/fiber/v3"
)

// HealthCheck reports whether a dependency is usable.
type HealthCheck func(ctx context.Context) error

type HealthHandler struct {
	appName string
	checks  map[string]HealthCheck
}

func NewHealthHandler(appName string, checks map[string]HealthCheck) *HealthHandler {
	return &HealthHandler{appName: appName, checks: checks}
}

func (h *HealthHandler) RegisterRoutes(r fiber.Router) {
	if r == nil {
		return
	}
	r.Get("/health", h.Health)
}

func (h *HealthHandler) Health(c fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	deps := make(map[string]string, len(h.checks))
	healthy := true
	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			deps[name] = "down"
			healthy = false
			continue
		}
		deps[name] = "up"
	}

	data := fiber.Map{"app": h.appName, "dependencies": deps}
	if !healthy {
		return response.Error(c, fiber.StatusServiceUnavailable, response.MessageServiceUnavailable, data)
	}
	return response.Success(c, fiber.StatusOK, response.MessageOK, data)
}
