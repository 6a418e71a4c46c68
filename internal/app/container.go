package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"movies/internal/config"
	"movies/internal/delivery/http/handler"
	"movies/internal/domain/movie"
	"movies/internal/domain/session"
	"movies/internal/infrastructure/cache"
	"movies/internal/repository"
)

// Container holds the process-wide collaborators the HTTP app is built on.
type Container struct {
	Config   config.Config
	Logger   *log.Logger
	Sessions session.Repository
	Reviews  *repository.MemoryReviewRepository
	Catalog  *movie.Catalog

	memory *repository.MemorySessionRepository
	redis  *cache.Redis
}

func NewContainer(ctx context.Context, cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	c := &Container{
		Config:  cfg,
		Logger:  logger,
		Reviews: repository.NewMemoryReviewRepository(),
		Catalog: movie.DefaultCatalog(),
	}

	switch cfg.Session.Backend {
	case config.SessionBackendRedis:
		connectCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()

		rc, err := cache.NewRedis(connectCtx, cfg.Redis, logger)
		if err != nil {
			return nil, fmt.Errorf("connect session store: %w", err)
		}
		c.redis = rc
		c.Sessions = repository.NewRedisSessionRepository(rc)
	default:
		c.memory = repository.NewMemorySessionRepository()
		c.Sessions = c.memory
	}

	logger.Printf("Container ready | session_backend=%s session_ttl=%s", cfg.Session.Backend, cfg.Session.TTL)
	return c, nil
}

// HealthChecks lists the dependencies /health reports on.
func (c *Container) HealthChecks() map[string]handler.HealthCheck {
	checks := map[string]handler.HealthCheck{}
	if c.redis != nil {
		checks["redis"] = c.redis.Ping
	}
	return checks
}

// RunJanitor purges expired in-memory sessions until ctx is done. Redis
// expires keys on its own, so nothing runs for that backend.
func (c *Container) RunJanitor(ctx context.Context) {
	if c.memory == nil {
		return
	}
	interval := c.Config.Session.PurgeInterval
	if interval <= 0 {
		interval = time.Minute
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			n, err := c.memory.PurgeExpired(ctx)
			if err != nil {
				c.Logger.Printf("Session purge failed | err=%v", err)
				continue
			}
			if n > 0 {
				c.Logger.Printf("Session purge | removed=%d remaining=%d", n, c.memory.Len())
			}
		}
	}
}

func (c *Container) Close() error {
	if c == nil || c.redis == nil {
		return nil
	}
	return c.redis.Close()
}
