package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

const (
	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	App     AppConfig
	Session SessionConfig
	Redis   RedisConfig
}

type AppConfig struct {
	AppName     string `env:"APP_NAME" envDefault:"movies"`
	Environment string `env:"APP_ENV" envDefault:"development"`
	HTTPPort    string `env:"HTTP_PORT,required,notEmpty"`
}

type SessionConfig struct {
	Backend       string        `env:"SESSION_BACKEND" envDefault:"memory"`
	TTL           time.Duration `env:"SESSION_TTL" envDefault:"24h"`
	PurgeInterval time.Duration `env:"SESSION_PURGE_INTERVAL" envDefault:"1m"`
}

type RedisConfig struct {
	Host     string `env:"REDIS_HOST" envDefault:"localhost"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

var errInvalidConfig = errors.New("invalid configuration")

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.normalize(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) normalize() error {
	c.App.HTTPPort = strings.TrimSpace(c.App.HTTPPort)
	c.Session.Backend = strings.ToLower(strings.TrimSpace(c.Session.Backend))

	var problems []string
	switch c.Session.Backend {
	case SessionBackendMemory, SessionBackendRedis:
	default:
		problems = append(problems, fmt.Sprintf("SESSION_BACKEND=%q", c.Session.Backend))
	}
	if c.Session.TTL <= 0 {
		problems = append(problems, "SESSION_TTL must be positive")
	}
	if c.Session.PurgeInterval <= 0 {
		problems = append(problems, "SESSION_PURGE_INTERVAL must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", errInvalidConfig, strings.Join(problems, ", "))
	}
	return nil
}

func IsInvalid(err error) bool {
	return errors.Is(err, errInvalidConfig)
}
