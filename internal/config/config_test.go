package config

import (
	"testing"
	"time"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.AppName != "movies" || cfg.App.Environment != "development" {
		t.Fatalf("unexpected app config %+v", cfg.App)
	}
	if cfg.Session.Backend != SessionBackendMemory {
		t.Fatalf("backend = %q, want memory", cfg.Session.Backend)
	}
	if cfg.Session.TTL != 24*time.Hour || cfg.Session.PurgeInterval != time.Minute {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
	if cfg.Redis.Host != "localhost" || cfg.Redis.Port != "6379" {
		t.Fatalf("unexpected redis config %+v", cfg.Redis)
	}
}

func TestLoad_MissingPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "")
	if _, err := Load(); err == nil {
		t.Fatalf("expected error when HTTP_PORT is empty")
	}
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("HTTP_PORT", " 9090 ")
	t.Setenv("SESSION_BACKEND", "Redis")
	t.Setenv("SESSION_TTL", "30m")
	t.Setenv("REDIS_DB", "2")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.HTTPPort != "9090" {
		t.Fatalf("port = %q", cfg.App.HTTPPort)
	}
	if cfg.Session.Backend != SessionBackendRedis || cfg.Session.TTL != 30*time.Minute {
		t.Fatalf("unexpected session config %+v", cfg.Session)
	}
	if cfg.Redis.DB != 2 {
		t.Fatalf("redis db = %d", cfg.Redis.DB)
	}
}

func TestLoad_InvalidBackend(t *testing.T) {
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("SESSION_BACKEND", "postgres")

	_, err := Load()
	if !IsInvalid(err) {
		t.Fatalf("expected invalid config error, got %v", err)
	}
}
