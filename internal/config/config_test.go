package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.ServerPort == "" {
		t.Fatalf("expected default server port")
	}
	if cfg.PostgresURL == "" {
		t.Fatalf("expected default postgres url")
	}
	if cfg.ProfileFetchTimeout <= 0 {
		t.Fatalf("expected default profile fetch timeout")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", ":9000")
	t.Setenv("POSTGRES_URL", "postgres://example")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("PROFILE_SERVICE_URL", "http://profiles:5000")
	t.Setenv("PROFILE_FETCH_TIMEOUT", "10s")

	cfg := Load()
	if cfg.ServerPort != ":9000" {
		t.Fatalf("expected override port")
	}
	if cfg.PostgresURL != "postgres://example" {
		t.Fatalf("expected override postgres")
	}
	if cfg.RedisAddr != "redis:6379" {
		t.Fatalf("expected override redis")
	}
	if cfg.JWTSecret != "secret" {
		t.Fatalf("expected override secret")
	}
	if cfg.ProfileServiceURL != "http://profiles:5000" {
		t.Fatalf("expected override profile service url")
	}
	if cfg.ProfileFetchTimeout != 10*time.Second {
		t.Fatalf("expected override profile fetch timeout")
	}
}
