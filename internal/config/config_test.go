package config

import (
	"testing"
	"time"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_NAME", "job-portal")
	t.Setenv("APP_ENV", "test")
	t.Setenv("HTTP_PORT", "8080")
	t.Setenv("JWT_ACCESS_SECRET", "access-secret")
	t.Setenv("JWT_REFRESH_SECRET", "refresh-secret")
}

func TestLoad_RedisTTLFromEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_TTL", "90s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Redis.TTL != 90*time.Second {
		t.Fatalf("got TTL %v, want 90s", cfg.Redis.TTL)
	}
}

func TestLoad_RedisTTLDefault(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_TTL", "")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	if cfg.Redis.TTL != 10*time.Minute {
		t.Fatalf("got TTL %v, want 10m", cfg.Redis.TTL)
	}
}

func TestLoad_ReportsMissingRequiredEnv(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("JWT_ACCESS_SECRET", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for missing JWT_ACCESS_SECRET")
	}
}
