package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8080 {
		t.Errorf("expected default port 8080, got %d", cfg.Server.Port)
	}
	if cfg.Redis.SessionTTL != 24*time.Hour {
		t.Errorf("expected default session TTL 24h, got %s", cfg.Redis.SessionTTL)
	}
	if cfg.Email.Enabled() {
		t.Error("email should be disabled without SMTP config")
	}
	if cfg.Cleanup.Retention != 0 {
		t.Errorf("expected retention disabled by default, got %s", cfg.Cleanup.Retention)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("SMTP_HOST", "smtp.example.com")
	t.Setenv("SMTP_FROM", "reports@example.com")
	t.Setenv("RESULT_RETENTION", "720h")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9090 {
		t.Errorf("expected port 9090, got %d", cfg.Server.Port)
	}
	if cfg.Redis.SessionTTL != time.Hour {
		t.Errorf("expected session TTL 1h, got %s", cfg.Redis.SessionTTL)
	}
	if !cfg.Email.Enabled() {
		t.Error("email should be enabled with host and from set")
	}
	if cfg.Cleanup.Retention != 720*time.Hour {
		t.Errorf("expected retention 720h, got %s", cfg.Cleanup.Retention)
	}
}

func TestLoadInvalidPort(t *testing.T) {
	t.Setenv("SERVER_PORT", "70000")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for out-of-range port")
	}
}

func TestValidateSessionTTL(t *testing.T) {
	t.Setenv("SESSION_TTL", "-1h")

	if _, err := Load(); err == nil {
		t.Error("expected validation error for negative session TTL")
	}
}
