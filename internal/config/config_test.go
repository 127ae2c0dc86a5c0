package config_test

import (
	"testing"
	"time"

	"github.com/todoer/backend/internal/config"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "client-secret")
	t.Setenv("OAUTH_STATE_SECRET", "state-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.AppName != "todoer" {
		t.Errorf("unexpected app name %q", cfg.AppName)
	}
	if cfg.Address() != "0.0.0.0:8080" {
		t.Errorf("unexpected address %q", cfg.Address())
	}
	if cfg.Session.CookieName != "todoer_session" {
		t.Errorf("unexpected cookie name %q", cfg.Session.CookieName)
	}
	if cfg.Session.TTL != 24*time.Hour {
		t.Errorf("unexpected session ttl %v", cfg.Session.TTL)
	}
	if cfg.Database.URL == "" {
		t.Error("expected database URL to be derived from parts")
	}
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("SESSION_TTL", "1h")
	t.Setenv("REQUEST_TIMEOUT_SECONDS", "3")
	t.Setenv("DATABASE_URL", "postgres://u:p@db:5432/todoer?sslmode=disable")

	cfg, err := config.Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.HTTP.Port != "9090" {
		t.Errorf("unexpected port %q", cfg.HTTP.Port)
	}
	if cfg.Session.TTL != time.Hour {
		t.Errorf("unexpected session ttl %v", cfg.Session.TTL)
	}
	if cfg.Context.RequestTimeout != 3*time.Second {
		t.Errorf("bare-seconds duration not parsed: %v", cfg.Context.RequestTimeout)
	}
	if cfg.Database.URL != "postgres://u:p@db:5432/todoer?sslmode=disable" {
		t.Errorf("DATABASE_URL not honored: %q", cfg.Database.URL)
	}
}

func TestLoadRequiresOAuthCredentials(t *testing.T) {
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "")
	t.Setenv("OAUTH_STATE_SECRET", "state-secret")

	if _, err := config.Load(); err == nil {
		t.Error("expected error without OAuth client credentials")
	}
}

func TestLoadRequiresStateSecret(t *testing.T) {
	t.Setenv("GOOGLE_OAUTH_CLIENT_ID", "client-id")
	t.Setenv("GOOGLE_OAUTH_CLIENT_SECRET", "client-secret")
	t.Setenv("OAUTH_STATE_SECRET", "")

	if _, err := config.Load(); err == nil {
		t.Error("expected error without state secret")
	}
}
