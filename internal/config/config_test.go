package config

import (
	"errors"
	"os"
	"testing"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/recruitment")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("APP_ENV", "")

	cfg, err := LoadConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.HTTPPort != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.HTTPPort)
	}
	if cfg.SessionSecret != devSessionSecret {
		t.Fatalf("expected dev fallback secret, got %q", cfg.SessionSecret)
	}
	if cfg.IsProduction() {
		t.Fatalf("expected non-production by default")
	}
}

func TestLoadConfigMissingSecretInProduction(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/recruitment")
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("APP_ENV", "production")

	_, err := LoadConfig()
	if !errors.Is(err, ErrSessionSecretRequired) {
		t.Fatalf("expected ErrSessionSecretRequired, got %v", err)
	}
}

func TestLoadConfigMissingDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "placeholder")
	os.Unsetenv("DATABASE_URL")

	if _, err := LoadConfig(); err == nil {
		t.Fatalf("expected error for missing DATABASE_URL")
	}
}
