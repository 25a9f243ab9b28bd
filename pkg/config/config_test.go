package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Server.Port)
	}
	if cfg.Database.DBName != "aisleplan" {
		t.Errorf("expected default db name aisleplan, got %s", cfg.Database.DBName)
	}
	if cfg.JWT.Expiration != 24*time.Hour {
		t.Errorf("expected 24h token expiration, got %v", cfg.JWT.Expiration)
	}
	if cfg.Uploads.Dir != "uploads" {
		t.Errorf("expected default upload dir, got %s", cfg.Uploads.Dir)
	}
	if !cfg.Metrics.Enabled {
		t.Error("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	os.Clearenv()
	os.Setenv("SERVER_PORT", "3000")
	os.Setenv("DB_HOST", "db.internal")
	os.Setenv("METRICS_ENABLED", "false")
	os.Setenv("JWT_EXPIRATION_HOURS", "1")
	defer os.Clearenv()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != "3000" {
		t.Errorf("expected port 3000, got %s", cfg.Server.Port)
	}
	if cfg.Database.Host != "db.internal" {
		t.Errorf("expected db host override, got %s", cfg.Database.Host)
	}
	if cfg.Metrics.Enabled {
		t.Error("expected metrics disabled")
	}
	if cfg.JWT.Expiration != time.Hour {
		t.Errorf("expected 1h token expiration, got %v", cfg.JWT.Expiration)
	}
}
