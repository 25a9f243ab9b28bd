package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"aisleplan/pkg/auth"
	"aisleplan/pkg/config"

	"go.uber.org/zap"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	return &config.Config{
		Server: config.ServerConfig{
			Port:         "8080",
			ReadTimeout:  5 * time.Second,
			WriteTimeout: 10 * time.Second,
		},
		Uploads: config.UploadsConfig{
			Dir:       t.TempDir(),
			MaxSizeMB: 8,
		},
	}
}

func TestSetupRouter_ServerLimitsFromConfig(t *testing.T) {
	cfg := testConfig(t)
	jwtManager := auth.NewJWTManager("test-secret", time.Hour, time.Hour)

	app := SetupRouter(Handlers{}, jwtManager, cfg, zap.NewNop())

	got := app.Config()
	if got.ReadTimeout != cfg.Server.ReadTimeout {
		t.Errorf("ReadTimeout = %v, want %v", got.ReadTimeout, cfg.Server.ReadTimeout)
	}
	if got.WriteTimeout != cfg.Server.WriteTimeout {
		t.Errorf("WriteTimeout = %v, want %v", got.WriteTimeout, cfg.Server.WriteTimeout)
	}
	if want := cfg.Uploads.MaxSizeMB * 1024 * 1024; got.BodyLimit != want {
		t.Errorf("BodyLimit = %d, want %d", got.BodyLimit, want)
	}
}

func TestSetupRouter_Healthz(t *testing.T) {
	app := SetupRouter(Handlers{}, auth.NewJWTManager("test-secret", time.Hour, time.Hour), testConfig(t), zap.NewNop())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}
