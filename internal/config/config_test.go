package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

var envVars = []string{
	"ARBITER_PORT", "ARBITER_METRICS_PORT", "ARBITER_ADMIN_TOKEN", "ARBITER_RATE_LIMIT",
	"ARBITER_HERMES_URL", "ARBITER_CONSISTENCY_THRESHOLD", "ARBITER_LOG_LEVEL", "ARBITER_LOG_FORMAT",
}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envVars {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 8700 {
		t.Errorf("expected port 8700, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected metrics port 8701, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.RateLimitPerMinute != 120 {
		t.Errorf("expected rate limit 120, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Hermes.URL != "nats://localhost:4222" {
		t.Errorf("expected nats URL, got %s", cfg.Hermes.URL)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got '%s'", cfg.Logging.Format)
	}

	if math.Abs(cfg.AHP.ConsistencyThreshold-0.1) > 1e-12 {
		t.Errorf("expected threshold 0.1, got %f", cfg.AHP.ConsistencyThreshold)
	}
	expectedRI := []float64{0, 0, 0.58, 0.9, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49}
	if len(cfg.AHP.RandomIndex) != len(expectedRI) {
		t.Fatalf("expected %d RI entries, got %d", len(expectedRI), len(cfg.AHP.RandomIndex))
	}
	for i, v := range expectedRI {
		if cfg.AHP.RandomIndex[i] != v {
			t.Errorf("RI[%d]: expected %f, got %f", i, v, cfg.AHP.RandomIndex[i])
		}
	}
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ARBITER_PORT", "9000")
	t.Setenv("ARBITER_METRICS_PORT", "9001")
	t.Setenv("ARBITER_ADMIN_TOKEN", "secret-token")
	t.Setenv("ARBITER_RATE_LIMIT", "30")
	t.Setenv("ARBITER_HERMES_URL", "nats://nats:4222")
	t.Setenv("ARBITER_CONSISTENCY_THRESHOLD", "0.15")
	t.Setenv("ARBITER_LOG_LEVEL", "debug")
	t.Setenv("ARBITER_LOG_FORMAT", "text")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.Server.Port != 9000 {
		t.Errorf("expected port 9000, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 9001 {
		t.Errorf("expected metrics port 9001, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Server.AdminToken != "secret-token" {
		t.Errorf("expected admin token 'secret-token', got '%s'", cfg.Server.AdminToken)
	}
	if cfg.Server.RateLimitPerMinute != 30 {
		t.Errorf("expected rate limit 30, got %d", cfg.Server.RateLimitPerMinute)
	}
	if cfg.Hermes.URL != "nats://nats:4222" {
		t.Errorf("expected hermes URL, got '%s'", cfg.Hermes.URL)
	}
	if cfg.AHP.ConsistencyThreshold != 0.15 {
		t.Errorf("expected threshold 0.15, got %f", cfg.AHP.ConsistencyThreshold)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got '%s'", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "text" {
		t.Errorf("expected log format 'text', got '%s'", cfg.Logging.Format)
	}
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "arbiter.yaml")
	data := `server:
  port: 8800
hermes:
  url: ""
ahp:
  consistency_threshold: 0.08
  random_index: [0, 0, 0.58, 0.9, 1.12, 1.24, 1.32, 1.41, 1.45, 1.49, 1.51, 1.48]
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Server.Port != 8800 {
		t.Errorf("expected port 8800, got %d", cfg.Server.Port)
	}
	if cfg.Server.MetricsPort != 8701 {
		t.Errorf("expected default metrics port to survive, got %d", cfg.Server.MetricsPort)
	}
	if cfg.Hermes.URL != "" {
		t.Errorf("expected hermes disabled, got '%s'", cfg.Hermes.URL)
	}
	if cfg.AHP.ConsistencyThreshold != 0.08 {
		t.Errorf("expected threshold 0.08, got %f", cfg.AHP.ConsistencyThreshold)
	}
	ri := cfg.RandomIndexTable()
	if v, ok := ri.Lookup(11); !ok || v != 1.51 {
		t.Errorf("expected RI 1.51 for n=11, got %f (%v)", v, ok)
	}
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		env  map[string]string
	}{
		{"zero threshold", "ahp:\n  consistency_threshold: 0\n", nil},
		{"negative random index", "ahp:\n  random_index: [0, 0, -0.58]\n", nil},
		{"empty random index", "ahp:\n  random_index: []\n", nil},
		{"bad log format", "", map[string]string{"ARBITER_LOG_FORMAT": "xml"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			path := filepath.Join(t.TempDir(), "arbiter.yaml")
			if err := os.WriteFile(path, []byte(tt.yaml), 0o644); err != nil {
				t.Fatal(err)
			}
			if _, err := Load(path); err == nil {
				t.Error("expected validation error")
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
			t.Error("expected read error")
		}
	})
}
