package main

import (
	"os"
	"path/filepath"
	"testing"
)

// Smoke test to ensure main honors SKIP_SERVER_RUN and does not block test runs.
func TestMainSkipsWhenEnvSet(t *testing.T) {
	t.Setenv("SKIP_SERVER_RUN", "1")
	main()
}

func TestBootstrapReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoreboard.env")
	if err := os.WriteFile(path, []byte("PORT=4555\nMETRICS_ENABLED=false\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	// Registered so t.Setenv restores the process env after godotenv writes it.
	t.Setenv("PORT", "")
	t.Setenv("METRICS_ENABLED", "")
	os.Unsetenv("PORT")
	os.Unsetenv("METRICS_ENABLED")

	cfg, logger := bootstrap()
	if logger == nil {
		t.Fatalf("expected logger")
	}
	if cfg.Port != "4555" {
		t.Fatalf("expected port from env file, got %q", cfg.Port)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled by env file")
	}
}

func TestBootstrapKeepsProcessEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scoreboard.env")
	if err := os.WriteFile(path, []byte("PORT=4555\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("ENV_FILE", path)
	t.Setenv("PORT", "4999")

	cfg, _ := bootstrap()
	if cfg.Port != "4999" {
		t.Fatalf("expected process env to win, got %q", cfg.Port)
	}
}
