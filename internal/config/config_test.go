package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout %s, got %s", defaultShutdownTimeout, cfg.ShutdownTimeout)
	}
	if cfg.Log.Level != defaultLogLevel || cfg.Log.Format != defaultLogFormat {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("expected default service name, got %s", cfg.Metrics.ServiceName)
	}
	if cfg.Metrics.OtlpEndpoint != "" {
		t.Fatalf("expected empty otlp endpoint by default, got %s", cfg.Metrics.OtlpEndpoint)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "5000")
	t.Setenv(envShutdownTimeout, "3s")
	t.Setenv(envLogLevel, "debug")
	t.Setenv(envLogFormat, "json")
	t.Setenv(envMetricsOn, "false")
	t.Setenv(envMetricsPort, "9999")
	t.Setenv(envOtelEndpoint, "collector:4318")
	t.Setenv(envOtelService, "board")
	t.Setenv(envOtelInsecure, "no")

	cfg := Load()

	if cfg.Port != "5000" {
		t.Fatalf("expected port 5000, got %s", cfg.Port)
	}
	if cfg.ShutdownTimeout != 3*time.Second {
		t.Fatalf("expected shutdown timeout 3s, got %s", cfg.ShutdownTimeout)
	}
	if cfg.Log.Level != "debug" || cfg.Log.Format != "json" {
		t.Fatalf("unexpected log overrides %+v", cfg.Log)
	}
	want := MetricsConfig{Enabled: false, Port: "9999", OtlpEndpoint: "collector:4318", ServiceName: "board", OtlpInsecure: false}
	if cfg.Metrics != want {
		t.Fatalf("expected metrics %+v, got %+v", want, cfg.Metrics)
	}
}

func TestLoadInvalidDurationFallsBack(t *testing.T) {
	t.Setenv(envShutdownTimeout, "not-a-duration")

	cfg := Load()

	if cfg.ShutdownTimeout != defaultShutdownTimeout {
		t.Fatalf("expected default shutdown timeout on invalid value, got %s", cfg.ShutdownTimeout)
	}
}

func TestLoadEnvFileMissingIsNotAnError(t *testing.T) {
	loaded, err := LoadEnvFile(filepath.Join(t.TempDir(), "absent.env"))
	if err != nil {
		t.Fatalf("expected no error for missing file, got %v", err)
	}
	if loaded {
		t.Fatalf("expected loaded=false for missing file")
	}
}

func TestLoadEnvFileDoesNotOverrideExisting(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("PORT=7000\nMETRICS_PORT=9100\n"), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv(envPort, "5000")
	t.Setenv(envMetricsPort, "")
	os.Unsetenv(envMetricsPort)

	loaded, err := LoadEnvFile(path)
	if err != nil || !loaded {
		t.Fatalf("expected env file to load, got loaded=%v err=%v", loaded, err)
	}

	cfg := Load()
	if cfg.Port != "5000" {
		t.Fatalf("expected existing PORT to win, got %s", cfg.Port)
	}
	if cfg.Metrics.Port != "9100" {
		t.Fatalf("expected METRICS_PORT from file, got %s", cfg.Metrics.Port)
	}
}

func TestMetricsConfigTelemetry(t *testing.T) {
	m := MetricsConfig{Enabled: true, Port: "9100", OtlpEndpoint: "collector:4318", ServiceName: "board", OtlpInsecure: true}
	tel := m.Telemetry()
	if !tel.Enabled || tel.Port != "9100" || tel.OtlpEndpoint != "collector:4318" || tel.ServiceName != "board" || !tel.OtlpInsecure {
		t.Fatalf("telemetry config not carried over: %+v", tel)
	}
}
