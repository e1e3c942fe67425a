package metrics

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
)

func TestSetupDisabledReturnsNoHandler(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: false,
	})
	if err != nil {
		t.Fatalf("expected no error when disabled, got %v", err)
	}
	if rec == nil {
		t.Fatalf("expected recorder")
	}
	if handler != nil {
		t.Fatalf("expected nil handler when disabled")
	}
	if shutdown == nil {
		t.Fatalf("expected shutdown function")
	}
}

func TestSetupEnabledExportsScoreboardMetrics(t *testing.T) {
	rec, handler, shutdown, err := Setup(context.Background(), TelemetryConfig{
		Enabled: true,
		// No OTLP endpoint; uses Prometheus exporter only.
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	defer func() { _ = shutdown(context.Background()) }()
	if handler == nil {
		t.Fatalf("expected handler when enabled")
	}

	rec.RecordHTTPRequest("GET", "/matches", 200, time.Millisecond)
	rec.RecordMatchStarted()
	rec.RecordScoreUpdate()
	rec.RecordRejection(OpStart, "invalid_argument")
	rec.RecordMatchFinished()

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	body := rr.Body.String()
	for _, name := range []string{"matches_started_total", "score_updates_total", "scoreboard_rejections_total", "http_requests_total"} {
		if !strings.Contains(body, name) {
			t.Fatalf("expected %s in exposition, got:\n%s", name, body)
		}
	}
}

func TestSetupPropagatesExporterFailure(t *testing.T) {
	orig := promReaderFactory
	t.Cleanup(func() { promReaderFactory = orig })
	promReaderFactory = func() (sdkmetric.Reader, http.Handler, error) {
		return nil, nil, errors.New("boom")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true})
	if err == nil || !strings.Contains(err.Error(), "boom") {
		t.Fatalf("expected exporter error, got %v", err)
	}
}

func TestSetupPropagatesOTLPFailure(t *testing.T) {
	orig := otlpReaderFactory
	t.Cleanup(func() { otlpReaderFactory = orig })
	otlpReaderFactory = func(context.Context, string, bool) (sdkmetric.Reader, error) {
		return nil, errors.New("otlp down")
	}

	_, _, _, err := Setup(context.Background(), TelemetryConfig{Enabled: true, OtlpEndpoint: "localhost:4318"})
	if err == nil || !strings.Contains(err.Error(), "otlp down") {
		t.Fatalf("expected otlp error, got %v", err)
	}
}
