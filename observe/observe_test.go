package observe

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
)

func TestConfigValidate_Valid(t *testing.T) {
	cfg := Config{
		ServiceName:     "test-service",
		Version:         "1.0.0",
		TracesExporter:  "stdout",
		MetricsExporter: "stdout",
		LogLevel:        "info",
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigValidate_EmptyChoicesAreDefaults(t *testing.T) {
	cfg := Config{ServiceName: "test-service"}

	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}
}

func TestConfigValidate_MissingServiceName(t *testing.T) {
	cfg := Config{Version: "1.0.0"}

	if err := cfg.Validate(); !errors.Is(err, ErrMissingServiceName) {
		t.Fatalf("Validate() = %v, want ErrMissingServiceName", err)
	}
}

func TestConfigValidate_UnknownTracesExporter(t *testing.T) {
	cfg := Config{ServiceName: "test-service", TracesExporter: "jaeger"}

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalidTracingExporter) {
		t.Fatalf("Validate() = %v, want ErrInvalidTracingExporter", err)
	}
	if !strings.Contains(err.Error(), `"jaeger"`) {
		t.Errorf("error %q does not name the exporter", err)
	}
}

func TestConfigValidate_UnknownMetricsExporter(t *testing.T) {
	cfg := Config{ServiceName: "test-service", MetricsExporter: "prometheus"}

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidMetricsExporter) {
		t.Fatalf("Validate() = %v, want ErrInvalidMetricsExporter", err)
	}
}

func TestConfigValidate_UnknownLogLevel(t *testing.T) {
	cfg := Config{ServiceName: "test-service", LogLevel: "badlevel"}

	if err := cfg.Validate(); !errors.Is(err, ErrInvalidLogLevel) {
		t.Fatalf("Validate() = %v, want ErrInvalidLogLevel", err)
	}
}

func TestNewObserver_SamplesEveryRequest(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{
		ServiceName:     "test-service",
		Version:         "1.0.0",
		TracesExporter:  "none",
		MetricsExporter: "none",
	})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	defer func() { _ = obs.Shutdown(context.Background()) }()

	for range 5 {
		_, span := obs.Tracer().Start(context.Background(), "GET /")
		sc := span.SpanContext()
		span.End()
		if !sc.IsValid() || !sc.IsSampled() {
			t.Fatalf("span context = %+v, want valid and sampled", sc)
		}
	}

	if obs.Meter() == nil {
		t.Error("Meter() = nil")
	}
}

func TestNewObserver_LoggerUsesOutput(t *testing.T) {
	var buf bytes.Buffer
	obs, err := NewObserver(context.Background(), Config{
		ServiceName: "test-service",
		LogLevel:    "info",
		LogOutput:   &buf,
	})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}
	defer func() { _ = obs.Shutdown(context.Background()) }()

	obs.Logger().Info(context.Background(), "hello")
	obs.Logger().Debug(context.Background(), "hidden")
	if !strings.Contains(buf.String(), `"msg":"hello"`) {
		t.Errorf("output = %s, want hello entry", buf.String())
	}
	if strings.Contains(buf.String(), "hidden") {
		t.Errorf("output = %s, debug entry written at info level", buf.String())
	}
}

func TestNewObserver_InvalidConfigReturnsError(t *testing.T) {
	if _, err := NewObserver(context.Background(), Config{}); !errors.Is(err, ErrMissingServiceName) {
		t.Fatalf("NewObserver() error = %v, want ErrMissingServiceName", err)
	}
}

func TestNewObserver_OTLPWithoutEndpoint(t *testing.T) {
	t.Setenv("OTEL_EXPORTER_OTLP_ENDPOINT", "")
	t.Setenv("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT", "")

	_, err := NewObserver(context.Background(), Config{ServiceName: "test-service", TracesExporter: "otlp"})
	if err == nil {
		t.Fatal("NewObserver() error = nil, want missing endpoint")
	}
}

func TestObserver_Shutdown(t *testing.T) {
	obs, err := NewObserver(context.Background(), Config{ServiceName: "test-service"})
	if err != nil {
		t.Fatalf("NewObserver() error = %v", err)
	}

	if err := obs.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown() = %v, want nil", err)
	}
}
