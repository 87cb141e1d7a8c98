package observe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"slices"

	"go.opentelemetry.io/otel/metric"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"

	"github.com/jonwraymond/devops-info-service/observe/exporters"
)

// Config selects where the service's telemetry goes. Tracing and metrics
// are always on; an exporter of "none" keeps spans for log correlation and
// drops them at export time.
type Config struct {
	ServiceName     string
	Version         string
	TracesExporter  string    // otlp|stdout|none
	MetricsExporter string    // otlp|stdout|none
	LogLevel        string    // debug|info|warn|error
	LogOutput       io.Writer // defaults to os.Stderr
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case c.ServiceName == "":
		return ErrMissingServiceName
	case !slices.Contains(ValidExporters, c.TracesExporter):
		return fmt.Errorf("%w: %q", ErrInvalidTracingExporter, c.TracesExporter)
	case !slices.Contains(ValidExporters, c.MetricsExporter):
		return fmt.Errorf("%w: %q", ErrInvalidMetricsExporter, c.MetricsExporter)
	case !slices.Contains(ValidLogLevels, c.LogLevel):
		return fmt.Errorf("%w: %q", ErrInvalidLogLevel, c.LogLevel)
	}
	return nil
}

// Observer hands out the process-wide tracer, meter and logger. It is safe
// for concurrent use. Shutdown flushes pending telemetry within the deadline
// on ctx and is called once, when the process exits.
type Observer interface {
	Tracer() trace.Tracer
	Meter() metric.Meter
	Logger() Logger
	Shutdown(ctx context.Context) error
}

// Logger writes leveled entries with structured fields. Entries logged with
// a ctx carrying a span get its trace and span ids. Logging never fails.
type Logger interface {
	Info(ctx context.Context, msg string, fields ...Field)
	Warn(ctx context.Context, msg string, fields ...Field)
	Error(ctx context.Context, msg string, fields ...Field)
	Debug(ctx context.Context, msg string, fields ...Field)
	With(fields ...Field) Logger
}

// Field is one key/value pair on a log entry.
type Field struct {
	Key   string
	Value any
}

// F is shorthand for constructing a Field.
func F(key string, value any) Field {
	return Field{Key: key, Value: value}
}

// instrumentationName scopes the service's own spans and instruments.
const instrumentationName = "github.com/jonwraymond/devops-info-service"

type observer struct {
	tp     *sdktrace.TracerProvider
	mp     *sdkmetric.MeterProvider
	logger Logger
}

// NewObserver builds the trace and meter providers plus the JSON logger
// described by cfg. Every request is sampled.
func NewObserver(ctx context.Context, cfg Config) (Observer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	res, err := resource.New(ctx,
		resource.WithTelemetrySDK(),
		resource.WithAttributes(
			semconv.ServiceName(cfg.ServiceName),
			semconv.ServiceVersion(cfg.Version),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("observe: resource: %w", err)
	}

	spans, err := exporters.NewTracingExporter(ctx, cfg.TracesExporter)
	if err != nil {
		return nil, fmt.Errorf("observe: traces: %w", err)
	}
	reader, err := exporters.NewMetricsReader(ctx, cfg.MetricsExporter)
	if err != nil {
		_ = spans.Shutdown(ctx)
		return nil, fmt.Errorf("observe: metrics: %w", err)
	}

	logger := NewLogger(cfg.LogLevel)
	if cfg.LogOutput != nil {
		logger = NewLoggerWithWriter(cfg.LogLevel, cfg.LogOutput)
	}

	return &observer{
		tp: sdktrace.NewTracerProvider(
			sdktrace.WithResource(res),
			sdktrace.WithSampler(sdktrace.AlwaysSample()),
			sdktrace.WithBatcher(spans),
		),
		mp: sdkmetric.NewMeterProvider(
			sdkmetric.WithResource(res),
			sdkmetric.WithReader(reader),
		),
		logger: logger,
	}, nil
}

func (o *observer) Tracer() trace.Tracer { return o.tp.Tracer(instrumentationName) }
func (o *observer) Meter() metric.Meter  { return o.mp.Meter(instrumentationName) }
func (o *observer) Logger() Logger       { return o.logger }

// Shutdown flushes pending spans and metrics.
func (o *observer) Shutdown(ctx context.Context) error {
	return errors.Join(o.tp.Shutdown(ctx), o.mp.Shutdown(ctx))
}

// NopLogger returns a logger that discards every entry.
func NopLogger() Logger {
	return &noopLogger{}
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (l *noopLogger) Info(ctx context.Context, msg string, fields ...Field)  {}
func (l *noopLogger) Warn(ctx context.Context, msg string, fields ...Field)  {}
func (l *noopLogger) Error(ctx context.Context, msg string, fields ...Field) {}
func (l *noopLogger) Debug(ctx context.Context, msg string, fields ...Field) {}
func (l *noopLogger) With(fields ...Field) Logger                            { return l }
