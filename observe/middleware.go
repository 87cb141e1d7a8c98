package observe

import (
	"context"
	"time"
)

// HandleFunc is the signature of a request handler as seen by Middleware.
// It reports the response status it produced and any fault it recovered.
type HandleFunc func(ctx context.Context, meta RequestMeta) (status int, err error)

// Middleware wraps request handling with tracing, metrics and a
// request-scoped logger.
//
// Contract:
//   - Concurrency: Wrap() returns a thread-safe HandleFunc.
//   - Context: the wrapped function receives a context carrying the span and
//     a logger bound to the request (see LoggerFromContext).
//   - Errors: errors from the wrapped function are recorded and propagated unchanged.
//   - Logging: the middleware itself writes no access log; handlers decide
//     what to log.
type Middleware struct {
	tracer  Tracer
	metrics Metrics
	logger  Logger
}

// NewMiddleware creates a new Middleware with the given observability components.
func NewMiddleware(tracer Tracer, metrics Metrics, logger Logger) *Middleware {
	if tracer == nil {
		tracer = newNoopTracer()
	}
	if metrics == nil {
		metrics = &noopMetrics{}
	}
	if logger == nil {
		logger = NopLogger()
	}
	return &Middleware{
		tracer:  tracer,
		metrics: metrics,
		logger:  logger,
	}
}

// Wrap wraps a HandleFunc with tracing, metrics and logger propagation.
func (m *Middleware) Wrap(fn HandleFunc) HandleFunc {
	return func(ctx context.Context, meta RequestMeta) (int, error) {
		ctx, span := m.tracer.StartSpan(ctx, meta)

		reqLogger := m.logger
		if meta.RequestID != "" {
			reqLogger = reqLogger.With(Field{Key: "request_id", Value: meta.RequestID})
		}
		ctx = ContextWithLogger(ctx, reqLogger)

		start := time.Now()
		status, err := fn(ctx, meta)
		duration := time.Since(start)

		m.tracer.EndSpan(span, status, err)
		m.metrics.RecordRequest(ctx, meta, status, duration, err)

		return status, err
	}
}

// Logger returns the base logger handed to wrapped handlers.
func (m *Middleware) Logger() Logger {
	return m.logger
}

// MiddlewareFromObserver creates a Middleware from an Observer.
func MiddlewareFromObserver(obs Observer) (*Middleware, error) {
	if obs == nil {
		return nil, ErrNilObserver
	}

	tracer := newTracer(obs.Tracer())

	metrics, err := newMetrics(obs.Meter())
	if err != nil {
		return nil, err
	}

	return NewMiddleware(tracer, metrics, obs.Logger()), nil
}
