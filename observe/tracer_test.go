package observe

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"go.opentelemetry.io/otel/trace"
)

func newRecordingTracer() (*tracerImpl, *tracetest.SpanRecorder) {
	recorder := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	return &tracerImpl{tracer: tp.Tracer("test")}, recorder
}

func spanAttr(span sdktrace.ReadOnlySpan, key string) (attribute.Value, bool) {
	for _, attr := range span.Attributes() {
		if string(attr.Key) == key {
			return attr.Value, true
		}
	}
	return attribute.Value{}, false
}

// TestRequestMeta_SpanName verifies span names use the route pattern.
func TestRequestMeta_SpanName(t *testing.T) {
	tests := []struct {
		name string
		meta RequestMeta
		want string
	}{
		{"root", RequestMeta{Method: "GET", Route: "/"}, "GET /"},
		{"health", RequestMeta{Method: "GET", Route: "/health", Path: "/health"}, "GET /health"},
		{"unmatched", RequestMeta{Method: "POST", Path: "/nope"}, "POST unmatched"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.meta.SpanName(); got != tc.want {
				t.Errorf("expected %q, got %q", tc.want, got)
			}
		})
	}
}

// TestTracer_SpanAttributes verifies request attributes are present on span.
func TestTracer_SpanAttributes(t *testing.T) {
	tr, recorder := newRecordingTracer()
	meta := RequestMeta{
		Method:    "GET",
		Route:     "/",
		Path:      "/",
		ClientIP:  "192.0.2.10",
		RequestID: "req-1",
	}

	_, span := tr.StartSpan(context.Background(), meta)
	tr.EndSpan(span, 200, nil)

	spans := recorder.Ended()
	if len(spans) != 1 {
		t.Fatalf("expected 1 span, got %d", len(spans))
	}
	s := spans[0]

	if s.Name() != "GET /" {
		t.Errorf("expected span name 'GET /', got %q", s.Name())
	}
	if s.SpanKind() != trace.SpanKindServer {
		t.Errorf("expected server span kind, got %v", s.SpanKind())
	}

	wantStrings := map[string]string{
		"http.request.method": "GET",
		"http.route":          "/",
		"url.path":            "/",
		"client.address":      "192.0.2.10",
		"request.id":          "req-1",
	}
	for key, want := range wantStrings {
		v, ok := spanAttr(s, key)
		if !ok {
			t.Errorf("missing attribute %s", key)
			continue
		}
		if v.AsString() != want {
			t.Errorf("attribute %s = %q, want %q", key, v.AsString(), want)
		}
	}
	if v, ok := spanAttr(s, "http.response.status_code"); !ok || v.AsInt64() != 200 {
		t.Errorf("expected http.response.status_code=200, got %v", v.AsInt64())
	}
	if s.Status().Code != codes.Ok {
		t.Errorf("expected Ok status, got %v", s.Status().Code)
	}
}

// TestTracer_ErrorRecorded verifies a fault marks the span as failed.
func TestTracer_ErrorRecorded(t *testing.T) {
	tr, recorder := newRecordingTracer()

	_, span := tr.StartSpan(context.Background(), RequestMeta{Method: "GET", Route: "/"})
	tr.EndSpan(span, 500, errors.New("boom"))

	s := recorder.Ended()[0]
	if s.Status().Code != codes.Error {
		t.Errorf("expected Error status, got %v", s.Status().Code)
	}
	if s.Status().Description != "boom" {
		t.Errorf("expected description 'boom', got %q", s.Status().Description)
	}
	if v, _ := spanAttr(s, "request.error"); !v.AsBool() {
		t.Error("expected request.error=true")
	}
	if len(s.Events()) == 0 {
		t.Error("expected the error to be recorded as a span event")
	}
}

// TestTracer_ServerStatusWithoutError verifies a 5xx without fault still fails the span.
func TestTracer_ServerStatusWithoutError(t *testing.T) {
	tr, recorder := newRecordingTracer()

	_, span := tr.StartSpan(context.Background(), RequestMeta{Method: "GET", Route: "/"})
	tr.EndSpan(span, 503, nil)

	if got := recorder.Ended()[0].Status().Code; got != codes.Error {
		t.Errorf("expected Error status, got %v", got)
	}
}

// TestTracer_ClientErrorIsNotFailure verifies 4xx responses keep an Ok span.
func TestTracer_ClientErrorIsNotFailure(t *testing.T) {
	tr, recorder := newRecordingTracer()

	_, span := tr.StartSpan(context.Background(), RequestMeta{Method: "GET"})
	tr.EndSpan(span, 404, nil)

	s := recorder.Ended()[0]
	if s.Status().Code != codes.Ok {
		t.Errorf("expected Ok status, got %v", s.Status().Code)
	}
	if v, _ := spanAttr(s, "http.route"); v.AsString() != UnmatchedRoute {
		t.Errorf("expected http.route=%q, got %q", UnmatchedRoute, v.AsString())
	}
}

// TestTracer_ContextCarriesSpan verifies StartSpan returns a context holding the span.
func TestTracer_ContextCarriesSpan(t *testing.T) {
	tr, _ := newRecordingTracer()

	ctx, span := tr.StartSpan(context.Background(), RequestMeta{Method: "GET", Route: "/"})
	defer tr.EndSpan(span, 200, nil)

	if !trace.SpanFromContext(ctx).SpanContext().Equal(span.SpanContext()) {
		t.Error("expected returned context to carry the started span")
	}
}
