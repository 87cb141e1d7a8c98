// Command devops-info-service serves service, host and runtime information
// over HTTP.
//
// Usage:
//
//	HOST=0.0.0.0 PORT=5000 DEBUG=false devops-info-service
//
// Environment:
//
//	HOST                   listen host (default 0.0.0.0)
//	PORT                   listen port, 1-65535 (default 5000)
//	DEBUG                  "true" enables gin debug mode and debug logging
//	OTEL_TRACES_EXPORTER   otlp|stdout|none (default none)
//	OTEL_METRICS_EXPORTER  otlp|stdout|none (default none)
//
// Endpoints:
//
//	GET /        service, system, runtime and request information
//	GET /health  liveness probe
//
// The process logs JSON lines to stderr and shuts down gracefully on
// SIGINT or SIGTERM. An invalid configuration exits with status 1.
package main
