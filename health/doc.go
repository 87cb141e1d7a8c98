// Package health provides the liveness probe of the service.
//
// Liveness checks the process itself and reports the outcome as a Result.
// It is healthy for as long as the process can answer a request.
//
// # HTTP Endpoint
//
// LivenessHandler serves the probe as JSON:
//
//	uptime := info.NewUptime(startedAt)
//	mux.Handle("/health", health.LivenessHandler(health.NewLiveness(uptime), logger))
//
// The body is {"status", "timestamp", "uptime_seconds"}. The response is
// 200 while the process is healthy. It is 503 only when the request was
// abandoned before the check ran. Each probe writes one log line carrying
// the result message and check duration.
package health
