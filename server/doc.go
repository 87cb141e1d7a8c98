// Package server exposes the service over HTTP.
//
// # Routes
//
// The route table is explicit: DefaultRoutes declares GET / and GET /health,
// and the endpoints list reported by GET / is derived from the same table.
// Resolution is done by gin. A registered method and path wins; a declared
// path with another method gets 405; anything else gets 404. Paths are never
// redirected.
//
// # Request pipeline
//
// Every request passes through the same chain:
//
//	request id → instrumentation (span, metrics, request logger) → fault boundary → handler
//
// The fault boundary turns a handler error or panic into a fixed 500 body
// and logs the detail; clients never see it.
//
// # Configuration
//
// LoadConfig reads HOST, PORT and DEBUG once at startup. DEBUG switches gin
// to debug mode and the log level to debug. It does not change responses.
//
// # Server
//
// Server wraps http.Server with timeouts. Start listens in the background;
// ListenAndServe blocks until its context is cancelled and then shuts down
// gracefully.
package server
