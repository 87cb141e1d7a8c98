// Package observe provides observability primitives for the info service.
//
// It is a pure instrumentation library: no routing, no transport, no I/O
// beyond exporter setup. The server package wires the observer's tracer,
// meter and logger into its request middleware.
//
// The Logger is the single log sink of the process. It is constructed once,
// filtered by level, and handed to components explicitly or carried in a
// request context via ContextWithLogger.
package observe
