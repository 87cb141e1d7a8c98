// Package info aggregates the facts reported by the service's root endpoint.
//
// # Uptime
//
// Uptime is computed from a start time captured once at process start and
// injected by the caller:
//
//	uptime := info.NewUptime(time.Now())
//	report := uptime.Report() // {Seconds: 3661, Human: "1 hour, 1 minute"}
//
// The start reading keeps Go's monotonic clock, so reported seconds never
// decrease during the life of the process.
//
// # System Facts
//
// SystemCollector reads host facts from the operating system on every call.
// Lookups never fail: anything the host cannot report, or cannot report
// within DefaultHostLookupTimeout, is replaced by a platform default taken
// from the Go runtime. Callers arriving while a lookup runs share its result.
//
// # Service Info
//
// Collector combines identity, system facts, uptime, request facts and the
// declared endpoints into the ServiceInfo document:
//
//	collector := info.NewCollector(info.CollectorConfig{
//	    Uptime:    uptime,
//	    System:    info.NewSystemCollector(),
//	    Endpoints: endpoints,
//	})
//	doc := collector.Collect(ctx, info.RequestFacts{Method: "GET", Path: "/"})
package info
