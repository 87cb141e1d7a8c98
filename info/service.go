package info

import (
	"context"
	"slices"
	"time"
)

// Static service identity.
const (
	ServiceName        = "devops-info-service"
	ServiceVersion     = "1.0.0"
	ServiceDescription = "DevOps course info service"
	ServiceFramework   = "Go (Gin)"
)

// Timezone is the label reported next to every timestamp.
const Timezone = "UTC"

// UnknownUserAgent is reported when the request carries no User-Agent.
const UnknownUserAgent = "Unknown"

// Identity describes the service itself.
type Identity struct {
	Name        string `json:"name"`
	Version     string `json:"version"`
	Description string `json:"description"`
	Framework   string `json:"framework"`
}

// DefaultIdentity returns the service identity constants.
func DefaultIdentity() Identity {
	return Identity{
		Name:        ServiceName,
		Version:     ServiceVersion,
		Description: ServiceDescription,
		Framework:   ServiceFramework,
	}
}

// RuntimeFacts describes the process at the moment of the request.
type RuntimeFacts struct {
	UptimeSeconds int64  `json:"uptime_seconds"`
	UptimeHuman   string `json:"uptime_human"`
	CurrentTime   string `json:"current_time"`
	Timezone      string `json:"timezone"`
}

// RequestFacts describes the request being served.
type RequestFacts struct {
	ClientIP  string `json:"client_ip"`
	UserAgent string `json:"user_agent"`
	Method    string `json:"method"`
	Path      string `json:"path"`
}

// Endpoint is one declared route of the service.
type Endpoint struct {
	Path        string `json:"path"`
	Method      string `json:"method"`
	Description string `json:"description"`
}

// ServiceInfo is the document served at the root endpoint.
type ServiceInfo struct {
	Service   Identity     `json:"service"`
	System    SystemFacts  `json:"system"`
	Runtime   RuntimeFacts `json:"runtime"`
	Request   RequestFacts `json:"request"`
	Endpoints []Endpoint   `json:"endpoints"`
}

// SystemSource supplies system facts; *SystemCollector implements it.
type SystemSource interface {
	Gather(ctx context.Context) SystemFacts
}

// CollectorConfig configures a Collector.
type CollectorConfig struct {
	// Identity defaults to DefaultIdentity when its Name is empty.
	Identity Identity

	// Uptime is required.
	Uptime *Uptime

	// System defaults to NewSystemCollector().
	System SystemSource

	// Endpoints is the declared route list, reported verbatim.
	Endpoints []Endpoint

	// Now defaults to time.Now.
	Now func() time.Time
}

// Collector assembles ServiceInfo documents.
type Collector struct {
	identity  Identity
	uptime    *Uptime
	system    SystemSource
	endpoints []Endpoint
	now       func() time.Time
}

// NewCollector creates a Collector. It panics when cfg.Uptime is nil,
// since uptime cannot be reported without a start time.
func NewCollector(cfg CollectorConfig) *Collector {
	if cfg.Uptime == nil {
		panic("info.NewCollector: uptime is nil")
	}
	if cfg.Identity.Name == "" {
		cfg.Identity = DefaultIdentity()
	}
	if cfg.System == nil {
		cfg.System = NewSystemCollector()
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &Collector{
		identity:  cfg.Identity,
		uptime:    cfg.Uptime,
		system:    cfg.System,
		endpoints: slices.Clone(cfg.Endpoints),
		now:       cfg.Now,
	}
}

// Collect builds the ServiceInfo for one request.
func (c *Collector) Collect(ctx context.Context, req RequestFacts) ServiceInfo {
	up := c.uptime.Report()
	if req.UserAgent == "" {
		req.UserAgent = UnknownUserAgent
	}

	return ServiceInfo{
		Service: c.identity,
		System:  c.system.Gather(ctx),
		Runtime: RuntimeFacts{
			UptimeSeconds: up.Seconds,
			UptimeHuman:   up.Human,
			CurrentTime:   c.now().UTC().Format(time.RFC3339),
			Timezone:      Timezone,
		},
		Request:   req,
		Endpoints: append(make([]Endpoint, 0, len(c.endpoints)), c.endpoints...),
	}
}
