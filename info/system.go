package info

import (
	"context"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/host"
	"golang.org/x/sync/singleflight"
)

// DefaultHostname is reported when the host name cannot be determined.
const DefaultHostname = "localhost"

// DefaultHostLookupTimeout bounds a single host lookup. Facts that are not
// available in time fall back to runtime defaults.
const DefaultHostLookupTimeout = 2 * time.Second

// SystemFacts describes the host and runtime serving the request.
type SystemFacts struct {
	Hostname        string `json:"hostname"`
	Platform        string `json:"platform"`
	PlatformVersion string `json:"platform_version"`
	Architecture    string `json:"architecture"`
	CPUCount        int    `json:"cpu_count"`
	RuntimeVersion  string `json:"runtime_version"`
}

// SystemCollector gathers SystemFacts from the operating system.
//
// Every call queries the host again; nothing is cached between calls.
// Callers that arrive while a lookup is already in flight share its
// result instead of starting another one.
type SystemCollector struct {
	group    singleflight.Group
	timeout  time.Duration
	hostInfo func(ctx context.Context) (*host.InfoStat, error)
	hostname func() (string, error)
	numCPU   func() int
}

// NewSystemCollector returns a collector backed by gopsutil.
func NewSystemCollector() *SystemCollector {
	return &SystemCollector{
		timeout:  DefaultHostLookupTimeout,
		hostInfo: host.InfoWithContext,
		hostname: os.Hostname,
		numCPU:   runtime.NumCPU,
	}
}

// Gather reads the current system facts. It never fails: values the host
// cannot report are replaced with defaults from the Go runtime.
func (c *SystemCollector) Gather(ctx context.Context) SystemFacts {
	// The shared lookup must not be cut short by whichever caller started it.
	shared := context.WithoutCancel(ctx)
	v, _, _ := c.group.Do("host", func() (any, error) {
		return c.gather(shared), nil
	})
	return v.(SystemFacts)
}

func (c *SystemCollector) gather(ctx context.Context) SystemFacts {
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	var hi host.InfoStat
	if c.hostInfo != nil {
		// gopsutil may return partial data alongside an error; keep what it found.
		if stat, _ := c.hostInfo(ctx); stat != nil {
			hi = *stat
		}
	}

	facts := SystemFacts{
		Hostname:        c.resolveHostname(hi.Hostname),
		Platform:        firstNonEmpty(hi.OS, runtime.GOOS),
		PlatformVersion: platformVersion(hi),
		Architecture:    firstNonEmpty(hi.KernelArch, runtime.GOARCH),
		CPUCount:        1,
		RuntimeVersion:  runtime.Version(),
	}
	if c.numCPU != nil {
		if n := c.numCPU(); n > 0 {
			facts.CPUCount = n
		}
	}
	return facts
}

func (c *SystemCollector) resolveHostname(fromHost string) string {
	if name := strings.TrimSpace(fromHost); name != "" {
		return name
	}
	if c.hostname != nil {
		if name, err := c.hostname(); err == nil && strings.TrimSpace(name) != "" {
			return strings.TrimSpace(name)
		}
	}
	return DefaultHostname
}

// platformVersion prefers the distribution release, then the kernel
// version, then the Go target pair.
func platformVersion(hi host.InfoStat) string {
	if hi.Platform != "" {
		return strings.TrimSpace(hi.Platform + " " + hi.PlatformVersion)
	}
	if hi.KernelVersion != "" {
		return hi.KernelVersion
	}
	return runtime.GOOS + " " + runtime.GOARCH
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			return v
		}
	}
	return ""
}
