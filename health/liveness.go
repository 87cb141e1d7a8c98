package health

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// UptimeSource reports whole seconds since the process started.
// *info.Uptime implements it.
type UptimeSource interface {
	Seconds() int64
}

// LivenessResponse is the JSON body of the liveness probe.
type LivenessResponse struct {
	Status        string `json:"status"`
	Timestamp     string `json:"timestamp"`
	UptimeSeconds int64  `json:"uptime_seconds"`

	// Health is the typed form of Status.
	Health Status `json:"-"`
}

// HTTPStatus returns the response code matching the reported status.
func (r LivenessResponse) HTTPStatus() int {
	return r.Health.HTTPStatus()
}

// Liveness checks that the process is up.
type Liveness struct {
	uptime UptimeSource
	now    func() time.Time
}

// NewLiveness creates a liveness checker reporting uptime from src.
// It panics when src is nil.
func NewLiveness(src UptimeSource) *Liveness {
	if src == nil {
		panic("health.NewLiveness: uptime source is nil")
	}
	return &Liveness{uptime: src, now: time.Now}
}

// Check reports healthy unless ctx is already done.
func (l *Liveness) Check(ctx context.Context) Result {
	start := l.now()
	if err := ctx.Err(); err != nil {
		sentinel := ErrCheckFailed
		if errors.Is(err, context.DeadlineExceeded) {
			sentinel = ErrCheckTimeout
		}
		return Unhealthy("request abandoned", fmt.Errorf("%w: %w", sentinel, err)).
			WithDuration(l.now().Sub(start))
	}
	return Healthy("process is serving").WithDuration(l.now().Sub(start))
}

// Response renders result as the probe body.
func (l *Liveness) Response(result Result) LivenessResponse {
	return LivenessResponse{
		Status:        result.Status.String(),
		Timestamp:     result.Timestamp.UTC().Format(time.RFC3339),
		UptimeSeconds: l.uptime.Seconds(),
		Health:        result.Status,
	}
}
