package info

import (
	"fmt"
	"time"
)

// UptimeReport is the process uptime at the moment it was computed.
type UptimeReport struct {
	Seconds int64  `json:"seconds"`
	Human   string `json:"human"`
}

// Uptime reports elapsed time since a fixed start time.
// It holds no mutable state and is safe for concurrent use.
type Uptime struct {
	start time.Time
	now   func() time.Time
}

// NewUptime returns an Uptime measured from start.
// Pass a reading taken with time.Now so the monotonic clock is kept.
func NewUptime(start time.Time) *Uptime {
	return &Uptime{start: start, now: time.Now}
}

// StartedAt returns the start time in UTC.
func (u *Uptime) StartedAt() time.Time {
	return u.start.UTC()
}

// Seconds returns whole seconds elapsed since start, never negative.
func (u *Uptime) Seconds() int64 {
	elapsed := u.now().Sub(u.start)
	if elapsed < 0 {
		return 0
	}
	return int64(elapsed / time.Second)
}

// Report computes the current UptimeReport.
func (u *Uptime) Report() UptimeReport {
	s := u.Seconds()
	return UptimeReport{Seconds: s, Human: FormatHuman(s)}
}

// FormatHuman renders seconds as "<H> hour(s), <M> minute(s)".
// The plural suffix is dropped only for a magnitude of exactly one.
func FormatHuman(seconds int64) string {
	if seconds < 0 {
		seconds = 0
	}
	hours := seconds / 3600
	minutes := (seconds % 3600) / 60
	return fmt.Sprintf("%d %s, %d %s",
		hours, plural(hours, "hour"),
		minutes, plural(minutes, "minute"))
}

func plural(n int64, unit string) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
