package health

import "errors"

var (
	// ErrCheckFailed indicates a health check failed.
	ErrCheckFailed = errors.New("health: check failed")

	// ErrCheckTimeout indicates a health check ran out of time.
	ErrCheckTimeout = errors.New("health: check timeout")
)
