package server

import (
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// Environment variables read by LoadConfig.
const (
	EnvHost  = "HOST"
	EnvPort  = "PORT"
	EnvDebug = "DEBUG"
)

// Defaults applied when the environment leaves a setting unset.
const (
	DefaultHost = "0.0.0.0"
	DefaultPort = 5000
)

// Config holds the server settings. It is read once at startup and never
// reloaded.
type Config struct {
	Host  string
	Port  int
	Debug bool

	ReadTimeout       time.Duration
	ReadHeaderTimeout time.Duration
	WriteTimeout      time.Duration
	IdleTimeout       time.Duration
	ShutdownTimeout   time.Duration
}

// LoadConfig builds a Config from getenv (os.Getenv when nil).
//
// HOST defaults to 0.0.0.0 and PORT to 5000. DEBUG is true only for the
// value "true" in any letter case. A PORT that is not an integer in
// 1..65535 yields an error wrapping ErrInvalidPort.
func LoadConfig(getenv func(string) string) (Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	cfg := Config{
		Host:  DefaultHost,
		Port:  DefaultPort,
		Debug: strings.EqualFold(getenv(EnvDebug), "true"),
	}

	if host := strings.TrimSpace(getenv(EnvHost)); host != "" {
		cfg.Host = host
	}

	if raw := strings.TrimSpace(getenv(EnvPort)); raw != "" {
		port, err := strconv.Atoi(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%w: %q is not a number", ErrInvalidPort, raw)
		}
		if port < 1 || port > 65535 {
			return Config{}, fmt.Errorf("%w: %d is out of range", ErrInvalidPort, port)
		}
		cfg.Port = port
	}

	return cfg, nil
}

// Addr returns the listen address as host:port.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}

// LogLevel returns the log level implied by Debug.
func (c Config) LogLevel() string {
	if c.Debug {
		return "debug"
	}
	return "info"
}

// GinMode returns the gin mode implied by Debug.
func (c Config) GinMode() string {
	if c.Debug {
		return gin.DebugMode
	}
	return gin.ReleaseMode
}

func (c Config) withDefaults() Config {
	if c.Host == "" {
		c.Host = DefaultHost
	}
	if c.ReadTimeout == 0 {
		c.ReadTimeout = 5 * time.Second
	}
	if c.ReadHeaderTimeout == 0 {
		c.ReadHeaderTimeout = 2 * time.Second
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 10 * time.Second
	}
	if c.IdleTimeout == 0 {
		c.IdleTimeout = 60 * time.Second
	}
	if c.ShutdownTimeout == 0 {
		c.ShutdownTimeout = 5 * time.Second
	}
	return c
}
