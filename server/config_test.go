package server

import (
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 5000, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, "0.0.0.0:5000", cfg.Addr())
	assert.Equal(t, "info", cfg.LogLevel())
	assert.Equal(t, gin.ReleaseMode, cfg.GinMode())
}

func TestLoadConfig_Overrides(t *testing.T) {
	cfg, err := LoadConfig(envFrom(map[string]string{
		EnvHost:  "127.0.0.1",
		EnvPort:  "8080",
		EnvDebug: "true",
	}))
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Addr())
	assert.True(t, cfg.Debug)
	assert.Equal(t, "debug", cfg.LogLevel())
	assert.Equal(t, gin.DebugMode, cfg.GinMode())
}

func TestLoadConfig_Debug(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", true},
		{"True", true},
		{"false", false},
		{"1", false},
		{"yes", false},
		{"", false},
		{" true", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			cfg, err := LoadConfig(envFrom(map[string]string{EnvDebug: tt.value}))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Debug)
		})
	}
}

func TestLoadConfig_InvalidPort(t *testing.T) {
	for _, port := range []string{"abc", "0", "-1", "65536", "80.5"} {
		t.Run(port, func(t *testing.T) {
			_, err := LoadConfig(envFrom(map[string]string{EnvPort: port}))
			assert.ErrorIs(t, err, ErrInvalidPort)
		})
	}
}

func TestLoadConfig_PortBounds(t *testing.T) {
	for _, port := range []string{"1", "65535", " 5001 "} {
		t.Run(port, func(t *testing.T) {
			_, err := LoadConfig(envFrom(map[string]string{EnvPort: port}))
			assert.NoError(t, err)
		})
	}
}

func TestLoadConfig_ProcessEnvironment(t *testing.T) {
	t.Setenv(EnvHost, "localhost")
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvDebug, "")

	cfg, err := LoadConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, "localhost:9090", cfg.Addr())
}

func TestConfig_AddrIPv6(t *testing.T) {
	cfg := Config{Host: "::1", Port: 5000}
	assert.Equal(t, "[::1]:5000", cfg.Addr())
}

func TestConfig_WithDefaults(t *testing.T) {
	cfg := Config{Port: 5000, WriteTimeout: time.Minute}.withDefaults()

	assert.Equal(t, DefaultHost, cfg.Host)
	assert.Equal(t, time.Minute, cfg.WriteTimeout)
	assert.Positive(t, cfg.ReadTimeout)
	assert.Positive(t, cfg.ReadHeaderTimeout)
	assert.Positive(t, cfg.IdleTimeout)
	assert.Positive(t, cfg.ShutdownTimeout)
}
