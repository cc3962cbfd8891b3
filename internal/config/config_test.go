package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vangoframework/frame/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{"PORT", "BASE_URL", "ENVIRONMENT", "HOST_DOCUMENT", "MOUNT_ID", "METRICS_ENABLED", "RATE_LIMIT_RPM", "SHUTDOWN_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "root", cfg.MountID)
	assert.Empty(t, cfg.HostDocument)
	assert.True(t, cfg.MetricsEnabled)
	assert.Equal(t, 0, cfg.RateLimitRPM)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("MOUNT_ID", "app")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("RATE_LIMIT_RPM", "120")
	t.Setenv("SHUTDOWN_TIMEOUT", "5s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "app", cfg.MountID)
	assert.False(t, cfg.MetricsEnabled)
	assert.Equal(t, 120, cfg.RateLimitRPM)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.True(t, cfg.IsProduction())
}

func TestLoadInvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{"bool", "METRICS_ENABLED", "maybe"},
		{"int", "RATE_LIMIT_RPM", "lots"},
		{"negative", "RATE_LIMIT_RPM", "-1"},
		{"duration", "SHUTDOWN_TIMEOUT", "soon"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)
			_, err := config.Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}
