package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	_ "dacops.xyz/dac-monitor-service/pkg/testing"
)

func TestLoadAppConfig(t *testing.T) {
	t.Setenv(EnvKeyDACDBType, "memory")
	t.Setenv(EnvKeyDACHttpHostPort, ":8000")
	t.Setenv(EnvKeyDACCorsOrigins, "http://localhost:5173, http://localhost:3000")
	t.Setenv(EnvKeyDACDefaultRate, "2.5")
	t.Setenv(EnvKeyDACDefaultBurst, "5")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.DBType)
	assert.Equal(t, ":8000", cfg.HTTPHostPort)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:3000"}, cfg.CorsOrigins)
	assert.True(t, cfg.RateLimiting)
	assert.Equal(t, 2.5, cfg.DefaultRate)
	assert.Equal(t, 5, cfg.DefaultBurst)
}

func TestLoadAppConfig_NoRateLimiting(t *testing.T) {
	t.Setenv(EnvKeyDACDefaultRate, "")
	t.Setenv(EnvKeyDACDefaultBurst, "")

	cfg, err := LoadAppConfig()
	require.NoError(t, err)
	assert.False(t, cfg.RateLimiting)
}

func TestLoadAppConfig_InvalidRate(t *testing.T) {
	t.Setenv(EnvKeyDACDefaultRate, "not-a-number")
	t.Setenv(EnvKeyDACDefaultBurst, "5")

	_, err := LoadAppConfig()
	require.Error(t, err)
}
