package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/score", Method: "POST", Limit: 60, Window: time.Minute, Burst: 3},
		},
	})
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := l.Allow("10.0.0.1", "/score", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 60, info.Limit)
	}

	allowed, info := l.Allow("10.0.0.1", "/score", "POST")
	assert.False(t, allowed, "burst exhausted")
	assert.Positive(t, info.RetryAfter)
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled: true,
		EndpointConfigs: []EndpointConfig{
			{Path: "/score", Method: "POST", Limit: 60, Window: time.Minute, Burst: 1},
		},
	})
	defer l.Stop()

	allowed, _ := l.Allow("10.0.0.1", "/score", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("10.0.0.1", "/score", "POST")
	require.False(t, allowed)

	// A different client still has a full bucket
	allowed, _ = l.Allow("10.0.0.2", "/score", "POST")
	assert.True(t, allowed)
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/score", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Hour,
	})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/scores/", Method: "GET", Limit: 100, Window: time.Minute},
	}

	cfg := matchEndpoint("/scores/abc-123", "GET", configs)
	require.NotNil(t, cfg)
	assert.Equal(t, 100, cfg.Limit)

	assert.Nil(t, matchEndpoint("/scores/abc-123", "DELETE", configs))
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 42, cfg.DefaultLimit)
	assert.Equal(t, 30*time.Second, cfg.DefaultWindow)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}
