package config

import (
	"context"
	"saude-connect/internal/pkg/constvars"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewInternalConfig(t *testing.T) {
	t.Run("Empty Values Are Kept", func(t *testing.T) {
		t.Setenv("APP_API_BASE_URL", "")
		t.Setenv("APP_SESSION_STORE", "")

		cfg := NewInternalConfig()

		assert.Equal(t, "", cfg.App.BaseUrl)
		assert.Equal(t, "", cfg.App.SessionStore)
		assert.Equal(t, 0, cfg.App.MaxRequestsPerSecond)
	})

	t.Run("From Environment", func(t *testing.T) {
		t.Setenv("APP_API_BASE_URL", "https://api.saude.test")
		t.Setenv("APP_SESSION_STORE", constvars.SessionStoreRedis)
		t.Setenv("APP_MAX_REQUESTS_PER_SECOND", "5")

		cfg := NewInternalConfig()

		assert.Equal(t, "https://api.saude.test", cfg.App.BaseUrl)
		assert.Equal(t, constvars.SessionStoreRedis, cfg.App.SessionStore)
		assert.Equal(t, 5, cfg.App.MaxRequestsPerSecond)
	})

	t.Run("Bad Integer Falls Back", func(t *testing.T) {
		t.Setenv("APP_MAX_REQUESTS_PER_SECOND", "fast")

		assert.Equal(t, 0, NewInternalConfig().App.MaxRequestsPerSecond)
	})
}

func TestNewDriverConfig(t *testing.T) {
	t.Setenv("REDIS_HOST", "")
	t.Setenv("MINIO_USE_SSL", "true")

	cfg := NewDriverConfig()

	assert.Empty(t, cfg.Redis.Host, "redis stays disabled without a host")
	assert.True(t, cfg.Minio.UseSSL)
}

func TestBootstrapShutdownWithoutDrivers(t *testing.T) {
	b := &Bootstrap{}
	assert.NoError(t, b.Shutdown(context.Background()))
}
