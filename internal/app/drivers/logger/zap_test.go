package logger

import (
	"saude-connect/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNewZapLogger(t *testing.T) {
	internalConfig := &config.InternalConfig{App: config.App{Env: "development", Version: "test"}}

	t.Run("Level Mapping", func(t *testing.T) {
		driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "warn"}}

		log := NewZapLogger(driverConfig, internalConfig)

		assert.False(t, log.Core().Enabled(zap.InfoLevel))
		assert.True(t, log.Core().Enabled(zap.WarnLevel))
	})

	t.Run("Off Disables Logging", func(t *testing.T) {
		driverConfig := &config.DriverConfig{Logger: config.Logger{Level: "off"}}

		log := NewZapLogger(driverConfig, internalConfig)

		assert.False(t, log.Core().Enabled(zap.ErrorLevel))
	})
}
