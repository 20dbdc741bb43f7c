package database

import (
	"saude-connect/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRedisClientDisabled(t *testing.T) {
	assert.Nil(t, NewRedisClient(&config.DriverConfig{}))
}
