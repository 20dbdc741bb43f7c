package messaging

import (
	"saude-connect/internal/app/config"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRabbitMQDisabled(t *testing.T) {
	assert.Nil(t, NewRabbitMQ(&config.DriverConfig{}))
}
