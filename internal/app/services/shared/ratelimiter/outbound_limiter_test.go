package ratelimiter

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewOutboundLimiter(t *testing.T) {
	assert.Nil(t, NewOutboundLimiter(0))
	assert.Nil(t, NewOutboundLimiter(-3))
	assert.NotNil(t, NewOutboundLimiter(2))
}

func TestOutboundLimiterWait(t *testing.T) {
	t.Run("Nil Limiter Never Blocks", func(t *testing.T) {
		var limiter *OutboundLimiter
		assert.NoError(t, limiter.Wait(context.Background(), "login"))
	})

	t.Run("Burst Then Cancelled", func(t *testing.T) {
		limiter := NewOutboundLimiter(1)
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		assert.NoError(t, limiter.Wait(ctx, "login"))
		assert.Error(t, limiter.Wait(ctx, "login"), "second call must wait past the deadline")
	})

	t.Run("Keys Are Independent", func(t *testing.T) {
		limiter := NewOutboundLimiter(1)
		ctx := context.Background()

		assert.NoError(t, limiter.Wait(ctx, "login"))
		assert.NoError(t, limiter.Wait(ctx, "getCategories"))
	})
}
