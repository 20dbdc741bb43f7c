package events

import (
	"context"
	"errors"
	"saude-connect/internal/app/models"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type mockChannel struct {
	mock.Mock
}

func (m *mockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(exchange, key, msg)
	return args.Error(0)
}

func TestRabbitMQEventPublisherPublish(t *testing.T) {
	event := &models.ClientEvent{
		Type:       "booking.created",
		RequestID:  "req-1",
		UserID:     1,
		OccurredAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		Payload:    map[string]interface{}{"booking_id": 7},
	}

	t.Run("Persistent JSON Message", func(t *testing.T) {
		channel := new(mockChannel)
		channel.On("PublishWithContext", "", "saude.events", mock.MatchedBy(func(msg amqp091.Publishing) bool {
			var decoded models.ClientEvent
			if err := json.Unmarshal(msg.Body, &decoded); err != nil {
				return false
			}
			return msg.DeliveryMode == amqp091.Persistent &&
				msg.ContentType == "application/json" &&
				msg.CorrelationId == "req-1" &&
				msg.Headers["event_type"] == "booking.created" &&
				decoded.Type == "booking.created"
		})).Return(nil)
		publisher := newRabbitMQEventPublisher(channel, "saude.events", zap.NewNop())

		require.NoError(t, publisher.Publish(context.Background(), event))
		channel.AssertExpectations(t)
	})

	t.Run("Broker Failure", func(t *testing.T) {
		channel := new(mockChannel)
		channel.On("PublishWithContext", mock.Anything, mock.Anything, mock.Anything).Return(errors.New("channel closed"))
		publisher := newRabbitMQEventPublisher(channel, "saude.events", zap.NewNop())

		assert.Error(t, publisher.Publish(context.Background(), event))
	})
}

func TestNoopEventPublisher(t *testing.T) {
	publisher := NewNoopEventPublisher(zap.NewNop())
	assert.NoError(t, publisher.Publish(context.Background(), &models.ClientEvent{Type: "review.created"}))
}
