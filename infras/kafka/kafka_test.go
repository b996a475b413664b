package kafka_test

import (
	"context"
	"testing"

	"hotel/config"
	"hotel/infras/kafka"
	"hotel/infras/otel/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToKafkaMessage(t *testing.T) {
	message := kafka.Message{Key: "42", Value: map[string]any{"id": 42, "event": "booking.created"}}

	msg, err := message.ToKafkaMessage("hotel.bookings")
	require.NoError(t, err)

	assert.Equal(t, "hotel.bookings", msg.Topic)
	assert.Equal(t, []byte("42"), msg.Key)
	assert.JSONEq(t, `{"id":42,"event":"booking.created"}`, string(msg.Value))
}

func TestToKafkaMessageRejectsUnencodableValue(t *testing.T) {
	message := kafka.Message{Key: "1", Value: make(chan int)}

	_, err := message.ToKafkaMessage("hotel.bookings")
	assert.Error(t, err)
}

func TestDisabledClientDropsMessages(t *testing.T) {
	client := kafka.New(&config.Config{}, mocks.NewOtel())

	err := client.SendMessages(context.Background(), "hotel.bookings", kafka.Message{Key: "1", Value: "x"})
	assert.NoError(t, err)
	assert.NoError(t, client.Close())
}
