package kafka_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"salon/config"
	"salon/infras/kafka"
)

func TestToKafkaMessage(t *testing.T) {
	msg := kafka.Message{Key: "booking-1", Value: map[string]string{"type": "approved"}}

	out, err := msg.ToKafkaMessage("booking.notifications")
	assert.NoError(t, err)
	assert.Equal(t, "booking.notifications", out.Topic)
	assert.Equal(t, []byte("booking-1"), out.Key)

	var decoded map[string]string
	assert.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, "approved", decoded["type"])
}

func TestToKafkaMessageUnsupportedValue(t *testing.T) {
	msg := kafka.Message{Key: "k", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("topic")
	assert.Error(t, err)
}

func TestDisabledClient(t *testing.T) {
	client := kafka.New(&config.Config{})

	assert.False(t, client.Enabled())
	assert.NoError(t, client.SendMessages(context.Background(), "topic", kafka.Message{Key: "k", Value: "v"}))
	assert.NoError(t, client.Close())
}
