package kafka_test

import (
	"encoding/json"
	"testing"

	"hotel/infras/kafka"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessage_ToKafkaMessage(t *testing.T) {
	msg := kafka.Message{
		Key:     "101",
		Value:   map[string]any{"booking_id": 7},
		Headers: map[string]string{"event_type": "booking.created"},
	}

	out, err := msg.ToKafkaMessage("booking.events")
	require.NoError(t, err)

	assert.Equal(t, "booking.events", out.Topic)
	assert.Equal(t, []byte("101"), out.Key)
	require.Len(t, out.Headers, 1)
	assert.Equal(t, "event_type", out.Headers[0].Key)
	assert.Equal(t, []byte("booking.created"), out.Headers[0].Value)

	var decoded map[string]int
	require.NoError(t, json.Unmarshal(out.Value, &decoded))
	assert.Equal(t, 7, decoded["booking_id"])
}

func TestMessage_ToKafkaMessage_Unmarshalable(t *testing.T) {
	msg := kafka.Message{Key: "x", Value: make(chan int)}

	_, err := msg.ToKafkaMessage("booking.events")
	assert.Error(t, err)
}
