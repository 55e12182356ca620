package kafka

import (
	"errors"
	"testing"

	"github.com/alimikegami/content-service/config"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateKafkaWriter(t *testing.T) {
	testCases := []struct {
		Name          string
		BrokerAddress string
		ExpectWriter  bool
	}{
		{Name: "no broker", BrokerAddress: "", ExpectWriter: false},
		{Name: "broker configured", BrokerAddress: "kafka:9092", ExpectWriter: true},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			conf := &config.Config{KafkaConfig: config.KafkaConfig{BrokerAddress: tc.BrokerAddress, BrokerTopic: "content-events"}}

			writer := CreateKafkaWriter(conf)

			if !tc.ExpectWriter {
				assert.Nil(t, writer)
				return
			}
			require.NotNil(t, writer)
			assert.True(t, writer.Async, "publishing must not block requests")
			assert.Equal(t, "content-events", writer.Topic)
			assert.NotNil(t, writer.Completion)
		})
	}
}

func TestLogFailedDelivery(t *testing.T) {
	assert.NotPanics(t, func() {
		logFailedDelivery([]kafka.Message{{Key: []byte("id")}}, errors.New("broker down"))
		logFailedDelivery(nil, nil)
	})
}
