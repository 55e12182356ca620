package kafka

import (
	"time"

	"github.com/alimikegami/content-service/config"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// CreateKafkaWriter returns nil when no broker is configured so that event
// publishing can be switched off per environment. The writer is async: a slow
// or unreachable broker never holds up the request that produced the event.
func CreateKafkaWriter(config *config.Config) *kafka.Writer {
	if config.KafkaConfig.BrokerAddress == "" {
		return nil
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(config.KafkaConfig.BrokerAddress),
		Topic:                  config.KafkaConfig.BrokerTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		WriteTimeout:           5 * time.Second,
		RequiredAcks:           kafka.RequireOne,
		Async:                  true,
		Completion:             logFailedDelivery,
	}
}

func logFailedDelivery(messages []kafka.Message, err error) {
	if err == nil {
		return
	}

	log.Error().Err(err).Str("component", "KafkaWriter").Int("messages", len(messages)).Msg("event delivery failed")
}
