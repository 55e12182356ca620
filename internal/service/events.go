package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/alimikegami/content-service/internal/dto"
	"github.com/rs/zerolog/log"
	"github.com/segmentio/kafka-go"
)

// EventPublisher is satisfied by *kafka.Writer.
type EventPublisher interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

const (
	eventPublishAttempts = 3
	eventPublishTimeout  = 3 * time.Second
)

// publishEvent notifies downstream consumers after a committed write. Delivery
// is best-effort; a broker outage never fails the request.
func publishEvent(ctx context.Context, publisher EventPublisher, eventType, key string, data interface{}) {
	if publisher == nil {
		return
	}

	jsonMsg, err := json.Marshal(dto.KafkaMessage{EventType: eventType, Data: data})
	if err != nil {
		log.Ctx(ctx).Error().Err(err).Str("component", "PublishEvent").Msg("")
		return
	}

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), eventPublishTimeout)
	defer cancel()

	for i := 0; i < eventPublishAttempts; i++ {
		err = publisher.WriteMessages(ctx, kafka.Message{Key: []byte(key), Value: jsonMsg})
		if err == nil {
			return
		}

		log.Ctx(ctx).Error().Err(err).Str("component", "PublishEvent").Str("event_type", eventType).Msg("")
		if ctx.Err() != nil {
			return
		}
		time.Sleep(100 * time.Millisecond * time.Duration(i+1))
	}
}
