package service

import (
	"context"
	"fmt"

	"github.com/etorres/go-api-scaffold/internal/adapter"
	"github.com/etorres/go-api-scaffold/internal/config"
	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/models"
)

// eventService forwards caller-supplied messages to the message broker.
// Messages without an explicit topic go to the configured default topic.
type eventService struct {
	producer     adapter.MessageProducer
	defaultTopic string
	logger       *logger.Logger
}

// NewEventService constructs an EventService publishing through the given
// producer.
func NewEventService(producer adapter.MessageProducer, cfg config.Kafka, logger *logger.Logger) EventService {
	return &eventService{
		producer:     producer,
		defaultTopic: cfg.Topic,
		logger:       logger,
	}
}

// PublishMessage validates the message and hands it to the broker.
//
// Returns ErrInvalidDataProvided when the message body is empty.
func (s *eventService) PublishMessage(ctx context.Context, message models.KafkaMessage) error {
	log := logger.FromContext(ctx)

	if message.Message == "" {
		log.Error().Msg("empty message body provided")
		return ErrInvalidDataProvided
	}

	topic := message.Topic
	if topic == "" {
		topic = s.defaultTopic
	}

	if err := s.producer.Publish(ctx, topic, []byte(message.Message)); err != nil {
		log.Err(err).Str("topic", topic).Msg("message publishing ended with error")
		return fmt.Errorf("message publishing ended with error: %w", err)
	}

	return nil
}
