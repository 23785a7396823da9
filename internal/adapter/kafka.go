package adapter

import (
	"context"

	"github.com/etorres/go-api-scaffold/internal/config"
	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/segmentio/kafka-go"
)

// kafkaProducer is the Kafka-backed implementation of [MessageProducer].
// The topic is carried per message, so one writer serves every publish call.
type kafkaProducer struct {
	writer *kafka.Writer
	logger *logger.Logger
}

// NewKafkaProducer constructs a [MessageProducer] writing to the configured
// brokers. Writes are balanced across partitions by least bytes.
func NewKafkaProducer(cfg config.Kafka, log *logger.Logger) MessageProducer {
	writer := &kafka.Writer{
		Addr:     kafka.TCP(cfg.Brokers...),
		Balancer: &kafka.LeastBytes{},
	}

	log.Debug().Strs("brokers", cfg.Brokers).Msg("creating kafka producer")

	return &kafkaProducer{
		writer: writer,
		logger: log,
	}
}

// Publish writes one message to the given topic.
func (p *kafkaProducer) Publish(ctx context.Context, topic string, payload []byte) error {
	log := logger.FromContext(ctx)

	if topic == "" {
		return ErrEmptyTopic
	}

	message := kafka.Message{
		Topic: topic,
		Value: payload,
	}

	if err := p.writer.WriteMessages(ctx, message); err != nil {
		log.Err(err).Str("topic", topic).Msg("error publishing to kafka")
		return err
	}

	log.Debug().Str("topic", topic).Int("bytes", len(payload)).Msg("message published")
	return nil
}

// Close flushes pending writes and releases the writer.
func (p *kafkaProducer) Close() error {
	return p.writer.Close()
}
