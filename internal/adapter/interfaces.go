// Package adapter holds the outbound integrations of the application:
// the Kafka producer, the NATS task queue transport and the Redis result
// backend. Services and workers depend on the interfaces declared here,
// never on the concrete clients.
package adapter

import (
	"context"

	"github.com/etorres/go-api-scaffold/models"
	"github.com/google/uuid"
)

// MessageProducer publishes raw payloads to a topic of the message broker.
type MessageProducer interface {
	Publish(ctx context.Context, topic string, payload []byte) error
	Close() error
}

// TaskPublisher hands tasks over to the background task queue.
type TaskPublisher interface {
	PublishTask(ctx context.Context, task models.Task) error
	Close() error
}

// TaskSubscriber delivers queued tasks to a handler until ctx is cancelled.
type TaskSubscriber interface {
	SubscribeTasks(ctx context.Context, handler func(ctx context.Context, task models.Task)) error
	Close() error
}

// ResultBackend stores and retrieves task execution results.
type ResultBackend interface {
	SetResult(ctx context.Context, result models.TaskResult) error
	GetResult(ctx context.Context, taskID uuid.UUID) (models.TaskResult, error)
	Close() error
}
