package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/etorres/go-api-scaffold/internal/config"
	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/nats-io/nats.go"
)

// NATSTaskQueue moves task envelopes over a NATS subject. It implements both
// [TaskPublisher] and [TaskSubscriber] so the HTTP side and the worker side
// share one transport.
type NATSTaskQueue struct {
	conn    *nats.Conn
	subject string
	logger  *logger.Logger
}

// NewNATSTaskQueue connects to the configured NATS server with unlimited
// reconnects and returns the task queue transport.
func NewNATSTaskQueue(cfg config.Queue, log *logger.Logger) (*NATSTaskQueue, error) {
	conn, err := nats.Connect(cfg.NATSURL,
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		log.Err(err).Str("url", cfg.NATSURL).Msg("error connecting to NATS")
		return nil, fmt.Errorf("connecting to NATS at %s: %w", cfg.NATSURL, err)
	}

	log.Debug().Str("url", cfg.NATSURL).Str("subject", cfg.Subject).Msg("connected to NATS")

	return &NATSTaskQueue{
		conn:    conn,
		subject: cfg.Subject,
		logger:  log,
	}, nil
}

// PublishTask JSON-encodes the task envelope and publishes it on the queue
// subject.
func (q *NATSTaskQueue) PublishTask(ctx context.Context, task models.Task) error {
	log := logger.FromContext(ctx)

	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("marshaling task: %w", err)
	}

	if err := q.conn.Publish(q.subject, data); err != nil {
		log.Err(err).Str("task_id", task.ID.String()).Msg("error publishing task")
		return fmt.Errorf("publishing task: %w", err)
	}

	log.Debug().Str("task_id", task.ID.String()).Str("task", task.Name).Msg("task published")
	return nil
}

// SubscribeTasks delivers every queued task to handler until ctx is
// cancelled. Messages that fail to decode are logged and dropped; they carry
// no identifier a result could be filed under.
//
// Subscribers join a queue group, so running multiple worker processes
// spreads tasks between them instead of duplicating work.
func (q *NATSTaskQueue) SubscribeTasks(ctx context.Context, handler func(ctx context.Context, task models.Task)) error {
	sub, err := q.conn.QueueSubscribe(q.subject, "task-workers", func(msg *nats.Msg) {
		var task models.Task
		if err := json.Unmarshal(msg.Data, &task); err != nil {
			q.logger.Err(err).Msg("error decoding queued task")
			return
		}

		handler(ctx, task)
	})
	if err != nil {
		return fmt.Errorf("subscribing to %s: %w", q.subject, err)
	}

	// Flush ensures the subscription is registered on the server before
	// returning, so tasks published on other connections are routed.
	if err := q.conn.Flush(); err != nil {
		_ = sub.Unsubscribe()
		return fmt.Errorf("flushing subscription: %w", err)
	}

	go func() {
		<-ctx.Done()
		if err := sub.Unsubscribe(); err != nil {
			q.logger.Err(err).Msg("error unsubscribing from task subject")
		}
	}()

	return nil
}

// Close shuts the underlying NATS connection down.
func (q *NATSTaskQueue) Close() error {
	q.conn.Close()
	return nil
}
