package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/etorres/go-api-scaffold/internal/config"
	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

// redisResultBackend stores task results as JSON values under a per-task key
// with a configured TTL, so finished results age out on their own.
type redisResultBackend struct {
	client *redis.Client
	ttl    time.Duration
	logger *logger.Logger
}

// NewRedisResultBackend connects to the configured Redis server, verifies the
// connection with a ping and returns the result backend.
func NewRedisResultBackend(ctx context.Context, cfg config.Queue, log *logger.Logger) (ResultBackend, error) {
	client := redis.NewClient(&redis.Options{Addr: cfg.RedisAddress})

	if err := client.Ping(ctx).Err(); err != nil {
		log.Err(err).Str("address", cfg.RedisAddress).Msg("error connecting to redis")
		return nil, fmt.Errorf("connecting to redis at %s: %w", cfg.RedisAddress, err)
	}

	log.Debug().Str("address", cfg.RedisAddress).Msg("connected to redis")

	return &redisResultBackend{
		client: client,
		ttl:    cfg.ResultTTL,
		logger: log,
	}, nil
}

// SetResult stores the result under its task identifier, overwriting any
// earlier state of the same task.
func (b *redisResultBackend) SetResult(ctx context.Context, result models.TaskResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshaling task result: %w", err)
	}

	if err := b.client.Set(ctx, resultKey(result.ID), data, b.ttl).Err(); err != nil {
		return fmt.Errorf("storing task result: %w", err)
	}

	return nil
}

// GetResult returns the stored result of a task.
// Returns ErrResultNotFound when the key is missing or already expired.
func (b *redisResultBackend) GetResult(ctx context.Context, taskID uuid.UUID) (models.TaskResult, error) {
	data, err := b.client.Get(ctx, resultKey(taskID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return models.TaskResult{}, ErrResultNotFound
		}
		return models.TaskResult{}, fmt.Errorf("reading task result: %w", err)
	}

	var result models.TaskResult
	if err := json.Unmarshal(data, &result); err != nil {
		return models.TaskResult{}, fmt.Errorf("decoding task result: %w", err)
	}

	return result, nil
}

// Close releases the Redis client.
func (b *redisResultBackend) Close() error {
	return b.client.Close()
}

func resultKey(taskID uuid.UUID) string {
	return "task:result:" + taskID.String()
}
