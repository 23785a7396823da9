package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/etorres/go-api-scaffold/internal/adapter"
	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/models"
	"github.com/google/uuid"
)

// taskService enqueues background tasks and reads their results back.
// Enqueueing files a queued result first, so a status is observable before
// any worker picks the task up.
type taskService struct {
	publisher adapter.TaskPublisher
	results   adapter.ResultBackend
	logger    *logger.Logger
}

// NewTaskService constructs a TaskService over the given queue transport and
// result backend.
func NewTaskService(publisher adapter.TaskPublisher, results adapter.ResultBackend, logger *logger.Logger) TaskService {
	return &taskService{
		publisher: publisher,
		results:   results,
		logger:    logger,
	}
}

// EnqueueTask assigns the task an identifier, records its queued status and
// publishes it on the task queue.
//
// Returns ErrInvalidDataProvided when the request names no task.
func (s *taskService) EnqueueTask(ctx context.Context, request models.TaskRequest) (models.Task, error) {
	log := logger.FromContext(ctx)

	if request.Name == "" {
		log.Error().Msg("no task name provided")
		return models.Task{}, ErrInvalidDataProvided
	}

	task := models.Task{
		ID:         uuid.New(),
		Name:       request.Name,
		Payload:    request.Payload,
		EnqueuedAt: time.Now(),
	}

	if err := s.results.SetResult(ctx, models.TaskResult{
		ID:     task.ID,
		Status: models.TaskStatusQueued,
	}); err != nil {
		log.Err(err).Str("task_id", task.ID.String()).Msg("recording queued task status failed")
		return models.Task{}, fmt.Errorf("recording queued task status failed: %w", err)
	}

	if err := s.publisher.PublishTask(ctx, task); err != nil {
		log.Err(err).Str("task_id", task.ID.String()).Msg("task enqueueing ended with error")
		return models.Task{}, fmt.Errorf("task enqueueing ended with error: %w", err)
	}

	return task, nil
}

// GetTaskResult returns the recorded result of a task. An identifier nothing
// was ever filed under (or whose result already expired) yields a result with
// TaskStatusUnknown rather than an error.
func (s *taskService) GetTaskResult(ctx context.Context, taskID uuid.UUID) (models.TaskResult, error) {
	result, err := s.results.GetResult(ctx, taskID)
	if err != nil {
		if errors.Is(err, adapter.ErrResultNotFound) {
			return models.TaskResult{ID: taskID, Status: models.TaskStatusUnknown}, nil
		}

		return models.TaskResult{}, fmt.Errorf("reading task result ended with error: %w", err)
	}

	return result, nil
}
