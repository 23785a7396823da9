// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/etorres/go-api-scaffold/internal/adapter"
	"github.com/etorres/go-api-scaffold/internal/config"
	"github.com/etorres/go-api-scaffold/internal/logger"
	"github.com/etorres/go-api-scaffold/models"
)

// TaskHandler executes one task type. It receives the task payload and
// returns the result string stored in the result backend.
type TaskHandler func(ctx context.Context, payload string) (string, error)

// TaskWorker consumes tasks from the queue transport and executes them on a
// bounded pool of goroutines. Every finished task, successful or not, files a
// result in the result backend.
//
// Handlers are registered before Run is called; the handler map is read-only
// once the worker is running.
type TaskWorker struct {
	subscriber  adapter.TaskSubscriber
	results     adapter.ResultBackend
	handlers    map[string]TaskHandler
	concurrency int
	tasks       chan models.Task
	logger      *logger.Logger
}

// NewTaskWorker constructs a TaskWorker sized by the workers configuration.
func NewTaskWorker(subscriber adapter.TaskSubscriber, results adapter.ResultBackend, cfg config.Workers, log *logger.Logger) *TaskWorker {
	concurrency := cfg.Concurrency
	if concurrency < 1 {
		concurrency = 1
	}

	return &TaskWorker{
		subscriber:  subscriber,
		results:     results,
		handlers:    make(map[string]TaskHandler),
		concurrency: concurrency,
		tasks:       make(chan models.Task, concurrency),
		logger:      log,
	}
}

// RegisterHandler binds a task name to its handler. Must be called before
// Run.
func (w *TaskWorker) RegisterHandler(name string, handler TaskHandler) {
	w.handlers[name] = handler
}

// Run subscribes to the task queue and executes incoming tasks until ctx is
// cancelled. It blocks until the executing goroutines have drained.
func (w *TaskWorker) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for i := 0; i < w.concurrency; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case task := <-w.tasks:
					w.execute(ctx, task)
				}
			}
		}()
	}

	if err := w.subscriber.SubscribeTasks(ctx, w.enqueue); err != nil {
		w.logger.Err(err).Msg("error subscribing to task queue")
	}

	<-ctx.Done()
	wg.Wait()
}

// enqueue hands a received task to the executing pool, giving up when ctx is
// cancelled mid-handoff.
func (w *TaskWorker) enqueue(ctx context.Context, task models.Task) {
	select {
	case <-ctx.Done():
	case w.tasks <- task:
	}
}

// execute dispatches one task to its registered handler and files the
// outcome. A task naming no registered handler fails immediately.
func (w *TaskWorker) execute(ctx context.Context, task models.Task) {
	log := w.logger.With().Str("task_id", task.ID.String()).Str("task", task.Name).Logger()

	result := models.TaskResult{
		ID:         task.ID,
		Status:     models.TaskStatusDone,
		FinishedAt: time.Now(),
	}

	handler, ok := w.handlers[task.Name]
	if !ok {
		log.Error().Msg("no handler registered for task")
		result.Status = models.TaskStatusFailed
		result.Error = "no handler registered for task: " + task.Name
	} else {
		output, err := handler(ctx, task.Payload)
		if err != nil {
			log.Err(err).Msg("task execution failed")
			result.Status = models.TaskStatusFailed
			result.Error = err.Error()
		} else {
			result.Result = output
		}
		result.FinishedAt = time.Now()
	}

	if err := w.results.SetResult(ctx, result); err != nil {
		log.Err(err).Msg("error storing task result")
		return
	}

	log.Debug().Str("status", string(result.Status)).Msg("task finished")
}
