package models

import (
	"time"

	"github.com/google/uuid"
)

// TaskStatus is the lifecycle state of an enqueued task.
type TaskStatus string

const (
	TaskStatusQueued  TaskStatus = "queued"
	TaskStatusDone    TaskStatus = "done"
	TaskStatusFailed  TaskStatus = "failed"
	TaskStatusUnknown TaskStatus = "unknown"
)

// Task is the envelope published to the task-queue transport.
// It is JSON-encoded on the wire; workers decode it and dispatch by Name.
type Task struct {
	// ID uniquely identifies the task run and keys its result in the
	// result backend.
	ID uuid.UUID `json:"id"`

	// Name selects the handler registered with the worker.
	Name string `json:"name"`

	// Payload is an opaque argument string interpreted by the handler.
	Payload string `json:"payload,omitempty"`

	// EnqueuedAt is the time the task was accepted by the API.
	EnqueuedAt time.Time `json:"enqueued_at"`
}

// TaskResult is the record a worker stores in the result backend once a task
// finishes. Results expire after the configured TTL.
type TaskResult struct {
	ID         uuid.UUID  `json:"id"`
	Status     TaskStatus `json:"status"`
	Result     string     `json:"result,omitempty"`
	Error      string     `json:"error,omitempty"`
	FinishedAt time.Time  `json:"finished_at"`
}
