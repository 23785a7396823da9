// SPDX-License-Identifier: Apache-2.0

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// blockingWorker counts its starts and blocks until ctx is cancelled.
type blockingWorker struct {
	started atomic.Int32
}

func (w *blockingWorker) Run(ctx context.Context) {
	w.started.Add(1)
	<-ctx.Done()
}

// TestWorkers_RunsAllWorkers verifies that every aggregated worker is started
// and Run returns once the context is cancelled.
func TestWorkers_RunsAllWorkers(t *testing.T) {
	first := &blockingWorker{}
	second := &blockingWorker{}

	pool := NewWorkers(first, second)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		pool.Run(ctx)
		close(done)
	}()

	// both workers must have started before cancellation
	assert.Eventually(t, func() bool {
		return first.started.Load() == 1 && second.started.Load() == 1
	}, time.Second, 10*time.Millisecond)

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after context cancellation")
	}
}

// TestWorkers_NoWorkers verifies that an empty aggregate returns immediately.
func TestWorkers_NoWorkers(t *testing.T) {
	pool := NewWorkers()

	done := make(chan struct{})
	go func() {
		pool.Run(context.Background())
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return for an empty worker set")
	}
}
