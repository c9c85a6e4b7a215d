package jobs

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type taskRecorder struct {
	mu   sync.Mutex
	seen []string
	fail map[string]int
}

func (r *taskRecorder) handle(_ context.Context, task Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seen = append(r.seen, task.ID)
	if remaining := r.fail[task.ID]; remaining > 0 {
		r.fail[task.ID] = remaining - 1
		return errors.New("transient failure")
	}
	return nil
}

func (r *taskRecorder) count(id string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, seen := range r.seen {
		if seen == id {
			n++
		}
	}
	return n
}

func waitUntil(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached in time")
}

func TestQueueDispatchesTasks(t *testing.T) {
	rec := &taskRecorder{}
	q := NewQueue("test", rec.handle, QueueConfig{Workers: 2})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Task{ID: "a"}))
	require.NoError(t, q.Enqueue(Task{ID: "b"}))

	waitUntil(t, func() bool { return rec.count("a") == 1 && rec.count("b") == 1 })
}

func TestQueueRetriesFailedTasks(t *testing.T) {
	rec := &taskRecorder{fail: map[string]int{"flaky": 2}}
	q := NewQueue("test", rec.handle, QueueConfig{Workers: 1, MaxRetries: 3, RetryDelay: 5 * time.Millisecond})
	q.Start(context.Background())
	defer q.Stop()

	require.NoError(t, q.Enqueue(Task{ID: "flaky"}))

	waitUntil(t, func() bool { return rec.count("flaky") == 3 })
}

func TestQueueRejectsBeforeStart(t *testing.T) {
	q := NewQueue("test", func(context.Context, Task) error { return nil }, QueueConfig{})
	assert.Error(t, q.Enqueue(Task{ID: "early"}))
}

func TestQueueFullBufferDropsInsteadOfBlocking(t *testing.T) {
	release := make(chan struct{})
	q := NewQueue("test", func(ctx context.Context, _ Task) error {
		select {
		case <-release:
		case <-ctx.Done():
		}
		return nil
	}, QueueConfig{Workers: 1, BufferSize: 1})
	q.Start(context.Background())
	defer q.Stop()
	defer close(release)

	// First task occupies the worker, second fills the buffer. Give the
	// worker a moment to pick the first one up.
	require.NoError(t, q.Enqueue(Task{ID: "busy"}))
	time.Sleep(20 * time.Millisecond)
	require.NoError(t, q.Enqueue(Task{ID: "buffered"}))

	err := q.Enqueue(Task{ID: "overflow"})
	assert.Error(t, err, "a full queue must drop, not block")
}
