package worker

import (
	"context"
	"sync/atomic"
	"testing"
	"time"
)

type testJob struct {
	executed *int32
}

func (j *testJob) Process(ctx context.Context) error {
	atomic.AddInt32(j.executed, 1)
	return nil
}

func TestPool(t *testing.T) {
	var executed int32
	pool := NewPool(TestWorkerCount, TestQueueSize)
	pool.Start()

	job := &testJob{executed: &executed}
	pool.Enqueue(job)
	pool.Enqueue(job)

	// Wait a bit for workers to process
	time.Sleep(TestWorkerProcessWaitTime * time.Millisecond)

	pool.Stop()

	if atomic.LoadInt32(&executed) != TestExpectedJobCount {
		t.Errorf("Expected %d jobs executed, got %d", TestExpectedJobCount, executed)
	}
}

type blockingJob struct {
	release chan struct{}
}

func (j *blockingJob) Process(ctx context.Context) error {
	<-j.release
	return nil
}

func TestPool_TryEnqueueOnSaturatedQueue(t *testing.T) {
	release := make(chan struct{})
	pool := NewPool(1, 1)
	pool.Start()
	defer func() {
		close(release)
		pool.Stop()
	}()

	// First job occupies the worker, second fills the queue.
	pool.Enqueue(&blockingJob{release: release})
	time.Sleep(10 * time.Millisecond)
	if !pool.TryEnqueue(&blockingJob{release: release}) {
		t.Fatal("Expected enqueue into empty queue to succeed")
	}

	if pool.TryEnqueue(&blockingJob{release: release}) {
		t.Error("Expected TryEnqueue on a full queue to fail")
	}
}
