package scheduler

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tovald/bossraid/internal/worker"
)

type countingJob struct {
	runs int32
}

func (j *countingJob) Process(ctx context.Context) error {
	atomic.AddInt32(&j.runs, 1)
	return nil
}

func TestScheduler_RunsJobAtInterval(t *testing.T) {
	pool := worker.NewPool(worker.TestWorkerCount, worker.TestQueueSize)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &countingJob{}
	sched.Schedule(10*time.Millisecond, job)

	time.Sleep(100 * time.Millisecond)
	sched.Stop()

	runs := atomic.LoadInt32(&job.runs)
	if runs < 2 {
		t.Errorf("Expected at least 2 runs, got %d", runs)
	}
}

func TestScheduler_StopHaltsTicks(t *testing.T) {
	pool := worker.NewPool(worker.TestWorkerCount, worker.TestQueueSize)
	pool.Start()
	defer pool.Stop()

	sched := New(pool)
	job := &countingJob{}
	sched.Schedule(10*time.Millisecond, job)
	sched.Stop()

	// Let already-enqueued ticks drain before sampling.
	time.Sleep(30 * time.Millisecond)
	before := atomic.LoadInt32(&job.runs)
	time.Sleep(50 * time.Millisecond)
	after := atomic.LoadInt32(&job.runs)

	if after != before {
		t.Errorf("Expected no runs after Stop, got %d more", after-before)
	}
}
