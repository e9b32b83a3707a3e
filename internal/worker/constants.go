package worker

// ============================================================================
// Log Messages - Worker Pool
// ============================================================================

// LogMsgWorkerJobFailed is logged when a worker fails to process a job
const LogMsgWorkerJobFailed = "Worker job failed"

// ============================================================================
// Log Messages - Persist Jobs
// ============================================================================

// Log messages for durable-write jobs
const (
	LogMsgRewardPersistRetry     = "Retrying pending reward write"
	LogMsgRewardPersistExhausted = "Pending reward write exhausted retries"
	LogMsgAggregateFlushRetry    = "Retrying aggregate flush"
	LogMsgAggregateFlushDropped  = "Aggregate flush exhausted retries, delta lost"
	LogMsgFlushQueueSaturated    = "Persist queue saturated, flushing inline"
)

// ============================================================================
// Test Configuration
// ============================================================================

// Test pool configuration values used in pool_test.go
const (
	TestWorkerCount           = 2
	TestQueueSize             = 10
	TestExpectedJobCount      = 2
	TestWorkerProcessWaitTime = 100 // milliseconds
)
