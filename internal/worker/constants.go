package worker

import "time"

// ============================================================================
// Pool
// ============================================================================

// DefaultJobTimeout bounds a single background job
const DefaultJobTimeout = 10 * time.Second

// Log messages for the worker pool
const (
	LogMsgWorkerJobFailed = "Worker job failed"
	LogMsgWorkerQueueFull = "Worker queue full, job dropped"
)

// ============================================================================
// Day Rollover Worker
// ============================================================================

// Scheduling windows for the day rollover worker
const (
	RolloverStandbyThreshold = 1 * time.Hour
	RolloverApproachLead     = 45 * time.Minute
	RolloverJitterTolerance  = 10 * time.Second
)

// Log messages for day rollover operations
const (
	LogMsgRolloverStandby          = "Day rollover standby"
	LogMsgRolloverScheduled        = "Day rollover scheduled"
	LogMsgRolloverStarting         = "Day rollover starting"
	LogMsgRolloverCompleted        = "Day rollover completed"
	LogMsgRolloverFailed           = "Day rollover failed"
	LogMsgRolloverManualTrigger    = "Day rollover manually triggered"
	LogMsgRolloverPublishFailed    = "Day rollover event publish failed"
	LogMsgRolloverShuttingDown     = "Shutting down day rollover worker"
	LogMsgRolloverShutdownComplete = "Day rollover worker shutdown complete"
	LogMsgRolloverShutdownTimeout  = "Day rollover worker shutdown timeout, rollover may still be running"
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
