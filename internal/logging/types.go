package logging

import "time"

// #region event-type
// EventType names a batch-level lifecycle event.
type EventType string

const (
	EventBatchStart    EventType = "batch_start"
	EventBatchResume   EventType = "batch_resume"
	EventBatchComplete EventType = "batch_complete"
	EventBatchAbort    EventType = "batch_abort"
)

// #endregion event-type

// #region run-event
// RunEvent is a single row in the run_events table. Events record batch
// lifecycle provenance alongside the trial records in the same database.
type RunEvent struct {
	RunID       string
	Event       EventType
	Detail      string
	LastTrialID int64 // 0 when no trial has been persisted yet
	CreatedAt   time.Time
}

// #endregion run-event
