package logging

import (
	"database/sql"
	"testing"
	"time"

	_ "modernc.org/sqlite"
)

// #region helpers
func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := EnsureSchema(db); err != nil {
		t.Fatalf("ensure schema: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// #endregion helpers

// #region log-event-tests
func TestLogEvent_Success(t *testing.T) {
	db := setupDB(t)

	event := RunEvent{
		RunID:       "run-1",
		Event:       EventBatchAbort,
		Detail:      "5 consecutive simulator faults",
		LastTrialID: 17,
		CreatedAt:   time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	}

	if err := LogEvent(db, event); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, err := ListEvents(db, "run-1")
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	got := events[0]
	if got.Event != EventBatchAbort {
		t.Errorf("expected event %q, got %q", EventBatchAbort, got.Event)
	}
	if got.LastTrialID != 17 {
		t.Errorf("expected last_trial_id 17, got %d", got.LastTrialID)
	}
	if got.Detail != event.Detail {
		t.Errorf("expected detail %q, got %q", event.Detail, got.Detail)
	}
}

func TestLogEvent_ZeroCreatedAt(t *testing.T) {
	db := setupDB(t)

	before := time.Now().UTC()
	if err := LogEvent(db, RunEvent{RunID: "run-2", Event: EventBatchStart}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	events, _ := ListEvents(db, "run-2")
	if len(events) != 1 {
		t.Fatalf("expected 1 event, got %d", len(events))
	}
	if events[0].CreatedAt.Before(before) {
		t.Error("expected auto-filled created_at to be >= test start time")
	}
}

func TestListEvents_FilterByRun(t *testing.T) {
	db := setupDB(t)

	LogEvent(db, RunEvent{RunID: "run-a", Event: EventBatchStart})
	LogEvent(db, RunEvent{RunID: "run-b", Event: EventBatchStart})
	LogEvent(db, RunEvent{RunID: "run-a", Event: EventBatchComplete})

	events, err := ListEvents(db, "run-a")
	if err != nil {
		t.Fatalf("ListEvents: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events for run-a, got %d", len(events))
	}
	if events[1].Event != EventBatchComplete {
		t.Errorf("expected run-a events in insertion order, got %q last", events[1].Event)
	}

	all, _ := ListEvents(db, "")
	if len(all) != 3 {
		t.Fatalf("expected 3 events total, got %d", len(all))
	}
}

func TestLogEvent_Error(t *testing.T) {
	db := setupDB(t)
	db.Close() // force error

	err := LogEvent(db, RunEvent{RunID: "run-x", Event: EventBatchStart})
	if err == nil {
		t.Fatal("expected error on closed db")
	}
}

// #endregion log-event-tests
