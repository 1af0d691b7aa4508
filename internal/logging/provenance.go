package logging

import (
	"database/sql"
	"fmt"
	"time"
)

// #region schema
const runEventsSchema = `
CREATE TABLE IF NOT EXISTS run_events (
	id            INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id        TEXT NOT NULL,
	event_type    TEXT NOT NULL,
	detail        TEXT,
	last_trial_id INTEGER NOT NULL DEFAULT 0,
	created_at    TEXT NOT NULL
);
`

// EnsureSchema creates the run_events table if it does not exist.
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(runEventsSchema); err != nil {
		return fmt.Errorf("migrate run_events: %w", err)
	}
	return nil
}

// #endregion schema

// #region log-event
// LogEvent writes a batch lifecycle entry to the run_events table.
func LogEvent(db *sql.DB, event RunEvent) error {
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now().UTC()
	}

	_, err := db.Exec(
		`INSERT INTO run_events (run_id, event_type, detail, last_trial_id, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		event.RunID,
		string(event.Event),
		nullIfEmpty(event.Detail),
		event.LastTrialID,
		event.CreatedAt.Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("log event: %w", err)
	}
	return nil
}

// #endregion log-event

// #region list-events
// ListEvents returns all events for a run in insertion order. Empty runID
// returns events for every run.
func ListEvents(db *sql.DB, runID string) ([]RunEvent, error) {
	query := `SELECT run_id, event_type, detail, last_trial_id, created_at FROM run_events`
	var args []interface{}
	if runID != "" {
		query += ` WHERE run_id = ?`
		args = append(args, runID)
	}
	query += ` ORDER BY id`

	rows, err := db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var events []RunEvent
	for rows.Next() {
		var ev RunEvent
		var detail sql.NullString
		var createdStr string
		if err := rows.Scan(&ev.RunID, (*string)(&ev.Event), &detail, &ev.LastTrialID, &createdStr); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if detail.Valid {
			ev.Detail = detail.String
		}
		ev.CreatedAt, _ = time.Parse(time.RFC3339Nano, createdStr)
		events = append(events, ev)
	}
	return events, rows.Err()
}

// #endregion list-events

// #region helpers
func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}

// #endregion helpers
