package ledger

// #region imports
import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/dkoval/vla-robustness/go-harness/internal/mutation"
)

// #endregion

// #region schema

const trialRecordsSchema = `
CREATE TABLE IF NOT EXISTS trial_records (
	trial_id             INTEGER PRIMARY KEY AUTOINCREMENT,
	run_id               TEXT NOT NULL,
	task                 TEXT NOT NULL,
	mutation_category    TEXT NOT NULL,
	trial_index          INTEGER NOT NULL,
	original_instruction TEXT NOT NULL,
	mutated_instruction  TEXT NOT NULL,
	success              INTEGER NOT NULL,
	reward               REAL NOT NULL,
	distance_to_target   REAL,
	episode_length       INTEGER NOT NULL,
	is_terminated        INTEGER NOT NULL,
	seed                 INTEGER NOT NULL,
	timestamp            TEXT NOT NULL,
	notes                TEXT NOT NULL DEFAULT ''
);
`

const trialRecordsGroupIndex = `
CREATE INDEX IF NOT EXISTS idx_trial_records_group
ON trial_records(task, mutation_category);
`

// One row per matrix slot. The orchestrator skips completed triples on
// resume; this index makes duplicates impossible even if it does not.
const trialRecordsTripleIndex = `
CREATE UNIQUE INDEX IF NOT EXISTS idx_trial_records_triple
ON trial_records(task, mutation_category, trial_index);
`

// #endregion

// #region errors

// ErrWrite wraps any failure to durably append a record. Callers treat it as
// fatal for the batch: without durable writes no result can be trusted.
var ErrWrite = errors.New("ledger write fault")

// #endregion

// #region ledger-struct

// Ledger is the durable, append-only trial store. Single-writer discipline:
// only the orchestrator appends; concurrent readers are safe because records
// are never rewritten and sqlite WAL readers see committed state only.
type Ledger struct {
	db             *sql.DB
	path           string
	backupInterval int
	appendCount    int
}

// #endregion

// #region constructor

// DefaultBackupInterval is the number of appends between best-effort
// snapshot backups.
const DefaultBackupInterval = 10

// Open opens (or creates) a ledger database and runs migrations.
// backupInterval <= 0 selects DefaultBackupInterval.
func Open(dbPath string, backupInterval int) (*Ledger, error) {
	if backupInterval <= 0 {
		backupInterval = DefaultBackupInterval
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		return nil, fmt.Errorf("pragma wal: %w", err)
	}
	// Full sync: an acknowledged append must survive a crash.
	if _, err := db.Exec("PRAGMA synchronous=FULL"); err != nil {
		return nil, fmt.Errorf("pragma sync: %w", err)
	}
	for _, stmt := range []string{trialRecordsSchema, trialRecordsGroupIndex, trialRecordsTripleIndex} {
		if _, err := db.Exec(stmt); err != nil {
			return nil, fmt.Errorf("migrate: %w", err)
		}
	}
	return &Ledger{db: db, path: dbPath, backupInterval: backupInterval}, nil
}

// Close closes the underlying database connection.
func (l *Ledger) Close() error {
	return l.db.Close()
}

// DB returns the underlying *sql.DB for use by other packages (e.g. logging).
func (l *Ledger) DB() *sql.DB {
	return l.db
}

// #endregion

// #region append

// Append assigns the next trial_id, writes the record durably, and returns
// the id. The record is only acknowledged after the transaction commits; a
// crash before commit leaves nothing behind.
func (l *Ledger) Append(rec Record) (int64, error) {
	if rec.Timestamp.IsZero() {
		rec.Timestamp = time.Now().UTC()
	}

	var distPtr interface{}
	if rec.DistanceToTarget != nil {
		distPtr = *rec.DistanceToTarget
	}

	tx, err := l.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("%w: begin tx: %v", ErrWrite, err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		`INSERT INTO trial_records
		 (run_id, task, mutation_category, trial_index, original_instruction,
		  mutated_instruction, success, reward, distance_to_target,
		  episode_length, is_terminated, seed, timestamp, notes)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID,
		rec.Task,
		string(rec.Category),
		rec.TrialIndex,
		rec.OriginalInstruction,
		rec.MutatedInstruction,
		boolToInt(rec.Success),
		rec.Reward,
		distPtr,
		rec.EpisodeLength,
		boolToInt(rec.IsTerminated),
		rec.Seed,
		rec.Timestamp.Format(time.RFC3339Nano),
		rec.Notes,
	)
	if err != nil {
		return 0, fmt.Errorf("%w: insert: %v", ErrWrite, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: last insert id: %v", ErrWrite, err)
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("%w: commit: %v", ErrWrite, err)
	}

	l.appendCount++
	if l.appendCount%l.backupInterval == 0 {
		l.snapshot()
	}
	return id, nil
}

// #endregion

// #region snapshot

// snapshot copies the current database to a timestamped sibling file.
// Best effort: failure is logged and never blocks subsequent appends.
func (l *Ledger) snapshot() {
	dir := filepath.Dir(l.path)
	base := strings.TrimSuffix(filepath.Base(l.path), filepath.Ext(l.path))
	dst := filepath.Join(dir, fmt.Sprintf("%s-backup-%s.db", base, time.Now().UTC().Format("20060102T150405")))

	if _, err := l.db.Exec(`VACUUM INTO ?`, dst); err != nil {
		log.Printf("[LEDGER] backup to %s failed: %v", dst, err)
		return
	}
	log.Printf("[LEDGER] backup written: %s", dst)
}

// #endregion

// #region aggregate

// Aggregate recomputes counts and success rate over persisted records
// matching the filter. Always a fresh scan, never cached.
func (l *Ledger) Aggregate(f Filter) (Aggregate, error) {
	query := `SELECT COUNT(*), COALESCE(SUM(success), 0) FROM trial_records`
	var clauses []string
	var args []interface{}
	if f.Task != "" {
		clauses = append(clauses, "task = ?")
		args = append(args, f.Task)
	}
	if f.Category != "" {
		clauses = append(clauses, "mutation_category = ?")
		args = append(args, string(f.Category))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	var agg Aggregate
	if err := l.db.QueryRow(query, args...).Scan(&agg.Count, &agg.SuccessCount); err != nil {
		return Aggregate{}, fmt.Errorf("aggregate scan: %w", err)
	}
	if agg.Count > 0 {
		agg.SuccessRate = float64(agg.SuccessCount) / float64(agg.Count)
	}
	return agg, nil
}

// CategoryBreakdown returns per-category aggregates in declared category
// order, skipping categories with no records.
func (l *Ledger) CategoryBreakdown() ([]CategoryAggregate, error) {
	rows, err := l.db.Query(
		`SELECT mutation_category, COUNT(*), COALESCE(SUM(success), 0)
		 FROM trial_records GROUP BY mutation_category`,
	)
	if err != nil {
		return nil, fmt.Errorf("breakdown query: %w", err)
	}
	defer rows.Close()

	byCat := make(map[mutation.Category]Aggregate)
	for rows.Next() {
		var cat string
		var agg Aggregate
		if err := rows.Scan(&cat, &agg.Count, &agg.SuccessCount); err != nil {
			return nil, fmt.Errorf("breakdown scan: %w", err)
		}
		if agg.Count > 0 {
			agg.SuccessRate = float64(agg.SuccessCount) / float64(agg.Count)
		}
		byCat[mutation.Category(cat)] = agg
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("breakdown rows: %w", err)
	}

	var out []CategoryAggregate
	for _, c := range mutation.Categories() {
		if agg, ok := byCat[c]; ok {
			out = append(out, CategoryAggregate{Category: c, Aggregate: agg})
		}
	}
	return out, nil
}

// #endregion

// #region completed

// Completed returns the set of (task, category, trial_index) triples already
// persisted, for idempotent resume.
func (l *Ledger) Completed() (map[TripleKey]struct{}, error) {
	rows, err := l.db.Query(
		`SELECT DISTINCT task, mutation_category, trial_index FROM trial_records`,
	)
	if err != nil {
		return nil, fmt.Errorf("completed query: %w", err)
	}
	defer rows.Close()

	done := make(map[TripleKey]struct{})
	for rows.Next() {
		var task, cat string
		var idx int
		if err := rows.Scan(&task, &cat, &idx); err != nil {
			return nil, fmt.Errorf("completed scan: %w", err)
		}
		done[TripleKey{Task: task, Category: mutation.Category(cat), TrialIndex: idx}] = struct{}{}
	}
	return done, rows.Err()
}

// #endregion

// #region records

// Records returns all persisted trials in trial_id order.
func (l *Ledger) Records() ([]Record, error) {
	rows, err := l.db.Query(
		`SELECT trial_id, run_id, task, mutation_category, trial_index,
		        original_instruction, mutated_instruction, success, reward,
		        distance_to_target, episode_length, is_terminated, seed,
		        timestamp, notes
		 FROM trial_records ORDER BY trial_id`,
	)
	if err != nil {
		return nil, fmt.Errorf("records query: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var rec Record
		var cat string
		var success, terminated int
		var dist sql.NullFloat64
		var ts string

		if err := rows.Scan(
			&rec.TrialID, &rec.RunID, &rec.Task, &cat, &rec.TrialIndex,
			&rec.OriginalInstruction, &rec.MutatedInstruction, &success, &rec.Reward,
			&dist, &rec.EpisodeLength, &terminated, &rec.Seed, &ts, &rec.Notes,
		); err != nil {
			return nil, fmt.Errorf("records scan: %w", err)
		}
		rec.Category = mutation.Category(cat)
		rec.Success = success != 0
		rec.IsTerminated = terminated != 0
		if dist.Valid {
			d := dist.Float64
			rec.DistanceToTarget = &d
		}
		rec.Timestamp, _ = time.Parse(time.RFC3339Nano, ts)
		records = append(records, rec)
	}
	return records, rows.Err()
}

// #endregion

// #region helpers

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// #endregion
