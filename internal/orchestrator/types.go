package orchestrator

// #region imports
import (
	"context"
	"fmt"

	"github.com/dkoval/vla-robustness/go-harness/internal/episode"
	"github.com/dkoval/vla-robustness/go-harness/internal/ledger"
	"github.com/dkoval/vla-robustness/go-harness/internal/mutation"
)

// #endregion

// #region trial-state

// TrialState tracks one trial through its pipeline. Every trial ends in
// PERSISTED or FAILED_RECORDED; nothing in between is ever left behind.
type TrialState string

const (
	StatePending        TrialState = "PENDING"
	StateMutating       TrialState = "MUTATING"
	StateExecuting      TrialState = "EXECUTING"
	StateClassifying    TrialState = "CLASSIFYING"
	StatePersisted      TrialState = "PERSISTED"
	StateFailedRecorded TrialState = "FAILED_RECORDED"
)

// #endregion

// #region trial-spec

// TrialSpec is one slot in the experiment matrix. The seed is derived from
// the triple, so specs never need external storage to be reproducible.
type TrialSpec struct {
	Task       string
	Category   mutation.Category
	TrialIndex int
	Seed       int64
}

// Key returns the spec's identity triple.
func (s TrialSpec) Key() ledger.TripleKey {
	return ledger.TripleKey{Task: s.Task, Category: s.Category, TrialIndex: s.TrialIndex}
}

// #endregion

// #region collaborators

// TrialRunner executes a single episode. Satisfied by *episode.Runner.
type TrialRunner interface {
	RunTrial(ctx context.Context, taskID, instruction string, seed int64) episode.Outcome
}

// InstructionProvider supplies the baseline language instruction for a task.
// Satisfied by the simulator client.
type InstructionProvider interface {
	Instruction(ctx context.Context, taskID string) (string, error)
}

// #endregion

// #region summary

// Summary is the batch result: counts plus aggregates recomputed from the
// ledger at completion time.
type Summary struct {
	RunID    string
	Planned  int
	Executed int
	Skipped  int

	Overall     ledger.Aggregate
	PerCategory []ledger.CategoryAggregate
}

// #endregion

// #region abort-error

// BatchAbortError reports a batch-level fatal condition: an unrecoverable
// ledger write or a run of consecutive executor faults. Re-running the batch
// is safe; completed trials are skipped on resume.
type BatchAbortError struct {
	LastTrialID int64
	Cause       error
}

func (e *BatchAbortError) Error() string {
	return fmt.Sprintf(
		"batch aborted after trial_id=%d: %v (resume is safe: completed trials are skipped)",
		e.LastTrialID, e.Cause,
	)
}

func (e *BatchAbortError) Unwrap() error {
	return e.Cause
}

// #endregion
