package ledger

// #region imports
import (
	"time"

	"github.com/dkoval/vla-robustness/go-harness/internal/mutation"
)

// #endregion

// #region record

// Record is one persisted trial. TrialID is assigned by the ledger at append
// time and is strictly increasing; records are never mutated or deleted.
type Record struct {
	TrialID             int64
	RunID               string
	Task                string
	Category            mutation.Category
	TrialIndex          int
	OriginalInstruction string
	MutatedInstruction  string
	Success             bool
	Reward              float64
	DistanceToTarget    *float64
	EpisodeLength       int
	IsTerminated        bool
	Seed                int64
	Timestamp           time.Time
	Notes               string
}

// #endregion

// #region triple-key

// TripleKey identifies a trial's slot in the experiment matrix.
type TripleKey struct {
	Task       string
	Category   mutation.Category
	TrialIndex int
}

// #endregion

// #region aggregate

// Aggregate is a derived view over persisted records. It is recomputed by
// scanning the table on every call and is never the source of truth.
type Aggregate struct {
	Count        int
	SuccessCount int
	SuccessRate  float64
}

// CategoryAggregate pairs a category with its aggregate.
type CategoryAggregate struct {
	Category  mutation.Category
	Aggregate Aggregate
}

// Filter restricts an aggregate scan. Zero values match everything.
type Filter struct {
	Task     string
	Category mutation.Category
}

// #endregion
