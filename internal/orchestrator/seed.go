package orchestrator

// #region imports
import (
	"fmt"
	"hash/fnv"

	"github.com/dkoval/vla-robustness/go-harness/internal/mutation"
)

// #endregion

// #region derive-seed

// DeriveSeed maps a (task, category, trial_index) triple to a stable episode
// seed. Re-runs reproduce the same seeds with no seed storage.
func DeriveSeed(task string, category mutation.Category, trialIndex int) int64 {
	h := fnv.New64a()
	fmt.Fprintf(h, "%s|%s|%d", task, category, trialIndex)
	// Clear the sign bit; environments commonly reject negative seeds.
	return int64(h.Sum64() &^ (1 << 63))
}

// #endregion
