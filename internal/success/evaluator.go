package success

// #region imports
import (
	"fmt"

	"github.com/dkoval/vla-robustness/go-harness/internal/episode"
)

// #endregion

// #region verdict

// Verdict is the classification result plus the first failing condition,
// for diagnostics. Condition order affects Reason only, never Success.
type Verdict struct {
	Success bool
	Reason  string
}

// #endregion

// #region predicate

// Predicate is an optional task-specific success condition, ANDed with the
// standard conditions.
type Predicate func(out episode.Outcome) bool

// #endregion

// #region evaluator

// Evaluator applies the multi-condition success policy. All conditions must
// hold: no fault, natural termination, positive reward, and any registered
// task predicate. A timed-out episode with partial reward is a failure;
// partial progress lives in telemetry, not in the success bit.
type Evaluator struct {
	predicates map[string]Predicate
}

// NewEvaluator returns an evaluator with no task-specific predicates.
func NewEvaluator() *Evaluator {
	return &Evaluator{predicates: make(map[string]Predicate)}
}

// Register attaches a task-specific predicate for taskID.
func (e *Evaluator) Register(taskID string, pred Predicate) {
	e.predicates[taskID] = pred
}

// Classify returns the success bit for an outcome under the given task.
func (e *Evaluator) Classify(taskID string, out episode.Outcome) bool {
	return e.Explain(taskID, out).Success
}

// Explain classifies an outcome and names the first failing condition.
func (e *Evaluator) Explain(taskID string, out episode.Outcome) Verdict {
	if out.Faulted() {
		return Verdict{Success: false, Reason: string(out.Fault)}
	}
	if !out.Terminated {
		if out.Reward > 0 {
			return Verdict{Success: false, Reason: "timeout with partial reward"}
		}
		return Verdict{Success: false, Reason: "timeout"}
	}
	if out.Reward <= 0 {
		return Verdict{Success: false, Reason: fmt.Sprintf("non-positive reward %.4f", out.Reward)}
	}
	if pred, ok := e.predicates[taskID]; ok && !pred(out) {
		return Verdict{Success: false, Reason: "task predicate failed"}
	}
	return Verdict{Success: true, Reason: "terminated with positive reward"}
}

// #endregion

// #region classify-func

// Classify applies the standard success policy with no task predicates.
// Pure function; convenient for offline re-checks.
func Classify(out episode.Outcome) bool {
	return NewEvaluator().Classify("", out)
}

// #endregion
