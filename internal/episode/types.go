package episode

// #region imports
import "context"

// #endregion

// #region fault-kind

// FaultKind categorizes why an episode failed outside of task semantics.
type FaultKind string

const (
	FaultNone      FaultKind = "none"
	FaultSimulator FaultKind = "simulator_fault"
	FaultPolicy    FaultKind = "policy_inference_fault"
)

// #endregion

// #region observation

// Observation is an opaque environment observation passed through to the
// policy. The harness never interprets its contents.
type Observation []byte

// StepResult is one environment transition.
type StepResult struct {
	Observation Observation
	Reward      float64
	Terminated  bool
	// Info carries optional telemetry keys from the environment, such as
	// "distance_to_target".
	Info map[string]float64
}

// #endregion

// #region outcome

// Outcome is the immutable result of one simulated episode.
type Outcome struct {
	Terminated bool
	Reward     float64
	StepsTaken int
	MaxSteps   int

	// Fault is FaultNone for normal episodes, including timeouts.
	Fault       FaultKind
	FaultDetail string

	// DistanceToTarget is nil when the environment did not report it.
	DistanceToTarget *float64
}

// Faulted reports whether the episode ended in a collaborator fault.
func (o Outcome) Faulted() bool {
	return o.Fault != FaultNone && o.Fault != ""
}

// #endregion

// #region collaborators

// Policy is the external VLA policy, loaded and quantized elsewhere.
type Policy interface {
	Infer(ctx context.Context, obs Observation, instruction string) ([]float32, error)
}

// Environment is the external simulated environment.
type Environment interface {
	Reset(ctx context.Context, taskID string, seed int64) (Observation, error)
	Step(ctx context.Context, action []float32) (StepResult, error)
}

// #endregion
