package episode

// #region imports
import (
	"context"
	"log"
)

// #endregion

// #region runner

// Runner owns the lifecycle of a single simulated episode: reset with seed,
// policy-driven step loop, reward and step accumulation, and termination
// detection. It holds an exclusive environment and policy instance, so
// episodes run strictly one at a time.
type Runner struct {
	env      Environment
	policy   Policy
	maxSteps int
}

// NewRunner wires a runner to its external collaborators.
func NewRunner(env Environment, policy Policy, maxSteps int) *Runner {
	return &Runner{env: env, policy: policy, maxSteps: maxSteps}
}

// #endregion

// #region run-trial

// RunTrial executes one episode for the given task, instruction and seed.
// Collaborator errors never propagate: they are converted into a faulted
// Outcome and the caller decides what a fault means for the batch. There are
// no retries at this level.
func (r *Runner) RunTrial(ctx context.Context, taskID, instruction string, seed int64) Outcome {
	out := Outcome{Fault: FaultNone, MaxSteps: r.maxSteps}

	obs, err := r.env.Reset(ctx, taskID, seed)
	if err != nil {
		log.Printf("[EPISODE] reset fault task=%s seed=%d: %v", taskID, seed, err)
		out.Fault = FaultSimulator
		out.FaultDetail = "reset: " + err.Error()
		return out
	}

	for out.StepsTaken < r.maxSteps {
		action, err := r.policy.Infer(ctx, obs, instruction)
		if err != nil {
			log.Printf("[EPISODE] inference fault task=%s step=%d: %v", taskID, out.StepsTaken, err)
			out.Fault = FaultPolicy
			out.FaultDetail = "infer: " + err.Error()
			return out
		}

		step, err := r.env.Step(ctx, action)
		if err != nil {
			log.Printf("[EPISODE] step fault task=%s step=%d: %v", taskID, out.StepsTaken, err)
			out.Fault = FaultSimulator
			out.FaultDetail = "step: " + err.Error()
			return out
		}

		out.StepsTaken++
		out.Reward = step.Reward
		if d, ok := step.Info["distance_to_target"]; ok {
			dist := d
			out.DistanceToTarget = &dist
		}

		if step.Terminated {
			out.Terminated = true
			return out
		}
		obs = step.Observation
	}

	// Timeout path: a normal outcome, distinguishable by Terminated=false.
	return out
}

// #endregion
