package episode

import (
	"context"
	"errors"
	"testing"
)

// scriptedEnv replays a fixed sequence of step results.
type scriptedEnv struct {
	resetErr error
	steps    []StepResult
	stepErrs []error
	cursor   int
	resets   int
}

func (e *scriptedEnv) Reset(ctx context.Context, taskID string, seed int64) (Observation, error) {
	e.resets++
	e.cursor = 0
	if e.resetErr != nil {
		return nil, e.resetErr
	}
	return Observation("obs-0"), nil
}

func (e *scriptedEnv) Step(ctx context.Context, action []float32) (StepResult, error) {
	i := e.cursor
	e.cursor++
	if i < len(e.stepErrs) && e.stepErrs[i] != nil {
		return StepResult{}, e.stepErrs[i]
	}
	if i < len(e.steps) {
		return e.steps[i], nil
	}
	return StepResult{Observation: Observation("obs")}, nil
}

type constantPolicy struct {
	err   error
	calls int
}

func (p *constantPolicy) Infer(ctx context.Context, obs Observation, instruction string) ([]float32, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return []float32{0, 0, 0, 0, 0, 0, 1}, nil
}

func TestRunTrialNaturalTermination(t *testing.T) {
	dist := 0.02
	env := &scriptedEnv{steps: []StepResult{
		{Reward: 0},
		{Reward: 0},
		{Reward: 1.0, Terminated: true, Info: map[string]float64{"distance_to_target": dist}},
	}}
	r := NewRunner(env, &constantPolicy{}, 50)

	out := r.RunTrial(context.Background(), "google_robot_pick_coke_can", "pick coke can", 7)
	if out.Faulted() {
		t.Fatalf("unexpected fault: %s (%s)", out.Fault, out.FaultDetail)
	}
	if !out.Terminated {
		t.Fatal("expected natural termination")
	}
	if out.StepsTaken != 3 {
		t.Fatalf("expected 3 steps, got %d", out.StepsTaken)
	}
	if out.Reward != 1.0 {
		t.Fatalf("expected final reward 1.0, got %f", out.Reward)
	}
	if out.DistanceToTarget == nil || *out.DistanceToTarget != dist {
		t.Fatalf("expected distance_to_target %f, got %v", dist, out.DistanceToTarget)
	}
}

func TestRunTrialTimeout(t *testing.T) {
	env := &scriptedEnv{} // never terminates
	r := NewRunner(env, &constantPolicy{}, 12)

	out := r.RunTrial(context.Background(), "t1", "pick coke can", 0)
	if out.Faulted() {
		t.Fatalf("timeout must not be a fault, got %s", out.Fault)
	}
	if out.Terminated {
		t.Fatal("timeout must report Terminated=false")
	}
	if out.StepsTaken != 12 || out.MaxSteps != 12 {
		t.Fatalf("expected 12/12 steps, got %d/%d", out.StepsTaken, out.MaxSteps)
	}
}

func TestRunTrialResetFault(t *testing.T) {
	env := &scriptedEnv{resetErr: errors.New("sim unreachable")}
	policy := &constantPolicy{}
	r := NewRunner(env, policy, 10)

	out := r.RunTrial(context.Background(), "t1", "pick coke can", 0)
	if out.Fault != FaultSimulator {
		t.Fatalf("expected simulator fault, got %s", out.Fault)
	}
	if policy.calls != 0 {
		t.Fatalf("policy must not be called after reset fault, got %d calls", policy.calls)
	}
}

func TestRunTrialStepFault(t *testing.T) {
	env := &scriptedEnv{
		steps:    []StepResult{{Reward: 0}, {}},
		stepErrs: []error{nil, errors.New("physics blew up")},
	}
	r := NewRunner(env, &constantPolicy{}, 10)

	out := r.RunTrial(context.Background(), "t1", "pick coke can", 0)
	if out.Fault != FaultSimulator {
		t.Fatalf("expected simulator fault, got %s", out.Fault)
	}
	if out.StepsTaken != 1 {
		t.Fatalf("expected 1 completed step before fault, got %d", out.StepsTaken)
	}
}

func TestRunTrialPolicyFault(t *testing.T) {
	env := &scriptedEnv{}
	r := NewRunner(env, &constantPolicy{err: errors.New("OOM during inference")}, 10)

	out := r.RunTrial(context.Background(), "t1", "pick coke can", 0)
	if out.Fault != FaultPolicy {
		t.Fatalf("expected policy fault, got %s", out.Fault)
	}
	if out.Terminated {
		t.Fatal("faulted episode must not report termination")
	}
}
