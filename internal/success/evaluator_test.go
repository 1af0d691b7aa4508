package success

import (
	"testing"

	"github.com/dkoval/vla-robustness/go-harness/internal/episode"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		out    episode.Outcome
		want   bool
		reason string
	}{
		{
			"clean-success",
			episode.Outcome{Terminated: true, Reward: 1.0, Fault: episode.FaultNone},
			true, "terminated with positive reward",
		},
		{
			"simulator-fault",
			episode.Outcome{Terminated: true, Reward: 1.0, Fault: episode.FaultSimulator},
			false, "simulator_fault",
		},
		{
			"policy-fault",
			episode.Outcome{Fault: episode.FaultPolicy},
			false, "policy_inference_fault",
		},
		{
			"timeout-no-reward",
			episode.Outcome{Terminated: false, Reward: 0, Fault: episode.FaultNone},
			false, "timeout",
		},
		{
			// Conservative policy: partial progress at timeout never counts.
			"timeout-partial-reward",
			episode.Outcome{Terminated: false, Reward: 0.8, Fault: episode.FaultNone},
			false, "timeout with partial reward",
		},
		{
			"terminated-negative-reward",
			episode.Outcome{Terminated: true, Reward: -0.1, Fault: episode.FaultNone},
			false, "non-positive reward -0.1000",
		},
		{
			"terminated-zero-reward",
			episode.Outcome{Terminated: true, Reward: 0, Fault: episode.FaultNone},
			false, "non-positive reward 0.0000",
		},
	}

	e := NewEvaluator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := e.Explain("t1", tt.out)
			if v.Success != tt.want {
				t.Errorf("success: got %v, want %v", v.Success, tt.want)
			}
			if v.Reason != tt.reason {
				t.Errorf("reason: got %q, want %q", v.Reason, tt.reason)
			}
			if got := e.Classify("t1", tt.out); got != tt.want {
				t.Errorf("Classify disagrees with Explain: %v", got)
			}
		})
	}
}

func TestFaultAlwaysFails(t *testing.T) {
	// Even an otherwise perfect outcome fails when a fault was recorded.
	for _, fault := range []episode.FaultKind{episode.FaultSimulator, episode.FaultPolicy} {
		out := episode.Outcome{Terminated: true, Reward: 10.0, Fault: fault}
		if Classify(out) {
			t.Errorf("fault %s must classify as failure", fault)
		}
	}
}

func TestTaskPredicate(t *testing.T) {
	e := NewEvaluator()
	e.Register("precision_place", func(out episode.Outcome) bool {
		return out.DistanceToTarget != nil && *out.DistanceToTarget < 0.05
	})

	far := 0.5
	near := 0.01
	base := episode.Outcome{Terminated: true, Reward: 1.0, Fault: episode.FaultNone}

	out := base
	out.DistanceToTarget = &far
	if e.Classify("precision_place", out) {
		t.Fatal("predicate failure must fail the trial")
	}

	out.DistanceToTarget = &near
	if !e.Classify("precision_place", out) {
		t.Fatal("expected success when predicate holds")
	}

	// Predicates are per-task: other tasks are unaffected.
	out.DistanceToTarget = &far
	if !e.Classify("other_task", out) {
		t.Fatal("predicate must not apply to unregistered tasks")
	}
}

func TestZeroValueFaultKind(t *testing.T) {
	// Outcomes built without an explicit FaultNone still classify cleanly.
	out := episode.Outcome{Terminated: true, Reward: 1.0}
	if !Classify(out) {
		t.Fatal("zero-value fault kind should not read as a fault")
	}
}
