package orchestrator

// #region imports
import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkoval/vla-robustness/go-harness/internal/config"
	"github.com/dkoval/vla-robustness/go-harness/internal/episode"
	"github.com/dkoval/vla-robustness/go-harness/internal/ledger"
	"github.com/dkoval/vla-robustness/go-harness/internal/logging"
	"github.com/dkoval/vla-robustness/go-harness/internal/mutation"
	"github.com/dkoval/vla-robustness/go-harness/internal/success"
)

// #endregion

// #region orchestrator-struct

// Orchestrator drives the full trial matrix strictly sequentially: one
// trial's mutate → execute → classify → persist pipeline completes before
// the next begins. The executor holds an exclusive simulator and policy
// instance, so there is nothing to gain from concurrency here.
type Orchestrator struct {
	cfg          config.Config
	gen          *mutation.Generator
	runner       TrialRunner
	evaluator    *success.Evaluator
	ledger       *ledger.Ledger
	instructions InstructionProvider

	runID string
	// baseline instruction cache, one fetch per task
	instrCache map[string]string
}

// New wires a fully assembled orchestrator. The config must already be
// validated; an unknown category here is a programming error.
func New(
	cfg config.Config,
	gen *mutation.Generator,
	runner TrialRunner,
	evaluator *success.Evaluator,
	l *ledger.Ledger,
	instructions InstructionProvider,
) *Orchestrator {
	return &Orchestrator{
		cfg:          cfg,
		gen:          gen,
		runner:       runner,
		evaluator:    evaluator,
		ledger:       l,
		instructions: instructions,
		runID:        uuid.New().String(),
		instrCache:   make(map[string]string),
	}
}

// RunID returns the batch's run identifier.
func (o *Orchestrator) RunID() string {
	return o.runID
}

// #endregion

// #region specs

// Specs enumerates the matrix in fixed order: categories outer (baseline
// first), tasks next, trial index innermost.
func (o *Orchestrator) Specs() []TrialSpec {
	var specs []TrialSpec
	for _, cat := range o.cfg.CategoryOrder() {
		for _, task := range o.cfg.Tasks {
			for i := 0; i < o.cfg.TrialsPerCondition; i++ {
				specs = append(specs, TrialSpec{
					Task:       task,
					Category:   cat,
					TrialIndex: i,
					Seed:       DeriveSeed(task, cat, i),
				})
			}
		}
	}
	return specs
}

// #endregion

// #region run

// Run executes the batch to completion, resuming past any trials already in
// the ledger. It returns a summary recomputed from persisted records. The
// error is a *BatchAbortError for batch-fatal conditions, or ctx.Err() when
// cancelled between trials; a partial summary accompanies either.
func (o *Orchestrator) Run(ctx context.Context) (Summary, error) {
	if err := logging.EnsureSchema(o.ledger.DB()); err != nil {
		return Summary{}, err
	}

	done, err := o.ledger.Completed()
	if err != nil {
		return Summary{}, fmt.Errorf("load completed trials: %w", err)
	}

	specs := o.Specs()
	summary := Summary{RunID: o.runID, Planned: len(specs)}

	if len(done) > 0 {
		log.Printf("[BATCH] run=%s resuming: %d trials already persisted", shortRunID(o.runID), len(done))
		o.logEvent(logging.EventBatchResume, fmt.Sprintf("%d trials already persisted", len(done)), 0)
	} else {
		log.Printf("[BATCH] run=%s starting: %d planned trials", shortRunID(o.runID), len(specs))
		o.logEvent(logging.EventBatchStart, fmt.Sprintf("%d planned trials", len(specs)), 0)
	}

	var lastTrialID int64
	consecutiveFaults := 0

	for _, spec := range specs {
		// Cancellation is honored only between trials; an in-flight trial
		// always reaches PERSISTED or FAILED_RECORDED first.
		if err := ctx.Err(); err != nil {
			o.logEvent(logging.EventBatchAbort, "cancelled by operator", lastTrialID)
			o.fillSummary(&summary)
			return summary, err
		}

		if _, ok := done[spec.Key()]; ok {
			summary.Skipped++
			continue
		}

		id, faulted, err := o.runOne(ctx, spec)
		if err != nil {
			o.logEvent(logging.EventBatchAbort, err.Error(), lastTrialID)
			o.fillSummary(&summary)
			return summary, &BatchAbortError{LastTrialID: lastTrialID, Cause: err}
		}
		lastTrialID = id
		summary.Executed++

		if faulted {
			consecutiveFaults++
			if consecutiveFaults >= o.cfg.ConsecutiveFaultThreshold {
				cause := fmt.Errorf("%d consecutive executor faults", consecutiveFaults)
				log.Printf("[BATCH] run=%s aborting: %v", shortRunID(o.runID), cause)
				o.logEvent(logging.EventBatchAbort, cause.Error(), lastTrialID)
				o.fillSummary(&summary)
				return summary, &BatchAbortError{LastTrialID: lastTrialID, Cause: cause}
			}
		} else {
			consecutiveFaults = 0
		}
	}

	o.fillSummary(&summary)
	o.warnLowBaseline(summary)
	o.logEvent(logging.EventBatchComplete,
		fmt.Sprintf("executed=%d skipped=%d", summary.Executed, summary.Skipped), lastTrialID)
	log.Printf("[BATCH] run=%s complete: executed=%d skipped=%d overall_sr=%.3f",
		shortRunID(o.runID), summary.Executed, summary.Skipped, summary.Overall.SuccessRate)
	return summary, nil
}

// #endregion

// #region run-one

// runOne drives a single trial through the pipeline state machine. It
// returns the persisted trial_id and whether the trial ended in an executor
// fault. A non-nil error means the ledger write failed and the batch must
// abort; every other failure becomes a FAILED_RECORDED record.
func (o *Orchestrator) runOne(ctx context.Context, spec TrialSpec) (int64, bool, error) {
	state := StatePending

	// MUTATING
	state = StateMutating
	original, err := o.baselineInstruction(ctx, spec.Task)
	if err != nil {
		log.Printf("[BATCH] %s task=%s cat=%s idx=%d: instruction fetch failed: %v",
			state, spec.Task, spec.Category, spec.TrialIndex, err)
		note := string(episode.FaultSimulator) + ": instruction fetch: " + err.Error()
		id, werr := o.persistFailure(spec, "", note)
		return id, true, werr
	}

	mutated, err := o.gen.Generate(original, spec.Category)
	if err != nil {
		// Semantic drift (or any generator refusal) is recorded, not fatal,
		// and does not count toward the consecutive-fault threshold.
		log.Printf("[BATCH] %s task=%s cat=%s idx=%d: %v",
			state, spec.Task, spec.Category, spec.TrialIndex, err)
		id, werr := o.persistFailure(spec, original, "mutation: "+err.Error())
		return id, false, werr
	}

	// EXECUTING
	state = StateExecuting
	log.Printf("[BATCH] %s task=%s cat=%s idx=%d seed=%d instruction=%q",
		state, spec.Task, spec.Category, spec.TrialIndex, spec.Seed, mutated)
	outcome := o.runner.RunTrial(ctx, spec.Task, mutated, spec.Seed)

	// CLASSIFYING and PERSISTED (or FAILED_RECORDED)
	final := StatePersisted
	if outcome.Faulted() {
		final = StateFailedRecorded
	}
	id, werr := o.persist(spec, original, mutated, outcome, final)
	return id, outcome.Faulted(), werr
}

// #endregion

// #region persist

func (o *Orchestrator) persist(
	spec TrialSpec,
	original, mutated string,
	outcome episode.Outcome,
	final TrialState,
) (int64, error) {
	verdict := o.evaluator.Explain(spec.Task, outcome)

	var notes []string
	if !verdict.Success {
		notes = append(notes, verdict.Reason)
	}
	if outcome.FaultDetail != "" {
		notes = append(notes, outcome.FaultDetail)
	}
	if outcome.DistanceToTarget == nil && !outcome.Faulted() {
		notes = append(notes, "distance_to_target unavailable")
	}

	id, err := o.ledger.Append(ledger.Record{
		RunID:               o.runID,
		Task:                spec.Task,
		Category:            spec.Category,
		TrialIndex:          spec.TrialIndex,
		OriginalInstruction: original,
		MutatedInstruction:  mutated,
		Success:             verdict.Success,
		Reward:              outcome.Reward,
		DistanceToTarget:    outcome.DistanceToTarget,
		EpisodeLength:       outcome.StepsTaken,
		IsTerminated:        outcome.Terminated,
		Seed:                spec.Seed,
		Timestamp:           time.Now().UTC(),
		Notes:               strings.Join(notes, "; "),
	})
	if err != nil {
		return 0, fmt.Errorf("persist trial: %w", err)
	}

	log.Printf("[BATCH] %s trial_id=%d task=%s cat=%s idx=%d success=%v",
		final, id, spec.Task, spec.Category, spec.TrialIndex, verdict.Success)
	return id, nil
}

// persistFailure records a trial that failed before the episode ran.
func (o *Orchestrator) persistFailure(spec TrialSpec, original, note string) (int64, error) {
	id, err := o.ledger.Append(ledger.Record{
		RunID:               o.runID,
		Task:                spec.Task,
		Category:            spec.Category,
		TrialIndex:          spec.TrialIndex,
		OriginalInstruction: original,
		MutatedInstruction:  "",
		Success:             false,
		Seed:                spec.Seed,
		Timestamp:           time.Now().UTC(),
		Notes:               note,
	})
	if err != nil {
		return 0, fmt.Errorf("persist trial: %w", err)
	}
	log.Printf("[BATCH] %s trial_id=%d task=%s cat=%s idx=%d success=false",
		StateFailedRecorded, id, spec.Task, spec.Category, spec.TrialIndex)
	return id, nil
}

// #endregion

// #region helpers

func (o *Orchestrator) baselineInstruction(ctx context.Context, taskID string) (string, error) {
	if cached, ok := o.instrCache[taskID]; ok {
		return cached, nil
	}
	instr, err := o.instructions.Instruction(ctx, taskID)
	if err != nil {
		return "", err
	}
	o.instrCache[taskID] = instr
	return instr, nil
}

func (o *Orchestrator) fillSummary(s *Summary) {
	overall, err := o.ledger.Aggregate(ledger.Filter{})
	if err != nil {
		log.Printf("[BATCH] summary aggregate failed: %v", err)
		return
	}
	breakdown, err := o.ledger.CategoryBreakdown()
	if err != nil {
		log.Printf("[BATCH] summary breakdown failed: %v", err)
		return
	}
	s.Overall = overall
	s.PerCategory = breakdown
}

func (o *Orchestrator) warnLowBaseline(s Summary) {
	if o.cfg.BaselineMinSR <= 0 {
		return
	}
	base, err := o.ledger.Aggregate(ledger.Filter{Category: mutation.CategoryBaseline})
	if err != nil || base.Count == 0 {
		return
	}
	if base.SuccessRate < o.cfg.BaselineMinSR {
		log.Printf("[BATCH] baseline SR %.3f below minimum %.3f; mutation deltas are not meaningful",
			base.SuccessRate, o.cfg.BaselineMinSR)
	}
}

func (o *Orchestrator) logEvent(event logging.EventType, detail string, lastTrialID int64) {
	err := logging.LogEvent(o.ledger.DB(), logging.RunEvent{
		RunID:       o.runID,
		Event:       event,
		Detail:      detail,
		LastTrialID: lastTrialID,
	})
	if err != nil {
		log.Printf("[BATCH] failed to record %s event: %v", event, err)
	}
}

func shortRunID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion
