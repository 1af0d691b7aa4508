package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/dkoval/vla-robustness/go-harness/internal/episode"
	"github.com/dkoval/vla-robustness/go-harness/internal/ledger"
	"github.com/dkoval/vla-robustness/go-harness/internal/success"
	_ "modernc.org/sqlite"
)

// #region main

// replay re-runs the success classification over every persisted trial and
// reports records whose stored bit disagrees with a fresh classification.
// Disagreements mean the classifier changed since the batch ran, or the
// record was written by a different harness build.
func main() {
	dbPath := flag.String("db", "", "path to results.db")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: replay --db path/to/results.db [--json]")
		os.Exit(2)
	}

	ldg, err := ledger.Open(*dbPath, ledger.DefaultBackupInterval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer ldg.Close()

	records, err := ldg.Records()
	if err != nil {
		fmt.Fprintf(os.Stderr, "read records: %v\n", err)
		os.Exit(1)
	}

	var disagreements []disagreement
	for _, r := range records {
		replayed := success.Classify(outcomeFromRecord(r))
		if replayed != r.Success {
			disagreements = append(disagreements, disagreement{
				TrialID:  r.TrialID,
				Task:     r.Task,
				Category: string(r.Category),
				Stored:   r.Success,
				Replayed: replayed,
				Notes:    r.Notes,
			})
		}
	}

	if *jsonOut {
		out := replayReport{Checked: len(records), Disagreements: disagreements}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal json: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(string(data))
	} else {
		fmt.Printf("checked %d records, %d disagreements\n", len(records), len(disagreements))
		for _, d := range disagreements {
			fmt.Printf("  trial_id=%d task=%s cat=%s stored=%v replayed=%v notes=%q\n",
				d.TrialID, d.Task, d.Category, d.Stored, d.Replayed, d.Notes)
		}
	}

	if len(disagreements) > 0 {
		os.Exit(1)
	}
}

// #endregion main

// #region reconstruct

type replayReport struct {
	Checked       int            `json:"checked"`
	Disagreements []disagreement `json:"disagreements,omitempty"`
}

type disagreement struct {
	TrialID  int64  `json:"trial_id"`
	Task     string `json:"task"`
	Category string `json:"category"`
	Stored   bool   `json:"stored"`
	Replayed bool   `json:"replayed"`
	Notes    string `json:"notes,omitempty"`
}

// outcomeFromRecord rebuilds the episode outcome from persisted columns.
// The fault kind is not a column of its own; it is recovered from the notes,
// where the harness always includes the fault kind string for faulted trials.
func outcomeFromRecord(r ledger.Record) episode.Outcome {
	out := episode.Outcome{
		Terminated: r.IsTerminated,
		Reward:     r.Reward,
		StepsTaken: r.EpisodeLength,

		DistanceToTarget: r.DistanceToTarget,
	}
	switch {
	case strings.Contains(r.Notes, string(episode.FaultSimulator)):
		out.Fault = episode.FaultSimulator
	case strings.Contains(r.Notes, string(episode.FaultPolicy)):
		out.Fault = episode.FaultPolicy
	}
	return out
}

// #endregion reconstruct
