package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/dkoval/vla-robustness/go-harness/internal/ledger"
	"github.com/dkoval/vla-robustness/go-harness/internal/logging"
	"github.com/dkoval/vla-robustness/go-harness/internal/mutation"
	_ "modernc.org/sqlite"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to results.db")
	task := flag.String("task", "", "filter aggregates to one task")
	category := flag.String("category", "", "filter aggregates to one category")
	last := flag.Int("last", 10, "show N most recent trial records")
	run := flag.String("run", "", "show batch lifecycle events for one run id (empty with --events shows all)")
	events := flag.Bool("events", false, "show batch lifecycle events instead of aggregates")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/results.db [--task id] [--category name] [--last N] [--events [--run id]] [--json]")
		os.Exit(2)
	}

	filter := ledger.Filter{Task: *task}
	if *category != "" {
		cat, err := mutation.ParseCategory(*category)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(2)
		}
		filter.Category = cat
	}

	ldg, err := ledger.Open(*dbPath, ledger.DefaultBackupInterval)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer ldg.Close()

	if *events {
		if err := runEvents(ldg, *run, *jsonOut); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if err := runReport(ldg, filter, *last, *jsonOut); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region report

type report struct {
	Overall     ledger.Aggregate           `json:"overall"`
	PerCategory []ledger.CategoryAggregate `json:"per_category,omitempty"`
	Recent      []recordRow                `json:"recent,omitempty"`
}

type recordRow struct {
	TrialID    int64    `json:"trial_id"`
	Task       string   `json:"task"`
	Category   string   `json:"category"`
	TrialIndex int      `json:"trial_index"`
	Success    bool     `json:"success"`
	Reward     float64  `json:"reward"`
	Distance   *float64 `json:"distance_to_target,omitempty"`
	Steps      int      `json:"episode_length"`
	Timestamp  string   `json:"timestamp"`
	Notes      string   `json:"notes,omitempty"`
}

func runReport(ldg *ledger.Ledger, filter ledger.Filter, last int, jsonOut bool) error {
	overall, err := ldg.Aggregate(filter)
	if err != nil {
		return err
	}

	rep := report{Overall: overall}

	// The breakdown only makes sense unfiltered.
	if filter.Task == "" && filter.Category == "" {
		breakdown, err := ldg.CategoryBreakdown()
		if err != nil {
			return err
		}
		rep.PerCategory = breakdown
	}

	if last > 0 {
		records, err := ldg.Records()
		if err != nil {
			return err
		}
		records = filterRecords(records, filter)
		if len(records) > last {
			records = records[len(records)-last:]
		}
		for _, r := range records {
			rep.Recent = append(rep.Recent, recordRow{
				TrialID:    r.TrialID,
				Task:       r.Task,
				Category:   string(r.Category),
				TrialIndex: r.TrialIndex,
				Success:    r.Success,
				Reward:     r.Reward,
				Distance:   r.DistanceToTarget,
				Steps:      r.EpisodeLength,
				Timestamp:  r.Timestamp.Format("2006-01-02T15:04:05Z"),
				Notes:      r.Notes,
			})
		}
	}

	if jsonOut {
		return printJSON(rep)
	}
	return printTables(rep)
}

func filterRecords(records []ledger.Record, f ledger.Filter) []ledger.Record {
	if f.Task == "" && f.Category == "" {
		return records
	}
	var out []ledger.Record
	for _, r := range records {
		if f.Task != "" && r.Task != f.Task {
			continue
		}
		if f.Category != "" && r.Category != f.Category {
			continue
		}
		out = append(out, r)
	}
	return out
}

// #endregion report

// #region events

type eventRow struct {
	RunID       string `json:"run_id"`
	Event       string `json:"event"`
	Detail      string `json:"detail,omitempty"`
	LastTrialID int64  `json:"last_trial_id"`
	CreatedAt   string `json:"created_at"`
}

func runEvents(ldg *ledger.Ledger, runID string, jsonOut bool) error {
	if err := logging.EnsureSchema(ldg.DB()); err != nil {
		return err
	}
	events, err := logging.ListEvents(ldg.DB(), runID)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(os.Stderr, "no run events found")
		return nil
	}

	rows := make([]eventRow, len(events))
	for i, ev := range events {
		rows[i] = eventRow{
			RunID:       ev.RunID,
			Event:       string(ev.Event),
			Detail:      ev.Detail,
			LastTrialID: ev.LastTrialID,
			CreatedAt:   ev.CreatedAt.Format("2006-01-02T15:04:05Z"),
		}
	}

	if jsonOut {
		return printJSON(rows)
	}
	fmt.Printf("%-10s  %-16s  %-9s  %-20s  %s\n", "Run", "Event", "LastTrial", "Time", "Detail")
	for _, r := range rows {
		fmt.Printf("%-10s  %-16s  %-9d  %-20s  %s\n",
			shortID(r.RunID), r.Event, r.LastTrialID, r.CreatedAt, r.Detail)
	}
	return nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion events

// #region output

func printTables(rep report) error {
	if rep.Overall.Count == 0 {
		fmt.Fprintln(os.Stderr, "no trial records found")
		return nil
	}
	fmt.Printf("Overall: %d/%d success (%.3f)\n",
		rep.Overall.SuccessCount, rep.Overall.Count, rep.Overall.SuccessRate)

	if len(rep.PerCategory) > 0 {
		fmt.Printf("\n%-22s  %6s  %8s  %8s\n", "Category", "Trials", "Success", "SR")
		fmt.Printf("%-22s+-%6s+-%8s+-%8s\n",
			"----------------------", "------", "--------", "--------")
		for _, c := range rep.PerCategory {
			fmt.Printf("%-22s  %6d  %8d  %8.3f\n",
				c.Category, c.Aggregate.Count, c.Aggregate.SuccessCount, c.Aggregate.SuccessRate)
		}
	}

	if len(rep.Recent) > 0 {
		fmt.Printf("\n%-8s  %-26s  %-22s  %4s  %-7s  %8s  %5s  %s\n",
			"Trial", "Task", "Category", "Idx", "Success", "Reward", "Steps", "Time")
		for _, r := range rep.Recent {
			fmt.Printf("%-8d  %-26s  %-22s  %4d  %-7v  %8.4f  %5d  %s\n",
				r.TrialID, r.Task, r.Category, r.TrialIndex, r.Success, r.Reward, r.Steps, r.Timestamp)
		}
	}
	return nil
}

func printJSON(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// #endregion output
