package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/dkoval/vla-robustness/go-harness/internal/config"
	"github.com/dkoval/vla-robustness/go-harness/internal/episode"
	"github.com/dkoval/vla-robustness/go-harness/internal/ledger"
	"github.com/dkoval/vla-robustness/go-harness/internal/mutation"
	"github.com/dkoval/vla-robustness/go-harness/internal/orchestrator"
	"github.com/dkoval/vla-robustness/go-harness/internal/simclient"
	"github.com/dkoval/vla-robustness/go-harness/internal/success"
)

// #region main
func main() {
	configPath := flag.String("config", "", "path to batch config YAML (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}
	cfg.ResultsDB = config.EnvOr("ROBUSTNESS_DB", cfg.ResultsDB)
	cfg.SimAddr = config.EnvOr("SIM_ADDR", cfg.SimAddr)

	if dir := filepath.Dir(cfg.ResultsDB); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("create results dir: %v", err)
		}
	}

	ldg, err := ledger.Open(cfg.ResultsDB, cfg.BackupInterval)
	if err != nil {
		log.Fatalf("open ledger: %v", err)
	}
	defer ldg.Close()

	sim, err := simclient.NewSimClient(cfg.SimAddr)
	if err != nil {
		log.Fatalf("connect simulator at %s: %v", cfg.SimAddr, err)
	}
	defer sim.Close()

	runner := episode.NewRunner(sim, sim, cfg.MaxStepsPerEpisode)
	orch := orchestrator.New(cfg, mutation.NewGenerator(), runner, success.NewEvaluator(), ldg, sim)

	fmt.Println("VLA Robustness Harness")
	fmt.Printf("  DB: %s | Sim: %s | run: %s\n", cfg.ResultsDB, cfg.SimAddr, orch.RunID())

	// Interrupts cancel between trials; the in-flight trial always finishes
	// its persist step first.
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summary, err := orch.Run(ctx)
	printSummary(summary)

	if err != nil {
		var abort *orchestrator.BatchAbortError
		switch {
		case errors.As(err, &abort):
			fmt.Fprintf(os.Stderr, "\n%v\n", abort)
			fmt.Fprintln(os.Stderr, "re-run with the same config and results db to resume")
			os.Exit(1)
		case errors.Is(err, context.Canceled):
			fmt.Fprintln(os.Stderr, "\ninterrupted; re-run with the same config and results db to resume")
			os.Exit(130)
		default:
			log.Fatalf("batch failed: %v", err)
		}
	}
}

// #endregion main

// #region summary
func printSummary(s orchestrator.Summary) {
	fmt.Printf("\nBatch summary (run %s)\n", shortID(s.RunID))
	fmt.Printf("  planned=%d executed=%d skipped=%d\n", s.Planned, s.Executed, s.Skipped)
	if s.Overall.Count == 0 {
		return
	}
	fmt.Printf("  overall: %d/%d success (%.3f)\n",
		s.Overall.SuccessCount, s.Overall.Count, s.Overall.SuccessRate)

	fmt.Printf("\n%-22s  %6s  %8s  %8s\n", "Category", "Trials", "Success", "SR")
	fmt.Printf("%-22s+-%6s+-%8s+-%8s\n",
		"----------------------", "------", "--------", "--------")
	for _, c := range s.PerCategory {
		fmt.Printf("%-22s  %6d  %8d  %8.3f\n",
			c.Category, c.Aggregate.Count, c.Aggregate.SuccessCount, c.Aggregate.SuccessRate)
	}
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

// #endregion summary
