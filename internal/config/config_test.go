package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/dkoval/vla-robustness/go-harness/internal/mutation"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config must validate: %v", err)
	}
	order := Default().CategoryOrder()
	if len(order) != 11 {
		t.Fatalf("expected baseline + 10 categories, got %d", len(order))
	}
	if order[0] != mutation.CategoryBaseline {
		t.Fatalf("baseline must enumerate first, got %s", order[0])
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
tasks:
  - google_robot_pick_coke_can
  - google_robot_open_drawer
categories:
  - synonyms
  - passive_voice
trials_per_condition: 20
max_steps_per_episode: 80
consecutive_fault_threshold: 3
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(cfg.Tasks) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(cfg.Tasks))
	}
	if cfg.TrialsPerCondition != 20 {
		t.Fatalf("expected 20 trials, got %d", cfg.TrialsPerCondition)
	}
	if cfg.ConsecutiveFaultThreshold != 3 {
		t.Fatalf("expected threshold 3, got %d", cfg.ConsecutiveFaultThreshold)
	}

	// Untouched fields keep their defaults.
	if cfg.BackupInterval != Default().BackupInterval {
		t.Fatalf("backup_interval default lost: %d", cfg.BackupInterval)
	}

	order := cfg.CategoryOrder()
	want := []mutation.Category{
		mutation.CategoryBaseline,
		mutation.CategorySynonyms,
		mutation.CategoryPassiveVoice,
	}
	if len(order) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(order))
	}
	for i := range want {
		if order[i] != want[i] {
			t.Fatalf("order[%d]: got %s, want %s", i, order[i], want[i])
		}
	}
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	path := writeConfig(t, `
tasks: [t1]
categories: [synonyms, sarcasm]
`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected unknown category to fail at load time")
	}
}

func TestValidateRejectsBadCounts(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no-tasks", func(c *Config) { c.Tasks = nil }},
		{"no-categories", func(c *Config) { c.Categories = nil }},
		{"zero-trials", func(c *Config) { c.TrialsPerCondition = 0 }},
		{"zero-steps", func(c *Config) { c.MaxStepsPerEpisode = 0 }},
		{"zero-threshold", func(c *Config) { c.ConsecutiveFaultThreshold = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(&cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected validation error")
			}
		})
	}
}

func TestCategoryOrderDedupesBaseline(t *testing.T) {
	cfg := Default()
	cfg.Categories = []string{"baseline", "synonyms"}
	order := cfg.CategoryOrder()
	if len(order) != 2 {
		t.Fatalf("baseline listed in config must not duplicate, got %v", order)
	}
}
