package config

// #region imports
import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/dkoval/vla-robustness/go-harness/internal/ledger"
	"github.com/dkoval/vla-robustness/go-harness/internal/mutation"
)

// #endregion

// #region config

// Config describes one robustness batch. Matrix size is fully parametric:
// tasks × categories × trials_per_condition.
type Config struct {
	Tasks      []string `yaml:"tasks"`
	Categories []string `yaml:"categories"`

	TrialsPerCondition        int `yaml:"trials_per_condition"`
	MaxStepsPerEpisode        int `yaml:"max_steps_per_episode"`
	BackupInterval            int `yaml:"backup_interval"`
	ConsecutiveFaultThreshold int `yaml:"consecutive_fault_threshold"`

	// BaselineMinSR is advisory: the harness warns when the baseline success
	// rate lands below it, since mutation deltas are meaningless over a
	// broken baseline.
	BaselineMinSR float64 `yaml:"baseline_min_sr"`

	ResultsDB string `yaml:"results_db"`
	SimAddr   string `yaml:"sim_addr"`
}

// #endregion

// #region defaults

// Default returns a config matching the study defaults: all ten mutation
// categories, 120-step episodes, backup every 10 appends, abort after 5
// consecutive faults.
func Default() Config {
	var cats []string
	for _, c := range mutation.MutationCategories() {
		cats = append(cats, string(c))
	}
	return Config{
		Tasks:                     []string{"google_robot_pick_coke_can"},
		Categories:                cats,
		TrialsPerCondition:        10,
		MaxStepsPerEpisode:        120,
		BackupInterval:            ledger.DefaultBackupInterval,
		ConsecutiveFaultThreshold: 5,
		BaselineMinSR:             0.9,
		ResultsDB:                 "data/results/results.db",
		SimAddr:                   "localhost:50051",
	}
}

// #endregion

// #region load

// Load reads a YAML config file over the defaults and validates it.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// #endregion

// #region validate

// Validate rejects malformed configs at startup. An unrecognized category
// name is a construction-time error, never a runtime surprise.
func (c Config) Validate() error {
	if len(c.Tasks) == 0 {
		return fmt.Errorf("config: at least one task is required")
	}
	if len(c.Categories) == 0 {
		return fmt.Errorf("config: at least one mutation category is required")
	}
	for _, raw := range c.Categories {
		if _, err := mutation.ParseCategory(raw); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.TrialsPerCondition <= 0 {
		return fmt.Errorf("config: trials_per_condition must be positive, got %d", c.TrialsPerCondition)
	}
	if c.MaxStepsPerEpisode <= 0 {
		return fmt.Errorf("config: max_steps_per_episode must be positive, got %d", c.MaxStepsPerEpisode)
	}
	if c.ConsecutiveFaultThreshold <= 0 {
		return fmt.Errorf("config: consecutive_fault_threshold must be positive, got %d", c.ConsecutiveFaultThreshold)
	}
	return nil
}

// #endregion

// #region category-order

// CategoryOrder returns the batch's category enumeration order: baseline
// first, then the configured mutation categories in declared order.
func (c Config) CategoryOrder() []mutation.Category {
	out := []mutation.Category{mutation.CategoryBaseline}
	for _, raw := range c.Categories {
		cat := mutation.Category(raw)
		if cat == mutation.CategoryBaseline {
			continue
		}
		out = append(out, cat)
	}
	return out
}

// #endregion

// #region env

// EnvOr returns the environment variable's value, or fallback if unset.
func EnvOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// #endregion
