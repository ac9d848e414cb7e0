package automation

import (
	"context"
	"fmt"
	"os"

	log "github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/antsim/internal/config"
	"github.com/san-kum/antsim/internal/export"
	"github.com/san-kum/antsim/internal/metrics"
	"github.com/san-kum/antsim/internal/sim"
)

// Scenario defines a scripted sequence of colonies.
type Scenario struct {
	Name        string         `yaml:"name"`
	Description string         `yaml:"description"`
	Steps       []ScenarioStep `yaml:"steps"`
}

// ScenarioStep starts from a preset (classic when empty) and overrides any
// field that is set.
type ScenarioStep struct {
	Preset string             `yaml:"preset"`
	Size   int                `yaml:"size"`
	Rules  string             `yaml:"rules"`
	Seed   *int64             `yaml:"seed"`
	Ticks  int                `yaml:"ticks"`
	Colors []string           `yaml:"colors"`
	Ants   []config.AntConfig `yaml:"ants"`
	SaveAs string             `yaml:"save_as"`
	Scale  int                `yaml:"scale"`
}

// LoadScenario loads a scenario from a YAML file
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var scenario Scenario
	if err := yaml.Unmarshal(data, &scenario); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if len(scenario.Steps) == 0 {
		return nil, fmt.Errorf("scenario %q has no steps", scenario.Name)
	}
	return &scenario, nil
}

// Config resolves the step into a validated colony configuration.
func (s ScenarioStep) Config() (*config.Config, error) {
	name := s.Preset
	if name == "" {
		name = "classic"
	}
	cfg := config.GetPreset(name)
	if cfg == nil {
		return nil, fmt.Errorf("unknown preset: %s", name)
	}

	if s.Size > 0 {
		cfg.Size = s.Size
	}
	if s.Rules != "" {
		cfg.Rules = s.Rules
		if len(cfg.Colors) != len(s.Rules) {
			cfg.Colors = nil
		}
	}
	if s.Seed != nil {
		cfg.Seed = *s.Seed
	}
	if s.Ticks > 0 {
		cfg.Ticks = s.Ticks
	}
	if len(s.Colors) > 0 {
		cfg.Colors = s.Colors
	}
	if len(s.Ants) > 0 {
		cfg.Ants = s.Ants
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RunScenario executes all steps in order and stops at the first failure,
// returning the results gathered so far.
func RunScenario(ctx context.Context, scenario *Scenario, logger log.FieldLogger) ([]*sim.Result, error) {
	if logger == nil {
		logger = log.StandardLogger()
	}
	results := make([]*sim.Result, 0, len(scenario.Steps))

	for i, step := range scenario.Steps {
		stepLog := logger.WithFields(log.Fields{"scenario": scenario.Name, "step": i + 1})

		cfg, err := step.Config()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}
		colony, err := cfg.Build()
		if err != nil {
			return results, fmt.Errorf("step %d: %w", i+1, err)
		}

		s := sim.New(colony)
		s.SetLogger(stepLog)
		s.AddMetric(metrics.NewCoverage())
		s.AddMetric(metrics.NewVisited())

		result, err := s.Run(ctx, sim.Config{Ticks: cfg.Ticks, SampleEvery: 10})
		if err != nil {
			return results, fmt.Errorf("step %d run: %w", i+1, err)
		}
		results = append(results, result)

		if step.SaveAs != "" {
			p, err := cfg.Palette()
			if err != nil {
				return results, fmt.Errorf("step %d: %w", i+1, err)
			}
			svg := export.GridToSVG(colony.Grid(), p, step.Scale)
			if err := os.WriteFile(step.SaveAs, []byte(svg), 0644); err != nil {
				return results, fmt.Errorf("step %d save: %w", i+1, err)
			}
			stepLog.WithField("file", step.SaveAs).Info("grid exported")
		}
	}

	return results, nil
}

// RuleSweep runs one colony per rule string with otherwise identical settings.
type RuleSweep struct {
	Base  *config.Config
	Rules []string
}

// SweepResult summarises one rule of a sweep.
type SweepResult struct {
	Rules    string
	Coverage float64
	Visited  float64
	Checksum uint64
}

// RunSweep executes a rule sweep sequentially.
func RunSweep(ctx context.Context, sweep *RuleSweep, logger log.FieldLogger) ([]SweepResult, error) {
	if sweep.Base == nil {
		return nil, fmt.Errorf("rule sweep needs a base configuration")
	}
	if logger == nil {
		logger = log.StandardLogger()
	}
	results := make([]SweepResult, 0, len(sweep.Rules))

	for i, rules := range sweep.Rules {
		cfg := *sweep.Base
		cfg.Rules = rules
		cfg.Colors = nil

		colony, err := cfg.Build()
		if err != nil {
			return nil, fmt.Errorf("rules %q: %w", rules, err)
		}

		s := sim.New(colony)
		s.SetLogger(logger.WithField("rules", rules))
		s.AddMetric(metrics.NewCoverage())
		s.AddMetric(metrics.NewVisited())

		result, err := s.Run(ctx, sim.Config{Ticks: cfg.Ticks, SampleEvery: cfg.Ticks})
		if err != nil {
			return nil, fmt.Errorf("rules %q: %w", rules, err)
		}

		results = append(results, SweepResult{
			Rules:    rules,
			Coverage: result.Metrics["coverage"],
			Visited:  result.Metrics["visited"],
			Checksum: result.Checksum,
		})
		logger.WithField("rules", rules).Debugf("sweep %d/%d done", i+1, len(sweep.Rules))
	}

	return results, nil
}
