package cmd

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	sim "github.com/sched-sim/sched-sim/sim"
)

// Define struct for YAML
type ScenarioConfig struct {
	Runs []ScenarioRun `yaml:"runs"`
}

// ScenarioRun describes one independent policy run: the policy to apply
// and the input/output file pair to use.
type ScenarioRun struct {
	Name   string `yaml:"name"`
	Policy string `yaml:"policy"`
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
}

// DefaultScenario mirrors the classic three-run driver: each policy
// reads its own input file and writes its own results file.
func DefaultScenario() ScenarioConfig {
	return ScenarioConfig{Runs: []ScenarioRun{
		{Name: "fcfs", Policy: "fcfs", Input: "fcfs.txt", Output: "fcfs_results.txt"},
		{Name: "sjf", Policy: "sjf", Input: "sjf.txt", Output: "sjf_results.txt"},
		{Name: "srtf", Policy: "srtf", Input: "srtf.txt", Output: "srtf_results.txt"},
	}}
}

// LoadScenario reads and validates a scenario yaml file.
func LoadScenario(path string) (ScenarioConfig, error) {
	var cfg ScenarioConfig

	// Read YAML file
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	// Parse YAML
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}

	if len(cfg.Runs) == 0 {
		return cfg, fmt.Errorf("scenario %s: no runs defined", path)
	}
	for i, run := range cfg.Runs {
		if _, err := sim.ParsePolicy(run.Policy); err != nil {
			return cfg, fmt.Errorf("scenario %s run %d: %w", path, i, err)
		}
		if run.Input == "" || run.Output == "" {
			return cfg, fmt.Errorf("scenario %s run %d: input and output are required", path, i)
		}
	}
	return cfg, nil
}
