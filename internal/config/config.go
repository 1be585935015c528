package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/syncnet/internal/kuramoto"
	"github.com/san-kum/syncnet/internal/topology"
)

const (
	DefaultOscillators = 10
	DefaultWeight      = 1.0
	DefaultSteps       = 100
	DefaultDuration    = 10.0
	DefaultTolerance   = 0.01
)

// Config is the YAML-facing description of a network and a simulation
// run. String fields map to the enumerated core types through the
// helper methods below.
type Config struct {
	Oscillators    int     `yaml:"oscillators"`
	Weight         float64 `yaml:"weight"`
	Frequency      float64 `yaml:"frequency"`
	Topology       string  `yaml:"topology"`
	Representation string  `yaml:"representation"`
	InitialPhases  string  `yaml:"initial_phases"`
	Solver         string  `yaml:"solver"`
	Seed           int64   `yaml:"seed"`
	Native         bool    `yaml:"native"`

	// Static simulation.
	Steps    int     `yaml:"steps"`
	Duration float64 `yaml:"duration"`

	// Dynamic simulation.
	TargetOrder    float64 `yaml:"target_order"`
	Step           float64 `yaml:"step"`
	IntStep        float64 `yaml:"int_step"`
	StallThreshold float64 `yaml:"stall_threshold"`

	Collect   bool    `yaml:"collect"`
	Tolerance float64 `yaml:"tolerance"`
}

func DefaultConfig() *Config {
	return &Config{
		Oscillators:    DefaultOscillators,
		Weight:         DefaultWeight,
		Topology:       "all_to_all",
		Representation: "matrix",
		InitialPhases:  "random",
		Solver:         "fast",
		Steps:          DefaultSteps,
		Duration:       DefaultDuration,
		TargetOrder:    kuramoto.DefaultTargetOrder,
		Step:           kuramoto.DefaultStep,
		IntStep:        kuramoto.DefaultIntStep,
		StallThreshold: kuramoto.DefaultStallThreshold,
		Tolerance:      DefaultTolerance,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Structure maps the topology name to its core type.
func (c *Config) Structure() (topology.Structure, error) {
	switch c.Topology {
	case "none":
		return topology.None, nil
	case "all_to_all", "":
		return topology.AllToAll, nil
	case "grid_four":
		return topology.GridFour, nil
	case "grid_eight":
		return topology.GridEight, nil
	case "list_bidir":
		return topology.ListBidir, nil
	}
	return 0, fmt.Errorf("config: unknown topology %q", c.Topology)
}

// Repr maps the representation name to its core type.
func (c *Config) Repr() (topology.Representation, error) {
	switch c.Representation {
	case "matrix", "":
		return topology.Matrix, nil
	case "list":
		return topology.List, nil
	}
	return 0, fmt.Errorf("config: unknown representation %q", c.Representation)
}

// Phases maps the initial-phase distribution name to its core type.
func (c *Config) Phases() (kuramoto.InitialPhases, error) {
	switch c.InitialPhases {
	case "random", "":
		return kuramoto.RandomPhases, nil
	case "equipartition":
		return kuramoto.EquipartitionPhases, nil
	}
	return 0, fmt.Errorf("config: unknown initial phase distribution %q", c.InitialPhases)
}

// SolverType maps the solver name to its core tag.
func (c *Config) SolverType() (kuramoto.Solver, error) {
	switch c.Solver {
	case "fast", "":
		return kuramoto.SolveFast, nil
	case "rk4":
		return kuramoto.SolveRK4, nil
	}
	return 0, fmt.Errorf("config: unknown solver %q", c.Solver)
}

// DynamicOptions assembles the convergence-run parameters.
func (c *Config) DynamicOptions() (kuramoto.DynamicOptions, error) {
	solver, err := c.SolverType()
	if err != nil {
		return kuramoto.DynamicOptions{}, err
	}
	return kuramoto.DynamicOptions{
		TargetOrder:    c.TargetOrder,
		Solver:         solver,
		Collect:        c.Collect,
		Step:           c.Step,
		IntStep:        c.IntStep,
		StallThreshold: c.StallThreshold,
	}, nil
}
