package config

// Presets are ready-made network and run configurations, keyed by
// scenario then by variant.
var Presets = map[string]map[string]*Config{
	"sync": {
		"small": {
			Oscillators: 5, Weight: 1.0, Topology: "all_to_all",
			Solver: "rk4", TargetOrder: 0.998, Step: 0.1, IntStep: 0.01,
		},
		"large": {
			Oscillators: 100, Weight: 1.0, Topology: "all_to_all",
			Solver: "fast", TargetOrder: 0.99, Step: 0.1, IntStep: 0.01,
		},
	},
	"grid": {
		"four": {
			Oscillators: 25, Weight: 2.0, Topology: "grid_four",
			Solver: "rk4", Steps: 200, Duration: 20.0,
		},
		"eight": {
			Oscillators: 25, Weight: 2.0, Topology: "grid_eight",
			Solver: "rk4", Steps: 200, Duration: 20.0,
		},
	},
	"chain": {
		"short": {
			Oscillators: 10, Weight: 1.5, Topology: "list_bidir",
			Solver: "rk4", Steps: 300, Duration: 30.0,
		},
	},
	"clustering": {
		"equipartition": {
			Oscillators: 10, Weight: 1.0, Topology: "all_to_all",
			InitialPhases: "equipartition", Solver: "rk4",
			TargetOrder: 0.998, Step: 0.1, IntStep: 0.01, Tolerance: 0.05,
		},
	},
}

// GetPreset returns the named preset completed with defaults, or nil
// when either key is unknown.
func GetPreset(scenario, variant string) *Config {
	variants, ok := Presets[scenario]
	if !ok {
		return nil
	}
	preset, ok := variants[variant]
	if !ok {
		return nil
	}

	cfg := DefaultConfig()
	merge(cfg, preset)
	return cfg
}

// ListPresets returns the variant names of a scenario, or nil for an
// unknown scenario.
func ListPresets(scenario string) []string {
	variants, ok := Presets[scenario]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	return names
}

func merge(dst, src *Config) {
	if src.Oscillators != 0 {
		dst.Oscillators = src.Oscillators
	}
	if src.Weight != 0 {
		dst.Weight = src.Weight
	}
	if src.Frequency != 0 {
		dst.Frequency = src.Frequency
	}
	if src.Topology != "" {
		dst.Topology = src.Topology
	}
	if src.Representation != "" {
		dst.Representation = src.Representation
	}
	if src.InitialPhases != "" {
		dst.InitialPhases = src.InitialPhases
	}
	if src.Solver != "" {
		dst.Solver = src.Solver
	}
	if src.Steps != 0 {
		dst.Steps = src.Steps
	}
	if src.Duration != 0 {
		dst.Duration = src.Duration
	}
	if src.TargetOrder != 0 {
		dst.TargetOrder = src.TargetOrder
	}
	if src.Step != 0 {
		dst.Step = src.Step
	}
	if src.IntStep != 0 {
		dst.IntStep = src.IntStep
	}
	if src.StallThreshold != 0 {
		dst.StallThreshold = src.StallThreshold
	}
	if src.Tolerance != 0 {
		dst.Tolerance = src.Tolerance
	}
}
