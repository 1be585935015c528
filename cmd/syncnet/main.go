package main

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/syncnet/internal/compute"
	"github.com/san-kum/syncnet/internal/config"
	"github.com/san-kum/syncnet/internal/kuramoto"
	"github.com/san-kum/syncnet/internal/logging"
	"github.com/san-kum/syncnet/internal/metrics"
	"github.com/san-kum/syncnet/internal/topology"
)

var (
	oscillators int
	weight      float64
	frequency   float64
	topo        string
	repr        string
	initPhases  string
	solver      string
	seed        int64
	native      bool
	collect     bool
	tolerance   float64
	// Static simulation
	steps    int
	duration float64
	// Dynamic simulation
	targetOrder float64
	step        float64
	intStep     float64
	stall       float64
	// Config file / preset
	configFile string
	preset     string
	logLevel   string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "syncnet",
		Short: "Kuramoto oscillatory network for sync-based clustering",
	}
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a fixed-step simulation",
		RunE:  runStatic,
	}
	addNetworkFlags(runCmd)
	runCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "number of macro steps")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "total simulation time")

	convergeCmd := &cobra.Command{
		Use:   "converge",
		Short: "simulate until the network synchronizes",
		RunE:  runDynamic,
	}
	addNetworkFlags(convergeCmd)
	convergeCmd.Flags().Float64Var(&targetOrder, "target", kuramoto.DefaultTargetOrder, "local order to reach")
	convergeCmd.Flags().Float64Var(&step, "step", kuramoto.DefaultStep, "macro time step")
	convergeCmd.Flags().Float64Var(&intStep, "int-step", kuramoto.DefaultIntStep, "rk4 sub-step")
	convergeCmd.Flags().Float64Var(&stall, "stall", kuramoto.DefaultStallThreshold, "stall detection threshold")

	presetsCmd := &cobra.Command{
		Use:   "presets [scenario]",
		Short: "list preset configurations",
		Args:  cobra.MaximumNArgs(1),
		RunE:  listPresets,
	}

	rootCmd.AddCommand(runCmd, convergeCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func addNetworkFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&oscillators, "oscillators", config.DefaultOscillators, "number of oscillators")
	cmd.Flags().Float64Var(&weight, "weight", config.DefaultWeight, "coupling strength")
	cmd.Flags().Float64Var(&frequency, "frequency", 0.0, "natural frequency scale")
	cmd.Flags().StringVar(&topo, "topology", "all_to_all", "connectivity (none, all_to_all, grid_four, grid_eight, list_bidir)")
	cmd.Flags().StringVar(&repr, "repr", "matrix", "connectivity representation (matrix, list)")
	cmd.Flags().StringVar(&initPhases, "init", "random", "initial phases (random, equipartition)")
	cmd.Flags().StringVar(&solver, "solver", "fast", "solver (fast, rk4)")
	cmd.Flags().Int64Var(&seed, "seed", time.Now().UnixNano(), "random seed")
	cmd.Flags().BoolVar(&native, "native", false, "use the accelerated core when available")
	cmd.Flags().BoolVar(&collect, "collect", false, "record the whole trajectory")
	cmd.Flags().Float64Var(&tolerance, "tolerance", config.DefaultTolerance, "ensemble phase tolerance")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "preset name (scenario/variant)")
}

func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	var cfg *config.Config
	switch {
	case configFile != "":
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	case preset != "":
		scenario, variant, ok := strings.Cut(preset, "/")
		if !ok {
			return nil, fmt.Errorf("preset must be scenario/variant, got %q", preset)
		}
		cfg = config.GetPreset(scenario, variant)
		if cfg == nil {
			return nil, fmt.Errorf("unknown preset %q", preset)
		}
	default:
		cfg = config.DefaultConfig()
		cfg.Oscillators = oscillators
		cfg.Weight = weight
		cfg.Frequency = frequency
		cfg.Topology = topo
		cfg.Representation = repr
		cfg.InitialPhases = initPhases
		cfg.Solver = solver
		cfg.Steps = steps
		cfg.Duration = duration
		cfg.TargetOrder = targetOrder
		cfg.Step = step
		cfg.IntStep = intStep
		cfg.StallThreshold = stall
		cfg.Tolerance = tolerance
	}

	cfg.Seed = seed
	cfg.Native = cfg.Native || native
	cfg.Collect = cfg.Collect || collect
	return cfg, nil
}

func buildNetwork(cfg *config.Config) (*kuramoto.Network, error) {
	structure, err := cfg.Structure()
	if err != nil {
		return nil, err
	}
	representation, err := cfg.Repr()
	if err != nil {
		return nil, err
	}
	initial, err := cfg.Phases()
	if err != nil {
		return nil, err
	}

	conn := topology.New(cfg.Oscillators, structure, representation)

	factory := compute.Builtin()
	if cfg.Native {
		factory = compute.Auto()
	}

	return kuramoto.New(conn,
		kuramoto.WithWeight(cfg.Weight),
		kuramoto.WithFrequencyScale(cfg.Frequency),
		kuramoto.WithInitialPhases(initial),
		kuramoto.WithRand(rand.New(rand.NewSource(cfg.Seed))),
		kuramoto.WithEngineFactory(factory),
		kuramoto.WithLogger(logging.New(logLevel, os.Stderr)),
	)
}

func runStatic(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	net, err := buildNetwork(cfg)
	if err != nil {
		return err
	}
	defer net.Release()

	solverType, err := cfg.SolverType()
	if err != nil {
		return err
	}

	dyn, err := net.SimulateStatic(cfg.Steps, cfg.Duration, solverType, cfg.Collect)
	if err != nil {
		return err
	}

	report(net, dyn, cfg)
	return nil
}

func runDynamic(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	net, err := buildNetwork(cfg)
	if err != nil {
		return err
	}
	defer net.Release()

	opts, err := cfg.DynamicOptions()
	if err != nil {
		return err
	}

	dyn, err := net.SimulateDynamic(opts)
	if err != nil {
		return err
	}

	report(net, dyn, cfg)
	if dyn.Stalled {
		fmt.Println("\nconvergence stalled; result is the partial trajectory")
	}
	return nil
}

func report(net *kuramoto.Network, dyn *kuramoto.Dynamic, cfg *config.Config) {
	phases := net.Phases()

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "oscillators\t%d\n", net.Size())
	fmt.Fprintf(w, "topology\t%s\n", cfg.Topology)
	fmt.Fprintf(w, "final time\t%.4f\n", dyn.FinalTime())
	fmt.Fprintf(w, "samples\t%d\n", dyn.Len())
	fmt.Fprintf(w, "global order\t%.6f\n", net.Order())
	fmt.Fprintf(w, "local order\t%.6f\n", net.LocalOrder())
	fmt.Fprintf(w, "phase mean\t%.4f\n", stat.Mean(phases, nil))
	fmt.Fprintf(w, "phase spread\t%.4f\n", floats.Max(phases)-floats.Min(phases))
	w.Flush()

	clusters := net.AllocateEnsembles(cfg.Tolerance)
	fmt.Printf("\nensembles (tolerance %.3f):\n", cfg.Tolerance)
	for i, cluster := range clusters {
		fmt.Printf("  %d: %v\n", i, cluster)
	}

	if cfg.Collect && dyn.Len() > 1 {
		series := make([]float64, dyn.Len())
		for k, snapshot := range dyn.Phases {
			series[k] = metrics.LocalOrder(snapshot, net.Connectivity())
		}
		fmt.Println("\nlocal order over time:")
		fmt.Println(asciigraph.Plot(series, asciigraph.Height(10), asciigraph.Width(60)))
	}
}

func listPresets(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		names := config.ListPresets(args[0])
		if names == nil {
			return fmt.Errorf("unknown scenario %q", args[0])
		}
		for _, name := range names {
			fmt.Printf("%s/%s\n", args[0], name)
		}
		return nil
	}

	for scenario := range config.Presets {
		for _, name := range config.ListPresets(scenario) {
			fmt.Printf("%s/%s\n", scenario, name)
		}
	}
	return nil
}
