package kuramoto

import (
	"log/slog"

	"github.com/san-kum/syncnet/internal/ensembles"
	"github.com/san-kum/syncnet/internal/metrics"
	"github.com/san-kum/syncnet/internal/topology"
)

// EngineConfig carries the fixed network parameters an engine is bound
// to for its whole lifetime.
type EngineConfig struct {
	Conn        topology.Connectivity
	Weight      float64
	Frequencies []float64
	Logger      *slog.Logger
}

// Engine is the capability set every simulation backend provides:
// order metrics, ensemble allocation and both simulation drives. The
// built-in engine computes locally; an accelerated engine forwards the
// same contract to native code. Phase vectors passed in are snapshots
// the engine may keep or mutate freely.
type Engine interface {
	Order(phases []float64) float64
	LocalOrder(phases []float64) float64
	Ensembles(phases []float64, tolerance float64) [][]int
	SimulateStatic(phases []float64, steps int, totalTime float64, solver Solver, collect bool) (*Dynamic, error)
	SimulateDynamic(phases []float64, opts DynamicOptions) (*Dynamic, error)
	// Release frees any resources the engine holds. Safe to call more
	// than once; only the first call has an effect.
	Release() error
}

// EngineFactory builds an engine for a network under construction.
type EngineFactory func(cfg EngineConfig) (Engine, error)

// NewBuiltinEngine returns the pure-Go engine. It is the default
// EngineFactory.
func NewBuiltinEngine(cfg EngineConfig) (Engine, error) {
	log := cfg.Logger
	if log == nil {
		log = slog.Default()
	}
	return &builtinEngine{
		conn:   cfg.Conn,
		weight: cfg.Weight,
		freqs:  cfg.Frequencies,
		log:    log,
	}, nil
}

type builtinEngine struct {
	conn   topology.Connectivity
	weight float64
	freqs  []float64
	log    *slog.Logger
}

func (e *builtinEngine) Order(phases []float64) float64 {
	return metrics.LiteralGlobalOrder(phases)
}

func (e *builtinEngine) LocalOrder(phases []float64) float64 {
	return metrics.LocalOrder(phases, e.conn)
}

func (e *builtinEngine) Ensembles(phases []float64, tolerance float64) [][]int {
	return ensembles.Allocate(phases, tolerance)
}

func (e *builtinEngine) Release() error { return nil }
