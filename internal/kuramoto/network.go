// Package kuramoto implements an oscillatory network based on the
// Kuramoto model of synchronization. Oscillators coupled through a
// fixed connectivity converge in phase; groups whose phases settle
// within a tolerance of one another are read back as clusters.
package kuramoto

import (
	"fmt"
	"log/slog"
	"math"
	"math/rand"
	"time"

	"github.com/san-kum/syncnet/internal/topology"
)

// Network owns the oscillator state: one phase and one natural
// frequency per oscillator, a global coupling weight, and the
// connectivity collaborator. All computation is carried out by the
// engine selected at construction.
//
// A Network is not safe for concurrent use. Independent networks are
// fully independent and may be driven in parallel.
type Network struct {
	weight float64
	phases []float64
	freqs  []float64
	conn   topology.Connectivity
	engine Engine
}

type options struct {
	weight    float64
	freqScale float64
	initial   InitialPhases
	phases    []float64
	rng       *rand.Rand
	factory   EngineFactory
	logger    *slog.Logger
}

// Option customizes network construction.
type Option func(*options)

// WithWeight sets the global coupling strength.
func WithWeight(w float64) Option {
	return func(o *options) { o.weight = w }
}

// WithFrequencyScale sets the upper bound for sampled natural
// frequencies. Zero (the default) gives every oscillator a zero
// natural frequency.
func WithFrequencyScale(scale float64) Option {
	return func(o *options) { o.freqScale = scale }
}

// WithInitialPhases selects the initial phase distribution.
func WithInitialPhases(ip InitialPhases) Option {
	return func(o *options) { o.initial = ip }
}

// WithPhases seeds the network with an explicit phase vector instead
// of a sampled distribution, e.g. to resume from a recorded snapshot.
// Each value is folded into [0, 2π). The length must match the
// connectivity's oscillator count.
func WithPhases(phases []float64) Option {
	return func(o *options) { o.phases = phases }
}

// WithRand injects the random source used for phase and frequency
// initialization, making construction reproducible.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed is shorthand for WithRand over a deterministic source.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithEngineFactory selects the engine implementation, e.g. the native
// accelerated engine. The default is the built-in engine.
func WithEngineFactory(f EngineFactory) Option {
	return func(o *options) { o.factory = f }
}

// WithLogger sets the logger used for simulation diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) { o.logger = l }
}

// New constructs a network over the given connectivity. The oscillator
// count comes from the collaborator; phases and frequencies are
// initialized once and the engine handle is acquired here.
func New(conn topology.Connectivity, opts ...Option) (*Network, error) {
	o := options{
		weight:  1.0,
		initial: RandomPhases,
		factory: NewBuiltinEngine,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	numOsc := conn.Size()
	if o.phases != nil && len(o.phases) != numOsc {
		return nil, fmt.Errorf("kuramoto: %d initial phases for %d oscillators", len(o.phases), numOsc)
	}

	phases := make([]float64, numOsc)
	freqs := make([]float64, numOsc)
	for i := 0; i < numOsc; i++ {
		switch {
		case o.phases != nil:
			phases[i] = NormalizePhase(o.phases[i])
		case o.initial == EquipartitionPhases:
			phases[i] = math.Pi / float64(numOsc) * float64(i)
		default:
			phases[i] = o.rng.Float64() * 2 * math.Pi
		}
		freqs[i] = o.rng.Float64() * o.freqScale
	}

	engine, err := o.factory(EngineConfig{
		Conn:        conn,
		Weight:      o.weight,
		Frequencies: freqs,
		Logger:      o.logger,
	})
	if err != nil {
		return nil, err
	}

	return &Network{
		weight: o.weight,
		phases: phases,
		freqs:  freqs,
		conn:   conn,
		engine: engine,
	}, nil
}

// Size returns the number of oscillators.
func (n *Network) Size() int { return len(n.phases) }

// Weight returns the global coupling strength.
func (n *Network) Weight() float64 { return n.weight }

// Connectivity returns the topology collaborator.
func (n *Network) Connectivity() topology.Connectivity { return n.conn }

// Phases returns a copy of the current phase vector. The internal
// vector is never aliased out.
func (n *Network) Phases() []float64 {
	out := make([]float64, len(n.phases))
	copy(out, n.phases)
	return out
}

// Frequencies returns a copy of the natural frequency vector, fixed
// since construction.
func (n *Network) Frequencies() []float64 {
	out := make([]float64, len(n.freqs))
	copy(out, n.freqs)
	return out
}

// Order returns the global synchronization level of the current state.
func (n *Network) Order() float64 {
	return n.engine.Order(n.Phases())
}

// LocalOrder returns the neighborhood synchronization level of the
// current state.
func (n *Network) LocalOrder() float64 {
	return n.engine.LocalOrder(n.Phases())
}

// AllocateEnsembles partitions oscillator indices into synchronous
// ensembles of the current state by phase proximity.
func (n *Network) AllocateEnsembles(tolerance float64) [][]int {
	return n.engine.Ensembles(n.Phases(), tolerance)
}

// Simulate runs a static simulation; see SimulateStatic.
func (n *Network) Simulate(steps int, totalTime float64, solver Solver, collect bool) (*Dynamic, error) {
	return n.SimulateStatic(steps, totalTime, solver, collect)
}

// SimulateStatic advances the network through exactly steps macro
// steps spanning totalTime and returns the trajectory. The network's
// phases are left at the final snapshot.
func (n *Network) SimulateStatic(steps int, totalTime float64, solver Solver, collect bool) (*Dynamic, error) {
	if n.engine == nil {
		return nil, ErrReleased
	}
	dyn, err := n.engine.SimulateStatic(n.Phases(), steps, totalTime, solver, collect)
	if err != nil {
		return nil, err
	}
	n.adopt(dyn.Final())
	return dyn, nil
}

// SimulateDynamic advances the network until the local order reaches
// the target, or until convergence stalls. A stall is reported on the
// result, not as an error; the trajectory collected so far is valid.
func (n *Network) SimulateDynamic(opts DynamicOptions) (*Dynamic, error) {
	if n.engine == nil {
		return nil, ErrReleased
	}
	dyn, err := n.engine.SimulateDynamic(n.Phases(), opts)
	if err != nil {
		return nil, err
	}
	n.adopt(dyn.Final())
	return dyn, nil
}

func (n *Network) adopt(final []float64) {
	if final == nil {
		return
	}
	copy(n.phases, final)
}

// Release frees the engine handle. The first call releases; any
// further calls are no-ops. A released network keeps its state
// accessors but must not be asked to compute or simulate again.
func (n *Network) Release() error {
	if n.engine == nil {
		return nil
	}
	err := n.engine.Release()
	n.engine = nil
	return err
}

// NormalizePhase folds theta into [0, 2π) by repeatedly adding or
// subtracting a full turn. Terminates for any finite input and is
// idempotent on its own output.
func NormalizePhase(theta float64) float64 {
	for theta >= 2*math.Pi || theta < 0 {
		if theta >= 2*math.Pi {
			theta -= 2 * math.Pi
		} else {
			theta += 2 * math.Pi
		}
	}
	return theta
}
