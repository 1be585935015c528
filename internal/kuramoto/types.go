package kuramoto

import "fmt"

// Solver selects the per-step solving strategy.
type Solver int

const (
	// SolveFast applies one explicit update per macro step: coarse and
	// intentionally cheap.
	SolveFast Solver = iota
	// SolveRK4 integrates each macro step with fixed Runge-Kutta
	// sub-steps.
	SolveRK4
)

func (s Solver) String() string {
	switch s {
	case SolveFast:
		return "fast"
	case SolveRK4:
		return "rk4"
	}
	return fmt.Sprintf("solver(%d)", int(s))
}

// InitialPhases selects how oscillator phases are seeded at
// construction.
type InitialPhases int

const (
	// RandomPhases draws each phase uniformly from [0, 2π).
	RandomPhases InitialPhases = iota
	// EquipartitionPhases spaces phases evenly over [0, π).
	EquipartitionPhases
)

// Dynamic is the recorded output of a simulation run: index-aligned
// time stamps and phase snapshots. When the run was not collected,
// both series hold only the final state (length 1). Consumers branch
// on length, not on type.
type Dynamic struct {
	Times   []float64
	Phases  [][]float64
	Stalled bool
}

// Len returns the number of recorded samples.
func (d *Dynamic) Len() int { return len(d.Times) }

// Final returns the last recorded phase snapshot, or nil when nothing
// was recorded.
func (d *Dynamic) Final() []float64 {
	if len(d.Phases) == 0 {
		return nil
	}
	return d.Phases[len(d.Phases)-1]
}

// FinalTime returns the time stamp of the last recorded sample.
func (d *Dynamic) FinalTime() float64 {
	if len(d.Times) == 0 {
		return 0
	}
	return d.Times[len(d.Times)-1]
}

func (d *Dynamic) record(t float64, phases []float64) {
	d.Times = append(d.Times, t)
	d.Phases = append(d.Phases, phases)
}

// DynamicOptions parameterizes a convergence-driven simulation. Zero
// fields take the historical defaults.
type DynamicOptions struct {
	// TargetOrder is the local order at which the run succeeds.
	TargetOrder float64
	// Solver selects the per-step strategy.
	Solver Solver
	// Collect records the whole trajectory instead of the final state.
	Collect bool
	// Step is the macro time step of one iteration.
	Step float64
	// IntStep is the RK4 sub-step; must be smaller than Step.
	IntStep float64
	// StallThreshold stops the run early when the local order changes
	// less than this between consecutive iterations.
	StallThreshold float64
}

// Historical defaults of the dynamic simulation.
const (
	DefaultTargetOrder    = 0.998
	DefaultStep           = 0.1
	DefaultIntStep        = 0.01
	DefaultStallThreshold = 1e-7
)

// WithDefaults fills zero fields with the historical defaults.
func (o DynamicOptions) WithDefaults() DynamicOptions {
	if o.TargetOrder == 0 {
		o.TargetOrder = DefaultTargetOrder
	}
	if o.Step == 0 {
		o.Step = DefaultStep
	}
	if o.IntStep == 0 {
		o.IntStep = DefaultIntStep
	}
	if o.StallThreshold == 0 {
		o.StallThreshold = DefaultStallThreshold
	}
	return o
}
