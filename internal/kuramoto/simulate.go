package kuramoto

import "math"

// SimulateStatic runs exactly steps macro steps spanning totalTime,
// unconditionally. The macro step is totalTime/steps and the RK4
// sub-step is a tenth of that. With collect on, the trajectory holds
// steps+1 samples including the initial state at t=0.
func (e *builtinEngine) SimulateStatic(phases []float64, steps int, totalTime float64, solver Solver, collect bool) (*Dynamic, error) {
	if err := checkSolver(solver); err != nil {
		return nil, err
	}

	step := totalTime / float64(steps)
	intStep := step / 10.0

	dyn := &Dynamic{}
	current := clonePhases(phases)
	if collect {
		dyn.record(0, clonePhases(current))
	}

	t := 0.0
	for k := 0; k < steps; k++ {
		t = step * float64(k+1)
		current = e.nextPhases(current, t, step, intStep, solver)
		if collect {
			dyn.record(t, clonePhases(current))
		}
	}

	if !collect {
		dyn.record(t, current)
	}
	return dyn, nil
}

// SimulateDynamic iterates macro steps until the local order reaches
// opts.TargetOrder. When the order stops improving beyond
// opts.StallThreshold the run is aborted with a warning; the partial
// trajectory is still a valid result. A network that neither converges
// nor stalls runs indefinitely; the stall guard is the only bound.
func (e *builtinEngine) SimulateDynamic(phases []float64, opts DynamicOptions) (*Dynamic, error) {
	opts = opts.WithDefaults()
	if err := checkSolver(opts.Solver); err != nil {
		return nil, err
	}

	dyn := &Dynamic{}
	current := clonePhases(phases)
	currentOrder := e.LocalOrder(current)

	t := 0.0
	if opts.Collect {
		dyn.record(0, clonePhases(current))
	}

	for currentOrder < opts.TargetOrder {
		t += opts.Step
		current = e.nextPhases(current, t, opts.Step, opts.IntStep, opts.Solver)

		if opts.Collect {
			dyn.record(t, clonePhases(current))
		}

		previousOrder := currentOrder
		currentOrder = e.LocalOrder(current)

		if math.Abs(currentOrder-previousOrder) < opts.StallThreshold {
			e.log.Warn("dynamic simulation stalled below convergence threshold",
				"order", currentOrder,
				"target", opts.TargetOrder,
				"time", t)
			dyn.Stalled = true
			break
		}
	}

	if !opts.Collect {
		dyn.record(t, current)
	}
	return dyn, nil
}

func clonePhases(phases []float64) []float64 {
	out := make([]float64, len(phases))
	copy(out, phases)
	return out
}
