package kuramoto

import (
	"math"

	"github.com/san-kum/syncnet/internal/integrators"
)

// derivative evaluates dθ_i/dt for oscillator i with own phase theta,
// reading neighbor phases from the frozen snapshot:
//
//	dθ_i/dt = freq_i + (weight / n) * Σ_{j : conn(i,j)} sin(θ_j − θ_i)
//
// Simulation time does not enter the equation; the system is
// autonomous.
func (e *builtinEngine) derivative(snapshot []float64, i int, theta float64) float64 {
	n := len(snapshot)
	phase := 0.0
	for j := 0; j < n; j++ {
		if e.conn.HasConnection(i, j) {
			phase += math.Sin(snapshot[j] - theta)
		}
	}
	return e.freqs[i] + phase*e.weight/float64(n)
}

// nextPhases advances every oscillator by one macro step ending at t.
// All reads go through the frozen snapshot and all writes target a
// fresh buffer, so oscillators never observe partially updated
// neighbors within a step. The solver tag must have been validated by
// the caller.
func (e *builtinEngine) nextPhases(snapshot []float64, t, step, intStep float64, solver Solver) []float64 {
	n := len(snapshot)
	next := make([]float64, n)

	parallelFor(n, minParallelOsc, func(start, end int) {
		for i := start; i < end; i++ {
			switch solver {
			case SolveRK4:
				f := func(theta, _ float64) float64 {
					return e.derivative(snapshot, i, theta)
				}
				result := integrators.Integrate(f, snapshot[i], t-step, t, intStep)
				next[i] = NormalizePhase(result)
			default: // SolveFast
				next[i] = NormalizePhase(snapshot[i] + e.derivative(snapshot, i, snapshot[i]))
			}
		}
	})

	return next
}
