// Package metrics computes synchronization order parameters from phase
// snapshots.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/san-kum/syncnet/internal/topology"
)

// LiteralGlobalOrder computes the network-wide synchronization level
// using the historical formula: the ratio of expm1 of the mean phase
// magnitude to the mean of expm1 of each phase magnitude.
//
// This is NOT the textbook Kuramoto order parameter (mean resultant
// length of unit phasors). The divergence is preserved deliberately;
// substitute a corrected formula here, not at the call sites.
// The all-zero phase vector yields NaN (0/0), matching the formula.
func LiteralGlobalOrder(phases []float64) float64 {
	if len(phases) == 0 {
		return math.NaN()
	}

	expAmount := 0.0
	for _, p := range phases {
		expAmount += math.Expm1(math.Abs(p))
	}
	expAmount /= float64(len(phases))

	averagePhase := math.Expm1(math.Abs(stat.Mean(phases, nil)))

	return math.Abs(averagePhase) / math.Abs(expAmount)
}

// LocalOrder computes the neighborhood synchronization level: the mean
// of exp(-|θ_j - θ_i|) over all connected ordered pairs. Values lie in
// (0, 1], higher meaning more locally synchronized. A network with no
// connections yields 0 (the denominator is floored at 1, never a
// division by zero).
func LocalOrder(phases []float64, conn topology.Connectivity) float64 {
	expAmount := 0.0
	numNeigh := 0

	n := len(phases)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if conn.HasConnection(i, j) {
				expAmount += math.Exp(-math.Abs(phases[j] - phases[i]))
				numNeigh++
			}
		}
	}

	if numNeigh == 0 {
		numNeigh = 1
	}
	return expAmount / float64(numNeigh)
}
