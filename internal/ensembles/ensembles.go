// Package ensembles extracts clusters of synchronized oscillators from
// a phase snapshot.
package ensembles

// DefaultTolerance is the phase proximity bound used when the caller
// has no preference.
const DefaultTolerance = 0.01

// Allocate partitions oscillator indices into synchronous ensembles by
// phase proximity. Indices are processed in ascending order; each one
// joins the first existing ensemble (in creation order) containing a
// member whose phase lies strictly within tolerance, scanning members
// in insertion order, and opens a new singleton ensemble otherwise.
//
// This is a greedy first-fit scan, not a symmetric-closure clustering:
// the result is deterministic for a fixed snapshot but depends on the
// index order and is not permutation-invariant. That is a property of
// the algorithm, not an accident.
//
// Every index in [0, len(phases)) appears in exactly one ensemble.
func Allocate(phases []float64, tolerance float64) [][]int {
	if len(phases) == 0 {
		return nil
	}

	clusters := [][]int{{0}}

	for i := 1; i < len(phases); i++ {
		allocated := false
		for ci := range clusters {
			for _, member := range clusters[ci] {
				if phases[i] < phases[member]+tolerance && phases[i] > phases[member]-tolerance {
					clusters[ci] = append(clusters[ci], i)
					allocated = true
					break
				}
			}
			if allocated {
				break
			}
		}
		if !allocated {
			clusters = append(clusters, []int{i})
		}
	}

	return clusters
}
