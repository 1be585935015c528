package ensembles

import (
	"math"
	"testing"
)

func TestAllocateWideToleranceSingleCluster(t *testing.T) {
	phases := []float64{0.1, 3.0, 6.0, 1.5}

	clusters := Allocate(phases, 2*math.Pi)
	if len(clusters) != 1 {
		t.Fatalf("expected one cluster, got %d", len(clusters))
	}
	for i, idx := range clusters[0] {
		if idx != i {
			t.Errorf("expected ascending indices, got %v", clusters[0])
			break
		}
	}
}

func TestAllocateZeroToleranceSingletons(t *testing.T) {
	phases := []float64{0.0, 1.0, 2.0, 3.0}

	clusters := Allocate(phases, 0)
	if len(clusters) != len(phases) {
		t.Fatalf("expected %d singleton clusters, got %d", len(phases), len(clusters))
	}
	for i, cluster := range clusters {
		if len(cluster) != 1 || cluster[0] != i {
			t.Errorf("cluster %d = %v, expected [%d]", i, cluster, i)
		}
	}
}

func TestAllocateIsPartition(t *testing.T) {
	phases := []float64{0.0, 0.005, 3.1, 3.104, 6.0, 0.002}

	clusters := Allocate(phases, 0.01)

	seen := make(map[int]int)
	for _, cluster := range clusters {
		for _, idx := range cluster {
			seen[idx]++
		}
	}
	for i := range phases {
		if seen[i] != 1 {
			t.Errorf("index %d appears %d times, expected exactly once", i, seen[i])
		}
	}
}

func TestAllocateGreedyChaining(t *testing.T) {
	// 0 and 2 are farther apart than the tolerance, but 2 still joins
	// through member 1. First-fit chains; it does not close symmetrically.
	phases := []float64{0.0, 0.009, 0.018}

	clusters := Allocate(phases, 0.01)
	if len(clusters) != 1 {
		t.Fatalf("expected chained single cluster, got %v", clusters)
	}
	if len(clusters[0]) != 3 {
		t.Errorf("expected all three members, got %v", clusters[0])
	}
}

func TestAllocateStrictBound(t *testing.T) {
	// Exactly at tolerance is outside the strict two-sided bound.
	phases := []float64{0.0, 0.01}

	clusters := Allocate(phases, 0.01)
	if len(clusters) != 2 {
		t.Errorf("boundary phase should open its own cluster, got %v", clusters)
	}
}

func TestAllocateEmpty(t *testing.T) {
	if clusters := Allocate(nil, 0.01); clusters != nil {
		t.Errorf("expected nil for empty snapshot, got %v", clusters)
	}
}
