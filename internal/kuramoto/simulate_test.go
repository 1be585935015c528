package kuramoto

import (
	"math"
	"testing"

	"github.com/san-kum/syncnet/internal/topology"
)

func newTestNetwork(t *testing.T, numOsc int, opts ...Option) *Network {
	t.Helper()
	conn := topology.New(numOsc, topology.AllToAll, topology.Matrix)
	net, err := New(conn, opts...)
	if err != nil {
		t.Fatalf("construction failed: %v", err)
	}
	return net
}

func TestSimulateStaticCollectLength(t *testing.T) {
	net := newTestNetwork(t, 5, WithSeed(11))

	steps := 25
	dyn, err := net.SimulateStatic(steps, 10.0, SolveFast, true)
	if err != nil {
		t.Fatal(err)
	}

	if dyn.Len() != steps+1 {
		t.Errorf("expected %d samples including initial state, got %d", steps+1, dyn.Len())
	}
	if len(dyn.Phases) != len(dyn.Times) {
		t.Errorf("times and phases misaligned: %d vs %d", len(dyn.Times), len(dyn.Phases))
	}
	if dyn.Times[0] != 0 {
		t.Errorf("first sample should be the initial state at t=0, got %f", dyn.Times[0])
	}
	for k := 1; k < dyn.Len(); k++ {
		if dyn.Times[k] <= dyn.Times[k-1] {
			t.Fatalf("time stamps must strictly increase: t[%d]=%f, t[%d]=%f",
				k-1, dyn.Times[k-1], k, dyn.Times[k])
		}
	}
}

func TestSimulateStaticFinalOnly(t *testing.T) {
	net := newTestNetwork(t, 5, WithSeed(11))

	dyn, err := net.SimulateStatic(25, 10.0, SolveFast, false)
	if err != nil {
		t.Fatal(err)
	}

	if dyn.Len() != 1 {
		t.Fatalf("uncollected run should hold only the final state, got %d samples", dyn.Len())
	}
	if math.Abs(dyn.FinalTime()-10.0) > 1e-9 {
		t.Errorf("final time should be the total time, got %f", dyn.FinalTime())
	}
}

func TestSimulateStaticPhasesNormalized(t *testing.T) {
	net := newTestNetwork(t, 4, WithSeed(2), WithWeight(3.0), WithFrequencyScale(2.0))

	dyn, err := net.SimulateStatic(50, 20.0, SolveRK4, true)
	if err != nil {
		t.Fatal(err)
	}

	for k, snapshot := range dyn.Phases {
		for i, p := range snapshot {
			if p < 0 || p >= 2*math.Pi {
				t.Fatalf("phase[%d] = %f outside [0, 2π) at sample %d", i, p, k)
			}
		}
	}
}

func TestSimulateStaticUpdatesNetworkState(t *testing.T) {
	net := newTestNetwork(t, 4, WithSeed(9))

	dyn, err := net.SimulateStatic(10, 5.0, SolveRK4, false)
	if err != nil {
		t.Fatal(err)
	}

	final := dyn.Final()
	current := net.Phases()
	for i := range final {
		if final[i] != current[i] {
			t.Errorf("network phases should land on the trajectory's final snapshot")
			break
		}
	}
}

func TestSynchronizedNetworkStaysSynchronized(t *testing.T) {
	// Identical phases and zero natural frequencies form a stable
	// fixed point: local order stays at 1 through every step.
	net := newTestNetwork(t, 3, WithSeed(1))
	net.phases = []float64{1.0, 1.0, 1.0}

	dyn, err := net.SimulateStatic(20, 2.0, SolveRK4, true)
	if err != nil {
		t.Fatal(err)
	}

	for k, snapshot := range dyn.Phases {
		order := net.engine.LocalOrder(snapshot)
		if math.Abs(order-1.0) > 1e-6 {
			t.Fatalf("local order fell to %f at sample %d", order, k)
		}
	}
}

func TestSimulateDynamicConverges(t *testing.T) {
	net := newTestNetwork(t, 3, WithSeed(4), WithWeight(1.0))

	dyn, err := net.SimulateDynamic(DynamicOptions{
		TargetOrder: 0.99,
		Solver:      SolveRK4,
		Collect:     true,
	})
	if err != nil {
		t.Fatal(err)
	}

	finalOrder := net.LocalOrder()
	if !dyn.Stalled && finalOrder < 0.99 {
		t.Errorf("converged run should reach the target order, got %f", finalOrder)
	}
	if dyn.Len() < 1 {
		t.Error("collected run should hold at least the initial state")
	}
}

func TestSimulateDynamicAlreadyConverged(t *testing.T) {
	net := newTestNetwork(t, 3, WithSeed(4))
	net.phases = []float64{2.0, 2.0, 2.0}

	dyn, err := net.SimulateDynamic(DynamicOptions{TargetOrder: 0.9, Solver: SolveFast})
	if err != nil {
		t.Fatal(err)
	}

	if dyn.Stalled {
		t.Error("already-synchronized network should not report a stall")
	}
	if dyn.FinalTime() != 0 {
		t.Errorf("no step should have been taken, final time %f", dyn.FinalTime())
	}
}

func TestSimulateDynamicStallsWithoutConnections(t *testing.T) {
	// No connections, zero frequencies: the local order is pinned at 0
	// and never improves, so the stall guard must fire.
	conn := topology.New(3, topology.None, topology.Matrix)
	net, err := New(conn, WithSeed(8))
	if err != nil {
		t.Fatal(err)
	}

	dyn, err := net.SimulateDynamic(DynamicOptions{
		TargetOrder: 0.998,
		Solver:      SolveFast,
		Collect:     true,
	})
	if err != nil {
		t.Fatalf("a stall is a valid result, not an error: %v", err)
	}
	if !dyn.Stalled {
		t.Error("expected stalled run on an unconnected network")
	}
}
