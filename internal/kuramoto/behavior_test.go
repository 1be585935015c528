package kuramoto_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/syncnet/internal/kuramoto"
	"github.com/san-kum/syncnet/internal/topology"
)

var _ = Describe("synchronization behavior", func() {
	newFullyConnected := func(numOsc int, opts ...kuramoto.Option) *kuramoto.Network {
		conn := topology.New(numOsc, topology.AllToAll, topology.Matrix)
		net, err := kuramoto.New(conn, opts...)
		Expect(err).NotTo(HaveOccurred())
		return net
	}

	Describe("a fully synchronized network", func() {
		It("reports local order exactly 1", func() {
			net := newFullyConnected(3, kuramoto.WithPhases([]float64{0, 0, 0}), kuramoto.WithSeed(1))
			Expect(net.LocalOrder()).To(BeNumerically("~", 1.0, 1e-12))
		})

		It("remains a fixed point of the dynamics", func() {
			net := newFullyConnected(3, kuramoto.WithPhases([]float64{1, 1, 1}), kuramoto.WithSeed(1))

			dyn, err := net.SimulateStatic(10, 1.0, kuramoto.SolveRK4, false)
			Expect(err).NotTo(HaveOccurred())

			for _, p := range dyn.Final() {
				Expect(p).To(BeNumerically("~", 1.0, 1e-6))
			}
		})
	})

	Describe("dynamic simulation of a convergent configuration", func() {
		It("reaches the target order or reports a stall", func() {
			net := newFullyConnected(3,
				kuramoto.WithPhases([]float64{0.1, 2.0, 4.0}),
				kuramoto.WithWeight(1.0),
				kuramoto.WithSeed(2))

			dyn, err := net.SimulateDynamic(kuramoto.DynamicOptions{
				TargetOrder: 0.998,
				Solver:      kuramoto.SolveRK4,
				Collect:     true,
			})
			Expect(err).NotTo(HaveOccurred())

			if !dyn.Stalled {
				Expect(net.LocalOrder()).To(BeNumerically(">=", 0.998))
			}
			Expect(dyn.Times).To(HaveLen(len(dyn.Phases)))
		})

		It("tightens the phase spread as it runs", func() {
			net := newFullyConnected(4,
				kuramoto.WithPhases([]float64{0.5, 1.0, 1.5, 2.0}),
				kuramoto.WithSeed(3))

			before := spread(net.Phases())
			_, err := net.SimulateDynamic(kuramoto.DynamicOptions{
				TargetOrder: 0.99,
				Solver:      kuramoto.SolveRK4,
			})
			Expect(err).NotTo(HaveOccurred())

			Expect(spread(net.Phases())).To(BeNumerically("<", before))
		})
	})

	Describe("ensemble allocation on a converged network", func() {
		It("collapses to a single cluster", func() {
			net := newFullyConnected(3,
				kuramoto.WithPhases([]float64{0.1, 2.0, 4.0}),
				kuramoto.WithSeed(4))

			dyn, err := net.SimulateDynamic(kuramoto.DynamicOptions{
				TargetOrder: 0.998,
				Solver:      kuramoto.SolveRK4,
			})
			Expect(err).NotTo(HaveOccurred())

			if !dyn.Stalled {
				clusters := net.AllocateEnsembles(0.05)
				Expect(clusters).To(HaveLen(1))
				Expect(clusters[0]).To(Equal([]int{0, 1, 2}))
			}
		})
	})
})

func spread(phases []float64) float64 {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, p := range phases {
		lo = math.Min(lo, p)
		hi = math.Max(hi, p)
	}
	return hi - lo
}
