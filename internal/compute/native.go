//go:build ccore

package compute

/*
#cgo LDFLAGS: -L${SRCDIR} -lsyncnet
#include <stdlib.h>

extern int sync_available();
extern void* sync_create(int num_osc, double weight, const double* freqs, const unsigned char* adjacency);
extern void sync_destroy(void* handle);
extern double sync_order(void* handle, const double* phases);
extern double sync_local_order(void* handle, const double* phases);
extern int sync_next_phases(void* handle, const double* phases, double* next, double t, double step, double int_step, int solver);
extern void sync_allocate_ensembles(void* handle, const double* phases, double tolerance, int* labels);
*/
import "C"

import (
	"fmt"
	"log/slog"
	"math"
	"unsafe"

	"github.com/san-kum/syncnet/internal/kuramoto"
)

// NativeAvailable reports whether the accelerated core library is
// usable in this build.
func NativeAvailable() bool {
	return C.sync_available() != 0
}

// Native returns the factory for the accelerated engine. Every numeric
// kernel — per-step phase computation, both order metrics and ensemble
// allocation — runs inside the core library; the engine only drives
// the simulation loops and marshals buffers.
func Native() kuramoto.EngineFactory {
	return func(cfg kuramoto.EngineConfig) (kuramoto.Engine, error) {
		if !NativeAvailable() {
			return nil, fmt.Errorf("compute: native core library not available")
		}

		n := cfg.Conn.Size()
		adjacency := make([]C.uchar, n*n)
		for i := 0; i < n; i++ {
			for j := 0; j < n; j++ {
				if cfg.Conn.HasConnection(i, j) {
					adjacency[i*n+j] = 1
				}
			}
		}

		freqs := make([]C.double, n)
		for i, f := range cfg.Frequencies {
			freqs[i] = C.double(f)
		}

		handle := C.sync_create(C.int(n), C.double(cfg.Weight), &freqs[0], &adjacency[0])
		if handle == nil {
			return nil, fmt.Errorf("compute: native core refused network of %d oscillators", n)
		}

		log := cfg.Logger
		if log == nil {
			log = slog.Default()
		}
		return &nativeEngine{handle: handle, numOsc: n, log: log}, nil
	}
}

type nativeEngine struct {
	handle unsafe.Pointer
	numOsc int
	log    *slog.Logger
}

func (e *nativeEngine) Order(phases []float64) float64 {
	buf := toC(phases)
	return float64(C.sync_order(e.handle, &buf[0]))
}

func (e *nativeEngine) LocalOrder(phases []float64) float64 {
	buf := toC(phases)
	return float64(C.sync_local_order(e.handle, &buf[0]))
}

func (e *nativeEngine) Ensembles(phases []float64, tolerance float64) [][]int {
	buf := toC(phases)
	labels := make([]C.int, e.numOsc)
	C.sync_allocate_ensembles(e.handle, &buf[0], C.double(tolerance), &labels[0])

	// Labels are cluster ids in creation order; rebuilding in index
	// order preserves both discovery and insertion order.
	var clusters [][]int
	for i, label := range labels {
		for int(label) >= len(clusters) {
			clusters = append(clusters, nil)
		}
		clusters[label] = append(clusters[label], i)
	}
	return clusters
}

func (e *nativeEngine) step(phases []float64, t, step, intStep float64, solver kuramoto.Solver) ([]float64, error) {
	cur := toC(phases)
	next := make([]C.double, e.numOsc)
	rc := C.sync_next_phases(e.handle, &cur[0], &next[0],
		C.double(t), C.double(step), C.double(intStep), C.int(solver))
	if rc != 0 {
		return nil, &kuramoto.UnsupportedSolverError{Solver: solver}
	}
	return fromC(next), nil
}

func (e *nativeEngine) SimulateStatic(phases []float64, steps int, totalTime float64, solver kuramoto.Solver, collect bool) (*kuramoto.Dynamic, error) {
	step := totalTime / float64(steps)
	intStep := step / 10.0

	dyn := &kuramoto.Dynamic{}
	current := append([]float64(nil), phases...)
	if collect {
		dyn.Times = append(dyn.Times, 0)
		dyn.Phases = append(dyn.Phases, append([]float64(nil), current...))
	}

	t := 0.0
	for k := 0; k < steps; k++ {
		t = step * float64(k+1)
		next, err := e.step(current, t, step, intStep, solver)
		if err != nil {
			return nil, err
		}
		current = next
		if collect {
			dyn.Times = append(dyn.Times, t)
			dyn.Phases = append(dyn.Phases, append([]float64(nil), current...))
		}
	}

	if !collect {
		dyn.Times = append(dyn.Times, t)
		dyn.Phases = append(dyn.Phases, current)
	}
	return dyn, nil
}

func (e *nativeEngine) SimulateDynamic(phases []float64, opts kuramoto.DynamicOptions) (*kuramoto.Dynamic, error) {
	opts = opts.WithDefaults()

	dyn := &kuramoto.Dynamic{}
	current := append([]float64(nil), phases...)
	currentOrder := e.LocalOrder(current)

	t := 0.0
	if opts.Collect {
		dyn.Times = append(dyn.Times, 0)
		dyn.Phases = append(dyn.Phases, append([]float64(nil), current...))
	}

	for currentOrder < opts.TargetOrder {
		t += opts.Step
		next, err := e.step(current, t, opts.Step, opts.IntStep, opts.Solver)
		if err != nil {
			return nil, err
		}
		current = next

		if opts.Collect {
			dyn.Times = append(dyn.Times, t)
			dyn.Phases = append(dyn.Phases, append([]float64(nil), current...))
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
		dyn.Times = append(dyn.Times, t)
		dyn.Phases = append(dyn.Phases, current)
	}
	return dyn, nil
}

// Release destroys the native handle. The handle is nulled right after
// the first release, so further calls are no-ops.
func (e *nativeEngine) Release() error {
	if e.handle == nil {
		return nil
	}
	C.sync_destroy(e.handle)
	e.handle = nil
	return nil
}

func toC(vals []float64) []C.double {
	out := make([]C.double, len(vals))
	for i, v := range vals {
		out[i] = C.double(v)
	}
	return out
}

func fromC(vals []C.double) []float64 {
	out := make([]float64, len(vals))
	for i, v := range vals {
		out[i] = float64(v)
	}
	return out
}
