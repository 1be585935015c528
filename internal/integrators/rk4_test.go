package integrators

import (
	"math"
	"testing"
)

func TestRK4StepDecay(t *testing.T) {
	// dθ/dt = -θ has solution θ(t) = θ0 * exp(-t).
	f := func(theta, _ float64) float64 { return -theta }

	theta := 1.0
	dt := 0.01
	steps := 100

	for i := 0; i < steps; i++ {
		theta = RK4Step(f, theta, float64(i)*dt, dt)
	}

	expected := math.Exp(-1.0)
	if math.Abs(theta-expected) > 1e-6 {
		t.Errorf("decay error too large: got %.8f, expected %.8f", theta, expected)
	}
}

func TestRK4StepTimeDependent(t *testing.T) {
	// dθ/dt = t integrates to θ(t) = θ0 + t²/2.
	f := func(_, tm float64) float64 { return tm }

	theta := RK4Step(f, 0.0, 0.0, 1.0)
	if math.Abs(theta-0.5) > 1e-9 {
		t.Errorf("expected 0.5, got %.9f", theta)
	}
}

func TestIntegrateMatchesRepeatedSteps(t *testing.T) {
	f := func(theta, _ float64) float64 { return math.Sin(theta) }

	manual := 0.5
	for i := 0; i < 10; i++ {
		manual = RK4Step(f, manual, float64(i)*0.1, 0.1)
	}

	got := Integrate(f, 0.5, 0.0, 1.0, 0.1)
	if math.Abs(got-manual) > 1e-9 {
		t.Errorf("Integrate = %.9f, repeated steps = %.9f", got, manual)
	}
}

func TestIntegratePartialLastStep(t *testing.T) {
	f := func(_, _ float64) float64 { return 1.0 }

	// Constant derivative: result must land exactly at θ0 + (t1 - t0)
	// even when the interval is not a multiple of dt.
	got := Integrate(f, 0.0, 0.0, 0.25, 0.1)
	if math.Abs(got-0.25) > 1e-12 {
		t.Errorf("expected 0.25, got %.12f", got)
	}
}

func TestIntegrateDegenerateInterval(t *testing.T) {
	f := func(theta, _ float64) float64 { return theta }

	if got := Integrate(f, 2.0, 1.0, 1.0, 0.1); got != 2.0 {
		t.Errorf("empty interval should not move theta, got %f", got)
	}
	if got := Integrate(f, 2.0, 1.0, 0.5, 0.1); got != 2.0 {
		t.Errorf("inverted interval should not move theta, got %f", got)
	}
}
