// Package integrators provides numerical stepping for the scalar phase
// ODE dθ/dt = f(θ, t) solved independently per oscillator.
package integrators

// Deriv is the right-hand side of a scalar first-order ODE.
type Deriv func(theta, t float64) float64

// RK4Step advances theta by one classical Runge-Kutta step of size dt.
func RK4Step(f Deriv, theta, t, dt float64) float64 {
	k1 := f(theta, t)
	k2 := f(theta+dt*0.5*k1, t+dt*0.5)
	k3 := f(theta+dt*0.5*k2, t+dt*0.5)
	k4 := f(theta+dt*k3, t+dt)

	return theta + dt/6.0*(k1+2*k2+2*k3+k4)
}

// Integrate advances theta from t0 to t1 using fixed RK4 sub-steps of
// size dt. The last step is shortened so the integration lands exactly
// on t1. A non-positive or oversized dt collapses to a single step over
// the whole interval.
func Integrate(f Deriv, theta, t0, t1, dt float64) float64 {
	if t1 <= t0 {
		return theta
	}
	if dt <= 0 || dt > t1-t0 {
		dt = t1 - t0
	}

	t := t0
	for t < t1 {
		h := dt
		if t+h > t1 {
			h = t1 - t
		}
		theta = RK4Step(f, theta, t, h)
		t += h
	}
	return theta
}
