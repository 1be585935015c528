package kuramoto

import (
	"errors"
	"fmt"
)

// ErrReleased indicates an operation on a network whose engine has
// already been released.
var ErrReleased = errors.New("kuramoto: network released")

// UnsupportedSolverError reports a solver tag no solving strategy is
// registered for. The step that raised it performed no mutation.
type UnsupportedSolverError struct {
	Solver Solver
}

func (e *UnsupportedSolverError) Error() string {
	return fmt.Sprintf("kuramoto: unsupported solver %q", e.Solver.String())
}

func checkSolver(s Solver) error {
	switch s {
	case SolveFast, SolveRK4:
		return nil
	}
	return &UnsupportedSolverError{Solver: s}
}
