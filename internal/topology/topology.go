package topology

import (
	"fmt"
	"math"
)

// Structure selects how oscillators are linked to each other.
type Structure int

const (
	// None leaves every oscillator isolated.
	None Structure = iota
	// AllToAll links every pair of distinct oscillators.
	AllToAll
	// GridFour places oscillators on a square lattice with
	// up/down/left/right links. Requires a square oscillator count.
	GridFour
	// GridEight is GridFour plus the diagonal links.
	GridEight
	// ListBidir links each oscillator to its index neighbors,
	// forming a bidirectional chain.
	ListBidir
)

func (s Structure) String() string {
	switch s {
	case None:
		return "none"
	case AllToAll:
		return "all_to_all"
	case GridFour:
		return "grid_four"
	case GridEight:
		return "grid_eight"
	case ListBidir:
		return "list_bidir"
	}
	return fmt.Sprintf("structure(%d)", int(s))
}

// Representation is a storage choice only; both representations answer
// the same queries with identical results.
type Representation int

const (
	Matrix Representation = iota
	List
)

// Connectivity answers link queries for a fixed set of oscillators.
// Implementations are immutable once constructed.
type Connectivity interface {
	// HasConnection reports whether oscillators i and j are linked.
	HasConnection(i, j int) bool
	// Size returns the number of oscillators.
	Size() int
}

// New builds the connectivity for numOsc oscillators with the given
// structure, stored in the requested representation.
// It panics when a grid structure is requested for a non-square count.
func New(numOsc int, s Structure, r Representation) Connectivity {
	neighbors := buildNeighbors(numOsc, s)
	if r == List {
		return &listConn{n: numOsc, neighbors: neighbors}
	}
	adj := make([][]bool, numOsc)
	for i := range adj {
		adj[i] = make([]bool, numOsc)
		for _, j := range neighbors[i] {
			adj[i][j] = true
		}
	}
	return &matrixConn{adj: adj}
}

func buildNeighbors(numOsc int, s Structure) [][]int {
	neighbors := make([][]int, numOsc)

	switch s {
	case None:

	case AllToAll:
		for i := 0; i < numOsc; i++ {
			for j := 0; j < numOsc; j++ {
				if j != i {
					neighbors[i] = append(neighbors[i], j)
				}
			}
		}

	case ListBidir:
		for i := 0; i < numOsc; i++ {
			if i > 0 {
				neighbors[i] = append(neighbors[i], i-1)
			}
			if i < numOsc-1 {
				neighbors[i] = append(neighbors[i], i+1)
			}
		}

	case GridFour, GridEight:
		side := gridSide(numOsc)
		for i := 0; i < numOsc; i++ {
			row, col := i/side, i%side
			add := func(r, c int) {
				if r >= 0 && r < side && c >= 0 && c < side {
					neighbors[i] = append(neighbors[i], r*side+c)
				}
			}
			add(row-1, col)
			add(row+1, col)
			add(row, col-1)
			add(row, col+1)
			if s == GridEight {
				add(row-1, col-1)
				add(row-1, col+1)
				add(row+1, col-1)
				add(row+1, col+1)
			}
		}

	default:
		panic(fmt.Sprintf("topology: unknown structure %v", s))
	}

	return neighbors
}

func gridSide(numOsc int) int {
	side := int(math.Round(math.Sqrt(float64(numOsc))))
	if side*side != numOsc {
		panic(fmt.Sprintf("topology: grid requires a square oscillator count, got %d", numOsc))
	}
	return side
}

type matrixConn struct {
	adj [][]bool
}

func (m *matrixConn) Size() int { return len(m.adj) }

func (m *matrixConn) HasConnection(i, j int) bool {
	return m.adj[i][j]
}

type listConn struct {
	n         int
	neighbors [][]int
}

func (l *listConn) Size() int { return l.n }

func (l *listConn) HasConnection(i, j int) bool {
	for _, k := range l.neighbors[i] {
		if k == j {
			return true
		}
	}
	return false
}
