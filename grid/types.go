package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid construction and mutation.
var (
	// ErrEmptyGrid indicates the requested dimensions cannot hold a search
	// (non-positive, or a single 1×1 cell).
	ErrEmptyGrid = errors.New("grid: dimensions must span at least two cells")
	// ErrOutOfBounds indicates a cell outside the grid rectangle.
	ErrOutOfBounds = errors.New("grid: cell out of bounds")
	// ErrInvalidMutation indicates an illegal construction or obstacle
	// placement: start/target on a wall, start == target, or blocking a
	// non-free cell.
	ErrInvalidMutation = errors.New("grid: invalid mutation")
	// ErrBadProbability indicates an injection probability outside [0,1].
	ErrBadProbability = errors.New("grid: probability must lie in [0,1]")
)

// Status describes what currently occupies a cell.
type Status uint8

const (
	// Free marks a traversable, unoccupied cell.
	Free Status = iota
	// Wall marks a static obstacle fixed at construction.
	Wall
	// Start marks the unique search origin.
	Start
	// Target marks the unique search destination.
	Target
	// DynamicObstacle marks a cell blocked after construction.
	DynamicObstacle
)

// String returns a human-readable status name.
func (s Status) String() string {
	switch s {
	case Free:
		return "free"
	case Wall:
		return "wall"
	case Start:
		return "start"
	case Target:
		return "target"
	case DynamicObstacle:
		return "dynamic-obstacle"
	default:
		return "unknown"
	}
}

// Cell identifies a grid position by row and column.
// Identity is the coordinate pair; status lives in the Grid.
type Cell struct {
	Row, Col int
}

// Neighbor pairs a reachable adjacent cell with its move cost.
type Neighbor struct {
	Cell Cell
	Cost float64
}

// Costs of a single move.
const (
	// OrthogonalCost is the cost of a horizontal or vertical step.
	OrthogonalCost = 1.0
	// DiagonalCost is the cost of a diagonal step.
	DiagonalCost = math.Sqrt2
)

// moveOffsets enumerates the eight compass moves in fixed clockwise
// order starting at Up. Every traversal walks this table, so visit
// order is fully reproducible.
var moveOffsets = [8]struct {
	dRow, dCol int
	diagonal   bool
}{
	{-1, 0, false}, // up
	{-1, 1, true},  // top-right
	{0, 1, false},  // right
	{1, 1, true},   // bottom-right
	{1, 0, false},  // bottom
	{1, -1, true},  // bottom-left
	{0, -1, false}, // left
	{-1, -1, true}, // top-left
}
