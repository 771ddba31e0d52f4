package grid

import "fmt"

// Grid owns the full cell status table for one search run.
// Width and Height define dimensions; the status table is row-major.
type Grid struct {
	width, height int
	status        []Status
	start, target Cell
}

// New constructs a Grid of width columns × height rows with the given
// static walls, start, and target. The input wall slice is consumed by
// value; later mutation of the caller's slice cannot affect the Grid.
// Returns ErrEmptyGrid for dimensions that cannot host a search,
// ErrOutOfBounds for misplaced cells, and ErrInvalidMutation when
// start/target coincide with each other or with a wall.
// Complexity: O(W×H) time and memory.
func New(width, height int, walls []Cell, start, target Cell) (*Grid, error) {
	if width < 1 || height < 1 || (width == 1 && height == 1) {
		return nil, fmt.Errorf("%w: %dx%d", ErrEmptyGrid, width, height)
	}
	g := &Grid{
		width:  width,
		height: height,
		status: make([]Status, width*height),
		start:  start,
		target: target,
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", ErrOutOfBounds, start)
	}
	if !g.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v", ErrOutOfBounds, target)
	}
	if start == target {
		return nil, fmt.Errorf("%w: start and target coincide at %v", ErrInvalidMutation, start)
	}
	for _, w := range walls {
		if !g.InBounds(w) {
			return nil, fmt.Errorf("%w: wall %v", ErrOutOfBounds, w)
		}
		if w == start || w == target {
			return nil, fmt.Errorf("%w: wall %v overlaps start/target", ErrInvalidMutation, w)
		}
		g.status[g.index(w)] = Wall
	}
	g.status[g.index(start)] = Start
	g.status[g.index(target)] = Target

	return g, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Start returns the search origin cell.
func (g *Grid) Start() Cell { return g.start }

// Target returns the search destination cell.
func (g *Grid) Target() Cell { return g.target }

// InBounds reports whether c lies within the grid rectangle.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.height && c.Col >= 0 && c.Col < g.width
}

// index maps a cell to its row-major position: Row*Width + Col.
func (g *Grid) index(c Cell) int {
	return c.Row*g.width + c.Col
}

// StatusAt returns the current status of c.
// Out-of-bounds cells report Wall, so callers may treat the border as solid.
func (g *Grid) StatusAt(c Cell) Status {
	if !g.InBounds(c) {
		return Wall
	}

	return g.status[g.index(c)]
}

// IsBlocked reports whether c cannot be entered: out of bounds, a Wall,
// or a DynamicObstacle. Start and Target are never blocked.
// Complexity: O(1).
func (g *Grid) IsBlocked(c Cell) bool {
	s := g.StatusAt(c)

	return s == Wall || s == DynamicObstacle
}

// MarkDynamicObstacle converts a Free cell into a DynamicObstacle.
// Returns ErrOutOfBounds for cells outside the grid and
// ErrInvalidMutation for any non-Free cell (Start, Target, Wall, or an
// existing DynamicObstacle). Start/Target identity never changes.
func (g *Grid) MarkDynamicObstacle(c Cell) error {
	if !g.InBounds(c) {
		return fmt.Errorf("%w: %v", ErrOutOfBounds, c)
	}
	if s := g.status[g.index(c)]; s != Free {
		return fmt.Errorf("%w: cannot block %s cell %v", ErrInvalidMutation, s, c)
	}
	g.status[g.index(c)] = DynamicObstacle

	return nil
}

// MoveCost returns the cost of a single move between two adjacent cells:
// OrthogonalCost for axis-aligned steps, DiagonalCost otherwise.
func MoveCost(from, to Cell) float64 {
	if from.Row != to.Row && from.Col != to.Col {
		return DiagonalCost
	}

	return OrthogonalCost
}

// Neighbors returns the reachable adjacent cells of c with their move
// costs, in fixed clockwise order starting at Up. Candidates are
// filtered by bounds, Wall status, DynamicObstacle status, and the
// corner-cutting rule: a diagonal move is rejected when either of its
// flanking orthogonal cells is blocked, so routes never squeeze
// between two touching obstacles.
// Complexity: O(1) — at most eight candidates.
func (g *Grid) Neighbors(c Cell) []Neighbor {
	out := make([]Neighbor, 0, 8)
	for _, off := range moveOffsets {
		nb := Cell{Row: c.Row + off.dRow, Col: c.Col + off.dCol}
		if !g.InBounds(nb) || g.IsBlocked(nb) {
			continue
		}
		if off.diagonal {
			// flanking orthogonal cells share the diagonal's row/col deltas
			if g.IsBlocked(Cell{Row: c.Row + off.dRow, Col: c.Col}) ||
				g.IsBlocked(Cell{Row: c.Row, Col: c.Col + off.dCol}) {
				continue
			}
		}
		cost := OrthogonalCost
		if off.diagonal {
			cost = DiagonalCost
		}
		out = append(out, Neighbor{Cell: nb, Cost: cost})
	}

	return out
}

// FreeCells returns every cell whose status is Free and which is not
// listed in excluded, in row-major order.
// Complexity: O(W×H).
func (g *Grid) FreeCells(excluded ...Cell) []Cell {
	skip := make(map[Cell]struct{}, len(excluded))
	for _, c := range excluded {
		skip[c] = struct{}{}
	}
	var out []Cell
	for row := 0; row < g.height; row++ {
		for col := 0; col < g.width; col++ {
			c := Cell{Row: row, Col: col}
			if g.status[g.index(c)] != Free {
				continue
			}
			if _, ok := skip[c]; ok {
				continue
			}
			out = append(out, c)
		}
	}

	return out
}
