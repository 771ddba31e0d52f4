package grid_test

import (
	"errors"
	"math"
	"testing"

	"github.com/zobiamughal378-dev/PathFinder/grid"
)

//----------------------------------------------------------------------------//
// Construction Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects degenerate dimensions and
// misplaced cells.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name          string
		width, height int
		walls         []grid.Cell
		start, target grid.Cell
		err           error
	}{
		{"ZeroWidth", 0, 5, nil, grid.Cell{}, grid.Cell{Row: 1}, grid.ErrEmptyGrid},
		{"ZeroHeight", 5, 0, nil, grid.Cell{}, grid.Cell{Row: 1}, grid.ErrEmptyGrid},
		{"SingleCell", 1, 1, nil, grid.Cell{}, grid.Cell{}, grid.ErrEmptyGrid},
		{"StartOutside", 3, 3, nil, grid.Cell{Row: 3, Col: 0}, grid.Cell{Row: 2, Col: 2}, grid.ErrOutOfBounds},
		{"TargetOutside", 3, 3, nil, grid.Cell{}, grid.Cell{Row: 0, Col: 3}, grid.ErrOutOfBounds},
		{"WallOutside", 3, 3, []grid.Cell{{Row: -1, Col: 0}}, grid.Cell{}, grid.Cell{Row: 2, Col: 2}, grid.ErrOutOfBounds},
		{"StartEqualsTarget", 3, 3, nil, grid.Cell{Row: 1, Col: 1}, grid.Cell{Row: 1, Col: 1}, grid.ErrInvalidMutation},
		{"WallOnStart", 3, 3, []grid.Cell{{Row: 0, Col: 0}}, grid.Cell{}, grid.Cell{Row: 2, Col: 2}, grid.ErrInvalidMutation},
		{"WallOnTarget", 3, 3, []grid.Cell{{Row: 2, Col: 2}}, grid.Cell{}, grid.Cell{Row: 2, Col: 2}, grid.ErrInvalidMutation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := grid.New(tc.width, tc.height, tc.walls, tc.start, tc.target)
			if !errors.Is(err, tc.err) {
				t.Errorf("New() error = %v; want %v", err, tc.err)
			}
		})
	}
}

// TestNew_Statuses checks the initial status table of a small grid.
func TestNew_Statuses(t *testing.T) {
	g, err := grid.New(3, 3, []grid.Cell{{Row: 1, Col: 1}}, grid.Cell{}, grid.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if s := g.StatusAt(grid.Cell{}); s != grid.Start {
		t.Errorf("StatusAt(start) = %v; want start", s)
	}
	if s := g.StatusAt(grid.Cell{Row: 2, Col: 2}); s != grid.Target {
		t.Errorf("StatusAt(target) = %v; want target", s)
	}
	if s := g.StatusAt(grid.Cell{Row: 1, Col: 1}); s != grid.Wall {
		t.Errorf("StatusAt(wall) = %v; want wall", s)
	}
	if s := g.StatusAt(grid.Cell{Row: 0, Col: 1}); s != grid.Free {
		t.Errorf("StatusAt(free) = %v; want free", s)
	}
	// the border reads as solid
	if s := g.StatusAt(grid.Cell{Row: -1, Col: 0}); s != grid.Wall {
		t.Errorf("StatusAt(outside) = %v; want wall", s)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Errorf("dimensions = %dx%d; want 3x3", g.Width(), g.Height())
	}
}

//----------------------------------------------------------------------------//
// Neighbor Tests
//----------------------------------------------------------------------------//

// TestNeighbors_OrderAndCosts verifies the fixed clockwise enumeration
// order and the orthogonal/diagonal cost split on an open grid.
func TestNeighbors_OrderAndCosts(t *testing.T) {
	g, err := grid.New(5, 5, nil, grid.Cell{}, grid.Cell{Row: 4, Col: 4})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	nbs := g.Neighbors(grid.Cell{Row: 2, Col: 2})
	want := []grid.Cell{
		{Row: 1, Col: 2}, // up
		{Row: 1, Col: 3}, // top-right
		{Row: 2, Col: 3}, // right
		{Row: 3, Col: 3}, // bottom-right
		{Row: 3, Col: 2}, // bottom
		{Row: 3, Col: 1}, // bottom-left
		{Row: 2, Col: 1}, // left
		{Row: 1, Col: 1}, // top-left
	}
	if len(nbs) != len(want) {
		t.Fatalf("len(Neighbors) = %d; want %d", len(nbs), len(want))
	}
	for i, nb := range nbs {
		if nb.Cell != want[i] {
			t.Errorf("Neighbors[%d] = %v; want %v", i, nb.Cell, want[i])
		}
		diagonal := nb.Cell.Row != 2 && nb.Cell.Col != 2
		wantCost := grid.OrthogonalCost
		if diagonal {
			wantCost = grid.DiagonalCost
		}
		if math.Abs(nb.Cost-wantCost) > 1e-12 {
			t.Errorf("Neighbors[%d].Cost = %v; want %v", i, nb.Cost, wantCost)
		}
	}
}

// TestNeighbors_CornerClipping checks bounds filtering at a grid corner.
func TestNeighbors_CornerClipping(t *testing.T) {
	g, err := grid.New(5, 5, nil, grid.Cell{}, grid.Cell{Row: 4, Col: 4})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	nbs := g.Neighbors(grid.Cell{})
	if len(nbs) != 3 {
		t.Fatalf("corner neighbor count = %d; want 3", len(nbs))
	}
}

// TestNeighbors_NoCornerCutting verifies the corner-cutting rule:
// with walls at (0,1) and (1,0), the diagonal (0,0)→(1,1) is excluded.
func TestNeighbors_NoCornerCutting(t *testing.T) {
	g, err := grid.New(3, 3, []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}},
		grid.Cell{}, grid.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for _, nb := range g.Neighbors(grid.Cell{}) {
		if nb.Cell == (grid.Cell{Row: 1, Col: 1}) {
			t.Fatal("diagonal through a blocked corner must be rejected")
		}
	}
}

// TestNeighbors_SingleFlankBlocksDiagonal verifies that one blocked
// flank already forbids the diagonal, not just two.
func TestNeighbors_SingleFlankBlocksDiagonal(t *testing.T) {
	g, err := grid.New(3, 3, []grid.Cell{{Row: 0, Col: 1}},
		grid.Cell{}, grid.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	for _, nb := range g.Neighbors(grid.Cell{}) {
		if nb.Cell == (grid.Cell{Row: 1, Col: 1}) {
			t.Fatal("diagonal with one blocked flank must be rejected")
		}
	}
	// the other flank stays reachable orthogonally
	found := false
	for _, nb := range g.Neighbors(grid.Cell{}) {
		if nb.Cell == (grid.Cell{Row: 1, Col: 0}) {
			found = true
		}
	}
	if !found {
		t.Error("orthogonal neighbor (1,0) missing")
	}
}

// TestNeighbors_DynamicObstacleReflected checks that Neighbors sees
// live obstacle status.
func TestNeighbors_DynamicObstacleReflected(t *testing.T) {
	g, err := grid.New(3, 3, nil, grid.Cell{}, grid.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	before := len(g.Neighbors(grid.Cell{Row: 1, Col: 1}))
	if err = g.MarkDynamicObstacle(grid.Cell{Row: 0, Col: 1}); err != nil {
		t.Fatalf("MarkDynamicObstacle error: %v", err)
	}
	after := len(g.Neighbors(grid.Cell{Row: 1, Col: 1}))
	// the obstacle removes itself and poisons two flanked diagonals
	if before-after != 3 {
		t.Errorf("neighbor count dropped by %d; want 3 (cell plus two diagonals)", before-after)
	}
}

//----------------------------------------------------------------------------//
// Mutation Tests
//----------------------------------------------------------------------------//

// TestMarkDynamicObstacle covers the legal transition and every
// rejection.
func TestMarkDynamicObstacle(t *testing.T) {
	g, err := grid.New(3, 3, []grid.Cell{{Row: 1, Col: 1}}, grid.Cell{}, grid.Cell{Row: 2, Col: 2})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	free := grid.Cell{Row: 0, Col: 1}
	if err = g.MarkDynamicObstacle(free); err != nil {
		t.Fatalf("blocking a free cell: %v", err)
	}
	if !g.IsBlocked(free) {
		t.Error("IsBlocked = false after MarkDynamicObstacle")
	}
	if s := g.StatusAt(free); s != grid.DynamicObstacle {
		t.Errorf("StatusAt = %v; want dynamic-obstacle", s)
	}

	rejects := []struct {
		name string
		cell grid.Cell
		err  error
	}{
		{"Start", grid.Cell{}, grid.ErrInvalidMutation},
		{"Target", grid.Cell{Row: 2, Col: 2}, grid.ErrInvalidMutation},
		{"Wall", grid.Cell{Row: 1, Col: 1}, grid.ErrInvalidMutation},
		{"AlreadyDynamic", free, grid.ErrInvalidMutation},
		{"Outside", grid.Cell{Row: 9, Col: 9}, grid.ErrOutOfBounds},
	}
	for _, tc := range rejects {
		t.Run(tc.name, func(t *testing.T) {
			if err := g.MarkDynamicObstacle(tc.cell); !errors.Is(err, tc.err) {
				t.Errorf("MarkDynamicObstacle(%v) error = %v; want %v", tc.cell, err, tc.err)
			}
		})
	}
}

// TestMoveCost checks the orthogonal/diagonal split.
func TestMoveCost(t *testing.T) {
	a := grid.Cell{Row: 1, Col: 1}
	if c := grid.MoveCost(a, grid.Cell{Row: 1, Col: 2}); c != grid.OrthogonalCost {
		t.Errorf("orthogonal MoveCost = %v; want %v", c, grid.OrthogonalCost)
	}
	if c := grid.MoveCost(a, grid.Cell{Row: 2, Col: 2}); c != grid.DiagonalCost {
		t.Errorf("diagonal MoveCost = %v; want %v", c, grid.DiagonalCost)
	}
}

// TestFreeCells verifies row-major enumeration with exclusions.
func TestFreeCells(t *testing.T) {
	g, err := grid.New(2, 2, nil, grid.Cell{}, grid.Cell{Row: 1, Col: 1})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	all := g.FreeCells()
	want := []grid.Cell{{Row: 0, Col: 1}, {Row: 1, Col: 0}}
	if len(all) != len(want) {
		t.Fatalf("FreeCells = %v; want %v", all, want)
	}
	for i := range want {
		if all[i] != want[i] {
			t.Errorf("FreeCells[%d] = %v; want %v", i, all[i], want[i])
		}
	}
	if left := g.FreeCells(want[0], want[1]); len(left) != 0 {
		t.Errorf("FreeCells with all exclusions = %v; want empty", left)
	}
}
