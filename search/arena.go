package search

import (
	"fmt"

	"github.com/zobiamughal378-dev/PathFinder/grid"
)

// nodeArena is a flat table of search nodes addressed by index.
// Parent links are indices into the same table rather than pointers,
// which rules out ownership cycles and makes the broken-chain check a
// simple visited-set walk. An arena lives for one strategy invocation.
type nodeArena struct {
	cells   []grid.Cell
	parents []int // -1 for roots
	costs   []float64
	depths  []int
}

// newArena preallocates for capacity nodes.
func newArena(capacity int) *nodeArena {
	return &nodeArena{
		cells:   make([]grid.Cell, 0, capacity),
		parents: make([]int, 0, capacity),
		costs:   make([]float64, 0, capacity),
		depths:  make([]int, 0, capacity),
	}
}

// add appends a node and returns its index. parent is -1 for roots.
func (a *nodeArena) add(c grid.Cell, parent int, cost float64, depth int) int {
	a.cells = append(a.cells, c)
	a.parents = append(a.parents, parent)
	a.costs = append(a.costs, cost)
	a.depths = append(a.depths, depth)

	return len(a.cells) - 1
}

// cell returns the cell stored at index i.
func (a *nodeArena) cell(i int) grid.Cell { return a.cells[i] }

// cost returns the accumulated cost stored at index i.
func (a *nodeArena) cost(i int) float64 { return a.costs[i] }

// depth returns the depth stored at index i.
func (a *nodeArena) depth(i int) int { return a.depths[i] }

// reconstruct unwinds parent links from idx to its root and returns
// the route in root → idx order. The Explored invariant keeps parent
// chains acyclic; a revisited index during the unwind is therefore an
// engine bug and surfaces as ErrBrokenChain rather than a silent loop.
// Complexity: O(L) in the path length.
func (a *nodeArena) reconstruct(idx int) ([]grid.Cell, error) {
	visited := make(map[int]struct{})
	var rev []grid.Cell
	for at := idx; at != -1; at = a.parents[at] {
		if _, seen := visited[at]; seen {
			return nil, fmt.Errorf("%w: node %v revisited while unwinding", ErrBrokenChain, a.cells[at])
		}
		visited[at] = struct{}{}
		rev = append(rev, a.cells[at])
	}
	// reverse to root → idx order
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// cellsOf resolves a slice of arena indices to their cells,
// preserving order. Used for frontier snapshots.
func (a *nodeArena) cellsOf(indices []int) []grid.Cell {
	out := make([]grid.Cell, len(indices))
	for i, idx := range indices {
		out[i] = a.cells[idx]
	}

	return out
}

// pathCost sums the move costs along a reconstructed route.
func pathCost(path []grid.Cell) float64 {
	var total float64
	for i := 1; i < len(path); i++ {
		total += grid.MoveCost(path[i-1], path[i])
	}

	return total
}
