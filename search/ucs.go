package search

import (
	"container/heap"

	"github.com/zobiamughal378-dev/PathFinder/grid"
)

// runUCS expands cells in order of accumulated cost over a min-heap
// frontier, with ties broken by insertion order (FIFO among equal
// cost) for determinism. When a cheaper route to a cell already on
// the frontier appears, its entry is updated in place and re-sifted
// (true decrease-key) rather than duplicated, so a cell holds at most
// one frontier entry at a time. Cost-optimal among the six strategies.
// Complexity: O(W×H log(W×H)) time, O(W×H) memory.
func (e *engine) runUCS() (Result, error) {
	a := e.arena
	start, target := e.grid.Start(), e.grid.Target()

	startItem := &ucsItem{cell: start, node: a.add(start, -1, 0, 0)}
	open := ucsFrontier{startItem}
	heap.Init(&open)
	inFrontier := map[grid.Cell]*ucsItem{start: startItem}
	explored := newExploredSet()
	seq := 1

	for open.Len() > 0 {
		if e.checkCancelled() {
			return e.failure(TerminatedCancelled), nil
		}

		item := heap.Pop(&open).(*ucsItem)
		cur := item.cell
		delete(inFrontier, cur)

		if cur == target {
			path, err := a.reconstruct(item.node)
			if err != nil {
				return Result{}, err
			}
			res := e.success(path)
			return res, e.emitSuccess(cur, open.cells(), explored.order, path)
		}
		if explored.has(cur) {
			continue
		}
		if e.grid.IsBlocked(cur) {
			continue
		}

		blocked := e.injectObstacle(cur)
		explored.add(cur)
		e.expanded++

		for _, nb := range e.grid.Neighbors(cur) {
			if explored.has(nb.Cell) {
				continue
			}
			newCost := item.cost + nb.Cost
			if existing, ok := inFrontier[nb.Cell]; ok {
				if newCost < existing.cost {
					// relaxation: cheaper route found before expansion;
					// the original insertion seq keeps the FIFO tie-break stable
					existing.cost = newCost
					existing.node = a.add(nb.Cell, item.node, newCost, a.depth(item.node)+1)
					heap.Fix(&open, existing.index)
				}
				continue
			}
			it := &ucsItem{
				cell: nb.Cell,
				node: a.add(nb.Cell, item.node, newCost, a.depth(item.node)+1),
				cost: newCost,
				seq:  seq,
			}
			seq++
			heap.Push(&open, it)
			inFrontier[nb.Cell] = it
		}

		if err := e.emitStep(cur, open.cells(), explored.order, blocked); err != nil {
			return e.failure(TerminatedCancelled), err
		}
	}

	return e.failure(TerminatedFrontierExhausted), e.emitFailure()
}

// ucsItem is one frontier entry: a cell, its best-known arena node,
// its accumulated cost, and its insertion sequence for tie-breaking.
type ucsItem struct {
	cell  grid.Cell
	node  int
	cost  float64
	seq   int
	index int // heap position, maintained by ucsFrontier
}

// ucsFrontier is a min-heap of *ucsItem ordered by cost ascending,
// then by insertion sequence ascending.
type ucsFrontier []*ucsItem

func (f ucsFrontier) Len() int { return len(f) }

func (f ucsFrontier) Less(i, j int) bool {
	if f[i].cost != f[j].cost {
		return f[i].cost < f[j].cost
	}

	return f[i].seq < f[j].seq
}

func (f ucsFrontier) Swap(i, j int) {
	f[i], f[j] = f[j], f[i]
	f[i].index = i
	f[j].index = j
}

func (f *ucsFrontier) Push(x interface{}) {
	item := x.(*ucsItem)
	item.index = len(*f)
	*f = append(*f, item)
}

func (f *ucsFrontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*f = old[:n-1]

	return item
}

// cells lists the frontier's cells in heap-internal order.
func (f ucsFrontier) cells() []grid.Cell {
	out := make([]grid.Cell, len(f))
	for i, it := range f {
		out[i] = it.cell
	}

	return out
}
