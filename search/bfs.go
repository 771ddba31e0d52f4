package search

import "github.com/zobiamughal378-dev/PathFinder/grid"

// runBFS expands cells in discovery order over a FIFO frontier.
// The first arrival at a cell wins its parent pointer, so a successful
// path has the fewest edges among all routes (level-order guarantee;
// diagonal weighting is ignored for optimality purposes).
// Goal test happens on dequeue, keeping the trace accurate.
// Complexity: O(W×H) time and memory.
func (e *engine) runBFS() (Result, error) {
	a := e.arena
	start, target := e.grid.Start(), e.grid.Target()

	queue := []int{a.add(start, -1, 0, 0)}
	// frontier ∪ explored membership: BFS never re-enqueues a cell
	seen := map[grid.Cell]struct{}{start: {}}
	explored := newExploredSet()

	for len(queue) > 0 {
		if e.checkCancelled() {
			return e.failure(TerminatedCancelled), nil
		}

		idx := queue[0]
		queue = queue[1:]
		cur := a.cell(idx)

		if cur == target {
			path, err := a.reconstruct(idx)
			if err != nil {
				return Result{}, err
			}
			res := e.success(path)
			return res, e.emitSuccess(cur, a.cellsOf(queue), explored.order, path)
		}
		// a frontier cell blocked after discovery is dropped unexpanded
		if e.grid.IsBlocked(cur) {
			continue
		}

		blocked := e.injectObstacle(cur)
		explored.add(cur)
		e.expanded++

		for _, nb := range e.grid.Neighbors(cur) {
			if _, ok := seen[nb.Cell]; ok {
				continue
			}
			seen[nb.Cell] = struct{}{}
			queue = append(queue, a.add(nb.Cell, idx, a.cost(idx)+nb.Cost, a.depth(idx)+1))
		}

		if err := e.emitStep(cur, a.cellsOf(queue), explored.order, blocked); err != nil {
			return e.failure(TerminatedCancelled), err
		}
	}

	return e.failure(TerminatedFrontierExhausted), e.emitFailure()
}
