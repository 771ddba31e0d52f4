package search

import "github.com/zobiamughal378-dev/PathFinder/grid"

// runDFS expands cells over a LIFO frontier. Neighbors are pushed in
// reverse clockwise order so the first direction (Up) is explored
// first, matching the grid's deterministic neighbor order. Explored
// membership is checked before every expansion; naive DFS on a grid
// with cycles would otherwise never terminate. No optimality
// guarantee.
// Complexity: O(W×H) time and memory.
func (e *engine) runDFS() (Result, error) {
	a := e.arena
	start, target := e.grid.Start(), e.grid.Target()

	stack := []int{a.add(start, -1, 0, 0)}
	seen := map[grid.Cell]struct{}{start: {}}
	explored := newExploredSet()

	for len(stack) > 0 {
		if e.checkCancelled() {
			return e.failure(TerminatedCancelled), nil
		}

		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur := a.cell(idx)

		if cur == target {
			path, err := a.reconstruct(idx)
			if err != nil {
				return Result{}, err
			}
			res := e.success(path)
			return res, e.emitSuccess(cur, a.cellsOf(stack), explored.order, path)
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

		nbs := e.grid.Neighbors(cur)
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if _, ok := seen[nb.Cell]; ok {
				continue
			}
			seen[nb.Cell] = struct{}{}
			stack = append(stack, a.add(nb.Cell, idx, a.cost(idx)+nb.Cost, a.depth(idx)+1))
		}

		if err := e.emitStep(cur, a.cellsOf(stack), explored.order, blocked); err != nil {
			return e.failure(TerminatedCancelled), err
		}
	}

	return e.failure(TerminatedFrontierExhausted), e.emitFailure()
}
