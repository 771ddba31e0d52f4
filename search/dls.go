package search

import "github.com/zobiamughal378-dev/PathFinder/grid"

// runDLS performs depth-first search bounded at the configured depth
// limit. Nodes sitting exactly at the limit are goal-tested but never
// expanded. Failure distinguishes two reasons so iterative deepening
// can tell "maybe findable deeper" from "genuinely unreachable":
//   - TerminatedDepthLimit: at least one limit node still had an
//     unexplored neighbor, so a deeper run might reach more cells.
//   - TerminatedFrontierExhausted: the reachable set was consumed with
//     no pruning; no limit increase can help.
func (e *engine) runDLS(limit int) (Result, error) {
	res, err := e.depthLimited(limit)
	if err != nil || res.Success || res.Reason == TerminatedCancelled {
		return res, err
	}

	return res, e.emitFailure()
}

// depthLimited is one depth-bounded DFS pass sharing the engine's
// arena, trace stream, and expansion counter. It never emits the
// terminal failure snapshot; runDLS and runIDDFS own that frame so a
// deepening trace stays a single continuous stream.
// Complexity: O(W×H) time per pass.
func (e *engine) depthLimited(limit int) (Result, error) {
	a := e.arena
	start, target := e.grid.Start(), e.grid.Target()

	stack := []int{a.add(start, -1, 0, 0)}
	onStack := map[grid.Cell]struct{}{start: {}}
	explored := newExploredSet()
	pruned := false

	for len(stack) > 0 {
		if e.checkCancelled() {
			return e.failure(TerminatedCancelled), nil
		}

		idx := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		cur := a.cell(idx)
		delete(onStack, cur)

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
		depth := a.depth(idx)

		if depth == limit {
			// pruned only when the cut actually hides something
			for _, nb := range e.grid.Neighbors(cur) {
				if !explored.has(nb.Cell) {
					pruned = true
					break
				}
			}
			if err := e.emitStep(cur, a.cellsOf(stack), explored.order, blocked); err != nil {
				return e.failure(TerminatedCancelled), err
			}
			continue
		}

		nbs := e.grid.Neighbors(cur)
		for i := len(nbs) - 1; i >= 0; i-- {
			nb := nbs[i]
			if explored.has(nb.Cell) {
				continue
			}
			if _, ok := onStack[nb.Cell]; ok {
				continue
			}
			onStack[nb.Cell] = struct{}{}
			stack = append(stack, a.add(nb.Cell, idx, a.cost(idx)+nb.Cost, depth+1))
		}

		if err := e.emitStep(cur, a.cellsOf(stack), explored.order, blocked); err != nil {
			return e.failure(TerminatedCancelled), err
		}
	}

	if pruned {
		return e.failure(TerminatedDepthLimit), nil
	}

	return e.failure(TerminatedFrontierExhausted), nil
}
