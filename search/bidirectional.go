package search

import "github.com/zobiamughal378-dev/PathFinder/grid"

// wave is one direction of a bidirectional search: a FIFO frontier of
// arena indices plus per-direction membership maps. seen maps every
// discovered cell (frontier or explored) to its arena node in this
// direction's parent tree.
type wave struct {
	queue    []int
	seen     map[grid.Cell]int
	explored *exploredSet
}

func newWave(root grid.Cell, rootIdx int) *wave {
	return &wave{
		queue:    []int{rootIdx},
		seen:     map[grid.Cell]int{root: rootIdx},
		explored: newExploredSet(),
	}
}

// runBidirectional grows two breadth-first waves, one from start and
// one from target, alternating a single expansion step per side each
// round. The junction is detected at neighbor-generation time: the
// first generated cell the opposite wave has already seen (explored or
// frontier) joins the two parent chains. Catching the intersection a
// wave-level earlier than a dequeue test keeps the joined route at the
// breadth-first hop count on obstacle-free grids; neither wave is
// cost-aware, so the junction is still not the cheapest meeting point.
// Complexity: O(W×H) time and memory.
func (e *engine) runBidirectional() (Result, error) {
	a := e.arena
	start, target := e.grid.Start(), e.grid.Target()

	fwd := newWave(start, a.add(start, -1, 0, 0))
	bwd := newWave(target, a.add(target, -1, 0, 0))

	for len(fwd.queue) > 0 && len(bwd.queue) > 0 {
		res, done, err := e.waveStep(fwd, bwd, true)
		if done || err != nil {
			return res, err
		}
		if len(bwd.queue) == 0 {
			break
		}
		res, done, err = e.waveStep(bwd, fwd, false)
		if done || err != nil {
			return res, err
		}
	}

	return e.failure(TerminatedFrontierExhausted), e.emitFailure()
}

// waveStep performs one expansion step for w. forward reports which
// parent tree w grows, so a junction joins the chains in the right
// order. The returned done flag covers success, cancellation, and
// hook aborts; done false with no error means the round continues.
func (e *engine) waveStep(w, other *wave, forward bool) (Result, bool, error) {
	a := e.arena

	if e.checkCancelled() {
		return e.failure(TerminatedCancelled), true, nil
	}

	idx := w.queue[0]
	w.queue = w.queue[1:]
	cur := a.cell(idx)

	// a dynamically blocked cell can neither join nor be expanded
	if e.grid.IsBlocked(cur) {
		return Result{}, false, nil
	}

	blocked := e.injectObstacle(cur)
	w.explored.add(cur)
	e.expanded++

	// first generated cell the other wave has seen wins the junction
	meetIdx, otherIdx := -1, -1
	for _, nb := range e.grid.Neighbors(cur) {
		if _, ok := w.seen[nb.Cell]; ok {
			continue
		}
		nodeIdx := a.add(nb.Cell, idx, a.cost(idx)+nb.Cost, a.depth(idx)+1)
		w.seen[nb.Cell] = nodeIdx
		w.queue = append(w.queue, nodeIdx)
		if oi, ok := other.seen[nb.Cell]; ok && meetIdx == -1 {
			meetIdx, otherIdx = nodeIdx, oi
		}
	}

	if err := e.emitStep(cur, e.biFrontier(w, other, forward), e.biExplored(w, other, forward), blocked); err != nil {
		return e.failure(TerminatedCancelled), true, err
	}

	if meetIdx != -1 {
		fwdIdx, bwdIdx := meetIdx, otherIdx
		if !forward {
			fwdIdx, bwdIdx = otherIdx, meetIdx
		}
		path, err := e.joinWaves(fwdIdx, bwdIdx)
		if err != nil {
			return Result{}, true, err
		}
		res := e.success(path)
		return res, true, e.emitSuccess(a.cell(meetIdx), e.biFrontier(w, other, forward), e.biExplored(w, other, forward), path)
	}

	return Result{}, false, nil
}

// joinWaves reconstructs start→junction from the forward tree and
// junction→target from the reversed backward tree, splicing them at
// the junction cell.
func (e *engine) joinWaves(fwdIdx, bwdIdx int) ([]grid.Cell, error) {
	a := e.arena
	fwdPath, err := a.reconstruct(fwdIdx) // start … junction
	if err != nil {
		return nil, err
	}
	bwdPath, err := a.reconstruct(bwdIdx) // target … junction
	if err != nil {
		return nil, err
	}
	joined := make([]grid.Cell, 0, len(fwdPath)+len(bwdPath)-1)
	joined = append(joined, fwdPath...)
	for i := len(bwdPath) - 2; i >= 0; i-- {
		joined = append(joined, bwdPath[i])
	}

	return joined, nil
}

// biFrontier snapshots both frontiers, forward wave first.
func (e *engine) biFrontier(w, other *wave, forward bool) []grid.Cell {
	f, b := w, other
	if !forward {
		f, b = other, w
	}
	out := e.arena.cellsOf(f.queue)

	return append(out, e.arena.cellsOf(b.queue)...)
}

// biExplored snapshots both explored sets in expansion order,
// forward wave first.
func (e *engine) biExplored(w, other *wave, forward bool) []grid.Cell {
	f, b := w, other
	if !forward {
		f, b = other, w
	}
	out := make([]grid.Cell, 0, len(f.explored.order)+len(b.explored.order))
	out = append(out, f.explored.order...)

	return append(out, b.explored.order...)
}
