package search

import (
	"fmt"

	"github.com/zobiamughal378-dev/PathFinder/grid"
)

// Run executes the chosen strategy on g, applying any number of
// functional Options, and returns its Result.
//
// Unsuccessful searches are not errors: frontier exhaustion, depth
// limits, and cancellation all arrive as Result.Reason with a nil
// error. Run returns a non-nil error only for invalid input
// (ErrNilGrid, ErrUnknownAlgorithm, ErrOptionViolation), a failing
// OnStep hook, or an internal invariant violation (ErrBrokenChain).
func Run(g *grid.Grid, algo Algorithm, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return Result{}, o.err
	}
	if algo == DLS && o.DepthLimit < 0 {
		return Result{}, fmt.Errorf("%w: DLS requires WithDepthLimit", ErrOptionViolation)
	}

	e, err := newEngine(g, o)
	if err != nil {
		return Result{}, err
	}

	switch algo {
	case BFS:
		return e.runBFS()
	case DFS:
		return e.runDFS()
	case UCS:
		return e.runUCS()
	case DLS:
		return e.runDLS(o.DepthLimit)
	case IDDFS:
		return e.runIDDFS()
	case Bidirectional:
		return e.runBidirectional()
	default:
		return Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, algo)
	}
}

// engine carries the state shared by every strategy for one run:
// the live grid, the node arena, the optional obstacle injector, and
// the trace stream. It is created per invocation and discarded with it.
type engine struct {
	grid     *grid.Grid
	opts     Options
	injector *grid.Injector
	arena    *nodeArena

	steps    int
	expanded int

	// last emitted snapshots, reused for terminal failure frames
	lastFrontier []grid.Cell
	lastExplored []grid.Cell
}

func newEngine(g *grid.Grid, o Options) (*engine, error) {
	e := &engine{
		grid:  g,
		opts:  o,
		arena: newArena(g.Width() * g.Height()),
	}
	if o.Dynamic {
		inj, err := grid.NewInjector(o.ObstacleProbability, o.Rand)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
		}
		e.injector = inj
	}

	return e, nil
}

// checkCancelled polls the run's context once per loop iteration.
func (e *engine) checkCancelled() bool {
	select {
	case <-e.opts.Ctx.Done():
		return true
	default:
		return false
	}
}

// injectObstacle rolls the obstacle injector exactly once for the
// expansion of cur. It runs after the goal test and the skip guards,
// so dequeues that expand nothing never consume a roll. cur is
// excluded alongside Start and Target, so no cell mutates while it is
// being processed.
func (e *engine) injectObstacle(cur grid.Cell) *grid.Cell {
	if e.injector == nil {
		return nil
	}
	if c, ok := e.injector.MaybeBlock(e.grid, cur); ok {
		blocked := c
		return &blocked
	}

	return nil
}

// emit delivers one snapshot to the recorder and the OnStep hook.
func (e *engine) emit(snap StepSnapshot) error {
	if e.opts.Recorder != nil {
		e.opts.Recorder.record(snap)
	}
	if e.opts.OnStep != nil {
		if err := e.opts.OnStep(snap); err != nil {
			return fmt.Errorf("search: OnStep error at step %d: %w", snap.StepIndex, err)
		}
	}

	return nil
}

// emitStep publishes the state after one expansion step.
func (e *engine) emitStep(current grid.Cell, frontier, explored []grid.Cell, blocked *grid.Cell) error {
	e.steps++
	e.lastFrontier = copyCells(frontier)
	e.lastExplored = copyCells(explored)

	return e.emit(StepSnapshot{
		StepIndex:    e.steps,
		Current:      current,
		Frontier:     e.lastFrontier,
		Explored:     e.lastExplored,
		NewlyBlocked: blocked,
	})
}

// emitSuccess publishes the terminal snapshot of a successful run.
func (e *engine) emitSuccess(current grid.Cell, frontier, explored, path []grid.Cell) error {
	return e.emit(StepSnapshot{
		StepIndex: e.steps,
		Current:   current,
		Frontier:  copyCells(frontier),
		Explored:  copyCells(explored),
		Done:      true,
		Found:     true,
		Path:      copyCells(path),
	})
}

// emitFailure publishes the terminal snapshot of an unsuccessful run,
// reusing the state of the last expansion step.
func (e *engine) emitFailure() error {
	return e.emit(StepSnapshot{
		StepIndex: e.steps,
		Frontier:  e.lastFrontier,
		Explored:  e.lastExplored,
		Done:      true,
	})
}

// success assembles the Result of a completed path.
func (e *engine) success(path []grid.Cell) Result {
	return Result{
		Success:   true,
		Path:      path,
		TotalCost: pathCost(path),
		Expanded:  e.expanded,
		Reason:    TerminatedFound,
	}
}

// failure assembles an unsuccessful Result with an empty path.
func (e *engine) failure(reason TerminationReason) Result {
	return Result{Expanded: e.expanded, Reason: reason}
}

// exploredSet tracks expanded cells plus their expansion order for
// trace snapshots. A cell enters at most once per run.
type exploredSet struct {
	members map[grid.Cell]struct{}
	order   []grid.Cell
}

func newExploredSet() *exploredSet {
	return &exploredSet{members: make(map[grid.Cell]struct{})}
}

func (s *exploredSet) add(c grid.Cell) {
	if _, ok := s.members[c]; ok {
		return
	}
	s.members[c] = struct{}{}
	s.order = append(s.order, c)
}

func (s *exploredSet) has(c grid.Cell) bool {
	_, ok := s.members[c]

	return ok
}
