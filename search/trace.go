package search

import "github.com/zobiamughal378-dev/PathFinder/grid"

// StepSnapshot exposes the per-step state of a search for a
// visualization consumer. Slices are copies owned by the receiver;
// mutating them cannot affect the running search.
type StepSnapshot struct {
	// StepIndex counts expansion steps from 1. The terminal snapshot of
	// a run repeats the last step's index with Done set.
	StepIndex int

	// Current is the cell expanded at this step (zero value on the
	// terminal exhausted snapshot).
	Current grid.Cell

	// Frontier lists cells discovered but not yet expanded, in frontier
	// order for queue/stack strategies and heap order for UCS.
	Frontier []grid.Cell

	// Explored lists expanded cells in expansion order.
	Explored []grid.Cell

	// NewlyBlocked points at the cell the obstacle injector blocked
	// during this step, if any.
	NewlyBlocked *grid.Cell

	// Done marks the terminal snapshot of the run.
	Done bool

	// Found mirrors Result.Success on the terminal snapshot.
	Found bool

	// Path carries the reconstructed route on a successful terminal
	// snapshot; nil otherwise.
	Path []grid.Cell
}

// Recorder buffers the ordered snapshot stream of a single run.
// A fresh run needs a fresh Recorder: the stream is finite and not
// restartable.
type Recorder struct {
	steps []StepSnapshot
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// record appends one snapshot.
func (r *Recorder) record(s StepSnapshot) {
	r.steps = append(r.steps, s)
}

// Len returns the number of recorded snapshots.
func (r *Recorder) Len() int { return len(r.steps) }

// Steps returns the recorded snapshots in emission order. The backing
// slice belongs to the Recorder; callers should not modify it.
func (r *Recorder) Steps() []StepSnapshot { return r.steps }

// Last returns the final snapshot and true once at least one step was
// recorded.
func (r *Recorder) Last() (StepSnapshot, bool) {
	if len(r.steps) == 0 {
		return StepSnapshot{}, false
	}

	return r.steps[len(r.steps)-1], true
}

// copyCells clones a cell slice for a snapshot.
func copyCells(cells []grid.Cell) []grid.Cell {
	if cells == nil {
		return nil
	}
	out := make([]grid.Cell, len(cells))
	copy(out, cells)

	return out
}
