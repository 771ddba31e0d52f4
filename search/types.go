package search

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"github.com/zobiamughal378-dev/PathFinder/grid"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed to Run.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrUnknownAlgorithm is returned for an Algorithm value outside the
	// six supported strategies.
	ErrUnknownAlgorithm = errors.New("search: unknown algorithm")

	// ErrOptionViolation is returned when an invalid Option is supplied,
	// or when DLS runs without a depth limit.
	ErrOptionViolation = errors.New("search: invalid option supplied")

	// ErrBrokenChain signals a cycle in the parent chain during path
	// reconstruction. It indicates an engine bug, never a caller mistake.
	ErrBrokenChain = errors.New("search: broken parent chain")
)

// Algorithm selects one of the six uninformed search strategies.
type Algorithm int

const (
	// BFS is breadth-first search over a FIFO frontier.
	BFS Algorithm = iota
	// DFS is depth-first search over a LIFO frontier.
	DFS
	// UCS is uniform-cost search over a min-cost priority frontier.
	UCS
	// DLS is depth-limited DFS; requires WithDepthLimit.
	DLS
	// IDDFS is iterative-deepening DFS; honors WithMaxDepth.
	IDDFS
	// Bidirectional runs two alternating breadth-first waves from start
	// and target and joins them at the first common cell.
	Bidirectional
)

// String returns the conventional short name of the algorithm.
func (a Algorithm) String() string {
	switch a {
	case BFS:
		return "BFS"
	case DFS:
		return "DFS"
	case UCS:
		return "UCS"
	case DLS:
		return "DLS"
	case IDDFS:
		return "IDDFS"
	case Bidirectional:
		return "Bidirectional"
	default:
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
}

// TerminationReason is the categorical outcome of a run. Unsuccessful
// outcomes are data, not errors: "no path found" is an expected,
// testable result.
type TerminationReason int

const (
	// TerminatedFound: the target was expanded and a path exists.
	TerminatedFound TerminationReason = iota
	// TerminatedFrontierExhausted: the reachable set was consumed without
	// meeting the target. This also covers an unreachable target, which
	// an uninformed search observes only as frontier exhaustion.
	TerminatedFrontierExhausted
	// TerminatedDepthLimit: a depth-limited run pruned at least one node
	// at its limit, so a deeper search might still succeed.
	TerminatedDepthLimit
	// TerminatedCancelled: the caller aborted the run between steps.
	TerminatedCancelled
)

// String returns a stable label for the termination reason.
func (r TerminationReason) String() string {
	switch r {
	case TerminatedFound:
		return "found"
	case TerminatedFrontierExhausted:
		return "frontier-exhausted"
	case TerminatedDepthLimit:
		return "depth-limit-exceeded"
	case TerminatedCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("TerminationReason(%d)", int(r))
	}
}

// Result holds the outcome of one strategy invocation.
//   - Path is ordered start → target inclusive; empty on failure.
//   - TotalCost sums the move costs along Path (0 on failure).
//   - Expanded counts expansion steps performed.
type Result struct {
	Success   bool
	Path      []grid.Cell
	TotalCost float64
	Expanded  int
	Reason    TerminationReason
}

// Option configures a run via functional arguments. An invalid Option
// (negative depth, probability outside [0,1]) is recorded internally
// and surfaced as ErrOptionViolation when Run is invoked.
type Option func(*Options)

// Options holds parameters and callbacks customizing a run.
type Options struct {
	// Ctx allows cancellation between expansion steps. A cancelled run
	// reports TerminatedCancelled rather than an error.
	Ctx context.Context

	// DepthLimit bounds DLS expansion depth. Required for DLS; a
	// negative value means unset. Ignored by the other strategies.
	DepthLimit int

	// MaxDepth caps the deepening of IDDFS. 0 means no cap: IDDFS keeps
	// deepening until some limit exhausts the frontier without pruning.
	MaxDepth int

	// Dynamic enables obstacle injection once per expansion step.
	Dynamic bool

	// ObstacleProbability is the per-step injection probability.
	ObstacleProbability float64

	// Rand drives obstacle injection. Nil defaults to a fixed seed so
	// repeated runs reproduce the same obstacle sequence.
	Rand *rand.Rand

	// OnStep is invoked with a snapshot after every expansion step — the
	// cooperative handoff to a visualization consumer. The consumer must
	// not mutate the grid during the call. Returning an error aborts the
	// run as cancelled and propagates the error.
	OnStep func(StepSnapshot) error

	// Recorder, if set, accumulates every snapshot for later replay.
	Recorder *Recorder

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults: background
// context, no depth limit (DepthLimit == -1, MaxDepth == 0), dynamic
// obstacles disabled, no hooks, no recorder.
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		DepthLimit: -1,
		MaxDepth:   0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDepthLimit bounds DLS at depth d (nodes at depth d are goal-
// tested but not expanded). Negative d is invalid.
func WithDepthLimit(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: DepthLimit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithMaxDepth caps IDDFS deepening at limit d.
//
//	d > 0: deepen through limits 0..d
//	d == 0: explicit no cap (deepen until the frontier exhausts)
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithDynamicObstacles enables per-step obstacle injection with the
// given probability. Probability 0 keeps injection enabled but inert:
// the run is bit-for-bit identical to one with injection disabled.
func WithDynamicObstacles(probability float64) Option {
	return func(o *Options) {
		if probability < 0 || probability > 1 {
			o.err = fmt.Errorf("%w: obstacle probability %v outside [0,1]", ErrOptionViolation, probability)
			return
		}
		o.Dynamic = true
		o.ObstacleProbability = probability
	}
}

// WithRandSource sets the random source driving obstacle injection.
func WithRandSource(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.Rand = rng
		}
	}
}

// WithOnStep registers the per-step snapshot hook; returning an error
// from the hook aborts the run as cancelled.
func WithOnStep(fn func(StepSnapshot) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithRecorder accumulates every step snapshot into rec.
func WithRecorder(rec *Recorder) Option {
	return func(o *Options) {
		if rec != nil {
			o.Recorder = rec
		}
	}
}
