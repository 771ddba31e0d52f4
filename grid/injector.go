package grid

import (
	"fmt"
	"math/rand"
)

// Injector implements the dynamic-obstacle policy: once per expansion
// step it may convert one Free cell into a DynamicObstacle, with a
// fixed probability per invocation. The choice among candidate cells
// is uniform over the grid's Free cells minus the excluded set.
//
// Determinism: all randomness flows through the supplied rand source,
// so a seeded source reproduces the exact obstacle sequence.
type Injector struct {
	probability float64
	rng         *rand.Rand
}

// NewInjector builds an Injector firing with the given probability per
// call. A nil rng falls back to a source seeded with 1, which keeps
// repeated runs reproducible by default.
// Returns ErrBadProbability unless probability lies in [0,1].
func NewInjector(probability float64, rng *rand.Rand) (*Injector, error) {
	if probability < 0 || probability > 1 {
		return nil, fmt.Errorf("%w: %v", ErrBadProbability, probability)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(1))
	}

	return &Injector{probability: probability, rng: rng}, nil
}

// Probability returns the per-step firing probability.
func (in *Injector) Probability() float64 { return in.probability }

// MaybeBlock rolls the injection dice once and, on a hit, blocks one
// uniformly chosen Free cell of g that is not in excluded. Callers
// pass the node about to be expanded in excluded; Start and Target
// are never candidates since their status is not Free. Returns the
// newly blocked cell and true when an obstacle appeared.
//
// A zero probability returns immediately without touching the rand
// source, so probability 0 is indistinguishable from no injector.
// Complexity: O(W×H) on a hit, O(1) otherwise.
func (in *Injector) MaybeBlock(g *Grid, excluded ...Cell) (Cell, bool) {
	if in == nil || in.probability == 0 {
		return Cell{}, false
	}
	if in.rng.Float64() >= in.probability {
		return Cell{}, false
	}
	candidates := g.FreeCells(excluded...)
	if len(candidates) == 0 {
		return Cell{}, false
	}
	pick := candidates[in.rng.Intn(len(candidates))]
	if err := g.MarkDynamicObstacle(pick); err != nil {
		// candidates are Free by construction; a failure here means the
		// grid mutated underneath us
		return Cell{}, false
	}

	return pick, true
}
