package search

// runIDDFS repeatedly invokes depth-limited search with limits
// 0, 1, 2, … and stops at the first success. Re-running from scratch
// each round is intentional: it trades repeated work for frontier
// memory bounded by the current depth. Deepening also stops when a
// round exhausts the frontier without pruning — once the reachable
// set is consumed with no cut, a larger limit cannot grow it — or
// when the limit passes the configured MaxDepth (0 = no cap).
// The trace is one continuous stream across rounds; Expanded
// accumulates over all rounds.
func (e *engine) runIDDFS() (Result, error) {
	for limit := 0; ; limit++ {
		if e.opts.MaxDepth > 0 && limit > e.opts.MaxDepth {
			return e.failure(TerminatedDepthLimit), e.emitFailure()
		}

		res, err := e.depthLimited(limit)
		if err != nil || res.Success || res.Reason == TerminatedCancelled {
			return res, err
		}
		if res.Reason == TerminatedFrontierExhausted {
			return res, e.emitFailure()
		}
		// TerminatedDepthLimit: deepen and retry
	}
}
