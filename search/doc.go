// Package search provides six interchangeable uninformed search
// strategies over a grid.Grid — BFS, DFS, UCS, DLS, IDDFS, and
// Bidirectional — behind one contract, with a per-step exploration
// trace for visualization consumers.
//
// What
//
//   - Run(g, algorithm, opts...) executes one strategy and returns a
//     Result: success flag, ordered path (start → target inclusive),
//     total move cost, expansion count, and a TerminationReason.
//   - Every strategy honors the shared invariants: explored cells are
//     never re-expanded, a successful path is an alternating sequence
//     of adjacent unblocked cells, and failure leaves the path empty.
//   - One StepSnapshot per expansion step streams to an OnStep hook
//     and/or accumulates in a Recorder: step index, frontier and
//     explored snapshots, and any obstacle the dynamic injector added
//     during the step.
//   - Dynamic-obstacle mode (WithDynamicObstacles) rolls the injector
//     once per expansion step; the cell being expanded, Start, and
//     Target are never blocked.
//
// Strategy notes
//
//   - BFS: FIFO frontier, goal test on dequeue, first arrival wins the
//     parent pointer — fewest-edges path by level order.
//   - DFS: LIFO frontier with an explored-set loop guard; no
//     optimality guarantee.
//   - UCS: min-cost heap with FIFO tie-break and in-place relaxation
//     of frontier entries; cost-optimal among the six.
//   - DLS: depth-bounded DFS; failure distinguishes
//     TerminatedDepthLimit ("maybe findable deeper") from
//     TerminatedFrontierExhausted ("genuinely unreachable").
//   - IDDFS: DLS at limits 0,1,2,… until success, a frontier-exhausted
//     round, or the MaxDepth cap; rounds restart from scratch to keep
//     frontier memory bounded by depth.
//   - Bidirectional: two alternating BFS waves; the junction is the
//     first generated cell the opposite wave has already seen, which
//     keeps the joined route at the breadth-first hop count on
//     obstacle-free grids. The junction is not the cheapest meeting
//     point, since neither wave weighs diagonals.
//
// Concurrency
//
//	Execution is single-threaded and synchronous. The OnStep hook is a
//	cooperative suspension point, not concurrency: the consumer runs
//	on the search goroutine and must not mutate grid or frontier
//	state. Cancel between steps via WithContext; a cancelled run
//	reports TerminatedCancelled as data, not as an error.
//
// Errors
//
//   - ErrNilGrid           if the grid pointer is nil.
//   - ErrUnknownAlgorithm  for an Algorithm outside the fixed six.
//   - ErrOptionViolation   for invalid options, or DLS without a limit.
//   - ErrBrokenChain       if path reconstruction detects a cycle —
//     an engine bug, never an expected outcome.
//   - Wrapped OnStep hook errors abort the run as cancelled.
//
// Complexity (W×H = cell count)
//
//   - BFS/DFS/DLS/Bidirectional: O(W×H) time, O(W×H) memory.
//   - UCS: O(W×H log(W×H)) time.
//   - IDDFS: O(D·W×H) time over D deepening rounds, O(D) frontier
//     memory per round.
package search
