// Package grid provides the environment model for uninformed grid
// pathfinding: a rectangular cell matrix with static walls, a unique
// start and target, 8-directional movement, and optional dynamic
// obstacles that appear while a search runs.
//
// What
//
//   - Cell: a (row, col) coordinate; its Status lives in the Grid.
//   - Grid: fixed width×height status table, immutable in shape;
//     exactly one Start and one Target, never on a Wall.
//   - Neighbors: up to eight (cell, cost) candidates in fixed
//     clockwise order starting at Up; orthogonal steps cost 1,
//     diagonal steps cost √2.
//   - Corner-cutting rule: a diagonal move is rejected when either
//     flanking orthogonal cell is blocked, so paths never slip
//     between two touching obstacles.
//   - Injector: per-step probabilistic conversion of one Free cell
//     into a DynamicObstacle, sourced from a caller-seeded RNG.
//
// Why
//
//   - One live environment shared by all search strategies: the
//     neighbor function always reflects current obstacle status, so
//     strategies need no special handling when the world changes
//     mid-run.
//   - Deterministic neighbor order makes every traversal, trace, and
//     test reproducible.
//
// Determinism
//
//	Neighbor enumeration follows a fixed offset table, and the
//	Injector draws only from its own rand.Source. Equal seeds yield
//	bit-identical runs; probability 0 never touches the source.
//
// Errors
//
//   - ErrEmptyGrid        if dimensions cannot host a search.
//   - ErrOutOfBounds      if a start/target/wall cell lies outside.
//   - ErrInvalidMutation  if construction or blocking is illegal.
//   - ErrBadProbability   if an injection probability is outside [0,1].
//
// Complexity (W = width, H = height)
//
//   - Neighbors, IsBlocked, StatusAt: O(1)
//   - New, FreeCells: O(W×H)
package grid
