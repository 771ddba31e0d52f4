// Package pathfinder is a grid pathfinding engine for uninformed
// search: six interchangeable strategies over a rectangular grid with
// static walls and optional mid-run dynamic obstacles, exposing a
// step-by-step exploration trace for visualization.
//
// 🚀 What is PathFinder?
//
//	A small, deterministic library that brings together:
//		• Grid model: walls, start/target, 8-directional moves with √2
//		  diagonals and a corner-cutting prohibition
//		• Strategies: BFS, DFS, UCS, DLS, IDDFS, Bidirectional
//		• Dynamic obstacles: per-step probabilistic blocking that never
//		  touches start, target, or the cell being expanded
//		• Tracing: one snapshot per expansion step (frontier, explored,
//		  newly blocked cell) for any rendering consumer
//
// ✨ Why choose PathFinder?
//
//   - Deterministic – fixed neighbor order, seeded randomness,
//     reproducible traces
//   - Honest outcomes – "no path", "depth limit", and "cancelled" are
//     data in the Result, not errors
//   - Pure Go – no cgo, no hidden deps
//
// Everything lives in two subpackages:
//
//	grid/   — the environment: cells, walls, costs, dynamic obstacles
//	search/ — the six strategies, options, results, and the trace
//
// Quick ASCII example, a 3×3 grid with two walls:
//
//	S . .
//	# # .
//	. . T
//
//	search.Run(g, search.BFS) threads S → (0,1) → (0,2) → (1,2) → T
//	around the wall row, refusing to cut the corner past (1,1).
//
// Rendering, animation, and report export are deliberately out of
// scope: consume the StepSnapshot stream and draw it however you like.
package pathfinder
