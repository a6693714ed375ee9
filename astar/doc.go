// Package astar provides an A* search over weighted grid mazes.
//
// It exposes two main entry points:
//
//   - Search: run the algorithm to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive tracing or debugging tools.
//
// The grid is an implicit graph: neighbors are computed on demand from the
// four orthogonal offsets, and the search only needs the Grid capability
// interface (dimensions, symbol lookup, wall test and entry cost).
//
// The frontier may hold several entries for the same cell. Duplicates are
// discarded when popped, never when pushed. Entries are ordered by estimated
// total cost, then by accumulated cost, then by insertion order.
package astar
