// Package gridpath computes shortest paths on 2-D grids with Dijkstra's
// algorithm and A*, implemented as one priority-queue-driven engine.
//
// It exposes two main entry points:
//
//   - Find: run the search to completion and get a Result.
//   - New + Step: iterate the search one expansion at a time to drive UIs or
//     debugging tools, with an ordered frontier snapshot after every step.
//
// Both algorithms share a single loop parametrized by the heuristic: f = g
// for Dijkstra, f = g + Manhattan for A*. Ties between equal priorities are
// broken by insertion order, so the visitation sequence is deterministic and
// reproducible across runs.
package gridpath
