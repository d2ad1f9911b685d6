// Package bfs is a breadth-first shortest-distance oracle for uniform-cost
// grids. With unit step cost BFS distance equals shortest-path cost, which
// makes it an independent cross-check for the priority-queue engine.
package bfs

import "github.com/pdrpinto/gridpath"

// Distances returns the step count from start to every reachable cell.
func Distances(g *gridpath.Grid, start gridpath.Cell) map[gridpath.Cell]int {
	dist := map[gridpath.Cell]int{start: 0}
	queue := []gridpath.Cell{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, neighbor := range g.Neighbors(current) {
			if _, seen := dist[neighbor]; seen {
				continue
			}
			dist[neighbor] = dist[current] + 1
			queue = append(queue, neighbor)
		}
	}
	return dist
}

// Cost returns the shortest-path cost from start to goal, or -1 when the
// goal is unreachable.
func Cost(g *gridpath.Grid, start, goal gridpath.Cell) int {
	if cost, ok := Distances(g, start)[goal]; ok {
		return cost
	}
	return -1
}
