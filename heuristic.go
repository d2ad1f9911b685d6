package gridpath

// Heuristic returns the estimated remaining cost from a cell to the goal.
// It must never overestimate the true cost for A* to stay optimal.
type Heuristic func(from, goal Cell) int

// Manhattan is the |dr| + |dc| distance. With unit step cost and no
// diagonal movement it is admissible and consistent.
func Manhattan(from, goal Cell) int {
	return abs(goal.Row-from.Row) + abs(goal.Col-from.Col)
}

// Zero ignores the goal, turning the engine into Dijkstra's algorithm.
func Zero(Cell, Cell) int { return 0 }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
