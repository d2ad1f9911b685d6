package gridpath

// reconstructPath walks predecessor links from goal back to start and
// returns the path in start-to-goal order. A missing link yields
// ErrUnreachable; that cannot happen for a goal popped by the engine.
func reconstructPath(cameFrom map[Cell]Cell, start, goal Cell) ([]Cell, error) {
	path := []Cell{goal}
	current := goal
	for current != start {
		previous, ok := cameFrom[current]
		if !ok {
			return nil, ErrUnreachable
		}
		path = append(path, previous)
		current = previous
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, nil
}
