package astar

// expansion is a proposed frontier entry for a neighbor of the cell being expanded.
type expansion struct {
	ToNode Cell
	GScore int
	FCost  int
}

// expandNeighbors computes the proposals for every passable, unclosed
// neighbor of from, in offset order.
func expandNeighbors(
	grid Grid,
	from Cell,
	currentGScore int,
	goal Cell,
	heuristic Heuristic,
	closed map[Cell]bool,
) []expansion {
	proposals := make([]expansion, 0, len(offsets))
	for _, offset := range offsets {
		next := Cell{from.Row + offset.Row, from.Col + offset.Col}
		if !inBounds(grid, next) {
			continue
		}
		symbol := grid.SymbolAt(next.Row, next.Col)
		if grid.IsWall(symbol) {
			continue
		}
		if closed[next] {
			continue
		}
		tentativeG := currentGScore + grid.CostOf(symbol)
		proposals = append(proposals, expansion{
			ToNode: next,
			GScore: tentativeG,
			FCost:  tentativeG + heuristic(next, goal),
		})
	}
	return proposals
}
