package astar

import "fmt"

// Cell is a (row, column) coordinate in a grid.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

func (c Cell) String() string { return fmt.Sprintf("(%d, %d)", c.Row, c.Col) }

// Grid is the capability a maze must offer to be searched.
// SymbolAt is only called with in-bounds coordinates. CostOf must return at
// least 1 for every non-wall symbol: Manhattan stays admissible and the first
// pop of the goal is optimal only under that bound.
type Grid interface {
	Dimensions() (rows, cols int)
	SymbolAt(row, col int) rune
	IsWall(symbol rune) bool
	CostOf(symbol rune) int
}

// Heuristic returns the estimated cost from one cell to another.
type Heuristic func(from, to Cell) int

// Manhattan is the L1 distance between two cells. It never overestimates
// on grids where every step costs at least 1.
func Manhattan(from, to Cell) int {
	return abs(to.Row-from.Row) + abs(to.Col-from.Col)
}

// offsets lists the neighbor directions: up, down, left, right.
var offsets = [...]Cell{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

func inBounds(grid Grid, cell Cell) bool {
	rows, cols := grid.Dimensions()
	return cell.Row >= 0 && cell.Row < rows && cell.Col >= 0 && cell.Col < cols
}

// Endpoints picks default start and goal cells. The start is the first clear
// cell of the top row scanned left to right, falling back to the top-left
// corner. The goal is the first clear cell of the bottom row scanned right to
// left, falling back to the bottom-right corner.
func Endpoints(grid Grid, isClear func(symbol rune) bool) (start, goal Cell) {
	rows, cols := grid.Dimensions()

	start = Cell{0, 0}
	for col := 0; col < cols; col++ {
		if isClear(grid.SymbolAt(0, col)) {
			start = Cell{0, col}
			break
		}
	}

	goal = Cell{rows - 1, cols - 1}
	for col := cols - 1; col >= 0; col-- {
		if isClear(grid.SymbolAt(rows-1, col)) {
			goal = Cell{rows - 1, col}
			break
		}
	}
	return start, goal
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
