// Package maze provides symbol grids for the A* search: parsing, the entry
// cost model, a randomized Prim generator and terminal rendering.
//
// A maze is a rectangle of single-character cells. 'c' is clear, 'w' is a
// wall and a digit d is a clear cell costing 1+d to enter. Every other symbol
// is passable at cost 1.
package maze

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pdrpinto/gridsearch/astar"
)

// Cell symbols.
const (
	Clear    = 'c'
	Wall     = 'w'
	PathMark = '*'
)

var (
	// ErrEmpty is returned for a maze without rows or columns.
	ErrEmpty = errors.New("empty maze")
	// ErrNotRectangular is returned when rows have different lengths.
	ErrNotRectangular = errors.New("maze rows differ in length")
)

// Maze is a rectangular grid of cell symbols. It implements astar.Grid.
type Maze struct {
	cells [][]rune
}

var _ astar.Grid = (*Maze)(nil)

// New builds a maze from rows of symbols. The rows are copied.
func New(rows [][]rune) (*Maze, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmpty
	}
	width := len(rows[0])
	cells := make([][]rune, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, fmt.Errorf("row %d has %d cells, want %d: %w", i, len(row), width, ErrNotRectangular)
		}
		cells[i] = append([]rune(nil), row...)
	}
	return &Maze{cells: cells}, nil
}

// Parse builds a maze from text lines. Spaces are ignored, so both "cwc" and
// the printed form "c w c" are accepted.
func Parse(lines []string) (*Maze, error) {
	rows := make([][]rune, 0, len(lines))
	for _, line := range lines {
		rows = append(rows, []rune(strings.ReplaceAll(line, " ", "")))
	}
	return New(rows)
}

// Dimensions returns the number of rows and columns.
func (m *Maze) Dimensions() (rows, cols int) {
	return len(m.cells), len(m.cells[0])
}

// SymbolAt returns the symbol of an in-bounds cell.
func (m *Maze) SymbolAt(row, col int) rune {
	return m.cells[row][col]
}

// IsWall reports whether the symbol blocks movement.
func (m *Maze) IsWall(symbol rune) bool {
	return symbol == Wall
}

// IsClear reports whether the symbol is the plain clear cell.
func (m *Maze) IsClear(symbol rune) bool {
	return symbol == Clear
}

// CostOf is the cost of entering a cell with the given symbol.
func (m *Maze) CostOf(symbol rune) int {
	return Cost(symbol)
}

// Cost is the entry cost model: 1 for clear cells, 1+d for a digit d and 1
// for anything else. Walls are filtered out before this is consulted.
func Cost(symbol rune) int {
	if symbol >= '0' && symbol <= '9' {
		return 1 + int(symbol-'0')
	}
	return 1
}

// Endpoints returns the default start and goal: the first clear cell of the
// top row and the last clear cell of the bottom row.
func (m *Maze) Endpoints() (start, goal astar.Cell) {
	return astar.Endpoints(m, m.IsClear)
}

// WithPath returns a copy of the maze with every path cell marked.
func (m *Maze) WithPath(path []astar.Cell) *Maze {
	cells := make([][]rune, len(m.cells))
	for i, row := range m.cells {
		cells[i] = append([]rune(nil), row...)
	}
	for _, cell := range path {
		cells[cell.Row][cell.Col] = PathMark
	}
	return &Maze{cells: cells}
}

// Lines returns one string per row.
func (m *Maze) Lines() []string {
	lines := make([]string, len(m.cells))
	for i, row := range m.cells {
		lines[i] = string(row)
	}
	return lines
}

// String prints the maze with one space between cells.
func (m *Maze) String() string {
	var b strings.Builder
	for i, row := range m.cells {
		if i > 0 {
			b.WriteByte('\n')
		}
		for j, symbol := range row {
			if j > 0 {
				b.WriteByte(' ')
			}
			b.WriteRune(symbol)
		}
	}
	return b.String()
}
