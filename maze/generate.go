package maze

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

var (
	// ErrInvalidSize is returned for mazes smaller than 2x2.
	ErrInvalidSize = errors.New("maze height and width must be at least 2")
	// ErrInvalidDifficulty is returned for a difficulty outside [0, 1].
	ErrInvalidDifficulty = errors.New("difficulty must be between 0.0 and 1.0")
)

const (
	// maxLoopChance is the chance of knocking down a separating wall at difficulty 0.
	maxLoopChance = 0.25
	// maxWeightChance is the chance of weighting an open cell at difficulty 1.
	maxWeightChance = 0.35
)

type carve struct {
	row, col       int
	viaRow, viaCol int
}

// Generate builds a maze with randomized Prim. Rooms sit on even coordinates
// and are joined through the odd cells between them, so every open cell is
// reachable from every other.
//
// With multipath set, walls separating two open cells are knocked down with a
// chance that falls as difficulty rises, creating loops. Difficulty also sets
// the share of open cells turned into weighted digit cells. The top and bottom
// rows are never weighted so the start and goal scans land on clear cells.
func Generate(height, width int, multipath bool, difficulty float64, rng *rand.Rand) (*Maze, error) {
	if height < 2 || width < 2 {
		return nil, fmt.Errorf("generate %dx%d: %w", height, width, ErrInvalidSize)
	}
	if difficulty < 0 || difficulty > 1 {
		return nil, fmt.Errorf("generate with difficulty %v: %w", difficulty, ErrInvalidDifficulty)
	}

	cells := make([][]rune, height)
	for r := range cells {
		cells[r] = make([]rune, width)
		for c := range cells[r] {
			cells[r][c] = Wall
		}
	}
	g := &generator{cells: cells, height: height, width: width, rng: rng}

	g.prim()
	g.openEdges()
	if multipath {
		g.knockDown((1 - difficulty) * maxLoopChance)
	}
	g.weigh(difficulty * maxWeightChance)

	return &Maze{cells: cells}, nil
}

type generator struct {
	cells         [][]rune
	height, width int
	rng           *rand.Rand
}

func (g *generator) open(row, col int) bool {
	return row >= 0 && row < g.height && col >= 0 && col < g.width && g.cells[row][col] != Wall
}

func (g *generator) prim() {
	g.cells[0][0] = Clear
	frontier := g.carves(0, 0, nil)
	for len(frontier) > 0 {
		i := g.rng.IntN(len(frontier))
		next := frontier[i]
		frontier[i] = frontier[len(frontier)-1]
		frontier = frontier[:len(frontier)-1]

		if g.cells[next.row][next.col] != Wall {
			continue
		}
		g.cells[next.viaRow][next.viaCol] = Clear
		g.cells[next.row][next.col] = Clear
		frontier = g.carves(next.row, next.col, frontier)
	}
}

// carves appends the unopened rooms two steps away from (row, col).
func (g *generator) carves(row, col int, frontier []carve) []carve {
	for _, d := range [...][2]int{{-2, 0}, {2, 0}, {0, -2}, {0, 2}} {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= g.height || c < 0 || c >= g.width || g.cells[r][c] != Wall {
			continue
		}
		frontier = append(frontier, carve{row: r, col: c, viaRow: row + d[0]/2, viaCol: col + d[1]/2})
	}
	return frontier
}

// openEdges opens cells of a trailing odd row or column that the room
// lattice leaves sealed. For an even height the rightmost candidate of the
// bottom row is always opened so the bottom row has a clear cell.
func (g *generator) openEdges() {
	if g.height%2 == 0 {
		last := g.height - 1
		guaranteed := false
		for c := g.width - 1; c >= 0; c-- {
			if !g.open(last-1, c) {
				continue
			}
			if !guaranteed || g.rng.Float64() < 0.5 {
				g.cells[last][c] = Clear
				guaranteed = true
			}
		}
	}
	if g.width%2 == 0 {
		last := g.width - 1
		for r := 0; r < g.height; r++ {
			if g.open(r, last-1) && g.rng.Float64() < 0.5 {
				g.cells[r][last] = Clear
			}
		}
	}
}

func (g *generator) knockDown(chance float64) {
	for r := 0; r < g.height; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] != Wall {
				continue
			}
			separates := (g.open(r, c-1) && g.open(r, c+1)) || (g.open(r-1, c) && g.open(r+1, c))
			if separates && g.rng.Float64() < chance {
				g.cells[r][c] = Clear
			}
		}
	}
}

func (g *generator) weigh(chance float64) {
	for r := 1; r < g.height-1; r++ {
		for c := 0; c < g.width; c++ {
			if g.cells[r][c] == Clear && g.rng.Float64() < chance {
				g.cells[r][c] = rune('1' + g.rng.IntN(9))
			}
		}
	}
}
