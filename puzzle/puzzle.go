// Package puzzle is the sliding-tile domain searched by the dfs package.
//
// A Board lists tiles in row-major order, one character per cell, with '_'
// for the blank. Boards are 2x2 (the three puzzle), 3x3 or 4x4.
package puzzle

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
	"strings"

	"github.com/pdrpinto/gridsearch/dfs"
)

// Blank marks the empty cell.
const Blank = '_'

const tiles = "123456789ABCDEF"

// Supported board sizes.
const (
	MinSize = 2
	MaxSize = 4
)

var (
	// ErrInvalidSize is returned for sizes outside MinSize..MaxSize.
	ErrInvalidSize = errors.New("puzzle size must be between 2 and 4")
	// ErrInvalidBoard is returned for text that is not a permutation of a goal board.
	ErrInvalidBoard = errors.New("invalid puzzle board")
)

// Board is a puzzle configuration.
type Board string

// Goal is the solved board: tiles in order with the blank last.
func Goal(size int) Board {
	return Board(tiles[:size*size-1] + string(Blank))
}

// Handout is the classroom start state for the three puzzle.
func Handout() Board {
	return "31_2"
}

// ParseBoard reads a board, ignoring whitespace and '|' row separators.
func ParseBoard(text string) (Board, error) {
	compact := strings.Map(func(r rune) rune {
		if r == '|' || r == ' ' || r == '\n' || r == '\t' {
			return -1
		}
		return r
	}, strings.ToUpper(text))

	size := int(math.Sqrt(float64(len(compact))))
	if size < MinSize || size > MaxSize || size*size != len(compact) {
		return "", fmt.Errorf("board %q has %d cells: %w", text, len(compact), ErrInvalidBoard)
	}
	goal := Goal(size)
	for _, r := range goal {
		if strings.Count(compact, string(r)) != 1 {
			return "", fmt.Errorf("board %q must hold each of %q once: %w", text, goal, ErrInvalidBoard)
		}
	}
	return Board(compact), nil
}

// Size is the board width.
func (b Board) Size() int {
	return int(math.Sqrt(float64(len(b))))
}

func (b Board) blank() int {
	return strings.IndexByte(string(b), Blank)
}

// Format draws the board as rows of space separated cells.
func (b Board) Format() string {
	size := b.Size()
	var out strings.Builder
	for i := 0; i < len(b); i++ {
		switch {
		case i == 0:
		case i%size == 0:
			out.WriteByte('\n')
		default:
			out.WriteByte(' ')
		}
		out.WriteByte(b[i])
	}
	return out.String()
}

// IsSolvable reports whether the goal is reachable from b, using the
// inversion parity rule.
func IsSolvable(b Board) bool {
	inversions := 0
	for i := 0; i < len(b); i++ {
		if b[i] == Blank {
			continue
		}
		for j := i + 1; j < len(b); j++ {
			if b[j] != Blank && tileRank(b[j]) < tileRank(b[i]) {
				inversions++
			}
		}
	}
	size := b.Size()
	if size%2 == 1 {
		return inversions%2 == 0
	}
	rowFromBottom := size - b.blank()/size
	return (inversions+rowFromBottom)%2 == 1
}

func tileRank(tile byte) int {
	return strings.IndexByte(tiles, tile)
}

// Rules implements dfs.Space over boards.
type Rules struct{}

var _ dfs.Space[Board] = Rules{}

// IsGoal reports whether the board is solved.
func (Rules) IsGoal(b Board) bool {
	return b == Goal(b.Size())
}

// Next lists the boards one blank move away, moving the blank up, down, left
// and right in that order.
func (Rules) Next(b Board) []Board {
	size := b.Size()
	blank := b.blank()
	row, col := blank/size, blank%size

	next := make([]Board, 0, 4)
	for _, d := range [...][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}} {
		r, c := row+d[0], col+d[1]
		if r < 0 || r >= size || c < 0 || c >= size {
			continue
		}
		next = append(next, b.swap(blank, r*size+c))
	}
	return next
}

func (b Board) swap(i, j int) Board {
	cells := []byte(b)
	cells[i], cells[j] = cells[j], cells[i]
	return Board(cells)
}

// Solvable scrambles the goal with a random walk of blank moves, so the
// result is always solvable.
func Solvable(size, moves int, rng *rand.Rand) (Board, error) {
	if size < MinSize || size > MaxSize {
		return "", fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}
	board := Goal(size)
	var rules Rules
	for i := 0; i < moves; i++ {
		next := rules.Next(board)
		board = next[rng.IntN(len(next))]
	}
	return board, nil
}

// Random shuffles the cells uniformly. Half of all shuffles are unsolvable.
func Random(size int, rng *rand.Rand) (Board, error) {
	if size < MinSize || size > MaxSize {
		return "", fmt.Errorf("size %d: %w", size, ErrInvalidSize)
	}
	goal := Goal(size)
	cells := make([]byte, len(goal))
	for i, j := range rng.Perm(len(goal)) {
		cells[i] = goal[j]
	}
	return Board(cells), nil
}
