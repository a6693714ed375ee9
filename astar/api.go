package astar

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid is returned when the grid has no rows or no columns.
	ErrEmptyGrid = errors.New("empty grid")
	// ErrOutOfBounds is returned when the start or goal lies outside the grid.
	ErrOutOfBounds = errors.New("cell out of bounds")
)

// Result contains the outcome of a search.
// When no path exists Found is false, Path is nil and TotalCost is 0.
// ExpandedNodes counts every cell popped and expanded, the goal included.
type Result struct {
	Path          []Cell `json:"path" yaml:"path"`
	TotalCost     int    `json:"total_cost" yaml:"total_cost"`
	ExpandedNodes int    `json:"expanded_nodes" yaml:"expanded_nodes"`
	Found         bool   `json:"found" yaml:"found"`
}

// Options defines parameters for the search.
type Options struct {
	Heuristic Heuristic
}

// Option is a function that modifies Options.
type Option func(*Options)

// WithHeuristic replaces the Manhattan heuristic. The replacement must never
// overestimate the remaining cost or the returned path may not be optimal.
func WithHeuristic(heuristic Heuristic) Option {
	return func(options *Options) { options.Heuristic = heuristic }
}

// Search executes the A* search from start to goal.
//
// The returned error is non-nil only for malformed input. An unreachable goal
// is reported through Result.Found.
func Search(grid Grid, start, goal Cell, options ...Option) (Result, error) {
	stepper, err := NewStepper(grid, start, goal, options...)
	if err != nil {
		return Result{}, err
	}
	for {
		if snapshot := stepper.Step(); snapshot.Done {
			return stepper.Result(), nil
		}
	}
}

func validate(grid Grid, start, goal Cell) error {
	rows, cols := grid.Dimensions()
	if rows <= 0 || cols <= 0 {
		return ErrEmptyGrid
	}
	if !inBounds(grid, start) {
		return fmt.Errorf("start %v in %dx%d grid: %w", start, rows, cols, ErrOutOfBounds)
	}
	if !inBounds(grid, goal) {
		return fmt.Errorf("goal %v in %dx%d grid: %w", goal, rows, cols, ErrOutOfBounds)
	}
	return nil
}
