package dfs

import "github.com/pdrpinto/gridsearch/internal/path"

// Space is a state space seen as a black box.
type Space[StateType comparable] interface {
	IsGoal(state StateType) bool
	Next(state StateType) []StateType
}

// Funcs adapts a pair of functions to Space.
type Funcs[StateType comparable] struct {
	Goal       func(StateType) bool
	Successors func(StateType) []StateType
}

func (f Funcs[StateType]) IsGoal(state StateType) bool      { return f.Goal(state) }
func (f Funcs[StateType]) Next(state StateType) []StateType { return f.Successors(state) }

// Result contains the outcome of a search.
// When no goal is reachable Found is false and Path is nil.
type Result[StateType comparable] struct {
	Path     []StateType `json:"path" yaml:"path"`
	Found    bool        `json:"found" yaml:"found"`
	Expanded int         `json:"expanded" yaml:"expanded"`
	Pushed   int         `json:"pushed" yaml:"pushed"`
}

// VisitFunc is called once per expanded state, before its goal test.
// depth is the number of moves from the start.
type VisitFunc[StateType comparable] func(state StateType, depth int)

// Options defines parameters for the search.
type Options[StateType comparable] struct {
	OnVisit VisitFunc[StateType]
}

// Option is a function that modifies Options.
type Option[StateType comparable] func(*Options[StateType])

// WithVisit registers a hook observing every expansion.
func WithVisit[StateType comparable](fn VisitFunc[StateType]) Option[StateType] {
	return func(options *Options[StateType]) { options.OnVisit = fn }
}

type entry[StateType comparable] struct {
	state StateType
	path  *path.Node[StateType]
}

// Search runs a depth-first search from start and returns the first path
// found to a goal state.
func Search[StateType comparable](space Space[StateType], start StateType, options ...Option[StateType]) Result[StateType] {
	var opts Options[StateType]
	for _, option := range options {
		option(&opts)
	}

	var result Result[StateType]
	closed := make(map[StateType]struct{})
	stack := []entry[StateType]{{state: start, path: path.Root(start)}}
	result.Pushed = 1

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack[len(stack)-1] = entry[StateType]{}
		stack = stack[:len(stack)-1]

		if _, seen := closed[top.state]; seen {
			continue
		}
		closed[top.state] = struct{}{}
		result.Expanded++

		if opts.OnVisit != nil {
			opts.OnVisit(top.state, top.path.Depth())
		}

		if space.IsGoal(top.state) {
			result.Path = top.path.Slice()
			result.Found = true
			return result
		}

		for _, next := range space.Next(top.state) {
			stack = append(stack, entry[StateType]{state: next, path: top.path.Push(next)})
			result.Pushed++
		}
	}
	return result
}
