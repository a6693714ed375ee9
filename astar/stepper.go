package astar

import (
	"container/heap"

	"github.com/pdrpinto/gridsearch/internal/path"
)

// StepSnapshot exposes the per-iteration state of the search.
type StepSnapshot struct {
	Current      Cell
	StepIndex    int
	FrontierSize int
	ClosedSize   int
	Done         bool
	Found        bool
	Path         []Cell
	TotalCost    int
}

// Stepper runs the search one expansion at a time.
type Stepper struct {
	grid      Grid
	goal      Cell
	heuristic Heuristic

	openSet   PriorityQueue
	closedSet map[Cell]bool
	sequence  uint64

	stepCount int
	current   Cell
	done      bool
	result    Result
}

// NewStepper validates the input and seeds the frontier with the start cell.
func NewStepper(grid Grid, startNode, goalNode Cell, options ...Option) (*Stepper, error) {
	if err := validate(grid, startNode, goalNode); err != nil {
		return nil, err
	}

	opts := Options{Heuristic: Manhattan}
	for _, o := range options {
		o(&opts)
	}

	s := &Stepper{
		grid:      grid,
		goal:      goalNode,
		heuristic: opts.Heuristic,
		openSet:   make(PriorityQueue, 0),
		closedSet: make(map[Cell]bool),
	}
	heap.Init(&s.openSet)
	s.push(startNode, 0, opts.Heuristic(startNode, goalNode), []Cell{startNode})
	return s, nil
}

func (s *Stepper) push(node Cell, g, f int, p []Cell) {
	heap.Push(&s.openSet, &PriorityQueueItem{
		Node:     node,
		GScore:   g,
		FCost:    f,
		Sequence: s.sequence,
		Path:     p,
	})
	s.sequence++
}

// Step pops entries until one cell is expanded, the goal is reached or the
// frontier runs dry. Closed cells popped on the way are discarded without
// counting as a step. Once Done is reported every further call returns the
// final snapshot again.
func (s *Stepper) Step() StepSnapshot {
	for !s.done {
		if s.openSet.Len() == 0 {
			s.done = true
			break
		}

		currentItem := heap.Pop(&s.openSet).(*PriorityQueueItem)
		current := currentItem.Node
		s.current = current

		// Goal check
		if current == s.goal {
			s.stepCount++
			s.done = true
			s.result = Result{
				Path:          currentItem.Path,
				TotalCost:     currentItem.GScore,
				ExpandedNodes: len(s.closedSet) + 1,
				Found:         true,
			}
			return s.snapshot()
		}

		// Skip if already closed
		if s.closedSet[current] {
			continue
		}
		s.closedSet[current] = true
		s.stepCount++

		for _, p := range expandNeighbors(s.grid, current, currentItem.GScore, s.goal, s.heuristic, s.closedSet) {
			s.push(p.ToNode, p.GScore, p.FCost, path.Extend(currentItem.Path, p.ToNode))
		}
		return s.snapshot()
	}

	if !s.result.Found {
		s.result.ExpandedNodes = len(s.closedSet)
	}
	return s.snapshot()
}

// Result returns the outcome so far. It is final once a snapshot reports Done.
func (s *Stepper) Result() Result {
	return s.result
}

func (s *Stepper) snapshot() StepSnapshot {
	return StepSnapshot{
		Current:      s.current,
		StepIndex:    s.stepCount,
		FrontierSize: s.openSet.Len(),
		ClosedSize:   len(s.closedSet),
		Done:         s.done,
		Found:        s.result.Found,
		Path:         s.result.Path,
		TotalCost:    s.result.TotalCost,
	}
}
