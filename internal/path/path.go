// Package path holds the path bookkeeping shared by the search engines.
package path

// Extend returns a new path made of path followed by next.
// The input slice is never written to, so a path stored in a frontier
// entry stays valid after any number of extensions.
func Extend[StateType any](path []StateType, next StateType) []StateType {
	extended := make([]StateType, len(path), len(path)+1)
	copy(extended, path)
	return append(extended, next)
}

// Valid reports whether every consecutive pair of the path is adjacent.
// Empty and single-state paths are valid.
func Valid[StateType comparable](path []StateType, adjacent func(from, to StateType) bool) bool {
	for i := 1; i < len(path); i++ {
		if !adjacent(path[i-1], path[i]) {
			return false
		}
	}
	return true
}

// Node is one step of a path stored as a parent-linked list. Nodes are never
// modified after creation, so siblings share their common prefix safely and
// extending a path costs O(1) instead of a full copy.
type Node[StateType any] struct {
	state  StateType
	parent *Node[StateType]
	depth  int
}

// Root starts a path at state.
func Root[StateType any](state StateType) *Node[StateType] {
	return &Node[StateType]{state: state}
}

// Push returns a new node extending the path ending at n with next.
func (n *Node[StateType]) Push(next StateType) *Node[StateType] {
	return &Node[StateType]{state: next, parent: n, depth: n.depth + 1}
}

// State is the last state of the path.
func (n *Node[StateType]) State() StateType { return n.state }

// Depth is the number of moves from the root.
func (n *Node[StateType]) Depth() int { return n.depth }

// Slice materialises the path from the root to n.
func (n *Node[StateType]) Slice() []StateType {
	path := make([]StateType, n.depth+1)
	for current := n; current != nil; current = current.parent {
		path[current.depth] = current.state
	}
	return path
}
