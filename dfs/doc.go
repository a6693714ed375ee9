// Package dfs implements an uninformed depth-first search over any state
// space that can test for a goal and list successor states.
//
// The search keeps a last-in-first-out stack of (state, path) entries and a
// closed set checked when an entry is popped. Successors are pushed even when
// already closed; stale entries are dropped on pop. The first goal reached is
// returned, which is not necessarily the shortest path: the result depends on
// the order in which the space lists successors. Because the stack is LIFO,
// the successor listed last is explored first.
//
// There is no depth or expansion limit. A search over an infinite space
// without a reachable goal does not return.
package dfs
