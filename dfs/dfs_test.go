package dfs

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridsearch/internal/path"
)

// graph is an explicit adjacency list with a single goal vertex.
type graph struct {
	edges map[string][]string
	goal  string
}

func (g graph) IsGoal(state string) bool    { return state == g.goal }
func (g graph) Next(state string) []string { return g.edges[state] }

func (g graph) adjacent(from, to string) bool { return slices.Contains(g.edges[from], to) }

func TestSearchExplorationOrder(t *testing.T) {
	tests := []struct {
		name  string
		edges map[string][]string
		want  []string
	}{
		{
			name: "goal listed last is explored first",
			edges: map[string][]string{
				"s": {"a", "g"},
				"a": {"g"},
			},
			want: []string{"s", "g"},
		},
		{
			name: "goal listed first is explored last",
			edges: map[string][]string{
				"s": {"g", "a"},
				"a": {"g"},
			},
			want: []string{"s", "a", "g"},
		},
		{
			name: "deep branch wins over shallow goal",
			edges: map[string][]string{
				"s": {"g", "a"},
				"a": {"b"},
				"b": {"c"},
				"c": {"g"},
			},
			want: []string{"s", "a", "b", "c", "g"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Search[string](graph{edges: tt.edges, goal: "g"}, "s")
			require.True(t, result.Found)
			if diff := cmp.Diff(tt.want, result.Path); diff != "" {
				t.Errorf("path mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSearchStartIsGoal(t *testing.T) {
	result := Search[string](graph{edges: map[string][]string{"g": {"a"}}, goal: "g"}, "g")
	require.True(t, result.Found)
	assert.Equal(t, []string{"g"}, result.Path)
	assert.Equal(t, 1, result.Expanded)
	assert.Equal(t, 1, result.Pushed)
}

func TestSearchNoSolution(t *testing.T) {
	space := graph{
		edges: map[string][]string{
			"s": {"a", "b"},
			"a": {"s", "b"},
			"b": {"a", "c"},
			"c": {"s"},
		},
		goal: "g",
	}
	result := Search[string](space, "s")
	assert.False(t, result.Found)
	assert.Nil(t, result.Path)
	assert.Equal(t, 4, result.Expanded)
}

func TestSearchPrunesLazily(t *testing.T) {
	// Every vertex points back at s, so s is pushed again from each of them
	// and dropped when popped.
	space := graph{
		edges: map[string][]string{
			"s": {"a", "b"},
			"a": {"s"},
			"b": {"s"},
		},
		goal: "none",
	}
	result := Search[string](space, "s")
	assert.False(t, result.Found)
	assert.Equal(t, 3, result.Expanded)
	assert.Equal(t, 5, result.Pushed)
}

func TestSearchVisitHook(t *testing.T) {
	space := graph{
		edges: map[string][]string{
			"s": {"a"},
			"a": {"b"},
			"b": {"g"},
		},
		goal: "g",
	}
	depths := map[string]int{}
	var order []string
	result := Search[string](space, "s", WithVisit[string](func(state string, depth int) {
		order = append(order, state)
		depths[state] = depth
	}))
	require.True(t, result.Found)
	assert.Equal(t, []string{"s", "a", "b", "g"}, order)
	assert.Equal(t, map[string]int{"s": 0, "a": 1, "b": 2, "g": 3}, depths)
}

func TestSearchFuncs(t *testing.T) {
	// Counting up by 1 or 3 from 0 until 10; bounded by refusing to pass 10.
	space := Funcs[int]{
		Goal: func(n int) bool { return n == 10 },
		Successors: func(n int) []int {
			var next []int
			for _, step := range []int{1, 3} {
				if n+step <= 10 {
					next = append(next, n+step)
				}
			}
			return next
		},
	}
	result := Search[int](space, 0)
	require.True(t, result.Found)
	assert.Equal(t, []int{0, 3, 6, 9, 10}, result.Path)
}

func TestSearchRandomGraphs(t *testing.T) {
	rng := rand.New(rand.NewPCG(3, 5))

	for trial := 0; trial < 300; trial++ {
		n := 2 + rng.IntN(12)
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('a' + i))
		}
		edges := make(map[string][]string)
		for _, from := range names {
			for _, to := range names {
				if rng.Float64() < 0.25 {
					edges[from] = append(edges[from], to)
				}
			}
		}
		space := graph{edges: edges, goal: names[n-1]}

		result := Search[string](space, names[0])
		wantFound := reachable(edges, names[0], names[n-1])
		require.Equal(t, wantFound, result.Found, "trial %d edges %v", trial, edges)
		if !result.Found {
			continue
		}

		assert.Equal(t, names[0], result.Path[0])
		assert.Equal(t, names[n-1], result.Path[len(result.Path)-1])
		assert.True(t, path.Valid(result.Path, space.adjacent), "trial %d path %v", trial, result.Path)
		for i := 1; i < len(result.Path); i++ {
			assert.NotEqual(t, result.Path[i-1], result.Path[i])
		}
	}
}

func TestSearchIsRepeatable(t *testing.T) {
	space := graph{
		edges: map[string][]string{
			"s": {"a", "b"},
			"a": {"c", "g"},
			"b": {"g"},
			"c": {"g"},
		},
		goal: "g",
	}
	first := Search[string](space, "s")
	second := Search[string](space, "s")
	assert.Equal(t, first, second)
}

func reachable(edges map[string][]string, from, to string) bool {
	seen := map[string]bool{from: true}
	queue := []string{from}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		if current == to {
			return true
		}
		for _, next := range edges[current] {
			if !seen[next] {
				seen[next] = true
				queue = append(queue, next)
			}
		}
	}
	return false
}
