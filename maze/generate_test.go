package maze

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridsearch/astar"
)

func seeded(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	tests := []struct {
		name          string
		height, width int
		difficulty    float64
		wantErr       error
	}{
		{name: "zero height", height: 0, width: 5, difficulty: 0.5, wantErr: ErrInvalidSize},
		{name: "single column", height: 5, width: 1, difficulty: 0.5, wantErr: ErrInvalidSize},
		{name: "negative difficulty", height: 5, width: 5, difficulty: -0.1, wantErr: ErrInvalidDifficulty},
		{name: "difficulty above one", height: 5, width: 5, difficulty: 1.5, wantErr: ErrInvalidDifficulty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Generate(tt.height, tt.width, true, tt.difficulty, seeded(1))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestGenerateIsDeterministicForSeed(t *testing.T) {
	first, err := Generate(15, 15, true, 0.5, seeded(42))
	require.NoError(t, err)
	second, err := Generate(15, 15, true, 0.5, seeded(42))
	require.NoError(t, err)
	assert.Equal(t, first.Lines(), second.Lines())
}

func TestGenerateProperties(t *testing.T) {
	sizes := [][2]int{{2, 2}, {2, 7}, {3, 3}, {4, 6}, {9, 4}, {15, 15}, {16, 21}}
	difficulties := []float64{0, 0.5, 1}

	for seed := uint64(0); seed < 10; seed++ {
		for _, size := range sizes {
			for _, difficulty := range difficulties {
				for _, multipath := range []bool{false, true} {
					m, err := Generate(size[0], size[1], multipath, difficulty, seeded(seed))
					require.NoError(t, err)

					rows, cols := m.Dimensions()
					require.Equal(t, size[0], rows)
					require.Equal(t, size[1], cols)
					assertSymbols(t, m, difficulty)
					assertConnected(t, m)

					start, goal := m.Endpoints()
					require.True(t, m.IsClear(m.SymbolAt(start.Row, start.Col)), "start %v not clear in\n%s", start, m)
					require.True(t, m.IsClear(m.SymbolAt(goal.Row, goal.Col)), "goal %v not clear in\n%s", goal, m)

					result, err := astar.Search(m, start, goal)
					require.NoError(t, err)
					require.True(t, result.Found, "no path in\n%s", m)
				}
			}
		}
	}
}

func TestGenerateMultipathAddsOpenings(t *testing.T) {
	single, err := Generate(21, 21, false, 0, seeded(9))
	require.NoError(t, err)
	multi, err := Generate(21, 21, true, 0, seeded(9))
	require.NoError(t, err)

	assert.Greater(t, countOpen(multi), countOpen(single))
}

func assertSymbols(t *testing.T, m *Maze, difficulty float64) {
	t.Helper()
	rows, cols := m.Dimensions()
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			symbol := m.SymbolAt(r, c)
			weighted := symbol >= '1' && symbol <= '9'
			require.True(t, symbol == Clear || symbol == Wall || weighted, "unexpected symbol %q", symbol)
			if weighted {
				require.NotZero(t, difficulty, "weighted cell at difficulty 0")
				require.NotEqual(t, 0, r, "weighted cell in top row")
				require.NotEqual(t, rows-1, r, "weighted cell in bottom row")
			}
		}
	}
}

func assertConnected(t *testing.T, m *Maze) {
	t.Helper()
	rows, cols := m.Dimensions()
	seen := map[astar.Cell]bool{{Row: 0, Col: 0}: true}
	queue := []astar.Cell{{Row: 0, Col: 0}}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		for _, d := range []astar.Cell{{Row: -1}, {Row: 1}, {Col: -1}, {Col: 1}} {
			next := astar.Cell{Row: current.Row + d.Row, Col: current.Col + d.Col}
			if next.Row < 0 || next.Row >= rows || next.Col < 0 || next.Col >= cols {
				continue
			}
			if seen[next] || m.IsWall(m.SymbolAt(next.Row, next.Col)) {
				continue
			}
			seen[next] = true
			queue = append(queue, next)
		}
	}
	require.Equal(t, countOpen(m), len(seen), "unreachable open cells in\n%s", m)
}

func countOpen(m *Maze) int {
	rows, cols := m.Dimensions()
	open := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !m.IsWall(m.SymbolAt(r, c)) {
				open++
			}
		}
	}
	return open
}
