package puzzle

import (
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdrpinto/gridsearch/dfs"
	"github.com/pdrpinto/gridsearch/internal/path"
)

func TestGoal(t *testing.T) {
	assert.Equal(t, Board("123_"), Goal(2))
	assert.Equal(t, Board("12345678_"), Goal(3))
	assert.Equal(t, Board("123456789ABCDEF_"), Goal(4))
}

func TestParseBoard(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    Board
		wantErr bool
	}{
		{name: "compact", text: "31_2", want: "31_2"},
		{name: "rows", text: "3 1|_ 2", want: "31_2"},
		{name: "lower case tiles", text: "123456789abcdef_", want: "123456789ABCDEF_"},
		{name: "wrong length", text: "123_4", wantErr: true},
		{name: "duplicate tile", text: "113_", wantErr: true},
		{name: "missing blank", text: "1234", wantErr: true},
		{name: "single cell", text: "_", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseBoard(tt.text)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBoard)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "3 1\n_ 2", Board("31_2").Format())
	assert.Equal(t, "1 2 3\n4 5 6\n7 8 _", Goal(3).Format())
}

func TestNext(t *testing.T) {
	var rules Rules
	tests := []struct {
		name  string
		board Board
		want  []Board
	}{
		{name: "blank bottom right", board: "123_", want: []Board{"1_32", "12_3"}},
		{name: "blank top left", board: "_123", want: []Board{"21_3", "1_23"}},
		{
			name:  "blank in the center",
			board: "1234_5678",
			want:  []Board{"1_3425678", "1234756_8", "123_45678", "12345_678"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rules.Next(tt.board))
		})
	}
}

func TestIsSolvable(t *testing.T) {
	tests := []struct {
		board Board
		want  bool
	}{
		{"123_", true},
		{"31_2", true},
		{"213_", false},
		{"12345678_", true},
		{"21345678_", false},
		{"123456789ABCDEF_", true},
		{"123456789ABCDFE_", false},
	}
	for _, tt := range tests {
		t.Run(string(tt.board), func(t *testing.T) {
			assert.Equal(t, tt.want, IsSolvable(tt.board))
		})
	}
}

func TestSolvableAndRandom(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))

	for size := MinSize; size <= MaxSize; size++ {
		for i := 0; i < 20; i++ {
			board, err := Solvable(size, 30, rng)
			require.NoError(t, err)
			require.Equal(t, size, board.Size())
			assert.True(t, IsSolvable(board), "scrambled board %q", board)

			shuffled, err := Random(size, rng)
			require.NoError(t, err)
			_, err = ParseBoard(string(shuffled))
			require.NoError(t, err)
		}
	}

	_, err := Solvable(5, 1, rng)
	require.ErrorIs(t, err, ErrInvalidSize)
	_, err = Random(1, rng)
	require.ErrorIs(t, err, ErrInvalidSize)
}

func TestDepthFirstSolvesScrambledNinePuzzle(t *testing.T) {
	var rules Rules
	adjacent := func(from, to Board) bool { return slices.Contains(rules.Next(from), to) }

	board, err := Solvable(3, 20, rand.New(rand.NewPCG(1, 2)))
	require.NoError(t, err)

	result := dfs.Search[Board](rules, board)
	require.True(t, result.Found)
	assert.Equal(t, board, result.Path[0])
	assert.Equal(t, Goal(3), result.Path[len(result.Path)-1])
	assert.True(t, path.Valid(result.Path, adjacent))
	assert.LessOrEqual(t, result.Expanded, 181440)
}

func TestDepthFirstSolvesThreePuzzle(t *testing.T) {
	var rules Rules
	adjacent := func(from, to Board) bool { return slices.Contains(rules.Next(from), to) }

	t.Run("handout", func(t *testing.T) {
		result := dfs.Search[Board](rules, Handout())
		require.True(t, result.Found)
		assert.Equal(t, Handout(), result.Path[0])
		assert.Equal(t, Goal(2), result.Path[len(result.Path)-1])
		assert.True(t, path.Valid(result.Path, adjacent))
	})

	t.Run("every solvable board", func(t *testing.T) {
		rng := rand.New(rand.NewPCG(5, 8))
		for i := 0; i < 50; i++ {
			board, err := Random(2, rng)
			require.NoError(t, err)

			result := dfs.Search[Board](rules, board)
			require.Equal(t, IsSolvable(board), result.Found, "board %q", board)
			if result.Found {
				assert.True(t, path.Valid(result.Path, adjacent))
			}
		}
	})

	t.Run("unsolvable board exhausts its half of the space", func(t *testing.T) {
		result := dfs.Search[Board](rules, "213_")
		assert.False(t, result.Found)
		assert.Nil(t, result.Path)
		assert.Equal(t, 12, result.Expanded)
	})
}
