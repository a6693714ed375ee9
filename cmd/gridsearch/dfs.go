package main

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridsearch/dfs"
	"github.com/pdrpinto/gridsearch/puzzle"
)

// Start board choices for the dfs command. Any other value is parsed as a board.
const (
	startHandout  = "handout"
	startSolvable = "solvable"
	startRandom   = "random"
)

type dfsFlags struct {
	trace bool
}

// puzzleReport is the json/yaml rendering of a depth-first run.
type puzzleReport struct {
	Start          puzzle.Board             `json:"start" yaml:"start"`
	Solvable       bool                     `json:"solvable" yaml:"solvable"`
	Seed           uint64                   `json:"seed" yaml:"seed"`
	Result         dfs.Result[puzzle.Board] `json:"result" yaml:"result"`
	Moves          int                      `json:"moves" yaml:"moves"`
	ElapsedSeconds float64                  `json:"elapsed_seconds" yaml:"elapsed_seconds"`
}

func newDFSCmd(a *app) *cobra.Command {
	var flags dfsFlags

	cmd := &cobra.Command{
		Use:   "dfs",
		Short: "Solve a sliding-tile puzzle with depth-first search",
		Long: `Solve a sliding-tile puzzle with depth-first search. The path found is the
first one reached, not the shortest.

--start picks the start board: "handout" (the three puzzle classroom board),
"solvable" (the goal scrambled by --scramble random moves), "random" (any
shuffle, possibly unsolvable) or a board such as "31_2".`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runDFS(cmd, flags)
		},
	}

	cmd.Flags().String("start", startHandout, "start board: handout, solvable, random or a board")
	cmd.Flags().Int("size", 2, "board width for solvable and random starts")
	cmd.Flags().Int("scramble", 20, "random moves applied for a solvable start")
	cmd.Flags().Uint64("seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "log every expansion at debug level")
	return cmd
}

func (a *app) runDFS(cmd *cobra.Command, flags dfsFlags) error {
	for key, flag := range map[string]string{
		cfgKeyStart:      "start",
		cfgKeyPuzzleSize: "size",
		cfgKeyScramble:   "scramble",
	} {
		if err := a.config.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}

	rng, seed := newRand(a.seed(cmd))
	start, err := startBoard(a.config.GetString(cfgKeyStart), a.config.GetInt(cfgKeyPuzzleSize), a.config.GetInt(cfgKeyScramble), rng)
	if err != nil {
		return err
	}
	solvable := puzzle.IsSolvable(start)
	a.logger.Info("start board", "board", string(start), "solvable", solvable, "seed", seed)
	if start.Size() > puzzle.MinSize {
		a.logger.Warn("depth-first search on large boards may take long and find very long paths",
			"size", start.Size())
	}

	var options []dfs.Option[puzzle.Board]
	if flags.trace {
		options = append(options, dfs.WithVisit[puzzle.Board](func(board puzzle.Board, depth int) {
			a.logger.Debug("expand", "board", string(board), "depth", depth)
		}))
	}

	began := time.Now()
	result := dfs.Search[puzzle.Board](puzzle.Rules{}, start, options...)
	elapsed := time.Since(began)
	a.logger.Info("search finished",
		"found", result.Found, "expanded", result.Expanded, "pushed", result.Pushed, "elapsed", elapsed)

	out := cmd.OutOrStdout()
	if a.output() != formatText {
		report := puzzleReport{
			Start:          start,
			Solvable:       solvable,
			Seed:           seed,
			Result:         result,
			ElapsedSeconds: elapsed.Seconds(),
		}
		if result.Found {
			report.Moves = len(result.Path) - 1
		}
		return writeReport(out, a.output(), report)
	}

	if !result.Found {
		fmt.Fprintln(out, "No solution found.")
	} else {
		fmt.Fprintln(out, heading(a.color(), "Solution found!"))
		for _, board := range result.Path {
			fmt.Fprintf(out, "%s\n\n", board.Format())
		}
		fmt.Fprintln(out, "Path length (number of moves):", len(result.Path)-1)
	}
	fmt.Fprintln(out, "Time:", elapsed.Seconds(), "seconds")
	return nil
}

func startBoard(choice string, size, scramble int, rng *rand.Rand) (puzzle.Board, error) {
	switch choice {
	case startHandout:
		return puzzle.Handout(), nil
	case startSolvable:
		return puzzle.Solvable(size, scramble, rng)
	case startRandom:
		return puzzle.Random(size, rng)
	default:
		return puzzle.ParseBoard(choice)
	}
}
