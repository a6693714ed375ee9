package main

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/pdrpinto/gridsearch/astar"
	"github.com/pdrpinto/gridsearch/maze"
)

type astarFlags struct {
	height     int
	width      int
	difficulty float64
	singlePath bool
	trace      bool
}

// mazeReport is the json/yaml rendering of an A* run.
type mazeReport struct {
	Params         mazeParams   `json:"params" yaml:"params"`
	Seed           uint64       `json:"seed" yaml:"seed"`
	Maze           []string     `json:"maze" yaml:"maze"`
	Start          astar.Cell   `json:"start" yaml:"start"`
	Goal           astar.Cell   `json:"goal" yaml:"goal"`
	Result         astar.Result `json:"result" yaml:"result"`
	Moves          int          `json:"moves" yaml:"moves"`
	ElapsedSeconds float64      `json:"elapsed_seconds" yaml:"elapsed_seconds"`
	Solution       []string     `json:"solution,omitempty" yaml:"solution,omitempty"`
}

func newAStarCmd(a *app) *cobra.Command {
	var flags astarFlags

	cmd := &cobra.Command{
		Use:   "astar",
		Short: "Generate a maze and solve it with A*",
		Long: `Generate a weighted maze and find the cheapest path from the first clear
cell of the top row to the last clear cell of the bottom row.

Without --height, --width or --difficulty the parameters are read
interactively. Invalid answers fall back to the configured defaults.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runAStar(cmd, flags)
		},
	}

	cmd.Flags().IntVar(&flags.height, "height", defaultHeight, "maze height")
	cmd.Flags().IntVar(&flags.width, "width", defaultWidth, "maze width")
	cmd.Flags().Float64Var(&flags.difficulty, "difficulty", defaultDifficulty, "difficulty between 0.0 and 1.0")
	cmd.Flags().Uint64("seed", 0, "random seed (0 picks one from the clock)")
	cmd.Flags().BoolVar(&flags.singlePath, "single-path", false, "generate a perfect maze without loops")
	cmd.Flags().BoolVar(&flags.trace, "trace", false, "log every expansion at debug level")
	return cmd
}

// resolveMazeParams reads the maze parameters from flags when any is given and
// from interactive prompts otherwise.
func (a *app) resolveMazeParams(cmd *cobra.Command, flags astarFlags, out io.Writer) mazeParams {
	defaults := defaultMazeParams(a.config)

	set := cmd.Flags().Changed
	if !set("height") && !set("width") && !set("difficulty") {
		return promptMazeParams(cmd.InOrStdin(), out, defaults)
	}

	params := defaults
	if set("height") {
		params.Height = flags.height
	}
	if set("width") {
		params.Width = flags.width
	}
	if set("difficulty") {
		params.Difficulty = flags.difficulty
	}
	return params.orDefaults(out, defaults)
}

func (a *app) runAStar(cmd *cobra.Command, flags astarFlags) error {
	out := cmd.OutOrStdout()
	text := a.output() == formatText
	promptOut := out
	if !text {
		promptOut = cmd.ErrOrStderr()
	}

	if err := defaultMazeParams(a.config).validate(); err != nil {
		return fmt.Errorf("configured defaults: %w", err)
	}
	params := a.resolveMazeParams(cmd, flags, promptOut)

	rng, seed := newRand(a.seed(cmd))
	multipath := a.config.GetBool(cfgKeyMultipath) && !flags.singlePath
	m, err := maze.Generate(params.Height, params.Width, multipath, params.Difficulty, rng)
	if err != nil {
		return fmt.Errorf("generate maze: %w", err)
	}
	start, goal := m.Endpoints()
	a.logger.Info("maze generated",
		"height", params.Height, "width", params.Width, "difficulty", params.Difficulty,
		"multipath", multipath, "seed", seed, "start", start.String(), "goal", goal.String())

	began := time.Now()
	result, err := a.solveMaze(m, start, goal, flags.trace)
	elapsed := time.Since(began)
	if err != nil {
		return fmt.Errorf("search maze: %w", err)
	}
	a.logger.Info("search finished",
		"found", result.Found, "cost", result.TotalCost, "expanded", result.ExpandedNodes, "elapsed", elapsed)

	if !text {
		report := mazeReport{
			Params:         params,
			Seed:           seed,
			Maze:           m.Lines(),
			Start:          start,
			Goal:           goal,
			Result:         result,
			ElapsedSeconds: elapsed.Seconds(),
		}
		if result.Found {
			report.Moves = len(result.Path) - 1
			report.Solution = m.WithPath(result.Path).Lines()
		}
		return writeReport(out, a.output(), report)
	}

	color := a.color()
	fmt.Fprintf(out, "\n%s\n%s\n\n", heading(color, "Generated Maze:"), a.drawMaze(m))
	fmt.Fprintln(out, "Start position:", start)
	fmt.Fprintln(out, "Goal position:", goal)

	if !result.Found {
		fmt.Fprintln(out, "No solution found.")
		return nil
	}
	fmt.Fprintf(out, "\n%s\n", heading(color, "Solution found!"))
	fmt.Fprintln(out, "Path length (number of moves):", len(result.Path)-1)
	fmt.Fprintln(out, "Total cost:", result.TotalCost)
	fmt.Fprintf(out, "Time taken: %.6f seconds\n", elapsed.Seconds())
	fmt.Fprintf(out, "\n%s\n%s\n", heading(color, "Maze with solution path:"), a.drawMaze(m.WithPath(result.Path)))
	return nil
}

// solveMaze runs the search, stepping through it when tracing so every
// expansion can be logged.
func (a *app) solveMaze(m *maze.Maze, start, goal astar.Cell, trace bool) (astar.Result, error) {
	if !trace {
		return astar.Search(m, start, goal)
	}

	stepper, err := astar.NewStepper(m, start, goal)
	if err != nil {
		return astar.Result{}, err
	}
	for {
		snapshot := stepper.Step()
		a.logger.Debug("expand",
			"step", snapshot.StepIndex,
			"cell", snapshot.Current.String(),
			"frontier", snapshot.FrontierSize,
			"closed", snapshot.ClosedSize)
		if snapshot.Done {
			return stepper.Result(), nil
		}
	}
}

func (a *app) drawMaze(m *maze.Maze) string {
	if a.color() {
		return m.Render(maze.DefaultStyles())
	}
	return m.String()
}
