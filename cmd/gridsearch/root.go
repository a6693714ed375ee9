package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// app carries the per-invocation state shared by the subcommands.
type app struct {
	configFile string
	config     *viper.Viper
	logger     *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "gridsearch",
		Short: "Search demonstrations: A* over mazes, depth-first over puzzles",
		Long: `gridsearch runs two small search engines: an A* search over a generated,
weighted grid maze and a depth-first search over a sliding-tile puzzle.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.PersistentFlags().StringVar(&a.configFile, "config", "", "config file (default: ./.gridsearch.yaml when present)")
	root.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().StringP("output", "o", formatText, "output format: text, json or yaml")
	root.PersistentFlags().Bool("color", true, "colour text output")

	root.AddCommand(newVersionCmd())
	root.AddCommand(newAStarCmd(a))
	root.AddCommand(newDFSCmd(a))
	return root
}

// setup loads the configuration and installs the logger before any
// subcommand runs.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	v, err := loadConfig(a.configFile)
	if err != nil {
		return err
	}
	for key, flag := range map[string]string{
		cfgKeyLogLevel: "log-level",
		cfgKeyOutput:   "output",
		cfgKeyColor:    "color",
	} {
		if err := v.BindPFlag(key, cmd.Flags().Lookup(flag)); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag, err)
		}
	}
	if err := validateFormat(v.GetString(cfgKeyOutput)); err != nil {
		return err
	}

	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString(cfgKeyLogLevel))
	if err != nil {
		return err
	}
	a.config = v
	a.logger = logger.With("run_id", uuid.NewString(), "command", cmd.Name())
	return nil
}

func newLogger(w io.Writer, level string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("log level %q: %w", level, err)
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl})), nil
}

func (a *app) output() string { return a.config.GetString(cfgKeyOutput) }
func (a *app) color() bool    { return a.config.GetBool(cfgKeyColor) }

// newRand returns a generator for the given seed, picking a time-based seed
// for 0. The seed actually used is returned so runs can be reproduced.
func newRand(seed uint64) (*rand.Rand, uint64) {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), seed
}

// seed reads the --seed flag when given, else the configured seed.
func (a *app) seed(cmd *cobra.Command) uint64 {
	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetUint64("seed")
		return seed
	}
	return a.config.GetUint64(cfgKeySeed)
}
