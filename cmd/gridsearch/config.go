package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	configFileName = ".gridsearch"
	envPrefix      = "GRIDSEARCH"

	cfgKeyHeight     = "height"
	cfgKeyWidth      = "width"
	cfgKeyDifficulty = "difficulty"
	cfgKeyMultipath  = "multipath"
	cfgKeySeed       = "seed"
	cfgKeyLogLevel   = "log_level"
	cfgKeyOutput     = "output"
	cfgKeyColor      = "color"
	cfgKeyPuzzleSize = "puzzle.size"
	cfgKeyScramble   = "puzzle.scramble"
	cfgKeyStart      = "puzzle.start"
)

// Defaults used whenever the maze parameters are missing or invalid.
const (
	defaultHeight     = 15
	defaultWidth      = 15
	defaultDifficulty = 0.5
)

// loadConfig builds the configuration from defaults, an optional YAML file
// and GRIDSEARCH_* environment variables. Without an explicit path a
// .gridsearch.yaml in the working directory is used when present; a missing
// file is not an error.
func loadConfig(configFile string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyHeight, defaultHeight)
	v.SetDefault(cfgKeyWidth, defaultWidth)
	v.SetDefault(cfgKeyDifficulty, defaultDifficulty)
	v.SetDefault(cfgKeyMultipath, true)
	v.SetDefault(cfgKeySeed, 0)
	v.SetDefault(cfgKeyLogLevel, "warn")
	v.SetDefault(cfgKeyOutput, formatText)
	v.SetDefault(cfgKeyColor, true)
	v.SetDefault(cfgKeyPuzzleSize, 2)
	v.SetDefault(cfgKeyScramble, 20)
	v.SetDefault(cfgKeyStart, startHandout)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName(configFileName)
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile == "" && errors.As(err, &notFound) {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}
	return v, nil
}

// defaultMazeParams are the configured fallback maze parameters.
func defaultMazeParams(v *viper.Viper) mazeParams {
	return mazeParams{
		Height:     v.GetInt(cfgKeyHeight),
		Width:      v.GetInt(cfgKeyWidth),
		Difficulty: v.GetFloat64(cfgKeyDifficulty),
	}
}
