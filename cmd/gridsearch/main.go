// Package main provides the gridsearch CLI: A* over generated mazes and
// depth-first search over sliding-tile puzzles.
package main

import (
	"fmt"
	"log/slog"
	"os"
)

// version is overridden at build time with -ldflags "-X main.version=...".
var version = "0.1.0"

// Exit codes. A search without a solution still exits with exitSuccess.
const (
	exitSuccess   = 0
	exitUserError = 1
)

func main() {
	// Use a minimal logger until the configured one replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitUserError)
	}
	os.Exit(exitSuccess)
}
