package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

var errInvalidParams = errors.New("invalid maze parameters")

// mazeParams are the user-facing inputs of the maze generator.
type mazeParams struct {
	Height     int     `json:"height" yaml:"height"`
	Width      int     `json:"width" yaml:"width"`
	Difficulty float64 `json:"difficulty" yaml:"difficulty"`
}

func (p mazeParams) validate() error {
	if p.Height < 2 || p.Width < 2 {
		return fmt.Errorf("height %d, width %d must be at least 2: %w", p.Height, p.Width, errInvalidParams)
	}
	if p.Difficulty < 0 || p.Difficulty > 1 {
		return fmt.Errorf("difficulty %v outside 0.0 to 1.0: %w", p.Difficulty, errInvalidParams)
	}
	return nil
}

// orDefaults returns p when valid; otherwise it tells the user and returns defaults.
func (p mazeParams) orDefaults(out io.Writer, defaults mazeParams) mazeParams {
	if err := p.validate(); err != nil {
		announceDefaults(out, defaults)
		return defaults
	}
	return p
}

func announceDefaults(out io.Writer, defaults mazeParams) {
	fmt.Fprintf(out, "Invalid input. Using default values: height=%d, width=%d, difficulty=%g\n",
		defaults.Height, defaults.Width, defaults.Difficulty)
}

// promptMazeParams asks for height, width and difficulty. Any unreadable,
// unparsable or out-of-range answer discards all three in favour of defaults.
func promptMazeParams(in io.Reader, out io.Writer, defaults mazeParams) mazeParams {
	params, err := readMazeParams(bufio.NewReader(in), out)
	if err != nil {
		announceDefaults(out, defaults)
		return defaults
	}
	return params.orDefaults(out, defaults)
}

func readMazeParams(reader *bufio.Reader, out io.Writer) (mazeParams, error) {
	var params mazeParams

	answer, err := ask(reader, out, "Enter maze height: ")
	if err != nil {
		return params, err
	}
	if params.Height, err = strconv.Atoi(answer); err != nil {
		return params, fmt.Errorf("height: %w", err)
	}

	if answer, err = ask(reader, out, "Enter maze width: "); err != nil {
		return params, err
	}
	if params.Width, err = strconv.Atoi(answer); err != nil {
		return params, fmt.Errorf("width: %w", err)
	}

	if answer, err = ask(reader, out, "Enter difficulty parameter (0.0 to 1.0): "); err != nil {
		return params, err
	}
	if params.Difficulty, err = strconv.ParseFloat(answer, 64); err != nil {
		return params, fmt.Errorf("difficulty: %w", err)
	}
	return params, nil
}

func ask(reader *bufio.Reader, out io.Writer, question string) (string, error) {
	fmt.Fprint(out, question)
	line, err := reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimSpace(line), nil
}
