package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/engine"
	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	consoleUsage = `
    Enter parameters as: generations,rows,cols
    e.g. 100,4,4   (evolve a random 4x4 colony for 100 generations)
    Notes:
        1. An empty line runs with the configured defaults.
        2. "note" explains the rules.
        3. "bye" exits.
`
	consolePrompt = "command: "

	ruleNote = `
    The Game of Life was devised by the British mathematician John H. Conway.
    It shows how a complex system can grow out of a handful of simple rules.

    The board is a rectangular grid in which every cell is either empty (dead)
    or occupied by an organism (alive). Each step creates a new generation from
    the current layout. Every cell has eight neighbors.

    A live cell with 2 or 3 live neighbors stays alive.
    A live cell with 0 or 1 live neighbors dies of isolation.
    A live cell with 4 or more live neighbors dies of overcrowding.
    A dead cell with exactly 3 live neighbors comes alive.

    Some colonies die out; others settle into a stable or repeating state.
`

	extinctMessage   = "nothing left."
	recurringMessage = "reached balance."
)

type commandKind int

const (
	commandRun commandKind = iota
	commandDefault
	commandNote
	commandQuit
)

type command struct {
	kind        commandKind
	generations int
	rows        int
	cols        int
}

var errUnrecognized = errors.New("unrecognized command")

// parseCommand interprets one line of console input
func parseCommand(line string) (command, error) {
	line = strings.TrimSpace(line)
	switch line {
	case "":
		return command{kind: commandDefault}, nil
	case "note":
		return command{kind: commandNote}, nil
	case "bye":
		return command{kind: commandQuit}, nil
	}

	parts := strings.Split(line, ",")
	if len(parts) != 3 {
		return command{}, errUnrecognized
	}
	var values [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || v <= 0 {
			return command{}, errUnrecognized
		}
		values[i] = v
	}
	return command{kind: commandRun, generations: values[0], rows: values[1], cols: values[2]}, nil
}

// runConsole loops over console commands until "bye" or end of input
func runConsole(in io.Reader, out io.Writer, config utils.Config) error {
	fmt.Fprint(out, consoleUsage)

	rng := utils.NewRNG(config.Seed)
	renderer := &model.FileRenderer{Path: config.OutputFile, Style: outputStyle(config)}

	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, consolePrompt)
		if !scanner.Scan() {
			break
		}

		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		switch cmd.kind {
		case commandQuit:
			return nil
		case commandNote:
			fmt.Fprint(out, ruleNote)
			continue
		case commandDefault:
			cmd.generations, cmd.rows, cmd.cols = config.MaxGenerations, config.Rows, config.Cols
		}

		if _, err = runSimulation(out, renderer, engineConfig(config, cmd.rows, cmd.cols), rng, cmd.generations); err != nil {
			return err
		}
		if config.OpenOutput {
			if err = renderer.Open(); err != nil {
				fmt.Fprintln(out, err)
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "[runConsole] failed to read input")
	}
	return nil
}

// runSimulation evolves a fresh random colony for up to generations steps,
// appending every generation to the renderer's log
func runSimulation(
	out io.Writer,
	renderer *model.FileRenderer,
	cfg engine.Config,
	rng *rand.Rand,
	generations int,
) (engine.Status, error) {
	if err := renderer.Reset(); err != nil {
		return engine.StatusRunning, err
	}

	e, err := engine.New(cfg, rng)
	if err != nil {
		return engine.StatusRunning, errors.Wrap(err, "[runSimulation] failed to build engine")
	}

	for range generations {
		e.Step()
		if err = renderer.Append(e.Grid()); err != nil {
			return engine.StatusRunning, err
		}

		switch e.Status() {
		case engine.StatusExtinct:
			fmt.Fprintln(out, extinctMessage)
			return engine.StatusExtinct, nil
		case engine.StatusRecurring:
			fmt.Fprintln(out, recurringMessage)
			return engine.StatusRecurring, nil
		}
	}
	return e.Status(), nil
}
