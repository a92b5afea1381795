// Package session drives a tetris.Game from line-oriented commands and
// renders the grid after every step.
package session

import (
	"fmt"
	"strconv"
	"strings"
)

// Command is a player command of the line protocol.
type Command int

const (
	CommandNone   Command = iota
	CommandPiece          // spawn the piece named on the next line
	CommandRotate         // rotate the active piece
	CommandLeft           // move left
	CommandRight          // move right
	CommandDown           // one descent step
	CommandBreak          // clear full rows
	CommandExit           // end the session
)

var commandWords = map[string]Command{
	"piece":  CommandPiece,
	"rotate": CommandRotate,
	"left":   CommandLeft,
	"right":  CommandRight,
	"down":   CommandDown,
	"break":  CommandBreak,
	"exit":   CommandExit,
}

// String returns the protocol word for the command.
func (c Command) String() string {
	switch c {
	case CommandPiece:
		return "piece"
	case CommandRotate:
		return "rotate"
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandDown:
		return "down"
	case CommandBreak:
		return "break"
	case CommandExit:
		return "exit"
	default:
		return "none"
	}
}

// ParseCommand maps an input line to a command.
// Unrecognized lines return CommandNone.
func ParseCommand(line string) Command {
	return commandWords[strings.TrimSpace(line)]
}

// ParseDimensions parses the startup line "width height".
func ParseDimensions(line string) (width, height int, err error) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("session: expected \"width height\", got %q", line)
	}

	width, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, fmt.Errorf("session: invalid width %q: %w", fields[0], err)
	}
	height, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("session: invalid height %q: %w", fields[1], err)
	}
	return width, height, nil
}
