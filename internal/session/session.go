package session

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/textris/internal/tetris"
)

// GameOverMessage is printed after the final grid when the game ends.
const GameOverMessage = "Game Over!"

// Session applies commands to a single game.
type Session struct {
	game   *tetris.Game
	logger *log.Logger
}

// New creates a session around an existing game.
// A nil logger discards all log output.
func New(game *tetris.Game, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{
		game:   game,
		logger: logger,
	}
}

// Game returns the underlying game.
func (s *Session) Game() *tetris.Game {
	return s.game
}

// Apply runs one command. arg is the piece letter for CommandPiece and is
// ignored otherwise. A returned error wrapping tetris.ErrGameOver is fatal;
// tetris.ErrUnknownPiece leaves the game untouched.
func (s *Session) Apply(cmd Command, arg string) error {
	var err error

	switch cmd {
	case CommandPiece:
		var kind tetris.Kind
		kind, err = tetris.ParseKind(arg)
		if err == nil {
			err = s.game.Spawn(kind)
		}
	case CommandRotate:
		err = s.game.Rotate()
	case CommandLeft:
		err = s.game.MoveLeft()
	case CommandRight:
		err = s.game.MoveRight()
	case CommandDown:
		err = s.game.Descend()
	case CommandBreak:
		var n int
		n, err = s.game.ClearLines()
		if n > 0 {
			s.logger.Debug("rows cleared", "count", n)
		}
	default:
		return nil
	}

	s.logger.Debug("applied",
		"command", cmd,
		"state", s.game.State(),
		"kind", s.game.Kind(),
		"rotation", s.game.Rotation(),
	)
	return err
}

// Options configures Run.
type Options struct {
	Logger *log.Logger
}

// Run speaks the line protocol: a "width height" line, then one command
// per line until exit, end of input, or game over. The grid is written
// after every command except exit, followed by a blank line.
func Run(in io.Reader, out io.Writer, opts Options) error {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	scanner := bufio.NewScanner(in)
	w := bufio.NewWriter(out)

	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return fmt.Errorf("session: cannot read dimensions: %w", err)
		}
		return errors.New("session: missing dimensions line")
	}

	width, height, err := ParseDimensions(scanner.Text())
	if err != nil {
		return err
	}

	game, err := tetris.New(width, height)
	if err != nil {
		return fmt.Errorf("session: %w", err)
	}
	logger.Info("session started", "width", width, "height", height)

	s := New(game, logger)
	if err := writeGrid(w, game); err != nil {
		return err
	}

	for scanner.Scan() {
		cmd := ParseCommand(scanner.Text())
		if cmd == CommandExit {
			logger.Info("session ended", "reason", "exit")
			return nil
		}
		if cmd == CommandNone {
			logger.Warn("unknown command", "line", scanner.Text())
			continue
		}

		var arg string
		if cmd == CommandPiece {
			if !scanner.Scan() {
				break
			}
			arg = scanner.Text()
		}

		err := s.Apply(cmd, arg)
		switch {
		case errors.Is(err, tetris.ErrGameOver):
			logger.Info("game over", "command", cmd, "error", err)
			return writeGameOver(w, game)
		case errors.Is(err, tetris.ErrUnknownPiece):
			logger.Warn("unknown piece", "piece", arg)
			continue
		case err != nil:
			return err
		}

		if err := writeGrid(w, game); err != nil {
			return err
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("session: read failed: %w", err)
	}
	logger.Info("session ended", "reason", "eof")
	return nil
}

// RunStdio runs the protocol on standard input and output.
func RunStdio(logger *log.Logger) error {
	return Run(os.Stdin, os.Stdout, Options{Logger: logger})
}

// writeGrid writes one frame and flushes so interactive callers see it
// before the next command is read.
func writeGrid(w *bufio.Writer, game *tetris.Game) error {
	fmt.Fprintf(w, "%s\n\n", game)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("session: write failed: %w", err)
	}
	return nil
}

func writeGameOver(w *bufio.Writer, game *tetris.Game) error {
	fmt.Fprintf(w, "%s\n\n%s\n", game, GameOverMessage)
	if err := w.Flush(); err != nil {
		return fmt.Errorf("session: write failed: %w", err)
	}
	return nil
}
