// Package config provides YAML-based configuration loading for textris.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/textris/internal/tetris"
)

// Config contains all user-tunable settings.
type Config struct {
	Board   BoardConfig   `yaml:"board"`
	Display DisplayConfig `yaml:"display"`
	Gravity GravityConfig `yaml:"gravity"`
	Log     LogConfig     `yaml:"log"`
	Server  ServerConfig  `yaml:"server"`
}

// BoardConfig sets the board size for the interactive front ends.
// The line protocol reads its size from input instead.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DisplayConfig controls how cells are drawn in the TUI.
type DisplayConfig struct {
	Empty       string `yaml:"empty"`
	Filled      string `yaml:"filled"`
	ActiveColor string `yaml:"active_color"` // ANSI 256 code for the falling piece
	LockedColor string `yaml:"locked_color"` // ANSI 256 code for settled cells
}

// GravityConfig enables timed descent in the TUI.
type GravityConfig struct {
	IntervalMS int `yaml:"interval_ms"` // 0 disables gravity
}

// LogConfig sets the logger level.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// ServerConfig configures the SSH server.
type ServerConfig struct {
	Address            string `yaml:"address"`
	HostKey            string `yaml:"host_key"`
	IdleTimeoutMinutes int    `yaml:"idle_timeout_minutes"`
}

// Interval returns the gravity interval, or zero when disabled.
func (g GravityConfig) Interval() time.Duration {
	return time.Duration(g.IntervalMS) * time.Millisecond
}

// IdleTimeout returns the idle timeout as a duration.
func (s ServerConfig) IdleTimeout() time.Duration {
	return time.Duration(s.IdleTimeoutMinutes) * time.Minute
}

// EmptyRune returns the marker for empty cells.
func (d DisplayConfig) EmptyRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Empty)
	return r
}

// FilledRune returns the marker for occupied cells.
func (d DisplayConfig) FilledRune() rune {
	r, _ := utf8.DecodeRuneInString(d.Filled)
	return r
}

// Validate checks the config for values the game cannot run with.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Width < tetris.MinWidth || c.Board.Height < tetris.MinHeight {
		errs = append(errs, fmt.Errorf("board must be at least %dx%d, got %dx%d",
			tetris.MinWidth, tetris.MinHeight, c.Board.Width, c.Board.Height))
	}
	if c.Board.Width > tetris.MaxWidth || c.Board.Height > tetris.MaxHeight {
		errs = append(errs, fmt.Errorf("board must be at most %dx%d, got %dx%d",
			tetris.MaxWidth, tetris.MaxHeight, c.Board.Width, c.Board.Height))
	}
	if utf8.RuneCountInString(c.Display.Empty) != 1 {
		errs = append(errs, fmt.Errorf("display.empty must be a single character, got %q", c.Display.Empty))
	}
	if utf8.RuneCountInString(c.Display.Filled) != 1 {
		errs = append(errs, fmt.Errorf("display.filled must be a single character, got %q", c.Display.Filled))
	}
	if c.Gravity.IntervalMS < 0 {
		errs = append(errs, fmt.Errorf("gravity.interval_ms must not be negative, got %d", c.Gravity.IntervalMS))
	}
	if c.Server.IdleTimeoutMinutes < 0 {
		errs = append(errs, fmt.Errorf("server.idle_timeout_minutes must not be negative, got %d", c.Server.IdleTimeoutMinutes))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}
