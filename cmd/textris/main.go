// textris is a text-mode Tetris engine driven by line commands.
//
// Usage:
//
//	textris                  - Read "width height" and commands from stdin
//	textris play             - Same as above
//	textris tui              - Play interactively in the terminal
//	textris serve            - Start SSH server for remote play
//	textris pieces           - Show the rotation states of every piece
//
// Global flags:
//
//	--config <path>     - Path to config YAML
//	--log-level <lvl>   - debug, info, warn or error (logs go to stderr)
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/textris/internal/config"
)

var (
	// Global flags
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "textris",
	Short: "Text-mode Tetris engine",
	Long: `textris runs a Tetris board driven by line commands and prints the
grid after every command.

Without a subcommand it reads the board size ("width height") and then
one command per line from standard input:

  piece    - next line names the piece (I, S, Z, L, J, O, T)
  rotate   - rotate the active piece
  left     - move left
  right    - move right
  down     - drop one row
  break    - clear full rows
  exit     - quit

Examples:
  printf '10 20\npiece\nT\ndown\nexit\n' | textris
  textris tui --width 12
  textris serve --ssh :2222`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(piecesCmd)
}

// loadConfig loads the config and builds the stderr logger from it.
func loadConfig() (config.Config, *log.Logger, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, nil, err
	}

	level := cfg.Log.Level
	if flagLogLevel != "" {
		level = flagLogLevel
	}
	logger, err := newLogger(level)
	if err != nil {
		return cfg, nil, err
	}
	cfg.Log.Level = level
	return cfg, logger, nil
}

// newLogger creates the stderr logger shared by every command.
func newLogger(level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", level, err)
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "textris",
		Level:           lvl,
	}), nil
}
