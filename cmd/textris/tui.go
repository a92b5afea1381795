package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/textris/internal/platform/tui"
)

var (
	flagWidth  int
	flagHeight int
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Play interactively in the terminal",
	Long: `Start an interactive game. Pieces are chosen by their letter key.

Controls:
  i o t s z j l   - Spawn that piece
  Up/X            - Rotate
  Left/Right      - Move
  Down            - Drop one row
  Enter/C         - Clear full rows
  R               - Restart (after game over)
  ?               - Toggle help
  Q/Ctrl+C        - Quit

Examples:
  textris tui
  textris tui --width 8 --height 16
  textris tui --config ./my-textris.yaml`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&flagWidth, "width", 0, "Board width (overrides config)")
	tuiCmd.Flags().IntVar(&flagHeight, "height", 0, "Board height (overrides config)")
}

func runTUI(_ *cobra.Command, _ []string) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	if flagWidth > 0 {
		cfg.Board.Width = flagWidth
	}
	if flagHeight > 0 {
		cfg.Board.Height = flagHeight
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("tui needs a terminal; use 'textris play' for piped input")
	}

	// Board plus border, status, and help lines
	needW, needH := cfg.Board.Width*2+3, cfg.Board.Height+5
	if w, h, sizeErr := term.GetSize(int(os.Stdout.Fd())); sizeErr == nil && (w < needW || h < needH) {
		logger.Warn("terminal smaller than the board", "have", fmt.Sprintf("%dx%d", w, h), "need", fmt.Sprintf("%dx%d", needW, needH))
	}

	return tui.Run(cfg, logger)
}
