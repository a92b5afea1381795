package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/textris/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Run the line protocol on stdin/stdout",
	Long: `Read "width height" on the first line, then one command per line.
The grid is printed after every command followed by a blank line.
When a piece cannot be placed the final grid is printed followed by
"Game Over!".

Examples:
  textris play < commands.txt
  printf '10 4\npiece\nO\ndown\nexit\n' | textris play`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func runPlay(_ *cobra.Command, _ []string) error {
	_, logger, err := loadConfig()
	if err != nil {
		return err
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		logger.Debug("reading commands from a terminal; enter \"width height\" first")
	}

	return session.RunStdio(logger)
}
