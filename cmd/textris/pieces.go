package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/textris/internal/tetris"
)

var flagPiecesWidth int

var piecesCmd = &cobra.Command{
	Use:   "pieces [letter...]",
	Short: "Show the rotation states of the pieces",
	Long: `Print the four rotation states of each piece as cell indices and as
a small picture of the top rows of a board of the given width.

Examples:
  textris pieces
  textris pieces T L --width 8`,
	SilenceUsage: true,
	RunE:         runPieces,
}

func init() {
	piecesCmd.Flags().IntVar(&flagPiecesWidth, "width", tetris.CanonicalWidth, "Board width to lay the pieces out for")
}

func runPieces(_ *cobra.Command, args []string) error {
	// A throwaway game validates the width and owns the adjusted table
	game, err := tetris.New(flagPiecesWidth, tetris.MinHeight)
	if err != nil {
		return err
	}

	kinds := tetris.Kinds
	if len(args) > 0 {
		kinds = make([]tetris.Kind, 0, len(args))
		for _, arg := range args {
			kind, err := tetris.ParseKind(arg)
			if err != nil {
				return err
			}
			kinds = append(kinds, kind)
		}
	}

	table := game.Shapes()
	for _, kind := range kinds {
		shape, _ := table.Shape(kind)
		fmt.Printf("%s\n", kind)
		for r, rot := range shape {
			fmt.Printf("  rotation %d: %v\n", r, rot)
			fmt.Println(indent(piecePicture(rot, flagPiecesWidth), "    "))
		}
		fmt.Println()
	}
	return nil
}

// piecePicture draws a rotation on the top rows of an empty board.
func piecePicture(rot tetris.Rotation, width int) string {
	board := tetris.NewBoard(tetris.MinHeight, width)
	board.Fill(rot[:])
	return board.String()
}

func indent(s, prefix string) string {
	return prefix + strings.ReplaceAll(s, "\n", "\n"+prefix)
}
