package session

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/textris/internal/tetris"
)

// frame builds one rendered grid followed by the blank separator line.
func frame(rows ...string) string {
	return strings.Join(rows, "\n") + "\n\n"
}

func emptyRows(width, height int) []string {
	row := strings.TrimSpace(strings.Repeat("- ", width))
	rows := make([]string, height)
	for i := range rows {
		rows[i] = row
	}
	return rows
}

func run(t *testing.T, input string) string {
	t.Helper()
	var out bytes.Buffer
	if err := Run(strings.NewReader(input), &out, Options{}); err != nil {
		t.Fatalf("Run() failed: %v", err)
	}
	return out.String()
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line string
		want Command
	}{
		{"piece", CommandPiece},
		{"rotate", CommandRotate},
		{"left", CommandLeft},
		{"right", CommandRight},
		{"down", CommandDown},
		{"break", CommandBreak},
		{"exit", CommandExit},
		{"  down\r", CommandDown},
		{"DOWN", CommandNone},
		{"jump", CommandNone},
		{"", CommandNone},
	}

	for _, tt := range tests {
		if got := ParseCommand(tt.line); got != tt.want {
			t.Errorf("ParseCommand(%q) = %s, want %s", tt.line, got, tt.want)
		}
	}
}

func TestCommandStringRoundTrip(t *testing.T) {
	for word, cmd := range commandWords {
		if cmd.String() != word {
			t.Errorf("%d.String() = %q, want %q", cmd, cmd.String(), word)
		}
	}
	if CommandNone.String() != "none" {
		t.Errorf("CommandNone.String() = %q", CommandNone.String())
	}
}

func TestParseDimensions(t *testing.T) {
	w, h, err := ParseDimensions("10 20")
	if err != nil {
		t.Fatalf("ParseDimensions failed: %v", err)
	}
	if w != 10 || h != 20 {
		t.Errorf("ParseDimensions(\"10 20\") = %d, %d; width comes first", w, h)
	}

	if _, _, err := ParseDimensions("  4\t6 "); err != nil {
		t.Errorf("whitespace should be tolerated: %v", err)
	}

	for _, bad := range []string{"", "10", "10 20 30", "ten 20", "10 x"} {
		if _, _, err := ParseDimensions(bad); err == nil {
			t.Errorf("ParseDimensions(%q) should fail", bad)
		}
	}
}

func TestRunInitialRender(t *testing.T) {
	got := run(t, "10 20\nexit\n")
	want := frame(emptyRows(10, 20)...)

	if got != want {
		t.Errorf("initial render:\n%q\nwant:\n%q", got, want)
	}
}

func TestRunPieceAndDown(t *testing.T) {
	got := run(t, "10 4\npiece\no\ndown\nexit\n")

	want := frame(emptyRows(10, 4)...) +
		frame(
			"- - - - 0 0 - - - -",
			"- - - - 0 0 - - - -",
			"- - - - - - - - - -",
			"- - - - - - - - - -",
		) +
		frame(
			"- - - - - - - - - -",
			"- - - - 0 0 - - - -",
			"- - - - 0 0 - - - -",
			"- - - - - - - - - -",
		)

	if got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunGameOver(t *testing.T) {
	// A vertical I fills column 4 of a four-row board; landing ends the game
	got := run(t, "10 4\npiece\nI\ndown\nleft\n")

	full := []string{
		"- - - - 0 - - - - -",
		"- - - - 0 - - - - -",
		"- - - - 0 - - - - -",
		"- - - - 0 - - - - -",
	}
	want := frame(emptyRows(10, 4)...) +
		frame(full...) +
		frame(full...) + "Game Over!\n"

	if got != want {
		t.Errorf("output:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunSpawnCollision(t *testing.T) {
	input := strings.Join([]string{
		"10 5",
		"piece", "i",
		"down",
		"piece", "o",
		"down",
	}, "\n")
	got := run(t, input)

	landed := []string{
		"- - - - - - - - - -",
		"- - - - 0 - - - - -",
		"- - - - 0 - - - - -",
		"- - - - 0 - - - - -",
		"- - - - 0 - - - - -",
	}
	if !strings.HasSuffix(got, frame(landed...)+"Game Over!\n") {
		t.Errorf("expected final grid then Game Over!, got:\n%s", got)
	}
	if strings.Contains(got, "0 0") {
		t.Error("the colliding O must never be rendered")
	}
}

func TestRunBreak(t *testing.T) {
	input := strings.Join([]string{
		"4 6",
		"piece", "O",
		"down", "down", "down", "down",
		"piece", "I",
		"rotate",
		"down", "down", "down",
		"break",
		"exit",
	}, "\n")
	got := run(t, input)

	beforeBreak := frame(
		"- - - -",
		"- - - -",
		"- - - -",
		"0 0 0 0",
		"- 0 0 -",
		"- 0 0 -",
	)
	afterBreak := frame(
		"- - - -",
		"- - - -",
		"- - - -",
		"- - - -",
		"- 0 0 -",
		"- 0 0 -",
	)

	if !strings.HasSuffix(got, beforeBreak+afterBreak) {
		t.Errorf("expected the full row to be removed, got:\n%s", got)
	}
}

func TestRunIgnoresUnknownInput(t *testing.T) {
	got := run(t, "10 4\nfly\npiece\nq\nexit\n")

	// Neither the unknown command nor the unknown piece renders a frame
	if got != frame(emptyRows(10, 4)...) {
		t.Errorf("unexpected output:\n%s", got)
	}
}

func TestRunEOFEndsSession(t *testing.T) {
	got := run(t, "10 4\npiece\nt")
	if strings.Count(got, "\n\n") != 2 {
		t.Errorf("expected two frames, got:\n%s", got)
	}
}

func TestRunBadDimensions(t *testing.T) {
	tests := []string{
		"",
		"abc\n",
		"2 2\n",
		"3037000500 3037000500\nexit\n",
		"4 4611686018427387904\nexit\n",
	}
	for _, input := range tests {
		var out bytes.Buffer
		err := Run(strings.NewReader(input), &out, Options{})
		if err == nil {
			t.Errorf("Run(%q) should fail", input)
		}
		if out.Len() != 0 {
			t.Errorf("Run(%q) should not render anything, got %q", input, out.String())
		}
	}

	for _, input := range []string{"2 2\n", "3037000500 3037000500\n"} {
		var out bytes.Buffer
		err := Run(strings.NewReader(input), &out, Options{})
		if !errors.Is(err, tetris.ErrInvalidDimensions) {
			t.Errorf("Run(%q) error = %v, want ErrInvalidDimensions", input, err)
		}
	}
}

func TestApplyDispatch(t *testing.T) {
	game, err := tetris.New(10, 20)
	if err != nil {
		t.Fatalf("tetris.New failed: %v", err)
	}
	s := New(game, nil)

	if err := s.Apply(CommandPiece, " j "); err != nil {
		t.Fatalf("Apply(piece j) failed: %v", err)
	}
	if game.Kind() != tetris.KindJ {
		t.Errorf("Kind() = %s, expected J", game.Kind())
	}

	if err := s.Apply(CommandRotate, ""); err != nil {
		t.Fatalf("Apply(rotate) failed: %v", err)
	}
	if game.Rotation() != 1 {
		t.Errorf("Rotation() = %d, expected 1", game.Rotation())
	}

	if err := s.Apply(CommandPiece, "w"); !errors.Is(err, tetris.ErrUnknownPiece) {
		t.Errorf("Apply(piece w) = %v, want ErrUnknownPiece", err)
	}
	if err := s.Apply(CommandNone, ""); err != nil {
		t.Errorf("Apply(none) = %v", err)
	}
}
