package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/textris/internal/config"
	"github.com/vovakirdan/textris/internal/core"
	"github.com/vovakirdan/textris/internal/session"
	"github.com/vovakirdan/textris/internal/tetris"
)

var (
	statusStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	gameOverStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	noticeStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
)

// Model is the Bubble Tea model for an interactive game.
type Model struct {
	session  *session.Session
	game     *tetris.Game
	cfg      config.Config
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	logger   *log.Logger
	notice   string // Last non-fatal message, e.g. unknown piece
	quitting bool
}

// NewModel creates a model for a new game with the configured board size.
func NewModel(cfg config.Config, logger *log.Logger) (Model, error) {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	game, err := tetris.New(cfg.Board.Width, cfg.Board.Height)
	if err != nil {
		return Model{}, err
	}

	w, h := boardScreenSize(game)
	return Model{
		session: session.New(game, logger),
		game:    game,
		cfg:     cfg,
		screen:  core.NewScreen(w, h),
		keys:    DefaultKeyMap(),
		help:    help.New(),
		logger:  logger,
	}, nil
}

// Init starts the gravity timer when enabled.
func (m Model) Init() tea.Cmd {
	if interval := m.cfg.Gravity.Interval(); interval > 0 {
		return tickCmd(interval)
	}
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Restart) && m.game.State() == tetris.StateGameOver:
		m.game.Reset()
		m.notice = ""
		m.logger.Info("game restarted")
		return m, nil
	}

	cmd, arg := m.keys.Resolve(msg)
	if cmd == session.CommandExit {
		m.quitting = true
		return m, tea.Quit
	}
	if cmd == session.CommandNone || m.game.State() == tetris.StateGameOver {
		return m, nil
	}

	m.apply(cmd, arg)
	return m, nil
}

// handleTick applies gravity and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	if m.game.State() == tetris.StatePieceActive {
		m.apply(session.CommandDown, "")
	}
	return m, tickCmd(m.cfg.Gravity.Interval())
}

// apply runs one command and records the outcome for the status line.
func (m *Model) apply(cmd session.Command, arg string) {
	err := m.session.Apply(cmd, arg)
	switch {
	case err == nil:
		m.notice = ""
	case errors.Is(err, tetris.ErrGameOver):
		m.logger.Info("game over", "command", cmd, "error", err)
		m.notice = ""
	case errors.Is(err, tetris.ErrUnknownPiece):
		m.notice = err.Error()
	default:
		m.logger.Error("command failed", "command", cmd, "error", err)
		m.notice = err.Error()
	}
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	DrawBoard(m.screen, m.game, m.cfg.Display)

	var sb strings.Builder
	sb.WriteString(boardStyle.Render(RenderScreen(m.screen)))
	sb.WriteString("\n")
	sb.WriteString(statusStyle.Render(m.status()))
	sb.WriteString("\n")

	if m.game.State() == tetris.StateGameOver {
		sb.WriteString(gameOverStyle.Render(session.GameOverMessage))
		sb.WriteString(statusStyle.Render("  press r to restart"))
		sb.WriteString("\n")
	} else if m.notice != "" {
		sb.WriteString(noticeStyle.Render(m.notice))
		sb.WriteString("\n")
	}

	sb.WriteString(m.help.View(m.keys))
	return sb.String()
}

// status describes the active piece.
func (m Model) status() string {
	if m.game.State() == tetris.StateNoPiece {
		return fmt.Sprintf("%dx%d  no piece", m.game.Width(), m.game.Height())
	}
	return fmt.Sprintf("%dx%d  piece %s  rotation %d  %s",
		m.game.Width(), m.game.Height(), m.game.Kind(), m.game.Rotation(), m.game.State())
}

// Game returns the game driven by this model.
func (m Model) Game() *tetris.Game {
	return m.game
}

// Run starts the Bubble Tea program for a local game.
func Run(cfg config.Config, logger *log.Logger) error {
	model, err := NewModel(cfg, logger)
	if err != nil {
		return err
	}

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err = p.Run()
	return err
}
