package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/mines/internal/mines"
)

var (
	statusStyle = lipgloss.NewStyle().Bold(true)
	boomStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

const helpText = "arrows/hjkl move · enter reveal · space flag/chord · r reset · q quit"

type Options struct {
	Color bool
	Auto  bool
}

// Model is the input loop: it owns the cursor and turns keys into board calls.
type Model struct {
	board  *mines.Board
	opts   Options
	cursor mines.Pos
	log    logrus.FieldLogger
}

func New(board *mines.Board, opts Options, log logrus.FieldLogger) Model {
	return Model{board: board, opts: opts, log: log}
}

func (m Model) Cursor() mines.Pos {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func wrap(i, n int) int {
	return ((i % n) + n) % n
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	rows, cols := m.board.Rows(), m.board.Cols()
	switch key.String() {
	case "q", "Q", "ctrl+c":
		return m, tea.Quit
	case "r", "R":
		m.board.Reset()
		m.log.Debug("new round")
	case "up", "k":
		m.cursor.R = wrap(m.cursor.R-1, rows)
	case "down", "j":
		m.cursor.R = wrap(m.cursor.R+1, rows)
	case "left", "h":
		m.cursor.C = wrap(m.cursor.C-1, cols)
	case "right", "l":
		m.cursor.C = wrap(m.cursor.C+1, cols)
	case "enter":
		ok, err := m.board.Reveal(m.cursor, m.opts.Auto)
		m.logMove("reveal", ok, err)
	case " ":
		ok, err := m.board.Flag(m.cursor)
		m.logMove("flag", ok, err)
		if err == nil && !ok {
			ok, err = m.board.Chord(m.cursor, m.opts.Auto)
			m.logMove("chord", ok, err)
		}
	}
	return m, nil
}

func (m Model) logMove(action string, ok bool, err error) {
	entry := m.log.WithFields(logrus.Fields{
		"action": action,
		"pos":    m.cursor.String(),
	})
	if err != nil {
		entry.WithError(err).Error("move rejected by board")
		return
	}
	entry.WithField("ok", ok).Debug("move")
}

func (m Model) status() string {
	left := m.board.MineCount() - m.board.FlagCount()
	s := statusStyle.Render(fmt.Sprintf(
		"%dx%d  mines left: %d", m.board.Rows(), m.board.Cols(), left,
	))
	if Exploded(m.board) {
		s += "  " + boomStyle.Render("BOOM")
	}
	return s
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(Render(m.board, RenderOptions{Color: m.opts.Color, Cursor: &m.cursor}))
	b.WriteString("\n\n")
	b.WriteString(m.status())
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpText))
	b.WriteString("\n")
	return b.String()
}
