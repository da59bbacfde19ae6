// Package tui is a full-screen terminal client built on bubbletea.
package tui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iamasit07/connect4-engine/internal/domain"
	"github.com/iamasit07/connect4-engine/internal/service/game"
	"github.com/iamasit07/connect4-engine/internal/view"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	hintStyle  = lipgloss.NewStyle().Faint(true)
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)

type aiMoveMsg struct {
	move domain.MoveRecord
	err  error
}

type Model struct {
	session  *game.Session
	renderer *view.Renderer
	cursor   int
	thinking bool
	message  string
	failed   bool
}

func New(session *game.Session, renderer *view.Renderer) Model {
	cols := session.Board().Cols()
	return Model{
		session:  session,
		renderer: renderer,
		cursor:   cols / 2,
		thinking: session.IsAITurn(),
	}
}

func (m Model) Init() tea.Cmd {
	if m.thinking {
		return playAI(m.session)
	}
	return nil
}

func playAI(s *game.Session) tea.Cmd {
	return func() tea.Msg {
		move, err := s.PlayAI()
		return aiMoveMsg{move: move, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case aiMoveMsg:
		m.thinking = false
		if msg.err != nil {
			m.message, m.failed = msg.err.Error(), true
			return m, nil
		}
		m.message, m.failed = fmt.Sprintf("Player %d (%v) chose column %d", msg.move.Player, msg.move.Piece, msg.move.Column+1), false
		m.checkFinished()
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.session.Board().Cols()

	switch key := msg.String(); key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		if m.cursor > 0 {
			m.cursor--
		}
	case "right", "l":
		if m.cursor < cols-1 {
			m.cursor++
		}
	case "r":
		if m.session.IsFinished() {
			next, err := m.session.Restart()
			if err != nil {
				m.message, m.failed = err.Error(), true
				return m, nil
			}
			restarted := New(next, m.renderer)
			return restarted, restarted.Init()
		}
	case "enter", " ":
		return m.drop()
	default:
		if len(key) == 1 && key[0] >= '1' && key[0] <= '9' {
			if col := int(key[0] - '1'); col < cols {
				m.cursor = col
			}
		}
	}
	return m, nil
}

func (m Model) drop() (tea.Model, tea.Cmd) {
	if m.thinking || m.session.IsFinished() {
		return m, nil
	}

	if _, err := m.session.PlayHuman(m.cursor); err != nil {
		if errors.Is(err, domain.ErrColumnFull) {
			m.message, m.failed = "Column is full. Choose another column.", true
		} else {
			m.message, m.failed = err.Error(), true
		}
		return m, nil
	}
	m.message, m.failed = "", false

	if m.checkFinished() {
		return m, nil
	}
	if m.session.IsAITurn() {
		m.thinking = true
		return m, playAI(m.session)
	}
	return m, nil
}

// checkFinished sets the end-of-game message and reports whether the game is over.
func (m *Model) checkFinished() bool {
	if !m.session.IsFinished() {
		return false
	}
	if m.session.Status() == domain.StatusWon {
		m.message = fmt.Sprintf("Player %d wins!", m.session.Winner().Player())
	} else {
		m.message = "The game is a tie!"
	}
	m.failed = false
	return true
}

func (m Model) View() string {
	var sb strings.Builder
	board := m.session.Board()

	sb.WriteString(titleStyle.Render("Connect Four"))
	sb.WriteString("\n\n")
	sb.WriteString(view.Marker(board.Cols(), m.cursor))
	sb.WriteString("\n")
	sb.WriteString(m.renderer.Render(board))
	sb.WriteString("\n")

	switch {
	case m.session.IsFinished():
	case m.thinking:
		sb.WriteString("AI is thinking...\n")
	default:
		piece := m.session.CurrentPiece()
		sb.WriteString(fmt.Sprintf("Player %d (%s) to move · move %d\n", piece.Player(), m.renderer.Piece(piece), m.session.MoveCount()+1))
	}

	if m.message != "" {
		if m.failed {
			sb.WriteString(errorStyle.Render(m.message))
		} else {
			sb.WriteString(m.message)
		}
		sb.WriteString("\n")
	}

	if m.session.IsFinished() {
		sb.WriteString(movesLine(m.session.History()))
		sb.WriteString("\n")
	}

	hint := "←/→ or 1-9 select · enter drop · q quit"
	if m.session.IsFinished() {
		hint = "r restart · q quit"
	}
	sb.WriteString(hintStyle.Render(hint))
	sb.WriteString("\n")
	return sb.String()
}

// movesLine lists the played columns, 1-based, in order.
func movesLine(history []domain.MoveRecord) string {
	cols := make([]string, len(history))
	for i, move := range history {
		cols[i] = strconv.Itoa(move.Column + 1)
	}
	return "Moves: " + strings.Join(cols, " ")
}
