package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/infinityper/internal/config"
)

const defaultHeight = 24

var (
	frameStyle = lipgloss.NewStyle().Padding(1, 2)
	helpStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(1)
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff4444")).Bold(true)
)

type (
	clearMsg struct{}
	moveMsg  struct{ row int }
	lineMsg  struct{ text string }
	doneMsg  struct{ err error }
)

// Model is a row buffer the engine draws into.
type Model struct {
	mode   config.RedrawMode
	rows   []string
	row    int
	height int
	cancel func()
	err    error
	done   bool
}

func NewModel(mode config.RedrawMode, cancel func()) Model {
	return Model{
		mode:   mode,
		row:    1,
		height: defaultHeight,
		cancel: cancel,
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			if m.cancel != nil {
				m.cancel()
			}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height
	case clearMsg:
		m.rows = nil
		m.row = 1
	case moveMsg:
		m.row = msg.row
	case lineMsg:
		m.write(msg.text)
	case doneMsg:
		m.done = true
		m.err = msg.err
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) write(text string) {
	if m.mode == config.RepeatInPlace {
		m.rows = append(m.rows, text)
		if limit := m.visibleRows(); len(m.rows) > limit {
			m.rows = m.rows[len(m.rows)-limit:]
		}
		return
	}
	for len(m.rows) < m.row {
		m.rows = append(m.rows, "")
	}
	m.rows[m.row-1] = text
}

// visibleRows leaves room for the frame padding and the help line.
func (m Model) visibleRows() int {
	if n := m.height - 5; n > 0 {
		return n
	}
	return 1
}

// Rows returns the current buffer contents.
func (m Model) Rows() []string {
	out := make([]string, len(m.rows))
	copy(out, m.rows)
	return out
}

func (m Model) View() string {
	var s strings.Builder
	s.WriteString(strings.Join(m.rows, "\n"))
	if m.err != nil {
		s.WriteString("\n" + errStyle.Render(m.err.Error()))
	}
	status := "q: quit  mode: " + m.mode.String()
	if m.done {
		status += "  (finished)"
	}
	s.WriteString("\n" + helpStyle.Render(status))
	return frameStyle.Render(s.String())
}
