package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/infinityper/internal/term"
)

// Screen forwards presenter and writer calls to a running program. It never
// fails: once the program has exited, sends are dropped.
type Screen struct {
	send  func(tea.Msg)
	lines *term.Lines
}

func NewScreen(send func(tea.Msg), lines *term.Lines) *Screen {
	return &Screen{send: send, lines: lines}
}

func (s *Screen) ClearAndHome() error {
	s.send(clearMsg{})
	return nil
}

func (s *Screen) MoveCursor(row, col int) error {
	s.send(moveMsg{row: row})
	return nil
}

func (s *Screen) WriteLine(chunk string, tint *term.Tint) error {
	s.send(lineMsg{text: s.lines.Render(chunk, tint)})
	return nil
}
