package tui

import (
	"context"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/infinityper/internal/config"
	"github.com/san-kum/infinityper/internal/palette"
	"github.com/san-kum/infinityper/internal/term"
	"github.com/san-kum/infinityper/internal/typer"
)

// Run types cfg inside a full-screen program until the passes are done,
// ctx is cancelled or the user quits.
func Run(ctx context.Context, cfg *config.Config, cycle *palette.Cycle, opts ...typer.Option) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(NewModel(cfg.Mode(), cancel), tea.WithAltScreen())

	lines := term.NewLines(io.Discard,
		term.WithPainter(palette.NewPainter(os.Stdout)),
		term.WithGradient(cfg.Gradient),
	)
	screen := NewScreen(p.Send, lines)
	eng := typer.New(cfg, screen, cycle, screen, opts...)

	errc := make(chan error, 1)
	go func() {
		err := eng.Run(ctx)
		errc <- err
		p.Send(doneMsg{err: err})
	}()

	if _, err := p.Run(); err != nil {
		cancel()
		<-errc
		return err
	}
	cancel()
	return <-errc
}
