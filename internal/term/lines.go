package term

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/infinityper/internal/palette"
)

// Tint is the color of a line and the palette color after it, which a
// gradient blends toward.
type Tint struct {
	Color lipgloss.Color
	Next  lipgloss.Color
}

// TintFor returns the tint of the n-th line.
func TintFor(cycle *palette.Cycle, n uint64) *Tint {
	return &Tint{Color: cycle.ColorFor(n), Next: cycle.ColorFor(n + 1)}
}

// LineWriter emits one revealed chunk, optionally tinted.
type LineWriter interface {
	WriteLine(chunk string, tint *Tint) error
}

// Lines writes each chunk followed by a newline in a single Write call.
type Lines struct {
	w        io.Writer
	painter  *palette.Painter
	gradient bool
}

type LinesOption func(*Lines)

// WithPainter overrides the painter detected from the output.
func WithPainter(p *palette.Painter) LinesOption {
	return func(l *Lines) { l.painter = p }
}

// WithGradient blends each chunk from its color toward the next one.
func WithGradient(on bool) LinesOption {
	return func(l *Lines) { l.gradient = on }
}

func NewLines(w io.Writer, opts ...LinesOption) *Lines {
	l := &Lines{w: w}
	for _, opt := range opts {
		opt(l)
	}
	if l.painter == nil {
		l.painter = palette.NewPainter(w)
	}
	return l
}

func (l *Lines) WriteLine(chunk string, tint *Tint) error {
	_, err := io.WriteString(l.w, l.Render(chunk, tint)+"\n")
	return err
}

// Render styles a chunk without writing it.
func (l *Lines) Render(chunk string, tint *Tint) string {
	switch {
	case tint == nil:
		return chunk
	case l.gradient:
		return l.painter.Gradient(chunk, tint.Color, tint.Next)
	default:
		return l.painter.Solid(chunk, tint.Color)
	}
}

// IsBrokenPipe reports whether err means the reader of the output went away.
func IsBrokenPipe(err error) bool {
	return errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, io.ErrClosedPipe) ||
		errors.Is(err, os.ErrClosed)
}
