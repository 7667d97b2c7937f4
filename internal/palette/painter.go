package palette

import (
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"
)

// Painter renders text in palette colors for a particular output.
type Painter struct {
	renderer *lipgloss.Renderer
}

// NewPainter detects the color profile of w.
func NewPainter(w io.Writer) *Painter {
	return &Painter{renderer: lipgloss.NewRenderer(w)}
}

// NewPainterWithProfile forces a color profile regardless of the output.
func NewPainterWithProfile(profile termenv.Profile) *Painter {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(profile)
	return &Painter{renderer: r}
}

func (p *Painter) style(c lipgloss.Color) lipgloss.Style {
	return p.renderer.NewStyle().Foreground(c).TabWidth(lipgloss.NoTabConversion)
}

// Solid renders text with a single foreground color.
func (p *Painter) Solid(text string, c lipgloss.Color) string {
	if text == "" {
		return ""
	}
	return p.style(c).Render(text)
}

// Gradient renders text blending rune by rune from one color to another.
// Colors that are not hex triplets fall back to Solid.
func (p *Painter) Gradient(text string, from, to lipgloss.Color) string {
	n := utf8.RuneCountInString(text)
	if n == 0 {
		return ""
	}
	start, err := colorful.Hex(string(from))
	if err != nil {
		return p.Solid(text, from)
	}
	end, err := colorful.Hex(string(to))
	if err != nil {
		return p.Solid(text, from)
	}

	var b strings.Builder
	i := 0
	for _, r := range text {
		var c lipgloss.Color
		switch {
		case i == 0:
			c = from
		case i == n-1:
			c = to
		default:
			t := float64(i) / float64(n-1)
			c = lipgloss.Color(start.BlendLuv(end, t).Clamped().Hex())
		}
		b.WriteString(p.style(c).Render(string(r)))
		i++
	}
	return b.String()
}

// Swatch renders one block per palette color.
func (p *Painter) Swatch(c *Cycle) string {
	var b strings.Builder
	for _, col := range c.colors {
		b.WriteString(p.Solid("██", col))
	}
	return b.String()
}
