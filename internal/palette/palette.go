package palette

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	ErrEmptyPalette   = errors.New("palette: at least one color is required")
	ErrUnknownPalette = errors.New("palette: unknown palette")
)

// Cycle is an immutable, non-empty ordered list of colors.
type Cycle struct {
	name   string
	colors []lipgloss.Color
}

func New(name string, colors ...lipgloss.Color) (*Cycle, error) {
	if len(colors) == 0 {
		return nil, ErrEmptyPalette
	}
	c := make([]lipgloss.Color, len(colors))
	copy(c, colors)
	return &Cycle{name: name, colors: c}, nil
}

// MustNew is like New but panics on an empty palette.
func MustNew(name string, colors ...lipgloss.Color) *Cycle {
	c, err := New(name, colors...)
	if err != nil {
		panic(err)
	}
	return c
}

// ColorFor returns the color for counter n, wrapping around the palette.
func (c *Cycle) ColorFor(n uint64) lipgloss.Color {
	return c.colors[n%uint64(len(c.colors))]
}

func (c *Cycle) Len() int     { return len(c.colors) }
func (c *Cycle) Name() string { return c.name }

func (c *Cycle) Colors() []lipgloss.Color {
	out := make([]lipgloss.Color, len(c.colors))
	copy(out, c.colors)
	return out
}

// Named palettes
var (
	Classic = MustNew("classic",
		lipgloss.Color("#5f00d7"), // purple
		lipgloss.Color("#00ffff"), // cyan
		lipgloss.Color("#0087ff"), // dodger blue
		lipgloss.Color("#00d700"), // green
		lipgloss.Color("#ffff00"), // yellow
		lipgloss.Color("#ff5f00"), // orange red
		lipgloss.Color("#ff87af"), // pale violet red
	)

	Cyberpunk = MustNew("cyberpunk",
		lipgloss.Color("#ff00ff"),
		lipgloss.Color("#00ffff"),
		lipgloss.Color("#ffff00"),
		lipgloss.Color("#ff8800"),
	)

	Retro = MustNew("retro",
		lipgloss.Color("#00ff00"),
		lipgloss.Color("#00cc00"),
		lipgloss.Color("#88ff88"),
	)

	Ocean = MustNew("ocean",
		lipgloss.Color("#0077be"),
		lipgloss.Color("#00a8cc"),
		lipgloss.Color("#e0f0ff"),
		lipgloss.Color("#4488aa"),
	)

	Sunset = MustNew("sunset",
		lipgloss.Color("#ff6b6b"),
		lipgloss.Color("#feca57"),
		lipgloss.Color("#ff9ff3"),
		lipgloss.Color("#ffc048"),
	)

	Mono = MustNew("mono", lipgloss.Color("#ffffff"))

	// All available palettes, in listing order.
	Palettes = []*Cycle{Classic, Cyberpunk, Retro, Ocean, Sunset, Mono}
)

// Get returns a palette by name.
func Get(name string) (*Cycle, error) {
	for _, p := range Palettes {
		if p.name == name {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %v)", ErrUnknownPalette, name, Names())
}

// Known reports whether name is a registered palette.
func Known(name string) bool {
	_, err := Get(name)
	return err == nil
}

// Names returns the available palette names.
func Names() []string {
	names := make([]string, len(Palettes))
	for i, p := range Palettes {
		names[i] = p.name
	}
	return names
}
