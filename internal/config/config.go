package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultText is "Devotion" by Robert Frost.
const DefaultText = `The heart can think of no devotion
Greater than being shore to the ocean–
Holding the curve of one position,
Counting an endless repetition.`

// MaxSpeed is the longest delay, in milliseconds, a time.Duration can hold.
const MaxSpeed = float64(math.MaxInt64) / float64(time.Millisecond)

const (
	DefaultSpeed   = 150.0
	DefaultRuns    = uint64(math.MaxUint64)
	DefaultPalette = "classic"
)

var (
	ErrEmptyText      = errors.New("config: input text is empty")
	ErrInvalidSpeed   = errors.New("config: speed must be a non-negative number of milliseconds below MaxSpeed")
	ErrUnknownPalette = errors.New("config: unknown palette")
)

// RedrawMode selects whether output scrolls or is redrawn in place.
type RedrawMode int

const (
	ClearAndRewrite RedrawMode = iota
	RepeatInPlace
)

func (m RedrawMode) String() string {
	switch m {
	case RepeatInPlace:
		return "repeat"
	case ClearAndRewrite:
		return "clear"
	default:
		return fmt.Sprintf("RedrawMode(%d)", int(m))
	}
}

type Config struct {
	Text     string  `yaml:"text"`
	Speed    float64 `yaml:"speed"`
	Runs     uint64  `yaml:"runs"`
	Repeat   bool    `yaml:"repeat"`
	Color    bool    `yaml:"color"`
	Gradient bool    `yaml:"gradient"`
	Palette  string  `yaml:"palette"`
	Debug    bool    `yaml:"debug"`
	Verbose  int     `yaml:"-"`
}

func DefaultConfig() *Config {
	return &Config{
		Text:    DefaultText,
		Speed:   DefaultSpeed,
		Runs:    DefaultRuns,
		Palette: DefaultPalette,
	}
}

func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if err := cfg.Merge(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Merge overlays the keys present in a YAML file onto c.
func (c *Config) Merge(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Validate checks the invariants the typing engine relies on. knownPalette
// reports whether a palette name resolves; nil skips the palette check.
func (c *Config) Validate(knownPalette func(string) bool) error {
	if strings.Trim(c.Text, "\r\n") == "" {
		return ErrEmptyText
	}
	if c.Speed < 0 || c.Speed >= MaxSpeed || math.IsNaN(c.Speed) || math.IsInf(c.Speed, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSpeed, c.Speed)
	}
	if knownPalette != nil && c.Color && !knownPalette(c.Palette) {
		return fmt.Errorf("%w: %q", ErrUnknownPalette, c.Palette)
	}
	return nil
}

// Lines splits the input the way line iteration does: on "\n", dropping a
// trailing "\r" from each line and a single final empty line.
func (c *Config) Lines() []string {
	if c.Text == "" {
		return nil
	}
	lines := strings.Split(c.Text, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

// Delay converts Speed, saturating at the largest representable duration.
func (c *Config) Delay() time.Duration {
	d := c.Speed * float64(time.Millisecond)
	if d >= float64(math.MaxInt64) || math.IsInf(d, 1) {
		return time.Duration(math.MaxInt64)
	}
	if d <= 0 || math.IsNaN(d) {
		return 0
	}
	return time.Duration(d)
}

func (c *Config) Mode() RedrawMode {
	if c.Repeat {
		return RepeatInPlace
	}
	return ClearAndRewrite
}

// Clone returns a copy safe to mutate.
func (c *Config) Clone() *Config {
	cp := *c
	return &cp
}
