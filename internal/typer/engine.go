package typer

import (
	"context"
	"time"
	"unicode/utf8"

	"github.com/san-kum/infinityper/internal/config"
	"github.com/san-kum/infinityper/internal/palette"
	"github.com/san-kum/infinityper/internal/term"
)

// State is the runtime bookkeeping of a single Run.
type State struct {
	Iteration  uint64
	ColorIndex uint64
	LineBreak  uint64
}

// Observer is notified after every reveal step and at every pass boundary.
type Observer interface {
	OnReveal(st State, line int, chunk string)
	OnIteration(st State)
}

// Sleeper blocks for d or until ctx is done.
type Sleeper func(ctx context.Context, d time.Duration) error

type Option func(*Engine)

func WithSleeper(s Sleeper) Option {
	return func(e *Engine) { e.sleep = s }
}

func WithObserver(o Observer) Option {
	return func(e *Engine) { e.observers = append(e.observers, o) }
}

type Engine struct {
	steps     [][]string
	runs      uint64
	mode      config.RedrawMode
	color     bool
	delay     time.Duration
	presenter term.Presenter
	cycle     *palette.Cycle
	writer    term.LineWriter
	sleep     Sleeper
	observers []Observer
}

// New builds an engine from a validated configuration. cycle may be nil when
// color is disabled.
func New(cfg *config.Config, presenter term.Presenter, cycle *palette.Cycle, w term.LineWriter, opts ...Option) *Engine {
	if cfg.Color && cycle == nil {
		panic("typer: color enabled without a palette")
	}
	lines := cfg.Lines()
	steps := make([][]string, len(lines))
	for i, line := range lines {
		steps[i] = RevealSteps(line)
	}
	e := &Engine{
		steps:     steps,
		runs:      cfg.Runs,
		mode:      cfg.Mode(),
		color:     cfg.Color,
		delay:     cfg.Delay(),
		presenter: presenter,
		cycle:     cycle,
		writer:    w,
		sleep:     Sleep,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Engine) Run(ctx context.Context) error {
	var st State

	for {
		if st.Iteration >= e.runs {
			return nil
		}
		if ctx.Err() != nil {
			return nil
		}

		for li, steps := range e.steps {
			for i, chunk := range steps {
				if ctx.Err() != nil {
					return nil
				}
				step := i + 1

				if e.mode == config.ClearAndRewrite {
					if step == 1 {
						st.LineBreak++
					}
					if err := e.presenter.MoveCursor(int(st.LineBreak), 1); err != nil {
						return &WriteError{Iteration: st.Iteration, Line: li, Step: step, Err: err}
					}
				}

				var tint *term.Tint
				if e.color {
					tint = term.TintFor(e.cycle, st.ColorIndex)
				}
				if err := e.writer.WriteLine(chunk, tint); err != nil {
					return &WriteError{Iteration: st.Iteration, Line: li, Step: step, Err: err}
				}
				for _, o := range e.observers {
					o.OnReveal(st, li, chunk)
				}

				if err := e.sleep(ctx, e.delay); err != nil {
					return nil
				}
			}
			st.ColorIndex++
		}

		if e.mode == config.ClearAndRewrite {
			st.LineBreak = 0
			if err := e.presenter.ClearAndHome(); err != nil {
				return &WriteError{Iteration: st.Iteration, Line: len(e.steps), Err: err}
			}
		}
		st.Iteration++
		for _, o := range e.observers {
			o.OnIteration(st)
		}
	}
}

// Sleep waits for d, returning early with ctx.Err() if ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// RevealSteps returns every chunk a line is revealed as, shortest first.
func RevealSteps(line string) []string {
	steps := make([]string, 0, utf8.RuneCountInString(line))
	for end := 0; end < len(line); {
		_, size := utf8.DecodeRuneInString(line[end:])
		end += size
		steps = append(steps, line[:end])
	}
	return steps
}
