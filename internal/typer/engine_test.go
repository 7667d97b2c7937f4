package typer_test

import (
	"bytes"
	"context"
	"errors"
	"math"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/infinityper/internal/config"
	"github.com/san-kum/infinityper/internal/palette"
	"github.com/san-kum/infinityper/internal/term"
	"github.com/san-kum/infinityper/internal/typer"
)

func newConfig(text string, runs uint64, repeat bool) *config.Config {
	cfg := config.DefaultConfig()
	cfg.Text = text
	cfg.Runs = runs
	cfg.Repeat = repeat
	cfg.Speed = 0
	return cfg
}

var _ = Describe("Engine", func() {
	var (
		rec *recorder
		ctx context.Context
	)

	BeforeEach(func() {
		rec = &recorder{}
		ctx = context.Background()
	})

	run := func(cfg *config.Config, cycle *palette.Cycle, opts ...typer.Option) error {
		opts = append([]typer.Option{typer.WithSleeper(rec.sleeper())}, opts...)
		return typer.New(cfg, rec, cycle, rec, opts...).Run(ctx)
	}

	Describe("reveal steps", func() {
		It("grows each line by one rune per step", func() {
			Expect(run(newConfig("héllo", 1, true), nil)).To(Succeed())
			Expect(rec.chunks).To(Equal([]string{"h", "hé", "hél", "héll", "héllo"}))
		})

		It("sleeps after every reveal step including the first", func() {
			Expect(run(newConfig("ab\nc", 1, true), nil)).To(Succeed())
			Expect(rec.events).To(Equal([]string{
				"write a", "sleep",
				"write ab", "sleep",
				"write c", "sleep",
			}))
		})

		It("handles multi-byte scalar values", func() {
			Expect(run(newConfig("日本語", 1, true), nil)).To(Succeed())
			Expect(rec.chunks).To(Equal([]string{"日", "日本", "日本語"}))
		})
	})

	Describe("iteration count", func() {
		It("performs no passes when runs is zero", func() {
			Expect(run(newConfig("abc", 0, false), nil)).To(Succeed())
			Expect(rec.events).To(BeEmpty())
			Expect(rec.sleeps).To(BeZero())
		})

		DescribeTable("performs exactly N passes",
			func(n uint64, repeat bool) {
				obs := &iterations{}
				Expect(run(newConfig("ab\nc", n, repeat), nil, typer.WithObserver(obs))).To(Succeed())
				Expect(rec.chunks).To(HaveLen(int(n) * 3))
				Expect(obs.passes).To(HaveLen(int(n)))
				Expect(obs.reveal).To(Equal(int(n) * 3))
				for i, st := range obs.passes {
					Expect(st.Iteration).To(Equal(uint64(i + 1)))
				}
			},
			Entry("one pass, repeat", uint64(1), true),
			Entry("three passes, repeat", uint64(3), true),
			Entry("two passes, clear", uint64(2), false),
		)

		It("stops an unbounded run when the context is cancelled", func() {
			var cancel context.CancelFunc
			ctx, cancel = context.WithCancel(context.Background())
			obs := &iterations{}
			stopper := typer.WithObserver(&cancelAfter{n: 7, cancel: cancel})

			Expect(run(newConfig("ab\nc", math.MaxUint64, false), nil, typer.WithObserver(obs), stopper)).To(Succeed())
			Expect(rec.chunks).To(HaveLen(7))
			Expect(obs.passes).To(HaveLen(2))
		})
	})

	Describe("clear and rewrite mode", func() {
		It("moves to a new row only when a line starts", func() {
			Expect(run(newConfig("ab\nc", 1, false), nil)).To(Succeed())
			Expect(rec.moves).To(Equal([]int{1, 1, 2}))
		})

		It("clears once per pass and restarts at row one", func() {
			Expect(run(newConfig("ab\nc", 2, false), nil)).To(Succeed())
			Expect(rec.moves).To(Equal([]int{1, 1, 2, 1, 1, 2}))
			Expect(rec.events).To(Equal([]string{
				"move 1;1", "write a", "sleep",
				"move 1;1", "write ab", "sleep",
				"move 2;1", "write c", "sleep",
				"clear",
				"move 1;1", "write a", "sleep",
				"move 1;1", "write ab", "sleep",
				"move 2;1", "write c", "sleep",
				"clear",
			}))
		})

		It("never clears or moves in repeat mode", func() {
			Expect(run(newConfig("ab\nc", 2, true), nil)).To(Succeed())
			Expect(rec.moves).To(BeEmpty())
			Expect(rec.events).NotTo(ContainElement("clear"))
		})

		It("does not spend a row on empty lines", func() {
			Expect(run(newConfig("a\n\nb", 1, false), nil)).To(Succeed())
			Expect(rec.moves).To(Equal([]int{1, 2}))
		})
	})

	Describe("color", func() {
		cycle := palette.MustNew("test", "#111111", "#222222", "#333333")

		It("advances once per line, not per character", func() {
			cfg := newConfig("ab\ncd\nef\ngh", 1, true)
			cfg.Color = true
			Expect(run(cfg, cycle)).To(Succeed())
			Expect(rec.colors).To(Equal([]lipgloss.Color{
				"#111111", "#111111",
				"#222222", "#222222",
				"#333333", "#333333",
				"#111111", "#111111",
			}))
		})

		It("continues the cycle across passes", func() {
			cfg := newConfig("a\nb", 2, true)
			cfg.Color = true
			Expect(run(cfg, cycle)).To(Succeed())
			Expect(rec.colors).To(Equal([]lipgloss.Color{"#111111", "#222222", "#333333", "#111111"}))
		})

		It("blends toward the palette neighbour even when colors repeat", func() {
			dup := palette.MustNew("dup", "#ff0000", "#ff0000", "#0000ff")
			cfg := newConfig("a\nb\nc", 1, true)
			cfg.Color = true
			Expect(run(cfg, dup)).To(Succeed())
			Expect(rec.colors).To(Equal([]lipgloss.Color{"#ff0000", "#ff0000", "#0000ff"}))
			Expect(rec.nexts).To(Equal([]lipgloss.Color{"#ff0000", "#0000ff", "#ff0000"}))
		})

		It("passes no color when disabled", func() {
			Expect(run(newConfig("ab", 1, true), cycle)).To(Succeed())
			Expect(rec.colors).To(BeEmpty())
		})

		It("requires a palette when color is enabled", func() {
			cfg := newConfig("ab", 1, true)
			cfg.Color = true
			Expect(func() { typer.New(cfg, rec, nil, rec) }).To(Panic())
		})
	})

	Describe("write failures", func() {
		It("stops immediately on the failing reveal step", func() {
			rec.failWriteAt = 3
			err := run(newConfig("abcdef", math.MaxUint64, true), nil)

			Expect(err).To(MatchError(typer.ErrWrite))
			Expect(errors.Is(err, errClosed)).To(BeTrue())
			Expect(rec.writes).To(Equal(3))
			Expect(rec.sleeps).To(Equal(2))

			var werr *typer.WriteError
			Expect(errors.As(err, &werr)).To(BeTrue())
			Expect(werr.Step).To(Equal(3))
			Expect(werr.Line).To(Equal(0))
			Expect(werr.Iteration).To(BeZero())
		})

		It("propagates a failed screen clear", func() {
			rec.failClear = true
			err := run(newConfig("a", 5, false), nil)
			Expect(err).To(MatchError(typer.ErrWrite))
			Expect(rec.writes).To(Equal(1))
		})
	})

	Describe("real output", func() {
		render := func() string {
			var buf bytes.Buffer
			cfg := newConfig("hello\nwörld", 2, true)
			lines := term.NewLines(&buf, term.WithPainter(palette.NewPainterWithProfile(termenv.Ascii)))
			Expect(typer.New(cfg, term.NewANSI(&buf), nil, lines).Run(context.Background())).To(Succeed())
			return buf.String()
		}

		It("is byte-identical across runs", func() {
			first := render()
			Expect(first).NotTo(BeEmpty())
			Expect(render()).To(Equal(first))
		})

		It("emits the exact terminal protocol in clear mode", func() {
			var buf bytes.Buffer
			cfg := newConfig("ab\nc", 1, false)
			lines := term.NewLines(&buf, term.WithPainter(palette.NewPainterWithProfile(termenv.Ascii)))
			Expect(typer.New(cfg, term.NewANSI(&buf), nil, lines).Run(context.Background())).To(Succeed())
			Expect(buf.String()).To(Equal(
				"\x1b[1;1Ha\n\x1b[1;1Hab\n\x1b[2;1Hc\n\x1b[2J\x1b[1;1H",
			))
		})

		It("cancels during the delay", func() {
			ctx, cancel := context.WithCancel(context.Background())
			cfg := newConfig("abc", math.MaxUint64, true)
			cfg.Speed = float64(time.Hour / time.Millisecond)

			done := make(chan error, 1)
			go func() {
				done <- typer.New(cfg, nil, nil, term.NewLines(&bytes.Buffer{})).Run(ctx)
			}()
			cancel()
			Eventually(done).Should(Receive(BeNil()))
		})
	})
})

// cancelAfter cancels the run once n chunks have been revealed.
type cancelAfter struct {
	n      int
	seen   int
	cancel context.CancelFunc
}

func (c *cancelAfter) OnReveal(typer.State, int, string) {
	c.seen++
	if c.seen == c.n {
		c.cancel()
	}
}

func (c *cancelAfter) OnIteration(typer.State) {}
