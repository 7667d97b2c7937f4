package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/charmbracelet/log"
	"github.com/san-kum/infinityper/internal/config"
	"github.com/san-kum/infinityper/internal/palette"
	"github.com/san-kum/infinityper/internal/term"
	"github.com/san-kum/infinityper/internal/tui"
	"github.com/san-kum/infinityper/internal/typer"
	"github.com/spf13/cobra"
)

// main exits 0 when the run finishes, is interrupted or the reader of stdout
// goes away, and 1 on configuration or other output errors.
func main() {
	os.Exit(run())
}

func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// With SIGPIPE registered, writes to a closed stdout fail with EPIPE
	// instead of killing the process.
	signal.Notify(make(chan os.Signal, 1), syscall.SIGPIPE)

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		if term.IsBrokenPipe(err) {
			return 0
		}
		log.Error("infinityper failed", "err", err)
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "infinityper",
		Short: "simulate typed text in the terminal",
		Example: heredoc.Doc(`
			# Type the default poem forever, redrawing in place
			$ infinityper

			# Type two lines three times in color, scrolling
			$ infinityper -i $'hello\nworld' -r 3 -R -c

			# Use a preset with a custom speed
			$ infinityper --preset banner -s 60
		`),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			setupLogging(cmd.ErrOrStderr(), opts.verbose, opts.debugRequested())
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			return typeText(cmd.Context(), cmd, cfg)
		},
	}
	opts.bind(rootCmd)

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, name := range config.ListPresets() {
				p := config.GetPreset(name)
				fmt.Fprintf(out, "  %-10s %s\n", name, p.Mode())
			}
			return nil
		},
	}

	palettesCmd := &cobra.Command{
		Use:   "palettes",
		Short: "list available color palettes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			painter := palette.NewPainter(out)
			for _, p := range palette.Palettes {
				fmt.Fprintf(out, "  %-10s %s\n", p.Name(), painter.Swatch(p))
			}
			return nil
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "type inside a full-screen view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.resolve(cmd)
			if err != nil {
				return err
			}
			cycle, err := cycleFor(cfg)
			if err != nil {
				return err
			}
			return tui.Run(cmd.Context(), cfg, cycle, typer.WithObserver(logObserver{}))
		},
	}

	rootCmd.AddCommand(presetsCmd, palettesCmd, tuiCmd, newConfigCmd(opts))
	return rootCmd
}

// typeText runs the engine against the command's output.
func typeText(ctx context.Context, cmd *cobra.Command, cfg *config.Config) error {
	out := cmd.OutOrStdout()

	cycle, err := cycleFor(cfg)
	if err != nil {
		return err
	}
	presenter := term.NewANSI(out)
	if cfg.Mode() == config.ClearAndRewrite {
		if err := presenter.ClearAndHome(); err != nil {
			return err
		}
	}

	log.Info("typing", "lines", len(cfg.Lines()), "runs", cfg.Runs, "mode", cfg.Mode(), "speed", cfg.Speed, "color", cfg.Color)
	eng := typer.New(cfg, presenter, cycle, term.NewLines(out, term.WithGradient(cfg.Gradient)), typer.WithObserver(logObserver{}))
	err = eng.Run(ctx)
	if errors.Is(err, typer.ErrWrite) && term.IsBrokenPipe(err) {
		log.Debug("output closed", "err", err)
	}
	if ctx.Err() != nil {
		log.Info("interrupted")
	}
	return err
}

func cycleFor(cfg *config.Config) (*palette.Cycle, error) {
	if !cfg.Color {
		return nil, nil
	}
	return palette.Get(cfg.Palette)
}
