package main

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/san-kum/infinityper/internal/typer"
)

// setupLogging routes logs to w, stderr in practice, so stdout only carries
// the animation.
func setupLogging(w io.Writer, verbose int, debug bool) {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "infinityper",
		ReportTimestamp: true,
		Level:           levelFor(verbose, debug),
	})
	log.SetDefault(logger)
}

func levelFor(verbose int, debug bool) log.Level {
	switch {
	case debug || verbose >= 2:
		return log.DebugLevel
	case verbose == 1:
		return log.InfoLevel
	default:
		return log.WarnLevel
	}
}

// logObserver reports engine progress.
type logObserver struct{}

func (logObserver) OnReveal(st typer.State, line int, chunk string) {
	log.Debug("reveal", "iteration", st.Iteration, "line", line, "row", st.LineBreak, "chunk", chunk)
}

func (logObserver) OnIteration(st typer.State) {
	log.Info("pass complete", "iteration", st.Iteration)
}
