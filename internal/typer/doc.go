// Package typer drives the simulated typing animation.
//
// An [Engine] walks the configured lines one Unicode scalar value at a time,
// writing each growing prefix through a [term.LineWriter] and pausing between
// reveal steps. In clear-and-rewrite mode it positions the cursor on the row
// owned by the current line and clears the screen after every pass.
//
// # Example
//
//	cfg := config.DefaultConfig()
//	eng := typer.New(cfg, term.NewANSI(os.Stdout), palette.Classic, term.NewLines(os.Stdout))
//	err := eng.Run(ctx)
//
// # Termination
//
// Run returns nil once the configured number of passes is done or when ctx
// is cancelled; cancellation is observed at every reveal step and during the
// delay. A failed write ends the run at once with a [*WriteError].
//
// Engines are not safe for concurrent use, but each Run starts from a fresh
// [State], so an Engine can be run again.
package typer
