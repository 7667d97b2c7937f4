package typer

import (
	"errors"
	"fmt"
)

// ErrWrite matches any failure to write to the output.
var ErrWrite = errors.New("typer: write failed")

// WriteError wraps an output failure with the position it happened at.
type WriteError struct {
	Iteration uint64
	Line      int
	Step      int
	Err       error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("typer: write failed (iteration %d, line %d, step %d): %v", e.Iteration, e.Line, e.Step, e.Err)
}

func (e *WriteError) Unwrap() error { return e.Err }

func (e *WriteError) Is(target error) bool { return target == ErrWrite }
