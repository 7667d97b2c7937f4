package term

import (
	"fmt"
	"io"
)

// Presenter positions the cursor and clears the display.
type Presenter interface {
	ClearAndHome() error
	MoveCursor(row, col int) error
}

// ANSI is a stateless Presenter that writes escape sequences to an output.
type ANSI struct {
	w io.Writer
}

func NewANSI(w io.Writer) *ANSI {
	return &ANSI{w: w}
}

// ClearAndHome clears the screen and puts the cursor at row 1, column 1.
func (a *ANSI) ClearAndHome() error {
	_, err := io.WriteString(a.w, ClearScreen+CursorTo(1, 1))
	return err
}

// MoveCursor moves to a 1-based position. Coordinates below 1 are a
// programming error.
func (a *ANSI) MoveCursor(row, col int) error {
	if row < 1 || col < 1 {
		panic(fmt.Sprintf("term: cursor position (%d, %d) is not 1-based", row, col))
	}
	_, err := io.WriteString(a.w, CursorTo(row, col))
	return err
}
