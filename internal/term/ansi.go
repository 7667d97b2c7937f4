package term

import "fmt"

// ANSI control sequences understood by the presenter.
const (
	ClearScreen = "\x1b[2J"
	CursorFmt   = "\x1b[%d;%dH"
)

// CursorTo returns the sequence that moves the cursor to 1-based row, col.
func CursorTo(row, col int) string {
	return fmt.Sprintf(CursorFmt, row, col)
}
