package render

import (
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// ANSITerminal buffers ANSI control sequences and writes them out in a
// single call per Flush.
type ANSITerminal struct {
	out    io.Writer
	buffer strings.Builder
}

func NewANSITerminal(out io.Writer) *ANSITerminal {
	return &ANSITerminal{out: out}
}

// Init switches to the alternate buffer, hides the cursor and clears
func (t *ANSITerminal) Init() error {
	t.buffer.WriteString("\033[?1049h") // Enable alternate buffer
	t.buffer.WriteString("\033[?25l")   // Make the cursor invisible
	t.MoveCursor(1, 1)
	t.ClearRegion(ToEnd)
	return t.Flush()
}

// Deinit undoes Init
func (t *ANSITerminal) Deinit() error {
	t.buffer.WriteString("\033[?1049l") // Disable alternate buffer
	t.buffer.WriteString("\033[?25h")   // Make the cursor visible
	return t.Flush()
}

func (t *ANSITerminal) MoveCursor(row, col int) {
	t.buffer.WriteString(ansi.CursorPosition(col, row))
}

func (t *ANSITerminal) ClearRegion(scope Scope) {
	switch scope {
	case ToEnd:
		t.buffer.WriteString(ansi.EraseDisplay(0))
	case LineToEnd:
		t.buffer.WriteString(ansi.EraseLine(0))
	case LineToStart:
		t.buffer.WriteString(ansi.EraseLine(1))
	}
}

func (t *ANSITerminal) WriteRaw(text string) {
	t.buffer.WriteString(text)
}

func (t *ANSITerminal) Flush() error {
	if t.buffer.Len() == 0 {
		return nil
	}
	_, err := io.WriteString(t.out, t.buffer.String())
	t.buffer.Reset()
	return err
}
