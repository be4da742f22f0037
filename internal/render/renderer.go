package render

// Scope selects the region cleared by ClearRegion.
type Scope uint8

const (
	ToEnd       Scope = iota // cursor to the end of the screen
	LineToEnd                // cursor to the end of the line
	LineToStart              // start of the line to the cursor
)

// Terminal is the display capability the Screen draws through. Output
// may be buffered until Flush.
type Terminal interface {
	MoveCursor(row, col int)
	ClearRegion(scope Scope)
	WriteRaw(text string)
	Flush() error
}
