package render

import "github.com/charmbracelet/x/ansi"

// The logical canvas every scene draws on
const (
	Width  = 128
	Height = 24
)

// Screen places text on the fixed canvas. Rows and columns are 1-based
// and all alignment is measured in display columns, so styled and wide
// text line up. Writing an empty string clears the row.
type Screen struct {
	term   Terminal
	Width  int
	Height int
}

func NewScreen(term Terminal) *Screen {
	return &Screen{term: term, Width: Width, Height: Height}
}

// StringWidth is the number of columns text occupies, escapes excluded
func StringWidth(text string) int {
	return ansi.StringWidth(text)
}

func (s *Screen) Flush() error {
	return s.term.Flush()
}

func (s *Screen) ClearScreen() {
	s.term.MoveCursor(1, 1)
	s.term.ClearRegion(ToEnd)
}

// ClearDown clears from the start of row to the bottom
func (s *Screen) ClearDown(row int) {
	s.term.MoveCursor(row, 1)
	s.term.ClearRegion(ToEnd)
}

func (s *Screen) ClearLine(row int) {
	s.term.MoveCursor(row, 1)
	s.term.ClearRegion(LineToEnd)
}

// ClearHere clears from the cursor to the bottom
func (s *Screen) ClearHere() {
	s.term.ClearRegion(ToEnd)
}

func (s *Screen) WriteLeft(row int, text string) {
	if text == "" {
		s.ClearLine(row)
		return
	}
	s.term.MoveCursor(row, 1)
	s.term.WriteRaw(text)
	s.term.ClearRegion(LineToEnd)
}

func (s *Screen) WriteRight(row int, text string) {
	if text == "" {
		s.ClearLine(row)
		return
	}
	s.term.MoveCursor(row, s.rightColumn(text))
	s.term.ClearRegion(LineToStart)
	s.term.WriteRaw(text)
}

func (s *Screen) WriteCenter(row int, text string) {
	if text == "" {
		s.ClearLine(row)
		return
	}
	s.term.MoveCursor(row, s.centerColumn(text))
	s.term.ClearRegion(LineToStart)
	s.term.WriteRaw(text)
	s.term.ClearRegion(LineToEnd)
}

// WriteJustify writes three texts on one row: left, center and right
// aligned. Empty center or right texts are skipped.
func (s *Screen) WriteJustify(row int, left, center, right string) {
	s.term.MoveCursor(row, 1)
	s.term.WriteRaw(left)
	s.term.ClearRegion(LineToEnd)

	if right != "" {
		s.term.MoveCursor(row, s.rightColumn(right))
		s.term.WriteRaw(right)
	}
	if center != "" {
		s.term.MoveCursor(row, s.centerColumn(center))
		s.term.WriteRaw(center)
	}
}

// WriteLine writes text at a column and clears the rest of the row
func (s *Screen) WriteLine(row, col int, text string) {
	if text == "" {
		s.ClearLine(row)
		return
	}
	s.term.MoveCursor(row, col)
	s.term.ClearRegion(LineToStart)
	s.term.WriteRaw(text)
	s.term.ClearRegion(LineToEnd)
}

// WriteText writes text at a column, leaving the rest of the row alone
func (s *Screen) WriteText(row, col int, text string) {
	if text == "" {
		s.ClearLine(row)
		return
	}
	s.term.MoveCursor(row, col)
	s.term.WriteRaw(text)
}

func (s *Screen) centerColumn(text string) int {
	return clampColumn(floorHalf(s.Width-StringWidth(text)) + 1)
}

func (s *Screen) rightColumn(text string) int {
	return clampColumn(s.Width - StringWidth(text) + 1)
}

func floorHalf(n int) int {
	if n < 0 {
		return -((-n + 1) / 2)
	}
	return n / 2
}

func clampColumn(col int) int {
	if col < 1 {
		return 1
	}
	return col
}
