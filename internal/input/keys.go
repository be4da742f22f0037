package input

// Raw byte sequences of the keys the game reacts to.
const (
	// Alt+Shift+D and Alt+Shift+Q, reserved by the engine
	Debug = "\x1b\x44"
	Quit  = "\x1b\x51"

	Up        = "\x1b[A"
	Down      = "\x1b[B"
	Right     = "\x1b[C"
	Left      = "\x1b[D"
	ShiftUp   = "\x1b[1;2A"
	ShiftDown = "\x1b[1;2B"

	Enter     = "\r"
	Space     = " "
	Escape    = "\x1b"
	Backspace = "\x7f"
)

// Split breaks one read into key sequences, starting a new one at every
// escape byte. Runs of plain characters stay together.
func Split(data []byte) [][]byte {
	var keys [][]byte
	start := 0
	for i := 1; i < len(data); i++ {
		if data[i] == Escape[0] {
			keys = append(keys, data[start:i])
			start = i
		}
	}
	if start < len(data) {
		keys = append(keys, data[start:])
	}
	return keys
}
