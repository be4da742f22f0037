package input

// Source delivers raw key input. Each chunk read from the terminal is
// sent as one slice; the channel closes when input ends.
type Source interface {
	Keys() <-chan []byte
	Close() error
}
