package input

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"golang.org/x/term"
)

// ReaderSource forwards whatever is read from r, one read per chunk.
type ReaderSource struct {
	keys chan []byte
}

func NewReaderSource(r io.Reader) *ReaderSource {
	s := &ReaderSource{keys: make(chan []byte, 16)}
	go s.read(r)
	return s
}

func (s *ReaderSource) read(r io.Reader) {
	defer close(s.keys)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			data := make([]byte, n)
			copy(data, buf[:n])
			s.keys <- data
		}
		if nil != err {
			if !errors.Is(err, io.EOF) {
				log.Println(err, "unable to read input")
			}
			return
		}
	}
}

func (s *ReaderSource) Keys() <-chan []byte {
	return s.keys
}

func (s *ReaderSource) Close() error {
	return nil
}

// RawSource reads stdin with the terminal in raw mode, so escape
// sequences arrive exactly as the terminal sends them.
type RawSource struct {
	*ReaderSource
	fd    int
	state *term.State
}

func NewRawSource(f *os.File) (*RawSource, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, fmt.Errorf("%v is not a terminal", f.Name())
	}
	state, err := term.MakeRaw(fd)
	if nil != err {
		return nil, fmt.Errorf("unable to enter raw mode: %w", err)
	}
	return &RawSource{
		ReaderSource: NewReaderSource(f),
		fd:           fd,
		state:        state,
	}, nil
}

// Close restores the terminal mode. The reader goroutine stays blocked
// on stdin until the process exits.
func (s *RawSource) Close() error {
	return term.Restore(s.fd, s.state)
}
