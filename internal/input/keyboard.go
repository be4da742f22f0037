package input

import (
	"fmt"
	"log"

	"github.com/eiannone/keyboard"
)

// KeyboardSource reads decoded key events and turns them back into the
// byte sequences a raw terminal would send. F1 stands in for the debug
// sequence and F10 or Ctrl+C for quit.
type KeyboardSource struct {
	keys chan []byte
}

func NewKeyboardSource() (*KeyboardSource, error) {
	events, err := keyboard.GetKeys(128)
	if nil != err {
		return nil, fmt.Errorf("unable to open keyboard: %w", err)
	}

	s := &KeyboardSource{keys: make(chan []byte, 16)}
	go func() {
		defer close(s.keys)
		for event := range events {
			if nil != event.Err {
				log.Println(event.Err, "unable to read key")
				continue
			}
			if data := Translate(event.Key, event.Rune); nil != data {
				s.keys <- data
			}
		}
	}()
	return s, nil
}

func (s *KeyboardSource) Keys() <-chan []byte {
	return s.keys
}

func (s *KeyboardSource) Close() error {
	return keyboard.Close()
}

// Translate maps a decoded key to its raw sequence, nil if it has none
func Translate(key keyboard.Key, r rune) []byte {
	if 0 != r {
		return []byte(string(r))
	}
	switch key {
	case keyboard.KeyArrowUp:
		return []byte(Up)
	case keyboard.KeyArrowDown:
		return []byte(Down)
	case keyboard.KeyArrowLeft:
		return []byte(Left)
	case keyboard.KeyArrowRight:
		return []byte(Right)
	case keyboard.KeyF1:
		return []byte(Debug)
	case keyboard.KeyF10, keyboard.KeyCtrlC:
		return []byte(Quit)
	case keyboard.KeyEnter:
		return []byte(Enter)
	case keyboard.KeySpace:
		return []byte(Space)
	case keyboard.KeyEsc:
		return []byte(Escape)
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		return []byte(Backspace)
	}
	// remaining control keys share their byte value
	if key < 0x20 {
		return []byte{byte(key)}
	}
	return nil
}
