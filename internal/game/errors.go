package game

import (
	"errors"
	"fmt"
)

// Error is a recoverable domain failure. The engine hands these to the
// active scene's Fix hook instead of stopping.
type Error struct {
	Code    string
	Message string
	Err     error
}

var (
	ErrChartNotInitialized = &Error{Code: "CHART_NOT_INITIALIZED", Message: "Cannot retrieve data from an uninitialized chart."}
	ErrSceneNotInitialized = &Error{Code: "SCENE_NOT_INITIALIZED", Message: "Cannot retrieve data from an uninitialized scene."}
	ErrUnknownChart        = &Error{Code: "UNKNOWN_CHART", Message: "Chart does not exist."}
	ErrUnknownScene        = &Error{Code: "UNKNOWN_SCENE", Message: "Scene does not exist."}
	ErrUnknownException    = &Error{Code: "UNKNOWN_EXCEPTION", Message: "An unknown exception has occurred."}
)

func (e *Error) Error() string {
	if nil != e.Err {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return e.Code + ": " + e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any Error with the same code, so wrapped copies compare
// equal to their sentinel.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// With returns a copy of the error carrying a cause
func (e *Error) With(cause error) *Error {
	return &Error{Code: e.Code, Message: e.Message, Err: cause}
}

// Wrap turns an unexpected failure into an UnknownException. Domain
// errors pass through untouched.
func Wrap(err error) error {
	if nil == err {
		return nil
	}
	if _, ok := AsError(err); ok {
		return err
	}
	return ErrUnknownException.With(err)
}

// AsError extracts a domain error from an error chain
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}
