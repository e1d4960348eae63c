package httpsclient

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned before any I/O when the request does not fit the method.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrIO wraps connection, DNS, TLS and body read failures.
	ErrIO = errors.New("io error")
	// ErrInterrupted is returned when the caller cancelled the in-flight call.
	ErrInterrupted = errors.New("interrupted")
	// ErrTransport matches every *TransportError.
	ErrTransport = errors.New("transport error")
)

// TransportError is returned when the server answered with a status other than 200 or 201.
type TransportError struct {
	StatusCode int
	Body       string
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("failed! response code: %d", e.StatusCode)
}

func (e *TransportError) Is(target error) bool {
	return target == ErrTransport
}

// StatusCode returns the status carried by err, or 0 when err is not a TransportError.
func StatusCode(err error) int {
	var te *TransportError
	if errors.As(err, &te) {
		return te.StatusCode
	}
	return 0
}
