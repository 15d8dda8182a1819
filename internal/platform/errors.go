package platform

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrUnreachable indica que no se recibio respuesta del upstream.
var ErrUnreachable = errors.New("platform unreachable")

// StatusError representa una respuesta no-2xx del upstream.
type StatusError struct {
	Status     int
	StatusText string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("platform status %d %s", e.Status, e.StatusText)
}

func newStatusError(status int) *StatusError {
	return &StatusError{Status: status, StatusText: http.StatusText(status)}
}
