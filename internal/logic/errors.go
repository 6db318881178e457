package logic

import (
	"errors"
	"fmt"
)

// ErrBadRequest marks client errors the HTTP layer maps to 400.
var ErrBadRequest = errors.New("bad request")

// ErrUnavailable marks operations whose backing dependency is not configured.
var ErrUnavailable = errors.New("service not configured")

func badRequestf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrBadRequest, fmt.Sprintf(format, args...))
}
