package progress

import "errors"

// ErrInvalidInput marks progress validation failures.
var ErrInvalidInput = errors.New("invalid input")
