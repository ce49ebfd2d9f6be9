package remote

import (
	"errors"
	"fmt"
)

// ErrNotImplemented matches every NotImplementedError.
var ErrNotImplemented = errors.New("not yet implemented")

// NotImplementedError is returned by operations the remote API does not
// offer yet. No request is made.
type NotImplementedError struct {
	Op string
}

func (e *NotImplementedError) Error() string {
	return fmt.Sprintf("%s is not yet implemented", e.Op)
}

func (e *NotImplementedError) Is(target error) bool { return target == ErrNotImplemented }

func notImplemented(op string) error { return &NotImplementedError{Op: op} }

// APIError is a failure reported by the remote API, either through a
// non-2xx status or a success:false envelope. Message is what the user
// sees.
type APIError struct {
	Endpoint   string
	StatusCode int
	Message    string
}

func (e *APIError) Error() string { return e.Message }

const genericFailure = "request failed"
