package model

import (
	"fmt"

	"github.com/pkg/errors"
)

// Error kinds reported by the engine. Callers match them with errors.Is.
var (
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	ErrOutOfBounds       = errors.New("coordinates out of bounds")
	ErrIO                = errors.New("history i/o failure")
)

// IOError records a failed history sink operation. It matches ErrIO and
// unwraps to the underlying cause.
type IOError struct {
	Op  string
	Err error
}

// NewIOError wraps err as an IOError for operation op.
func NewIOError(op string, err error) error {
	return errors.WithStack(&IOError{Op: op, Err: err})
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrIO.Error(), e.Op, e.Err)
}

// Is reports whether target is ErrIO.
func (e *IOError) Is(target error) bool { return target == ErrIO }

func (e *IOError) Unwrap() error { return e.Err }
