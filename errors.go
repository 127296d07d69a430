package nvec

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by this package matches exactly one of
// them through errors.Is.
var (
	// ErrType is the kind for operands of the wrong type.
	ErrType = errors.New("type error")
	// ErrIndex is the kind for out-of-range indices.
	ErrIndex = errors.New("index error")
	// ErrAttribute is the kind for unknown or read-only attributes.
	ErrAttribute = errors.New("attribute error")
	// ErrFormat is the kind for malformed byte sequences and format specs.
	ErrFormat = errors.New("format error")
)

// TypeError indicates an operand that is not usable where it was passed.
type TypeError struct {
	Msg string
}

func (e *TypeError) Error() string { return e.Msg }

// Is reports whether target is ErrType.
func (e *TypeError) Is(target error) bool { return target == ErrType }

// IndexError indicates an index outside the valid range.
type IndexError struct {
	Index int
	Len   int
	Msg   string
}

func (e *IndexError) Error() string {
	if e.Msg != "" {
		return e.Msg
	}
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Len)
}

// Is reports whether target is ErrIndex.
func (e *IndexError) Is(target error) bool { return target == ErrIndex }

// AttributeError indicates a failed attribute lookup or assignment.
type AttributeError struct {
	Name string
	Msg  string
}

func (e *AttributeError) Error() string { return e.Msg }

// Is reports whether target is ErrAttribute.
func (e *AttributeError) Is(target error) bool { return target == ErrAttribute }

// FormatError indicates malformed input to a decoder or formatter.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type FormatError struct {
	Msg   string
	cause error
}

func (e *FormatError) Error() string {
	if e.cause != nil {
		return e.Msg + ": " + e.cause.Error()
	}
	return e.Msg
}

func (e *FormatError) Unwrap() error { return e.cause }

// Is reports whether target is ErrFormat.
func (e *FormatError) Is(target error) bool { return target == ErrFormat }

func typeErrorf(format string, args ...any) error {
	return &TypeError{Msg: fmt.Sprintf(format, args...)}
}

func formatErrorf(format string, args ...any) error {
	return &FormatError{Msg: fmt.Sprintf(format, args...)}
}
