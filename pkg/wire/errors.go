// Package wire implements the big-endian primitive codec used by every
// packet in the game protocol: byte-cursor decoding and growable-sink
// encoding for integers, floats, booleans, length-prefixed containers and
// optional trailing fields.
package wire

import (
	"errors"
	"fmt"
)

var errInvalidUTF8 = errors.New("invalid utf-8 in length-prefixed string")

// InsufficientBytesError is returned by any decode operation that would
// read past the end of the cursor.
type InsufficientBytesError struct {
	Needed    int
	Remaining int
}

func (e *InsufficientBytesError) Error() string {
	return fmt.Sprintf("insufficient bytes: needed %d, remaining %d", e.Needed, e.Remaining)
}

// InvalidDataError covers length-prefix overflow and mis-typed stat
// encodings. Invalid UTF-8 in a string is reported as OtherError.
type InvalidDataError struct {
	Message string
}

func (e *InvalidDataError) Error() string {
	return "invalid data: " + e.Message
}

// OtherError wraps an arbitrary underlying error as an adapter-level
// escape hatch (e.g. a UTF-8 decoding failure from the standard library).
type OtherError struct {
	Inner error
}

func (e *OtherError) Error() string {
	return "adapter error: " + e.Inner.Error()
}

func (e *OtherError) Unwrap() error {
	return e.Inner
}
