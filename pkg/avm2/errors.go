// Package avm2 parses the AVM2 ("ActionScript Virtual Machine 2")
// bytecode container embedded in a published Flash client: its constant
// pool, instance/class tables, and traits. It stops at the class
// section; script and method-body records that follow in the full
// format are never read.
package avm2

import (
	"errors"
	"fmt"
)

var errInvalidUTF8 = errors.New("invalid utf-8 in constant string")

// InsufficientBytesError reports a read that ran past the end of the
// buffer. Unlike pkg/wire's variant of the same idea, avm2 buffers are
// always fully in memory (one embedded bytecode blob), so this only
// ever signals a truncated or corrupt container.
type InsufficientBytesError struct {
	Needed    int
	Remaining int
}

func (e *InsufficientBytesError) Error() string {
	return fmt.Sprintf("avm2: insufficient bytes: need %d, have %d", e.Needed, e.Remaining)
}

// InvalidFlagError reports a byte that does not correspond to any
// enumerator of the named flag type (namespace kind, multiname kind,
// constant kind).
type InvalidFlagError struct {
	Byte     byte
	TypeName string
}

func (e *InvalidFlagError) Error() string {
	return fmt.Sprintf("avm2: invalid flag value 0x%02x for %s", e.Byte, e.TypeName)
}

// OtherError wraps an escape-hatch failure (bad UTF-8 in a constant
// string, for instance) that doesn't warrant its own type.
type OtherError struct {
	Inner error
}

func (e *OtherError) Error() string { return "avm2: " + e.Inner.Error() }
func (e *OtherError) Unwrap() error { return e.Inner }
