// Package errors provides the error taxonomy for enumkit. It includes all of the stdlib's
// functions and types.
package errors

import (
	"github.com/gostdlib/base/context"
	"github.com/gostdlib/base/errors"
)

//go:generate stringer -type=Category -linecomment

// Category represents the category of the error.
type Category uint32

func (c Category) Category() string {
	return c.String()
}

const (
	// CatUnknown represents an unknown category. This should not be used.
	CatUnknown Category = Category(0) // Unknown
	// CatUser represents an error that is caused by bad input, such as text that does not
	// name a defined value.
	CatUser Category = Category(1) // User
	// CatInternal represents a setup or programming error, such as declaring an enumerated
	// type on a representation that has no bit operations.
	CatInternal Category = Category(2) // Internal
)

//go:generate stringer -type=Type -linecomment

// Type represents the type of the error.
type Type uint16

func (t Type) Type() string {
	return t.String()
}

const (
	// TypeUnknown represents an unknown type.
	TypeUnknown Type = Type(0) // Unknown
	// TypeBug represents a bug in the calling code.
	TypeBug Type = Type(1) // Bug
	// TypeParameter represents an argument that didn't pass validation, like a negative shift.
	TypeParameter Type = Type(2) // Parameter
	// TypeFormat is text that cannot be parsed into the underlying representation.
	TypeFormat Type = Type(3) // Format
	// TypeNotDefined is a value that parsed but is not declared, or for a flag set, is not
	// composed only of declared flags.
	TypeNotDefined Type = Type(4) // NotDefined
	// TypeUnsupportedKind is an enumerated type backed by a representation without a row
	// in the width dispatch table.
	TypeUnsupportedKind Type = Type(5) // UnsupportedKind
	// TypeEmpty is a bounds or mask request on a type with no declared values.
	TypeEmpty Type = Type(6) // Empty
	// TypeRegistration is a declaration that cannot be registered, such as a duplicate.
	TypeRegistration Type = Type(7) // Registration
)

// LogAttrer is an interface that can be implemented by an error to return a list of attributes
// used in logging.
type LogAttrer = errors.LogAttrer

// Error is the error type for this module. Error implements github.com/gostdlib/base/errors.E .
type Error = errors.Error

// EOption is an optional argument for E().
type EOption = errors.EOption

// WithCallNum is used if you need to set the runtime.CallNum() in order to get the correct filename and line.
// This can happen if you create a call wrapper around E(), because you would then need to look up one more stack frame
// for every wrapper. This defaults to 1 which sets to the frame of the caller of E().
func WithCallNum(i int) EOption {
	return errors.WithCallNum(i)
}

// WithStackTrace will add a stack trace to the error. Registration failures use this, they
// happen once per process and point at the offending declaration.
func WithStackTrace() EOption {
	return errors.WithStackTrace()
}

// E creates a new Error with the given parameters.
func E(ctx context.Context, c errors.Category, t errors.Type, msg error, options ...errors.EOption) Error {
	// This makes sure we do the correct call number since we are a wrapper. Now, if they set the
	// call number, this will not override it.
	opts := make([]errors.EOption, 0, len(options)+1)
	opts = append(opts, WithCallNum(2))
	opts = append(opts, options...)

	return errors.E(ctx, c, t, msg, opts...)
}
