package enumkit

import (
	"fmt"

	"github.com/bearlytools/enumkit/errors"
	"github.com/bearlytools/enumkit/internal/bits"
)

var (
	// ErrFormat indicates text that cannot be parsed into the type's representation.
	ErrFormat = errors.New("enumkit: invalid format")
	// ErrNotDefined indicates a value that is not declared, or for a flag set, is not made
	// only of declared flags.
	ErrNotDefined = errors.New("enumkit: value not defined")
	// ErrUnsupportedKind indicates a type whose representation has no bit operations.
	ErrUnsupportedKind = bits.ErrUnsupportedKind
	// ErrEmpty indicates a bound or mask was requested from a type with no declared values.
	ErrEmpty = errors.New("enumkit: no defined values")
	// ErrRegistration indicates a declaration that could not be registered.
	ErrRegistration = errors.New("enumkit: registration failed")
	// ErrShiftCount indicates a negative shift count.
	ErrShiftCount = errors.New("enumkit: invalid shift count")
)

// ParseError is returned by Parse. Err is ErrFormat or ErrNotDefined.
type ParseError struct {
	// Type is the name of the enumerated type.
	Type string
	// Input is the text that was parsed.
	Input string
	// Err is the reason parsing failed.
	Err error
}

func (e *ParseError) Error() string {
	if errors.Is(e.Err, ErrNotDefined) {
		return fmt.Sprintf("enumkit: %q is not a defined value of %s", e.Input, e.Type)
	}
	return fmt.Sprintf("enumkit: %q cannot be parsed as %s", e.Input, e.Type)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// errType maps a parse failure to its error type.
func errType(err error) errors.Type {
	if errors.Is(err, ErrNotDefined) {
		return errors.TypeNotDefined
	}
	return errors.TypeFormat
}
