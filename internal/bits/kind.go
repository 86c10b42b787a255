package bits

import (
	"fmt"
	"reflect"
	"strconv"
)

//go:generate stringer -type=Kind -linecomment

// Kind is the integer representation that backs an enumerated type.
type Kind uint8

const (
	// KindUnknown is an unsupported or unresolved representation.
	KindUnknown Kind = 0 // unknown
	KindInt8    Kind = 1 // int8
	KindUint8   Kind = 2 // uint8
	KindInt16   Kind = 3 // int16
	KindUint16  Kind = 4 // uint16
	KindInt32   Kind = 5 // int32
	KindUint32  Kind = 6 // uint32
	KindInt64   Kind = 7 // int64
	KindUint64  Kind = 8 // uint64
)

// Bits returns the width of the representation in bits. KindUnknown returns 0.
func (k Kind) Bits() int {
	switch k {
	case KindInt8, KindUint8:
		return 8
	case KindInt16, KindUint16:
		return 16
	case KindInt32, KindUint32:
		return 32
	case KindInt64, KindUint64:
		return 64
	}
	return 0
}

// Signed reports if the representation is a signed integer.
func (k Kind) Signed() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	}
	return false
}

// KindOf maps a Go type to its Kind. int and uint map to the fixed width of the
// platform. uintptr and every non-integer type are KindUnknown.
func KindOf(t reflect.Type) Kind {
	switch t.Kind() {
	case reflect.Int8:
		return KindInt8
	case reflect.Uint8:
		return KindUint8
	case reflect.Int16:
		return KindInt16
	case reflect.Uint16:
		return KindUint16
	case reflect.Int32:
		return KindInt32
	case reflect.Uint32:
		return KindUint32
	case reflect.Int64:
		return KindInt64
	case reflect.Uint64:
		return KindUint64
	case reflect.Int:
		if strconv.IntSize == 32 {
			return KindInt32
		}
		return KindInt64
	case reflect.Uint:
		if strconv.IntSize == 32 {
			return KindUint32
		}
		return KindUint64
	}
	return KindUnknown
}

// ParseKind converts a representation name such as "int16" into a Kind.
func ParseKind(s string) (Kind, error) {
	for k := KindInt8; k <= KindUint64; k++ {
		if k.String() == s {
			return k, nil
		}
	}
	return KindUnknown, fmt.Errorf("%w: %q", ErrUnsupportedKind, s)
}
