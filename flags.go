package enumkit

import (
	"fmt"

	"fortio.org/safecast"
)

// Every method here runs through the bit operations bound at registration. E converts to
// uint64 with sign extension for signed types, which is the carrier the operations expect.

// Or returns a | b.
func (e *Enum[E]) Or(a, b E) E {
	return E(e.ops.Or(uint64(a), uint64(b)))
}

// CombineFlags ors all flags together. With no flags it returns zero.
func (e *Enum[E]) CombineFlags(flags ...E) E {
	var acc uint64
	for _, f := range flags {
		acc = e.ops.Or(acc, uint64(f))
	}
	return E(acc)
}

// AndNot returns a &^ b.
func (e *Enum[E]) AndNot(a, b E) E {
	return E(e.ops.AndNot(uint64(a), uint64(b)))
}

// RemoveFlags clears the bits of flags from x.
func (e *Enum[E]) RemoveFlags(x, flags E) E {
	return e.AndNot(x, flags)
}

// Xor returns a ^ b.
func (e *Enum[E]) Xor(a, b E) E {
	return E(e.ops.Xor(uint64(a), uint64(b)))
}

// ToggleFlags flips the bits of flags in x.
func (e *Enum[E]) ToggleFlags(x, flags E) E {
	return e.Xor(x, flags)
}

// CommonFlags returns the bits set in both a and b.
func (e *Enum[E]) CommonFlags(a, b E) E {
	return E(e.ops.And(uint64(a), uint64(b)))
}

// HasFlags reports if every bit of flags is set in x. A zero flags is always contained.
func (e *Enum[E]) HasFlags(x, flags E) bool {
	return e.ops.And(uint64(x), uint64(flags)) == uint64(flags)
}

// HasAnyFlags reports if any bit of flags is set in x.
func (e *Enum[E]) HasAnyFlags(x, flags E) bool {
	return e.ops.And(uint64(x), uint64(flags)) != 0
}

// IsPowerOfTwo reports x > 0 && x&(x-1) == 0.
func (e *Enum[E]) IsPowerOfTwo(x E) bool {
	return e.ops.IsPowerOfTwo(uint64(x))
}

// Backfill sets every bit below the highest set bit of x.
func (e *Enum[E]) Backfill(x E) E {
	return E(e.ops.Backfill(uint64(x)))
}

// LSB returns x with only its lowest set bit. A negative x yields the lowest bit of its
// magnitude, negated.
func (e *Enum[E]) LSB(x E) E {
	return E(e.ops.LSB(uint64(x)))
}

// MSB returns x with only its highest set bit. A negative x yields the highest bit of its
// magnitude, negated.
func (e *Enum[E]) MSB(x E) E {
	return E(e.ops.MSB(uint64(x)))
}

// ShiftLeft shifts the bit pattern of x left by one. The result need not be defined.
func (e *Enum[E]) ShiftLeft(x E) E {
	return E(e.ops.ShiftLeft(uint64(x), 1))
}

// ShiftRight shifts the bit pattern of x right by one without sign extension.
func (e *Enum[E]) ShiftRight(x E) E {
	return E(e.ops.ShiftRight(uint64(x), 1))
}

// ShiftLeftN shifts the bit pattern of x left by n. n must not be negative.
func (e *Enum[E]) ShiftLeftN(x E, n int) (E, error) {
	s, err := shiftCount(n)
	if err != nil {
		return 0, err
	}
	return E(e.ops.ShiftLeft(uint64(x), s)), nil
}

// ShiftRightN shifts the bit pattern of x right by n without sign extension. n must not
// be negative.
func (e *Enum[E]) ShiftRightN(x E, n int) (E, error) {
	s, err := shiftCount(n)
	if err != nil {
		return 0, err
	}
	return E(e.ops.ShiftRight(uint64(x), s)), nil
}

func shiftCount(n int) (uint, error) {
	s, err := safecast.Conv[uint](n)
	if err != nil {
		return 0, fmt.Errorf("%w: %d: %w", ErrShiftCount, n, err)
	}
	return s, nil
}

// IsValidFlagCombination reports if x is made only of bits found in declared values,
// whether or not the type is a flag set. Zero is always valid on a non-empty type.
func (e *Enum[E]) IsValidFlagCombination(x E) bool {
	mask, err := e.FlagsMask()
	if err != nil {
		return false
	}
	return e.ops.AndNot(uint64(x), uint64(mask)) == 0
}

// Flags returns the declared single bit values that are set in x, in ascending order.
func (e *Enum[E]) Flags(x E) []E {
	var out []E
	for _, v := range e.valueSet().asc {
		if e.ops.Count(uint64(v)) != 1 {
			continue
		}
		if e.HasFlags(x, v) {
			out = append(out, v)
		}
	}
	return out
}

// FlagCount is the number of bits of x that fall inside FlagsMask.
func (e *Enum[E]) FlagCount(x E) int {
	mask, err := e.FlagsMask()
	if err != nil {
		return 0
	}
	return e.ops.Count(e.ops.And(uint64(x), uint64(mask)))
}
