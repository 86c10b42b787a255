// Package bits provides the width specific bit primitives used by enumkit. Each supported
// integer representation has one row in a fixed dispatch table (see For and Resolve), so callers
// pick a row once per enumerated type and never type switch again.
//
// Values cross the Ops interface as uint64 bit carriers. A signed value is sign extended
// (uint64(int8(-1)) == 0xFFFFFFFFFFFFFFFF) and an unsigned value is zero extended. Every Ops
// method truncates its inputs to its own width before doing any work and returns results
// extended the same way, so uint64(v) in and E(result) out is always lossless.
package bits

import (
	"math/bits"

	"golang.org/x/exp/constraints"
)

// Ops is one row of the dispatch table.
type Ops interface {
	// Kind is the representation this row implements.
	Kind() Kind
	// Or returns a | b.
	Or(a, b uint64) uint64
	// And returns a & b.
	And(a, b uint64) uint64
	// AndNot returns a &^ b.
	AndNot(a, b uint64) uint64
	// Xor returns a ^ b.
	Xor(a, b uint64) uint64
	// IsPowerOfTwo reports x > 0 && x&(x-1) == 0. Zero and negative values are false.
	IsPowerOfTwo(x uint64) bool
	// Backfill sets every bit below the highest set bit of the bit pattern.
	Backfill(x uint64) uint64
	// ShiftLeft is a logical left shift of the bit pattern.
	ShiftLeft(x uint64, n uint) uint64
	// ShiftRight is a logical right shift of the bit pattern. Signed kinds do not sign extend.
	ShiftRight(x uint64, n uint) uint64
	// LSB returns x with only its lowest set bit. For a negative signed x this is the lowest
	// bit of the magnitude, negated.
	LSB(x uint64) uint64
	// MSB returns x with only its highest set bit, with the same signed convention as LSB.
	MSB(x uint64) uint64
	// Count is the number of set bits in the bit pattern.
	Count(x uint64) int
}

type unsignedOps[U constraints.Unsigned] struct {
	kind  Kind
	width uint
}

func (o unsignedOps[U]) Kind() Kind {
	return o.kind
}

func (o unsignedOps[U]) Or(a, b uint64) uint64 {
	return uint64(U(a) | U(b))
}

func (o unsignedOps[U]) And(a, b uint64) uint64 {
	return uint64(U(a) & U(b))
}

func (o unsignedOps[U]) AndNot(a, b uint64) uint64 {
	return uint64(U(a) &^ U(b))
}

func (o unsignedOps[U]) Xor(a, b uint64) uint64 {
	return uint64(U(a) ^ U(b))
}

func (o unsignedOps[U]) IsPowerOfTwo(x uint64) bool {
	v := U(x)
	return v != 0 && v&(v-1) == 0
}

func (o unsignedOps[U]) Backfill(x uint64) uint64 {
	return uint64(backfill(U(x), o.width))
}

func (o unsignedOps[U]) ShiftLeft(x uint64, n uint) uint64 {
	return uint64(U(x) << n)
}

func (o unsignedOps[U]) ShiftRight(x uint64, n uint) uint64 {
	return uint64(U(x) >> n)
}

func (o unsignedOps[U]) LSB(x uint64) uint64 {
	return uint64(lsb(U(x)))
}

func (o unsignedOps[U]) MSB(x uint64) uint64 {
	return uint64(msb(U(x), o.width))
}

func (o unsignedOps[U]) Count(x uint64) int {
	return bits.OnesCount64(uint64(U(x)))
}

// signedOps does all shifting on U, the unsigned type of the same width as S, so that the
// sign bit is treated as an ordinary bit and never smeared by an arithmetic shift.
type signedOps[S constraints.Signed, U constraints.Unsigned] struct {
	kind  Kind
	width uint
}

func (o signedOps[S, U]) Kind() Kind {
	return o.kind
}

func (o signedOps[S, U]) Or(a, b uint64) uint64 {
	return uint64(S(a) | S(b))
}

func (o signedOps[S, U]) And(a, b uint64) uint64 {
	return uint64(S(a) & S(b))
}

func (o signedOps[S, U]) AndNot(a, b uint64) uint64 {
	return uint64(S(a) &^ S(b))
}

func (o signedOps[S, U]) Xor(a, b uint64) uint64 {
	return uint64(S(a) ^ S(b))
}

func (o signedOps[S, U]) IsPowerOfTwo(x uint64) bool {
	v := S(x)
	return v > 0 && v&(v-1) == 0
}

func (o signedOps[S, U]) Backfill(x uint64) uint64 {
	return uint64(S(backfill(U(S(x)), o.width)))
}

func (o signedOps[S, U]) ShiftLeft(x uint64, n uint) uint64 {
	return uint64(S(U(S(x)) << n))
}

func (o signedOps[S, U]) ShiftRight(x uint64, n uint) uint64 {
	return uint64(S(U(S(x)) >> n))
}

func (o signedOps[S, U]) LSB(x uint64) uint64 {
	v := S(x)
	return withSign(v, lsb(magnitude[S, U](v)))
}

func (o signedOps[S, U]) MSB(x uint64) uint64 {
	v := S(x)
	return withSign(v, msb(magnitude[S, U](v), o.width))
}

func (o signedOps[S, U]) Count(x uint64) int {
	return bits.OnesCount64(uint64(U(S(x))))
}

// magnitude returns |v| as an unsigned value. The minimum value of S wraps to itself
// and so yields only the sign bit, which is its correct magnitude.
func magnitude[S constraints.Signed, U constraints.Unsigned](v S) U {
	if v < 0 {
		return U(-v)
	}
	return U(v)
}

// withSign reinterprets bit as S and negates it when v is negative.
func withSign[S constraints.Signed, U constraints.Unsigned](v S, bit U) uint64 {
	r := S(bit)
	if v < 0 {
		r = -r
	}
	return uint64(r)
}

// backfill is the cascading or-shift: x |= x>>1, x |= x>>2, ... up to half the width.
func backfill[U constraints.Unsigned](v U, width uint) U {
	for shift := uint(1); shift < width; shift <<= 1 {
		v |= v >> shift
	}
	return v
}

func lsb[U constraints.Unsigned](v U) U {
	return v & -v
}

func msb[U constraints.Unsigned](v U, width uint) U {
	if v == 0 {
		return 0
	}
	v = backfill(v, width)
	v &^= v >> 1
	return U(1) << Index(uint64(v))
}
