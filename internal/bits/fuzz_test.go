package bits

import (
	"math/bits"
	"testing"
)

// checkProperties asserts the invariants every row must hold for the carrier x.
func checkProperties(t *testing.T, ops Ops, x uint64) {
	t.Helper()

	k := ops.Kind()
	x = ops.Or(x, 0) // normalize the carrier to the row's width

	b := ops.Backfill(x)
	if got := ops.Backfill(b); got != b {
		t.Errorf("%s: Backfill not idempotent for %#x: got %#x, want %#x", k, x, got, b)
	}

	msb, lsb := ops.MSB(x), ops.LSB(x)
	if x == 0 {
		if msb != 0 || lsb != 0 {
			t.Errorf("%s: MSB/LSB of 0 got %#x/%#x, want 0/0", k, msb, lsb)
		}
		return
	}
	if ops.LSB(msb) == 0 {
		t.Errorf("%s: LSB(MSB(%#x)) == 0", k, x)
	}
	if ops.Count(msb) != 1 || ops.Count(lsb) != 1 {
		if !k.Signed() {
			t.Errorf("%s: MSB/LSB of %#x did not isolate one bit: %#x/%#x", k, x, msb, lsb)
		}
	}

	pow2 := ops.IsPowerOfTwo(x)
	positive := !k.Signed() || ops.AndNot(x, ops.ShiftRight(^uint64(0), 1)) == 0
	if positive {
		want := lsb == x && msb == x
		if pow2 != want {
			t.Errorf("%s: IsPowerOfTwo(%#x) got %v, want %v", k, x, pow2, want)
		}
	} else if pow2 {
		t.Errorf("%s: IsPowerOfTwo(%#x) true for a negative value", k, x)
	}

	if !k.Signed() {
		pattern := ops.Or(x, 0)
		want := uint64(1) << (bits.Len64(pattern) - 1)
		if msb != want {
			t.Errorf("%s: MSB(%#x) got %#x, want %#x", k, x, msb, want)
		}
		want = uint64(1) << bits.TrailingZeros64(pattern)
		if lsb != want {
			t.Errorf("%s: LSB(%#x) got %#x, want %#x", k, x, lsb, want)
		}
	}
}

// FuzzUnsigned fuzzes every unsigned row against math/bits.
func FuzzUnsigned(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(6))
	f.Add(uint64(0xFF))
	f.Add(uint64(0x8000))
	f.Add(uint64(0xDEADBEEF))
	f.Add(^uint64(0))

	f.Fuzz(func(t *testing.T, x uint64) {
		for _, k := range []Kind{KindUint8, KindUint16, KindUint32, KindUint64} {
			ops, err := For(k)
			if err != nil {
				t.Fatal(err)
			}
			checkProperties(t, ops, x)
		}
	})
}

// FuzzSigned fuzzes every signed row.
func FuzzSigned(f *testing.F) {
	f.Add(int64(0))
	f.Add(int64(-1))
	f.Add(int64(-6))
	f.Add(int64(-128))
	f.Add(int64(127))
	f.Add(int64(-1 << 63))
	f.Add(int64(1<<63 - 1))

	f.Fuzz(func(t *testing.T, v int64) {
		for _, k := range []Kind{KindInt8, KindInt16, KindInt32, KindInt64} {
			ops, err := For(k)
			if err != nil {
				t.Fatal(err)
			}
			checkProperties(t, ops, uint64(v))

			// The magnitude convention: MSB and LSB carry the sign of their input.
			x := ops.Or(uint64(v), 0)
			if x == 0 {
				continue
			}
			neg := ops.AndNot(x, ops.ShiftRight(^uint64(0), 1)) != 0
			for _, got := range []uint64{ops.MSB(x), ops.LSB(x)} {
				gotNeg := ops.AndNot(got, ops.ShiftRight(^uint64(0), 1)) != 0
				if gotNeg != neg {
					t.Errorf("%s: sign of %#x not carried to %#x", k, x, got)
				}
			}
		}
	})
}
