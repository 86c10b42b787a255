package bits

// deBruijn64 is a B(2, 6) De Bruijn sequence: multiplying it by a power of two leaves a
// distinct 6 bit pattern in the top bits of the product for each of the 64 positions.
const deBruijn64 uint64 = 0x37E84A99DAE458F

// deBruijnIndex maps the top 6 bits of bit*deBruijn64 to log2(bit).
var deBruijnIndex = [64]uint8{
	0, 1, 17, 2, 18, 50, 3, 57,
	47, 19, 22, 51, 29, 4, 33, 58,
	15, 48, 20, 27, 25, 23, 52, 41,
	54, 30, 38, 5, 43, 34, 59, 8,
	63, 16, 49, 56, 46, 21, 28, 32,
	14, 26, 24, 40, 53, 37, 42, 7,
	62, 55, 45, 31, 13, 39, 36, 6,
	61, 44, 12, 35, 60, 11, 10, 9,
}

// Index returns the position of the single set bit in bit. bit must have exactly one bit
// set, anything else returns a meaningless position.
func Index(bit uint64) uint {
	return uint(deBruijnIndex[(bit*deBruijn64)>>58])
}
